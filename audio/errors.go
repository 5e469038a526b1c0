// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDstSize   = errors.New("dst size must be multiple of channels")
	ErrInvalidParameter = errors.New("invalid parameter")
)

// ParameterError describes a single rejected field of Settings.
// It matches ErrInvalidParameter with errors.Is.
type ParameterError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s %v: %s", ErrInvalidParameter, e.Field, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }
