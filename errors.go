// SPDX-License-Identifier: EPL-2.0

package tonegen

import "errors"

var (
	ErrFileOpen    = errors.New("cannot open output file")
	ErrWrite       = errors.New("cannot write output")
	ErrShortStream = errors.New("sample stream ended early")
)
