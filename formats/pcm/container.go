// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"io"

	"github.com/ik5/tonegen/audio"
)

const Extension = "pcm"

// Container writes no header; the file is the sample stream alone.
type Container struct{}

func (Container) Extension() string { return Extension }

func (Container) WriteHeader(io.Writer, audio.Parameters) error { return nil }
