// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	"github.com/ik5/tonegen/audio"
)

const Extension = "wav"

// Container writes the canonical header sized for the full payload of p, so the
// header never has to be patched after the samples are streamed.
type Container struct{}

func (Container) Extension() string { return Extension }

func (Container) WriteHeader(w io.Writer, p audio.Parameters) error {
	_, err := BuildHeader(p, uint32(p.PayloadBytes())).WriteTo(w)
	return err
}
