// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	"github.com/ik5/tonegen/audio"
	"github.com/ik5/tonegen/formats/pcm"
)

// Decoder reads canonical 16-bit or 32-bit PCM WAV files back into an audio.Source.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	if h.AudioFormat != FormatPCM {
		return nil, ErrUnsupportedBitDepth
	}
	kind, err := audio.SampleKindForBits(int(h.BitsPerSample))
	if err != nil {
		return nil, ErrUnsupportedBitDepth
	}
	if h.NumChannels == 0 {
		return nil, ErrUnsupportedWavLayout
	}

	// The data chunk bounds the stream; trailing chunks are not samples.
	data := io.LimitReader(r, int64(h.Subchunk2Size))

	return pcm.NewSource(data, int(h.SampleRate), int(h.NumChannels), kind), nil
}
