// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// Info is what an independent WAV reader sees in a file.
type Info struct {
	Format      *goaudio.Format
	AudioFormat int
	BitDepth    int
	// Frames is the number of complete frames in the data chunk.
	Frames int
	// Samples holds the decoded interleaved samples.
	Samples []int
}

// Inspect parses r with github.com/go-audio/wav, which shares no code with BuildHeader,
// and returns the decoded format and samples.
func Inspect(r io.ReadSeeker) (Info, error) {
	dec := gowav.NewDecoder(r)

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Info{}, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	format := dec.Format()
	info := Info{
		Format:      format,
		AudioFormat: int(dec.WavAudioFormat),
		BitDepth:    int(dec.BitDepth),
	}

	if buf != nil {
		info.Samples = buf.Data
		if format != nil && format.NumChannels > 0 {
			info.Frames = len(buf.Data) / format.NumChannels
		}
	}

	return info, nil
}
