// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// ToneSource streams a Tone as interleaved frames, sampleRate × durationSeconds frames long.
type ToneSource struct {
	tone       Tone
	sampleRate int
	channels   int
	frames     uint64
	pos        uint64
}

func NewToneSource(p Parameters) *ToneSource {
	return &ToneSource{
		tone:       NewTone(p),
		sampleRate: p.SampleRate(),
		channels:   p.Channels(),
		frames:     p.FramesPerChannel(),
	}
}

func (s *ToneSource) SampleRate() int { return s.sampleRate }
func (s *ToneSource) Channels() int   { return s.channels }
func (s *ToneSource) Close() error    { return nil }

// Frames is the total number of frames the source produces.
func (s *ToneSource) Frames() uint64 { return s.frames }

// Reset rewinds the source to the first frame.
func (s *ToneSource) Reset() { s.pos = 0 }

func (s *ToneSource) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%s.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if s.pos >= s.frames {
		return 0, io.EOF
	}

	frames := min(uint64(len(dst)/s.channels), s.frames-s.pos)
	rate := float64(s.sampleRate)

	for f := range frames {
		t := float64(s.pos+f) / rate
		base := int(f) * s.channels
		for ch := range s.channels {
			dst[base+ch] = s.tone.Sample(t, ch)
		}
	}

	s.pos += frames
	n := int(frames) * s.channels

	if s.pos >= s.frames {
		return n, io.EOF
	}
	return n, nil
}
