// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/tonegen/audio"
)

type source struct {
	r          io.Reader
	sampleRate int
	channels   int
	kind       audio.SampleKind
	buf        []byte
}

// NewSource reads interleaved little-endian samples of the given kind from r.
// Decoded values keep their integer scale. Reads are frame aligned: dst must hold whole
// frames and a trailing partial frame is dropped.
func NewSource(r io.Reader, sampleRate, channels int, kind audio.SampleKind) audio.Source {
	return &source{
		r:          r,
		sampleRate: sampleRate,
		channels:   channels,
		kind:       kind,
		buf:        make([]byte, 4096),
	}
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }

func (s *source) Close() error {
	if c, ok := s.r.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}

func (s *source) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.channels <= 0 || len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	width := s.kind.Bytes()
	if width == 0 {
		return 0, fmt.Errorf("pcm: unsupported sample kind %s", s.kind)
	}

	need := len(dst) * width
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n, err := io.ReadFull(s.r, s.buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return 0, fmt.Errorf("%w", err)
	}

	samples := n / width
	samples -= samples % s.channels
	for i := range samples {
		dst[i] = float64(s.kind.Sample(s.buf[i*width:]))
	}

	if samples == 0 && err != nil {
		return 0, io.EOF
	}
	return samples, nil
}
