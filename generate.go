// SPDX-License-Identifier: EPL-2.0

package tonegen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/ik5/tonegen/audio"
	"github.com/ik5/tonegen/formats/pcm"
	"github.com/ik5/tonegen/formats/wav"
)

const (
	defaultBufferFrames = 4096
	writeBufferSize     = 64 * 1024
)

// Generator synthesizes tones and writes one file per registered container.
// It holds no per-request state, so one Generator may serve concurrent calls
// as long as they use different base names.
type Generator struct {
	logger       *zap.Logger
	registry     *audio.Registry
	bufferFrames int
}

type Option func(*Generator)

func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithRegistry replaces the default .pcm + .wav outputs.
func WithRegistry(r *audio.Registry) Option {
	return func(g *Generator) {
		if r != nil {
			g.registry = r
		}
	}
}

// WithBufferFrames sets how many frames are synthesized per write.
func WithBufferFrames(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.bufferFrames = n
		}
	}
}

// DefaultRegistry writes the bare stream first, then the WAV container.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register(pcm.Container{})
	reg.Register(wav.Container{})
	return reg
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		logger:       zap.NewNop(),
		registry:     DefaultRegistry(),
		bufferFrames: defaultBufferFrames,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate writes <base>.pcm and <base>.wav for p with a default Generator and returns
// the summary text.
func Generate(p audio.Parameters) (string, error) {
	return NewGenerator().Generate(p)
}

// Stream pairs a container with the writer receiving it.
type Stream struct {
	Container audio.Container
	W         io.Writer
}

// Generate opens every output of p, writes it, and closes it. Both files are always
// closed before returning. Files are not removed on failure.
func (g *Generator) Generate(p audio.Parameters) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	g.logger.Debug("generating tone",
		zap.String("base", p.BaseName()),
		zap.Int("sampleRate", p.SampleRate()),
		zap.Int("channels", p.Channels()),
		zap.Int("bitsPerSample", p.BitsPerSample()),
		zap.Int("amplitude", p.Amplitude()),
		zap.Int("frequency", p.Frequency()),
		zap.Int("duration", p.DurationSeconds()),
	)

	containers := g.registry.Containers()
	files := make([]*os.File, 0, len(containers))
	closeAll := func() error {
		var errs []error
		for _, f := range files {
			if err := f.Close(); err != nil {
				errs = append(errs, fmt.Errorf("%w: %s: %w", ErrWrite, f.Name(), err))
			}
		}
		files = nil
		return errors.Join(errs...)
	}
	defer closeAll()

	streams := make([]Stream, 0, len(containers))
	for _, c := range containers {
		name := p.FileName(c.Extension())
		f, err := os.Create(name)
		if err != nil {
			g.logger.Error("cannot open output", zap.String("file", name), zap.Error(err))
			return "", fmt.Errorf("%w: %s: %w", ErrFileOpen, name, err)
		}
		files = append(files, f)
		streams = append(streams, Stream{Container: c, W: f})
	}

	src := audio.NewToneSource(p)
	defer src.Close()

	if err := g.Emit(p, src, streams...); err != nil {
		g.logger.Error("tone generation failed", zap.String("base", p.BaseName()), zap.Error(err))
		return "", err
	}

	if err := closeAll(); err != nil {
		g.logger.Error("cannot close output", zap.String("base", p.BaseName()), zap.Error(err))
		return "", err
	}

	g.logger.Info("tone written",
		zap.String("base", p.BaseName()),
		zap.Int("outputs", len(streams)),
		zap.Uint64("frames", p.FramesPerChannel()),
		zap.Uint64("payloadBytes", p.PayloadBytes()),
	)

	return Summary(p), nil
}

// Emit writes each stream's container header, then the encoded samples of src to every
// stream. Samples are interleaved per frame in channel order. Exactly
// p.FramesPerChannel() frames are consumed from src; a source that runs dry earlier
// yields ErrShortStream.
func (g *Generator) Emit(p audio.Parameters, src audio.Source, streams ...Stream) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if src.Channels() != p.Channels() {
		return fmt.Errorf("%w: source has %d channels, want %d", audio.ErrInvalidParameter, src.Channels(), p.Channels())
	}

	writers := make([]*bufio.Writer, len(streams))
	for i, s := range streams {
		writers[i] = bufio.NewWriterSize(s.W, writeBufferSize)
		if err := s.Container.WriteHeader(writers[i], p); err != nil {
			return fmt.Errorf("%w: %s header: %w", ErrWrite, s.Container.Extension(), err)
		}
	}

	kind := p.Kind()
	channels := p.Channels()
	frames := p.FramesPerChannel()
	remaining := frames * uint64(channels)

	var (
		buf []float64
		enc []byte
	)
	if remaining > 0 {
		chunk := min(uint64(g.bufferFrames), frames) * uint64(channels)
		buf = make([]float64, chunk)
		enc = make([]byte, 0, len(buf)*kind.Bytes())
	}

	for remaining > 0 {
		want := min(uint64(len(buf)), remaining)
		n, err := src.ReadSamples(buf[:want])
		if n > 0 {
			enc = enc[:0]
			for _, v := range buf[:n] {
				enc = kind.AppendSample(enc, v)
			}
			for i, w := range writers {
				if _, werr := w.Write(enc); werr != nil {
					return fmt.Errorf("%w: %s: %w", ErrWrite, streams[i].Container.Extension(), werr)
				}
			}
			remaining -= uint64(n)
		}

		if remaining == 0 {
			break
		}
		if errors.Is(err, io.EOF) || (n == 0 && err == nil) {
			return fmt.Errorf("%w: %d samples missing", ErrShortStream, remaining)
		}
		if err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	for i, w := range writers {
		if err := w.Flush(); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrWrite, streams[i].Container.Extension(), err)
		}
	}

	return nil
}

// Summary is the human readable echo of p shown after a successful generation.
func Summary(p audio.Parameters) string {
	return fmt.Sprintf("[DONE] %s : [ f:%d | amp: %d | ch: %d | sr: %d | br: %d ] (duration: %ds )",
		p.BaseName(),
		p.Frequency(),
		p.Amplitude(),
		p.Channels(),
		p.SampleRate(),
		p.BitsPerSample(),
		p.DurationSeconds(),
	)
}

// FailureText is the message shown when generating base failed.
func FailureText(base string) string {
	return fmt.Sprintf("[FALSE] Generate file %s false.", base)
}
