// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/ik5/tonegen"
	"github.com/ik5/tonegen/audio"
	"github.com/ik5/tonegen/formats/wav"
	"github.com/ik5/tonegen/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "config:", err)
		return 2
	}

	fs := flag.NewFlagSet("tonegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.SampleRate, "rate", cfg.SampleRate, "sample rate in Hz (presets: 48000, 44100, 16000, 8000)")
	fs.IntVar(&cfg.Channels, "channels", cfg.Channels, "channel count")
	fs.IntVar(&cfg.BitsPerSample, "bits", cfg.BitsPerSample, "bits per sample (16 or 32)")
	fs.IntVar(&cfg.Amplitude, "amp", cfg.Amplitude, "peak amplitude")
	fs.IntVar(&cfg.Frequency, "freq", cfg.Frequency, "tone frequency in Hz")
	fs.IntVar(&cfg.DurationSeconds, "duration", cfg.DurationSeconds, "duration in whole seconds")
	fs.StringVar(&cfg.Output, "o", cfg.Output, "output base name, writes <name>.pcm and <name>.wav")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "development logging")
	ampSteps := fs.Int("amp-step", 0, "nudge amplitude by N steps of 100 (negative to lower)")
	freqSteps := fs.Int("freq-step", 0, "nudge frequency by N steps of 100 (negative to lower)")
	verify := fs.Bool("verify", false, "read the .wav back and check it against the request")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintln(stderr, "logger:", err)
		return 2
	}
	defer logger.Sync()

	cfg.Amplitude = config.Nudge(cfg.Amplitude, *ampSteps)
	cfg.Frequency = config.Nudge(cfg.Frequency, *freqSteps)

	if !config.IsStandardSampleRate(cfg.SampleRate) {
		logger.Warn("non-standard sample rate", zap.Int("sampleRate", cfg.SampleRate))
	}
	if cfg.Channels > config.MaxChannels {
		logger.Warn("channel count above presets", zap.Int("channels", cfg.Channels))
	}

	p, err := audio.NewParameters(cfg.Settings())
	if err != nil {
		logger.Error("invalid parameters", zap.Error(err))
		fmt.Fprintln(stdout, tonegen.FailureText(cfg.Output))
		return 1
	}

	gen := tonegen.NewGenerator(tonegen.WithLogger(logger))
	summary, err := gen.Generate(p)
	if err != nil {
		logger.Error("generation failed", zap.Error(err))
		fmt.Fprintln(stdout, tonegen.FailureText(cfg.Output))
		return 1
	}

	if *verify {
		if err := verifyWAV(p, logger); err != nil {
			logger.Error("verification failed", zap.Error(err))
			fmt.Fprintln(stdout, tonegen.FailureText(cfg.Output))
			return 1
		}
	}

	fmt.Fprintln(stdout, summary)
	return 0
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// verifyWAV re-reads the generated file with both the local header reader and go-audio.
func verifyWAV(p audio.Parameters, logger *zap.Logger) error {
	name := p.FileName(wav.Extension)
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer f.Close()

	h, err := wav.ReadHeader(f)
	if err != nil {
		return err
	}
	if err := h.Validate(); err != nil {
		return err
	}
	if uint64(h.Subchunk2Size) != p.PayloadBytes() {
		return fmt.Errorf("%w: data size %d, want %d", wav.ErrInconsistentHeader, h.Subchunk2Size, p.PayloadBytes())
	}

	if p.FramesPerChannel() == 0 {
		logger.Info("verified header-only file", zap.String("file", name))
		return nil
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w", err)
	}
	info, err := wav.Inspect(f)
	if err != nil {
		return err
	}
	if uint64(info.Frames) != p.FramesPerChannel() || info.BitDepth != p.BitsPerSample() {
		return fmt.Errorf("%w: go-audio sees %d frames at %d bits", wav.ErrInconsistentHeader, info.Frames, info.BitDepth)
	}

	logger.Info("verified",
		zap.String("file", name),
		zap.Int("frames", info.Frames),
		zap.Int("sampleRate", info.Format.SampleRate),
		zap.Int("channels", info.Format.NumChannels),
	)
	return nil
}
