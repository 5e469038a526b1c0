// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/ik5/tonegen/audio"
)

const (
	// StepSize is how far one nudge moves the amplitude or frequency.
	StepSize = 100
	// MaxStepValue bounds upward nudges of amplitude and frequency.
	MaxStepValue = 20000
	// MaxChannels is the largest channel count offered as a preset.
	MaxChannels = 8
)

// StandardSampleRates are the preset sample rates, most common first.
var StandardSampleRates = []int{48000, 44100, 16000, 8000}

// Config holds the default generation request and CLI behaviour.
type Config struct {
	SampleRate      int
	Channels        int
	BitsPerSample   int
	Amplitude       int
	Frequency       int
	DurationSeconds int
	Output          string
	Debug           bool
}

// Load reads environment variables and applies defaults.
func Load() (Config, error) {
	cfg := Config{
		Output: envOrDefault("TONEGEN_OUTPUT", "no_name"),
	}

	var errs []error
	intVar := func(dst *int, key string, fallback int) {
		n, err := intFromEnv(key, fallback)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*dst = n
	}

	intVar(&cfg.SampleRate, "TONEGEN_SAMPLE_RATE", StandardSampleRates[0])
	intVar(&cfg.Channels, "TONEGEN_CHANNELS", 1)
	intVar(&cfg.BitsPerSample, "TONEGEN_BITS", 16)
	intVar(&cfg.Amplitude, "TONEGEN_AMPLITUDE", 1000)
	intVar(&cfg.Frequency, "TONEGEN_FREQUENCY", 1000)
	intVar(&cfg.DurationSeconds, "TONEGEN_DURATION", 0)

	debug, err := boolFromEnv("TONEGEN_DEBUG", false)
	if err != nil {
		errs = append(errs, err)
	}
	cfg.Debug = debug

	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	return cfg, nil
}

// Settings converts the configuration into unvalidated generation inputs.
func (c Config) Settings() audio.Settings {
	return audio.Settings{
		SampleRate:      c.SampleRate,
		Channels:        c.Channels,
		BitsPerSample:   c.BitsPerSample,
		Amplitude:       c.Amplitude,
		Frequency:       c.Frequency,
		DurationSeconds: c.DurationSeconds,
		BaseName:        c.Output,
	}
}

// Nudge applies presses steps of StepSize to v. Upward steps only apply while v is below
// MaxStepValue and downward steps only while v is above zero, so values never leave
// [0, MaxStepValue] by nudging alone.
func Nudge(v, presses int) int {
	for ; presses > 0; presses-- {
		if v < MaxStepValue {
			v += StepSize
		}
	}
	for ; presses < 0; presses++ {
		if v > 0 {
			v -= StepSize
		}
	}
	return v
}

// IsStandardSampleRate reports whether rate is one of the presets.
func IsStandardSampleRate(rate int) bool {
	return slices.Contains(StandardSampleRates, rate)
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intFromEnv(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s parse error: %w", key, err)
	}
	return n, nil
}

func boolFromEnv(key string, fallback bool) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if v == "" {
		return fallback, nil
	}
	switch v {
	case "1", "true", "t", "yes", "y", "on":
		return true, nil
	case "0", "false", "f", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("%s parse error: expected bool", key)
	}
}
