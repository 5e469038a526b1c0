// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
)

// riffOverhead is the part of the RIFF chunk size that precedes the data payload.
const riffOverhead = 36

// Settings are the already-parsed primitive inputs of a generation request.
type Settings struct {
	SampleRate      int
	Channels        int
	BitsPerSample   int
	Amplitude       int
	Frequency       int
	DurationSeconds int
	BaseName        string
}

// Parameters is a validated, immutable description of the tone to synthesize.
// Obtain one through NewParameters; the zero value is invalid.
type Parameters struct {
	sampleRate int
	channels   int
	kind       SampleKind
	amplitude  int
	frequency  int
	duration   int
	baseName   string
}

// NewParameters validates s. Every failing field is reported; the returned error matches
// ErrInvalidParameter and each failure can be extracted as a *ParameterError.
func NewParameters(s Settings) (Parameters, error) {
	var errs []error
	reject := func(field string, value any, reason string) {
		errs = append(errs, &ParameterError{Field: field, Value: value, Reason: reason})
	}

	if s.SampleRate <= 0 {
		reject("sampleRate", s.SampleRate, "must be positive")
	} else if uint64(s.SampleRate) > math.MaxUint32 {
		reject("sampleRate", s.SampleRate, "does not fit the WAV header")
	}

	if s.Channels <= 0 {
		reject("channelCount", s.Channels, "must be positive")
	} else if s.Channels > math.MaxUint16 {
		reject("channelCount", s.Channels, "does not fit the WAV header")
	}

	kind, err := SampleKindForBits(s.BitsPerSample)
	if err != nil {
		errs = append(errs, err)
	}

	if s.DurationSeconds < 0 {
		reject("durationSeconds", s.DurationSeconds, "must not be negative")
	}

	if s.BaseName == "" {
		reject("outputBaseName", s.BaseName, "must not be empty")
	}

	if s.Frequency < 0 {
		reject("frequency", s.Frequency, "must not be negative")
	}

	if s.Amplitude < 0 {
		reject("amplitude", s.Amplitude, "must not be negative")
	} else if kind.Valid() && int64(s.Amplitude) > kind.MaxAmplitude() {
		reject("amplitude", s.Amplitude, "exceeds the "+kind.String()+" range")
	}

	if len(errs) > 0 {
		return Parameters{}, errors.Join(errs...)
	}

	p := Parameters{
		sampleRate: s.SampleRate,
		channels:   s.Channels,
		kind:       kind,
		amplitude:  s.Amplitude,
		frequency:  s.Frequency,
		duration:   s.DurationSeconds,
		baseName:   s.BaseName,
	}

	// Size fields are only meaningful once the inputs above are sane.
	if uint64(p.BlockAlign()) > math.MaxUint16 {
		reject("channelCount", s.Channels, "block align does not fit the WAV header")
	}
	if uint64(p.ByteRate()) > math.MaxUint32 {
		reject("sampleRate", s.SampleRate, "byte rate does not fit the WAV header")
	}
	if limit := uint64(math.MaxUint32 - riffOverhead); p.duration > 0 && uint64(p.duration) > limit/uint64(p.ByteRate()) {
		reject("durationSeconds", s.DurationSeconds, "payload does not fit the WAV header")
	}
	if len(errs) > 0 {
		return Parameters{}, errors.Join(errs...)
	}

	return p, nil
}

// Validate reports whether p was produced by NewParameters.
func (p Parameters) Validate() error {
	if !p.kind.Valid() || p.sampleRate <= 0 || p.channels <= 0 || p.baseName == "" {
		return &ParameterError{Field: "parameters", Value: p.baseName, Reason: "not initialized"}
	}
	return nil
}

func (p Parameters) SampleRate() int      { return p.sampleRate }
func (p Parameters) Channels() int        { return p.channels }
func (p Parameters) Kind() SampleKind     { return p.kind }
func (p Parameters) BitsPerSample() int   { return p.kind.Bits() }
func (p Parameters) Amplitude() int       { return p.amplitude }
func (p Parameters) Frequency() int       { return p.frequency }
func (p Parameters) DurationSeconds() int { return p.duration }
func (p Parameters) BaseName() string     { return p.baseName }

// FramesPerChannel is sampleRate × durationSeconds.
func (p Parameters) FramesPerChannel() uint64 {
	return uint64(p.sampleRate) * uint64(p.duration)
}

// BlockAlign is the byte size of one frame holding a sample for every channel.
func (p Parameters) BlockAlign() int { return p.channels * p.kind.Bytes() }

func (p Parameters) ByteRate() int { return p.sampleRate * p.BlockAlign() }

// PayloadBytes is the length of the encoded sample stream.
func (p Parameters) PayloadBytes() uint64 {
	return p.FramesPerChannel() * uint64(p.BlockAlign())
}

// FileName returns the output path for a container extension, e.g. "tone.wav".
func (p Parameters) FileName(ext string) string {
	return p.baseName + "." + ext
}
