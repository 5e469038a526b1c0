// SPDX-License-Identifier: EPL-2.0

// Package tonegen synthesizes sine tones and writes them as raw PCM and WAV files.
//
// A request is described by an audio.Parameters value, validated once and immutable
// afterwards. Generating it produces two files next to each other:
//   - <base>.pcm: the bare interleaved sample stream
//   - <base>.wav: a 44-byte canonical header followed by the same stream
//
// # Quick Start
//
//	p, err := audio.NewParameters(audio.Settings{
//	    SampleRate:      48000,
//	    Channels:        2,
//	    BitsPerSample:   16,
//	    Amplitude:       1000,
//	    Frequency:       1000,
//	    DurationSeconds: 1,
//	    BaseName:        "tone",
//	})
//	if err != nil {
//	    // errors.Is(err, audio.ErrInvalidParameter)
//	}
//
//	summary, err := tonegen.Generate(p)
//	fmt.Println(summary)
//
// # Waveform
//
// Every sample is amplitude × sin(2π × frequency × t + phase), with t = i / sampleRate and
// phase = π on odd channels, so channel 1 is the inverse of channel 0. Values are truncated
// toward zero and saturated at the range of the selected sample width (int16 or int32).
//
// # Generators
//
// A Generator carries the logger, the output containers and the synthesis buffer size:
//
//	g := tonegen.NewGenerator(
//	    tonegen.WithLogger(logger),
//	    tonegen.WithBufferFrames(8192),
//	)
//	summary, err := g.Generate(p)
//
// Emit writes to arbitrary writers instead of files, which is how the tests exercise it:
//
//	var pcmBuf, wavBuf bytes.Buffer
//	err := g.Emit(p, audio.NewToneSource(p),
//	    tonegen.Stream{Container: pcm.Container{}, W: &pcmBuf},
//	    tonegen.Stream{Container: wav.Container{}, W: &wavBuf},
//	)
//
// # Errors
//
// Invalid parameters match audio.ErrInvalidParameter. Output failures match ErrFileOpen
// (an output could not be created) or ErrWrite (a header, sample or close failed).
// Generation is synchronous and has no cancellation; it blocks for as long as the
// sample loop takes. Partially written files are left on disk.
package tonegen
