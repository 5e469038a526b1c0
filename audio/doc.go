// SPDX-License-Identifier: EPL-2.0

// Package audio provides the synthesis primitives of tone generation.
//
// This package contains:
//   - Settings and Parameters: raw request inputs and their validated form
//   - SampleKind: the int16/int32 sample width and its encoding
//   - Tone and ToneSource: the sine synthesizer and its streaming form
//   - Source and Container interfaces, and a Registry of output containers
//
// # Parameters
//
// NewParameters validates everything at once and reports each bad field:
//
//	p, err := audio.NewParameters(audio.Settings{
//	    SampleRate: 48000, Channels: 1, BitsPerSample: 16,
//	    Amplitude: 1000, Frequency: 1000, DurationSeconds: 1, BaseName: "tone",
//	})
//	var pe *audio.ParameterError
//	if errors.As(err, &pe) {
//	    fmt.Println(pe.Field, pe.Reason)
//	}
//
// Rejected: sampleRate <= 0, channelCount <= 0, bitsPerSample other than 16 or 32,
// durationSeconds < 0, an empty base name, a negative frequency, an amplitude outside
// [0, max of the sample width], and sizes that do not fit the 32-bit WAV header fields.
//
// # Sample Format
//
// Sources yield float64 values already in the integer scale of the target width. A tone
// with amplitude 1000 swings between -1000 and 1000. SampleKind.Encode truncates toward
// zero and saturates:
//
//	audio.Int16.Encode(999.9)   // 999
//	audio.Int16.Encode(-999.9)  // -999
//	audio.Int16.Encode(40000)   // 32767
//
// # Waveform
//
// Tone.Sample(t, ch) = Amplitude × sin(2π × Frequency × t + Phase(ch)), where Phase is 0
// on even channels and π on odd channels.
//
// # Reading Sources
//
// Sources return io.EOF when no more data is available:
//
//	src := audio.NewToneSource(p)
//	buf := make([]float64, 4096*p.Channels())
//	for {
//	    n, err := src.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	}
package audio
