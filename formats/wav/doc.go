// SPDX-License-Identifier: EPL-2.0

// Package wav builds, writes and reads canonical PCM WAV containers.
//
// Only the 44-byte layout is produced: a RIFF header, a 16-byte fmt chunk and a data chunk
// header, followed immediately by interleaved little-endian samples.
//
// # Building Headers
//
// BuildHeader derives every field from the generation parameters and the payload length,
// which is always known before the first sample is written:
//
//	h := wav.BuildHeader(p, uint32(p.PayloadBytes()))
//	// h.ByteRate   = sampleRate × channels × bytesPerSample
//	// h.BlockAlign = channels × bytesPerSample
//	// h.ChunkSize  = h.Subchunk2Size + 36
//	_, err := h.WriteTo(file)
//
// Container wraps this as an audio.Container for the generator.
//
// # Reading Files Back
//
// ReadHeader parses the header without interpreting the samples, and Validate checks that
// the size fields agree with each other:
//
//	h, err := wav.ReadHeader(file)
//	if err == nil {
//	    err = h.Validate()
//	}
//
// Decoder returns the samples as an audio.Source:
//
//	src, err := wav.Decoder{}.Decode(file)
//	buf := make([]float64, 4096)
//	n, err := src.ReadSamples(buf)
//
// Inspect cross-checks a file with github.com/go-audio/wav, an independent parser:
//
//	info, err := wav.Inspect(file)
//	fmt.Println(info.Format.SampleRate, info.BitDepth, info.Frames)
//
// # Error Handling
//
// The package defines several sentinel errors:
//   - ErrNotWavFile: missing RIFF/WAVE tags, or go-audio rejected the file
//   - ErrUnsupportedWavLayout: the fmt chunk is not where the canonical layout puts it
//   - ErrUnsupportedWavChunks: the data chunk does not follow the fmt chunk
//   - ErrUnsupportedBitDepth: not 16-bit or 32-bit integer PCM
//   - ErrInconsistentHeader: size fields disagree
package wav
