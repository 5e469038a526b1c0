// SPDX-License-Identifier: EPL-2.0

// Package pcm handles headerless PCM streams.
//
// A .pcm file is the bare sample stream: interleaved frames, channel-major within each
// frame, little-endian signed integers of the configured width. Nothing describes the
// stream, so readers must know the sample rate, channel count and sample kind up front.
//
// # Writing
//
// Container is the audio.Container for .pcm outputs. Its header is empty:
//
//	reg := audio.NewRegistry()
//	reg.Register(pcm.Container{})
//
// # Reading
//
// NewSource turns a raw stream back into an audio.Source:
//
//	f, _ := os.Open("tone.pcm")
//	src := pcm.NewSource(f, 48000, 2, audio.Int16)
//	buf := make([]float64, 4096)
//	n, err := src.ReadSamples(buf)
package pcm
