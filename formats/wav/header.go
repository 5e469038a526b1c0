// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/tonegen/audio"
)

const (
	// HeaderSize is the length of the canonical RIFF/WAVE/fmt/data header.
	HeaderSize = 44

	// FormatPCM is the audioFormat tag for uncompressed integer PCM.
	FormatPCM = 1

	fmtChunkSize = 16
	riffOverhead = HeaderSize - 8
)

// Header mirrors the fields of the canonical 44-byte WAV header. Chunk tags are implied.
type Header struct {
	ChunkSize     uint32
	Subchunk1Size uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	Subchunk2Size uint32
}

// BuildHeader derives the header for p with a data chunk of payloadLen bytes.
// Subchunk2Size is payloadLen and ChunkSize is payloadLen + 36.
func BuildHeader(p audio.Parameters, payloadLen uint32) Header {
	bytesPerSample := uint32(p.Kind().Bytes())
	numChannels := uint32(p.Channels())

	return Header{
		ChunkSize:     payloadLen + riffOverhead,
		Subchunk1Size: fmtChunkSize,
		AudioFormat:   FormatPCM,
		NumChannels:   uint16(numChannels),
		SampleRate:    uint32(p.SampleRate()),
		ByteRate:      uint32(p.SampleRate()) * numChannels * bytesPerSample,
		BlockAlign:    uint16(numChannels * bytesPerSample),
		BitsPerSample: uint16(p.BitsPerSample()),
		Subchunk2Size: payloadLen,
	}
}

// Bytes encodes h in the canonical little-endian layout.
func (h Header) Bytes() []byte {
	header := make([]byte, HeaderSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], h.ChunkSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], h.Subchunk1Size)
	binary.LittleEndian.PutUint16(header[20:22], h.AudioFormat)
	binary.LittleEndian.PutUint16(header[22:24], h.NumChannels)
	binary.LittleEndian.PutUint32(header[24:28], h.SampleRate)
	binary.LittleEndian.PutUint32(header[28:32], h.ByteRate)
	binary.LittleEndian.PutUint16(header[32:34], h.BlockAlign)
	binary.LittleEndian.PutUint16(header[34:36], h.BitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], h.Subchunk2Size)

	return header
}

// WriteTo writes the encoded header in one operation.
func (h Header) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(h.Bytes())
	if err != nil {
		return int64(n), fmt.Errorf("%w", err)
	}
	return int64(n), nil
}

// Validate checks the derived fields against each other.
func (h Header) Validate() error {
	bytesPerSample := uint32(h.BitsPerSample / 8)

	switch {
	case h.ChunkSize != h.Subchunk2Size+riffOverhead:
		return fmt.Errorf("%w: chunk size %d, data size %d", ErrInconsistentHeader, h.ChunkSize, h.Subchunk2Size)
	case uint32(h.BlockAlign) != uint32(h.NumChannels)*bytesPerSample:
		return fmt.Errorf("%w: block align %d", ErrInconsistentHeader, h.BlockAlign)
	case h.ByteRate != h.SampleRate*uint32(h.BlockAlign):
		return fmt.Errorf("%w: byte rate %d", ErrInconsistentHeader, h.ByteRate)
	case h.BlockAlign != 0 && h.Subchunk2Size%uint32(h.BlockAlign) != 0:
		return fmt.Errorf("%w: data size %d is not a whole number of frames", ErrInconsistentHeader, h.Subchunk2Size)
	}
	return nil
}

// ReadHeader parses a canonical 44-byte header from r. Only the chunk tags and the PCM
// format are enforced; use Validate to check the size fields.
func ReadHeader(r io.Reader) (Header, error) {
	header := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return Header{}, fmt.Errorf("%w", err)
	}

	if !bytes.HasPrefix(header[:4], []byte("RIFF")) || !bytes.HasPrefix(header[8:12], []byte("WAVE")) {
		return Header{}, ErrNotWavFile
	}
	if !bytes.HasPrefix(header[12:16], []byte("fmt ")) {
		return Header{}, ErrUnsupportedWavLayout
	}
	if !bytes.HasPrefix(header[36:40], []byte("data")) {
		return Header{}, ErrUnsupportedWavChunks
	}

	return Header{
		ChunkSize:     binary.LittleEndian.Uint32(header[4:8]),
		Subchunk1Size: binary.LittleEndian.Uint32(header[16:20]),
		AudioFormat:   binary.LittleEndian.Uint16(header[20:22]),
		NumChannels:   binary.LittleEndian.Uint16(header[22:24]),
		SampleRate:    binary.LittleEndian.Uint32(header[24:28]),
		ByteRate:      binary.LittleEndian.Uint32(header[28:32]),
		BlockAlign:    binary.LittleEndian.Uint16(header[32:34]),
		BitsPerSample: binary.LittleEndian.Uint16(header[34:36]),
		Subchunk2Size: binary.LittleEndian.Uint32(header[40:44]),
	}, nil
}
