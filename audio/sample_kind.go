// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ik5/tonegen/utils"
)

// SampleKind selects the signed integer width of encoded samples.
type SampleKind uint8

const (
	Int16 SampleKind = iota + 1
	Int32
)

// SampleKindForBits maps a bits-per-sample value to its SampleKind.
func SampleKindForBits(bits int) (SampleKind, error) {
	switch bits {
	case 16:
		return Int16, nil
	case 32:
		return Int32, nil
	}
	return 0, &ParameterError{Field: "bitsPerSample", Value: bits, Reason: "must be 16 or 32"}
}

func (k SampleKind) Valid() bool { return k == Int16 || k == Int32 }

func (k SampleKind) Bits() int { return k.Bytes() * 8 }

func (k SampleKind) Bytes() int {
	switch k {
	case Int16:
		return 2
	case Int32:
		return 4
	}
	return 0
}

// MaxAmplitude is the largest positive value the kind can represent.
func (k SampleKind) MaxAmplitude() int64 {
	switch k {
	case Int16:
		return math.MaxInt16
	case Int32:
		return math.MaxInt32
	}
	return 0
}

func (k SampleKind) String() string {
	switch k {
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	}
	return fmt.Sprintf("SampleKind(%d)", uint8(k))
}

// Encode truncates v toward zero and saturates it at the kind's range.
func (k SampleKind) Encode(v float64) int32 {
	if k == Int16 {
		return int32(utils.TruncateToInt16(v))
	}
	return utils.TruncateToInt32(v)
}

// AppendSample appends the little-endian encoding of v to dst.
func (k SampleKind) AppendSample(dst []byte, v float64) []byte {
	switch k {
	case Int16:
		return binary.LittleEndian.AppendUint16(dst, uint16(utils.TruncateToInt16(v)))
	case Int32:
		return binary.LittleEndian.AppendUint32(dst, uint32(utils.TruncateToInt32(v)))
	}
	return dst
}

// Sample decodes one little-endian sample from the start of b.
// b must hold at least Bytes() bytes.
func (k SampleKind) Sample(b []byte) int32 {
	if k == Int16 {
		return int32(int16(binary.LittleEndian.Uint16(b)))
	}
	return int32(binary.LittleEndian.Uint32(b))
}
