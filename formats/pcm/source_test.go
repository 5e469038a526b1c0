// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/ik5/tonegen/audio"
)

func encode16(samples ...int16) []byte {
	buf := new(bytes.Buffer)
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}
	return buf.Bytes()
}

func encode32(samples ...int32) []byte {
	buf := new(bytes.Buffer)
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}
	return buf.Bytes()
}

func TestSource_Properties(t *testing.T) {
	t.Parallel()

	src := NewSource(bytes.NewReader(nil), 44100, 2, audio.Int16)

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_Read16(t *testing.T) {
	t.Parallel()

	want := []int16{0, 1000, -1000, 32767, -32768}
	src := NewSource(bytes.NewReader(encode16(want...)), 8000, 1, audio.Int16)

	dst := make([]float64, 10)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(want) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(want))
	}
	for i, w := range want {
		if dst[i] != float64(w) {
			t.Errorf("sample[%d] = %v, want %d", i, dst[i], w)
		}
	}

	n, err = src.ReadSamples(dst)
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("second ReadSamples() = %d, %v; want 0, io.EOF", n, err)
	}
}

func TestSource_Read32(t *testing.T) {
	t.Parallel()

	want := []int32{0, 100000, -100000, 2147483647, -2147483648}
	src := NewSource(bytes.NewReader(encode32(want...)), 8000, 1, audio.Int32)

	dst := make([]float64, len(want))
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(want) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(want))
	}
	for i, w := range want {
		if dst[i] != float64(w) {
			t.Errorf("sample[%d] = %v, want %d", i, dst[i], w)
		}
	}
}

func TestSource_SmallReads(t *testing.T) {
	t.Parallel()

	want := []int16{1, 2, 3, 4, 5, 6, 7}
	src := NewSource(bytes.NewReader(encode16(want...)), 8000, 1, audio.Int16)

	var got []float64
	dst := make([]float64, 3)
	for {
		n, err := src.ReadSamples(dst)
		got = append(got, dst[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(got) != len(want) {
		t.Fatalf("read %d samples, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i] != float64(w) {
			t.Errorf("sample[%d] = %v, want %d", i, got[i], w)
		}
	}
}

func TestSource_DropsPartialSample(t *testing.T) {
	t.Parallel()

	data := append(encode16(10, 20), 0x01)
	src := NewSource(bytes.NewReader(data), 8000, 1, audio.Int16)

	dst := make([]float64, 4)
	n, _ := src.ReadSamples(dst)
	if n != 2 {
		t.Errorf("ReadSamples() n = %d, want 2", n)
	}
}

func TestSource_DropsPartialFrame(t *testing.T) {
	t.Parallel()

	src := NewSource(bytes.NewReader(encode16(1, -1, 2, -2, 3)), 8000, 2, audio.Int16)

	dst := make([]float64, 8)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}
	for i, want := range []float64{1, -1, 2, -2} {
		if dst[i] != want {
			t.Errorf("sample[%d] = %v, want %v", i, dst[i], want)
		}
	}

	n, err = src.ReadSamples(dst)
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("second ReadSamples() = %d, %v; want 0, io.EOF", n, err)
	}
}

func TestSource_InvalidDstSize(t *testing.T) {
	t.Parallel()

	src := NewSource(bytes.NewReader(encode16(1, 2, 3, 4)), 8000, 2, audio.Int16)

	n, err := src.ReadSamples(make([]float64, 3))
	if n != 0 || !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadSamples() = %d, %v; want 0, ErrInvalidDstSize", n, err)
	}
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src := NewSource(errReader{err: boom}, 8000, 1, audio.Int16)

	_, err := src.ReadSamples(make([]float64, 4))
	if !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}

func TestSource_InvalidKind(t *testing.T) {
	t.Parallel()

	src := NewSource(bytes.NewReader(encode16(1)), 8000, 1, audio.SampleKind(0))

	if _, err := src.ReadSamples(make([]float64, 1)); err == nil {
		t.Error("ReadSamples() error = nil, want error for invalid kind")
	}
}

type closeRecorder struct {
	io.Reader
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestSource_ClosesUnderlyingReader(t *testing.T) {
	t.Parallel()

	rc := &closeRecorder{Reader: bytes.NewReader(nil)}
	src := NewSource(rc, 8000, 1, audio.Int16)

	if err := src.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !rc.closed {
		t.Error("Close() did not close the underlying reader")
	}
}
