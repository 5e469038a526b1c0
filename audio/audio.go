// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved amplitude values, in the integer scale of the
	// target sample kind (not normalized). Returns number of values written (not frames).
	// When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float64) (n int, err error)
	// Close releases any resources.
	Close() error
}

// Container is an output file format wrapping the encoded sample stream.
type Container interface {
	// Extension is the file suffix without the leading dot (e.g., "wav").
	Extension() string
	// WriteHeader writes everything that precedes the sample stream.
	WriteHeader(w io.Writer, p Parameters) error
}

// Registry of output containers keyed by extension. Iteration follows registration order.
type Registry struct {
	containers map[string]Container
	order      []string
	mtx        *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		containers: make(map[string]Container),
		mtx:        &sync.Mutex{},
	}
}

// Register adds c under its extension. Registering the same extension again replaces the
// container but keeps its original position.
func (r *Registry) Register(c Container) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	ext := c.Extension()
	if _, ok := r.containers[ext]; !ok {
		r.order = append(r.order, ext)
	}
	r.containers[ext] = c
}

func (r *Registry) Get(ext string) (Container, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	c, ok := r.containers[ext]
	return c, ok
}

// Containers returns a snapshot of the registered containers in registration order.
func (r *Registry) Containers() []Container {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	out := make([]Container, 0, len(r.order))
	for _, ext := range r.order {
		out = append(out, r.containers[ext])
	}
	return out
}
