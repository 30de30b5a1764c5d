package tone

import (
	"encoding/binary"
	"io"
	"math"
	"sync"
)

// Reader adapts a Generator to the io.Reader of little-endian float32
// stereo frames expected by ebiten's audio player. Read returns io.EOF
// after the generator has played every event.
type Reader struct {
	mu  sync.Mutex
	gen *Generator
	buf []float32
}

func NewReader(gen *Generator) *Reader { return &Reader{gen: gen} }

func (r *Reader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	frames := len(p) / 8
	if frames == 0 {
		return 0, nil
	}
	need := frames * 2
	if cap(r.buf) < need {
		r.buf = make([]float32, need)
	}
	r.buf = r.buf[:need]
	r.gen.Process(r.buf)
	for i := 0; i < need; i++ {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(r.buf[i]))
	}
	if r.gen.Finished() {
		return frames * 8, io.EOF
	}
	return frames * 8, nil
}

func (r *Reader) Close() error { return nil }
