package blipvert

import "github.com/blipvert-go/blipvert/internal/pool"

// AcquireBuffer returns a buffer of exactly CalculateBufferSize(id,
// width, height, stride) bytes, drawn from a size-bucketed pool rather
// than freshly allocated. Callers converting many frames of the same
// format back to back (a capture pipeline, a benchmark loop) use this
// to keep steady-state allocation out of the hot path; a one-shot
// conversion can ignore it and just allocate.
func AcquireBuffer(id FormatId, width, height, stride int) []byte {
	if stride == 0 {
		stride = MinStride(id, width)
	}
	return pool.Get(CalculateBufferSize(id, width, height, stride))
}

// ReleaseBuffer returns a buffer obtained from AcquireBuffer to its
// pool. Passing a slice not obtained from AcquireBuffer is harmless: it
// is either dropped (too small to bucket) or retained as spare pool
// capacity.
func ReleaseBuffer(buf []byte) {
	pool.Put(buf)
}
