package array

import "sync/atomic"

// buffer is a reference-counted element store shared between a Dense
// array and every view derived from it. The count keeps the backing
// slice alive for as long as any view references it, so a view can
// never observe a freed referent.
type buffer[T Value] struct {
	data     []T
	refCount atomic.Int32
}

func newBuffer[T Value](size int) *buffer[T] {
	buf := &buffer[T]{data: make([]T, size)}
	buf.refCount.Store(1)
	return buf
}

func (b *buffer[T]) addRef() {
	b.refCount.Add(1)
}

// release drops one reference and clears the slice when the last
// holder is gone.
func (b *buffer[T]) release() {
	if b.refCount.Add(-1) == 0 {
		b.data = nil
	}
}

// isUnique reports whether exactly one holder references the buffer,
// which permits in-place reuse.
func (b *buffer[T]) isUnique() bool {
	return b.refCount.Load() == 1
}
