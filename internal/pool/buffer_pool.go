package pool

import "sync"

// SlicePool implements a pool of slices for efficient memory reuse
type SlicePool[T any] struct {
	pool sync.Pool
	size int
}

// NewSlicePool creates a new pool whose fresh slices have the given capacity
func NewSlicePool[T any](size int) *SlicePool[T] {
	return &SlicePool[T]{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]T, 0, size)
				return &buffer
			},
		},
		size: size,
	}
}

// Get retrieves a zero-length slice from the pool or creates a new one if none are available
func (sp *SlicePool[T]) Get() *[]T {
	return sp.pool.Get().(*[]T)
}

// GetZeroed retrieves a slice of length n with every element set to its zero value
func (sp *SlicePool[T]) GetZeroed(n int) *[]T {
	buffer := sp.Get()
	if cap(*buffer) < n {
		*buffer = make([]T, n)
		return buffer
	}
	*buffer = (*buffer)[:n]
	clear(*buffer)
	return buffer
}

// Put returns a slice to the pool for reuse
func (sp *SlicePool[T]) Put(buffer *[]T) {
	// Reset length but keep capacity
	*buffer = (*buffer)[:0]
	sp.pool.Put(buffer)
}

// RuneBufferPool implements a pool of rune slices
type RuneBufferPool struct {
	*SlicePool[rune]
}

// NewRuneBufferPool creates a new pool of rune slices with the specified size
func NewRuneBufferPool(size int) *RuneBufferPool {
	return &RuneBufferPool{SlicePool: NewSlicePool[rune](size)}
}

// GetRunes retrieves a rune buffer holding the runes of s
func (rbp *RuneBufferPool) GetRunes(s string) *[]rune {
	buffer := rbp.Get()
	for _, r := range s {
		*buffer = append(*buffer, r)
	}
	return buffer
}
