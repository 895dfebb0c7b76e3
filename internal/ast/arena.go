package ast

import "fortio.org/safecast"

// Arena is an append-only store. Indices are 1-based; 0 is the null ID.
type Arena[T any] struct {
	data []T
}

// NewArena returns an arena whose backing slice has capacity capHint.
func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{
		data: make([]T, 0, capHint),
	}
}

// Allocate appends value and returns its 1-based index.
func (a *Arena[T]) Allocate(value T) uint32 {
	a.data = append(a.data, value)
	return safecast.MustConvert[uint32](len(a.data))
}

// Get returns the element at index, or nil for the null ID.
func (a *Arena[T]) Get(index uint32) *T {
	if index == 0 {
		return nil
	}
	return &a.data[index-1]
}

// Slice exposes the backing storage. Callers must not append.
func (a *Arena[T]) Slice() []T {
	return a.data
}

func (a *Arena[T]) Len() uint32 {
	return safecast.MustConvert[uint32](len(a.data))
}
