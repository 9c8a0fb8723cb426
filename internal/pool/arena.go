package pool

import (
	"fmt"

	"fortio.org/safecast"
)

// Arena is an append-only slice addressed by 1-based indices; index 0 is
// reserved for "nothing".
type Arena[T any] struct {
	data []T
}

// NewArena creates an arena whose backing slice has capacity capHint.
func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{
		data: make([]T, 0, capHint),
	}
}

// Allocate appends value and returns its 1-based index.
func (a *Arena[T]) Allocate(value T) (uint32, error) {
	idx, err := safecast.Conv[uint32](len(a.data) + 1)
	if err != nil {
		return 0, fmt.Errorf("arena full: %w", err)
	}
	a.data = append(a.data, value)
	return idx, nil
}

// Get returns the element at index, or the zero value when index is 0 or
// out of range.
func (a *Arena[T]) Get(index uint32) (T, bool) {
	var zero T
	if index == 0 || int(index) > len(a.data) {
		return zero, false
	}
	return a.data[index-1], true
}

// Slice exposes the elements in insertion order. Read-only.
func (a *Arena[T]) Slice() []T {
	return a.data
}

func (a *Arena[T]) Len() int {
	return len(a.data)
}
