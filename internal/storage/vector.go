// Package storage holds the column backing buffers.
//
// A Vector is a contiguous buffer of fixed-width integers with a logical
// length and an allocated capacity. Growth is two-phase: Stage allocates and
// fills the larger buffer without touching the Vector, and only Commit
// installs it. That lets a table grow all of its columns together and back
// out cleanly when any one of them cannot be allocated.
package storage

import (
	"golang.org/x/exp/constraints"
)

// NextCapacity returns the row capacity that follows current: initial for a
// table that has never been allocated, double otherwise.
func NextCapacity(current, initial int) int {
	if current == 0 {
		return initial
	}
	return current * 2
}

// Vector is a growable integer column buffer. The zero value is an
// unallocated, empty vector.
type Vector[T constraints.Integer] struct {
	data   []T
	length int
}

func (v *Vector[T]) Len() int {
	return v.length
}

// Cap returns the allocated capacity in cells.
func (v *Vector[T]) Cap() int {
	return len(v.data)
}

func (v *Vector[T]) Allocated() bool {
	return v.data != nil
}

// At returns the value at row i. It panics if i is outside [0, Len()).
func (v *Vector[T]) At(i int) T {
	if i < 0 || i >= v.length {
		panic("storage: vector index out of range")
	}
	return v.data[i]
}

// Values returns a copy of the logically valid values.
func (v *Vector[T]) Values() []T {
	out := make([]T, v.length)
	copy(out, v.data[:v.length])
	return out
}

// Append writes x at the end. It panics if the vector is full; callers
// reserve capacity with Stage first.
func (v *Vector[T]) Append(x T) {
	if v.length >= len(v.data) {
		panic("storage: append to full vector")
	}
	v.data[v.length] = x
	v.length++
}

// Stage allocates a buffer of capacity cells charged to budget and copies
// the current values into it. The vector itself is unchanged until Commit.
func (v *Vector[T]) Stage(capacity int, budget *Budget) (*Staged[T], error) {
	if capacity < v.length {
		capacity = v.length
	}
	if err := budget.Reserve(capacity); err != nil {
		return nil, err
	}
	data := make([]T, capacity)
	copy(data, v.data[:v.length])
	return &Staged[T]{vec: v, data: data, budget: budget}, nil
}

// Staged is a grown buffer waiting to replace a Vector's storage.
type Staged[T constraints.Integer] struct {
	vec    *Vector[T]
	data   []T
	budget *Budget
	done   bool
}

// Commit installs the staged buffer and releases the old one.
func (s *Staged[T]) Commit() {
	if s.done {
		return
	}
	s.done = true
	s.budget.Release(len(s.vec.data))
	s.vec.data = s.data
}

// Abort discards the staged buffer and returns its cells to the budget.
func (s *Staged[T]) Abort() {
	if s.done {
		return
	}
	s.done = true
	s.budget.Release(len(s.data))
	s.data = nil
}
