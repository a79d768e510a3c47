package dynarray

import "iter"

// Array is a resizable sequential container backed by one RawStorage block
// plus a live-element count. Slots [0, Len()) hold live values; slots
// [Len(), Cap()) are reserved but uninitialized. The zero value is a valid
// empty array and performs no allocation until the first growth.
//
// An Array must not be copied by value (go vet flags it); use Clone for a
// deep copy, or Move/MoveFrom/Swap to transfer ownership in O(1).
type Array[T any] struct {
	data RawStorage[T]
	size int
}

// New returns an empty array. Equivalent to new(Array[T]); no allocation.
func New[T any]() *Array[T] {
	return &Array[T]{}
}

// NewWithSize returns an array holding n default-constructed (zero value)
// elements, with capacity exactly n. n <= 0 yields an empty array.
func NewWithSize[T any](n int) *Array[T] {
	if n <= 0 {
		return &Array[T]{}
	}
	a := &Array[T]{size: n}
	a.data.buf = allocate[T](n)
	return a
}

// Move returns a new array that adopts src's storage in O(1). src is left
// empty (size 0, capacity 0). Never fails.
func Move[T any](src *Array[T]) *Array[T] {
	out := &Array[T]{}
	out.Swap(src)
	return out
}

// Clone returns a deep copy of the array: a block of exactly Len() slots
// with every element copy-constructed. If an element's Clone hook panics,
// the partially built copy is destroyed, the panic resumes, and the source
// is untouched (strong guarantee).
func (a *Array[T]) Clone() *Array[T] {
	out := &Array[T]{}
	if a.size > 0 {
		out.data.buf = allocate[T](a.size)
		cloneSlots(out.data.buf, a.live())
		out.size = a.size
	}
	return out
}

// CopyFrom copy-assigns rhs into a. When the current capacity cannot hold
// rhs, a full copy of rhs is built aside and swapped in, so a failure leaves
// a exactly as it was (strong guarantee). Otherwise elements are copied over
// in place: the overlapping prefix is copy-assigned, excess trailing
// elements are destroyed, and any extra elements are copy-constructed into
// reserved capacity (basic guarantee on failure). Self-assignment is a
// no-op.
func (a *Array[T]) CopyFrom(rhs *Array[T]) {
	if a == rhs {
		return
	}
	if a.Cap() < rhs.size {
		tmp := rhs.Clone()
		a.Swap(tmp)
		tmp.Release() // previous contents get their destruction notice
		return
	}
	overlap := min(a.size, rhs.size)
	assignSlots(a.data.buf[:overlap], rhs.data.buf[:overlap])
	if rhs.size < a.size {
		destroySlots(a.data.buf[rhs.size:a.size])
	} else if rhs.size > a.size {
		cloneSlots(a.data.buf[a.size:rhs.size], rhs.data.buf[a.size:rhs.size])
	}
	a.size = rhs.size
}

// MoveFrom move-assigns rhs into a by swapping the two in O(1); rhs ends up
// holding whatever a previously owned. Self-assignment is a no-op. Never
// fails.
func (a *Array[T]) MoveFrom(rhs *Array[T]) {
	if a == rhs {
		return
	}
	a.Swap(rhs)
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int {
	return a.size
}

// Cap returns the number of slots in the owned block.
func (a *Array[T]) Cap() int {
	return a.data.Cap()
}

// At returns the address of the element at index i, valid for i < Len().
// Out-of-range indices are precondition violations: a descriptive panic
// under the dynarraydebug build tag, the runtime's bounds panic otherwise.
func (a *Array[T]) At(i int) *T {
	assertf(i >= 0 && i < a.size, "dynarray: index %d out of range [0, %d)", i, a.size)
	return &a.live()[i]
}

// Slice returns the live elements as a contiguous slice view, aliasing the
// array's storage. The view is invalidated by any operation that grows the
// array.
func (a *Array[T]) Slice() []T {
	return a.live()
}

// All returns an iterator over index/element pairs in storage order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.live() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Swap exchanges contents and capacity with other in O(1). Never fails.
func (a *Array[T]) Swap(other *Array[T]) {
	a.data.Swap(&other.data)
	a.size, other.size = other.size, a.size
}

// Clear destroys all live elements but keeps the block, so the capacity
// survives for reuse.
func (a *Array[T]) Clear() {
	destroySlots(a.live())
	a.size = 0
}

// Release destroys all live elements and drops the block, returning the
// array to the empty state. The array remains usable afterwards.
func (a *Array[T]) Release() {
	destroySlots(a.live())
	a.size = 0
	a.data.Release()
}

// live returns the slots holding constructed elements.
func (a *Array[T]) live() []T {
	return a.data.buf[:a.size]
}
