package dynarray

// Reserve grows the capacity to exactly newCap slots. A newCap at or below
// the current capacity is a no-op; capacity never shrinks. On growth all
// live elements are relocated into the new block before it is adopted, so a
// failure anywhere before adoption leaves the array untouched (strong
// guarantee).
func (a *Array[T]) Reserve(newCap int) {
	if newCap <= a.Cap() {
		return
	}
	next := NewRawStorage[T](newCap)
	relocateSlots(next.Region(0, a.size), a.live())
	a.adopt(next)
}

// Resize sets the live-element count to newSize. Shrinking destroys the
// trailing elements; growing reserves at least newSize slots (doubling the
// capacity when it must increase) and default-constructs the new tail.
// Negative sizes are treated as zero.
func (a *Array[T]) Resize(newSize int) {
	if newSize < 0 {
		newSize = 0
	}
	switch {
	case newSize < a.size:
		destroySlots(a.data.buf[newSize:a.size])
	case newSize > a.size:
		if newSize > a.Cap() {
			a.Reserve(max(newSize, a.Cap()*2))
		}
		clear(a.data.buf[a.size:newSize]) // default-construct the tail
	}
	a.size = newSize
}

// PushBack appends v and returns the address of the stored element.
func (a *Array[T]) PushBack(v T) *T {
	return a.EmplaceBack(func() T { return v })
}

// EmplaceBack appends one element constructed by build and returns its
// address. When the array is full a block of max(1, 2*Len()) slots is
// allocated and the new element is constructed first, directly into its
// final slot in the new block; a panicking build therefore leaves the
// original storage completely untouched (strong guarantee). Only then are
// the existing elements relocated and the block adopted. build runs before
// any element moves, so it may safely read the array it is appending to.
func (a *Array[T]) EmplaceBack(build func() T) *T {
	if a.size == a.Cap() {
		next := NewRawStorage[T](growCap(a.size))
		slot := next.At(a.size)
		*slot = build()
		relocateSlots(next.Region(0, a.size), a.live())
		a.adopt(next)
		a.size++
		return slot
	}
	slot := &a.data.buf[a.size]
	*slot = build()
	a.size++
	return slot
}

// PopBack destroys the last element. On an empty array it is a silent
// no-op, not an error.
func (a *Array[T]) PopBack() {
	if a.size == 0 {
		return
	}
	a.size--
	destroyValue(a.data.buf[a.size])
	var zero T
	a.data.buf[a.size] = zero
}

// Insert inserts v at position i and returns the address of the stored
// element. Positions in [0, Len()] are valid; i == Len() appends.
func (a *Array[T]) Insert(i int, v T) *T {
	return a.Emplace(i, func() T { return v })
}

// Emplace inserts one element constructed by build at position i, shifting
// [i, Len()) right by one, and returns its address.
//
// When the array is full, the new element is constructed first into its
// final slot of the new block, then the prefix and suffix of the old block
// are relocated around it; a failure before adoption leaves the old block
// fully valid (strong guarantee). In place, build runs against the
// unmodified array before any element shifts, and the shift itself cannot
// fail.
func (a *Array[T]) Emplace(i int, build func() T) *T {
	assertf(i >= 0 && i <= a.size, "dynarray: position %d out of range [0, %d]", i, a.size)
	if a.size == a.Cap() {
		return a.emplaceGrow(i, build)
	}
	return a.emplaceInPlace(i, build)
}

func (a *Array[T]) emplaceGrow(i int, build func() T) *T {
	next := NewRawStorage[T](growCap(a.size))
	slot := next.At(i)
	*slot = build()
	relocateSlots(next.Region(0, i), a.data.buf[:i])
	relocateSlots(next.Region(i+1, a.size+1), a.data.buf[i:a.size])
	a.adopt(next)
	a.size++
	return slot
}

func (a *Array[T]) emplaceInPlace(i int, build func() T) *T {
	v := build()
	copy(a.data.buf[i+1:a.size+1], a.data.buf[i:a.size]) // backward shift
	a.data.buf[i] = v
	a.size++
	return &a.data.buf[i]
}

// Remove erases the element at position i, valid for i < Len(), shifting
// the successors one slot left; the former successor of the removed element
// then occupies position i. Basic guarantee.
func (a *Array[T]) Remove(i int) {
	assertf(i >= 0 && i < a.size, "dynarray: position %d out of range [0, %d)", i, a.size)
	removed := a.data.buf[i]
	copy(a.data.buf[i:a.size-1], a.data.buf[i+1:a.size])
	a.size--
	var zero T
	a.data.buf[a.size] = zero
	destroyValue(removed)
}

// adopt swaps the freshly populated block into place and discards the old
// one. Relocated elements moved with the bits, so the old block is dropped
// without Destroy notices.
func (a *Array[T]) adopt(next *RawStorage[T]) {
	a.data.Swap(next)
	next.Release()
}

// growCap is the growth policy for capacity-exhausted mutations: double the
// size, with a floor of one slot.
func growCap(size int) int {
	if size == 0 {
		return 1
	}
	return size * 2
}
