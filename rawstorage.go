package dynarray

import "unsafe"

// RawStorage owns a fixed block of element slots. It knows nothing about
// which slots hold live values; tracking liveness is the Array's job.
// The block is non-nil exactly when Cap() > 0.
//
// A RawStorage must not be copied (go vet's copylocks check enforces this).
// Ownership of the block moves only through Swap.
type RawStorage[T any] struct {
	noCopy noCopy

	buf []T // raw slots; len(buf) is the capacity
}

// NewRawStorage allocates storage for exactly n slots. For n <= 0 no
// allocation is made and the block stays nil. An allocation the runtime
// cannot satisfy propagates as a runtime panic, untouched.
func NewRawStorage[T any](n int) *RawStorage[T] {
	return &RawStorage[T]{buf: allocate[T](n)}
}

// allocate returns a zeroed block of n slots, or nil for n <= 0.
func allocate[T any](n int) []T {
	if n <= 0 {
		return nil
	}
	return make([]T, n)
}

// Cap returns the number of slots in the block.
func (r *RawStorage[T]) Cap() int {
	return len(r.buf)
}

// Base returns the address of the first slot, or nil when the block is empty.
func (r *RawStorage[T]) Base() *T {
	return unsafe.SliceData(r.buf)
}

// Slot returns the address of the slot at the given offset. Offsets in
// [0, Cap()] are valid; the one-past-end address is explicitly allowed for
// boundary arithmetic but must not be dereferenced. Offsets beyond that are
// precondition violations, checked only under the dynarraydebug build tag.
func (r *RawStorage[T]) Slot(offset int) *T {
	assertf(offset >= 0 && offset <= len(r.buf),
		"dynarray: slot offset %d out of range [0, %d]", offset, len(r.buf))
	var zero T
	return (*T)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(r.buf)), uintptr(offset)*unsafe.Sizeof(zero)))
}

// At returns the address of the slot at index. Unlike Slot, index must be
// strictly less than Cap().
func (r *RawStorage[T]) At(index int) *T {
	assertf(index >= 0 && index < len(r.buf),
		"dynarray: slot index %d out of range [0, %d)", index, len(r.buf))
	return &r.buf[index]
}

// Region returns the slots in [lo, hi) as a slice. hi == Cap() is allowed.
func (r *RawStorage[T]) Region(lo, hi int) []T {
	assertf(0 <= lo && lo <= hi && hi <= len(r.buf),
		"dynarray: region [%d, %d) out of range [0, %d]", lo, hi, len(r.buf))
	return r.buf[lo:hi]
}

// Swap exchanges the blocks owned by r and other in O(1). Never fails.
func (r *RawStorage[T]) Swap(other *RawStorage[T]) {
	r.buf, other.buf = other.buf, r.buf
}

// Release drops the block, returning it to the collector. Releasing an
// empty RawStorage is a no-op; Release is idempotent.
func (r *RawStorage[T]) Release() {
	r.buf = nil
}
