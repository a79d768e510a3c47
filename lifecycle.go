package dynarray

// Cloner is implemented by element types whose copies must be deep. When the
// element type implements it, the array calls Clone wherever it copies
// elements internally (Clone, CopyFrom); all other types are copied by plain
// assignment, which cannot fail. A Clone hook may panic; the array then
// honors the guarantee documented on the failing operation and re-panics.
type Cloner[T any] interface {
	Clone() T
}

// Destroyer is implemented by element types that own external resources and
// want a notice when the array logically destroys them: PopBack, Remove,
// Clear, Release, shrinking Resize, and the destructive overwrites of
// CopyFrom. Elements relocated into a new block during growth are moved, not
// destroyed, so relocation never fires the hook.
type Destroyer interface {
	Destroy()
}

// hasClone reports whether T itself implements Cloner[T]. The answer depends
// on the type alone, so it is uniform across all slots; hooks bind to
// concrete element types, not to dynamic values behind interface elements.
func hasClone[T any]() bool {
	var zero T
	_, ok := any(zero).(Cloner[T])
	return ok
}

// hasDestroy reports whether T itself implements Destroyer.
func hasDestroy[T any]() bool {
	var zero T
	_, ok := any(zero).(Destroyer)
	return ok
}

// cloneValue copy-constructs a single value.
func cloneValue[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}

// destroyValue fires the Destroy hook for a single value, if T has one.
func destroyValue[T any](v T) {
	if d, ok := any(v).(Destroyer); ok {
		d.Destroy()
	}
}

// cloneSlots copy-constructs src into the uninitialized slots dst. If a
// Clone hook panics partway through, the already-constructed prefix of dst
// is destroyed before the panic resumes, so the destination block carries no
// half-built state.
func cloneSlots[T any](dst, src []T) {
	if !hasClone[T]() {
		copy(dst, src)
		return
	}
	done := 0
	defer func() {
		if r := recover(); r != nil {
			destroySlots(dst[:done])
			panic(r)
		}
	}()
	for i := range src {
		dst[i] = cloneValue(src[i])
		done = i + 1
	}
}

// assignSlots copy-assigns src over the live prefix of dst, destroying each
// overwritten value. A panicking Clone hook leaves the slot it was filling
// unchanged (basic guarantee).
func assignSlots[T any](dst, src []T) {
	if !hasClone[T]() && !hasDestroy[T]() {
		copy(dst, src)
		return
	}
	for i := range src {
		next := cloneValue(src[i])
		destroyValue(dst[i])
		dst[i] = next
	}
}

// destroySlots fires Destroy hooks and zeroes the slots so the collector can
// reclaim whatever they referenced. Zeroed slots count as uninitialized.
func destroySlots[T any](s []T) {
	if hasDestroy[T]() {
		for i := range s {
			destroyValue(s[i])
		}
	}
	clear(s)
}

// relocateSlots moves live elements into freshly allocated storage. Slot
// assignment cannot fail in Go, so relocation always moves and never copies;
// the old block is discarded wholesale afterwards and its slots get no
// Destroy notice, because ownership travels with the bits.
func relocateSlots[T any](dst, src []T) {
	copy(dst, src)
}
