// Package dynarray implements a generic resizable array that separates raw
// slot storage from element lifetime.
//
// # Overview
//
// An Array owns one RawStorage block plus a live-element count. The block
// holds capacity slots; only the first Len() of them are considered live.
// This split makes every growth operation a two-block affair: a new block is
// fully populated before the old one is given up, which is what allows the
// rollback guarantees below. This is useful for:
//
//   - Element types with copy or destruction hooks that can fail
//   - Workloads that need exact control over capacity and growth
//   - Code that wants array semantics with explicit ownership transfer
//
// # Basic Usage
//
//	a := dynarray.New[int]()
//	a.PushBack(1)
//	a.PushBack(2)
//	a.Insert(1, 99)   // [1 99 2]
//	a.Remove(1)       // [1 2]
//	a.Resize(4)       // [1 2 0 0]
//
//	for i, v := range a.All() {
//		fmt.Println(i, v)
//	}
//
// # Growth and Rollback Guarantees
//
// When a mutation exhausts the capacity, a new block of max(1, 2*Len())
// slots is allocated, the new element (if any) is constructed first,
// directly into its final slot, existing elements are relocated, and only
// then is the new block adopted. A panic from an element hook anywhere
// before adoption leaves the array exactly as it was (strong guarantee).
// Operations that shift elements within existing storage (in-place
// Emplace, Remove) promise only that the array stays valid (basic
// guarantee). Capacity never shrinks.
//
// # Element Hooks
//
// Element types may opt into two capabilities, resolved from the type
// alone:
//
//   - Cloner: deep copies during Clone and CopyFrom. A Clone hook may
//     panic; the array cleans up and re-panics per the guarantees above.
//   - Destroyer: a notice when an element is logically destroyed (PopBack,
//     Remove, Clear, Release, shrinking Resize, destructive overwrite).
//     Relocation during growth moves elements and never fires the hook.
//
// Types without hooks are copied by assignment and destroyed by zeroing,
// neither of which can fail.
//
// # Preconditions and Debug Builds
//
// Out-of-range indices and positions are precondition violations, not
// recoverable errors. Building with the dynarraydebug tag compiles in
// checks that panic with a descriptive message; without the tag the checks
// vanish and violations surface as the runtime's own bounds panics.
// PopBack on an empty array is a defined no-op, not a violation.
//
// # Thread Safety
//
// An Array is not safe for concurrent mutation. Concurrent read-only access
// is safe while no mutation is in progress, matching ordinary container
// semantics.
//
// # Metrics
//
// The array reports occupancy statistics:
//
//	m := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Memory in use: %d bytes\n", m.SizeInUse)
package dynarray
