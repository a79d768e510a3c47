package dynarray

import "fmt"

// Example demonstrates basic array usage
func Example() {
	a := New[int]()

	a.PushBack(1)
	a.PushBack(2)
	a.PushBack(3)
	fmt.Println(a.Slice())

	a.Insert(1, 99)
	fmt.Println(a.Slice())

	a.Remove(1)
	fmt.Println(a.Slice())

	a.Resize(5)
	fmt.Println(a.Slice())

	a.Resize(2)
	fmt.Println(a.Slice())

	fmt.Printf("len=%d cap=%d\n", a.Len(), a.Cap())

	// Output:
	// [1 2 3]
	// [1 99 2 3]
	// [1 2 3]
	// [1 2 3 0 0]
	// [1 2]
	// len=2 cap=8
}

// ExampleArray_Reserve demonstrates explicit capacity reservation
func ExampleArray_Reserve() {
	a := New[string]()
	a.Reserve(4)

	a.PushBack("alpha")
	a.PushBack("beta")
	fmt.Printf("len=%d cap=%d\n", a.Len(), a.Cap())

	// Reserving at or below the current capacity is a no-op.
	a.Reserve(2)
	fmt.Printf("len=%d cap=%d\n", a.Len(), a.Cap())

	// Output:
	// len=2 cap=4
	// len=2 cap=4
}

// ExampleMove demonstrates O(1) ownership transfer
func ExampleMove() {
	a := New[int]()
	a.PushBack(1)
	a.PushBack(2)

	b := Move(a)
	fmt.Println(a.Len(), b.Slice())

	// Output:
	// 0 [1 2]
}

// points is an element type with a deep-copy hook.
type points struct {
	xs []int
}

func (p points) Clone() points {
	return points{xs: append([]int(nil), p.xs...)}
}

// ExampleCloner demonstrates deep copies through the Clone hook
func ExampleCloner() {
	a := New[points]()
	a.PushBack(points{xs: []int{1, 2}})

	b := a.Clone()
	b.At(0).xs[0] = 9

	fmt.Println(a.At(0).xs)
	fmt.Println(b.At(0).xs)

	// Output:
	// [1 2]
	// [9 2]
}

// ExampleArray_Metrics demonstrates occupancy monitoring
func ExampleArray_Metrics() {
	a := NewWithSize[int64](3)
	a.Reserve(8)

	m := a.Metrics()
	fmt.Printf("Metrics:\n")
	fmt.Printf("  Live elements: %d\n", m.Len)
	fmt.Printf("  Slots: %d\n", m.Cap)
	fmt.Printf("  Size in use: %d bytes\n", m.SizeInUse)
	fmt.Printf("  Capacity: %d bytes\n", m.CapacityBytes)
	fmt.Printf("  Utilization: %.1f%%\n", m.Utilization*100)

	// Output:
	// Metrics:
	//   Live elements: 3
	//   Slots: 8
	//   Size in use: 24 bytes
	//   Capacity: 64 bytes
	//   Utilization: 37.5%
}

// ExampleArray_All demonstrates iteration over index/element pairs
func ExampleArray_All() {
	a := New[string]()
	a.PushBack("a")
	a.PushBack("b")
	a.PushBack("c")

	for i, v := range a.All() {
		fmt.Println(i, v)
	}

	// Output:
	// 0 a
	// 1 b
	// 2 c
}
