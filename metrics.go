package dynarray

import "unsafe"

// ElemSize returns the size of one element slot in bytes.
func (a *Array[T]) ElemSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// SizeInUse returns the number of bytes occupied by live elements.
func (a *Array[T]) SizeInUse() int {
	return a.size * a.ElemSize()
}

// CapacityBytes returns the total size of the owned block in bytes.
func (a *Array[T]) CapacityBytes() int {
	return a.Cap() * a.ElemSize()
}

// Utilization returns the ratio of live slots to total slots (0.0 to 1.0).
// Returns 0.0 for an array with no capacity.
func (a *Array[T]) Utilization() float64 {
	c := a.Cap()
	if c == 0 {
		return 0
	}
	return float64(a.size) / float64(c)
}

// Metrics returns a snapshot of array statistics.
func (a *Array[T]) Metrics() ArrayMetrics {
	return ArrayMetrics{
		Len:           a.size,
		Cap:           a.Cap(),
		ElemSize:      a.ElemSize(),
		SizeInUse:     a.SizeInUse(),
		CapacityBytes: a.CapacityBytes(),
		Utilization:   a.Utilization(),
	}
}

// ArrayMetrics contains statistical information about an array.
type ArrayMetrics struct {
	Len           int     // Live elements
	Cap           int     // Total slots
	ElemSize      int     // Bytes per slot
	SizeInUse     int     // Bytes occupied by live elements
	CapacityBytes int     // Total block size in bytes
	Utilization   float64 // Ratio of live to total slots (0.0-1.0)
}
