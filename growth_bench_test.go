package dynarray

import (
	"fmt"
	"testing"
)

// BenchmarkPushBack compares geometric growth against the builtin append
func BenchmarkPushBack(b *testing.B) {
	sizes := []int{100, 1000, 10000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Array_%d", size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				a := New[int]()
				for j := 0; j < size; j++ {
					a.PushBack(j)
				}
			}
		})

		b.Run(fmt.Sprintf("Builtin_%d", size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				var s []int
				for j := 0; j < size; j++ {
					s = append(s, j)
				}
			}
		})
	}
}

// BenchmarkPushBackReserved measures appends with preallocated capacity
func BenchmarkPushBackReserved(b *testing.B) {
	const size = 1000

	b.Run("Array", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			a := New[int]()
			a.Reserve(size)
			for j := 0; j < size; j++ {
				a.PushBack(j)
			}
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s := make([]int, 0, size)
			for j := 0; j < size; j++ {
				s = append(s, j)
			}
		}
	})
}
