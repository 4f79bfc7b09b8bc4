package slotarena

import (
	"strconv"
	"testing"
)

var benchSizes = []int{100, 10000}

// BenchmarkReserve measures free-list pop throughput: reserve every slot of a
// fresh arena through a single controller handle.
func BenchmarkReserve(b *testing.B) {
	for _, size := range benchSizes {
		b.Run("size="+strconv.Itoa(size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				arena, err := New[struct{}](size)
				if err != nil {
					b.Fatal(err)
				}
				controller := arena.Controller()
				b.StartTimer()

				for j := 0; j < size; j++ {
					if _, err := controller.TryReserve(); err != nil {
						b.Fatal(err)
					}
				}
			}
		})
	}
}

// BenchmarkInsert measures reserve-and-insert throughput on the owner side.
func BenchmarkInsert(b *testing.B) {
	for _, size := range benchSizes {
		b.Run("size="+strconv.Itoa(size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				arena, err := New[int](size)
				if err != nil {
					b.Fatal(err)
				}
				b.StartTimer()

				for j := 0; j < size; j++ {
					if _, err := arena.Insert(j); err != nil {
						b.Fatal(err)
					}
				}
			}
		})
	}
}

// BenchmarkReserveParallel measures free-list contention: every goroutine
// cycles a slot through reserve and free. Calling free directly keeps the
// benchmark inside the lock-free structure; each goroutine only frees the
// slot it just popped, so the stack stays consistent.
func BenchmarkReserveParallel(b *testing.B) {
	arena, err := New[struct{}](1024)
	if err != nil {
		b.Fatal(err)
	}
	controller := arena.Controller()

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			index, err := controller.TryReserve()
			if err != nil {
				continue
			}
			controller.free(index.Slot)
		}
	})
}

// BenchmarkInsertRemoveCycle measures steady-state slot recycling: one
// occupied slot churning through insert/remove.
func BenchmarkInsertRemoveCycle(b *testing.B) {
	arena, err := New[int](1)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		index, err := arena.Insert(i)
		if err != nil {
			b.Fatal(err)
		}
		if _, ok := arena.Remove(index); !ok {
			b.Fatal("remove failed")
		}
	}
}
