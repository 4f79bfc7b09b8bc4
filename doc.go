// Package slotarena provides a fixed-capacity generational arena whose index
// reservation is decoupled from value insertion.
//
// An Arena stores values in a fixed number of slots and hands out stable
// Index handles for them. Every slot carries a generation counter that is
// bumped each time the slot is recycled, so a stale Index can never observe
// a later value stored in the same position.
//
// # Concurrency Model
//
// The two halves of the arena have different rules:
//
//   - Controller is safe for concurrent use. Any number of goroutines may
//     hold Controller handles and call TryReserve simultaneously; the
//     free-list is maintained with lock-free atomics.
//   - Arena is a single-owner structure. Insert, InsertWithIndex, Remove,
//     Retain, DrainFilter and the iterators must be serialized by the caller.
//
// The typical pattern is to reserve an Index on a producer goroutine and send
// it (or the finished value) to the goroutine that owns the Arena:
//
//	controller := arena.Controller()
//	go func() {
//		index, err := controller.TryReserve()
//		if err != nil {
//			return // arena is full
//		}
//		indexCh <- index
//	}()
//
//	// on the owner goroutine:
//	_ = arena.InsertWithIndex(<-indexCh, value)
//
// Once TryReserve returns an Index, no other handle can obtain the same slot
// until the entry is removed again, no matter how much later the insertion
// happens.
//
// # Iteration Order
//
// Occupied entries form an intrusive doubly linked list threaded through the
// slots themselves. Every insertion becomes the new list head, so All, Ptrs
// and DrainFilter always traverse entries newest-insertion-first.
//
// # Capacity
//
// Capacity is fixed at construction. A full arena is a normal outcome, not a
// fault: TryReserve and Insert report ErrArenaFull and the caller decides
// whether to drop, retry later, or stand up a larger arena.
package slotarena
