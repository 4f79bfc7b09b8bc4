package slotarena

import "iter"

// All returns an iterator over all entries, newest insertion first.
//
// Each call starts a fresh traversal. The arena must not be mutated while a
// traversal is running; use Retain or DrainFilter to remove during a walk.
func (a *Arena[T]) All() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		pos := a.firstOccupied
		for pos != noSlot {
			slot := a.occupiedSlot(pos)
			next := slot.next
			if !yield(Index{Slot: pos, Generation: slot.generation}, slot.value) {
				return
			}
			pos = next
		}
	}
}

// Ptrs is like All but yields pointers, so values can be updated in place
// during the traversal. Entries must not be inserted or removed while
// iterating.
func (a *Arena[T]) Ptrs() iter.Seq2[Index, *T] {
	return func(yield func(Index, *T) bool) {
		pos := a.firstOccupied
		for pos != noSlot {
			slot := a.occupiedSlot(pos)
			next := slot.next
			if !yield(Index{Slot: pos, Generation: slot.generation}, &slot.value) {
				return
			}
			pos = next
		}
	}
}

// Retain removes every entry for which keep returns false. Surviving entries
// keep their relative order.
func (a *Arena[T]) Retain(keep func(value T) bool) {
	pos := a.firstOccupied
	for pos != noSlot {
		slot := a.occupiedSlot(pos)
		// Capture the successor before a removal rewires the links.
		next := slot.next
		if !keep(slot.value) {
			a.removeAt(pos)
		}
		pos = next
	}
}

// DrainFilter removes and yields every entry for which pred returns true, in
// newest-first order.
//
// Removal happens lazily as the sequence is consumed: stopping early leaves
// the remaining entries in place. The sequence is single-use; call
// DrainFilter again for another pass.
func (a *Arena[T]) DrainFilter(pred func(value T) bool) iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		pos := a.firstOccupied
		for pos != noSlot {
			slot := a.occupiedSlot(pos)
			next := slot.next
			if pred(slot.value) {
				index := Index{Slot: pos, Generation: slot.generation}
				if !yield(index, a.removeAt(pos)) {
					return
				}
			}
			pos = next
		}
	}
}
