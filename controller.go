package slotarena

import (
	"math"
	"sync/atomic"
)

// noSlot marks the absence of a slot position. Slot links are plain uint32s,
// so a sentinel stands in for "none".
const noSlot uint32 = math.MaxUint32

// controllerSlot is the controller-side view of one arena slot.
type controllerSlot struct {
	free       atomic.Bool
	generation atomic.Uint64
	nextFree   atomic.Uint32
}

// controllerInner is the state shared by all Controller handles of one arena.
//
// The free slots form a Treiber stack threaded through nextFree. firstFree
// packs {tag:32, pos:32}; the tag advances on every successful push or pop so
// a pop cannot be fooled by a slot that was freed and re-reserved between its
// head load and its CAS (ABA).
type controllerInner struct {
	slots     []controllerSlot
	firstFree atomic.Uint64

	reserved        atomic.Uint64
	reserveFailures atomic.Uint64
	freed           atomic.Uint64
}

func packHead(tag, pos uint32) uint64 {
	return uint64(tag)<<32 | uint64(pos)
}

// Controller hands out and recycles slot reservations for an Arena.
//
// A Controller is a cheap value handle: copies share the same underlying
// free-list, so passing one to another goroutine never snapshots or
// duplicates state. TryReserve may be called concurrently from any number of
// goroutines.
type Controller struct {
	inner *controllerInner
}

func newController(capacity int) Controller {
	inner := &controllerInner{
		slots: make([]controllerSlot, capacity),
	}
	for i := range inner.slots {
		slot := &inner.slots[i]
		slot.free.Store(true)
		if i+1 < capacity {
			slot.nextFree.Store(uint32(i + 1)) //nolint:gosec // i+1 < capacity < noSlot
		} else {
			slot.nextFree.Store(noSlot)
		}
	}
	inner.firstFree.Store(packHead(0, 0))
	return Controller{inner: inner}
}

// TryReserve claims a free slot and returns an Index for it.
//
// It never blocks or retries internally; a full arena reports ErrArenaFull
// with no side effect. Once TryReserve returns an Index, no other handle can
// obtain the same slot until the arena's owner removes the entry, no matter
// how much later the value is actually inserted.
func (c Controller) TryReserve() (Index, error) {
	inner := c.inner
	for {
		head := inner.firstFree.Load()
		pos := uint32(head)
		if pos == noSlot {
			inner.reserveFailures.Add(1)
			return Index{}, ErrArenaFull
		}
		slot := &inner.slots[pos]
		next := slot.nextFree.Load()
		if inner.firstFree.CompareAndSwap(head, packHead(uint32(head>>32)+1, next)) {
			slot.free.Store(false)
			inner.reserved.Add(1)
			return Index{Slot: pos, Generation: slot.generation.Load()}, nil
		}
	}
}

// free recycles a slot position. Only the owning arena calls this, after the
// slot's value has been removed and the arena-side generation was bumped.
func (c Controller) free(pos uint32) {
	inner := c.inner
	slot := &inner.slots[pos]
	slot.generation.Add(1)
	slot.free.Store(true)
	for {
		head := inner.firstFree.Load()
		slot.nextFree.Store(uint32(head))
		if inner.firstFree.CompareAndSwap(head, packHead(uint32(head>>32)+1, pos)) {
			inner.freed.Add(1)
			return
		}
	}
}

// Capacity returns the number of slots managed by the controller.
func (c Controller) Capacity() int {
	return len(c.inner.slots)
}

// ControllerStats is a point-in-time snapshot of reservation activity.
type ControllerStats struct {
	Reserved        uint64 // successful TryReserve calls
	ReserveFailures uint64 // TryReserve calls that found the arena full
	Freed           uint64 // slots recycled after removal
}

// Stats returns a snapshot of the controller's counters.
func (c Controller) Stats() ControllerStats {
	return ControllerStats{
		Reserved:        c.inner.reserved.Load(),
		ReserveFailures: c.inner.reserveFailures.Load(),
		Freed:           c.inner.freed.Load(),
	}
}
