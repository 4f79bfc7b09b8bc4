package slotarena

// arenaSlot is one storage cell. Occupied slots are threaded into the
// newest-first occupied list through prev/next, terminated by noSlot.
type arenaSlot[T any] struct {
	value      T
	generation uint64
	prev       uint32
	next       uint32
	occupied   bool
}

// Arena is a fixed-capacity store of values addressed by Index.
//
// The arena itself is not synchronized: all calls on it must be serialized by
// the caller. Only the Controller obtained via Controller() may be used from
// other goroutines.
type Arena[T any] struct {
	controller    Controller
	slots         []arenaSlot[T]
	firstOccupied uint32
}

// New creates an arena with the given fixed capacity.
func New[T any](capacity int) (*Arena[T], error) {
	if capacity <= 0 || uint64(capacity) >= uint64(noSlot) { //nolint:gosec // capacity > 0 here
		return nil, ErrInvalidCapacity
	}
	return &Arena[T]{
		controller:    newController(capacity),
		slots:         make([]arenaSlot[T], capacity),
		firstOccupied: noSlot,
	}, nil
}

// Controller returns a handle that can reserve indices for this arena. The
// handle shares state with every other handle for the same arena and is safe
// to use concurrently.
func (a *Arena[T]) Controller() Controller {
	return a.controller
}

// Capacity returns the number of slots. It never changes.
func (a *Arena[T]) Capacity() int {
	return len(a.slots)
}

// Len returns the number of occupied slots.
func (a *Arena[T]) Len() int {
	n := 0
	for i := range a.slots {
		if a.slots[i].occupied {
			n++
		}
	}
	return n
}

// InsertWithIndex stores value under a previously reserved index.
//
// The slot must still be empty and its generation must match the index;
// otherwise ErrIndexNotReserved is returned and the arena is left untouched.
// The new entry becomes the head of the iteration order.
func (a *Arena[T]) InsertWithIndex(index Index, value T) error {
	if uint64(index.Slot) >= uint64(len(a.slots)) {
		return ErrIndexNotReserved
	}
	slot := &a.slots[index.Slot]
	if slot.occupied || slot.generation != index.Generation {
		return ErrIndexNotReserved
	}
	slot.value = value
	slot.occupied = true
	slot.prev = noSlot
	slot.next = a.firstOccupied
	if a.firstOccupied != noSlot {
		a.slots[a.firstOccupied].prev = index.Slot
	}
	a.firstOccupied = index.Slot
	return nil
}

// Insert reserves a slot and stores value in one call.
func (a *Arena[T]) Insert(value T) (Index, error) {
	index, err := a.controller.TryReserve()
	if err != nil {
		return Index{}, err
	}
	if err := a.InsertWithIndex(index, value); err != nil {
		// A freshly reserved index can only be rejected if the controller and
		// the arena slots have diverged.
		panic("slotarena: freshly reserved index rejected by insert")
	}
	return index, nil
}

// Remove deletes the entry for index and returns its value.
//
// A stale generation, an empty slot, and an out-of-range position all report
// (zero, false) with no side effect: querying with a possibly stale index is
// normal usage, not an error. A slot that was reserved but never inserted
// into stays reserved.
func (a *Arena[T]) Remove(index Index) (T, bool) {
	if uint64(index.Slot) >= uint64(len(a.slots)) {
		var zero T
		return zero, false
	}
	slot := &a.slots[index.Slot]
	if !slot.occupied || slot.generation != index.Generation {
		var zero T
		return zero, false
	}
	return a.removeAt(index.Slot), true
}

// removeAt unlinks an occupied slot, recycles it, and returns its value.
func (a *Arena[T]) removeAt(pos uint32) T {
	slot := &a.slots[pos]
	if slot.prev != noSlot {
		a.occupiedSlot(slot.prev).next = slot.next
	} else {
		a.firstOccupied = slot.next
	}
	if slot.next != noSlot {
		a.occupiedSlot(slot.next).prev = slot.prev
	}

	value := slot.value
	var zero T
	slot.value = zero
	slot.occupied = false
	slot.prev = noSlot
	slot.next = noSlot
	slot.generation++
	a.controller.free(pos)
	return value
}

// occupiedSlot returns the slot at pos, which the occupied list claims is
// occupied. A free slot here means the list is corrupt and there is no safe
// way to continue.
func (a *Arena[T]) occupiedSlot(pos uint32) *arenaSlot[T] {
	slot := &a.slots[pos]
	if !slot.occupied {
		panic("slotarena: occupied list references a free slot")
	}
	return slot
}

// Get returns a copy of the value stored under index.
func (a *Arena[T]) Get(index Index) (T, bool) {
	if p := a.Ptr(index); p != nil {
		return *p, true
	}
	var zero T
	return zero, false
}

// Ptr returns a pointer to the value stored under index, for in-place
// mutation. It returns nil when the index is stale or the slot holds no
// value. Removing the entry invalidates the pointer.
func (a *Arena[T]) Ptr(index Index) *T {
	if uint64(index.Slot) >= uint64(len(a.slots)) {
		return nil
	}
	slot := &a.slots[index.Slot]
	if !slot.occupied || slot.generation != index.Generation {
		return nil
	}
	return &slot.value
}
