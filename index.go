package slotarena

// Index identifies one occupancy of one arena slot.
//
// An Index is only valid while the slot's current generation equals
// Generation; removing the entry bumps the generation and permanently
// invalidates every Index handed out for it. Index is comparable and can be
// used as a map key.
type Index struct {
	// Slot is the position of the slot in the arena.
	Slot uint32
	// Generation counts how many times the slot has been recycled.
	Generation uint64
}
