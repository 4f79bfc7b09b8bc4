package slotarena

import "errors"

var (
	// ErrArenaFull is returned when no free slot is left to reserve.
	ErrArenaFull = errors.New("slotarena: arena is full")

	// ErrIndexNotReserved is returned when inserting with an index whose slot
	// is already occupied or whose generation does not match.
	ErrIndexNotReserved = errors.New("slotarena: index is not reserved")

	// ErrInvalidCapacity is returned by New for a capacity that is not
	// positive or does not fit the slot position range.
	ErrInvalidCapacity = errors.New("slotarena: invalid capacity")
)
