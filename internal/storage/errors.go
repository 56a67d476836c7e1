package storage

import "errors"

var (
	// ErrNotFound is returned by lookups with no matching record.
	ErrNotFound = errors.New("record not found")

	// ErrSlotTaken is the uniqueness arbiter's verdict: another
	// non-cancelled appointment already holds the doctor/slot pair.
	ErrSlotTaken = errors.New("slot already taken")

	// ErrDuplicate is returned when a unique field other than the slot
	// (appointment code, patient national id) collides.
	ErrDuplicate = errors.New("duplicate record")
)
