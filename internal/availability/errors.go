package availability

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInterval is returned when checkIn >= checkOut or a date is
	// malformed. Callers must surface this as a validation failure, never
	// silently clamp the interval.
	ErrInvalidInterval = errors.New("availability: check-in must be before check-out")

	// ErrPastCheckIn is returned when the stay starts before today and the
	// validator's AllowPastCheckIn policy flag is off.
	ErrPastCheckIn = errors.New("availability: check-in date is in the past")
)

// RoomUnavailableError is returned when the candidate interval intersects at
// least one active reservation. It carries the conflicting reservation ids so
// callers can present alternatives.
type RoomUnavailableError struct {
	RoomID         int64
	ConflictingIDs []int64
}

func (e *RoomUnavailableError) Error() string {
	return fmt.Sprintf("availability: room %d is unavailable, conflicts with reservations %v",
		e.RoomID, e.ConflictingIDs)
}
