package availability

import (
	"time"

	"github.com/hotelpms/reservation-service/internal/domain"
)

// Validator composes the full pre-submission check for creating or editing a
// reservation. Zero value forbids past check-ins; admin back-office flows
// that record historical stays set AllowPastCheckIn.
type Validator struct {
	// AllowPastCheckIn disables the no-retroactive-bookings rule.
	AllowPastCheckIn bool
}

// ValidateBooking runs, in order:
//
//  1. interval validity (checkIn < checkOut) -> ErrInvalidInterval
//  2. past-date policy (checkIn >= today) -> ErrPastCheckIn, unless
//     AllowPastCheckIn is set
//  3. conflict check -> *RoomUnavailableError with the conflicting ids
//
// Interval validity is checked before conflicts: a malformed interval makes
// conflict checking meaningless. The call is side-effect-free and idempotent
// for a fixed snapshot.
func (v Validator) ValidateBooking(roomID int64, checkIn, checkOut time.Time, reservations []*domain.Reservation, excludeID int64, now time.Time) error {
	in := domain.DateOnly(checkIn)
	out := domain.DateOnly(checkOut)

	if !in.Before(out) {
		return ErrInvalidInterval
	}

	if !v.AllowPastCheckIn && in.Before(domain.DateOnly(now)) {
		return ErrPastCheckIn
	}

	conflicting, err := Conflicts(roomID, in, out, reservations, excludeID)
	if err != nil {
		return err
	}
	if len(conflicting) > 0 {
		return &RoomUnavailableError{RoomID: roomID, ConflictingIDs: conflicting}
	}

	return nil
}
