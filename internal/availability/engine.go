// Package availability decides whether a room is free for a candidate stay
// and derives a room's effective status for a date. All functions are pure:
// they operate on a snapshot of rooms and reservations supplied by the
// caller, perform no I/O and keep no state. Serializing the surrounding
// read-validate-write sequence per room is the caller's job (the create and
// update usecases run it inside a serializable transaction with the room's
// reservations locked).
package availability

import (
	"iter"
	"time"

	"github.com/hotelpms/reservation-service/internal/domain"
)

// overlaps is the half-open interval intersection test. Both stays occupy
// [checkIn, checkOut), so a stay ending on day D never conflicts with one
// starting on day D. Strict inequalities are deliberate: <= here would
// wrongly reject back-to-back bookings.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// HasConflict reports whether a new reservation for the room over the
// half-open interval [checkIn, checkOut) would intersect any active
// reservation in the snapshot. excludeID skips one reservation, used when
// re-validating an edit against itself; pass 0 to exclude nothing.
//
// Returns ErrInvalidInterval when checkIn >= checkOut.
func HasConflict(roomID int64, checkIn, checkOut time.Time, reservations []*domain.Reservation, excludeID int64) (bool, error) {
	ids, err := Conflicts(roomID, checkIn, checkOut, reservations, excludeID)
	if err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}

// Conflicts returns the ids of the active reservations intersecting the
// candidate interval for the room. Same semantics as HasConflict.
func Conflicts(roomID int64, checkIn, checkOut time.Time, reservations []*domain.Reservation, excludeID int64) ([]int64, error) {
	in := domain.DateOnly(checkIn)
	out := domain.DateOnly(checkOut)
	if !in.Before(out) {
		return nil, ErrInvalidInterval
	}

	var ids []int64
	for _, res := range reservations {
		if res.RoomID != roomID {
			continue
		}
		if excludeID != 0 && res.ID == excludeID {
			continue
		}
		if !res.IsActive() {
			continue
		}
		if overlaps(in, out, domain.DateOnly(res.CheckIn), domain.DateOnly(res.CheckOut)) {
			ids = append(ids, res.ID)
		}
	}
	return ids, nil
}

// FindAvailableRooms filters rooms down to those bookable for the interval:
// intrinsic status available and no conflicting active reservation. The
// result is a lazy, restartable sequence preserving the input order.
// Maintenance and out-of-order rooms are excluded even with zero
// reservations: intrinsic state always dominates availability.
//
// The interval must already be validated; rooms are silently skipped when it
// is empty, so callers should run HasConflict or a Validator first if they
// need the error.
func FindAvailableRooms(rooms []*domain.Room, checkIn, checkOut time.Time, reservations []*domain.Reservation) iter.Seq[*domain.Room] {
	return func(yield func(*domain.Room) bool) {
		for _, room := range rooms {
			if !room.IsBookable() {
				continue
			}
			conflict, err := HasConflict(room.ID, checkIn, checkOut, reservations, 0)
			if err != nil || conflict {
				continue
			}
			if !yield(room) {
				return
			}
		}
	}
}

// EffectiveStatus derives the display status of a room on a reference date by
// combining intrinsic state with the reservations covering that date.
// Precedence, first match wins:
//
//  1. maintenance / out_of_order — intrinsic state beats any booking
//  2. occupied — an active checked_in reservation covers the date
//  3. booked — an active pending/confirmed reservation covers the date
//  4. available
//
// Under normal invariants at most one active reservation covers a room/date.
// If several do (corrupted data), the most occupied-like one wins so the
// derivation still terminates with a defined answer.
func EffectiveStatus(room *domain.Room, referenceDate time.Time, reservations []*domain.Reservation) domain.RoomStatus {
	if room.Status == domain.RoomMaintenance || room.Status == domain.RoomOutOfOrder {
		return room.Status
	}

	status := domain.RoomAvailable
	for _, res := range reservations {
		if res.RoomID != room.ID || !res.IsActive() || !res.Covers(referenceDate) {
			continue
		}
		if res.Status == domain.StatusCheckedIn {
			return domain.RoomOccupied
		}
		status = domain.RoomBooked
	}
	return status
}
