package domain

import (
	"errors"
	"time"
)

// ReservationStatus represents the status of a reservation.
type ReservationStatus string

const (
	StatusPending    ReservationStatus = "pending"
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusCheckedIn  ReservationStatus = "checked_in"
	StatusCheckedOut ReservationStatus = "checked_out"
	StatusCancelled  ReservationStatus = "cancelled"
	StatusNoShow     ReservationStatus = "no_show"
)

// ErrInvalidTransition is returned when a status transition is not reachable
// from the reservation's current state.
var ErrInvalidTransition = errors.New("domain: invalid reservation status transition")

// Reservation represents a stay booked for a single room.
// The stay interval is half-open: [CheckIn, CheckOut) — the checkout date
// itself is not occupied, so back-to-back stays do not conflict.
type Reservation struct {
	ID      int64
	RoomID  int64
	GuestID int64

	CheckIn  time.Time // date only, midnight UTC
	CheckOut time.Time // date only, midnight UTC
	Adults   int
	Children int
	Status   ReservationStatus

	SpecialRequests *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation blocks its room for its date range.
func (r *Reservation) IsActive() bool {
	return r.Status == StatusPending ||
		r.Status == StatusConfirmed ||
		r.Status == StatusCheckedIn
}

// CanBeCancelled returns true if the reservation can be cancelled.
// Checked-in stays cannot be cancelled through the normal transition.
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeUpdated returns true if the reservation's dates or room can be edited.
func (r *Reservation) CanBeUpdated() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// IsTerminal returns true if no further transitions are possible.
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusCheckedOut ||
		r.Status == StatusCancelled ||
		r.Status == StatusNoShow
}

// Covers returns true if the given date falls inside the half-open stay
// interval: CheckIn <= date < CheckOut.
func (r *Reservation) Covers(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(r.CheckIn)) && d.Before(DateOnly(r.CheckOut))
}

// Nights returns the length of the stay in nights.
func (r *Reservation) Nights() int {
	return int(DateOnly(r.CheckOut).Sub(DateOnly(r.CheckIn)).Hours() / 24)
}

// transitions is the reservation status state machine:
//
//	pending -> confirmed -> checked_in -> checked_out
//	cancelled reachable from pending/confirmed only
//	no_show reachable from pending/confirmed only
//	checked_out, cancelled, no_show are terminal
var transitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:   {StatusConfirmed, StatusCheckedIn, StatusCancelled, StatusNoShow},
	StatusConfirmed: {StatusCheckedIn, StatusCancelled, StatusNoShow},
	StatusCheckedIn: {StatusCheckedOut},
}

// CanTransition reports whether the state machine allows moving from the
// current status to the target. Date constraints (check-in not before the
// stay starts) are enforced by Transition.
func (r *Reservation) CanTransition(to ReservationStatus) bool {
	for _, allowed := range transitions[r.Status] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Transition moves the reservation to the target status, all-or-nothing.
// Checking in before the stay's check-in date is rejected; a pending
// reservation checked in directly is treated as auto-confirmed.
func (r *Reservation) Transition(to ReservationStatus, now time.Time) error {
	if !r.CanTransition(to) {
		return ErrInvalidTransition
	}
	if to == StatusCheckedIn && DateOnly(now).Before(DateOnly(r.CheckIn)) {
		return ErrInvalidTransition
	}
	r.Status = to
	return nil
}

// ReservationsFilter filters reservation listings.
type ReservationsFilter struct {
	RoomID          *int64             // only this room
	GuestID         *int64             // only this guest
	Status          *ReservationStatus // only this status
	StartDate       *time.Time         // stays overlapping [StartDate, EndDate]
	EndDate         *time.Time
	IncludeInactive bool // include cancelled/checked-out/no-show
}

// ValidReservationStatus parses a status string into a ReservationStatus.
func ValidReservationStatus(s string) (ReservationStatus, bool) {
	switch status := ReservationStatus(s); status {
	case StatusPending, StatusConfirmed, StatusCheckedIn,
		StatusCheckedOut, StatusCancelled, StatusNoShow:
		return status, true
	default:
		return "", false
	}
}
