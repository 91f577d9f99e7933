package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestReservation_Transition(t *testing.T) {
	checkIn := day(2025, 8, 20)
	now := day(2025, 8, 20)

	testCases := []struct {
		name    string
		from    ReservationStatus
		to      ReservationStatus
		now     time.Time
		wantErr bool
	}{
		{name: "pending to confirmed", from: StatusPending, to: StatusConfirmed, now: now},
		{name: "confirmed to checked_in on check-in day", from: StatusConfirmed, to: StatusCheckedIn, now: now},
		{name: "confirmed to checked_in after check-in day", from: StatusConfirmed, to: StatusCheckedIn, now: day(2025, 8, 21)},
		{name: "pending checked in directly (auto-confirm)", from: StatusPending, to: StatusCheckedIn, now: now},
		{name: "checked_in to checked_out", from: StatusCheckedIn, to: StatusCheckedOut, now: now},
		{name: "pending to cancelled", from: StatusPending, to: StatusCancelled, now: now},
		{name: "confirmed to cancelled", from: StatusConfirmed, to: StatusCancelled, now: now},
		{name: "confirmed to no_show", from: StatusConfirmed, to: StatusNoShow, now: now},

		{name: "check-in before the stay starts rejected", from: StatusConfirmed, to: StatusCheckedIn, now: day(2025, 8, 19), wantErr: true},
		{name: "cancelling a checked-in stay rejected", from: StatusCheckedIn, to: StatusCancelled, now: now, wantErr: true},
		{name: "checked_out is terminal", from: StatusCheckedOut, to: StatusConfirmed, now: now, wantErr: true},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusPending, now: now, wantErr: true},
		{name: "no_show is terminal", from: StatusNoShow, to: StatusConfirmed, now: now, wantErr: true},
		{name: "checkout without check-in rejected", from: StatusConfirmed, to: StatusCheckedOut, now: now, wantErr: true},
		{name: "skipping back from checked_in rejected", from: StatusCheckedIn, to: StatusPending, now: now, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := &Reservation{Status: tc.from, CheckIn: checkIn, CheckOut: day(2025, 8, 22)}
			err := r.Transition(tc.to, tc.now)

			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTransition)
				assert.Equal(t, tc.from, r.Status, "failed transition must not mutate status")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.to, r.Status)
		})
	}
}

func TestReservation_Covers(t *testing.T) {
	r := &Reservation{CheckIn: day(2025, 8, 20), CheckOut: day(2025, 8, 22)}

	assert.True(t, r.Covers(day(2025, 8, 20)), "check-in day is covered")
	assert.True(t, r.Covers(day(2025, 8, 21)))
	assert.False(t, r.Covers(day(2025, 8, 22)), "checkout day is not covered")
	assert.False(t, r.Covers(day(2025, 8, 19)))
}

func TestReservation_Nights(t *testing.T) {
	r := &Reservation{CheckIn: day(2025, 8, 20), CheckOut: day(2025, 8, 23)}
	assert.Equal(t, 3, r.Nights())
}

func TestReservation_IsActive(t *testing.T) {
	for _, status := range ActiveStatuses {
		assert.True(t, (&Reservation{Status: status}).IsActive(), string(status))
	}
	for _, status := range InactiveStatuses {
		assert.False(t, (&Reservation{Status: status}).IsActive(), string(status))
	}
}

func TestValidReservationStatus(t *testing.T) {
	status, ok := ValidReservationStatus("checked_in")
	assert.True(t, ok)
	assert.Equal(t, StatusCheckedIn, status)

	_, ok = ValidReservationStatus("체크인")
	assert.False(t, ok, "localized labels are presentation-only, not statuses")
}
