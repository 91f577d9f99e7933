package domain

import "time"

// Business validation constants
const (
	MinCapacity              = 1
	MaxCapacity              = 10
	MaxRoomNumberLength      = 20
	MaxRoomTypeLength        = 50
	MaxGuestNameLength       = 50
	MaxSpecialRequestsLen    = 500
	MaxCancellationReasonLen = 500
	MaxStayNights            = 90
)

// DateFormat is the wire format for calendar dates (YYYY-MM-DD).
const DateFormat = "2006-01-02"

// InactiveStatuses are reservation statuses that never block a room.
var InactiveStatuses = []ReservationStatus{
	StatusCheckedOut,
	StatusCancelled,
	StatusNoShow,
}

// ActiveStatuses are reservation statuses that block a room for their
// date range.
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
}

// DateOnly truncates a timestamp to midnight UTC. All stay intervals are
// compared at date granularity.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay returns true if both timestamps fall on the same calendar day (UTC).
func SameDay(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}
