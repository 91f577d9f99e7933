package update_reservation

import "time"

// Request carries the edits for an existing reservation. Nil fields keep
// their current values.
type Request struct {
	ReservationID int64

	RoomID          *int64
	CheckIn         *time.Time
	CheckOut        *time.Time
	Adults          *int
	Children        *int
	SpecialRequests *string
}

// Response carries the updated reservation.
type Response struct {
	ID              int64
	RoomID          int64
	GuestID         int64
	CheckIn         time.Time
	CheckOut        time.Time
	Nights          int
	Adults          int
	Children        int
	Status          string
	SpecialRequests *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
