package create_reservation

import "time"

// Request carries the input for creating a reservation.
type Request struct {
	RoomID          int64
	GuestID         int64
	CheckIn         time.Time // stay start date
	CheckOut        time.Time // stay end date, exclusive
	Adults          int
	Children        int
	SpecialRequests *string
	Confirmed       bool // create directly as confirmed instead of pending
}

// Response carries the created reservation.
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
	TotalPrice      float64
	SpecialRequests *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
