package find_available_rooms

import "time"

// Request carries the availability query.
type Request struct {
	CheckIn  time.Time
	CheckOut time.Time

	RoomType    *string // only rooms of this type
	MinCapacity *int    // only rooms sleeping at least this many
}

// Response carries the rooms free for the whole requested interval.
type Response struct {
	CheckIn  time.Time
	CheckOut time.Time
	Nights   int
	Rooms    []AvailableRoom
}

// AvailableRoom is one bookable room free for the requested interval.
type AvailableRoom struct {
	ID         int64
	RoomNumber string
	RoomType   string
	Floor      int
	Capacity   int
	Price      float64
	TotalPrice float64 // price times nights
}
