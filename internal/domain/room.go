package domain

import (
	"strconv"
	"time"
)

// RoomStatus represents the status of a room.
//
// Intrinsic statuses (set by staff, stored on the room):
// available, maintenance, out_of_order.
//
// Effective statuses (derived for a reference date, never stored):
// the intrinsic ones plus booked and occupied.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomBooked      RoomStatus = "booked"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
	RoomOutOfOrder  RoomStatus = "out_of_order"
)

// IntrinsicStatuses are the statuses staff may set on a room directly.
var IntrinsicStatuses = []RoomStatus{
	RoomAvailable,
	RoomMaintenance,
	RoomOutOfOrder,
}

// Room represents a hotel room.
type Room struct {
	ID         int64
	RoomNumber string
	RoomType   string
	Capacity   int
	Price      float64
	Status     RoomStatus // intrinsic status, independent of bookings

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Floor derives the floor from the room number: the leading digit group
// divided by 100 ("101" -> 1, "1203" -> 12). Rooms with non-numeric or
// short numbers fall back to floor 1.
func (r *Room) Floor() int {
	digits := 0
	for digits < len(r.RoomNumber) && r.RoomNumber[digits] >= '0' && r.RoomNumber[digits] <= '9' {
		digits++
	}
	n, err := strconv.Atoi(r.RoomNumber[:digits])
	if err != nil {
		return 1
	}
	if floor := n / 100; floor > 0 {
		return floor
	}
	return 1
}

// IsBookable returns true if the intrinsic status allows new reservations.
// Maintenance and out-of-order rooms are never bookable, regardless of
// existing reservations.
func (r *Room) IsBookable() bool {
	return r.Status == RoomAvailable
}

// ValidIntrinsicStatus returns true if s may be stored as a room's status.
func ValidIntrinsicStatus(s RoomStatus) bool {
	for _, valid := range IntrinsicStatuses {
		if s == valid {
			return true
		}
	}
	return false
}
