package models

import (
	"time"

	"github.com/hotelpms/reservation-service/internal/domain"
)

// Request models

// CreateRoomRequest carries the attributes of a new room.
type CreateRoomRequest struct {
	RoomNumber string  `json:"roomNumber"`
	RoomType   string  `json:"roomType"`
	Capacity   int     `json:"capacity"`
	Price      float64 `json:"price"`
	Status     *string `json:"status,omitempty"` // defaults to available
}

// UpdateRoomRequest carries edits to a room. Nil fields keep their values.
type UpdateRoomRequest struct {
	RoomNumber *string  `json:"roomNumber,omitempty"`
	RoomType   *string  `json:"roomType,omitempty"`
	Capacity   *int     `json:"capacity,omitempty"`
	Price      *float64 `json:"price,omitempty"`
	Status     *string  `json:"status,omitempty"`
}

// UpdateStatusRequest sets the intrinsic status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListRoomsRequest filters a room listing.
type ListRoomsRequest struct {
	RoomType *string `json:"roomType,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// Response models

// RoomResponse is the room DTO. Status is the stored intrinsic status;
// EffectiveStatus additionally folds in today's reservations.
type RoomResponse struct {
	ID         int64   `json:"id"`
	RoomNumber string  `json:"roomNumber"`
	RoomType   string  `json:"roomType"`
	Floor      int     `json:"floor"`
	Capacity   int     `json:"capacity"`
	Price      float64 `json:"price"`
	Status     string  `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RoomListResponse is a list of room DTOs.
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// RoomStatusEntry is one row of the status board: a room plus its effective
// status on the reference date.
type RoomStatusEntry struct {
	ID              int64  `json:"id"`
	RoomNumber      string `json:"roomNumber"`
	RoomType        string `json:"roomType"`
	Floor           int    `json:"floor"`
	EffectiveStatus string `json:"effectiveStatus"`
}

// StatusBoardResponse is the per-room effective status for a date.
type StatusBoardResponse struct {
	Date  string            `json:"date"` // "2025-10-15"
	Rooms []RoomStatusEntry `json:"rooms"`
}

// FromDomainRoom converts a domain room into the DTO.
func FromDomainRoom(room *domain.Room) *RoomResponse {
	if room == nil {
		return nil
	}
	return &RoomResponse{
		ID:         room.ID,
		RoomNumber: room.RoomNumber,
		RoomType:   room.RoomType,
		Floor:      room.Floor(),
		Capacity:   room.Capacity,
		Price:      room.Price,
		Status:     string(room.Status),
		CreatedAt:  room.CreatedAt,
		UpdatedAt:  room.UpdatedAt,
	}
}

// FromDomainRoomList converts a list of domain rooms.
func FromDomainRoomList(list []*domain.Room) *RoomListResponse {
	rooms := make([]RoomResponse, 0, len(list))
	for _, room := range list {
		rooms = append(rooms, *FromDomainRoom(room))
	}
	return &RoomListResponse{Rooms: rooms}
}
