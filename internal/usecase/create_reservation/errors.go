package create_reservation

import "errors"

var (
	// ErrRoomNotFound is returned when the requested room does not exist.
	ErrRoomNotFound = errors.New("create_reservation: room not found")

	// ErrGuestNotFound is returned when the requested guest does not exist.
	ErrGuestNotFound = errors.New("create_reservation: guest not found")

	// ErrRoomNotBookable is returned when the room is under maintenance or
	// out of order.
	ErrRoomNotBookable = errors.New("create_reservation: room is not bookable")

	// ErrCapacityExceeded is returned when the party does not fit the room.
	ErrCapacityExceeded = errors.New("create_reservation: party exceeds room capacity")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal is returned on internal usecase failures.
	ErrInternal = errors.New("create_reservation: internal error")
)
