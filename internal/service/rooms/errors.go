package rooms

import "errors"

var (
	// ErrRoomNotFound is returned when the room does not exist.
	ErrRoomNotFound = errors.New("room not found")

	// ErrDuplicateRoomNumber is returned when the room number is taken.
	ErrDuplicateRoomNumber = errors.New("room number already exists")

	// ErrRoomHasReservations is returned when deleting a room that still has
	// active reservations.
	ErrRoomHasReservations = errors.New("room has active reservations")

	// ErrInvalidStatus is returned when the status is not one staff may set
	// directly. Booked and occupied are derived, never stored.
	ErrInvalidStatus = errors.New("invalid room status")

	// ErrInvalidInput is returned on malformed input.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("service: internal error")
)
