package update_reservation

import "errors"

var (
	// ErrReservationNotFound is returned when the reservation does not exist.
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrRoomNotFound is returned when the target room does not exist.
	ErrRoomNotFound = errors.New("update_reservation: room not found")

	// ErrNotEditable is returned when the reservation's status no longer
	// allows edits (checked in or terminal).
	ErrNotEditable = errors.New("update_reservation: reservation can no longer be edited")

	// ErrRoomNotBookable is returned when the target room is under
	// maintenance or out of order.
	ErrRoomNotBookable = errors.New("update_reservation: room is not bookable")

	// ErrCapacityExceeded is returned when the party does not fit the room.
	ErrCapacityExceeded = errors.New("update_reservation: party exceeds room capacity")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrInternal is returned on internal usecase failures.
	ErrInternal = errors.New("update_reservation: internal error")
)
