package reservations

import "errors"

var (
	// ErrReservationNotFound is returned when the reservation does not exist.
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrCannotCancel is returned when the reservation's status forbids
	// cancellation.
	ErrCannotCancel = errors.New("reservation cannot be cancelled")

	// ErrInvalidTransition is returned when the requested status is not
	// reachable from the current one.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidStatus is returned when the status string is not a known
	// reservation status.
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrInvalidInput is returned on malformed input.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("service: internal error")
)
