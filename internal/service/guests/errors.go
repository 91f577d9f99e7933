package guests

import "errors"

var (
	// ErrGuestNotFound is returned when the guest does not exist.
	ErrGuestNotFound = errors.New("guest not found")

	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrGuestHasReservations is returned when deletion would orphan
	// reservation history.
	ErrGuestHasReservations = errors.New("guest has reservations")

	// ErrInvalidInput is returned on malformed input.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("service: internal error")
)
