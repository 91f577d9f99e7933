package find_available_rooms

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("find_available_rooms: invalid input data")

	// ErrInternal is returned on internal usecase failures.
	ErrInternal = errors.New("find_available_rooms: internal error")
)
