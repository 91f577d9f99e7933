package guest

import "errors"

var (
	// ErrGuestNotFound is returned when the guest does not exist.
	ErrGuestNotFound = errors.New("guest.repository: guest not found")

	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("guest.repository: email already exists")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("guest.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("guest.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("guest.repository: failed to scan row")
)
