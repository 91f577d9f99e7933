package dashboard

import "errors"

// ErrInternal is returned on internal service failures.
var ErrInternal = errors.New("service: internal error")
