package stats

import "errors"

var (
	// ErrAccessDenied is returned when the caller is not an administrator.
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal is returned on unexpected failures inside the service.
	ErrInternal = errors.New("service: internal error")
)
