package repositories

import "errors"

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when the email uniqueness constraint
	// would be violated.
	ErrDuplicateEmail = errors.New("email already registered")
)
