package services

import "errors"

// Error taxonomy crossing the service boundary. Handlers translate these to
// HTTP statuses; raw store or transport errors never reach the client.
var (
	// ErrValidation covers missing or malformed input, including passwords
	// shorter than the minimum length.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateEmail is returned by SignUp when the email is taken.
	ErrDuplicateEmail = errors.New("user already exists with this email")

	// ErrInvalidCredentials is deliberately generic: it covers both an
	// unknown email and a wrong password, to avoid user enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken is returned for malformed, mis-signed, or expired
	// session tokens.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrInternal is returned for unexpected store failures. Detail is
	// logged server-side, never surfaced.
	ErrInternal = errors.New("internal server error")
)
