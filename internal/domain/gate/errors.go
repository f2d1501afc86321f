package gate

import "errors"

// Identity/location gate failures. The gate checks identity strictly before
// location, so none of these messages can leak the outcome of a later check.
var (
	ErrMissingEmbedding = errors.New("face embedding is required")
	ErrNotEnrolled      = errors.New("no enrolled face found for this user")
	ErrFaceMismatch     = errors.New("face does not match the enrolled face")
	ErrMissingGPS       = errors.New("gps coordinates are required")
	ErrOutOfRange       = errors.New("you are outside the allowed radius")
)
