package serverutils

import "errors"

// Sentinel errors for the request-level taxonomy. Services wrap these with
// context; the error handler middleware maps them to status codes.
var (
	// ErrValidation marks malformed caller input; mapped to 400.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a missing room or message; mapped to 404.
	ErrNotFound = errors.New("not found")
)
