package orchestrators

import "errors"

// Errors shared across orchestrators. Handlers map these to safe user-facing
// flash text; raw store errors are logged, never echoed.
var (
	ErrNotAuthorized = errors.New("not authorized")
	ErrNotFound      = errors.New("not found")
)
