package domain

import "errors"

var (
	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput means a malformed pricing or attribute payload.
	// Bad input is surfaced, never auto-corrected.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSKUConflict means another variation in the tenant already
	// carries the SKU.
	ErrSKUConflict = errors.New("sku already in use")

	// ErrNoAvailability means the guarded booking insert found no free
	// unit for the requested window.
	ErrNoAvailability = errors.New("no availability for requested dates")

	// ErrUnauthorized means the caller's tenant does not own the entity.
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationResult collects attribute validation problems. It is a value,
// not an error: callers display all problems at once.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}
