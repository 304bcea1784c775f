package domain

import "errors"

var (
	ErrFlightNotFound  = errors.New("flight not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrNoSeats         = errors.New("no available seats on this flight")
	ErrPastDeparture   = errors.New("cannot book flights in the past")
)

// ValidationError reports malformed or out-of-range input. It is raised
// before any mutation and maps to HTTP 400 at the boundary.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string { return e.Detail }

func NewValidationError(detail string) error {
	return &ValidationError{Detail: detail}
}
