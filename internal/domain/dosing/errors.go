package dosing

import "errors"

var (
	// ErrInvalidDateRange is returned when a date fails to parse or the
	// administration date precedes the birth date.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrNotFound means no schedule entry applies to the requested
	// vaccine, dose number and age.
	ErrNotFound = errors.New("no applicable dose information")

	// ErrDataUnavailable wraps failures of the backing schedule store.
	ErrDataUnavailable = errors.New("schedule data unavailable")

	// ErrInvalidEntry is returned for reference rows that cannot be mapped
	// into an Entry.
	ErrInvalidEntry = errors.New("invalid schedule entry")
)
