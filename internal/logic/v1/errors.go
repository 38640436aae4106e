// Package v1 provides user activity analytics business logic for API version 1.
//
// Error Handling:
// This package defines sentinel errors for every failure kind the engine reports.
// They are wrapped with context using fmt.Errorf("%w") when returned from
// business logic methods, and are always terminal for the call that raised them:
// no partial effects are committed.
//
// Absence of data (unknown user, no sessions) is not an error. Those cases
// return zero totals, empty maps, or a false "found" flag.
//
// Error Checking (in handlers):
//
//	switch {
//	case errors.Is(err, logicv1.ErrInvalidSessionOrder):
//	    c.String(http.StatusBadRequest, "Wrong session, loginTime must be earlier than logoutTime")
//	case errors.Is(err, logicv1.ErrDuplicateUser):
//	    c.String(http.StatusBadRequest, "User with this id already exists")
//	default:
//	    c.String(http.StatusInternalServerError, "Internal server error")
//	}
package v1

import "errors"

// Sentinel errors for analytics operations.
// These errors should be wrapped with context using fmt.Errorf("%w") when returned.
var (
	// ErrMissingParameters indicates a required input was absent.
	// Checked before any parsing or business logic.
	ErrMissingParameters = errors.New("missing parameters")

	// ErrInvalidInput indicates Register was called with an empty id or name.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidData indicates a timestamp or month failed to parse.
	ErrInvalidData = errors.New("invalid data")

	// ErrInvalidFormat indicates the days parameter is not an integer.
	ErrInvalidFormat = errors.New("invalid number format for days")

	// ErrInvalidArgument indicates a well-formed number violates a domain constraint.
	ErrInvalidArgument = errors.New("the number of days must be non-negative")

	// ErrInvalidSessionOrder indicates loginTime is not strictly before logoutTime.
	ErrInvalidSessionOrder = errors.New("loginTime must be earlier than logoutTime")

	// ErrDuplicateUser indicates the user id is already registered.
	ErrDuplicateUser = errors.New("user with this id already exists")

	// ErrUserNotFound indicates a session was recorded for an unregistered user.
	ErrUserNotFound = errors.New("user not found")
)
