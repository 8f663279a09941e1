package session

import "errors"

var (
	// ErrNoBooking is returned when an operation requires a booking id but the
	// session has not created one yet.
	ErrNoBooking = errors.New("session: no booking created yet")

	// ErrSessionNotFound is returned by the manager for unknown session ids.
	ErrSessionNotFound = errors.New("session: not found")
)
