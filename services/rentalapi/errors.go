package rentalapi

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBaseURL is returned when the configured rental API base URL cannot be parsed.
	ErrInvalidBaseURL = errors.New("rentalapi: invalid base URL")

	// ErrMissingBookingID is returned when an operation is invoked without a booking id.
	ErrMissingBookingID = errors.New("rentalapi: booking id must not be empty")
)

// HTTPError is a non-2xx response from the rental API. Body carries the raw
// response body exactly as received.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("rental API returned status %d: %s", e.Status, e.Body)
}

// DecodeError wraps a response-shape mismatch.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("rentalapi: failed to decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
