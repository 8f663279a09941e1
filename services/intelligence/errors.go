package ai

import "fmt"

// ServiceError is a structured error reported by the upstream classification
// service in its response body.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("classification service error: %s", e.Message)
}

// ParseError means the service response could not be decoded into a complete
// prediction. Partial recommendations are never accepted.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("classification response parse failed: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
