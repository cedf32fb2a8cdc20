// Package generator provides the HTTP client for the remote job-post
// generation service. The service's AI internals are out of scope; this
// package only speaks its four endpoints and converts failures into display
// strings for the flow lifecycles.
package generator

import "fmt"

// Error represents a transport or service failure on one endpoint. It is
// always resolved into a failed lifecycle, never propagated past the flow
// boundary.
type Error struct {
	Endpoint   string
	StatusCode int
	Message    string
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generator error for %s: %s: %v", e.Endpoint, e.Message, e.Cause)
	}
	return fmt.Sprintf("generator error for %s: %s", e.Endpoint, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// DecodeError represents a response whose body did not fit the expected
// shape. It is distinct from Error so callers can tell a broken transport
// from a service that answered with garbage.
type DecodeError struct {
	Endpoint string
	Message  string
	Cause    error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode error for %s: %s: %v", e.Endpoint, e.Message, e.Cause)
	}
	return fmt.Sprintf("decode error for %s: %s", e.Endpoint, e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// DisplayMessage reduces any flow error to the string shown to the user.
// Unknown errors fall back to the fixed message the UI expects.
func DisplayMessage(err error) string {
	if err == nil {
		return ""
	}
	switch e := err.(type) {
	case *Error:
		if e.Message != "" {
			return e.Message
		}
	case *DecodeError:
		if e.Message != "" {
			return e.Message
		}
	}
	return fallbackMessage
}
