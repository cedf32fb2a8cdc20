// Package server provides the HTTP gateway for the jobpost studio.
package server

import (
	"fmt"
	"net/http"

	"github.com/jonathan/jobpost-studio/internal/generator"
)

// ErrNoJob indicates an operation that needs a canonical job before one exists
type ErrNoJob struct{}

func (e *ErrNoJob) Error() string {
	return "no job post available"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrNoJob:
		return http.StatusConflict
	case *ErrValidation:
		return http.StatusBadRequest
	case *generator.Error, *generator.DecodeError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
