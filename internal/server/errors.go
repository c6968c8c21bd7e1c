// Package server provides the HTTP REST API for the matching engine.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/match-engine/internal/ensemble"
	"github.com/jonathan/match-engine/internal/schemas"
)

// ErrInvalidClientCredentials indicates a failed client-credential exchange.
type ErrInvalidClientCredentials struct{}

func (e *ErrInvalidClientCredentials) Error() string {
	return "invalid client id or client secret"
}

// ErrProfileNotFound indicates a stored candidate or position was not found.
type ErrProfileNotFound struct {
	Kind string // "candidate" or "position"
	ID   string
}

func (e *ErrProfileNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrStoreUnavailable indicates the profile store is not configured.
type ErrStoreUnavailable struct{}

func (e *ErrStoreUnavailable) Error() string {
	return "profile store not configured: set DATABASE_URL to enable candidate and position storage"
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var unknownStrategy *ensemble.UnknownStrategyError
	var allFailed *ensemble.AllStrategiesFailedError
	var schemaViolation *schemas.ValidationError

	switch {
	case errors.As(err, &unknownStrategy):
		return http.StatusBadRequest
	case errors.As(err, &allFailed):
		return http.StatusBadGateway
	case errors.As(err, &schemaViolation):
		return http.StatusBadRequest
	}

	switch err.(type) {
	case *ErrInvalidClientCredentials:
		return http.StatusUnauthorized
	case *ErrProfileNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
