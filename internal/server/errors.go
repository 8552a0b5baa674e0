package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrProfileNotFound indicates no stored sections exist for a profile
type ErrProfileNotFound struct {
	ProfileID uuid.UUID
}

func (e *ErrProfileNotFound) Error() string {
	return fmt.Sprintf("profile not found: %s", e.ProfileID)
}

// ErrUnknownRole indicates a role id outside the catalog
type ErrUnknownRole struct {
	RoleID string
}

func (e *ErrUnknownRole) Error() string {
	return fmt.Sprintf("unknown role: %s", e.RoleID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrServiceUnavailable indicates a required backing service is not configured
type ErrServiceUnavailable struct {
	Service string
}

func (e *ErrServiceUnavailable) Error() string {
	return fmt.Sprintf("%s is not configured", e.Service)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrProfileNotFound, *ErrUnknownRole:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
