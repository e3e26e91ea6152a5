package transport

import (
	"errors"
	"net/http"

	"github.com/rpggio/workforce/internal/domain/employee"
	"github.com/rpggio/workforce/internal/domain/project"
)

// Fallback messages.
const (
	msgEndpointNotFound = "endpoint not found"
	msgMethodNotAllowed = "method not allowed"
	msgInternal         = "internal server error"
	msgInvalidBody      = "request body must be a JSON object"
)

// MapError maps domain errors to an HTTP status and client message.
func MapError(err error) (int, string) {
	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		return http.StatusNotFound, "employee not found"
	case errors.Is(err, project.ErrProjectNotFound):
		return http.StatusNotFound, "project not found"
	case errors.Is(err, employee.ErrInvalidInput), errors.Is(err, project.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, msgInternal
	}
}
