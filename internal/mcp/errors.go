package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/workforce/internal/domain/employee"
	"github.com/rpggio/workforce/internal/domain/project"
)

// APIError is the error a tool call reports back to the client.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to tool error codes. It returns nil for errors
// that are not part of the domain contract.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		return &APIError{Code: "EMPLOYEE_NOT_FOUND", Message: "employee not found"}
	case errors.Is(err, project.ErrProjectNotFound):
		return &APIError{Code: "PROJECT_NOT_FOUND", Message: "project not found"}
	case errors.Is(err, employee.ErrInvalidInput), errors.Is(err, project.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	default:
		return nil
	}
}
