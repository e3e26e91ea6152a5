package project

import "errors"

var (
	// ErrProjectNotFound is returned for an unknown project id.
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidInput wraps create failures: missing name or client, or an
	// initial assignment naming an employee that does not exist.
	ErrInvalidInput = errors.New("invalid project")
)
