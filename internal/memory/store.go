// Package memory provides the process-lifetime entity store. Both collections
// live behind a single lock and ids come from monotonic counters, so an id is
// never handed out twice even after deletes.
package memory

import (
	"sync"

	"github.com/rpggio/workforce/internal/domain/employee"
	"github.com/rpggio/workforce/internal/domain/project"
)

// Store owns the employee and project collections.
type Store struct {
	mu sync.RWMutex

	employees      []employee.Employee
	projects       []project.Project
	nextEmployeeID int64
	nextProjectID  int64
}

// New creates an empty store whose first ids are 1.
func New() *Store {
	return &Store{
		employees:      []employee.Employee{},
		projects:       []project.Project{},
		nextEmployeeID: 1,
		nextProjectID:  1,
	}
}

// employeeIndex returns the slice position of id, or -1. Callers hold mu.
func (s *Store) employeeIndex(id int64) int {
	for i := range s.employees {
		if s.employees[i].ID == id {
			return i
		}
	}
	return -1
}

// projectIndex returns the slice position of id, or -1. Callers hold mu.
func (s *Store) projectIndex(id int64) int {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return i
		}
	}
	return -1
}
