package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rpggio/workforce/internal/domain/employee"
	"github.com/rpggio/workforce/internal/repository"
)

// Service handles project operations and employee assignment.
type Service struct {
	repo      Repository
	employees employee.Repository
	logger    *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, employees employee.Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, employees: employees, logger: logger}
}

// CreateRequest defines project creation inputs. A nil field was not supplied.
type CreateRequest struct {
	Name                *string
	Client              *string
	Status              *string
	AssignedEmployeeIDs []int64
}

// Create validates the request and stores a new project.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	if req.Name == nil || req.Client == nil {
		return nil, fmt.Errorf("%w: name and client are required", ErrInvalidInput)
	}

	status := DefaultStatus
	if req.Status != nil {
		status = *req.Status
	}

	assigned, err := s.resolveAssignments(ctx, req.AssignedEmployeeIDs)
	if err != nil {
		return nil, err
	}

	proj := &Project{
		Name:                *req.Name,
		Client:              *req.Client,
		Status:              status,
		AssignedEmployeeIDs: assigned,
	}
	if err := s.repo.Create(ctx, proj); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	s.logger.Debug("project created", "project_id", proj.ID)
	return proj, nil
}

// resolveAssignments drops duplicate ids, keeping the first occurrence, and
// checks that every remaining id references an existing employee.
func (s *Service) resolveAssignments(ctx context.Context, ids []int64) ([]int64, error) {
	out := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		if _, err := s.employees.Get(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%w: assigned employee %d does not exist", ErrInvalidInput, id)
			}
			return nil, fmt.Errorf("checking assigned employee: %w", err)
		}
		out = append(out, id)
	}
	return out, nil
}

// Get fetches a project by ID.
func (s *Service) Get(ctx context.Context, id int64) (*Project, error) {
	proj, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// List returns all projects in insertion order along with their count.
func (s *Service) List(ctx context.Context) ([]Project, int, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("listing projects: %w", err)
	}
	if list == nil {
		list = []Project{}
	}
	return list, len(list), nil
}

// Update applies a partial update to name, client and status.
func (s *Service) Update(ctx context.Context, id int64, patch Patch) (*Project, error) {
	proj, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("updating project: %w", err)
	}
	s.logger.Debug("project updated", "project_id", id)
	return proj, nil
}

// Delete removes a project.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("deleting project: %w", err)
	}
	s.logger.Debug("project deleted", "project_id", id)
	return nil
}

// Assign adds an employee to a project. Assigning an employee twice is a no-op.
func (s *Service) Assign(ctx context.Context, projectID, employeeID int64) (*Project, error) {
	if _, err := s.Get(ctx, projectID); err != nil {
		return nil, err
	}

	if _, err := s.employees.Get(ctx, employeeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("getting employee: %w", err)
	}

	proj, err := s.repo.AddAssignment(ctx, projectID, employeeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("assigning employee: %w", err)
	}

	s.logger.Debug("employee assigned", "project_id", projectID, "employee_id", employeeID)
	return proj, nil
}

// ListEmployees returns the employees assigned to a project, in employee
// collection order. Ids of deleted employees are skipped.
func (s *Service) ListEmployees(ctx context.Context, projectID int64) ([]employee.Employee, error) {
	proj, err := s.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}

	all, err := s.employees.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}

	out := make([]employee.Employee, 0, len(proj.AssignedEmployeeIDs))
	for _, emp := range all {
		if proj.HasEmployee(emp.ID) {
			out = append(out, emp)
		}
	}
	return out, nil
}
