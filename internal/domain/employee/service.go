package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rpggio/workforce/internal/repository"
)

// Service handles employee operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new employee service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines employee creation inputs. A nil field was not supplied.
type CreateRequest struct {
	Name       *string
	Title      *string
	Department *string
	Email      *string
}

func (r CreateRequest) validate() error {
	if r.Name == nil || r.Title == nil || r.Department == nil || r.Email == nil {
		return fmt.Errorf("%w: name, title, department and email are required", ErrInvalidInput)
	}
	return nil
}

// Create validates the request and stores a new employee.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Employee, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	emp := &Employee{
		Name:       *req.Name,
		Title:      *req.Title,
		Department: *req.Department,
		Email:      *req.Email,
	}
	if err := s.repo.Create(ctx, emp); err != nil {
		return nil, fmt.Errorf("creating employee: %w", err)
	}

	s.logger.Debug("employee created", "employee_id", emp.ID)
	return emp, nil
}

// Get fetches an employee by ID.
func (s *Service) Get(ctx context.Context, id int64) (*Employee, error) {
	emp, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("getting employee: %w", err)
	}
	return emp, nil
}

// List returns all employees in insertion order along with their count.
func (s *Service) List(ctx context.Context) ([]Employee, int, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("listing employees: %w", err)
	}
	if list == nil {
		list = []Employee{}
	}
	return list, len(list), nil
}

// Update applies a partial update. Field contents are not validated.
func (s *Service) Update(ctx context.Context, id int64, patch Patch) (*Employee, error) {
	emp, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("updating employee: %w", err)
	}
	s.logger.Debug("employee updated", "employee_id", id)
	return emp, nil
}

// Delete removes an employee. Project assignments that reference it are kept.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEmployeeNotFound
		}
		return fmt.Errorf("deleting employee: %w", err)
	}
	s.logger.Debug("employee deleted", "employee_id", id)
	return nil
}
