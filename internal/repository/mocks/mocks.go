package mocks

import (
	"context"

	"github.com/rpggio/workforce/internal/domain/employee"
	"github.com/rpggio/workforce/internal/domain/project"
	"github.com/stretchr/testify/mock"
)

// EmployeeRepository is a mock for employee.Repository.
type EmployeeRepository struct {
	mock.Mock
}

var _ employee.Repository = (*EmployeeRepository)(nil)

func (m *EmployeeRepository) Create(ctx context.Context, emp *employee.Employee) error {
	args := m.Called(ctx, emp)
	return args.Error(0)
}

func (m *EmployeeRepository) Get(ctx context.Context, id int64) (*employee.Employee, error) {
	args := m.Called(ctx, id)
	if emp, ok := args.Get(0).(*employee.Employee); ok {
		return emp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]employee.Employee); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *EmployeeRepository) Update(ctx context.Context, id int64, patch employee.Patch) (*employee.Employee, error) {
	args := m.Called(ctx, id, patch)
	if emp, ok := args.Get(0).(*employee.Employee); ok {
		return emp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ProjectRepository is a mock for project.Repository.
type ProjectRepository struct {
	mock.Mock
}

var _ project.Repository = (*ProjectRepository)(nil)

func (m *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Get(ctx context.Context, id int64) (*project.Project, error) {
	args := m.Called(ctx, id)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Update(ctx context.Context, id int64, patch project.Patch) (*project.Project, error) {
	args := m.Called(ctx, id, patch)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProjectRepository) AddAssignment(ctx context.Context, projectID, employeeID int64) (*project.Project, error) {
	args := m.Called(ctx, projectID, employeeID)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}
