// Package seed loads the sample employees and projects the service starts with.
package seed

import (
	"context"
	"fmt"

	"github.com/rpggio/workforce/internal/domain/employee"
	"github.com/rpggio/workforce/internal/domain/project"
)

// EmployeeCreator creates employees.
type EmployeeCreator interface {
	Create(ctx context.Context, req employee.CreateRequest) (*employee.Employee, error)
}

// ProjectCreator creates projects.
type ProjectCreator interface {
	Create(ctx context.Context, req project.CreateRequest) (*project.Project, error)
}

func str(s string) *string { return &s }

// Employees returns the sample employees. On an empty store they get ids 1 to 3.
func Employees() []employee.CreateRequest {
	return []employee.CreateRequest{
		{Name: str("María García"), Title: str("Senior Developer"), Department: str("IT"), Email: str("maria.garcia@nttdata.com")},
		{Name: str("Carlos López"), Title: str("Project Manager"), Department: str("PMO"), Email: str("carlos.lopez@nttdata.com")},
		{Name: str("Ana Martínez"), Title: str("Software Architect"), Department: str("IT"), Email: str("ana.martinez@nttdata.com")},
	}
}

// Projects returns the sample projects. They reference the sample employees.
func Projects() []project.CreateRequest {
	return []project.CreateRequest{
		{Name: str("Digital Transformation Banco XYZ"), Client: str("Banco XYZ"), Status: str("In progress"), AssignedEmployeeIDs: []int64{1, 2}},
		{Name: str("Cloud Migration Retail SA"), Client: str("Retail SA"), Status: str("Planning"), AssignedEmployeeIDs: []int64{3}},
	}
}

// Load creates the sample data through the services, employees first.
func Load(ctx context.Context, employees EmployeeCreator, projects ProjectCreator) error {
	for _, req := range Employees() {
		if _, err := employees.Create(ctx, req); err != nil {
			return fmt.Errorf("seed employee %q: %w", *req.Name, err)
		}
	}
	for _, req := range Projects() {
		if _, err := projects.Create(ctx, req); err != nil {
			return fmt.Errorf("seed project %q: %w", *req.Name, err)
		}
	}
	return nil
}
