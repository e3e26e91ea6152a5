package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/workforce/internal/domain/employee"
	"github.com/rpggio/workforce/internal/domain/project"
)

type tools struct {
	services Services
	logger   *slog.Logger
}

var errInternal = &APIError{Code: "INTERNAL", Message: "internal server error"}

// toolError converts a service error into the error reported to the client.
func (t *tools) toolError(tool string, err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	t.logger.Error("mcp tool failed", "tool", tool, "error", err)
	return errInternal
}

// ===== EMPLOYEE TOOLS =====

type listInput struct{}

type employeeIDInput struct {
	ID int64 `json:"id" jsonschema:"Employee id"`
}

type createEmployeeInput struct {
	Name       string `json:"name" jsonschema:"Full name"`
	Title      string `json:"title" jsonschema:"Job title"`
	Department string `json:"department" jsonschema:"Department"`
	Email      string `json:"email" jsonschema:"Email address"`
}

type updateEmployeeInput struct {
	ID         int64   `json:"id" jsonschema:"Employee id"`
	Name       *string `json:"name,omitempty" jsonschema:"New full name"`
	Title      *string `json:"title,omitempty" jsonschema:"New job title"`
	Department *string `json:"department,omitempty" jsonschema:"New department"`
	Email      *string `json:"email,omitempty" jsonschema:"New email address"`
}

type employeeListOutput struct {
	Employees []employee.Employee `json:"employees" jsonschema:"Employees in creation order"`
	Total     int                 `json:"total" jsonschema:"Number of employees returned"`
}

type deleteOutput struct {
	Message string `json:"message"`
}

func (t *tools) registerEmployeeTools(server *sdkmcp.Server) {
	svc := t.services.Employees

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_employees",
		Description: "List all employees",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ listInput) (*sdkmcp.CallToolResult, employeeListOutput, error) {
		list, total, err := svc.List(ctx)
		if err != nil {
			return nil, employeeListOutput{}, t.toolError("list_employees", err)
		}
		return nil, employeeListOutput{Employees: list, Total: total}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_employee",
		Description: "Get an employee by id",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, args employeeIDInput) (*sdkmcp.CallToolResult, employee.Employee, error) {
		emp, err := svc.Get(ctx, args.ID)
		if err != nil {
			return nil, employee.Employee{}, t.toolError("get_employee", err)
		}
		return nil, *emp, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_employee",
		Description: "Create an employee. All four fields are required.",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, args createEmployeeInput) (*sdkmcp.CallToolResult, employee.Employee, error) {
		emp, err := svc.Create(ctx, employee.CreateRequest{
			Name:       &args.Name,
			Title:      &args.Title,
			Department: &args.Department,
			Email:      &args.Email,
		})
		if err != nil {
			return nil, employee.Employee{}, t.toolError("create_employee", err)
		}
		return nil, *emp, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_employee",
		Description: "Update an employee. Only the fields provided are changed.",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, args updateEmployeeInput) (*sdkmcp.CallToolResult, employee.Employee, error) {
		emp, err := svc.Update(ctx, args.ID, employee.Patch{
			Name:       args.Name,
			Title:      args.Title,
			Department: args.Department,
			Email:      args.Email,
		})
		if err != nil {
			return nil, employee.Employee{}, t.toolError("update_employee", err)
		}
		return nil, *emp, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_employee",
		Description: "Delete an employee. Project assignments that reference it are kept.",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, args employeeIDInput) (*sdkmcp.CallToolResult, deleteOutput, error) {
		if err := svc.Delete(ctx, args.ID); err != nil {
			return nil, deleteOutput{}, t.toolError("delete_employee", err)
		}
		return nil, deleteOutput{Message: "employee deleted"}, nil
	})
}

// ===== PROJECT TOOLS =====

type projectIDInput struct {
	ID int64 `json:"id" jsonschema:"Project id"`
}

type createProjectInput struct {
	Name                string  `json:"name" jsonschema:"Project name"`
	Client              string  `json:"client" jsonschema:"Client name"`
	Status              *string `json:"status,omitempty" jsonschema:"Project status (default: Planning)"`
	AssignedEmployeeIDs []int64 `json:"assignedEmployeeIds,omitempty" jsonschema:"Ids of existing employees to assign"`
}

type updateProjectInput struct {
	ID     int64   `json:"id" jsonschema:"Project id"`
	Name   *string `json:"name,omitempty" jsonschema:"New project name"`
	Client *string `json:"client,omitempty" jsonschema:"New client name"`
	Status *string `json:"status,omitempty" jsonschema:"New status"`
}

type assignInput struct {
	ProjectID  int64 `json:"projectId" jsonschema:"Project id"`
	EmployeeID int64 `json:"employeeId" jsonschema:"Employee id to assign"`
}

type projectListOutput struct {
	Projects []project.Project `json:"projects" jsonschema:"Projects in creation order"`
	Total    int               `json:"total" jsonschema:"Number of projects returned"`
}

func (t *tools) registerProjectTools(server *sdkmcp.Server) {
	svc := t.services.Projects

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List all projects with their assigned employee ids",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ listInput) (*sdkmcp.CallToolResult, projectListOutput, error) {
		list, total, err := svc.List(ctx)
		if err != nil {
			return nil, projectListOutput{}, t.toolError("list_projects", err)
		}
		return nil, projectListOutput{Projects: list, Total: total}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_project",
		Description: "Get a project by id",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, args projectIDInput) (*sdkmcp.CallToolResult, project.Project, error) {
		proj, err := svc.Get(ctx, args.ID)
		if err != nil {
			return nil, project.Project{}, t.toolError("get_project", err)
		}
		return nil, *proj, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_project",
		Description: "Create a project for a client",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, args createProjectInput) (*sdkmcp.CallToolResult, project.Project, error) {
		proj, err := svc.Create(ctx, project.CreateRequest{
			Name:                &args.Name,
			Client:              &args.Client,
			Status:              args.Status,
			AssignedEmployeeIDs: args.AssignedEmployeeIDs,
		})
		if err != nil {
			return nil, project.Project{}, t.toolError("create_project", err)
		}
		return nil, *proj, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_project",
		Description: "Update a project's name, client or status. Only the fields provided are changed.",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, args updateProjectInput) (*sdkmcp.CallToolResult, project.Project, error) {
		proj, err := svc.Update(ctx, args.ID, project.Patch{
			Name:   args.Name,
			Client: args.Client,
			Status: args.Status,
		})
		if err != nil {
			return nil, project.Project{}, t.toolError("update_project", err)
		}
		return nil, *proj, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_project",
		Description: "Delete a project",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, args projectIDInput) (*sdkmcp.CallToolResult, deleteOutput, error) {
		if err := svc.Delete(ctx, args.ID); err != nil {
			return nil, deleteOutput{}, t.toolError("delete_project", err)
		}
		return nil, deleteOutput{Message: "project deleted"}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "assign_employee",
		Description: "Assign an existing employee to a project. Repeating the call is a no-op.",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, args assignInput) (*sdkmcp.CallToolResult, project.Project, error) {
		proj, err := svc.Assign(ctx, args.ProjectID, args.EmployeeID)
		if err != nil {
			return nil, project.Project{}, t.toolError("assign_employee", err)
		}
		return nil, *proj, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_project_employees",
		Description: "List the employees assigned to a project",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, args projectIDInput) (*sdkmcp.CallToolResult, employeeListOutput, error) {
		list, err := svc.ListEmployees(ctx, args.ID)
		if err != nil {
			return nil, employeeListOutput{}, t.toolError("list_project_employees", err)
		}
		return nil, employeeListOutput{Employees: list, Total: len(list)}, nil
	})
}
