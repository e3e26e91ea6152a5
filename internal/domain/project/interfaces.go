package project

import "context"

// Repository provides storage for projects.
type Repository interface {
	Create(ctx context.Context, proj *Project) error
	Get(ctx context.Context, id int64) (*Project, error)
	List(ctx context.Context) ([]Project, error)
	Update(ctx context.Context, id int64, patch Patch) (*Project, error)
	Delete(ctx context.Context, id int64) error
	// AddAssignment appends employeeID to the project's assignment list
	// unless it is already present.
	AddAssignment(ctx context.Context, projectID, employeeID int64) (*Project, error)
}
