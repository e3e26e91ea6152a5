package employee

import "context"

// Repository provides storage for employees.
type Repository interface {
	Create(ctx context.Context, emp *Employee) error
	Get(ctx context.Context, id int64) (*Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, id int64, patch Patch) (*Employee, error)
	Delete(ctx context.Context, id int64) error
}
