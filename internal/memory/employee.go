package memory

import (
	"context"

	"github.com/rpggio/workforce/internal/domain/employee"
	"github.com/rpggio/workforce/internal/repository"
)

// EmployeeRepository implements employee.Repository on a Store.
type EmployeeRepository struct {
	store *Store
}

var _ employee.Repository = (*EmployeeRepository)(nil)

// NewEmployeeRepository creates a new employee repository.
func NewEmployeeRepository(store *Store) *EmployeeRepository {
	return &EmployeeRepository{store: store}
}

// Create allocates the next employee id and appends emp.
func (r *EmployeeRepository) Create(ctx context.Context, emp *employee.Employee) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	emp.ID = r.store.nextEmployeeID
	r.store.nextEmployeeID++
	r.store.employees = append(r.store.employees, *emp)
	return nil
}

// Get returns a copy of the employee with the given id.
func (r *EmployeeRepository) Get(ctx context.Context, id int64) (*employee.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i := r.store.employeeIndex(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	emp := r.store.employees[i]
	return &emp, nil
}

// List returns copies of all employees in insertion order.
func (r *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return append([]employee.Employee{}, r.store.employees...), nil
}

// Update applies patch to the stored employee while holding the write lock.
func (r *EmployeeRepository) Update(ctx context.Context, id int64, patch employee.Patch) (*employee.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.store.employeeIndex(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	patch.Apply(&r.store.employees[i])
	emp := r.store.employees[i]
	return &emp, nil
}

// Delete removes the employee. Project assignments are left as they are.
func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.store.employeeIndex(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.store.employees = append(r.store.employees[:i], r.store.employees[i+1:]...)
	return nil
}
