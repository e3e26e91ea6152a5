package memory

import (
	"context"

	"github.com/rpggio/workforce/internal/domain/project"
	"github.com/rpggio/workforce/internal/repository"
)

// ProjectRepository implements project.Repository on a Store.
type ProjectRepository struct {
	store *Store
}

var _ project.Repository = (*ProjectRepository)(nil)

// NewProjectRepository creates a new project repository.
func NewProjectRepository(store *Store) *ProjectRepository {
	return &ProjectRepository{store: store}
}

// Create allocates the next project id and appends a copy of proj.
func (r *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if proj.AssignedEmployeeIDs == nil {
		proj.AssignedEmployeeIDs = []int64{}
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	proj.ID = r.store.nextProjectID
	r.store.nextProjectID++
	r.store.projects = append(r.store.projects, *proj.Clone())
	return nil
}

// Get returns a copy of the project with the given id.
func (r *ProjectRepository) Get(ctx context.Context, id int64) (*project.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i := r.store.projectIndex(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	return r.store.projects[i].Clone(), nil
}

// List returns copies of all projects in insertion order.
func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]project.Project, 0, len(r.store.projects))
	for i := range r.store.projects {
		out = append(out, *r.store.projects[i].Clone())
	}
	return out, nil
}

// Update applies patch to the stored project while holding the write lock.
func (r *ProjectRepository) Update(ctx context.Context, id int64, patch project.Patch) (*project.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.store.projectIndex(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	patch.Apply(&r.store.projects[i])
	return r.store.projects[i].Clone(), nil
}

// Delete removes the project.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.store.projectIndex(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.store.projects = append(r.store.projects[:i], r.store.projects[i+1:]...)
	return nil
}

// AddAssignment appends employeeID unless the project already lists it.
func (r *ProjectRepository) AddAssignment(ctx context.Context, projectID, employeeID int64) (*project.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.store.projectIndex(projectID)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	proj := &r.store.projects[i]
	if !proj.HasEmployee(employeeID) {
		proj.AssignedEmployeeIDs = append(proj.AssignedEmployeeIDs, employeeID)
	}
	return proj.Clone(), nil
}
