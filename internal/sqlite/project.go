package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rpggio/workforce/internal/domain/project"
	"github.com/rpggio/workforce/internal/repository"
)

// ProjectRepository implements project.Repository for SQLite
type ProjectRepository struct {
	db *DB
}

var _ project.Repository = (*ProjectRepository)(nil)

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts the project and its initial assignments in one transaction
func (r *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO projects (name, client, status) VALUES (?, ?, ?)`,
		proj.Name, proj.Client, proj.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read project id: %w", err)
	}

	for _, employeeID := range proj.AssignedEmployeeIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO project_assignments (project_id, employee_id) VALUES (?, ?)`,
			id, employeeID,
		)
		if err != nil && !isUniqueViolation(err) {
			return fmt.Errorf("failed to assign employee: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit project: %w", err)
	}

	proj.ID = id
	if proj.AssignedEmployeeIDs == nil {
		proj.AssignedEmployeeIDs = []int64{}
	}
	return nil
}

// Get retrieves a project by ID with its assignments in assignment order
func (r *ProjectRepository) Get(ctx context.Context, id int64) (*project.Project, error) {
	query := `
		SELECT id, name, client, status
		FROM projects
		WHERE id = ?
	`

	var proj project.Project
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&proj.ID,
		&proj.Name,
		&proj.Client,
		&proj.Status,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	assignments, err := r.assignments(ctx, &id)
	if err != nil {
		return nil, err
	}
	proj.AssignedEmployeeIDs = assignments[id]
	if proj.AssignedEmployeeIDs == nil {
		proj.AssignedEmployeeIDs = []int64{}
	}

	return &proj, nil
}

// List returns all projects ordered by id, which is insertion order
func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, client, status FROM projects ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	list := []project.Project{}
	for rows.Next() {
		var proj project.Project
		if err := rows.Scan(&proj.ID, &proj.Name, &proj.Client, &proj.Status); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		list = append(list, proj)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	// Release the only connection before querying assignments.
	rows.Close()

	assignments, err := r.assignments(ctx, nil)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].AssignedEmployeeIDs = assignments[list[i].ID]
		if list[i].AssignedEmployeeIDs == nil {
			list[i].AssignedEmployeeIDs = []int64{}
		}
	}

	return list, nil
}

// assignments loads assignment lists keyed by project id. A nil projectID
// loads every project.
func (r *ProjectRepository) assignments(ctx context.Context, projectID *int64) (map[int64][]int64, error) {
	query := `
		SELECT project_id, employee_id
		FROM project_assignments
		WHERE (? IS NULL OR project_id = ?)
		ORDER BY seq ASC
	`

	rows, err := r.db.QueryContext(ctx, query, projectID, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]int64)
	for rows.Next() {
		var pid, eid int64
		if err := rows.Scan(&pid, &eid); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		out[pid] = append(out[pid], eid)
	}

	return out, rows.Err()
}

// Update overwrites the supplied fields in a single statement
func (r *ProjectRepository) Update(ctx context.Context, id int64, patch project.Patch) (*project.Project, error) {
	query := `
		UPDATE projects
		SET name = COALESCE(?, name),
		    client = COALESCE(?, client),
		    status = COALESCE(?, status)
		WHERE id = ?
	`

	res, err := r.db.ExecContext(ctx, query, patch.Name, patch.Client, patch.Status, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	if n == 0 {
		return nil, repository.ErrNotFound
	}

	return r.Get(ctx, id)
}

// Delete removes a project; its assignments cascade
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// AddAssignment records employeeID on the project. An existing assignment is
// left in place.
func (r *ProjectRepository) AddAssignment(ctx context.Context, projectID, employeeID int64) (*project.Project, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO project_assignments (project_id, employee_id) VALUES (?, ?)`,
		projectID, employeeID,
	)
	switch {
	case isForeignKeyViolation(err):
		return nil, repository.ErrNotFound
	case err != nil && !isUniqueViolation(err):
		return nil, fmt.Errorf("failed to assign employee: %w", err)
	}

	return r.Get(ctx, projectID)
}
