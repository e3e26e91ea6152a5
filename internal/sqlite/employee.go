package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rpggio/workforce/internal/domain/employee"
	"github.com/rpggio/workforce/internal/repository"
)

// EmployeeRepository implements employee.Repository for SQLite
type EmployeeRepository struct {
	db *DB
}

var _ employee.Repository = (*EmployeeRepository)(nil)

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(db *DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create inserts the employee and sets its generated id
func (r *EmployeeRepository) Create(ctx context.Context, emp *employee.Employee) error {
	query := `
		INSERT INTO employees (name, title, department, email)
		VALUES (?, ?, ?, ?)
	`

	res, err := r.db.ExecContext(ctx, query, emp.Name, emp.Title, emp.Department, emp.Email)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read employee id: %w", err)
	}
	emp.ID = id

	return nil
}

// Get retrieves an employee by ID
func (r *EmployeeRepository) Get(ctx context.Context, id int64) (*employee.Employee, error) {
	query := `
		SELECT id, name, title, department, email
		FROM employees
		WHERE id = ?
	`

	var emp employee.Employee
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&emp.ID,
		&emp.Name,
		&emp.Title,
		&emp.Department,
		&emp.Email,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return &emp, nil
}

// List returns all employees ordered by id, which is insertion order
func (r *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	query := `
		SELECT id, name, title, department, email
		FROM employees
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	list := []employee.Employee{}
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.Title, &emp.Department, &emp.Email); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		list = append(list, emp)
	}

	return list, rows.Err()
}

// Update overwrites the supplied fields in a single statement
func (r *EmployeeRepository) Update(ctx context.Context, id int64, patch employee.Patch) (*employee.Employee, error) {
	query := `
		UPDATE employees
		SET name = COALESCE(?, name),
		    title = COALESCE(?, title),
		    department = COALESCE(?, department),
		    email = COALESCE(?, email)
		WHERE id = ?
		RETURNING id, name, title, department, email
	`

	var emp employee.Employee
	err := r.db.QueryRowContext(ctx, query,
		patch.Name,
		patch.Title,
		patch.Department,
		patch.Email,
		id,
	).Scan(&emp.ID, &emp.Name, &emp.Title, &emp.Department, &emp.Email)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	return &emp, nil
}

// Delete removes an employee; project_assignments rows are kept
func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}

	return nil
}
