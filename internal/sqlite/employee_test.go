package sqlite

import (
	"context"
	"testing"

	"github.com/rpggio/workforce/internal/domain/employee"
	"github.com/rpggio/workforce/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepository_Create(t *testing.T) {
	db := NewTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	emp := &employee.Employee{
		Name:       "Ana",
		Title:      "Dev",
		Department: "IT",
		Email:      "a@x.com",
	}
	require.NoError(t, repo.Create(ctx, emp))
	require.Equal(t, int64(1), emp.ID)

	retrieved, err := repo.Get(ctx, emp.ID)
	require.NoError(t, err)
	require.Equal(t, *emp, *retrieved)

	_, err = repo.Get(ctx, 999)
	require.Equal(t, repository.ErrNotFound, err)
}

func TestEmployeeRepository_IDsNotReused(t *testing.T) {
	db := NewTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	first := &employee.Employee{Name: "a", Title: "t", Department: "d", Email: "e"}
	second := &employee.Employee{Name: "b", Title: "t", Department: "d", Email: "e"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Delete(ctx, second.ID))

	third := &employee.Employee{Name: "c", Title: "t", Department: "d", Email: "e"}
	require.NoError(t, repo.Create(ctx, third))
	require.Equal(t, int64(3), third.ID)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "a", list[0].Name)
	require.Equal(t, "c", list[1].Name)
}

func TestEmployeeRepository_Update(t *testing.T) {
	db := NewTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	emp := &employee.Employee{Name: "Ana", Title: "Dev", Department: "IT", Email: "a@x.com"}
	require.NoError(t, repo.Create(ctx, emp))

	name := "X"
	empty := ""
	updated, err := repo.Update(ctx, emp.ID, employee.Patch{Name: &name, Email: &empty})
	require.NoError(t, err)
	require.Equal(t, employee.Employee{ID: emp.ID, Name: "X", Title: "Dev", Department: "IT", Email: ""}, *updated)

	_, err = repo.Update(ctx, 999, employee.Patch{Name: &name})
	require.Equal(t, repository.ErrNotFound, err)
}

func TestEmployeeRepository_Delete(t *testing.T) {
	db := NewTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	emp := &employee.Employee{Name: "Ana", Title: "Dev", Department: "IT", Email: "a@x.com"}
	require.NoError(t, repo.Create(ctx, emp))
	require.NoError(t, repo.Delete(ctx, emp.ID))

	_, err := repo.Get(ctx, emp.ID)
	require.Equal(t, repository.ErrNotFound, err)
	require.Equal(t, repository.ErrNotFound, repo.Delete(ctx, emp.ID))
}
