package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/rpggio/workforce/internal/domain/employee"
	"github.com/rpggio/workforce/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmployee(name string) *employee.Employee {
	return &employee.Employee{Name: name, Title: "Dev", Department: "IT", Email: name + "@example.com"}
}

func TestEmployeeRepository_CreateGet(t *testing.T) {
	repo := NewEmployeeRepository(New())
	ctx := context.Background()

	emp := newEmployee("ana")
	require.NoError(t, repo.Create(ctx, emp))
	require.Equal(t, int64(1), emp.ID)

	retrieved, err := repo.Get(ctx, emp.ID)
	require.NoError(t, err)
	require.Equal(t, *emp, *retrieved)

	_, err = repo.Get(ctx, 999)
	require.Equal(t, repository.ErrNotFound, err)
}

func TestEmployeeRepository_IDsNotReusedAfterDelete(t *testing.T) {
	repo := NewEmployeeRepository(New())
	ctx := context.Background()

	first := newEmployee("a")
	second := newEmployee("b")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	require.NoError(t, repo.Delete(ctx, second.ID))

	third := newEmployee("c")
	require.NoError(t, repo.Create(ctx, third))
	require.Equal(t, int64(3), third.ID)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, []int64{1, 3}, []int64{list[0].ID, list[1].ID})
}

func TestEmployeeRepository_UpdatePartial(t *testing.T) {
	repo := NewEmployeeRepository(New())
	ctx := context.Background()

	emp := newEmployee("ana")
	require.NoError(t, repo.Create(ctx, emp))

	name := "X"
	updated, err := repo.Update(ctx, emp.ID, employee.Patch{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "X", updated.Name)
	require.Equal(t, emp.Title, updated.Title)
	require.Equal(t, emp.Department, updated.Department)
	require.Equal(t, emp.Email, updated.Email)

	_, err = repo.Update(ctx, 42, employee.Patch{Name: &name})
	require.Equal(t, repository.ErrNotFound, err)
}

func TestEmployeeRepository_ReturnsCopies(t *testing.T) {
	repo := NewEmployeeRepository(New())
	ctx := context.Background()

	emp := newEmployee("ana")
	require.NoError(t, repo.Create(ctx, emp))
	emp.Name = "mutated"

	got, err := repo.Get(ctx, emp.ID)
	require.NoError(t, err)
	require.Equal(t, "ana", got.Name)

	got.Name = "mutated again"
	again, err := repo.Get(ctx, emp.ID)
	require.NoError(t, err)
	require.Equal(t, "ana", again.Name)
}

func TestEmployeeRepository_Delete(t *testing.T) {
	repo := NewEmployeeRepository(New())
	ctx := context.Background()

	emp := newEmployee("ana")
	require.NoError(t, repo.Create(ctx, emp))
	require.NoError(t, repo.Delete(ctx, emp.ID))

	_, err := repo.Get(ctx, emp.ID)
	require.Equal(t, repository.ErrNotFound, err)
	require.Equal(t, repository.ErrNotFound, repo.Delete(ctx, emp.ID))
}

func TestEmployeeRepository_ConcurrentCreateUniqueIDs(t *testing.T) {
	repo := NewEmployeeRepository(New())
	ctx := context.Background()

	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			emp := newEmployee("worker")
			assert.NoError(t, repo.Create(ctx, emp))
			ids <- emp.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	require.Len(t, seen, n)
}

func TestEmployeeRepository_CanceledContext(t *testing.T) {
	repo := NewEmployeeRepository(New())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, repo.Create(ctx, newEmployee("ana")), context.Canceled)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, list)
}
