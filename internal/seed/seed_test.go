package seed_test

import (
	"context"
	"testing"

	"github.com/rpggio/workforce/internal/domain/employee"
	"github.com/rpggio/workforce/internal/domain/project"
	"github.com/rpggio/workforce/internal/memory"
	"github.com/rpggio/workforce/internal/seed"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	employeeRepo := memory.NewEmployeeRepository(store)
	employees := employee.NewService(employeeRepo, nil)
	projects := project.NewService(memory.NewProjectRepository(store), employeeRepo, nil)

	require.NoError(t, seed.Load(ctx, employees, projects))

	empList, total, err := employees.List(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Equal(t, int64(3), empList[2].ID)

	projList, total, err := projects.List(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Equal(t, []int64{1, 2}, projList[0].AssignedEmployeeIDs)
	require.Equal(t, []int64{3}, projList[1].AssignedEmployeeIDs)
}

func TestLoad_FailsWithoutEmployees(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	employeeRepo := memory.NewEmployeeRepository(store)
	projects := project.NewService(memory.NewProjectRepository(store), employeeRepo, nil)

	for _, req := range seed.Projects() {
		_, err := projects.Create(ctx, req)
		require.ErrorIs(t, err, project.ErrInvalidInput)
	}
}
