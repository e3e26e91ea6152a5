package testserver

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rpggio/workforce/internal/config"
	"github.com/rpggio/workforce/internal/domain/employee"
	"github.com/rpggio/workforce/internal/domain/project"
	"github.com/rpggio/workforce/internal/mcp"
	"github.com/rpggio/workforce/internal/memory"
	"github.com/rpggio/workforce/internal/metrics"
	"github.com/rpggio/workforce/internal/seed"
	"github.com/rpggio/workforce/internal/sqlite"
	"github.com/rpggio/workforce/internal/transport"
)

type TestServer struct {
	Server  *httptest.Server
	Metrics *metrics.Metrics
}

// New starts a seeded server backed by the in-memory store.
func New(t *testing.T) *TestServer {
	return NewWithDriver(t, config.DriverMemory)
}

// NewWithDriver starts a seeded server backed by the given store driver. The
// sqlite driver uses a private in-memory database.
func NewWithDriver(t *testing.T, driver string) *TestServer {
	t.Helper()

	var (
		employeeRepo employee.Repository
		projectRepo  project.Repository
	)
	switch driver {
	case config.DriverSQLite:
		db, err := sqlite.New(":memory:")
		require.NoError(t, err)
		require.NoError(t, db.RunMigrations())
		t.Cleanup(func() { _ = db.Close() })
		employeeRepo = sqlite.NewEmployeeRepository(db)
		projectRepo = sqlite.NewProjectRepository(db)
	default:
		store := memory.New()
		employeeRepo = memory.NewEmployeeRepository(store)
		projectRepo = memory.NewProjectRepository(store)
	}

	employeeSvc := employee.NewService(employeeRepo, nil)
	projectSvc := project.NewService(projectRepo, employeeRepo, nil)
	require.NoError(t, seed.Load(context.Background(), employeeSvc, projectSvc))

	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcp.Services{Employees: employeeSvc, Projects: projectSvc},
		Version:  "test",
	})

	m := metrics.New()
	server := httptest.NewServer(transport.NewServer(transport.Config{
		Employees: employeeSvc,
		Projects:  projectSvc,
		Metrics:   m,
		MCP:       mcp.NewHTTPHandler(mcpServer),
		Version:   "test",
	}))
	t.Cleanup(server.Close)

	return &TestServer{Server: server, Metrics: m}
}

// URL joins path onto the server address.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}
