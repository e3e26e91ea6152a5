package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/workforce/internal/domain/employee"
	"github.com/rpggio/workforce/internal/domain/project"
	"github.com/rpggio/workforce/internal/memory"
	"github.com/rpggio/workforce/internal/metrics"
	"github.com/rpggio/workforce/internal/seed"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Total   *int            `json:"total"`
	Message string          `json:"message"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := memory.New()
	employeeRepo := memory.NewEmployeeRepository(store)
	projectRepo := memory.NewProjectRepository(store)
	employeeSvc := employee.NewService(employeeRepo, nil)
	projectSvc := project.NewService(projectRepo, employeeRepo, nil)
	require.NoError(t, seed.Load(context.Background(), employeeSvc, projectSvc))

	server := httptest.NewServer(NewServer(Config{
		Employees: employeeSvc,
		Projects:  projectSvc,
		Metrics:   metrics.New(),
		Version:   "test",
	}))
	t.Cleanup(server.Close)
	return server
}

func do(t *testing.T, server *httptest.Server, method, path, body string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestHTTPServer_Health(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHTTPServer_Index(t *testing.T) {
	server := newTestServer(t)

	status, env := do(t, server, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, status)
	require.True(t, env.Success)

	var data indexData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "test", data.Version)
	assert.Equal(t, "/api/empleados", data.Endpoints.Employees)
	assert.Equal(t, "/api/proyectos", data.Endpoints.Projects)
}

func TestHTTPServer_ListEmployees(t *testing.T) {
	server := newTestServer(t)

	status, env := do(t, server, http.MethodGet, "/api/empleados", "")
	require.Equal(t, http.StatusOK, status)
	require.True(t, env.Success)
	require.NotNil(t, env.Total)
	assert.Equal(t, 3, *env.Total)

	var list []employee.Employee
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 3)
	assert.Equal(t, int64(1), list[0].ID)
}

func TestHTTPServer_CreateEmployee(t *testing.T) {
	server := newTestServer(t)

	status, env := do(t, server, http.MethodPost, "/api/empleados",
		`{"name":"Ana","title":"Dev","department":"IT","email":"ana@x.com"}`)
	require.Equal(t, http.StatusCreated, status)
	require.True(t, env.Success)

	var emp employee.Employee
	require.NoError(t, json.Unmarshal(env.Data, &emp))
	assert.Equal(t, int64(4), emp.ID)
	assert.Equal(t, "ana@x.com", emp.Email)
}

func TestHTTPServer_CreateEmployee_MissingField(t *testing.T) {
	server := newTestServer(t)

	status, env := do(t, server, http.MethodPost, "/api/empleados", `{"name":"Ana","title":"Dev","department":"IT"}`)
	require.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Message)

	_, list := do(t, server, http.MethodGet, "/api/empleados", "")
	assert.Equal(t, 3, *list.Total)
}

func TestHTTPServer_BodyErrors(t *testing.T) {
	server := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"empty create", http.MethodPost, "/api/empleados", ""},
		{"malformed create", http.MethodPost, "/api/empleados", "{not json"},
		{"array body", http.MethodPost, "/api/proyectos", "[]"},
		{"malformed update", http.MethodPut, "/api/empleados/1", "{"},
		{"missing employeeId", http.MethodPost, "/api/proyectos/1/asignar", "{}"},
		{"string employeeId", http.MethodPost, "/api/proyectos/1/asignar", `{"employeeId":"2"}`},
		{"trailing data on create", http.MethodPost, "/api/empleados",
			`{"name":"a","title":"b","department":"c","email":"d"} garbage`},
		{"second object on create", http.MethodPost, "/api/proyectos", `{"name":"a","client":"b"}{}`},
		{"null update", http.MethodPut, "/api/empleados/1", "null"},
		{"null assign", http.MethodPost, "/api/proyectos/1/asignar", "null"},
		{"number update", http.MethodPut, "/api/proyectos/1", "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := do(t, server, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.False(t, env.Success)
			assert.NotEmpty(t, env.Message)
		})
	}

	_, env := do(t, server, http.MethodGet, "/api/empleados", "")
	assert.Equal(t, 3, *env.Total)
	_, env = do(t, server, http.MethodGet, "/api/proyectos", "")
	assert.Equal(t, 2, *env.Total)
	_, env = do(t, server, http.MethodGet, "/api/empleados/1", "")
	assert.Equal(t, "María García", decodeEmployee(t, env).Name)
}

func TestHTTPServer_UnknownIDBeforeBody(t *testing.T) {
	server := newTestServer(t)

	tests := []struct {
		name    string
		method  string
		path    string
		message string
	}{
		{"update employee", http.MethodPut, "/api/empleados/999", "employee not found"},
		{"update project", http.MethodPut, "/api/proyectos/999", "project not found"},
		{"assign", http.MethodPost, "/api/proyectos/999/asignar", "project not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := do(t, server, tt.method, tt.path, "not json")
			assert.Equal(t, http.StatusNotFound, status)
			assert.False(t, env.Success)
			assert.Equal(t, tt.message, env.Message)
		})
	}
}

func decodeEmployee(t *testing.T, env envelope) employee.Employee {
	t.Helper()
	var emp employee.Employee
	require.NoError(t, json.Unmarshal(env.Data, &emp))
	return emp
}

func TestHTTPServer_UpdateEmployee_Partial(t *testing.T) {
	server := newTestServer(t)

	status, env := do(t, server, http.MethodPut, "/api/empleados/2", `{"title":"Director"}`)
	require.Equal(t, http.StatusOK, status)

	var emp employee.Employee
	require.NoError(t, json.Unmarshal(env.Data, &emp))
	assert.Equal(t, "Director", emp.Title)
	assert.Equal(t, "Carlos López", emp.Name)
	assert.Equal(t, "PMO", emp.Department)
}

func TestHTTPServer_DeleteEmployee(t *testing.T) {
	server := newTestServer(t)

	status, env := do(t, server, http.MethodDelete, "/api/empleados/3", "")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.Message)

	status, env = do(t, server, http.MethodGet, "/api/empleados/3", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)

	status, _ = do(t, server, http.MethodDelete, "/api/empleados/3", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHTTPServer_Projects(t *testing.T) {
	server := newTestServer(t)

	status, env := do(t, server, http.MethodPost, "/api/proyectos", `{"name":"X","client":"Y"}`)
	require.Equal(t, http.StatusCreated, status)

	var proj project.Project
	require.NoError(t, json.Unmarshal(env.Data, &proj))
	assert.Equal(t, int64(3), proj.ID)
	assert.Equal(t, "Planning", proj.Status)
	assert.Equal(t, `[]`, string(mustField(t, env.Data, "assignedEmployeeIds")))

	status, env = do(t, server, http.MethodPost, "/api/proyectos/3/asignar", `{"employeeId":1}`)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &proj))
	assert.Equal(t, []int64{1}, proj.AssignedEmployeeIDs)

	status, env = do(t, server, http.MethodGet, "/api/proyectos/3/empleados", "")
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Total)
	assert.Equal(t, 1, *env.Total)

	status, env = do(t, server, http.MethodPut, "/api/proyectos/3", `{"status":"Closed"}`)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &proj))
	assert.Equal(t, "Closed", proj.Status)
	assert.Equal(t, "X", proj.Name)

	status, _ = do(t, server, http.MethodDelete, "/api/proyectos/3", "")
	require.Equal(t, http.StatusOK, status)

	status, _ = do(t, server, http.MethodGet, "/api/proyectos/3", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHTTPServer_AssignNotFound(t *testing.T) {
	server := newTestServer(t)

	status, env := do(t, server, http.MethodPost, "/api/proyectos/99/asignar", `{"employeeId":1}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "project not found", env.Message)

	status, env = do(t, server, http.MethodPost, "/api/proyectos/1/asignar", `{"employeeId":99}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "employee not found", env.Message)
}

func TestHTTPServer_NotFoundAndMethodNotAllowed(t *testing.T) {
	server := newTestServer(t)

	status, env := do(t, server, http.MethodGet, "/api/nothing", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, msgEndpointNotFound, env.Message)

	status, env = do(t, server, http.MethodGet, "/api/empleados/abc", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)

	status, env = do(t, server, http.MethodGet, "/api/empleados/99999999999999999999", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)

	status, env = do(t, server, http.MethodPatch, "/api/empleados/1", `{}`)
	assert.Equal(t, http.StatusMethodNotAllowed, status)
	assert.Equal(t, msgMethodNotAllowed, env.Message)
}

func TestHTTPServer_RequestID(t *testing.T) {
	server := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/empleados", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, "req-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "req-123", resp.Header.Get(RequestIDHeader))

	resp2, err := http.Get(server.URL + "/api/empleados")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.NotEmpty(t, resp2.Header.Get(RequestIDHeader))
}

func TestHTTPServer_Metrics(t *testing.T) {
	server := newTestServer(t)

	do(t, server, http.MethodGet, "/api/empleados", "")

	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "workforce_http_requests_total")
}

type panickingEmployees struct {
	EmployeeService
}

func (panickingEmployees) List(context.Context) ([]employee.Employee, int, error) {
	panic("boom")
}

type failingEmployees struct {
	EmployeeService
}

func (failingEmployees) List(context.Context) ([]employee.Employee, int, error) {
	return nil, 0, errors.New("disk on fire")
}

func TestHTTPServer_InternalErrors(t *testing.T) {
	tests := []struct {
		name string
		svc  EmployeeService
	}{
		{"panic", panickingEmployees{}},
		{"unexpected error", failingEmployees{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(NewServer(Config{Employees: tt.svc}))
			t.Cleanup(server.Close)

			status, env := do(t, server, http.MethodGet, "/api/empleados", "")
			assert.Equal(t, http.StatusInternalServerError, status)
			assert.False(t, env.Success)
			assert.Equal(t, msgInternal, env.Message)
		})
	}
}

func TestHTTPServer_MCPMount(t *testing.T) {
	mcpHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	server := httptest.NewServer(NewServer(Config{MCP: mcpHandler}))
	t.Cleanup(server.Close)

	resp, err := http.Post(server.URL+"/mcp", "application/json", bytes.NewBufferString(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
}

func mustField(t *testing.T, data json.RawMessage, key string) json.RawMessage {
	t.Helper()
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))
	value, ok := fields[key]
	require.True(t, ok, "missing field %s", key)
	return value
}
