package transport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/rpggio/workforce/internal/domain/employee"
	"github.com/rpggio/workforce/internal/domain/project"
	"github.com/rpggio/workforce/internal/metrics"
)

// EmployeeService defines employee operations needed by the HTTP handlers.
type EmployeeService interface {
	List(ctx context.Context) ([]employee.Employee, int, error)
	Get(ctx context.Context, id int64) (*employee.Employee, error)
	Create(ctx context.Context, req employee.CreateRequest) (*employee.Employee, error)
	Update(ctx context.Context, id int64, patch employee.Patch) (*employee.Employee, error)
	Delete(ctx context.Context, id int64) error
}

// ProjectService defines project and assignment operations needed by the HTTP handlers.
type ProjectService interface {
	List(ctx context.Context) ([]project.Project, int, error)
	Get(ctx context.Context, id int64) (*project.Project, error)
	Create(ctx context.Context, req project.CreateRequest) (*project.Project, error)
	Update(ctx context.Context, id int64, patch project.Patch) (*project.Project, error)
	Delete(ctx context.Context, id int64) error
	Assign(ctx context.Context, projectID, employeeID int64) (*project.Project, error)
	ListEmployees(ctx context.Context, projectID int64) ([]employee.Employee, error)
}

// Config wires the router.
type Config struct {
	Employees   EmployeeService
	Projects    ProjectService
	Logger      *slog.Logger
	Metrics     *metrics.Metrics
	CORSOrigins []string
	// MCP is mounted at /mcp when non-nil.
	MCP     http.Handler
	Version string
}

// Server holds the handler dependencies.
type Server struct {
	employees EmployeeService
	projects  ProjectService
	logger    *slog.Logger
	version   string
}

// NewServer creates an HTTP server router with middleware.
func NewServer(cfg Config) *chi.Mux {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	srv := &Server{
		employees: cfg.Employees,
		projects:  cfg.Projects,
		logger:    logger,
		version:   cfg.Version,
	}

	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(logger))
	if cfg.Metrics != nil {
		r.Use(MetricsMiddleware(cfg.Metrics))
	}
	r.Use(RecoverMiddleware(logger))
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader, "Mcp-Session-Id", "Mcp-Protocol-Version"},
			ExposedHeaders: []string{RequestIDHeader, "Mcp-Session-Id"},
			MaxAge:         300,
		}))
	}

	r.NotFound(srv.handleNotFound)
	r.MethodNotAllowed(srv.handleMethodNotAllowed)

	r.Get("/", srv.handleIndex)
	r.Get("/health", srv.handleHealth)
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}

	r.Route("/api/empleados", func(r chi.Router) {
		r.Get("/", srv.listEmployees)
		r.Post("/", srv.createEmployee)
		r.Get("/{id:[0-9]+}", srv.getEmployee)
		r.Put("/{id:[0-9]+}", srv.updateEmployee)
		r.Delete("/{id:[0-9]+}", srv.deleteEmployee)
	})

	r.Route("/api/proyectos", func(r chi.Router) {
		r.Get("/", srv.listProjects)
		r.Post("/", srv.createProject)
		r.Get("/{id:[0-9]+}", srv.getProject)
		r.Put("/{id:[0-9]+}", srv.updateProject)
		r.Delete("/{id:[0-9]+}", srv.deleteProject)
		r.Post("/{id:[0-9]+}/asignar", srv.assignEmployee)
		r.Get("/{id:[0-9]+}/empleados", srv.listProjectEmployees)
	})

	if cfg.MCP != nil {
		r.Handle("/mcp", cfg.MCP)
	}

	return r
}

type indexEndpoints struct {
	Employees string `json:"empleados"`
	Projects  string `json:"proyectos"`
}

type indexData struct {
	Name      string         `json:"name"`
	Message   string         `json:"message"`
	Version   string         `json:"version"`
	Endpoints indexEndpoints `json:"endpoints"`
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	WriteData(w, http.StatusOK, indexData{
		Name:    "workforce",
		Message: "Employee and project management API",
		Version: s.version,
		Endpoints: indexEndpoints{
			Employees: "/api/empleados",
			Projects:  "/api/proyectos",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	WriteError(w, http.StatusNotFound, msgEndpointNotFound)
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	WriteError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}

// writeServiceError maps err to an envelope; unexpected errors are logged.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := MapError(err)
	if status == http.StatusInternalServerError {
		requestID, _ := RequestIDFromContext(r.Context())
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "request_id", requestID, "error", err)
	}
	WriteError(w, status, message)
}
