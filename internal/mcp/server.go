package mcp

import (
	"context"
	"log/slog"
	"net/http"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/workforce/internal/domain/employee"
	"github.com/rpggio/workforce/internal/domain/project"
)

// EmployeeService defines employee operations needed by MCP.
type EmployeeService interface {
	List(ctx context.Context) ([]employee.Employee, int, error)
	Get(ctx context.Context, id int64) (*employee.Employee, error)
	Create(ctx context.Context, req employee.CreateRequest) (*employee.Employee, error)
	Update(ctx context.Context, id int64, patch employee.Patch) (*employee.Employee, error)
	Delete(ctx context.Context, id int64) error
}

// ProjectService defines project and assignment operations needed by MCP.
type ProjectService interface {
	List(ctx context.Context) ([]project.Project, int, error)
	Get(ctx context.Context, id int64) (*project.Project, error)
	Create(ctx context.Context, req project.CreateRequest) (*project.Project, error)
	Update(ctx context.Context, id int64, patch project.Patch) (*project.Project, error)
	Delete(ctx context.Context, id int64) error
	Assign(ctx context.Context, projectID, employeeID int64) (*project.Project, error)
	ListEmployees(ctx context.Context, projectID int64) ([]employee.Employee, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Employees EmployeeService
	Projects  ProjectService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Logger   *slog.Logger
	Version  string
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "workforce",
		Version: cfg.Version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(logger, "outbound"))

	t := &tools{services: cfg.Services, logger: logger}
	t.registerEmployeeTools(server)
	t.registerProjectTools(server)

	return server
}

// NewHTTPHandler serves the MCP server over streamable HTTP. Sessions are
// not kept between requests; every call is self-contained.
func NewHTTPHandler(server *sdkmcp.Server) http.Handler {
	return sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return server },
		&sdkmcp.StreamableHTTPOptions{
			Stateless:    true,
			JSONResponse: true,
		},
	)
}
