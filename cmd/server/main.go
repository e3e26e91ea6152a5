package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

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

var version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logWriter := io.Writer(os.Stdout)
	if logPath := os.Getenv("WORKFORCE_LOG_PATH"); logPath != "" {
		fileWriter, file, err := newLogFileWriter(logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			defer file.Close()
			logWriter = fileWriter
		}
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	employeeRepo, projectRepo, closeStore, err := openStore(cfg.Store, logger)
	if err != nil {
		logger.Error("failed to open store", "driver", cfg.Store.Driver, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	employeeSvc := employee.NewService(employeeRepo, logger)
	projectSvc := project.NewService(projectRepo, employeeRepo, logger)

	if cfg.Store.Seed {
		if err := seed.Load(context.Background(), employeeSvc, projectSvc); err != nil {
			logger.Error("failed to load sample data", "error", err)
			os.Exit(1)
		}
		logger.Info("sample data loaded",
			"employees", len(seed.Employees()),
			"projects", len(seed.Projects()),
		)
	}

	var mcpHandler http.Handler
	if cfg.MCP.Enabled {
		mcpServer := mcp.NewServer(mcp.Config{
			Services: mcp.Services{Employees: employeeSvc, Projects: projectSvc},
			Logger:   logger,
			Version:  version,
		})
		mcpHandler = mcp.NewHTTPHandler(mcpServer)
	}

	router := transport.NewServer(transport.Config{
		Employees:   employeeSvc,
		Projects:    projectSvc,
		Logger:      logger,
		Metrics:     metrics.New(),
		CORSOrigins: cfg.CORS.AllowedOrigins,
		MCP:         mcpHandler,
		Version:     version,
	})

	addr := cfg.Addr()
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening",
			"addr", addr,
			"store", cfg.Store.Driver,
			"mcp", cfg.MCP.Enabled,
			"version", version,
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	waitForShutdown(logger, httpServer)
}

// openStore builds the repositories for the configured driver. The returned
// func releases the store.
func openStore(cfg config.StoreConfig, logger *slog.Logger) (employee.Repository, project.Repository, func(), error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		if err := ensureDBDir(cfg.DSN); err != nil {
			return nil, nil, nil, fmt.Errorf("prepare database path: %w", err)
		}
		db, err := sqlite.New(cfg.DSN)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := db.RunMigrations(); err != nil {
			db.Close()
			return nil, nil, nil, fmt.Errorf("run migrations: %w", err)
		}
		closeDB := func() {
			if err := db.Close(); err != nil {
				logger.Error("failed to close database", "error", err)
			}
		}
		return sqlite.NewEmployeeRepository(db), sqlite.NewProjectRepository(db), closeDB, nil
	default:
		store := memory.New()
		return memory.NewEmployeeRepository(store), memory.NewProjectRepository(store), func() {}, nil
	}
}

func ensureDBDir(dsn string) error {
	if dsn == ":memory:" || dsn == "" || strings.HasPrefix(dsn, "file:") {
		return nil
	}
	dir := filepath.Dir(dsn)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

const (
	maxLogSizeBytes  = 6 * 1024 * 1024
	keepLogSizeBytes = 5 * 1024 * 1024
)

// logFileWriter appends to a log file and trims it back to the newest
// keepLogSizeBytes once it grows past maxLogSizeBytes.
type logFileWriter struct {
	file *os.File
	mu   sync.Mutex
}

func newLogFileWriter(path string) (*logFileWriter, *os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	writer := &logFileWriter{file: file}
	if err := writer.truncateIfNeeded(); err != nil {
		file.Close()
		return nil, nil, err
	}
	return writer, file, nil
}

func (w *logFileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	n, err := w.file.Write(p)
	if err != nil {
		return n, err
	}
	if err := w.truncateIfNeeded(); err != nil {
		return n, err
	}
	return n, nil
}

func (w *logFileWriter) truncateIfNeeded() error {
	info, err := w.file.Stat()
	if err != nil {
		return err
	}
	size := info.Size()
	if size <= maxLogSizeBytes {
		return nil
	}

	buf := make([]byte, keepLogSizeBytes)
	n, err := w.file.ReadAt(buf, size-keepLogSizeBytes)
	if err != nil && err != io.EOF {
		return err
	}
	buf = buf[:n]

	if err := w.file.Truncate(0); err != nil {
		return err
	}
	// O_APPEND writes go to the new end of file.
	_, err = w.file.Write(buf)
	return err
}
