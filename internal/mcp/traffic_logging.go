package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// trafficLoggingMiddleware logs every MCP request and response at debug level.
func trafficLoggingMiddleware(logger *slog.Logger, direction string) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if logger == nil || !logger.Enabled(ctx, slog.LevelDebug) {
				return next(ctx, method, req)
			}

			sessionID := safeSessionID(req)
			logger.Debug("mcp traffic", "direction", direction, "stage", "request", "method", method, "session_id", sessionID, "params", formatPayload(safeParams(req)))

			result, err := next(ctx, method, req)
			if !strings.HasPrefix(method, "notifications/") {
				if err != nil {
					logger.Debug("mcp traffic", "direction", direction, "stage", "response", "method", method, "session_id", sessionID, "result", formatPayload(result), "error", err)
				} else {
					logger.Debug("mcp traffic", "direction", direction, "stage", "response", "method", method, "session_id", sessionID, "result", formatPayload(result))
				}
			}

			return result, err
		}
	}
}

// The SDK may hand over requests whose session or params are typed nils, so
// these accessors recover instead of crashing the logger.

func safeSessionID(req sdkmcp.Request) (id string) {
	if req == nil {
		return ""
	}
	defer func() {
		if recover() != nil {
			id = ""
		}
	}()
	session := req.GetSession()
	if session == nil {
		return ""
	}
	return session.ID()
}

func safeParams(req sdkmcp.Request) (params any) {
	if req == nil {
		return nil
	}
	defer func() {
		if recover() != nil {
			params = nil
		}
	}()
	return req.GetParams()
}

func formatPayload(payload any) string {
	if payload == nil {
		return "<nil>"
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%T", payload)
	}
	return string(data)
}
