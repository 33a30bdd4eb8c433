// Package server exposes the operation catalogue over the Model Context Protocol.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/naag/gh-project-mcp/internal/tools"
)

// Name is the implementation name announced to MCP clients
const Name = "gh-project-mcp"

// NewMCPServer creates an MCP server with one tool per catalogue operation
func NewMCPServer(d *Dispatcher, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    Name,
		Version: version,
	}, nil)

	for _, op := range tools.All() {
		server.AddTool(&mcp.Tool{
			Name:        op.Name,
			Description: op.Description,
			InputSchema: op.InputSchema(),
		}, d.toolHandler(op.Name))
	}

	return server
}

func (d *Dispatcher) toolHandler(name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args map[string]any
		if req.Params != nil && len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
				return toolError(fmt.Sprintf("Error: invalid arguments: %v", err)), nil
			}
		}

		result, err := d.Call(ctx, name, args)
		if err != nil {
			return toolError("Error: " + err.Error()), nil
		}
		return toolSuccessJSON(result), nil
	}
}

// toolError returns an error result for a tool call
func toolError(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: message},
		},
		IsError: true,
	}
}

// toolSuccessJSON returns a success result carrying result as indented JSON
func toolSuccessJSON(result any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return toolError(fmt.Sprintf("Error: failed to format result: %v", err))
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}
}

// ServeStdio runs the server on stdin/stdout until the client disconnects or ctx is done
func ServeStdio(ctx context.Context, server *mcp.Server) error {
	slog.Info("serving MCP over stdio")
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}

// HTTPHandler serves MCP on /mcp and, when gatherer is set, metrics on /metrics
func HTTPHandler(server *mcp.Server, gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/mcp", mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server { return server },
		&mcp.StreamableHTTPOptions{Stateless: true},
	))
	if gatherer != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return mux
}

// ServeHTTP listens on addr until ctx is done
func ServeHTTP(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("serving MCP over HTTP", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to serve http: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down http server: %w", err)
		}
		return nil
	}
}
