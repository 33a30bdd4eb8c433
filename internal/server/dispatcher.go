package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/naag/gh-project-mcp/internal/github"
	"github.com/naag/gh-project-mcp/internal/github/projecturl"
	"github.com/naag/gh-project-mcp/internal/metrics"
	"github.com/naag/gh-project-mcp/internal/tools"
)

// Dispatcher routes a named operation and its arguments to the GitHub client
type Dispatcher struct {
	client  github.Client
	metrics *metrics.Metrics
}

// NewDispatcher creates a dispatcher. m may be nil.
func NewDispatcher(client github.Client, m *metrics.Metrics) *Dispatcher {
	return &Dispatcher{client: client, metrics: m}
}

// Call validates args against the catalogue entry of name and runs the
// operation. Names absent from the catalogue fail without touching GitHub.
func (d *Dispatcher) Call(ctx context.Context, name string, args map[string]any) (any, error) {
	start := time.Now()

	op, ok := tools.Lookup(name)
	if !ok {
		slog.Warn("unknown operation", "operation", name)
		d.metrics.ObserveCall("unknown", "unknown_operation", start)
		return nil, fmt.Errorf("%w: %s", tools.ErrUnknownOperation, name)
	}

	result, err := d.call(ctx, op, args)
	outcome := github.ErrorKind(err)
	if err != nil {
		slog.Warn("tool call failed", "operation", name, "kind", outcome, "error", err)
	} else {
		slog.Debug("tool call succeeded", "operation", name, "duration", time.Since(start))
	}
	d.metrics.ObserveCall(name, outcome, start)

	return result, err
}

func (d *Dispatcher) call(ctx context.Context, op tools.Operation, args map[string]any) (any, error) {
	if args == nil {
		args = map[string]any{}
	}
	if err := op.Validate(args); err != nil {
		return nil, err
	}

	switch op.Name {
	case tools.ListProjects:
		return d.client.ListProjects(ctx, stringArg(args, "owner"), stringArg(args, "repo"))
	case tools.GetProject:
		return d.client.GetProject(ctx, stringArg(args, "project_id"))
	case tools.ResolveProjectURL:
		info, err := projecturl.Parse(stringArg(args, "url"))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", github.ErrInvalidArgument, err)
		}
		return d.client.FindProject(ctx, info.OwnerType, info.OwnerLogin, info.ProjectNumber)
	case tools.ListProjectItems:
		return d.client.ListProjectItems(ctx, stringArg(args, "project_id"))
	case tools.CreateProjectItem:
		return d.client.CreateProjectItem(ctx, github.CreateItemRequest{
			ProjectID:   stringArg(args, "project_id"),
			ContentType: github.ItemType(stringArg(args, "content_type")),
			ContentID:   stringArg(args, "content_id"),
			Title:       stringArg(args, "title"),
			Body:        stringArg(args, "body"),
		})
	case tools.UpdateProjectItem:
		updates, _ := args["field_updates"].(map[string]any)
		if updates == nil {
			updates = map[string]any{}
		}
		return d.client.UpdateProjectItem(ctx, stringArg(args, "project_id"), stringArg(args, "item_id"), updates)
	case tools.DeleteProjectItem:
		return d.client.DeleteProjectItem(ctx, stringArg(args, "project_id"), stringArg(args, "item_id"))
	default:
		// catalogue entry without a handler
		return nil, errors.New("operation not implemented: " + op.Name)
	}
}

// stringArg returns the string argument key, or "" when absent.
// Types have already been checked by tools.Operation.Validate.
func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}
