package github

import (
	"context"

	"github.com/shurcooL/githubv4"
)

// Client defines the interface for interacting with GitHub projects
type Client interface {
	// ListProjects lists the projects of a repository when repo is set,
	// otherwise the projects of the user or organization owner
	ListProjects(ctx context.Context, owner, repo string) ([]Project, error)

	// GetProject retrieves a project by its global node ID
	GetProject(ctx context.Context, projectID string) (*Project, error)

	// FindProject retrieves a project by owner and project number
	FindProject(ctx context.Context, ownerType OwnerType, ownerLogin string, projectNumber int) (*Project, error)

	// ListProjectItems retrieves the first page of items of a project
	ListProjectItems(ctx context.Context, projectID string) ([]ProjectItem, error)

	// CreateProjectItem adds existing content or a new draft issue to a project
	CreateProjectItem(ctx context.Context, req CreateItemRequest) (*ProjectItem, error)

	// UpdateProjectItem applies field updates to a project item
	UpdateProjectItem(ctx context.Context, projectID, itemID string, fieldUpdates map[string]any) (*ProjectItem, error)

	// DeleteProjectItem removes an item from a project and reports whether GitHub deleted one
	DeleteProjectItem(ctx context.Context, projectID, itemID string) (bool, error)
}

// Executor runs GraphQL documents built from githubv4 struct tags.
// *githubv4.Client satisfies it.
type Executor interface {
	Query(ctx context.Context, q any, variables map[string]any) error
	Mutate(ctx context.Context, m any, input githubv4.Input, variables map[string]any) error
}

var _ Executor = (*githubv4.Client)(nil)
