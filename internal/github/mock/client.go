package mock

import (
	"context"

	"github.com/naag/gh-project-mcp/internal/github"
)

// Client implements github.Client interface for testing
type Client struct {
	ListProjectsFunc      func(ctx context.Context, owner, repo string) ([]github.Project, error)
	GetProjectFunc        func(ctx context.Context, projectID string) (*github.Project, error)
	FindProjectFunc       func(ctx context.Context, ownerType github.OwnerType, ownerLogin string, projectNumber int) (*github.Project, error)
	ListProjectItemsFunc  func(ctx context.Context, projectID string) ([]github.ProjectItem, error)
	CreateProjectItemFunc func(ctx context.Context, req github.CreateItemRequest) (*github.ProjectItem, error)
	UpdateProjectItemFunc func(ctx context.Context, projectID, itemID string, fieldUpdates map[string]any) (*github.ProjectItem, error)
	DeleteProjectItemFunc func(ctx context.Context, projectID, itemID string) (bool, error)
}

var _ github.Client = (*Client)(nil)

// ListProjects implements the github.Client interface
func (c *Client) ListProjects(ctx context.Context, owner, repo string) ([]github.Project, error) {
	if c.ListProjectsFunc != nil {
		return c.ListProjectsFunc(ctx, owner, repo)
	}
	return nil, nil
}

// GetProject implements the github.Client interface
func (c *Client) GetProject(ctx context.Context, projectID string) (*github.Project, error) {
	if c.GetProjectFunc != nil {
		return c.GetProjectFunc(ctx, projectID)
	}
	return nil, nil
}

// FindProject implements the github.Client interface
func (c *Client) FindProject(ctx context.Context, ownerType github.OwnerType, ownerLogin string, projectNumber int) (*github.Project, error) {
	if c.FindProjectFunc != nil {
		return c.FindProjectFunc(ctx, ownerType, ownerLogin, projectNumber)
	}
	return nil, nil
}

// ListProjectItems implements the github.Client interface
func (c *Client) ListProjectItems(ctx context.Context, projectID string) ([]github.ProjectItem, error) {
	if c.ListProjectItemsFunc != nil {
		return c.ListProjectItemsFunc(ctx, projectID)
	}
	return nil, nil
}

// CreateProjectItem implements the github.Client interface
func (c *Client) CreateProjectItem(ctx context.Context, req github.CreateItemRequest) (*github.ProjectItem, error) {
	if c.CreateProjectItemFunc != nil {
		return c.CreateProjectItemFunc(ctx, req)
	}
	return nil, nil
}

// UpdateProjectItem implements the github.Client interface
func (c *Client) UpdateProjectItem(ctx context.Context, projectID, itemID string, fieldUpdates map[string]any) (*github.ProjectItem, error) {
	if c.UpdateProjectItemFunc != nil {
		return c.UpdateProjectItemFunc(ctx, projectID, itemID, fieldUpdates)
	}
	return nil, nil
}

// DeleteProjectItem implements the github.Client interface
func (c *Client) DeleteProjectItem(ctx context.Context, projectID, itemID string) (bool, error) {
	if c.DeleteProjectItemFunc != nil {
		return c.DeleteProjectItemFunc(ctx, projectID, itemID)
	}
	return false, nil
}
