package github

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shurcooL/githubv4"
)

// ListProjectItems implements the Client interface
func (c *GraphQLClient) ListProjectItems(ctx context.Context, projectID string) ([]ProjectItem, error) {
	if projectID == "" {
		return nil, fmt.Errorf("%w: project_id is required", ErrInvalidArgument)
	}

	var query struct {
		Node struct {
			TypeName  string `graphql:"__typename"`
			ProjectV2 struct {
				Items struct {
					Nodes []projectV2ItemWithFieldsNode
				} `graphql:"items(first: 100)"`
			} `graphql:"... on ProjectV2"`
		} `graphql:"node(id: $projectId)"`
	}

	variables := map[string]any{
		"projectId": githubv4.ID(projectID),
	}

	if err := c.query(ctx, "project items", &query, variables); err != nil {
		return nil, err
	}

	if query.Node.TypeName != typeProjectV2 {
		return nil, fmt.Errorf("project with ID %s: %w", projectID, ErrNotFound)
	}

	nodes := query.Node.ProjectV2.Items.Nodes
	items := make([]ProjectItem, 0, len(nodes))
	for _, n := range nodes {
		items = append(items, n.toItem(projectID))
	}
	return items, nil
}

// CreateProjectItem implements the Client interface
func (c *GraphQLClient) CreateProjectItem(ctx context.Context, req CreateItemRequest) (*ProjectItem, error) {
	if req.ProjectID == "" {
		return nil, fmt.Errorf("%w: project_id is required", ErrInvalidArgument)
	}

	var (
		node *projectV2ItemNode
		err  error
	)
	switch req.ContentType {
	case ItemTypeDraftIssue:
		node, err = c.addDraftIssue(ctx, req)
	case ItemTypeIssue, ItemTypePullRequest:
		if req.ContentID == "" {
			return nil, fmt.Errorf("%w: content_id is required for non-draft issues", ErrInvalidArgument)
		}
		node, err = c.addItemByID(ctx, req)
	default:
		return nil, fmt.Errorf("%w: unsupported content_type %q", ErrInvalidArgument, req.ContentType)
	}
	if err != nil {
		return nil, err
	}

	if node == nil || node.ID == "" {
		return nil, ErrCreateFailed
	}

	item := node.toItem(req.ProjectID)
	return &item, nil
}

func (c *GraphQLClient) addDraftIssue(ctx context.Context, req CreateItemRequest) (*projectV2ItemNode, error) {
	var mutation struct {
		AddProjectV2DraftIssue struct {
			ProjectItem *projectV2ItemNode
		} `graphql:"addProjectV2DraftIssue(input: $input)"`
	}

	title := req.Title
	if title == "" {
		title = DefaultDraftTitle
	}

	input := githubv4.AddProjectV2DraftIssueInput{
		ProjectID: githubv4.ID(req.ProjectID),
		Title:     githubv4.String(title),
	}
	if req.Body != "" {
		input.Body = githubv4.NewString(githubv4.String(req.Body))
	}

	if err := c.mutate(ctx, "add draft issue", &mutation, input); err != nil {
		return nil, err
	}

	return mutation.AddProjectV2DraftIssue.ProjectItem, nil
}

func (c *GraphQLClient) addItemByID(ctx context.Context, req CreateItemRequest) (*projectV2ItemNode, error) {
	var mutation struct {
		AddProjectV2ItemByID struct {
			Item *projectV2ItemNode
		} `graphql:"addProjectV2ItemById(input: $input)"`
	}

	input := githubv4.AddProjectV2ItemByIdInput{
		ProjectID: githubv4.ID(req.ProjectID),
		ContentID: githubv4.ID(req.ContentID),
	}

	if err := c.mutate(ctx, "add project item", &mutation, input); err != nil {
		return nil, err
	}

	return mutation.AddProjectV2ItemByID.Item, nil
}

// UpdateProjectItem implements the Client interface.
//
// The item is fetched to confirm it exists. Unless the client was built with
// WriteFields, fieldUpdates are only echoed back in the returned item and
// nothing is written to GitHub.
func (c *GraphQLClient) UpdateProjectItem(ctx context.Context, projectID, itemID string, fieldUpdates map[string]any) (*ProjectItem, error) {
	if projectID == "" || itemID == "" {
		return nil, fmt.Errorf("%w: project_id and item_id are required", ErrInvalidArgument)
	}

	node, err := c.getItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if c.writeFields && len(fieldUpdates) > 0 {
		if err := c.writeFieldValues(ctx, projectID, itemID, fieldUpdates); err != nil {
			return nil, err
		}
	}

	item := node.toItem(projectID)
	item.FieldValues = make(FieldValues, len(fieldUpdates))
	for name, value := range fieldUpdates {
		item.FieldValues[name] = value
	}
	return &item, nil
}

func (c *GraphQLClient) getItem(ctx context.Context, itemID string) (*projectV2ItemNode, error) {
	var query struct {
		Node struct {
			TypeName      string            `graphql:"__typename"`
			ProjectV2Item projectV2ItemNode `graphql:"... on ProjectV2Item"`
		} `graphql:"node(id: $itemId)"`
	}

	variables := map[string]any{
		"itemId": githubv4.ID(itemID),
	}

	if err := c.query(ctx, "project item", &query, variables); err != nil {
		return nil, err
	}

	if query.Node.TypeName != typeProjectV2Item {
		return nil, fmt.Errorf("project item with ID %s: %w", itemID, ErrNotFound)
	}

	return &query.Node.ProjectV2Item, nil
}

// DeleteProjectItem implements the Client interface
func (c *GraphQLClient) DeleteProjectItem(ctx context.Context, projectID, itemID string) (bool, error) {
	if projectID == "" || itemID == "" {
		return false, fmt.Errorf("%w: project_id and item_id are required", ErrInvalidArgument)
	}

	var mutation struct {
		DeleteProjectV2Item struct {
			DeletedItemID string
		} `graphql:"deleteProjectV2Item(input: $input)"`
	}

	input := githubv4.DeleteProjectV2ItemInput{
		ProjectID: githubv4.ID(projectID),
		ItemID:    githubv4.ID(itemID),
	}

	if err := c.mutate(ctx, "delete project item", &mutation, input); err != nil {
		return false, err
	}

	deleted := mutation.DeleteProjectV2Item.DeletedItemID != ""
	if !deleted {
		slog.Debug("no item deleted", "project_id", projectID, "item_id", itemID)
	}
	return deleted, nil
}
