package github

import (
	"context"
	"fmt"

	"github.com/shurcooL/githubv4"
)

// ListProjects implements the Client interface
func (c *GraphQLClient) ListProjects(ctx context.Context, owner, repo string) ([]Project, error) {
	switch {
	case owner != "" && repo != "":
		return c.listRepositoryProjects(ctx, owner, repo)
	case owner != "":
		return c.listOwnerProjects(ctx, owner)
	default:
		return nil, fmt.Errorf("%w: either 'owner' or both 'owner' and 'repo' must be provided", ErrInvalidArgument)
	}
}

func (c *GraphQLClient) listRepositoryProjects(ctx context.Context, owner, repo string) ([]Project, error) {
	var query struct {
		Repository struct {
			ProjectsV2 projectV2Connection `graphql:"projectsV2(first: 100)"`
		} `graphql:"repository(owner: $owner, name: $repo)"`
	}

	variables := map[string]any{
		"owner": githubv4.String(owner),
		"repo":  githubv4.String(repo),
	}

	if err := c.query(ctx, "repository projects", &query, variables); err != nil {
		return nil, err
	}

	return toProjects(query.Repository.ProjectsV2.Nodes), nil
}

// listOwnerProjects asks for both owner kinds since the concrete type of the
// login is only known from the response
func (c *GraphQLClient) listOwnerProjects(ctx context.Context, owner string) ([]Project, error) {
	var query struct {
		RepositoryOwner struct {
			TypeName string `graphql:"__typename"`
			User     struct {
				ProjectsV2 projectV2Connection `graphql:"projectsV2(first: 100)"`
			} `graphql:"... on User"`
			Organization struct {
				ProjectsV2 projectV2Connection `graphql:"projectsV2(first: 100)"`
			} `graphql:"... on Organization"`
		} `graphql:"repositoryOwner(login: $owner)"`
	}

	variables := map[string]any{
		"owner": githubv4.String(owner),
	}

	if err := c.query(ctx, "owner projects", &query, variables); err != nil {
		return nil, err
	}

	switch query.RepositoryOwner.TypeName {
	case typeUser:
		return toProjects(query.RepositoryOwner.User.ProjectsV2.Nodes), nil
	case typeOrganization:
		return toProjects(query.RepositoryOwner.Organization.ProjectsV2.Nodes), nil
	default:
		return nil, fmt.Errorf("owner %s: %w", owner, ErrNotFound)
	}
}

// GetProject implements the Client interface
func (c *GraphQLClient) GetProject(ctx context.Context, projectID string) (*Project, error) {
	if projectID == "" {
		return nil, fmt.Errorf("%w: project_id is required", ErrInvalidArgument)
	}

	var query struct {
		Node struct {
			TypeName  string        `graphql:"__typename"`
			ProjectV2 projectV2Node `graphql:"... on ProjectV2"`
		} `graphql:"node(id: $projectId)"`
	}

	variables := map[string]any{
		"projectId": githubv4.ID(projectID),
	}

	if err := c.query(ctx, "project", &query, variables); err != nil {
		return nil, err
	}

	if query.Node.TypeName != typeProjectV2 {
		return nil, fmt.Errorf("project with ID %s: %w", projectID, ErrNotFound)
	}

	project := query.Node.ProjectV2.toProject()
	return &project, nil
}

// FindProject implements the Client interface
func (c *GraphQLClient) FindProject(ctx context.Context, ownerType OwnerType, ownerLogin string, projectNumber int) (*Project, error) {
	if ownerLogin == "" || projectNumber <= 0 {
		return nil, fmt.Errorf("%w: owner login and a positive project number are required", ErrInvalidArgument)
	}

	var (
		node *projectV2Node
		err  error
	)
	switch ownerType {
	case OwnerTypeUser:
		node, err = c.getUserProject(ctx, ownerLogin, projectNumber)
	case OwnerTypeOrg:
		node, err = c.getOrgProject(ctx, ownerLogin, projectNumber)
	default:
		return nil, fmt.Errorf("%w: invalid owner type", ErrInvalidArgument)
	}
	if err != nil {
		return nil, err
	}

	if node == nil || node.ID == "" {
		return nil, fmt.Errorf("project %d of %s: %w", projectNumber, ownerLogin, ErrNotFound)
	}

	project := node.toProject()
	return &project, nil
}

func (c *GraphQLClient) getOrgProject(ctx context.Context, orgName string, projectNumber int) (*projectV2Node, error) {
	var query struct {
		Organization struct {
			ProjectV2 *projectV2Node `graphql:"projectV2(number: $projectNumber)"`
		} `graphql:"organization(login: $login)"`
	}

	variables := map[string]any{
		"login":         githubv4.String(orgName),
		"projectNumber": githubv4.Int(projectNumber),
	}

	if err := c.query(ctx, "organization project", &query, variables); err != nil {
		return nil, err
	}

	return query.Organization.ProjectV2, nil
}

func (c *GraphQLClient) getUserProject(ctx context.Context, username string, projectNumber int) (*projectV2Node, error) {
	var query struct {
		User struct {
			ProjectV2 *projectV2Node `graphql:"projectV2(number: $projectNumber)"`
		} `graphql:"user(login: $login)"`
	}

	variables := map[string]any{
		"login":         githubv4.String(username),
		"projectNumber": githubv4.Int(projectNumber),
	}

	if err := c.query(ctx, "user project", &query, variables); err != nil {
		return nil, err
	}

	return query.User.ProjectV2, nil
}
