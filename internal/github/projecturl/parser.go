package projecturl

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/naag/gh-project-mcp/internal/github"
)

// ProjectInfo identifies a project the way its URL does: by owner and number.
// Project numbers are only unique per owner, so the three values are needed
// together to look the project up with github.Client.FindProject.
type ProjectInfo struct {
	// OwnerType is OwnerTypeOrg for /orgs/ URLs and OwnerTypeUser for /users/ URLs
	OwnerType github.OwnerType
	// OwnerLogin is the organization or user login as it appears in the URL
	OwnerLogin string
	// ProjectNumber is the positive number shown in the project's URL
	ProjectNumber int
}

// Parse takes a GitHub project URL such as https://github.com/orgs/acme/projects/7
// and returns the owner and project number it points to. Trailing view paths
// (".../projects/7/views/2") are accepted.
func Parse(projectURL string) (*ProjectInfo, error) {
	u, err := url.Parse(projectURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	if u.Host != "github.com" && u.Host != "www.github.com" {
		return nil, fmt.Errorf("not a GitHub URL")
	}

	// Split path into components
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 4 {
		return nil, fmt.Errorf("invalid project URL format")
	}

	// Check if it's an org or user project
	var ownerType github.OwnerType
	switch parts[0] {
	case "orgs":
		ownerType = github.OwnerTypeOrg
	case "users":
		ownerType = github.OwnerTypeUser
	default:
		return nil, fmt.Errorf("invalid owner type in URL: %s", parts[0])
	}

	if parts[2] != "projects" {
		return nil, fmt.Errorf("invalid URL format: expected 'projects' as third component")
	}

	projectNum, err := strconv.Atoi(parts[3])
	if err != nil || projectNum <= 0 {
		return nil, fmt.Errorf("invalid project number: %s", parts[3])
	}

	return &ProjectInfo{
		OwnerType:     ownerType,
		OwnerLogin:    parts[1],
		ProjectNumber: projectNum,
	}, nil
}
