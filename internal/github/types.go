package github

import (
	"encoding/json"
	"fmt"
)

// OwnerType represents the type of project owner (user or organization)
type OwnerType int

const (
	// OwnerTypeUser represents a user-owned project
	OwnerTypeUser OwnerType = iota
	// OwnerTypeOrg represents an organization-owned project
	OwnerTypeOrg
)

func (t OwnerType) String() string {
	switch t {
	case OwnerTypeUser:
		return "User"
	case OwnerTypeOrg:
		return "Organization"
	default:
		return fmt.Sprintf("OwnerType(%d)", int(t))
	}
}

// MarshalText renders the owner type using GitHub's type names.
func (t OwnerType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ProjectState is derived from a project's public flag. GitHub's closed
// state is not represented: a closed public project still reports "open".
type ProjectState string

const (
	ProjectStateOpen    ProjectState = "open"
	ProjectStatePrivate ProjectState = "private"
)

func stateFromPublic(public bool) ProjectState {
	if public {
		return ProjectStateOpen
	}
	return ProjectStatePrivate
}

// Owner describes the user or organization holding a project
type Owner struct {
	Type  OwnerType `json:"type"`
	Login string    `json:"login,omitempty"`
	Name  string    `json:"name,omitempty"`
}

// Project represents a GitHub Projects (v2) board
type Project struct {
	ID     string       `json:"id"`
	Number int          `json:"number"`
	Title  string       `json:"title"`
	Body   string       `json:"body,omitempty"`
	State  ProjectState `json:"state"`
	URL    string       `json:"url"`
	Owner  *Owner       `json:"owner,omitempty"`
}

// ItemType discriminates the content wrapped by a project item
type ItemType string

const (
	ItemTypeIssue       ItemType = "ISSUE"
	ItemTypePullRequest ItemType = "PULL_REQUEST"
	ItemTypeDraftIssue  ItemType = "DRAFT_ISSUE"
)

// Valid reports whether t is one of the item types that can be created.
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeIssue, ItemTypePullRequest, ItemTypeDraftIssue:
		return true
	}
	return false
}

// ItemContent is the issue, pull request or draft issue behind an item.
// Draft issues never carry Number, State or URL.
type ItemContent struct {
	ID     string `json:"id"`
	Number int    `json:"number,omitempty"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	State  string `json:"state,omitempty"`
	URL    string `json:"url,omitempty"`
}

// ProjectRef is the back-reference from an item to its project
type ProjectRef struct {
	ID string `json:"id"`
}

// FieldValues maps a field's display name to its scalar value (string or float64)
type FieldValues map[string]any

// MarshalJSON keeps an empty mapping as {} rather than null.
func (f FieldValues) MarshalJSON() ([]byte, error) {
	if f == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]any(f))
}

// ProjectItem represents one entry of a project
type ProjectItem struct {
	ID          string       `json:"id"`
	Type        ItemType     `json:"type"`
	Content     *ItemContent `json:"content,omitempty"`
	FieldValues FieldValues  `json:"field_values"`
	Project     ProjectRef   `json:"project"`
}

// CreateItemRequest holds the arguments of a project item creation
type CreateItemRequest struct {
	ProjectID   string
	ContentType ItemType
	// ContentID is the node ID of an existing issue or pull request.
	// Ignored for draft issues.
	ContentID string
	Title     string
	Body      string
}

// DefaultDraftTitle is used when a draft issue is created without a title
const DefaultDraftTitle = "New Draft Issue"
