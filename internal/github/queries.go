package github

import (
	"time"
)

// GraphQL query types for GitHub's API. Polymorphic selections are decoded
// into one struct per fragment and resolved with __typename.
type (
	// projectV2Node is the selection shared by every project query
	projectV2Node struct {
		ID               string
		Number           int
		Title            string
		ShortDescription string
		Public           bool
		URL              string
		Owner            projectOwnerNode
	}

	projectOwnerNode struct {
		TypeName string `graphql:"__typename"`
		User     struct {
			Login string
			Name  string
		} `graphql:"... on User"`
		Organization struct {
			Login string
			Name  string
		} `graphql:"... on Organization"`
	}

	projectV2Connection struct {
		Nodes []projectV2Node
	}

	// projectV2ItemNode is an item without its field values, as returned by mutations
	projectV2ItemNode struct {
		ID      string
		Type    ItemType
		Content itemContentNode
	}

	// projectV2ItemWithFieldsNode is an item as listed from a project
	projectV2ItemWithFieldsNode struct {
		ID          string
		Type        ItemType
		Content     itemContentNode
		FieldValues struct {
			Nodes []itemFieldValueNode
		} `graphql:"fieldValues(first: 20)"`
	}

	contentFields struct {
		ID     string
		Number int
		Title  string
		Body   string
		State  string
		URL    string
	}

	itemContentNode struct {
		TypeName    string        `graphql:"__typename"`
		Issue       contentFields `graphql:"... on Issue"`
		PullRequest contentFields `graphql:"... on PullRequest"`
		DraftIssue  struct {
			ID    string
			Title string
			Body  string
		} `graphql:"... on DraftIssue"`
	}

	fieldCommonNode struct {
		Common struct {
			Name string
		} `graphql:"... on ProjectV2FieldCommon"`
	}

	itemFieldValueNode struct {
		TypeName  string `graphql:"__typename"`
		TextValue struct {
			Text  string
			Field fieldCommonNode
		} `graphql:"... on ProjectV2ItemFieldTextValue"`
		NumberValue struct {
			Number float64
			Field  fieldCommonNode
		} `graphql:"... on ProjectV2ItemFieldNumberValue"`
		SingleSelectValue struct {
			Name  string
			Field fieldCommonNode
		} `graphql:"... on ProjectV2ItemFieldSingleSelectValue"`
	}

	// projectV2FieldConfiguration represents a field configuration in a project
	projectV2FieldConfiguration struct {
		TypeName string `graphql:"__typename"`
		Field    struct {
			ID       string
			Name     string
			DataType string
		} `graphql:"... on ProjectV2Field"`
		SingleSelectField struct {
			ID      string
			Name    string
			Options []struct {
				ID   string
				Name string
			}
		} `graphql:"... on ProjectV2SingleSelectField"`
		IterationField struct {
			ID   string
			Name string
		} `graphql:"... on ProjectV2IterationField"`
	}
)

const (
	typeProjectV2     = "ProjectV2"
	typeProjectV2Item = "ProjectV2Item"
	typeUser          = "User"
	typeOrganization  = "Organization"
	typeIssue         = "Issue"
	typePullRequest   = "PullRequest"
	typeDraftIssue    = "DraftIssue"

	typeTextValue         = "ProjectV2ItemFieldTextValue"
	typeNumberValue       = "ProjectV2ItemFieldNumberValue"
	typeSingleSelectValue = "ProjectV2ItemFieldSingleSelectValue"

	typeField             = "ProjectV2Field"
	typeSingleSelectField = "ProjectV2SingleSelectField"
	typeIterationField    = "ProjectV2IterationField"
)

func (n projectV2Node) toProject() Project {
	return Project{
		ID:     n.ID,
		Number: n.Number,
		Title:  n.Title,
		Body:   n.ShortDescription,
		State:  stateFromPublic(n.Public),
		URL:    n.URL,
		Owner:  n.Owner.toOwner(),
	}
}

func (n projectOwnerNode) toOwner() *Owner {
	switch n.TypeName {
	case typeUser:
		return &Owner{Type: OwnerTypeUser, Login: n.User.Login, Name: n.User.Name}
	case typeOrganization:
		return &Owner{Type: OwnerTypeOrg, Login: n.Organization.Login, Name: n.Organization.Name}
	default:
		return nil
	}
}

func toProjects(nodes []projectV2Node) []Project {
	projects := make([]Project, 0, len(nodes))
	for _, n := range nodes {
		projects = append(projects, n.toProject())
	}
	return projects
}

func (n itemContentNode) toContent() *ItemContent {
	switch n.TypeName {
	case typeIssue:
		return n.Issue.toContent()
	case typePullRequest:
		return n.PullRequest.toContent()
	case typeDraftIssue:
		return &ItemContent{ID: n.DraftIssue.ID, Title: n.DraftIssue.Title, Body: n.DraftIssue.Body}
	default:
		// redacted content, or a fragment we did not ask for
		return nil
	}
}

func (f contentFields) toContent() *ItemContent {
	return &ItemContent{
		ID:     f.ID,
		Number: f.Number,
		Title:  f.Title,
		Body:   f.Body,
		State:  f.State,
		URL:    f.URL,
	}
}

func (n projectV2ItemNode) toItem(projectID string) ProjectItem {
	return ProjectItem{
		ID:          n.ID,
		Type:        n.Type,
		Content:     n.Content.toContent(),
		FieldValues: FieldValues{},
		Project:     ProjectRef{ID: projectID},
	}
}

func (n projectV2ItemWithFieldsNode) toItem(projectID string) ProjectItem {
	return ProjectItem{
		ID:          n.ID,
		Type:        n.Type,
		Content:     n.Content.toContent(),
		FieldValues: flattenFieldValues(n.FieldValues.Nodes),
		Project:     ProjectRef{ID: projectID},
	}
}

// flattenFieldValues keys each value by its field's display name and drops
// values whose field has no name. A node carries at most one value kind.
func flattenFieldValues(nodes []itemFieldValueNode) FieldValues {
	values := make(FieldValues, len(nodes))
	for _, n := range nodes {
		var name string
		var value any
		switch n.TypeName {
		case typeTextValue:
			name, value = n.TextValue.Field.Common.Name, n.TextValue.Text
		case typeNumberValue:
			name, value = n.NumberValue.Field.Common.Name, n.NumberValue.Number
		case typeSingleSelectValue:
			name, value = n.SingleSelectValue.Field.Common.Name, n.SingleSelectValue.Name
		default:
			continue
		}
		if name == "" {
			continue
		}
		values[name] = value
	}
	return values
}

// fieldConfig is a resolved project field, used when writing values
type fieldConfig struct {
	ID       string
	Name     string
	DataType string
	// Options maps single-select option names to option IDs
	Options map[string]string
}

const (
	dataTypeText         = "TEXT"
	dataTypeNumber       = "NUMBER"
	dataTypeDate         = "DATE"
	dataTypeSingleSelect = "SINGLE_SELECT"
	dataTypeIteration    = "ITERATION"
)

func (n projectV2FieldConfiguration) toFieldConfig() (fieldConfig, bool) {
	switch n.TypeName {
	case typeField:
		return fieldConfig{ID: n.Field.ID, Name: n.Field.Name, DataType: n.Field.DataType}, true
	case typeSingleSelectField:
		options := make(map[string]string, len(n.SingleSelectField.Options))
		for _, o := range n.SingleSelectField.Options {
			options[o.Name] = o.ID
		}
		return fieldConfig{ID: n.SingleSelectField.ID, Name: n.SingleSelectField.Name, DataType: dataTypeSingleSelect, Options: options}, true
	case typeIterationField:
		return fieldConfig{ID: n.IterationField.ID, Name: n.IterationField.Name, DataType: dataTypeIteration}, true
	default:
		return fieldConfig{}, false
	}
}

// dateLayout is the format GitHub uses for date field values
const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
