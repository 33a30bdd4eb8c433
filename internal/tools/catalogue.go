// Package tools declares the operations exposed to tool-invocation clients:
// their names, descriptions and argument schemas.
package tools

// Operation names
const (
	ListProjects      = "list_projects"
	GetProject        = "get_project"
	ResolveProjectURL = "resolve_project_url"
	ListProjectItems  = "list_project_items"
	CreateProjectItem = "create_project_item"
	UpdateProjectItem = "update_project_item"
	DeleteProjectItem = "delete_project_item"
)

// ArgType is the primitive type of an argument
type ArgType string

const (
	TypeString ArgType = "string"
	TypeObject ArgType = "object"
)

// Arg describes one argument of an operation
type Arg struct {
	Name        string
	Type        ArgType
	Description string
	Required    bool
	// Enum is the closed set of legal values, empty when any value is allowed
	Enum []string
}

// Operation describes a callable operation
type Operation struct {
	Name        string
	Description string
	Args        []Arg
}

var catalogue = []Operation{
	{
		Name:        ListProjects,
		Description: "List GitHub projects for a user, organization, or repository",
		Args: []Arg{
			{Name: "owner", Type: TypeString, Required: true, Description: "The owner (user or organization) of the projects"},
			{Name: "repo", Type: TypeString, Description: "Optional repository name to list projects for a specific repo"},
		},
	},
	{
		Name:        GetProject,
		Description: "Get details of a specific GitHub project",
		Args: []Arg{
			{Name: "project_id", Type: TypeString, Required: true, Description: "The ID of the project to retrieve"},
		},
	},
	{
		Name:        ResolveProjectURL,
		Description: "Get a GitHub project, including its ID, from its URL (https://github.com/orgs/<org>/projects/<number> or https://github.com/users/<user>/projects/<number>)",
		Args: []Arg{
			{Name: "url", Type: TypeString, Required: true, Description: "The URL of the project"},
		},
	},
	{
		Name:        ListProjectItems,
		Description: "List all items (issues, PRs, draft issues) in a GitHub project",
		Args: []Arg{
			{Name: "project_id", Type: TypeString, Required: true, Description: "The ID of the project to list items for"},
		},
	},
	{
		Name:        CreateProjectItem,
		Description: "Create a new item in a GitHub project",
		Args: []Arg{
			{Name: "project_id", Type: TypeString, Required: true, Description: "The ID of the project to add the item to"},
			{Name: "content_type", Type: TypeString, Required: true, Enum: []string{"ISSUE", "PULL_REQUEST", "DRAFT_ISSUE"}, Description: "The type of content to add to the project"},
			{Name: "content_id", Type: TypeString, Description: "The ID of the existing issue or PR (required for ISSUE and PULL_REQUEST types)"},
			{Name: "title", Type: TypeString, Description: "Title for draft issues"},
			{Name: "body", Type: TypeString, Description: "Body content for draft issues"},
		},
	},
	{
		Name:        UpdateProjectItem,
		Description: "Update field values of a project item",
		Args: []Arg{
			{Name: "project_id", Type: TypeString, Required: true, Description: "The ID of the project containing the item"},
			{Name: "item_id", Type: TypeString, Required: true, Description: "The ID of the project item to update"},
			{Name: "field_updates", Type: TypeObject, Description: "Dictionary of field names and their new values"},
		},
	},
	{
		Name:        DeleteProjectItem,
		Description: "Remove an item from a GitHub project",
		Args: []Arg{
			{Name: "project_id", Type: TypeString, Required: true, Description: "The ID of the project containing the item"},
			{Name: "item_id", Type: TypeString, Required: true, Description: "The ID of the project item to delete"},
		},
	},
}

// All returns every operation of the catalogue, in declaration order
func All() []Operation {
	ops := make([]Operation, len(catalogue))
	copy(ops, catalogue)
	return ops
}

// Lookup finds an operation by name
func Lookup(name string) (Operation, bool) {
	for _, op := range catalogue {
		if op.Name == name {
			return op, true
		}
	}
	return Operation{}, false
}
