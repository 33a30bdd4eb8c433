package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/naag/gh-project-mcp/internal/github"
)

// ErrUnknownOperation is returned for operation names absent from the catalogue
var ErrUnknownOperation = errors.New("unknown operation")

type propertySchema struct {
	Type                 ArgType  `json:"type"`
	Description          string   `json:"description,omitempty"`
	Enum                 []string `json:"enum,omitempty"`
	AdditionalProperties *bool    `json:"additionalProperties,omitempty"`
}

type objectSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]propertySchema `json:"properties"`
	Required   []string                  `json:"required,omitempty"`
}

// InputSchema renders the operation's arguments as a JSON schema object
func (o Operation) InputSchema() json.RawMessage {
	schema := objectSchema{
		Type:       "object",
		Properties: make(map[string]propertySchema, len(o.Args)),
	}
	for _, arg := range o.Args {
		prop := propertySchema{Type: arg.Type, Description: arg.Description, Enum: arg.Enum}
		if arg.Type == TypeObject {
			allow := true
			prop.AdditionalProperties = &allow
		}
		schema.Properties[arg.Name] = prop
		if arg.Required {
			schema.Required = append(schema.Required, arg.Name)
		}
	}

	// the schema is built from static values only
	data, err := json.Marshal(schema)
	if err != nil {
		panic(fmt.Sprintf("failed to marshal schema for %s: %v", o.Name, err))
	}
	return data
}

// Validate checks args against the operation's schema. Unknown arguments are ignored.
func (o Operation) Validate(args map[string]any) error {
	for _, arg := range o.Args {
		value, ok := args[arg.Name]
		if !ok || value == nil {
			if arg.Required {
				return fmt.Errorf("%w: %s is required", github.ErrInvalidArgument, arg.Name)
			}
			continue
		}

		switch arg.Type {
		case TypeString:
			s, ok := value.(string)
			if !ok {
				return fmt.Errorf("%w: %s must be a string", github.ErrInvalidArgument, arg.Name)
			}
			if arg.Required && s == "" {
				return fmt.Errorf("%w: %s is required", github.ErrInvalidArgument, arg.Name)
			}
			if len(arg.Enum) > 0 && !slices.Contains(arg.Enum, s) {
				return fmt.Errorf("%w: %s must be one of %v", github.ErrInvalidArgument, arg.Name, arg.Enum)
			}
		case TypeObject:
			if _, ok := value.(map[string]any); !ok {
				return fmt.Errorf("%w: %s must be an object", github.ErrInvalidArgument, arg.Name)
			}
		}
	}
	return nil
}
