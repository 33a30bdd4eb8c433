package github

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strconv"

	"github.com/shurcooL/githubv4"
)

// getFieldConfigs retrieves the field configurations of a project keyed by field name
func (c *GraphQLClient) getFieldConfigs(ctx context.Context, projectID string) (map[string]fieldConfig, error) {
	var query struct {
		Node struct {
			TypeName  string `graphql:"__typename"`
			ProjectV2 struct {
				Fields struct {
					Nodes []projectV2FieldConfiguration
				} `graphql:"fields(first: 100)"`
			} `graphql:"... on ProjectV2"`
		} `graphql:"node(id: $projectId)"`
	}

	variables := map[string]any{
		"projectId": githubv4.ID(projectID),
	}

	if err := c.query(ctx, "project fields", &query, variables); err != nil {
		return nil, err
	}

	if query.Node.TypeName != typeProjectV2 {
		return nil, fmt.Errorf("project with ID %s: %w", projectID, ErrNotFound)
	}

	configs := make(map[string]fieldConfig)
	for _, n := range query.Node.ProjectV2.Fields.Nodes {
		if cfg, ok := n.toFieldConfig(); ok && cfg.Name != "" {
			configs[cfg.Name] = cfg
		}
	}
	return configs, nil
}

// writeFieldValues resolves each field name to its field ID and sets the value.
// All values are converted before the first mutation is sent.
func (c *GraphQLClient) writeFieldValues(ctx context.Context, projectID, itemID string, fieldUpdates map[string]any) error {
	configs, err := c.getFieldConfigs(ctx, projectID)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(fieldUpdates))
	for name := range fieldUpdates {
		names = append(names, name)
	}
	sort.Strings(names)

	inputs := make([]githubv4.UpdateProjectV2ItemFieldValueInput, 0, len(names))
	for _, name := range names {
		cfg, ok := configs[name]
		if !ok {
			return fmt.Errorf("%w: field %s not found in project", ErrInvalidArgument, name)
		}

		value, err := cfg.toFieldValue(fieldUpdates[name])
		if err != nil {
			return err
		}

		inputs = append(inputs, githubv4.UpdateProjectV2ItemFieldValueInput{
			ProjectID: githubv4.ID(projectID),
			ItemID:    githubv4.ID(itemID),
			FieldID:   githubv4.ID(cfg.ID),
			Value:     value,
		})
	}

	for i, input := range inputs {
		slog.Info("updating field value", "field", names[i], "item_id", itemID)

		var mutation struct {
			UpdateProjectV2ItemFieldValue struct {
				ClientMutationID string
			} `graphql:"updateProjectV2ItemFieldValue(input: $input)"`
		}

		if err := c.mutate(ctx, "update field "+names[i], &mutation, input); err != nil {
			return err
		}
	}

	return nil
}

// toFieldValue converts a caller supplied value to the input matching the field's data type
func (f fieldConfig) toFieldValue(raw any) (githubv4.ProjectV2FieldValue, error) {
	switch f.DataType {
	case dataTypeText:
		text, ok := toText(raw)
		if !ok {
			return githubv4.ProjectV2FieldValue{}, f.invalid(raw, "a string")
		}
		return githubv4.ProjectV2FieldValue{Text: githubv4.NewString(githubv4.String(text))}, nil
	case dataTypeNumber:
		number, ok := toFloat(raw)
		if !ok {
			return githubv4.ProjectV2FieldValue{}, f.invalid(raw, "a number")
		}
		return githubv4.ProjectV2FieldValue{Number: githubv4.NewFloat(githubv4.Float(number))}, nil
	case dataTypeDate:
		s, ok := raw.(string)
		if !ok {
			return githubv4.ProjectV2FieldValue{}, f.invalid(raw, "a YYYY-MM-DD date")
		}
		t, err := parseDate(s)
		if err != nil {
			return githubv4.ProjectV2FieldValue{}, f.invalid(raw, "a YYYY-MM-DD date")
		}
		return githubv4.ProjectV2FieldValue{Date: githubv4.NewDate(githubv4.Date{Time: t})}, nil
	case dataTypeSingleSelect:
		name, ok := toText(raw)
		if !ok {
			return githubv4.ProjectV2FieldValue{}, f.invalid(raw, "an option name")
		}
		optionID, ok := f.Options[name]
		if !ok {
			return githubv4.ProjectV2FieldValue{}, fmt.Errorf("%w: option %q not found for field %s", ErrInvalidArgument, name, f.Name)
		}
		return githubv4.ProjectV2FieldValue{SingleSelectOptionID: githubv4.NewString(githubv4.String(optionID))}, nil
	case dataTypeIteration:
		id, ok := raw.(string)
		if !ok {
			return githubv4.ProjectV2FieldValue{}, f.invalid(raw, "an iteration ID")
		}
		return githubv4.ProjectV2FieldValue{IterationID: githubv4.NewString(githubv4.String(id))}, nil
	default:
		return githubv4.ProjectV2FieldValue{}, fmt.Errorf("%w: field %s has unsupported type %s", ErrInvalidArgument, f.Name, f.DataType)
	}
}

func (f fieldConfig) invalid(raw any, want string) error {
	return fmt.Errorf("%w: value %v for field %s must be %s", ErrInvalidArgument, raw, f.Name, want)
}

// toText renders a string or a number as text, so 42 can fill a text field
// and 1 can select an option named "1"
func toText(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case json.Number:
		return v.String(), true
	default:
		return "", false
	}
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
