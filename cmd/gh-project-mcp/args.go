package main

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseArguments parses 'name=value' pairs into string arguments
func ParseArguments(pairs []string) (map[string]any, error) {
	args := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		name, value, err := splitPair(pair)
		if err != nil {
			return nil, fmt.Errorf("invalid argument format: %s", pair)
		}
		args[name] = value
	}
	return args, nil
}

// ParseFieldUpdates parses 'field=value' pairs. Values that are valid JSON
// scalars (3, 1.5, true) keep their type, anything else is a string.
func ParseFieldUpdates(pairs []string) (map[string]any, error) {
	updates := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		name, value, err := splitPair(pair)
		if err != nil {
			return nil, fmt.Errorf("invalid field update format: %s", pair)
		}

		var decoded any
		if err := json.Unmarshal([]byte(value), &decoded); err == nil {
			switch decoded.(type) {
			case float64, bool:
				updates[name] = decoded
				continue
			}
		}
		updates[name] = value
	}
	return updates, nil
}

func splitPair(pair string) (string, string, error) {
	parts := strings.SplitN(pair, "=", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" {
		return "", "", fmt.Errorf("expected name=value")
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}
