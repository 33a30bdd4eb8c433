package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArguments(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []string
		want    map[string]any
		wantErr string
	}{
		{
			name:  "string arguments",
			pairs: []string{"project_id=PVT_1", " item_id = PVTI_2 "},
			want:  map[string]any{"project_id": "PVT_1", "item_id": "PVTI_2"},
		},
		{
			name:  "value containing equals sign",
			pairs: []string{"body=a=b"},
			want:  map[string]any{"body": "a=b"},
		},
		{
			name:    "missing separator",
			pairs:   []string{"project_id"},
			wantErr: "invalid argument format",
		},
		{
			name:    "empty name",
			pairs:   []string{"=value"},
			wantErr: "invalid argument format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArguments(tt.pairs)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFieldUpdates(t *testing.T) {
	got, err := ParseFieldUpdates([]string{"Status=Done", "Points=3", "Estimate=1.5", "Start=2024-05-01", "Note=\"quoted\""})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"Status":   "Done",
		"Points":   3.0,
		"Estimate": 1.5,
		"Start":    "2024-05-01",
		"Note":     "\"quoted\"",
	}, got)

	_, err = ParseFieldUpdates([]string{"Status"})
	assert.ErrorContains(t, err, "invalid field update format")
}
