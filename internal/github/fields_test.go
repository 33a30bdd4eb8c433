package github

import (
	"encoding/json"
	"testing"

	"github.com/shurcooL/githubv4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFieldValue(t *testing.T) {
	text := fieldConfig{ID: "F_notes", Name: "Notes", DataType: dataTypeText}
	number := fieldConfig{ID: "F_points", Name: "Points", DataType: dataTypeNumber}
	status := fieldConfig{
		ID:       "F_status",
		Name:     "Status",
		DataType: dataTypeSingleSelect,
		Options:  map[string]string{"Done": "O_done", "1": "O_one", "2.5": "O_two_half"},
	}

	tests := []struct {
		name    string
		field   fieldConfig
		raw     any
		want    githubv4.ProjectV2FieldValue
		wantErr string
	}{
		{
			name:  "text",
			field: text,
			raw:   "Needs design",
			want:  githubv4.ProjectV2FieldValue{Text: githubv4.NewString("Needs design")},
		},
		{
			name:  "number into text field",
			field: text,
			raw:   42.0,
			want:  githubv4.ProjectV2FieldValue{Text: githubv4.NewString("42")},
		},
		{
			name:  "json number into text field",
			field: text,
			raw:   json.Number("7"),
			want:  githubv4.ProjectV2FieldValue{Text: githubv4.NewString("7")},
		},
		{
			name:    "bool into text field",
			field:   text,
			raw:     true,
			wantErr: "must be a string",
		},
		{
			name:  "numeric string into number field",
			field: number,
			raw:   "3",
			want:  githubv4.ProjectV2FieldValue{Number: githubv4.NewFloat(3)},
		},
		{
			name:  "option by name",
			field: status,
			raw:   "Done",
			want:  githubv4.ProjectV2FieldValue{SingleSelectOptionID: githubv4.NewString("O_done")},
		},
		{
			name:  "numeric option name",
			field: status,
			raw:   1.0,
			want:  githubv4.ProjectV2FieldValue{SingleSelectOptionID: githubv4.NewString("O_one")},
		},
		{
			name:  "fractional option name",
			field: status,
			raw:   2.5,
			want:  githubv4.ProjectV2FieldValue{SingleSelectOptionID: githubv4.NewString("O_two_half")},
		},
		{
			name:    "unknown numeric option",
			field:   status,
			raw:     3.0,
			wantErr: `option "3" not found`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.field.toFieldValue(tt.raw)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidArgument)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
