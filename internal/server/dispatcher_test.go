package server

import (
	"context"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naag/gh-project-mcp/internal/github"
	"github.com/naag/gh-project-mcp/internal/github/mock"
	"github.com/naag/gh-project-mcp/internal/metrics"
	"github.com/naag/gh-project-mcp/internal/tools"
)

func TestDispatcherUnknownOperation(t *testing.T) {
	client := &mock.Client{
		ListProjectsFunc: func(ctx context.Context, owner, repo string) ([]github.Project, error) {
			t.Fatal("client must not be called")
			return nil, nil
		},
	}
	m := metrics.New(prometheus.NewRegistry())
	d := NewDispatcher(client, m)

	_, err := d.Call(context.Background(), "drop_project", map[string]any{"project_id": "PVT_1"})
	assert.ErrorIs(t, err, tools.ErrUnknownOperation)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ToolCalls.WithLabelValues("unknown", "unknown_operation")))
}

func TestDispatcherValidatesBeforeCalling(t *testing.T) {
	calls := 0
	client := &mock.Client{
		GetProjectFunc: func(ctx context.Context, projectID string) (*github.Project, error) {
			calls++
			return nil, nil
		},
		CreateProjectItemFunc: func(ctx context.Context, req github.CreateItemRequest) (*github.ProjectItem, error) {
			calls++
			return nil, nil
		},
	}
	d := NewDispatcher(client, nil)

	tests := []struct {
		name string
		op   string
		args map[string]any
	}{
		{name: "nil arguments", op: tools.GetProject},
		{name: "missing project id", op: tools.GetProject, args: map[string]any{}},
		{name: "project id of wrong type", op: tools.GetProject, args: map[string]any{"project_id": 7.0}},
		{name: "unsupported content type", op: tools.CreateProjectItem, args: map[string]any{"project_id": "PVT_1", "content_type": "EPIC"}},
		{name: "malformed url", op: tools.ResolveProjectURL, args: map[string]any{"url": "https://gitlab.com/orgs/acme/projects/1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.Call(context.Background(), tt.op, tt.args)
			assert.ErrorIs(t, err, github.ErrInvalidArgument)
		})
	}
	assert.Equal(t, 0, calls)
}

func TestDispatcherRoutesArguments(t *testing.T) {
	project := &github.Project{ID: "PVT_1", Number: 1, Title: "Roadmap", State: github.ProjectStateOpen}
	item := &github.ProjectItem{ID: "PVTI_1", Type: github.ItemTypeDraftIssue, Project: github.ProjectRef{ID: "PVT_1"}}

	var got []string
	client := &mock.Client{
		ListProjectsFunc: func(ctx context.Context, owner, repo string) ([]github.Project, error) {
			got = append(got, fmt.Sprintf("ListProjects(%s, %s)", owner, repo))
			return []github.Project{*project}, nil
		},
		GetProjectFunc: func(ctx context.Context, projectID string) (*github.Project, error) {
			got = append(got, fmt.Sprintf("GetProject(%s)", projectID))
			return project, nil
		},
		FindProjectFunc: func(ctx context.Context, ownerType github.OwnerType, ownerLogin string, projectNumber int) (*github.Project, error) {
			got = append(got, fmt.Sprintf("FindProject(%s, %s, %d)", ownerType, ownerLogin, projectNumber))
			return project, nil
		},
		ListProjectItemsFunc: func(ctx context.Context, projectID string) ([]github.ProjectItem, error) {
			got = append(got, fmt.Sprintf("ListProjectItems(%s)", projectID))
			return []github.ProjectItem{*item}, nil
		},
		CreateProjectItemFunc: func(ctx context.Context, req github.CreateItemRequest) (*github.ProjectItem, error) {
			got = append(got, fmt.Sprintf("CreateProjectItem(%s, %s, %s, %s, %s)", req.ProjectID, req.ContentType, req.ContentID, req.Title, req.Body))
			return item, nil
		},
		UpdateProjectItemFunc: func(ctx context.Context, projectID, itemID string, fieldUpdates map[string]any) (*github.ProjectItem, error) {
			got = append(got, fmt.Sprintf("UpdateProjectItem(%s, %s, %v)", projectID, itemID, fieldUpdates))
			return item, nil
		},
		DeleteProjectItemFunc: func(ctx context.Context, projectID, itemID string) (bool, error) {
			got = append(got, fmt.Sprintf("DeleteProjectItem(%s, %s)", projectID, itemID))
			return true, nil
		},
	}
	d := NewDispatcher(client, nil)

	tests := []struct {
		op   string
		args map[string]any
		want any
	}{
		{
			op:   tools.ListProjects,
			args: map[string]any{"owner": "acme", "repo": "widgets"},
			want: []github.Project{*project},
		},
		{
			op:   tools.GetProject,
			args: map[string]any{"project_id": "PVT_1"},
			want: project,
		},
		{
			op:   tools.ResolveProjectURL,
			args: map[string]any{"url": "https://github.com/orgs/acme/projects/1/views/2"},
			want: project,
		},
		{
			op:   tools.ListProjectItems,
			args: map[string]any{"project_id": "PVT_1"},
			want: []github.ProjectItem{*item},
		},
		{
			op:   tools.CreateProjectItem,
			args: map[string]any{"project_id": "PVT_1", "content_type": "DRAFT_ISSUE", "title": "Plan", "body": "Details"},
			want: item,
		},
		{
			op:   tools.UpdateProjectItem,
			args: map[string]any{"project_id": "PVT_1", "item_id": "PVTI_1", "field_updates": map[string]any{"Status": "Done"}},
			want: item,
		},
		{
			op:   tools.UpdateProjectItem,
			args: map[string]any{"project_id": "PVT_1", "item_id": "PVTI_1"},
			want: item,
		},
		{
			op:   tools.DeleteProjectItem,
			args: map[string]any{"project_id": "PVT_1", "item_id": "PVTI_1"},
			want: true,
		},
	}

	for _, tt := range tests {
		result, err := d.Call(context.Background(), tt.op, tt.args)
		require.NoError(t, err, tt.op)
		assert.Equal(t, tt.want, result, tt.op)
	}

	assert.Equal(t, []string{
		"ListProjects(acme, widgets)",
		"GetProject(PVT_1)",
		"FindProject(Organization, acme, 1)",
		"ListProjectItems(PVT_1)",
		"CreateProjectItem(PVT_1, DRAFT_ISSUE, , Plan, Details)",
		"UpdateProjectItem(PVT_1, PVTI_1, map[Status:Done])",
		"UpdateProjectItem(PVT_1, PVTI_1, map[])",
		"DeleteProjectItem(PVT_1, PVTI_1)",
	}, got)
}

func TestDispatcherMetrics(t *testing.T) {
	client := &mock.Client{
		GetProjectFunc: func(ctx context.Context, projectID string) (*github.Project, error) {
			if projectID == "PVT_missing" {
				return nil, fmt.Errorf("project with ID %s: %w", projectID, github.ErrNotFound)
			}
			return &github.Project{ID: projectID}, nil
		},
	}
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	d := NewDispatcher(client, m)

	_, err := d.Call(context.Background(), tools.GetProject, map[string]any{"project_id": "PVT_1"})
	require.NoError(t, err)
	_, err = d.Call(context.Background(), tools.GetProject, map[string]any{"project_id": "PVT_missing"})
	require.ErrorIs(t, err, github.ErrNotFound)
	_, err = d.Call(context.Background(), tools.GetProject, map[string]any{})
	require.ErrorIs(t, err, github.ErrInvalidArgument)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ToolCalls.WithLabelValues(tools.GetProject, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ToolCalls.WithLabelValues(tools.GetProject, "not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ToolCalls.WithLabelValues(tools.GetProject, "invalid_argument")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ToolCallDuration))
}
