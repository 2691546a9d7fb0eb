package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/zcaceres/ai-project-manager/internal/hydrate"
	"github.com/zcaceres/ai-project-manager/internal/store"
)

// GetWorkflowStatesTool serves the cached issue statuses.
type GetWorkflowStatesTool struct {
	store *store.Store
}

// NewGetWorkflowStatesTool creates a GetWorkflowStatesTool.
func NewGetWorkflowStatesTool(st *store.Store) *GetWorkflowStatesTool {
	return &GetWorkflowStatesTool{store: st}
}

// Definition returns the MCP tool definition for registration.
func (t *GetWorkflowStatesTool) Definition() mcp.Tool {
	return mcp.NewTool("get_workflow_states",
		mcp.WithDescription("Fetches the team's workflow states, which are the possible statuses of an issue. Use this to find the stateId for issues you want to update."),
	)
}

// Handle processes the get_workflow_states tool call.
func (t *GetWorkflowStatesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(t.store.IssueStatuses.All()), nil
}

// GetProjectStatusesTool serves the cached project statuses.
type GetProjectStatusesTool struct {
	store *store.Store
}

// NewGetProjectStatusesTool creates a GetProjectStatusesTool.
func NewGetProjectStatusesTool(st *store.Store) *GetProjectStatusesTool {
	return &GetProjectStatusesTool{store: st}
}

// Definition returns the MCP tool definition for registration.
func (t *GetProjectStatusesTool) Definition() mcp.Tool {
	return mcp.NewTool("get_project_statuses",
		mcp.WithDescription("Fetches the organization's project statuses. Use this to find the statusId for projects you want to update."),
	)
}

// Handle processes the get_project_statuses tool call.
func (t *GetProjectStatusesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(t.store.ProjectStatuses.All()), nil
}

// GetMembersTool serves the cached member collection.
type GetMembersTool struct {
	store *store.Store
}

// NewGetMembersTool creates a GetMembersTool.
func NewGetMembersTool(st *store.Store) *GetMembersTool {
	return &GetMembersTool{store: st}
}

// Definition returns the MCP tool definition for registration.
func (t *GetMembersTool) Definition() mcp.Tool {
	return mcp.NewTool("get_members",
		mcp.WithDescription("Fetches all organization members. Use this to find assignee and lead IDs."),
	)
}

// Handle processes the get_members tool call.
func (t *GetMembersTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(t.store.Members.All()), nil
}

// RefreshTool re-hydrates the cached snapshot from the remote. This is
// the explicit re-hydration step: mutations do not refresh the bulk
// collections on their own.
type RefreshTool struct {
	hydrator *hydrate.Hydrator
}

// NewRefreshTool creates a RefreshTool.
func NewRefreshTool(h *hydrate.Hydrator) *RefreshTool {
	return &RefreshTool{hydrator: h}
}

// Definition returns the MCP tool definition for registration.
func (t *RefreshTool) Definition() mcp.Tool {
	return mcp.NewTool("refresh",
		mcp.WithDescription("Re-syncs cached collections from the remote workspace. Call this after mutations when you need the get_* tools to reflect them. Omit `kind` to refresh everything."),
		mcp.WithString("kind",
			mcp.Description("The single collection to refresh"),
			mcp.Enum("issues", "projects", "documents", "issue_statuses", "project_statuses", "members", "labels"),
		),
	)
}

// Handle processes the refresh tool call.
func (t *RefreshTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind := req.GetString("kind", "")
	if kind == "" {
		if err := t.hydrator.HydrateAll(ctx); err != nil {
			return errResult(err), nil
		}
		return mcp.NewToolResultText("Refreshed all collections"), nil
	}

	if err := t.hydrator.Refresh(ctx, hydrate.Kind(kind)); err != nil {
		return errResult(err), nil
	}
	return mcp.NewToolResultText("Refreshed " + kind), nil
}
