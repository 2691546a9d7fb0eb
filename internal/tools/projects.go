package tools

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/zcaceres/ai-project-manager/internal/gateway"
	"github.com/zcaceres/ai-project-manager/internal/linear"
	"github.com/zcaceres/ai-project-manager/internal/store"
)

// GetProjectsTool serves the cached project collection.
type GetProjectsTool struct {
	store *store.Store
}

// NewGetProjectsTool creates a GetProjectsTool.
func NewGetProjectsTool(st *store.Store) *GetProjectsTool {
	return &GetProjectsTool{store: st}
}

// Definition returns the MCP tool definition for registration.
func (t *GetProjectsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_projects",
		mcp.WithDescription("Fetches all projects, as of the last sync. Contains the project IDs needed by other tools."),
	)
}

// Handle processes the get_projects tool call.
func (t *GetProjectsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(t.store.Projects.All()), nil
}

// CreateProjectTool creates a project through the mutation gateway.
type CreateProjectTool struct {
	gateway *gateway.Gateway
}

// NewCreateProjectTool creates a CreateProjectTool.
func NewCreateProjectTool(gw *gateway.Gateway) *CreateProjectTool {
	return &CreateProjectTool{gateway: gw}
}

// Definition returns the MCP tool definition for registration.
func (t *CreateProjectTool) Definition() mcp.Tool {
	return mcp.NewTool("create_project",
		mcp.WithDescription("Creates a project in the team. The response includes the project's milestones."),
		mcp.WithString("name", mcp.Required(),
			mcp.Description("The name of the project"),
		),
		mcp.WithString("description",
			mcp.Description("A short description of the project (max 255 characters)"),
		),
		mcp.WithString("leadId",
			mcp.Description("The ID of the member leading the project"),
		),
		mcp.WithArray("memberIds",
			mcp.Description("IDs of the members of the project"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithNumber("priority",
			mcp.Description("The priority of the project (0-4, where 0 is no priority and 4 is urgent)"),
		),
		mcp.WithString("startDate",
			mcp.Description("The start date in ISO date format (e.g. '2023-12-31')"),
		),
		mcp.WithString("targetDate",
			mcp.Description("The target date in ISO date format (e.g. '2023-12-31')"),
		),
		mcp.WithString("statusId",
			mcp.Description("The ID of the project status"),
		),
	)
}

// Handle processes the create_project tool call.
func (t *CreateProjectTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	if name == "" {
		return errResult(errors.New("name is required")), nil
	}

	in := linear.ProjectCreateInput{
		Name:        name,
		Description: optString(req, "description"),
		LeadID:      optString(req, "leadId"),
		Priority:    optFloat(req, "priority"),
		StartDate:   optString(req, "startDate"),
		TargetDate:  optString(req, "targetDate"),
		StatusID:    optString(req, "statusId"),
	}
	if members := optStringSlice(req, "memberIds"); members != nil {
		in.MemberIDs = *members
	}

	project, err := t.gateway.CreateProject(ctx, in)
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(project), nil
}

// UpdateProjectTool patches an existing project.
type UpdateProjectTool struct {
	gateway *gateway.Gateway
}

// NewUpdateProjectTool creates an UpdateProjectTool.
func NewUpdateProjectTool(gw *gateway.Gateway) *UpdateProjectTool {
	return &UpdateProjectTool{gateway: gw}
}

// Definition returns the MCP tool definition for registration.
func (t *UpdateProjectTool) Definition() mcp.Tool {
	return mcp.NewTool("update_project",
		mcp.WithDescription("Updates an existing project. Fields not supplied keep their current values. The response includes the project's milestones."),
		mcp.WithString("projectId", mcp.Required(),
			mcp.Description("The ID of the project to update"),
		),
		mcp.WithString("name",
			mcp.Description("The name of the project"),
		),
		mcp.WithString("description",
			mcp.Description("A short description of the project (max 255 characters)"),
		),
		mcp.WithString("leadId",
			mcp.Description("The ID of the member leading the project"),
		),
		mcp.WithArray("memberIds",
			mcp.Description("IDs of the members of the project (replaces the full set)"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithNumber("priority",
			mcp.Description("The priority of the project (0-4, where 0 is no priority and 4 is urgent)"),
		),
		mcp.WithString("startDate",
			mcp.Description("The start date in ISO date format (e.g. '2023-12-31')"),
		),
		mcp.WithString("targetDate",
			mcp.Description("The target date in ISO date format (e.g. '2023-12-31')"),
		),
		mcp.WithString("statusId",
			mcp.Description("The ID of the project status"),
		),
	)
}

// Handle processes the update_project tool call.
func (t *UpdateProjectTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID := req.GetString("projectId", "")
	if projectID == "" {
		return errResult(errors.New("projectId is required")), nil
	}

	project, err := t.gateway.UpdateProject(ctx, projectID, linear.ProjectPatchInput{
		Name:        optString(req, "name"),
		Description: optString(req, "description"),
		LeadID:      optString(req, "leadId"),
		MemberIDs:   optStringSlice(req, "memberIds"),
		Priority:    optFloat(req, "priority"),
		StartDate:   optString(req, "startDate"),
		TargetDate:  optString(req, "targetDate"),
		StatusID:    optString(req, "statusId"),
	})
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(project), nil
}
