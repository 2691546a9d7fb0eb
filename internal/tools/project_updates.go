package tools

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/zcaceres/ai-project-manager/internal/gateway"
	"github.com/zcaceres/ai-project-manager/internal/linear"
)

// GetProjectUpdatesTool fetches a project's status updates live; they
// are not part of the cached snapshot.
type GetProjectUpdatesTool struct {
	gateway *gateway.Gateway
}

// NewGetProjectUpdatesTool creates a GetProjectUpdatesTool.
func NewGetProjectUpdatesTool(gw *gateway.Gateway) *GetProjectUpdatesTool {
	return &GetProjectUpdatesTool{gateway: gw}
}

// Definition returns the MCP tool definition for registration.
func (t *GetProjectUpdatesTool) Definition() mcp.Tool {
	return mcp.NewTool("get_project_updates",
		mcp.WithDescription("Fetches all status updates posted to a project."),
		mcp.WithString("projectId", mcp.Required(),
			mcp.Description("The ID of the project"),
		),
	)
}

// Handle processes the get_project_updates tool call.
func (t *GetProjectUpdatesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID := req.GetString("projectId", "")
	if projectID == "" {
		return errResult(errors.New("projectId is required")), nil
	}

	updates, err := t.gateway.ProjectUpdates(ctx, projectID)
	if err != nil {
		return errResult(err), nil
	}
	if updates == nil {
		updates = []linear.ProjectUpdate{}
	}
	return jsonResult(updates), nil
}

// CreateProjectUpdateTool posts a status update to a project.
type CreateProjectUpdateTool struct {
	gateway *gateway.Gateway
}

// NewCreateProjectUpdateTool creates a CreateProjectUpdateTool.
func NewCreateProjectUpdateTool(gw *gateway.Gateway) *CreateProjectUpdateTool {
	return &CreateProjectUpdateTool{gateway: gw}
}

// Definition returns the MCP tool definition for registration.
func (t *CreateProjectUpdateTool) Definition() mcp.Tool {
	return mcp.NewTool("create_project_update",
		mcp.WithDescription("Posts a status update to a project, optionally with a health indicator."),
		mcp.WithString("projectId", mcp.Required(),
			mcp.Description("The ID of the project to post the update to"),
		),
		mcp.WithString("body", mcp.Required(),
			mcp.Description("The content of the update as a Markdown string"),
		),
		mcp.WithString("health",
			mcp.Description("The health of the project"),
			mcp.Enum("onTrack", "atRisk", "offTrack"),
		),
	)
}

// Handle processes the create_project_update tool call.
func (t *CreateProjectUpdateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID := req.GetString("projectId", "")
	body := req.GetString("body", "")
	if projectID == "" || body == "" {
		return errResult(errors.New("projectId and body are required")), nil
	}

	in := linear.ProjectUpdateCreateInput{ProjectID: projectID, Body: body}
	if h := optString(req, "health"); h != nil {
		health := linear.ProjectHealth(*h)
		in.Health = &health
	}

	update, err := t.gateway.CreateProjectUpdate(ctx, in)
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(update), nil
}

// UpdateProjectUpdateTool patches an existing project status update.
type UpdateProjectUpdateTool struct {
	gateway *gateway.Gateway
}

// NewUpdateProjectUpdateTool creates an UpdateProjectUpdateTool.
func NewUpdateProjectUpdateTool(gw *gateway.Gateway) *UpdateProjectUpdateTool {
	return &UpdateProjectUpdateTool{gateway: gw}
}

// Definition returns the MCP tool definition for registration.
func (t *UpdateProjectUpdateTool) Definition() mcp.Tool {
	return mcp.NewTool("update_project_update",
		mcp.WithDescription("Updates an existing project status update. Fields not supplied keep their current values."),
		mcp.WithString("projectUpdateId", mcp.Required(),
			mcp.Description("The ID of the project update to change"),
		),
		mcp.WithString("body",
			mcp.Description("The content of the update as a Markdown string"),
		),
		mcp.WithString("health",
			mcp.Description("The health of the project"),
			mcp.Enum("onTrack", "atRisk", "offTrack"),
		),
	)
}

// Handle processes the update_project_update tool call.
func (t *UpdateProjectUpdateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	updateID := req.GetString("projectUpdateId", "")
	if updateID == "" {
		return errResult(errors.New("projectUpdateId is required")), nil
	}

	in := linear.ProjectUpdatePatchInput{Body: optString(req, "body")}
	if h := optString(req, "health"); h != nil {
		health := linear.ProjectHealth(*h)
		in.Health = &health
	}

	update, err := t.gateway.UpdateProjectUpdate(ctx, updateID, in)
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(update), nil
}
