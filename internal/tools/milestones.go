package tools

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/zcaceres/ai-project-manager/internal/gateway"
	"github.com/zcaceres/ai-project-manager/internal/linear"
)

// CreateMilestoneTool creates a project milestone.
type CreateMilestoneTool struct {
	gateway *gateway.Gateway
}

// NewCreateMilestoneTool creates a CreateMilestoneTool.
func NewCreateMilestoneTool(gw *gateway.Gateway) *CreateMilestoneTool {
	return &CreateMilestoneTool{gateway: gw}
}

// Definition returns the MCP tool definition for registration.
func (t *CreateMilestoneTool) Definition() mcp.Tool {
	return mcp.NewTool("create_milestone",
		mcp.WithDescription("Creates a milestone inside a project. The parent project cannot be changed later."),
		mcp.WithString("name", mcp.Required(),
			mcp.Description("The name of the milestone"),
		),
		mcp.WithString("projectId", mcp.Required(),
			mcp.Description("The ID of the project the milestone belongs to"),
		),
		mcp.WithString("description",
			mcp.Description("A description of the milestone"),
		),
		mcp.WithString("targetDate",
			mcp.Description("The target date in ISO date format (e.g. '2023-12-31')"),
		),
	)
}

// Handle processes the create_milestone tool call.
func (t *CreateMilestoneTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	projectID := req.GetString("projectId", "")
	if name == "" || projectID == "" {
		return errResult(errors.New("name and projectId are required")), nil
	}

	milestone, err := t.gateway.CreateMilestone(ctx, linear.MilestoneCreateInput{
		Name:        name,
		ProjectID:   projectID,
		Description: optString(req, "description"),
		TargetDate:  optString(req, "targetDate"),
	})
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(milestone), nil
}

// UpdateMilestoneTool patches an existing milestone.
type UpdateMilestoneTool struct {
	gateway *gateway.Gateway
}

// NewUpdateMilestoneTool creates an UpdateMilestoneTool.
func NewUpdateMilestoneTool(gw *gateway.Gateway) *UpdateMilestoneTool {
	return &UpdateMilestoneTool{gateway: gw}
}

// Definition returns the MCP tool definition for registration.
func (t *UpdateMilestoneTool) Definition() mcp.Tool {
	return mcp.NewTool("update_milestone",
		mcp.WithDescription("Updates an existing milestone. Fields not supplied keep their current values."),
		mcp.WithString("milestoneId", mcp.Required(),
			mcp.Description("The ID of the milestone to update"),
		),
		mcp.WithString("name",
			mcp.Description("The name of the milestone"),
		),
		mcp.WithString("description",
			mcp.Description("A description of the milestone"),
		),
		mcp.WithString("targetDate",
			mcp.Description("The target date in ISO date format (e.g. '2023-12-31')"),
		),
	)
}

// Handle processes the update_milestone tool call.
func (t *UpdateMilestoneTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	milestoneID := req.GetString("milestoneId", "")
	if milestoneID == "" {
		return errResult(errors.New("milestoneId is required")), nil
	}

	milestone, err := t.gateway.UpdateMilestone(ctx, milestoneID, linear.MilestonePatchInput{
		Name:        optString(req, "name"),
		Description: optString(req, "description"),
		TargetDate:  optString(req, "targetDate"),
	})
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(milestone), nil
}
