package tools

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/zcaceres/ai-project-manager/internal/gateway"
	"github.com/zcaceres/ai-project-manager/internal/linear"
	"github.com/zcaceres/ai-project-manager/internal/store"
)

// GetIssuesTool serves the cached issue collection.
type GetIssuesTool struct {
	store *store.Store
}

// NewGetIssuesTool creates a GetIssuesTool reading from the given store.
func NewGetIssuesTool(st *store.Store) *GetIssuesTool {
	return &GetIssuesTool{store: st}
}

// Definition returns the MCP tool definition for registration.
func (t *GetIssuesTool) Definition() mcp.Tool {
	return mcp.NewTool("get_all_issues",
		mcp.WithDescription("Fetches all issues in the team, as of the last sync. Use the refresh tool if you need a newer view."),
	)
}

// Handle processes the get_all_issues tool call.
func (t *GetIssuesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(t.store.Issues.All()), nil
}

// CreateIssueTool creates an issue through the mutation gateway.
type CreateIssueTool struct {
	gateway *gateway.Gateway
}

// NewCreateIssueTool creates a CreateIssueTool.
func NewCreateIssueTool(gw *gateway.Gateway) *CreateIssueTool {
	return &CreateIssueTool{gateway: gw}
}

// Definition returns the MCP tool definition for registration.
func (t *CreateIssueTool) Definition() mcp.Tool {
	return mcp.NewTool("create_issue",
		mcp.WithDescription("Creates an issue in the team with a title, description, and optional scheduling fields."),
		mcp.WithString("title", mcp.Required(),
			mcp.Description("The title of the issue"),
		),
		mcp.WithString("description", mcp.Required(),
			mcp.Description("A detailed description of the issue"),
		),
		mcp.WithString("projectId",
			mcp.Description("The ID of the project the issue belongs to"),
		),
		mcp.WithString("dueDate",
			mcp.Description("The due date in ISO date format (e.g. '2023-12-31')"),
		),
		mcp.WithNumber("priority",
			mcp.Description("The priority of the issue (0-4, where 0 is no priority and 4 is urgent)"),
		),
		mcp.WithString("stateId",
			mcp.Description("The ID of the workflow state (status) of the issue"),
		),
		mcp.WithString("assigneeId",
			mcp.Description("The ID of the member to assign the issue to"),
		),
		mcp.WithNumber("estimate",
			mcp.Description("The estimated points for the issue"),
		),
		mcp.WithString("milestoneId",
			mcp.Description("The ID of the project milestone the issue belongs to"),
		),
		mcp.WithString("parentId",
			mcp.Description("The ID of the parent issue, for sub-issues"),
		),
	)
}

// Handle processes the create_issue tool call.
func (t *CreateIssueTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title := req.GetString("title", "")
	description := req.GetString("description", "")
	if title == "" {
		return errResult(errors.New("title is required")), nil
	}

	issue, err := t.gateway.CreateIssue(ctx, linear.IssueCreateInput{
		Title:       title,
		Description: description,
		ProjectID:   optString(req, "projectId"),
		DueDate:     optString(req, "dueDate"),
		Priority:    optFloat(req, "priority"),
		StateID:     optString(req, "stateId"),
		AssigneeID:  optString(req, "assigneeId"),
		Estimate:    optFloat(req, "estimate"),
		MilestoneID: optString(req, "milestoneId"),
		ParentID:    optString(req, "parentId"),
	})
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(issue), nil
}

// UpdateIssueTool patches an existing issue.
type UpdateIssueTool struct {
	gateway *gateway.Gateway
}

// NewUpdateIssueTool creates an UpdateIssueTool.
func NewUpdateIssueTool(gw *gateway.Gateway) *UpdateIssueTool {
	return &UpdateIssueTool{gateway: gw}
}

// Definition returns the MCP tool definition for registration.
func (t *UpdateIssueTool) Definition() mcp.Tool {
	return mcp.NewTool("update_issue",
		mcp.WithDescription("Updates an existing issue. Fields not supplied keep their current values."),
		mcp.WithString("issueId", mcp.Required(),
			mcp.Description("The ID of the issue to update"),
		),
		mcp.WithString("title",
			mcp.Description("The title of the issue"),
		),
		mcp.WithString("description",
			mcp.Description("A detailed description of the issue"),
		),
		mcp.WithString("projectId",
			mcp.Description("The ID of the project the issue belongs to"),
		),
		mcp.WithString("dueDate",
			mcp.Description("The due date in ISO date format (e.g. '2023-12-31')"),
		),
		mcp.WithNumber("priority",
			mcp.Description("The priority of the issue (0-4, where 0 is no priority and 4 is urgent)"),
		),
		mcp.WithString("stateId",
			mcp.Description("The ID of the workflow state (status) of the issue"),
		),
		mcp.WithString("assigneeId",
			mcp.Description("The ID of the member to assign the issue to"),
		),
		mcp.WithNumber("estimate",
			mcp.Description("The estimated points for the issue"),
		),
		mcp.WithString("milestoneId",
			mcp.Description("The ID of the project milestone the issue belongs to"),
		),
		mcp.WithString("parentId",
			mcp.Description("The ID of the parent issue, for sub-issues"),
		),
	)
}

// Handle processes the update_issue tool call.
func (t *UpdateIssueTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	issueID := req.GetString("issueId", "")
	if issueID == "" {
		return errResult(errors.New("issueId is required")), nil
	}

	issue, err := t.gateway.UpdateIssue(ctx, issueID, linear.IssueUpdateInput{
		Title:       optString(req, "title"),
		Description: optString(req, "description"),
		ProjectID:   optString(req, "projectId"),
		DueDate:     optString(req, "dueDate"),
		Priority:    optFloat(req, "priority"),
		StateID:     optString(req, "stateId"),
		AssigneeID:  optString(req, "assigneeId"),
		Estimate:    optFloat(req, "estimate"),
		MilestoneID: optString(req, "milestoneId"),
		ParentID:    optString(req, "parentId"),
	})
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(issue), nil
}
