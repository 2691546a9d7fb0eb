package tools

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/zcaceres/ai-project-manager/internal/gateway"
	"github.com/zcaceres/ai-project-manager/internal/store"
)

// GetLabelsTool serves the cached label collection.
type GetLabelsTool struct {
	store *store.Store
}

// NewGetLabelsTool creates a GetLabelsTool.
func NewGetLabelsTool(st *store.Store) *GetLabelsTool {
	return &GetLabelsTool{store: st}
}

// Definition returns the MCP tool definition for registration.
func (t *GetLabelsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_labels",
		mcp.WithDescription("Fetches all issue labels, as of the last sync."),
	)
}

// Handle processes the get_labels tool call.
func (t *GetLabelsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(t.store.Labels.All()), nil
}

// AddLabelTool appends a label to an issue's label set.
type AddLabelTool struct {
	gateway *gateway.Gateway
}

// NewAddLabelTool creates an AddLabelTool.
func NewAddLabelTool(gw *gateway.Gateway) *AddLabelTool {
	return &AddLabelTool{gateway: gw}
}

// Definition returns the MCP tool definition for registration.
func (t *AddLabelTool) Definition() mcp.Tool {
	return mcp.NewTool("add_label_to_issue",
		mcp.WithDescription("Adds a label to an issue, keeping the issue's existing labels."),
		mcp.WithString("issueId", mcp.Required(),
			mcp.Description("The ID of the issue to label"),
		),
		mcp.WithString("labelId", mcp.Required(),
			mcp.Description("The ID of the label to add"),
		),
	)
}

// Handle processes the add_label_to_issue tool call.
func (t *AddLabelTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	issueID := req.GetString("issueId", "")
	labelID := req.GetString("labelId", "")
	if issueID == "" || labelID == "" {
		return errResult(errors.New("issueId and labelId are required")), nil
	}

	issue, err := t.gateway.AddLabelToIssue(ctx, issueID, labelID)
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(issue), nil
}

// RemoveLabelTool removes a label from an issue's label set.
type RemoveLabelTool struct {
	gateway *gateway.Gateway
}

// NewRemoveLabelTool creates a RemoveLabelTool.
func NewRemoveLabelTool(gw *gateway.Gateway) *RemoveLabelTool {
	return &RemoveLabelTool{gateway: gw}
}

// Definition returns the MCP tool definition for registration.
func (t *RemoveLabelTool) Definition() mcp.Tool {
	return mcp.NewTool("remove_label_from_issue",
		mcp.WithDescription("Removes a label from an issue, keeping the issue's other labels."),
		mcp.WithString("issueId", mcp.Required(),
			mcp.Description("The ID of the issue"),
		),
		mcp.WithString("labelId", mcp.Required(),
			mcp.Description("The ID of the label to remove"),
		),
	)
}

// Handle processes the remove_label_from_issue tool call.
func (t *RemoveLabelTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	issueID := req.GetString("issueId", "")
	labelID := req.GetString("labelId", "")
	if issueID == "" || labelID == "" {
		return errResult(errors.New("issueId and labelId are required")), nil
	}

	issue, err := t.gateway.RemoveLabelFromIssue(ctx, issueID, labelID)
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(issue), nil
}
