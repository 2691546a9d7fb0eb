package tools

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/zcaceres/ai-project-manager/internal/gateway"
	"github.com/zcaceres/ai-project-manager/internal/linear"
)

// CreateCommentTool creates a comment on an issue, a project update,
// or as a reply to another comment.
type CreateCommentTool struct {
	gateway *gateway.Gateway
}

// NewCreateCommentTool creates a CreateCommentTool.
func NewCreateCommentTool(gw *gateway.Gateway) *CreateCommentTool {
	return &CreateCommentTool{gateway: gw}
}

// Definition returns the MCP tool definition for registration.
func (t *CreateCommentTool) Definition() mcp.Tool {
	return mcp.NewTool("create_comment",
		mcp.WithDescription("Creates a comment. Attach it to an issue, a project update, or reply to a parent comment."),
		mcp.WithString("body", mcp.Required(),
			mcp.Description("The content of the comment as a Markdown string"),
		),
		mcp.WithString("issueId",
			mcp.Description("The ID of the issue to comment on"),
		),
		mcp.WithString("projectUpdateId",
			mcp.Description("The ID of the project update to comment on"),
		),
		mcp.WithString("parentId",
			mcp.Description("The ID of the parent comment to reply to"),
		),
	)
}

// Handle processes the create_comment tool call.
func (t *CreateCommentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	body := req.GetString("body", "")
	if body == "" {
		return errResult(errors.New("body is required")), nil
	}

	comment, err := t.gateway.CreateComment(ctx, linear.CommentCreateInput{
		Body:            body,
		IssueID:         optString(req, "issueId"),
		ProjectUpdateID: optString(req, "projectUpdateId"),
		ParentID:        optString(req, "parentId"),
	})
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(comment), nil
}

// UpdateCommentTool patches an existing comment's body.
type UpdateCommentTool struct {
	gateway *gateway.Gateway
}

// NewUpdateCommentTool creates an UpdateCommentTool.
func NewUpdateCommentTool(gw *gateway.Gateway) *UpdateCommentTool {
	return &UpdateCommentTool{gateway: gw}
}

// Definition returns the MCP tool definition for registration.
func (t *UpdateCommentTool) Definition() mcp.Tool {
	return mcp.NewTool("update_comment",
		mcp.WithDescription("Updates an existing comment's body."),
		mcp.WithString("commentId", mcp.Required(),
			mcp.Description("The ID of the comment to update"),
		),
		mcp.WithString("body", mcp.Required(),
			mcp.Description("The new content of the comment as a Markdown string"),
		),
	)
}

// Handle processes the update_comment tool call.
func (t *UpdateCommentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	commentID := req.GetString("commentId", "")
	body := req.GetString("body", "")
	if commentID == "" || body == "" {
		return errResult(errors.New("commentId and body are required")), nil
	}

	comment, err := t.gateway.UpdateComment(ctx, commentID, linear.CommentPatchInput{Body: body})
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(comment), nil
}
