package tools

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/zcaceres/ai-project-manager/internal/gateway"
	"github.com/zcaceres/ai-project-manager/internal/linear"
	"github.com/zcaceres/ai-project-manager/internal/store"
)

// GetDocumentsTool serves the cached document collection.
type GetDocumentsTool struct {
	store *store.Store
}

// NewGetDocumentsTool creates a GetDocumentsTool.
func NewGetDocumentsTool(st *store.Store) *GetDocumentsTool {
	return &GetDocumentsTool{store: st}
}

// Definition returns the MCP tool definition for registration.
func (t *GetDocumentsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_documents",
		mcp.WithDescription("Fetches all documents/PRDs, as of the last sync."),
	)
}

// Handle processes the get_documents tool call.
func (t *GetDocumentsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(t.store.Documents.All()), nil
}

// CreateDocumentTool creates a document through the mutation gateway.
type CreateDocumentTool struct {
	gateway *gateway.Gateway
}

// NewCreateDocumentTool creates a CreateDocumentTool.
func NewCreateDocumentTool(gw *gateway.Gateway) *CreateDocumentTool {
	return &CreateDocumentTool{gateway: gw}
}

// Definition returns the MCP tool definition for registration.
func (t *CreateDocumentTool) Definition() mcp.Tool {
	return mcp.NewTool("create_document",
		mcp.WithDescription("Creates a new document/PRD."),
		mcp.WithString("title", mcp.Required(),
			mcp.Description("The title of the document/PRD"),
		),
		mcp.WithString("content", mcp.Required(),
			mcp.Description("The content of the document/PRD as a Markdown string"),
		),
		mcp.WithString("projectId", mcp.Required(),
			mcp.Description("The ID of the project the document/PRD belongs to"),
		),
	)
}

// Handle processes the create_document tool call.
func (t *CreateDocumentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title := req.GetString("title", "")
	content := req.GetString("content", "")
	if title == "" {
		return errResult(errors.New("title is required")), nil
	}

	doc, err := t.gateway.CreateDocument(ctx, linear.DocumentCreateInput{
		Title:     title,
		Content:   content,
		ProjectID: optString(req, "projectId"),
	})
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(doc), nil
}

// UpdateDocumentTool patches an existing document.
type UpdateDocumentTool struct {
	gateway *gateway.Gateway
}

// NewUpdateDocumentTool creates an UpdateDocumentTool.
func NewUpdateDocumentTool(gw *gateway.Gateway) *UpdateDocumentTool {
	return &UpdateDocumentTool{gateway: gw}
}

// Definition returns the MCP tool definition for registration.
func (t *UpdateDocumentTool) Definition() mcp.Tool {
	return mcp.NewTool("update_document",
		mcp.WithDescription("Updates an existing document/PRD. Fields not supplied keep their current values."),
		mcp.WithString("documentId", mcp.Required(),
			mcp.Description("The ID of the document/PRD to update"),
		),
		mcp.WithString("title",
			mcp.Description("The title of the document"),
		),
		mcp.WithString("content",
			mcp.Description("The content of the document as a Markdown string"),
		),
		mcp.WithString("projectId",
			mcp.Description("The ID of the project the document belongs to"),
		),
	)
}

// Handle processes the update_document tool call.
func (t *UpdateDocumentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	documentID := req.GetString("documentId", "")
	if documentID == "" {
		return errResult(errors.New("documentId is required")), nil
	}

	doc, err := t.gateway.UpdateDocument(ctx, documentID, linear.DocumentPatchInput{
		Title:     optString(req, "title"),
		Content:   optString(req, "content"),
		ProjectID: optString(req, "projectId"),
	})
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(doc), nil
}
