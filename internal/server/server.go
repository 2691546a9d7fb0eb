// Package server wires all components and creates the MCP server.
//
// This is the composition root: it builds the remote client from
// config, runs hydration to completion, and injects the store,
// hydrator and gateway into the tools. No business logic lives here.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/zcaceres/ai-project-manager/internal/config"
	"github.com/zcaceres/ai-project-manager/internal/gateway"
	"github.com/zcaceres/ai-project-manager/internal/hydrate"
	"github.com/zcaceres/ai-project-manager/internal/linear"
	"github.com/zcaceres/ai-project-manager/internal/prompts"
	"github.com/zcaceres/ai-project-manager/internal/store"
	"github.com/zcaceres/ai-project-manager/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New builds the fully hydrated MCP server. It blocks until every
// resource kind has hydrated; any hydration failure aborts startup,
// so a served tool never observes a half-ready workspace.
func New(ctx context.Context, cfg config.Config) (*server.MCPServer, error) {
	var opts []linear.Option
	if cfg.Endpoint != "" {
		opts = append(opts, linear.WithEndpoint(cfg.Endpoint))
	}
	client := linear.NewClient(cfg.APIKey, opts...)

	st := store.New()
	hydrator := hydrate.New(client, st)

	start := time.Now()
	if err := hydrator.HydrateAll(ctx); err != nil {
		return nil, fmt.Errorf("hydrating workspace: %w", err)
	}
	team, _ := st.Team()
	log.Printf("hydrated workspace for team %q in %s", team.Name, time.Since(start).Round(time.Millisecond))

	gw := gateway.New(client, st)

	s := server.NewMCPServer(
		"linear-pm",
		Version,
		server.WithToolCapabilities(true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Read tools (cached snapshot) ---

	getIssues := tools.NewGetIssuesTool(st)
	s.AddTool(getIssues.Definition(), getIssues.Handle)

	getProjects := tools.NewGetProjectsTool(st)
	s.AddTool(getProjects.Definition(), getProjects.Handle)

	getDocuments := tools.NewGetDocumentsTool(st)
	s.AddTool(getDocuments.Definition(), getDocuments.Handle)

	getWorkflowStates := tools.NewGetWorkflowStatesTool(st)
	s.AddTool(getWorkflowStates.Definition(), getWorkflowStates.Handle)

	getProjectStatuses := tools.NewGetProjectStatusesTool(st)
	s.AddTool(getProjectStatuses.Definition(), getProjectStatuses.Handle)

	getMembers := tools.NewGetMembersTool(st)
	s.AddTool(getMembers.Definition(), getMembers.Handle)

	getLabels := tools.NewGetLabelsTool(st)
	s.AddTool(getLabels.Definition(), getLabels.Handle)

	getProjectUpdates := tools.NewGetProjectUpdatesTool(gw)
	s.AddTool(getProjectUpdates.Definition(), getProjectUpdates.Handle)

	// --- Mutation tools ---

	createIssue := tools.NewCreateIssueTool(gw)
	s.AddTool(createIssue.Definition(), createIssue.Handle)

	updateIssue := tools.NewUpdateIssueTool(gw)
	s.AddTool(updateIssue.Definition(), updateIssue.Handle)

	createProject := tools.NewCreateProjectTool(gw)
	s.AddTool(createProject.Definition(), createProject.Handle)

	updateProject := tools.NewUpdateProjectTool(gw)
	s.AddTool(updateProject.Definition(), updateProject.Handle)

	createDocument := tools.NewCreateDocumentTool(gw)
	s.AddTool(createDocument.Definition(), createDocument.Handle)

	updateDocument := tools.NewUpdateDocumentTool(gw)
	s.AddTool(updateDocument.Definition(), updateDocument.Handle)

	createMilestone := tools.NewCreateMilestoneTool(gw)
	s.AddTool(createMilestone.Definition(), createMilestone.Handle)

	updateMilestone := tools.NewUpdateMilestoneTool(gw)
	s.AddTool(updateMilestone.Definition(), updateMilestone.Handle)

	createProjectUpdate := tools.NewCreateProjectUpdateTool(gw)
	s.AddTool(createProjectUpdate.Definition(), createProjectUpdate.Handle)

	updateProjectUpdate := tools.NewUpdateProjectUpdateTool(gw)
	s.AddTool(updateProjectUpdate.Definition(), updateProjectUpdate.Handle)

	createComment := tools.NewCreateCommentTool(gw)
	s.AddTool(createComment.Definition(), createComment.Handle)

	updateComment := tools.NewUpdateCommentTool(gw)
	s.AddTool(updateComment.Definition(), updateComment.Handle)

	addLabel := tools.NewAddLabelTool(gw)
	s.AddTool(addLabel.Definition(), addLabel.Handle)

	removeLabel := tools.NewRemoveLabelTool(gw)
	s.AddTool(removeLabel.Definition(), removeLabel.Handle)

	// --- Maintenance tools ---

	refresh := tools.NewRefreshTool(hydrator)
	s.AddTool(refresh.Definition(), refresh.Handle)

	// --- Prompts ---

	pm := prompts.NewProjectManagerPrompt()
	s.AddPrompt(pm.Definition(), pm.Handle)

	return s, nil
}

func serverInstructions() string {
	return `This server manages a Linear workspace for one team.

The get_* tools read a cached snapshot taken at startup. Mutations go
straight to Linear and return the authoritative entity, but the cached
collections stay as they were until you call the refresh tool, so do not
expect get_all_issues to show an issue you just created.

Typical flow: read IDs with get_* tools, mutate with create_*/update_*
tools, then refresh the affected collection if you need to re-read it.`
}
