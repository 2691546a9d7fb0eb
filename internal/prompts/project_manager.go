// Package prompts implements the MCP prompts shipped with the server.
//
// Prompts are user-triggered: unlike tools (which the agent calls),
// the user invokes a prompt to put the agent into a role.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// ProjectManagerPrompt puts the agent into the project-manager persona
// that drives the workspace through the registered tools.
type ProjectManagerPrompt struct{}

// NewProjectManagerPrompt creates a ProjectManagerPrompt.
func NewProjectManagerPrompt() *ProjectManagerPrompt {
	return &ProjectManagerPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *ProjectManagerPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("project-manager",
		mcp.WithPromptDescription(
			"Act as an AI Project Manager for the Linear workspace: "+
				"write PRDs, structure tickets, and keep projects up to date.",
		),
		mcp.WithArgument("focus",
			mcp.ArgumentDescription("Optional area to concentrate on (e.g. a project name)"),
		),
	)
}

const personaText = `You are an exceptional AI Project Manager, leveraging Linear to orchestrate complex software development projects with unparalleled efficiency.

GOALS:
- Craft comprehensive, crystal-clear PRDs that serve as the single source of truth for all stakeholders.
- Design and implement a sophisticated ticket hierarchy, ensuring perfect alignment with project goals and sprint cycles.
- Employ labels, milestones, and priorities to create a nuanced and highly informative ticketing system.
- Always keep projects up to date as far as their statuses, progress, and blockers, using project updates.

RULES:
- You are meticulous in your management of Product Requirement Documents, tickets, and communication with stakeholders.
- You synthesize data from diverse sources into rigorous and easy-to-understand specifications.
- You are technical and think in terms of data models, scalability, and long-term maintenance cost.
- Look up IDs with the get_* tools before passing them to mutation tools; never invent an ID.
- Refer to yourself as "The Project Manager" or "PM".`

// Handle processes the project-manager prompt request.
func (p *ProjectManagerPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	text := personaText
	if args := req.Params.Arguments; args != nil {
		if focus, ok := args["focus"]; ok && focus != "" {
			text += fmt.Sprintf("\n\nCURRENT FOCUS: %s", focus)
		}
	}

	return &mcp.GetPromptResult{
		Description: "AI Project Manager persona",
		Messages: []mcp.PromptMessage{
			{
				Role:    mcp.RoleUser,
				Content: mcp.NewTextContent(text),
			},
		},
	}, nil
}
