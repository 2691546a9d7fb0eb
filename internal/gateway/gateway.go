// Package gateway wraps every write against the remote API. It
// unwraps the mutation envelope into an entity or an error, scopes
// new issues and projects to the session team, and performs the
// follow-up reads that make a mutation's response immediately useful.
//
// The bulk store is intentionally not touched here: after a mutation
// the returned entity is authoritative for itself, and the cached
// collection for that kind stays stale until an explicit refresh.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/zcaceres/ai-project-manager/internal/linear"
	"github.com/zcaceres/ai-project-manager/internal/store"
)

// Client is the slice of the remote API the gateway consumes.
type Client interface {
	Issue(ctx context.Context, id string) (linear.Issue, error)
	CreateIssue(ctx context.Context, in linear.IssueCreateInput) (linear.IssuePayload, error)
	UpdateIssue(ctx context.Context, id string, in linear.IssueUpdateInput) (linear.IssuePayload, error)
	CreateProject(ctx context.Context, in linear.ProjectCreateInput) (linear.ProjectPayload, error)
	UpdateProject(ctx context.Context, id string, in linear.ProjectPatchInput) (linear.ProjectPayload, error)
	CreateDocument(ctx context.Context, in linear.DocumentCreateInput) (linear.DocumentPayload, error)
	UpdateDocument(ctx context.Context, id string, in linear.DocumentPatchInput) (linear.DocumentPayload, error)
	CreateMilestone(ctx context.Context, in linear.MilestoneCreateInput) (linear.MilestonePayload, error)
	UpdateMilestone(ctx context.Context, id string, in linear.MilestonePatchInput) (linear.MilestonePayload, error)
	CreateProjectUpdate(ctx context.Context, in linear.ProjectUpdateCreateInput) (linear.ProjectUpdatePayload, error)
	UpdateProjectUpdate(ctx context.Context, id string, in linear.ProjectUpdatePatchInput) (linear.ProjectUpdatePayload, error)
	CreateComment(ctx context.Context, in linear.CommentCreateInput) (linear.CommentPayload, error)
	UpdateComment(ctx context.Context, id string, in linear.CommentPatchInput) (linear.CommentPayload, error)
	ProjectMilestones(ctx context.Context, projectID, cursor string) (linear.Page[linear.Milestone], error)
	ProjectUpdates(ctx context.Context, projectID, cursor string) (linear.Page[linear.ProjectUpdate], error)
}

// Gateway routes mutations to the remote API.
type Gateway struct {
	client Client
	store  *store.Store

	// labelMu serializes the read-modify-write on an issue's label
	// set. Without it, concurrent add/remove calls against the same
	// issue would race and the last full-set write would win.
	labelMu sync.Mutex
}

// New creates a Gateway. The store supplies the session team resolved
// during hydration.
func New(client Client, st *store.Store) *Gateway {
	return &Gateway{client: client, store: st}
}

// ProjectWithMilestones is a project mutation result bundled with the
// project's milestone list, fetched right after the mutation so the
// caller doesn't need a second round trip.
type ProjectWithMilestones struct {
	linear.Project
	Milestones []linear.Milestone `json:"milestones"`
}

func (g *Gateway) team() (linear.Team, error) {
	team, ok := g.store.Team()
	if !ok {
		return linear.Team{}, errors.New("no team found for the current user")
	}
	return team, nil
}

// CreateIssue creates an issue scoped to the session team. The team
// is not configurable per call.
func (g *Gateway) CreateIssue(ctx context.Context, in linear.IssueCreateInput) (linear.Issue, error) {
	team, err := g.team()
	if err != nil {
		return linear.Issue{}, err
	}
	in.TeamID = team.ID

	payload, err := g.client.CreateIssue(ctx, in)
	if err != nil {
		return linear.Issue{}, err
	}
	if !payload.Success || payload.Issue == nil {
		return linear.Issue{}, errors.New("Failed to create issue")
	}
	return *payload.Issue, nil
}

// UpdateIssue patches an issue. Unset optional fields keep their
// remote values.
func (g *Gateway) UpdateIssue(ctx context.Context, id string, in linear.IssueUpdateInput) (linear.Issue, error) {
	payload, err := g.client.UpdateIssue(ctx, id, in)
	if err != nil {
		return linear.Issue{}, err
	}
	if !payload.Success || payload.Issue == nil {
		return linear.Issue{}, errors.New("Failed to update issue")
	}
	return *payload.Issue, nil
}

// CreateProject creates a project under the session team and fetches
// its milestones before returning.
func (g *Gateway) CreateProject(ctx context.Context, in linear.ProjectCreateInput) (ProjectWithMilestones, error) {
	team, err := g.team()
	if err != nil {
		return ProjectWithMilestones{}, err
	}
	in.TeamIDs = []string{team.ID}

	payload, err := g.client.CreateProject(ctx, in)
	if err != nil {
		return ProjectWithMilestones{}, err
	}
	if !payload.Success || payload.Project == nil {
		return ProjectWithMilestones{}, errors.New("Failed to create project")
	}
	return g.withMilestones(ctx, *payload.Project)
}

// UpdateProject patches a project and fetches its milestones before
// returning.
func (g *Gateway) UpdateProject(ctx context.Context, id string, in linear.ProjectPatchInput) (ProjectWithMilestones, error) {
	if _, err := g.team(); err != nil {
		return ProjectWithMilestones{}, err
	}

	payload, err := g.client.UpdateProject(ctx, id, in)
	if err != nil {
		return ProjectWithMilestones{}, err
	}
	if !payload.Success || payload.Project == nil {
		return ProjectWithMilestones{}, errors.New("Failed to update project")
	}
	return g.withMilestones(ctx, *payload.Project)
}

func (g *Gateway) withMilestones(ctx context.Context, p linear.Project) (ProjectWithMilestones, error) {
	milestones, err := linear.CollectAll(ctx, func(ctx context.Context, cursor string) (linear.Page[linear.Milestone], error) {
		return g.client.ProjectMilestones(ctx, p.ID, cursor)
	})
	if err != nil {
		return ProjectWithMilestones{}, fmt.Errorf("fetching milestones for project %s: %w", p.ID, err)
	}
	return ProjectWithMilestones{Project: p, Milestones: milestones}, nil
}

// CreateDocument creates a document.
func (g *Gateway) CreateDocument(ctx context.Context, in linear.DocumentCreateInput) (linear.Document, error) {
	payload, err := g.client.CreateDocument(ctx, in)
	if err != nil {
		return linear.Document{}, err
	}
	if !payload.Success || payload.Document == nil {
		return linear.Document{}, errors.New("Failed to create document")
	}
	return *payload.Document, nil
}

// UpdateDocument patches a document.
func (g *Gateway) UpdateDocument(ctx context.Context, id string, in linear.DocumentPatchInput) (linear.Document, error) {
	payload, err := g.client.UpdateDocument(ctx, id, in)
	if err != nil {
		return linear.Document{}, err
	}
	if !payload.Success || payload.Document == nil {
		return linear.Document{}, errors.New("Failed to update document")
	}
	return *payload.Document, nil
}

// CreateMilestone creates a milestone. The parent project is required
// at creation and immutable afterwards.
func (g *Gateway) CreateMilestone(ctx context.Context, in linear.MilestoneCreateInput) (linear.Milestone, error) {
	payload, err := g.client.CreateMilestone(ctx, in)
	if err != nil {
		return linear.Milestone{}, err
	}
	if !payload.Success || payload.Milestone == nil {
		return linear.Milestone{}, errors.New("Failed to create milestone")
	}
	return *payload.Milestone, nil
}

// UpdateMilestone patches a milestone.
func (g *Gateway) UpdateMilestone(ctx context.Context, id string, in linear.MilestonePatchInput) (linear.Milestone, error) {
	payload, err := g.client.UpdateMilestone(ctx, id, in)
	if err != nil {
		return linear.Milestone{}, err
	}
	if !payload.Success || payload.Milestone == nil {
		return linear.Milestone{}, errors.New("Failed to update milestone")
	}
	return *payload.Milestone, nil
}

// CreateProjectUpdate posts a status update to a project.
func (g *Gateway) CreateProjectUpdate(ctx context.Context, in linear.ProjectUpdateCreateInput) (linear.ProjectUpdate, error) {
	payload, err := g.client.CreateProjectUpdate(ctx, in)
	if err != nil {
		return linear.ProjectUpdate{}, err
	}
	if !payload.Success || payload.ProjectUpdate == nil {
		return linear.ProjectUpdate{}, errors.New("Failed to create project update")
	}
	return *payload.ProjectUpdate, nil
}

// UpdateProjectUpdate patches a project status update.
func (g *Gateway) UpdateProjectUpdate(ctx context.Context, id string, in linear.ProjectUpdatePatchInput) (linear.ProjectUpdate, error) {
	payload, err := g.client.UpdateProjectUpdate(ctx, id, in)
	if err != nil {
		return linear.ProjectUpdate{}, err
	}
	if !payload.Success || payload.ProjectUpdate == nil {
		return linear.ProjectUpdate{}, errors.New("Failed to update project update")
	}
	return *payload.ProjectUpdate, nil
}

// CreateComment creates a comment on an issue, a project update, or
// under a parent comment.
func (g *Gateway) CreateComment(ctx context.Context, in linear.CommentCreateInput) (linear.Comment, error) {
	payload, err := g.client.CreateComment(ctx, in)
	if err != nil {
		return linear.Comment{}, err
	}
	if !payload.Success || payload.Comment == nil {
		return linear.Comment{}, errors.New("Failed to create comment")
	}
	return *payload.Comment, nil
}

// UpdateComment patches a comment's body.
func (g *Gateway) UpdateComment(ctx context.Context, id string, in linear.CommentPatchInput) (linear.Comment, error) {
	payload, err := g.client.UpdateComment(ctx, id, in)
	if err != nil {
		return linear.Comment{}, err
	}
	if !payload.Success || payload.Comment == nil {
		return linear.Comment{}, errors.New("Failed to update comment")
	}
	return *payload.Comment, nil
}

// ProjectUpdates fetches all status updates for one project. Updates
// are not cached in the store, so this is always a live read.
func (g *Gateway) ProjectUpdates(ctx context.Context, projectID string) ([]linear.ProjectUpdate, error) {
	return linear.CollectAll(ctx, func(ctx context.Context, cursor string) (linear.Page[linear.ProjectUpdate], error) {
		return g.client.ProjectUpdates(ctx, projectID, cursor)
	})
}

// AddLabelToIssue appends a label to an issue's label set: read the
// current set, append, write the full set back.
func (g *Gateway) AddLabelToIssue(ctx context.Context, issueID, labelID string) (linear.Issue, error) {
	g.labelMu.Lock()
	defer g.labelMu.Unlock()

	issue, err := g.client.Issue(ctx, issueID)
	if err != nil {
		return linear.Issue{}, err
	}
	labelIDs := append(append([]string{}, issue.LabelIDs...), labelID)

	payload, err := g.client.UpdateIssue(ctx, issueID, linear.IssueUpdateInput{LabelIDs: &labelIDs})
	if err != nil {
		return linear.Issue{}, err
	}
	if !payload.Success || payload.Issue == nil {
		return linear.Issue{}, errors.New("Failed to add label to issue")
	}
	return *payload.Issue, nil
}

// RemoveLabelFromIssue filters a label out of an issue's label set
// and writes the full set back. Removing an absent label is a no-op
// write, not an error.
func (g *Gateway) RemoveLabelFromIssue(ctx context.Context, issueID, labelID string) (linear.Issue, error) {
	g.labelMu.Lock()
	defer g.labelMu.Unlock()

	issue, err := g.client.Issue(ctx, issueID)
	if err != nil {
		return linear.Issue{}, err
	}
	labelIDs := make([]string, 0, len(issue.LabelIDs))
	for _, id := range issue.LabelIDs {
		if id != labelID {
			labelIDs = append(labelIDs, id)
		}
	}

	payload, err := g.client.UpdateIssue(ctx, issueID, linear.IssueUpdateInput{LabelIDs: &labelIDs})
	if err != nil {
		return linear.Issue{}, err
	}
	if !payload.Success || payload.Issue == nil {
		return linear.Issue{}, errors.New("Failed to remove label from issue")
	}
	return *payload.Issue, nil
}
