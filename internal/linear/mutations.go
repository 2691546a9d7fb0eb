package linear

import "context"

// Mutation envelopes. Every Linear mutation wraps its entity in a
// payload carrying a success flag and a sync marker; unwrapping the
// flag into an error is the gateway's job, not this package's.

// IssuePayload is the envelope for issue mutations.
type IssuePayload struct {
	Success    bool
	LastSyncID float64
	Issue      *Issue
}

// ProjectPayload is the envelope for project mutations.
type ProjectPayload struct {
	Success    bool
	LastSyncID float64
	Project    *Project
}

// DocumentPayload is the envelope for document mutations.
type DocumentPayload struct {
	Success    bool
	LastSyncID float64
	Document   *Document
}

// MilestonePayload is the envelope for milestone mutations.
type MilestonePayload struct {
	Success    bool
	LastSyncID float64
	Milestone  *Milestone
}

// ProjectUpdatePayload is the envelope for project status update mutations.
type ProjectUpdatePayload struct {
	Success       bool
	LastSyncID    float64
	ProjectUpdate *ProjectUpdate
}

// CommentPayload is the envelope for comment mutations.
type CommentPayload struct {
	Success    bool
	LastSyncID float64
	Comment    *Comment
}

type issuePayloadWire struct {
	Success    bool       `json:"success"`
	LastSyncID float64    `json:"lastSyncId"`
	Issue      *issueWire `json:"issue"`
}

func (w issuePayloadWire) payload() IssuePayload {
	p := IssuePayload{Success: w.Success, LastSyncID: w.LastSyncID}
	if w.Issue != nil {
		e := w.Issue.entity()
		p.Issue = &e
	}
	return p
}

type projectPayloadWire struct {
	Success    bool         `json:"success"`
	LastSyncID float64      `json:"lastSyncId"`
	Project    *projectWire `json:"project"`
}

func (w projectPayloadWire) payload() ProjectPayload {
	p := ProjectPayload{Success: w.Success, LastSyncID: w.LastSyncID}
	if w.Project != nil {
		e := w.Project.entity()
		p.Project = &e
	}
	return p
}

type documentPayloadWire struct {
	Success    bool          `json:"success"`
	LastSyncID float64       `json:"lastSyncId"`
	Document   *documentWire `json:"document"`
}

func (w documentPayloadWire) payload() DocumentPayload {
	p := DocumentPayload{Success: w.Success, LastSyncID: w.LastSyncID}
	if w.Document != nil {
		e := w.Document.entity()
		p.Document = &e
	}
	return p
}

type milestonePayloadWire struct {
	Success          bool           `json:"success"`
	LastSyncID       float64        `json:"lastSyncId"`
	ProjectMilestone *milestoneWire `json:"projectMilestone"`
}

func (w milestonePayloadWire) payload() MilestonePayload {
	p := MilestonePayload{Success: w.Success, LastSyncID: w.LastSyncID}
	if w.ProjectMilestone != nil {
		e := w.ProjectMilestone.entity()
		p.Milestone = &e
	}
	return p
}

type projectUpdatePayloadWire struct {
	Success       bool               `json:"success"`
	LastSyncID    float64            `json:"lastSyncId"`
	ProjectUpdate *projectUpdateWire `json:"projectUpdate"`
}

func (w projectUpdatePayloadWire) payload() ProjectUpdatePayload {
	p := ProjectUpdatePayload{Success: w.Success, LastSyncID: w.LastSyncID}
	if w.ProjectUpdate != nil {
		e := w.ProjectUpdate.entity()
		p.ProjectUpdate = &e
	}
	return p
}

type commentPayloadWire struct {
	Success    bool         `json:"success"`
	LastSyncID float64      `json:"lastSyncId"`
	Comment    *commentWire `json:"comment"`
}

func (w commentPayloadWire) payload() CommentPayload {
	p := CommentPayload{Success: w.Success, LastSyncID: w.LastSyncID}
	if w.Comment != nil {
		e := w.Comment.entity()
		p.Comment = &e
	}
	return p
}

const issueCreateMutation = `mutation IssueCreate($input: IssueCreateInput!) {
  issueCreate(input: $input) { success lastSyncId issue { ` + issueFields + ` } }
}`

// CreateIssue creates an issue.
func (c *Client) CreateIssue(ctx context.Context, in IssueCreateInput) (IssuePayload, error) {
	var data struct {
		IssueCreate issuePayloadWire `json:"issueCreate"`
	}
	err := c.do(ctx, issueCreateMutation, map[string]any{"input": in}, &data)
	return data.IssueCreate.payload(), err
}

const issueUpdateMutation = `mutation IssueUpdate($id: String!, $input: IssueUpdateInput!) {
  issueUpdate(id: $id, input: $input) { success lastSyncId issue { ` + issueFields + ` } }
}`

// UpdateIssue patches the issue with the given id.
func (c *Client) UpdateIssue(ctx context.Context, id string, in IssueUpdateInput) (IssuePayload, error) {
	var data struct {
		IssueUpdate issuePayloadWire `json:"issueUpdate"`
	}
	err := c.do(ctx, issueUpdateMutation, map[string]any{"id": id, "input": in}, &data)
	return data.IssueUpdate.payload(), err
}

const projectCreateMutation = `mutation ProjectCreate($input: ProjectCreateInput!) {
  projectCreate(input: $input) { success lastSyncId project { ` + projectFields + ` } }
}`

// CreateProject creates a project.
func (c *Client) CreateProject(ctx context.Context, in ProjectCreateInput) (ProjectPayload, error) {
	var data struct {
		ProjectCreate projectPayloadWire `json:"projectCreate"`
	}
	err := c.do(ctx, projectCreateMutation, map[string]any{"input": in}, &data)
	return data.ProjectCreate.payload(), err
}

const projectUpdateMutation = `mutation ProjectUpdate($id: String!, $input: ProjectUpdateInput!) {
  projectUpdate(id: $id, input: $input) { success lastSyncId project { ` + projectFields + ` } }
}`

// UpdateProject patches the project with the given id.
func (c *Client) UpdateProject(ctx context.Context, id string, in ProjectPatchInput) (ProjectPayload, error) {
	var data struct {
		ProjectUpdate projectPayloadWire `json:"projectUpdate"`
	}
	err := c.do(ctx, projectUpdateMutation, map[string]any{"id": id, "input": in}, &data)
	return data.ProjectUpdate.payload(), err
}

const documentCreateMutation = `mutation DocumentCreate($input: DocumentCreateInput!) {
  documentCreate(input: $input) { success lastSyncId document { ` + documentFields + ` } }
}`

// CreateDocument creates a document.
func (c *Client) CreateDocument(ctx context.Context, in DocumentCreateInput) (DocumentPayload, error) {
	var data struct {
		DocumentCreate documentPayloadWire `json:"documentCreate"`
	}
	err := c.do(ctx, documentCreateMutation, map[string]any{"input": in}, &data)
	return data.DocumentCreate.payload(), err
}

const documentUpdateMutation = `mutation DocumentUpdate($id: String!, $input: DocumentUpdateInput!) {
  documentUpdate(id: $id, input: $input) { success lastSyncId document { ` + documentFields + ` } }
}`

// UpdateDocument patches the document with the given id.
func (c *Client) UpdateDocument(ctx context.Context, id string, in DocumentPatchInput) (DocumentPayload, error) {
	var data struct {
		DocumentUpdate documentPayloadWire `json:"documentUpdate"`
	}
	err := c.do(ctx, documentUpdateMutation, map[string]any{"id": id, "input": in}, &data)
	return data.DocumentUpdate.payload(), err
}

const milestoneCreateMutation = `mutation ProjectMilestoneCreate($input: ProjectMilestoneCreateInput!) {
  projectMilestoneCreate(input: $input) { success lastSyncId projectMilestone { ` + milestoneFields + ` } }
}`

// CreateMilestone creates a milestone inside a project.
func (c *Client) CreateMilestone(ctx context.Context, in MilestoneCreateInput) (MilestonePayload, error) {
	var data struct {
		ProjectMilestoneCreate milestonePayloadWire `json:"projectMilestoneCreate"`
	}
	err := c.do(ctx, milestoneCreateMutation, map[string]any{"input": in}, &data)
	return data.ProjectMilestoneCreate.payload(), err
}

const milestoneUpdateMutation = `mutation ProjectMilestoneUpdate($id: String!, $input: ProjectMilestoneUpdateInput!) {
  projectMilestoneUpdate(id: $id, input: $input) { success lastSyncId projectMilestone { ` + milestoneFields + ` } }
}`

// UpdateMilestone patches the milestone with the given id.
func (c *Client) UpdateMilestone(ctx context.Context, id string, in MilestonePatchInput) (MilestonePayload, error) {
	var data struct {
		ProjectMilestoneUpdate milestonePayloadWire `json:"projectMilestoneUpdate"`
	}
	err := c.do(ctx, milestoneUpdateMutation, map[string]any{"id": id, "input": in}, &data)
	return data.ProjectMilestoneUpdate.payload(), err
}

const projectUpdateCreateMutation = `mutation ProjectUpdateCreate($input: ProjectUpdateCreateInput!) {
  projectUpdateCreate(input: $input) { success lastSyncId projectUpdate { ` + projectUpdateFields + ` } }
}`

// CreateProjectUpdate posts a status update to a project.
func (c *Client) CreateProjectUpdate(ctx context.Context, in ProjectUpdateCreateInput) (ProjectUpdatePayload, error) {
	var data struct {
		ProjectUpdateCreate projectUpdatePayloadWire `json:"projectUpdateCreate"`
	}
	err := c.do(ctx, projectUpdateCreateMutation, map[string]any{"input": in}, &data)
	return data.ProjectUpdateCreate.payload(), err
}

const projectUpdateUpdateMutation = `mutation ProjectUpdateUpdate($id: String!, $input: ProjectUpdateUpdateInput!) {
  projectUpdateUpdate(id: $id, input: $input) { success lastSyncId projectUpdate { ` + projectUpdateFields + ` } }
}`

// UpdateProjectUpdate patches a project status update.
func (c *Client) UpdateProjectUpdate(ctx context.Context, id string, in ProjectUpdatePatchInput) (ProjectUpdatePayload, error) {
	var data struct {
		ProjectUpdateUpdate projectUpdatePayloadWire `json:"projectUpdateUpdate"`
	}
	err := c.do(ctx, projectUpdateUpdateMutation, map[string]any{"id": id, "input": in}, &data)
	return data.ProjectUpdateUpdate.payload(), err
}

const commentCreateMutation = `mutation CommentCreate($input: CommentCreateInput!) {
  commentCreate(input: $input) { success lastSyncId comment { ` + commentFields + ` } }
}`

// CreateComment creates a comment.
func (c *Client) CreateComment(ctx context.Context, in CommentCreateInput) (CommentPayload, error) {
	var data struct {
		CommentCreate commentPayloadWire `json:"commentCreate"`
	}
	err := c.do(ctx, commentCreateMutation, map[string]any{"input": in}, &data)
	return data.CommentCreate.payload(), err
}

const commentUpdateMutation = `mutation CommentUpdate($id: String!, $input: CommentUpdateInput!) {
  commentUpdate(id: $id, input: $input) { success lastSyncId comment { ` + commentFields + ` } }
}`

// UpdateComment patches a comment's body.
func (c *Client) UpdateComment(ctx context.Context, id string, in CommentPatchInput) (CommentPayload, error) {
	var data struct {
		CommentUpdate commentPayloadWire `json:"commentUpdate"`
	}
	err := c.do(ctx, commentUpdateMutation, map[string]any{"id": id, "input": in}, &data)
	return data.CommentUpdate.payload(), err
}
