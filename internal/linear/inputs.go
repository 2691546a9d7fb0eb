package linear

// Mutation inputs. Optional fields are pointers with omitempty: a nil
// field is left out of the request entirely, so the remote keeps its
// existing value. There is deliberately no way to send an explicit
// null ("clear this field"); absent means untouched.

// IssueCreateInput creates an issue. TeamID is filled in by the
// gateway from the session team.
type IssueCreateInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TeamID      string   `json:"teamId"`
	StateID     *string  `json:"stateId,omitempty"`
	ProjectID   *string  `json:"projectId,omitempty"`
	AssigneeID  *string  `json:"assigneeId,omitempty"`
	DueDate     *string  `json:"dueDate,omitempty"`
	Estimate    *float64 `json:"estimate,omitempty"`
	MilestoneID *string  `json:"projectMilestoneId,omitempty"`
	Priority    *float64 `json:"priority,omitempty"`
	ParentID    *string  `json:"parentId,omitempty"`
}

// IssueUpdateInput patches an existing issue.
type IssueUpdateInput struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	StateID     *string  `json:"stateId,omitempty"`
	ProjectID   *string  `json:"projectId,omitempty"`
	AssigneeID  *string  `json:"assigneeId,omitempty"`
	DueDate     *string  `json:"dueDate,omitempty"`
	Estimate    *float64 `json:"estimate,omitempty"`
	MilestoneID *string  `json:"projectMilestoneId,omitempty"`
	Priority    *float64 `json:"priority,omitempty"`
	ParentID    *string  `json:"parentId,omitempty"`
	// LabelIDs is a pointer so that "replace with the empty set" is
	// expressible: a nil pointer is omitted, a pointer to an empty
	// slice clears every label.
	LabelIDs *[]string `json:"labelIds,omitempty"`
}

// ProjectCreateInput creates a project. TeamIDs is filled in by the
// gateway from the session team.
type ProjectCreateInput struct {
	Name        string   `json:"name"`
	TeamIDs     []string `json:"teamIds"`
	Description *string  `json:"description,omitempty"`
	LeadID      *string  `json:"leadId,omitempty"`
	MemberIDs   []string `json:"memberIds,omitempty"`
	Priority    *float64 `json:"priority,omitempty"`
	StartDate   *string  `json:"startDate,omitempty"`
	TargetDate  *string  `json:"targetDate,omitempty"`
	StatusID    *string  `json:"statusId,omitempty"`
}

// ProjectPatchInput patches an existing project. MemberIDs follows
// the same pointer convention as IssueUpdateInput.LabelIDs.
type ProjectPatchInput struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	LeadID      *string   `json:"leadId,omitempty"`
	MemberIDs   *[]string `json:"memberIds,omitempty"`
	Priority    *float64 `json:"priority,omitempty"`
	StartDate   *string  `json:"startDate,omitempty"`
	TargetDate  *string  `json:"targetDate,omitempty"`
	StatusID    *string  `json:"statusId,omitempty"`
}

// DocumentCreateInput creates a document.
type DocumentCreateInput struct {
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	ProjectID *string `json:"projectId,omitempty"`
}

// DocumentPatchInput patches an existing document.
type DocumentPatchInput struct {
	Title     *string `json:"title,omitempty"`
	Content   *string `json:"content,omitempty"`
	ProjectID *string `json:"projectId,omitempty"`
}

// MilestoneCreateInput creates a milestone. The parent project is
// required and cannot be changed afterwards.
type MilestoneCreateInput struct {
	Name        string  `json:"name"`
	ProjectID   string  `json:"projectId"`
	Description *string `json:"description,omitempty"`
	TargetDate  *string `json:"targetDate,omitempty"`
}

// MilestonePatchInput patches an existing milestone.
type MilestonePatchInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	TargetDate  *string `json:"targetDate,omitempty"`
}

// ProjectUpdateCreateInput creates a project status update.
type ProjectUpdateCreateInput struct {
	ProjectID string         `json:"projectId"`
	Body      string         `json:"body"`
	Health    *ProjectHealth `json:"health,omitempty"`
}

// ProjectUpdatePatchInput patches an existing project status update.
type ProjectUpdatePatchInput struct {
	Body   *string        `json:"body,omitempty"`
	Health *ProjectHealth `json:"health,omitempty"`
}

// CommentCreateInput creates a comment on an issue, a project update,
// or under a parent comment.
type CommentCreateInput struct {
	Body            string  `json:"body"`
	IssueID         *string `json:"issueId,omitempty"`
	ProjectUpdateID *string `json:"projectUpdateId,omitempty"`
	ParentID        *string `json:"parentId,omitempty"`
}

// CommentPatchInput patches an existing comment's body.
type CommentPatchInput struct {
	Body string `json:"body"`
}
