package linear

// Team is the organizational unit issues and projects live under.
// Exactly one team is resolved per session (the first team associated
// with the authenticated user) and treated as a constant afterwards.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Key  string `json:"key"`
}

// User is an organization member.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// WorkflowState is a named issue status within a team's workflow
// (e.g. "Todo", "In Progress", "Done").
type WorkflowState struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// ProjectStatus is a named project state, scoped to the organization.
type ProjectStatus struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Issue is a unit of work.
type Issue struct {
	ID          string   `json:"id"`
	Identifier  string   `json:"identifier"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     string   `json:"dueDate"`
	Priority    float64  `json:"priority"`
	Estimate    float64  `json:"estimate"`
	StateID     string   `json:"stateId"`
	TeamID      string   `json:"teamId"`
	ProjectID   string   `json:"projectId"`
	MilestoneID string   `json:"projectMilestoneId"`
	ParentID    string   `json:"parentId"`
	AssigneeID  string   `json:"assigneeId"`
	LabelIDs    []string `json:"labelIds"`
	URL         string   `json:"url"`
}

// Project groups issues and milestones.
type Project struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	LeadID      string   `json:"leadId"`
	MemberIDs   []string `json:"memberIds"`
	Priority    float64  `json:"priority"`
	StartDate   string   `json:"startDate"`
	TargetDate  string   `json:"targetDate"`
	StatusID    string   `json:"statusId"`
	URL         string   `json:"url"`
}

// Milestone is a dated checkpoint inside a project. The parent project
// is required at creation and immutable afterwards.
type Milestone struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TargetDate  string `json:"targetDate"`
	ProjectID   string `json:"projectId"`
}

// ProjectHealth is the health enum for a project update.
type ProjectHealth string

const (
	HealthOnTrack  ProjectHealth = "onTrack"
	HealthAtRisk   ProjectHealth = "atRisk"
	HealthOffTrack ProjectHealth = "offTrack"
)

// ProjectUpdate is a timestamped status report attached to a project.
type ProjectUpdate struct {
	ID        string        `json:"id"`
	ProjectID string        `json:"projectId"`
	Body      string        `json:"body"`
	Health    ProjectHealth `json:"health"`
	CreatedAt string        `json:"createdAt"`
}

// Document is a long-form text artifact (e.g. a PRD), optionally
// associated with a project.
type Document struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	ProjectID string `json:"projectId"`
}

// Comment attaches to an issue, a project update, or a parent comment.
type Comment struct {
	ID              string `json:"id"`
	Body            string `json:"body"`
	IssueID         string `json:"issueId"`
	ProjectUpdateID string `json:"projectUpdateId"`
	ParentID        string `json:"parentId"`
}

// Label is a tag assignable to issues.
type Label struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
