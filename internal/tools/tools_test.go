package tools

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/zcaceres/ai-project-manager/internal/gateway"
	"github.com/zcaceres/ai-project-manager/internal/linear"
	"github.com/zcaceres/ai-project-manager/internal/store"
)

// --- Test helpers ---

// fakeRemote is a minimal gateway.Client: it echoes issue mutations
// and fails everything when broken is set.
type fakeRemote struct {
	broken bool
	issue  linear.Issue

	lastIssueCreate *linear.IssueCreateInput
}

func (f *fakeRemote) Issue(ctx context.Context, id string) (linear.Issue, error) {
	if f.broken {
		return linear.Issue{}, errors.New("remote unavailable")
	}
	return f.issue, nil
}

func (f *fakeRemote) CreateIssue(ctx context.Context, in linear.IssueCreateInput) (linear.IssuePayload, error) {
	f.lastIssueCreate = &in
	if f.broken {
		return linear.IssuePayload{}, errors.New("remote unavailable")
	}
	issue := linear.Issue{ID: "i-new", Title: in.Title, Description: in.Description}
	return linear.IssuePayload{Success: true, Issue: &issue}, nil
}

func (f *fakeRemote) UpdateIssue(ctx context.Context, id string, in linear.IssueUpdateInput) (linear.IssuePayload, error) {
	if f.broken {
		return linear.IssuePayload{}, errors.New("remote unavailable")
	}
	issue := f.issue
	issue.ID = id
	if in.LabelIDs != nil {
		issue.LabelIDs = *in.LabelIDs
	}
	f.issue = issue
	return linear.IssuePayload{Success: true, Issue: &issue}, nil
}

func (f *fakeRemote) CreateProject(ctx context.Context, in linear.ProjectCreateInput) (linear.ProjectPayload, error) {
	if f.broken {
		return linear.ProjectPayload{}, errors.New("remote unavailable")
	}
	p := linear.Project{ID: "p-new", Name: in.Name}
	return linear.ProjectPayload{Success: true, Project: &p}, nil
}

func (f *fakeRemote) UpdateProject(ctx context.Context, id string, in linear.ProjectPatchInput) (linear.ProjectPayload, error) {
	return linear.ProjectPayload{}, errors.New("not scripted")
}

func (f *fakeRemote) CreateDocument(ctx context.Context, in linear.DocumentCreateInput) (linear.DocumentPayload, error) {
	// success=false envelope, distinct from a transport failure
	return linear.DocumentPayload{Success: false}, nil
}

func (f *fakeRemote) UpdateDocument(ctx context.Context, id string, in linear.DocumentPatchInput) (linear.DocumentPayload, error) {
	return linear.DocumentPayload{}, errors.New("not scripted")
}

func (f *fakeRemote) CreateMilestone(ctx context.Context, in linear.MilestoneCreateInput) (linear.MilestonePayload, error) {
	return linear.MilestonePayload{}, errors.New("not scripted")
}

func (f *fakeRemote) UpdateMilestone(ctx context.Context, id string, in linear.MilestonePatchInput) (linear.MilestonePayload, error) {
	return linear.MilestonePayload{}, errors.New("not scripted")
}

func (f *fakeRemote) CreateProjectUpdate(ctx context.Context, in linear.ProjectUpdateCreateInput) (linear.ProjectUpdatePayload, error) {
	return linear.ProjectUpdatePayload{}, errors.New("not scripted")
}

func (f *fakeRemote) UpdateProjectUpdate(ctx context.Context, id string, in linear.ProjectUpdatePatchInput) (linear.ProjectUpdatePayload, error) {
	return linear.ProjectUpdatePayload{}, errors.New("not scripted")
}

func (f *fakeRemote) CreateComment(ctx context.Context, in linear.CommentCreateInput) (linear.CommentPayload, error) {
	return linear.CommentPayload{}, errors.New("not scripted")
}

func (f *fakeRemote) UpdateComment(ctx context.Context, id string, in linear.CommentPatchInput) (linear.CommentPayload, error) {
	return linear.CommentPayload{}, errors.New("not scripted")
}

func (f *fakeRemote) ProjectMilestones(ctx context.Context, projectID, cursor string) (linear.Page[linear.Milestone], error) {
	return linear.Page[linear.Milestone]{}, nil
}

func (f *fakeRemote) ProjectUpdates(ctx context.Context, projectID, cursor string) (linear.Page[linear.ProjectUpdate], error) {
	if f.broken {
		return linear.Page[linear.ProjectUpdate]{}, errors.New("remote unavailable")
	}
	return linear.Page[linear.ProjectUpdate]{}, nil
}

func setup(fake *fakeRemote) (*store.Store, *gateway.Gateway) {
	st := store.New()
	st.SetTeam(linear.Team{ID: "team-1"})
	return st, gateway.New(fake, st)
}

func request(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// resultText extracts the text content from a CallToolResult.
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil || len(result.Content) == 0 {
		t.Fatal("empty tool result")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("result content is %T, want TextContent", result.Content[0])
	}
	return tc.Text
}

// --- Tests ---

func TestReadBeforeHydrateReturnsEmptyJSON(t *testing.T) {
	st, _ := setup(&fakeRemote{})
	tool := NewGetIssuesTool(st)

	result, err := tool.Handle(context.Background(), request(nil))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if got := resultText(t, result); got != "[]" {
		t.Errorf("result = %q, want empty JSON array", got)
	}
}

func TestGetIssuesServesSnapshot(t *testing.T) {
	st, _ := setup(&fakeRemote{})
	st.Issues.Replace([]linear.Issue{{ID: "i1", Title: "Fix login"}})
	tool := NewGetIssuesTool(st)

	result, err := tool.Handle(context.Background(), request(nil))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	var issues []linear.Issue
	if err := json.Unmarshal([]byte(resultText(t, result)), &issues); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if len(issues) != 1 || issues[0].Title != "Fix login" {
		t.Errorf("issues = %+v", issues)
	}
}

func TestGetWorkflowStatesServesSnapshot(t *testing.T) {
	st, _ := setup(&fakeRemote{})
	st.IssueStatuses.Replace([]linear.WorkflowState{{ID: "s1", Name: "Todo"}})
	tool := NewGetWorkflowStatesTool(st)

	result, _ := tool.Handle(context.Background(), request(nil))
	if got := resultText(t, result); !strings.Contains(got, `"Todo"`) {
		t.Errorf("result = %q, want the Todo state", got)
	}
}

func TestCreateIssueReturnsSerializedIssue(t *testing.T) {
	fake := &fakeRemote{}
	_, gw := setup(fake)
	tool := NewCreateIssueTool(gw)

	result, err := tool.Handle(context.Background(), request(map[string]any{
		"title":       "Test Issue",
		"description": "This is a test issue",
	}))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	var issue linear.Issue
	if err := json.Unmarshal([]byte(resultText(t, result)), &issue); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if issue.Title != "Test Issue" || issue.Description != "This is a test issue" {
		t.Errorf("issue = %+v, want input echoed", issue)
	}

	// Unsupplied optionals must not reach the wire.
	if fake.lastIssueCreate.Priority != nil || fake.lastIssueCreate.DueDate != nil {
		t.Errorf("optional fields set: %+v", fake.lastIssueCreate)
	}
}

func TestCreateIssueForwardsOptionalFields(t *testing.T) {
	fake := &fakeRemote{}
	_, gw := setup(fake)
	tool := NewCreateIssueTool(gw)

	_, err := tool.Handle(context.Background(), request(map[string]any{
		"title":       "Test Issue",
		"description": "d",
		"priority":    float64(3),
		"dueDate":     "2026-12-31",
	}))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if fake.lastIssueCreate.Priority == nil || *fake.lastIssueCreate.Priority != 3 {
		t.Errorf("priority = %v, want 3", fake.lastIssueCreate.Priority)
	}
	if fake.lastIssueCreate.DueDate == nil || *fake.lastIssueCreate.DueDate != "2026-12-31" {
		t.Errorf("dueDate = %v, want 2026-12-31", fake.lastIssueCreate.DueDate)
	}
}

func TestFailureBecomesErrorString(t *testing.T) {
	fake := &fakeRemote{broken: true}
	_, gw := setup(fake)
	tool := NewCreateIssueTool(gw)

	result, err := tool.Handle(context.Background(), request(map[string]any{
		"title":       "x",
		"description": "y",
	}))
	if err != nil {
		t.Fatalf("failures must not propagate as Go errors, got %v", err)
	}
	if !result.IsError {
		t.Error("result not flagged as error")
	}
	got := resultText(t, result)
	if !strings.HasPrefix(got, "Error: ") {
		t.Errorf("result = %q, want Error: prefix", got)
	}
}

func TestEnvelopeFailureBecomesErrorString(t *testing.T) {
	_, gw := setup(&fakeRemote{})
	tool := NewCreateDocumentTool(gw)

	result, err := tool.Handle(context.Background(), request(map[string]any{
		"title":     "PRD",
		"content":   "# Doc",
		"projectId": "p1",
	}))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	got := resultText(t, result)
	if got != "Error: Failed to create document" {
		t.Errorf("result = %q, want the envelope failure message", got)
	}
}

func TestMissingRequiredArgument(t *testing.T) {
	_, gw := setup(&fakeRemote{})
	tool := NewUpdateIssueTool(gw)

	result, err := tool.Handle(context.Background(), request(map[string]any{}))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if got := resultText(t, result); !strings.HasPrefix(got, "Error: ") {
		t.Errorf("result = %q, want Error: prefix", got)
	}
}

func TestLabelToolsRoundTrip(t *testing.T) {
	fake := &fakeRemote{issue: linear.Issue{ID: "issue-1", LabelIDs: []string{"label-1"}}}
	_, gw := setup(fake)
	add := NewAddLabelTool(gw)
	remove := NewRemoveLabelTool(gw)
	ctx := context.Background()

	result, err := add.Handle(ctx, request(map[string]any{"issueId": "issue-1", "labelId": "label-2"}))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	var issue linear.Issue
	if err := json.Unmarshal([]byte(resultText(t, result)), &issue); err != nil {
		t.Fatalf("add result not JSON: %v", err)
	}
	if len(issue.LabelIDs) != 2 || issue.LabelIDs[1] != "label-2" {
		t.Fatalf("after add: %v, want [label-1 label-2]", issue.LabelIDs)
	}

	result, err = remove.Handle(ctx, request(map[string]any{"issueId": "issue-1", "labelId": "label-1"}))
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &issue); err != nil {
		t.Fatalf("remove result not JSON: %v", err)
	}
	if len(issue.LabelIDs) != 1 || issue.LabelIDs[0] != "label-2" {
		t.Fatalf("after remove: %v, want [label-2]", issue.LabelIDs)
	}
}

func TestOptionalArgumentHelpers(t *testing.T) {
	req := request(map[string]any{
		"s":     "hello",
		"n":     float64(4),
		"empty": "",
		"list":  []any{"a", "b"},
	})

	if got := optString(req, "s"); got == nil || *got != "hello" {
		t.Errorf("optString(s) = %v", got)
	}
	if got := optString(req, "missing"); got != nil {
		t.Errorf("optString(missing) = %v, want nil", got)
	}
	if got := optString(req, "empty"); got == nil || *got != "" {
		t.Errorf("optString(empty) = %v, want pointer to empty string", got)
	}
	if got := optFloat(req, "n"); got == nil || *got != 4 {
		t.Errorf("optFloat(n) = %v", got)
	}
	if got := optFloat(req, "missing"); got != nil {
		t.Errorf("optFloat(missing) = %v, want nil", got)
	}
	if got := optStringSlice(req, "list"); got == nil || len(*got) != 2 || (*got)[0] != "a" {
		t.Errorf("optStringSlice(list) = %v", got)
	}
	if got := optStringSlice(req, "missing"); got != nil {
		t.Errorf("optStringSlice(missing) = %v, want nil", got)
	}
}
