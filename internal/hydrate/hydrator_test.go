package hydrate

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/zcaceres/ai-project-manager/internal/linear"
	"github.com/zcaceres/ai-project-manager/internal/store"
)

// fakeClient serves fixed collections, split into pages of two to
// exercise the pagination path. Any kind listed in fail errors out.
type fakeClient struct {
	team      linear.Team
	teamErr   error
	teamCalls atomic.Int32

	states    []linear.WorkflowState
	statuses  []linear.ProjectStatus
	issues    []linear.Issue
	projects  []linear.Project
	documents []linear.Document
	users     []linear.User
	labels    []linear.Label

	fail map[Kind]error
}

// page slices a collection into pages of two, addressed by a numeric
// cursor.
func page[T any](items []T, cursor string) (linear.Page[T], error) {
	start := 0
	if cursor != "" {
		start = int(cursor[0]-'0') * 2
	}
	end := start + 2
	if end > len(items) {
		end = len(items)
	}
	p := linear.Page[T]{Nodes: items[start:end]}
	if end < len(items) {
		p.PageInfo = linear.PageInfo{HasNextPage: true, EndCursor: string(rune('0' + start/2 + 1))}
	}
	return p, nil
}

func (f *fakeClient) FirstTeam(ctx context.Context) (linear.Team, error) {
	f.teamCalls.Add(1)
	if f.teamErr != nil {
		return linear.Team{}, f.teamErr
	}
	return f.team, nil
}

func (f *fakeClient) WorkflowStates(ctx context.Context, teamID, cursor string) (linear.Page[linear.WorkflowState], error) {
	if err := f.fail[KindIssueStatuses]; err != nil {
		return linear.Page[linear.WorkflowState]{}, err
	}
	return page(f.states, cursor)
}

func (f *fakeClient) ProjectStatuses(ctx context.Context, cursor string) (linear.Page[linear.ProjectStatus], error) {
	if err := f.fail[KindProjectStatuses]; err != nil {
		return linear.Page[linear.ProjectStatus]{}, err
	}
	return page(f.statuses, cursor)
}

func (f *fakeClient) Issues(ctx context.Context, teamID, cursor string) (linear.Page[linear.Issue], error) {
	if err := f.fail[KindIssues]; err != nil {
		return linear.Page[linear.Issue]{}, err
	}
	return page(f.issues, cursor)
}

func (f *fakeClient) Projects(ctx context.Context, cursor string) (linear.Page[linear.Project], error) {
	if err := f.fail[KindProjects]; err != nil {
		return linear.Page[linear.Project]{}, err
	}
	return page(f.projects, cursor)
}

func (f *fakeClient) Documents(ctx context.Context, cursor string) (linear.Page[linear.Document], error) {
	if err := f.fail[KindDocuments]; err != nil {
		return linear.Page[linear.Document]{}, err
	}
	return page(f.documents, cursor)
}

func (f *fakeClient) Users(ctx context.Context, cursor string) (linear.Page[linear.User], error) {
	if err := f.fail[KindMembers]; err != nil {
		return linear.Page[linear.User]{}, err
	}
	return page(f.users, cursor)
}

func (f *fakeClient) Labels(ctx context.Context, cursor string) (linear.Page[linear.Label], error) {
	if err := f.fail[KindLabels]; err != nil {
		return linear.Page[linear.Label]{}, err
	}
	return page(f.labels, cursor)
}

func fullFake() *fakeClient {
	return &fakeClient{
		team:     linear.Team{ID: "team-1", Name: "Linear PM"},
		states:   []linear.WorkflowState{{ID: "s1"}, {ID: "s2"}, {ID: "s3"}},
		statuses: []linear.ProjectStatus{{ID: "ps1"}},
		issues:   []linear.Issue{{ID: "i1"}, {ID: "i2"}, {ID: "i3"}, {ID: "i4"}, {ID: "i5"}},
		projects: []linear.Project{{ID: "p1"}, {ID: "p2"}},
		documents: []linear.Document{
			{ID: "d1"}, {ID: "d2"}, {ID: "d3"},
		},
		users:  []linear.User{{ID: "u1"}},
		labels: []linear.Label{{ID: "l1"}, {ID: "l2"}},
	}
}

func TestHydrateAllFillsEveryKind(t *testing.T) {
	fake := fullFake()
	st := store.New()
	h := New(fake, st)

	if err := h.HydrateAll(context.Background()); err != nil {
		t.Fatalf("HydrateAll: %v", err)
	}

	if got := len(st.Issues.All()); got != 5 {
		t.Errorf("issues = %d, want 5", got)
	}
	if got := st.Issues.All()[0].ID; got != "i1" {
		t.Errorf("first issue = %s, want i1 (page order lost)", got)
	}
	if got := len(st.IssueStatuses.All()); got != 3 {
		t.Errorf("issue statuses = %d, want 3", got)
	}
	if got := len(st.ProjectStatuses.All()); got != 1 {
		t.Errorf("project statuses = %d, want 1", got)
	}
	if got := len(st.Projects.All()); got != 2 {
		t.Errorf("projects = %d, want 2", got)
	}
	if got := len(st.Documents.All()); got != 3 {
		t.Errorf("documents = %d, want 3", got)
	}
	if got := len(st.Members.All()); got != 1 {
		t.Errorf("members = %d, want 1", got)
	}
	if got := len(st.Labels.All()); got != 2 {
		t.Errorf("labels = %d, want 2", got)
	}

	team, ok := st.Team()
	if !ok || team.ID != "team-1" {
		t.Errorf("team = %+v / %v, want team-1", team, ok)
	}
}

func TestTeamResolvedOnce(t *testing.T) {
	fake := fullFake()
	st := store.New()
	h := New(fake, st)

	if err := h.HydrateAll(context.Background()); err != nil {
		t.Fatalf("HydrateAll: %v", err)
	}
	if got := fake.teamCalls.Load(); got != 1 {
		t.Errorf("FirstTeam called %d times, want 1", got)
	}

	// A later refresh reuses the session team.
	if err := h.Refresh(context.Background(), KindIssues); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if got := fake.teamCalls.Load(); got != 1 {
		t.Errorf("FirstTeam called %d times after refresh, want 1", got)
	}
}

func TestNoTeamIsFatal(t *testing.T) {
	fake := fullFake()
	fake.teamErr = linear.ErrNoTeam
	st := store.New()
	h := New(fake, st)

	err := h.HydrateAll(context.Background())
	if !errors.Is(err, linear.ErrNoTeam) {
		t.Fatalf("error = %v, want ErrNoTeam", err)
	}

	// Team-independent kinds still hydrated.
	if got := len(st.Projects.All()); got != 2 {
		t.Errorf("projects = %d, want 2 despite team failure", got)
	}
	// Team-dependent kinds did not.
	if got := len(st.Issues.All()); got != 0 {
		t.Errorf("issues = %d, want 0", got)
	}
}

func TestOneKindFailingFailsReadiness(t *testing.T) {
	fake := fullFake()
	fake.fail = map[Kind]error{KindDocuments: errors.New("documents endpoint down")}
	st := store.New()
	h := New(fake, st)

	err := h.HydrateAll(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "hydrating documents") {
		t.Errorf("error = %v, want it attributed to documents", err)
	}

	// The failing kind stays empty; the rest are unaffected.
	if got := len(st.Documents.All()); got != 0 {
		t.Errorf("documents = %d, want 0", got)
	}
	if got := len(st.Issues.All()); got != 5 {
		t.Errorf("issues = %d, want 5", got)
	}
}

func TestRefreshUnknownKind(t *testing.T) {
	h := New(fullFake(), store.New())
	if err := h.Refresh(context.Background(), Kind("bogus")); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestRefreshSwapsSnapshot(t *testing.T) {
	fake := fullFake()
	st := store.New()
	h := New(fake, st)

	if err := h.Refresh(context.Background(), KindLabels); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if got := len(st.Labels.All()); got != 2 {
		t.Fatalf("labels = %d, want 2", got)
	}

	fake.labels = append(fake.labels, linear.Label{ID: "l3"})
	if err := h.Refresh(context.Background(), KindLabels); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if got := len(st.Labels.All()); got != 3 {
		t.Errorf("labels after refresh = %d, want 3", got)
	}
}
