// Package hydrate populates the store from the remote API at startup
// and on explicit refresh.
//
// The dependency graph is small: issue statuses, project statuses and
// issues need the session team resolved first; projects, documents,
// members and labels do not. All seven kinds run concurrently and
// team-dependent ones block on the shared team resolution, so the
// fan-out is a latency optimization only; no completion order is
// guaranteed across kinds.
package hydrate

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/zcaceres/ai-project-manager/internal/linear"
	"github.com/zcaceres/ai-project-manager/internal/store"
)

// Client is the slice of the remote API the hydrator consumes: the
// team lookup plus one single-page fetch per resource kind.
type Client interface {
	FirstTeam(ctx context.Context) (linear.Team, error)
	WorkflowStates(ctx context.Context, teamID, cursor string) (linear.Page[linear.WorkflowState], error)
	ProjectStatuses(ctx context.Context, cursor string) (linear.Page[linear.ProjectStatus], error)
	Issues(ctx context.Context, teamID, cursor string) (linear.Page[linear.Issue], error)
	Projects(ctx context.Context, cursor string) (linear.Page[linear.Project], error)
	Documents(ctx context.Context, cursor string) (linear.Page[linear.Document], error)
	Users(ctx context.Context, cursor string) (linear.Page[linear.User], error)
	Labels(ctx context.Context, cursor string) (linear.Page[linear.Label], error)
}

// Hydrator fills the store by driving each resource kind's pagination
// run to completion and swapping the result in as a whole.
type Hydrator struct {
	client Client
	store  *store.Store

	teamMu sync.Mutex
}

// New creates a Hydrator writing into the given store.
func New(client Client, st *store.Store) *Hydrator {
	return &Hydrator{client: client, store: st}
}

// Kind names a hydratable resource kind, as accepted by Refresh.
type Kind string

const (
	KindIssues          Kind = "issues"
	KindProjects        Kind = "projects"
	KindDocuments       Kind = "documents"
	KindIssueStatuses   Kind = "issue_statuses"
	KindProjectStatuses Kind = "project_statuses"
	KindMembers         Kind = "members"
	KindLabels          Kind = "labels"
)

// Kinds lists every hydratable resource kind.
func Kinds() []Kind {
	return []Kind{
		KindIssues, KindProjects, KindDocuments, KindIssueStatuses,
		KindProjectStatuses, KindMembers, KindLabels,
	}
}

// ensureTeam resolves the session team exactly once per process.
// A user with zero teams is a fatal configuration error, not retried.
func (h *Hydrator) ensureTeam(ctx context.Context) (linear.Team, error) {
	h.teamMu.Lock()
	defer h.teamMu.Unlock()
	if team, ok := h.store.Team(); ok {
		return team, nil
	}
	team, err := h.client.FirstTeam(ctx)
	if err != nil {
		return linear.Team{}, err
	}
	h.store.SetTeam(team)
	return team, nil
}

// HydrateAll runs every resource kind's hydration concurrently and
// returns once all of them have finished. A failure in one kind does
// not stop the others, but any failure makes the joined result non-nil.
// Callers needing all-or-nothing readiness must treat that as fatal.
func (h *Hydrator) HydrateAll(ctx context.Context) error {
	kinds := Kinds()
	errs := make([]error, len(kinds))

	var wg sync.WaitGroup
	for i, kind := range kinds {
		wg.Add(1)
		go func(i int, kind Kind) {
			defer wg.Done()
			errs[i] = h.Refresh(ctx, kind)
		}(i, kind)
	}
	wg.Wait()

	return errors.Join(errs...)
}

// Refresh re-hydrates a single resource kind. The store keeps serving
// the previous snapshot until the new pagination run completes.
func (h *Hydrator) Refresh(ctx context.Context, kind Kind) error {
	var err error
	switch kind {
	case KindIssues:
		err = h.hydrateIssues(ctx)
	case KindProjects:
		err = h.hydrateProjects(ctx)
	case KindDocuments:
		err = h.hydrateDocuments(ctx)
	case KindIssueStatuses:
		err = h.hydrateIssueStatuses(ctx)
	case KindProjectStatuses:
		err = h.hydrateProjectStatuses(ctx)
	case KindMembers:
		err = h.hydrateMembers(ctx)
	case KindLabels:
		err = h.hydrateLabels(ctx)
	default:
		return fmt.Errorf("unknown resource kind %q", kind)
	}
	if err != nil {
		return fmt.Errorf("hydrating %s: %w", kind, err)
	}
	return nil
}

func (h *Hydrator) hydrateIssues(ctx context.Context) error {
	team, err := h.ensureTeam(ctx)
	if err != nil {
		return err
	}
	issues, err := linear.CollectAll(ctx, func(ctx context.Context, cursor string) (linear.Page[linear.Issue], error) {
		return h.client.Issues(ctx, team.ID, cursor)
	})
	if err != nil {
		return err
	}
	h.store.Issues.Replace(issues)
	return nil
}

func (h *Hydrator) hydrateIssueStatuses(ctx context.Context) error {
	team, err := h.ensureTeam(ctx)
	if err != nil {
		return err
	}
	states, err := linear.CollectAll(ctx, func(ctx context.Context, cursor string) (linear.Page[linear.WorkflowState], error) {
		return h.client.WorkflowStates(ctx, team.ID, cursor)
	})
	if err != nil {
		return err
	}
	h.store.IssueStatuses.Replace(states)
	return nil
}

func (h *Hydrator) hydrateProjectStatuses(ctx context.Context) error {
	// Project statuses are organization-scoped, but a session without
	// a team is unusable, so the team check still gates this kind.
	if _, err := h.ensureTeam(ctx); err != nil {
		return err
	}
	statuses, err := linear.CollectAll(ctx, h.client.ProjectStatuses)
	if err != nil {
		return err
	}
	h.store.ProjectStatuses.Replace(statuses)
	return nil
}

func (h *Hydrator) hydrateProjects(ctx context.Context) error {
	projects, err := linear.CollectAll(ctx, h.client.Projects)
	if err != nil {
		return err
	}
	h.store.Projects.Replace(projects)
	return nil
}

func (h *Hydrator) hydrateDocuments(ctx context.Context) error {
	docs, err := linear.CollectAll(ctx, h.client.Documents)
	if err != nil {
		return err
	}
	h.store.Documents.Replace(docs)
	return nil
}

func (h *Hydrator) hydrateMembers(ctx context.Context) error {
	members, err := linear.CollectAll(ctx, h.client.Users)
	if err != nil {
		return err
	}
	h.store.Members.Replace(members)
	return nil
}

func (h *Hydrator) hydrateLabels(ctx context.Context) error {
	labels, err := linear.CollectAll(ctx, h.client.Labels)
	if err != nil {
		return err
	}
	h.store.Labels.Replace(labels)
	return nil
}
