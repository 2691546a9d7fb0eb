// Package store holds the in-memory snapshot of the workspace: one
// typed collection per resource kind, written only by the hydrator's
// replace-all step and read by any number of concurrent tool calls.
//
// There is no incremental update path. A collection is either empty
// (never hydrated) or the complete result of the last successful
// pagination run; replacement is a whole-value swap, so a reader
// racing a replace sees the old snapshot or the new one, never a mix.
package store

import (
	"sync"

	"github.com/zcaceres/ai-project-manager/internal/linear"
)

// Collection is one resource kind's cached snapshot.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
}

// All returns the current snapshot. Empty (never nil) before the
// first Replace. Never blocks on remote work and never fails.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.items == nil {
		return []T{}
	}
	return c.items
}

// Replace swaps in a new complete snapshot.
func (c *Collection[T]) Replace(items []T) {
	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
}

// Len returns the current snapshot's size.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Store owns the cached workspace view. It is constructed once at
// startup and injected into every component that needs it; nothing in
// this repository reaches for it through a package-level variable.
type Store struct {
	Issues          Collection[linear.Issue]
	Projects        Collection[linear.Project]
	Documents       Collection[linear.Document]
	IssueStatuses   Collection[linear.WorkflowState]
	ProjectStatuses Collection[linear.ProjectStatus]
	Members         Collection[linear.User]
	Labels          Collection[linear.Label]

	teamMu sync.RWMutex
	team   *linear.Team
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// SetTeam records the session team. Called once by the hydrator.
func (s *Store) SetTeam(t linear.Team) {
	s.teamMu.Lock()
	s.team = &t
	s.teamMu.Unlock()
}

// Team returns the session team and whether it has been resolved yet.
func (s *Store) Team() (linear.Team, bool) {
	s.teamMu.RLock()
	defer s.teamMu.RUnlock()
	if s.team == nil {
		return linear.Team{}, false
	}
	return *s.team, true
}
