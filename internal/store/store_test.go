package store

import (
	"sync"
	"testing"

	"github.com/zcaceres/ai-project-manager/internal/linear"
)

func TestReadBeforeHydrateIsEmpty(t *testing.T) {
	st := New()

	if got := st.Issues.All(); got == nil || len(got) != 0 {
		t.Errorf("Issues.All() = %v, want empty non-nil slice", got)
	}
	if got := st.Labels.All(); got == nil || len(got) != 0 {
		t.Errorf("Labels.All() = %v, want empty non-nil slice", got)
	}
	if _, ok := st.Team(); ok {
		t.Error("Team() resolved before hydration")
	}
}

func TestReplaceSwapsWholeSnapshot(t *testing.T) {
	st := New()

	st.Labels.Replace([]linear.Label{{ID: "l1", Name: "bug"}})
	if got := st.Labels.All(); len(got) != 1 || got[0].ID != "l1" {
		t.Fatalf("after first replace: %v", got)
	}

	st.Labels.Replace([]linear.Label{{ID: "l2"}, {ID: "l3"}})
	got := st.Labels.All()
	if len(got) != 2 || got[0].ID != "l2" {
		t.Fatalf("after second replace: %v", got)
	}
	if st.Labels.Len() != 2 {
		t.Errorf("Len() = %d, want 2", st.Labels.Len())
	}
}

func TestTeamRoundTrip(t *testing.T) {
	st := New()
	st.SetTeam(linear.Team{ID: "team-1", Name: "Linear PM", Key: "PM"})

	team, ok := st.Team()
	if !ok {
		t.Fatal("Team() not resolved after SetTeam")
	}
	if team.ID != "team-1" || team.Key != "PM" {
		t.Errorf("team = %+v", team)
	}
}

// Concurrent readers during a replace must observe either the old or
// the new snapshot, never a torn one. Run with -race.
func TestConcurrentReadAndReplace(t *testing.T) {
	st := New()
	old := []linear.Issue{{ID: "a"}, {ID: "b"}}
	next := []linear.Issue{{ID: "c"}}
	st.Issues.Replace(old)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				got := st.Issues.All()
				if len(got) != 2 && len(got) != 1 {
					t.Errorf("torn read: %v", got)
					return
				}
			}
		}()
	}
	for j := 0; j < 1000; j++ {
		if j%2 == 0 {
			st.Issues.Replace(next)
		} else {
			st.Issues.Replace(old)
		}
	}
	wg.Wait()
}
