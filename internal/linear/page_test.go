package linear

import (
	"context"
	"errors"
	"testing"
)

// scriptedPages returns a PageFunc that serves the given pages in
// order, recording how many fetches were made.
func scriptedPages(t *testing.T, pages []Page[string], calls *int) PageFunc[string] {
	t.Helper()
	return func(ctx context.Context, cursor string) (Page[string], error) {
		if *calls >= len(pages) {
			t.Fatalf("fetch called %d times, only %d pages scripted", *calls+1, len(pages))
		}
		page := pages[*calls]
		*calls++
		return page, nil
	}
}

func TestCollectAllConcatenatesInOrder(t *testing.T) {
	pages := []Page[string]{
		{Nodes: []string{"a", "b"}, PageInfo: PageInfo{HasNextPage: true, EndCursor: "c1"}},
		{Nodes: []string{"c"}, PageInfo: PageInfo{HasNextPage: true, EndCursor: "c2"}},
		{Nodes: []string{"d", "e"}, PageInfo: PageInfo{HasNextPage: false}},
	}
	calls := 0

	got, err := CollectAll(context.Background(), scriptedPages(t, pages, &calls))
	if err != nil {
		t.Fatalf("CollectAll: %v", err)
	}

	want := []string{"a", "b", "c", "d", "e"}
	if len(got) != len(want) {
		t.Fatalf("got %d items, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %q, want %q", i, got[i], want[i])
		}
	}
	if calls != len(pages) {
		t.Errorf("fetch called %d times, want %d", calls, len(pages))
	}
}

func TestCollectAllSinglePage(t *testing.T) {
	pages := []Page[string]{
		{Nodes: []string{"only"}, PageInfo: PageInfo{HasNextPage: false}},
	}
	calls := 0

	got, err := CollectAll(context.Background(), scriptedPages(t, pages, &calls))
	if err != nil {
		t.Fatalf("CollectAll: %v", err)
	}
	if len(got) != 1 || got[0] != "only" {
		t.Errorf("got %v, want [only]", got)
	}
	if calls != 1 {
		t.Errorf("fetch called %d times, want 1", calls)
	}
}

func TestCollectAllEmptyCollection(t *testing.T) {
	pages := []Page[string]{
		{PageInfo: PageInfo{HasNextPage: false}},
	}
	calls := 0

	got, err := CollectAll(context.Background(), scriptedPages(t, pages, &calls))
	if err != nil {
		t.Fatalf("CollectAll: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestCollectAllPassesCursorForward(t *testing.T) {
	var cursors []string
	fetch := func(ctx context.Context, cursor string) (Page[string], error) {
		cursors = append(cursors, cursor)
		if len(cursors) < 3 {
			return Page[string]{PageInfo: PageInfo{HasNextPage: true, EndCursor: "cur-" + cursor}}, nil
		}
		return Page[string]{PageInfo: PageInfo{HasNextPage: false}}, nil
	}

	if _, err := CollectAll(context.Background(), fetch); err != nil {
		t.Fatalf("CollectAll: %v", err)
	}

	want := []string{"", "cur-", "cur-cur-"}
	for i := range want {
		if cursors[i] != want[i] {
			t.Errorf("fetch %d got cursor %q, want %q", i, cursors[i], want[i])
		}
	}
}

func TestCollectAllAbortsOnFetchError(t *testing.T) {
	boom := errors.New("page 2 unavailable")
	calls := 0
	fetch := func(ctx context.Context, cursor string) (Page[string], error) {
		calls++
		if calls == 2 {
			return Page[string]{}, boom
		}
		return Page[string]{Nodes: []string{"x"}, PageInfo: PageInfo{HasNextPage: true, EndCursor: "c"}}, nil
	}

	got, err := CollectAll(context.Background(), fetch)
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want %v", err, boom)
	}
	if got != nil {
		t.Errorf("got partial result %v, want nil", got)
	}
	if calls != 2 {
		t.Errorf("fetch called %d times after failure, want 2", calls)
	}
}
