package linear

import "context"

// pageSize bounds memory per round trip. It is deliberately not a
// caller tunable: every list query in this package requests pages of
// this size and the remote caps at the same value.
const pageSize = 100

// PageInfo is the remote's pagination marker for one page of results.
type PageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

// Page is one page of a cursor-paginated collection.
type Page[T any] struct {
	Nodes    []T      `json:"nodes"`
	PageInfo PageInfo `json:"pageInfo"`
}

// PageFunc fetches one page of a collection. An empty cursor requests
// the first page.
type PageFunc[T any] func(ctx context.Context, cursor string) (Page[T], error)

// CollectAll drives a paginated collection fetch to completion: it
// requests pages starting from an empty cursor and keeps going while
// the remote reports more, concatenating nodes in arrival order.
//
// Any page failure aborts the whole run with that error: no partial
// result, no retry. Retries, if wanted, belong to the caller's HTTP
// client, not here.
func CollectAll[T any](ctx context.Context, fetch PageFunc[T]) ([]T, error) {
	var all []T
	cursor := ""
	for {
		page, err := fetch(ctx, cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Nodes...)
		if !page.PageInfo.HasNextPage {
			return all, nil
		}
		cursor = page.PageInfo.EndCursor
	}
}
