package openaccess

import (
	"context"
	"iter"
)

// pageMeta carries the pagination fields reported with a page of items.
type pageMeta struct {
	TotalPages int
	Count      int
}

// paginatorFunc fetches one page of items T. Pages are numbered from 1.
type paginatorFunc[T any] func(ctx context.Context, page int) ([]T, pageMeta, error)

// iterate returns an iterator that walks all pages in ascending order
// using the provided fetcher. The first page determines the page count;
// a reported count of zero ends the traversal after that single
// request. Item order is the server's sort order, preserved across page
// boundaries. A page count above maxPages yields [PageLimitError].
func iterate[T any](ctx context.Context, maxPages int, fetch paginatorFunc[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		totalPages := 1

		for page := 1; page <= totalPages; page++ {
			items, meta, err := fetch(ctx, page)
			if err != nil {
				yield(*new(T), err)
				return
			}

			if page == 1 {
				if meta.Count == 0 {
					return
				}
				totalPages = meta.TotalPages
				if totalPages > maxPages {
					yield(*new(T), &PageLimitError{TotalPages: totalPages, Limit: maxPages})
					return
				}
			}

			for _, item := range items {
				if !yield(item, nil) {
					return
				}
			}
		}
	}
}

// collect drains seq into a slice, stopping at the first error.
func collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var collected []T
	for item, err := range seq {
		if err != nil {
			return nil, err
		}
		collected = append(collected, item)
	}

	return collected, nil
}
