package discovery

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Page is the pagination envelope returned from listings.
type Page[T any] struct {
	Items       []T
	TotalItems  int64
	TotalPages  int
	CurrentPage int
}

// Source is a store collection that can scan a page and count matches.
type Source[T any] interface {
	// Scan returns the documents for d's window in d's order.
	Scan(ctx context.Context, d Descriptor) ([]T, error)
	// Count returns the number of documents matching f, ignoring the window.
	Count(ctx context.Context, f Filter) (int64, error)
}

// Execute runs the scan and the count concurrently and assembles a page.
// CurrentPage echoes the requested page even when it lies past the end.
func Execute[T any](ctx context.Context, src Source[T], d Descriptor) (Page[T], error) {
	var (
		items []T
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = src.Scan(gctx, d)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = src.Count(gctx, d.Filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return Page[T]{}, err
	}
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:       items,
		TotalItems:  total,
		TotalPages:  TotalPages(total, d.Limit),
		CurrentPage: d.Page,
	}, nil
}

// TotalPages returns ceil(total/limit). limit must be positive.
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	l := int64(limit)
	return int((total + l - 1) / l)
}
