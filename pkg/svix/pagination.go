package svix

import (
	"context"
	"errors"
)

// ErrNoMoreItems is returned by PaginationIterator.Next past the last item.
var ErrNoMoreItems = errors.New("no more items")

// PageFunc fetches the page starting at iterator. A nil iterator requests the
// first page. List methods adapt to it with a closure:
//
//	fetch := func(ctx context.Context, it *string) (*svix.ListResponseApplicationOut, error) {
//		return client.Applications().List(ctx, &svix.ApplicationListOptions{Iterator: it})
//	}
type PageFunc[T any] func(ctx context.Context, iterator *string) (*ListResponse[T], error)

// PaginationIterator walks a cursor-paginated list item by item, fetching
// pages on demand. It is not safe for concurrent use.
type PaginationIterator[T any] struct {
	ctx      context.Context //nolint:containedctx // iterator is bound to one listing
	fetch    PageFunc[T]
	items    []T
	index    int
	iterator *string
	done     bool
}

// NewPaginationIterator creates an iterator starting at the first page.
func NewPaginationIterator[T any](ctx context.Context, fetch PageFunc[T]) *PaginationIterator[T] {
	return &PaginationIterator[T]{
		ctx:   ctx,
		fetch: fetch,
	}
}

// HasNext reports whether Next may return another item. It does not fetch.
func (p *PaginationIterator[T]) HasNext() bool {
	if p.index < len(p.items) {
		return true
	}

	return !p.done
}

// Next returns the next item, fetching the following page when the current
// one is exhausted.
func (p *PaginationIterator[T]) Next() (T, error) {
	var zero T

	for p.index >= len(p.items) {
		if p.done {
			return zero, ErrNoMoreItems
		}

		err := p.fetchPage()
		if err != nil {
			return zero, err
		}
	}

	item := p.items[p.index]
	p.index++

	return item, nil
}

// All collects every remaining item.
func (p *PaginationIterator[T]) All() ([]T, error) {
	var all []T

	err := p.ForEach(func(item T) error {
		all = append(all, item)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return all, nil
}

// ForEach calls fn for every remaining item and stops at the first error.
func (p *PaginationIterator[T]) ForEach(fn func(T) error) error {
	for p.HasNext() {
		item, err := p.Next()
		if errors.Is(err, ErrNoMoreItems) {
			return nil
		}

		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

func (p *PaginationIterator[T]) fetchPage() error {
	resp, err := p.fetch(p.ctx, p.iterator)
	if err != nil {
		return err
	}

	p.items = resp.Data
	p.index = 0
	p.iterator = resp.Iterator

	if resp.Done || resp.Iterator == nil {
		p.done = true
	}

	return nil
}

// FetchAllPages collects the items of every page.
func FetchAllPages[T any](ctx context.Context, fetch PageFunc[T]) ([]T, error) {
	return NewPaginationIterator(ctx, fetch).All()
}
