// Package fanout runs a function across a slice of items with bounded
// concurrency and returns the outcomes in input order, whatever order the
// work finishes in. It is built on golang.org/x/sync/errgroup.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers concurrent
// goroutines and collects every outcome; one item failing does not affect
// the others. Results are returned in the same order as the input items.
//
// Items that have not started when ctx is canceled record ctx.Err() without
// calling fn. Items already running finish; fn is responsible for honoring
// ctx itself.
//
// If items is empty, Run returns an empty non-nil slice. A maxWorkers below
// 1 runs every item at once.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(limit(maxWorkers, len(items)))

	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return nil
			}
			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// All is the fail-fast variant of Run: the first error cancels the context
// passed to the remaining calls and is returned once every started call has
// finished. On success the values are in input order.
func All[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	values := make([]R, len(items))
	if len(items) == 0 {
		return values, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit(maxWorkers, len(items)))

	for i, item := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			val, err := fn(gctx, item)
			if err != nil {
				return err
			}
			values[i] = val
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return values, nil
}

func limit(maxWorkers, n int) int {
	if maxWorkers < 1 || maxWorkers > n {
		return n
	}
	return maxWorkers
}
