package tracker

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// fanOut runs op against every item concurrently and assembles the results in
// input order regardless of completion order. The first branch failure becomes
// the call's error and cancels the group context, aborting the remaining
// in-flight branches; no partial results are ever returned alongside an error.
func fanOut[S, T any](ctx context.Context, items []S, op func(context.Context, S) (T, error)) ([]T, error) {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]T, len(items))
	for i, item := range items {
		g.Go(func() error {
			res, err := op(ctx, item)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
