package app

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// PartialResult holds the outcome of one function run by ParallelPartialLimit.
type PartialResult[T any] struct {
	Value T
	Err   error
}

// ParallelPartialLimit runs fns with at most limit in flight and collects
// every outcome in input order. A failure does not cancel the others; once
// ctx is done, functions that have not started report ctx.Err().
//
// Example:
//
//	results := ParallelPartialLimit(ctx, 4, createFuncs...)
//	for i, r := range results {
//	    if r.Err != nil {
//	        log.Printf("entry %d: %v", i+1, r.Err)
//	    }
//	}
func ParallelPartialLimit[T any](
	ctx context.Context,
	limit int,
	fns ...func(context.Context) (T, error),
) []PartialResult[T] {
	results := make([]PartialResult[T], len(fns))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, fn := range fns {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}

			value, err := fn(ctx)
			results[i] = PartialResult[T]{Value: value, Err: err}

			return nil
		})
	}

	_ = g.Wait()

	return results
}
