package async

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/outcome/pkg/outcome"
)

// settleAll runs every task concurrently and gathers the settled outcomes
// by input index.
func settleAll[T any](ctx context.Context, tasks []Task[T]) []outcome.Outcome[T] {
	settled := make([]outcome.Outcome[T], len(tasks))
	wg := &sync.WaitGroup{}
	for i, t := range tasks {
		wg.Add(1)
		go func(i int, t Task[T]) {
			defer wg.Done()
			settled[i] = t.Run(ctx)
		}(i, t)
	}
	wg.Wait()
	return settled
}

// Errs runs every task concurrently and yields the failure payloads in
// input order, successes omitted. The aggregate itself always succeeds.
func Errs[T any](tasks []Task[T]) Task[[]error] {
	return New(func(ctx context.Context, h *Helpers) ([]error, error) {
		errs := make([]error, 0, len(tasks))
		for _, r := range settleAll(ctx, tasks) {
			if r.IsFailure() {
				errs = append(errs, r.Err())
			}
		}
		return errs, nil
	})
}

// Oks runs every task concurrently and yields the success values in input
// order, failures omitted.
func Oks[T any](tasks []Task[T]) Task[[]T] {
	return New(func(ctx context.Context, h *Helpers) ([]T, error) {
		oks := make([]T, 0, len(tasks))
		for _, r := range settleAll(ctx, tasks) {
			if r.IsSuccess() {
				oks = append(oks, r.Value())
			}
		}
		return oks, nil
	})
}

// Sequence runs the tasks strictly left to right, one at a time, and stops
// at the first failure; producers past that point are never invoked. All
// successes yield the values in input order.
func Sequence[T any](tasks []Task[T]) Task[[]T] {
	return New(func(ctx context.Context, h *Helpers) ([]T, error) {
		values := make([]T, 0, len(tasks))
		for _, t := range tasks {
			values = append(values, AwaitTask(h, t))
		}
		return values, nil
	})
}

// All runs every task concurrently. If any fail, the aggregate fails with
// the first failure in completion order, not input order; every producer
// still runs to completion. All successes yield the values in input order.
func All[T any](tasks []Task[T]) Task[[]T] {
	return New(func(ctx context.Context, h *Helpers) ([]T, error) {
		values := make([]T, len(tasks))
		g := &errgroup.Group{}
		for i, t := range tasks {
			i, t := i, t
			g.Go(func() error {
				r := t.Run(ctx)
				if r.IsFailure() {
					return r.Err()
				}
				values[i] = r.Value()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			h.Throw(err)
		}
		return values, nil
	})
}
