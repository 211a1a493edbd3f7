package async

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Producer computes a value for one run. It reports failure by returning a
// non-nil error, by escaping through the helper bundle, or by panicking;
// Run folds all three into the same failure channel.
type Producer[T any] func(ctx context.Context, h *Helpers) (T, error)

// Task is a lazy, rerunnable asynchronous computation producing an
// outcome.Outcome[T]. Constructing a Task never invokes its producer; every
// Run invokes it afresh. A Task carries no run-once state, so it is a
// recipe, not a cached result: side effects inside the producer fire once
// per run.
type Task[T any] struct {
	produce Producer[T]
}

func New[T any](p Producer[T]) Task[T] {
	return Task[T]{produce: p}
}

// Lift wraps an already-known outcome. Running the task unwraps a success
// and escapes with a failure; no other work is deferred.
func Lift[T any](r outcome.Outcome[T]) Task[T] {
	return New(func(ctx context.Context, h *Helpers) (T, error) {
		return Await(h, r), nil
	})
}

// From wraps a deferred outcome producer. An error from f itself folds the
// same way as a failure inside the outcome it would have produced.
func From[T any](f func(ctx context.Context) (outcome.Outcome[T], error)) Task[T] {
	return New(func(ctx context.Context, h *Helpers) (T, error) {
		r, err := f(ctx)
		if err != nil {
			h.Throw(err)
		}
		return Await(h, r), nil
	})
}

// Go lifts a plain fallible function into a task.
func Go[T any](f func(ctx context.Context) (T, error)) Task[T] {
	return New(func(ctx context.Context, h *Helpers) (T, error) {
		return f(ctx)
	})
}

// Run executes the producer with a fresh helper bundle and always returns
// an outcome; it never panics. An escape raised through the bundle, an
// ordinary error return and an unexpected panic all collapse into Failure.
func (t Task[T]) Run(ctx context.Context) (res outcome.Outcome[T]) {
	defer func() {
		if a := recover(); a != nil {
			res = outcome.Failure[T](foldRecovered(a))
		}
	}()
	h := &Helpers{ctx: ctx}
	v, err := t.produce(ctx, h)
	if err != nil {
		return outcome.Failure[T](err)
	}
	return outcome.Success(v)
}

// Async starts one run in a goroutine and returns a channel that delivers
// its outcome. The receive is the await; it can never panic because it
// delegates strictly to Run.
func (t Task[T]) Async(ctx context.Context) <-chan outcome.Outcome[T] {
	out := make(chan outcome.Outcome[T], 1)
	go func() {
		defer close(out)
		out <- t.Run(ctx)
	}()
	return out
}
