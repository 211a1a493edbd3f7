package async

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/optional"
)

// Map transforms the eventual success value; a failing run short-circuits
// before f is reached. A panic inside f folds at the Run boundary.
func Map[In, Out any](t Task[In], f func(v In) Out) Task[Out] {
	return New(func(ctx context.Context, h *Helpers) (Out, error) {
		return f(Await(h, t.Run(ctx))), nil
	})
}

// MapErr transforms the eventual failure; identity on success.
func (t Task[T]) MapErr(f func(err error) error) Task[T] {
	return New(func(ctx context.Context, h *Helpers) (T, error) {
		r := t.Run(ctx)
		if r.IsFailure() {
			h.Throw(f(r.Err()))
		}
		return r.Value(), nil
	})
}

// BiMap transforms both channels of the eventual outcome.
func BiMap[In, Out any](t Task[In], onErr func(err error) error, onSuccess func(v In) Out) Task[Out] {
	return From(func(ctx context.Context) (outcome.Outcome[Out], error) {
		return outcome.BiMap(t.Run(ctx), onErr, onSuccess), nil
	})
}

// Then runs t and, on success, runs the task f produces; a failure from
// either stage short-circuits.
func Then[In, Out any](t Task[In], f func(ctx context.Context, v In) Task[Out]) Task[Out] {
	return New(func(ctx context.Context, h *Helpers) (Out, error) {
		v := Await(h, t.Run(ctx))
		return AwaitTask(h, f(ctx, v)), nil
	})
}

// ThenTry composes a function that returns (Out, error), converting the
// error to a failure.
func ThenTry[In, Out any](t Task[In], f func(ctx context.Context, v In) (Out, error)) Task[Out] {
	return New(func(ctx context.Context, h *Helpers) (Out, error) {
		v := Await(h, t.Run(ctx))
		return f(ctx, v)
	})
}

// Recover delegates a failing run to f; a success passes through unchanged.
func (t Task[T]) Recover(f func(ctx context.Context, err error) Task[T]) Task[T] {
	return New(func(ctx context.Context, h *Helpers) (T, error) {
		r := t.Run(ctx)
		if r.IsSuccess() {
			return r.Value(), nil
		}
		return AwaitTask(h, f(ctx, r.Err())), nil
	})
}

// Join flattens a task of tasks.
func Join[T any](tt Task[Task[T]]) Task[T] {
	return New(func(ctx context.Context, h *Helpers) (T, error) {
		inner := Await(h, tt.Run(ctx))
		return AwaitTask(h, inner), nil
	})
}

// Or evaluates the receiver first and returns its outcome on success
// without ever running other; otherwise other's outcome is returned.
func (t Task[T]) Or(other Task[T]) Task[T] {
	return New(func(ctx context.Context, h *Helpers) (T, error) {
		r := t.Run(ctx)
		if r.IsSuccess() {
			return r.Value(), nil
		}
		return AwaitTask(h, other), nil
	})
}

// Apply applies a task-wrapped function to a task-wrapped value. The
// function side is the gate: it runs first, and its failure prevents the
// value side from running at all.
func Apply[In, Out any](t Task[In], tf Task[func(In) Out]) Task[Out] {
	return New(func(ctx context.Context, h *Helpers) (Out, error) {
		fn := Await(h, tf.Run(ctx))
		v := Await(h, t.Run(ctx))
		return fn(v), nil
	})
}

// Extend runs the receiver to completion; on success it wraps f applied to
// the settled computation, on failure it passes the failure through.
func Extend[In, Out any](t Task[In], f func(t Task[In]) Out) Task[Out] {
	return New(func(ctx context.Context, h *Helpers) (Out, error) {
		r := t.Run(ctx)
		if r.IsFailure() {
			h.Throw(r.Err())
		}
		return f(Lift(r)), nil
	})
}

// Tee runs the effect on a successful outcome and propagates the original
// result either way.
func (t Task[T]) Tee(effect func(ctx context.Context, v T)) Task[T] {
	return New(func(ctx context.Context, h *Helpers) (T, error) {
		r := t.Run(ctx)
		if r.IsSuccess() {
			effect(ctx, r.Value())
		}
		return Await(h, r), nil
	})
}

// TeeErr runs the effect on a failed outcome and propagates the original
// result either way.
func (t Task[T]) TeeErr(effect func(ctx context.Context, err error)) Task[T] {
	return New(func(ctx context.Context, h *Helpers) (T, error) {
		r := t.Run(ctx)
		if r.IsFailure() {
			effect(ctx, r.Err())
		}
		return Await(h, r), nil
	})
}

// Finally guarantees the effect runs after the receiver's run completes,
// success or failure. The effect runs for its side effect only: its own
// panics are swallowed, never folded into the result.
func (t Task[T]) Finally(effect func(ctx context.Context)) Task[T] {
	return New(func(ctx context.Context, h *Helpers) (T, error) {
		r := t.Run(ctx)
		func() {
			defer func() { _ = recover() }()
			effect(ctx)
		}()
		return Await(h, r), nil
	})
}

// Swap exchanges the variants: a success escapes with its value as the new
// failure, a failure's error lifts to the new success.
func (t Task[T]) Swap() Task[error] {
	return New(func(ctx context.Context, h *Helpers) (error, error) {
		r := t.Run(ctx)
		if r.IsSuccess() {
			h.Throw(&outcome.ValueError[T]{Value: r.Value()})
		}
		return r.Err(), nil
	})
}

// OrDefault runs the receiver and returns the success value, substituting
// def on failure. The call blocks until the run settles.
func (t Task[T]) OrDefault(ctx context.Context, def T) T {
	r := t.Run(ctx)
	if r.IsSuccess() {
		return r.Value()
	}
	return def
}

// ErrOrDefault runs the receiver and returns the failure's error,
// substituting def on success.
func (t Task[T]) ErrOrDefault(ctx context.Context, def error) error {
	r := t.Run(ctx)
	if r.IsFailure() {
		return r.Err()
	}
	return def
}

// Maybe runs the receiver and converts the success side to an optional.
func (t Task[T]) Maybe(ctx context.Context) optional.Value[T] {
	return t.Run(ctx).Maybe()
}

// ErrMaybe runs the receiver and converts the failure side to an optional.
func (t Task[T]) ErrMaybe(ctx context.Context) optional.Value[error] {
	return t.Run(ctx).ErrMaybe()
}
