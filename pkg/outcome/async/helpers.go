package async

import (
	"context"
	"errors"
	"fmt"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Helpers is the per-run bundle handed to a producer. It lets the producer
// lift outcomes into the run and escape immediately with a failure. One
// fresh bundle exists per Run and must not outlive the run that received it.
type Helpers struct {
	ctx context.Context
}

// Context returns the context the current run was started with.
func (h *Helpers) Context() context.Context {
	return h.ctx
}

// escape is the tagged signal Throw raises. It is recovered at exactly one
// point, the Run boundary, which also folds untagged panics the same way.
type escape struct {
	err error
}

// Throw aborts the current run with the given failure. It never returns.
func (h *Helpers) Throw(err error) {
	if outcome.IsNil(err) {
		err = errors.New("async: Throw called with a nil error")
	}
	panic(escape{err: err})
}

// Await unwraps a success or aborts the run with the failure's error.
func Await[T any](h *Helpers, r outcome.Outcome[T]) T {
	if r.IsFailure() {
		h.Throw(r.Err())
	}
	return r.Value()
}

// AwaitTask runs t within the current run and unwraps its outcome the same
// way Await does.
func AwaitTask[T any](h *Helpers, t Task[T]) T {
	return Await(h, t.Run(h.ctx))
}

// Check unwraps an idiomatic (value, error) pair, aborting on a non-nil
// error.
func Check[T any](h *Helpers, v T, err error) T {
	if err != nil {
		h.Throw(err)
	}
	return v
}

func foldRecovered(a any) error {
	switch e := a.(type) {
	case escape:
		return e.err
	case error:
		return e
	default:
		return fmt.Errorf("%v", e)
	}
}
