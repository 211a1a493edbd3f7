package outcome

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Outcome is an immutable two-variant value: a success carrying T or a
// failure carrying an error. Exactly one variant is populated; a value is
// never mutated after construction.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

func Success[T any](v T) Outcome[T] {
	return Outcome[T]{
		value:     v,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T any](err error) Outcome[T] {
	return Outcome[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// From bridges an idiomatic (T, error) return into an Outcome.
func From[T any](v T, err error) Outcome[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

// ValueError carries a success value across to the failure channel.
// Swap produces it; Must re-raises it verbatim.
type ValueError[T any] struct {
	Value T
}

func (e *ValueError[T]) Error() string {
	return fmt.Sprintf("outcome: success value on failure channel: %v", e.Value)
}

func (r Outcome[T]) Value() T {
	return r.value
}

func (r Outcome[T]) Err() error {
	return r.err
}

func (r Outcome[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Outcome[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r Outcome[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Outcome[T]) Id() uuid.UUID {
	return r.id
}

// MapErr transforms the failure's error; identity on success.
func (r Outcome[T]) MapErr(f func(err error) error) Outcome[T] {
	if r.isSuccess {
		return r
	}
	return Failure[T](f(r.err))
}

// Recover delegates a failure to f; a success passes through unchanged.
func (r Outcome[T]) Recover(f func(err error) Outcome[T]) Outcome[T] {
	if r.isSuccess {
		return r
	}
	return f(r.err)
}

// Or returns the receiver when it is a success, otherwise other. When both
// are failures the argument's failure survives, not the receiver's.
func (r Outcome[T]) Or(other Outcome[T]) Outcome[T] {
	if r.isSuccess {
		return r
	}
	return other
}

// Swap exchanges the variants: a failure's error becomes the success
// payload, a success value crosses over wrapped in *ValueError[T].
func (r Outcome[T]) Swap() Outcome[error] {
	if r.isSuccess {
		return Failure[error](&ValueError[T]{Value: r.value})
	}
	return Success(r.err)
}

// Must returns the success value or panics with the stored error. This is
// the only operation that converts a failure back into a raised fault.
func (r Outcome[T]) Must() T {
	if r.isSuccess {
		return r.value
	}
	if IsNil(r.err) {
		panic(errors.New("outcome: Must called on a Failure"))
	}
	panic(r.err)
}

// Equals reports whether both outcomes hold the same variant with
// structurally equal payload. Provenance stamps are not compared.
func (r Outcome[T]) Equals(other Outcome[T]) bool {
	if r.isSuccess != other.isSuccess {
		return false
	}
	if r.isSuccess {
		return reflect.DeepEqual(r.value, other.value)
	}
	return equalErrors(r.err, other.err)
}

func equalErrors(a, b error) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}
	if a == b || errors.Is(a, b) || errors.Is(b, a) {
		return true
	}
	return reflect.DeepEqual(a, b)
}
