package outcome

// Map applies f to the success value; a failure passes through unchanged.
func Map[In, Out any](r Outcome[In], f func(v In) Out) Outcome[Out] {
	if r.IsSuccess() {
		return Success(f(r.Value()))
	}
	return Failure[Out](r.Err())
}

// Then delegates a success to f; a failure passes through unchanged.
func Then[In, Out any](r Outcome[In], f func(v In) Outcome[Out]) Outcome[Out] {
	if r.IsSuccess() {
		return f(r.Value())
	}
	return Failure[Out](r.Err())
}

// BiMap transforms both channels: onErr on a failure, onSuccess on a success.
func BiMap[In, Out any](r Outcome[In], onErr func(err error) error, onSuccess func(v In) Out) Outcome[Out] {
	if r.IsSuccess() {
		return Success(onSuccess(r.Value()))
	}
	return Failure[Out](onErr(r.Err()))
}

// Apply applies a wrapped function to a wrapped value. The function side is
// checked first: its failure wins even when the value side also failed.
func Apply[In, Out any](r Outcome[In], rf Outcome[func(In) Out]) Outcome[Out] {
	if rf.IsFailure() {
		return Failure[Out](rf.Err())
	}
	if r.IsFailure() {
		return Failure[Out](r.Err())
	}
	return Success(rf.Value()(r.Value()))
}

// Extend passes a failure through and wraps f applied to the whole outcome
// on success.
func Extend[In, Out any](r Outcome[In], f func(r Outcome[In]) Out) Outcome[Out] {
	if r.IsSuccess() {
		return Success(f(r))
	}
	return Failure[Out](r.Err())
}

// Reduce folds the success value into initial; a failure returns initial
// unchanged.
func Reduce[T, A any](r Outcome[T], f func(acc A, v T) A, initial A) A {
	if r.IsSuccess() {
		return f(initial, r.Value())
	}
	return initial
}

// Match collapses the outcome into a final value via one handler per variant.
func Match[T, R any](r Outcome[T], onFailure func(err error) R, onSuccess func(v T) R) R {
	if r.IsSuccess() {
		return onSuccess(r.Value())
	}
	return onFailure(r.Err())
}

// MatchAny collapses the outcome with a single catch-all handler that
// receives the whole value.
func MatchAny[T, R any](r Outcome[T], handle func(r Outcome[T]) R) R {
	return handle(r)
}
