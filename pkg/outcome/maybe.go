package outcome

import "github.com/ib-77/outcome/pkg/outcome/optional"

// Maybe converts the success side: present on success, empty on failure.
func (r Outcome[T]) Maybe() optional.Value[T] {
	if r.isSuccess {
		return optional.Of(r.value)
	}
	return optional.Empty[T]()
}

// ErrMaybe converts the failure side: present on failure, empty on success.
func (r Outcome[T]) ErrMaybe() optional.Value[error] {
	if r.isSuccess {
		return optional.Empty[error]()
	}
	return optional.Of(r.err)
}

// FromMaybe lifts an optional back into an outcome, failing with onEmpty
// when the value is absent.
func FromMaybe[T any](m optional.Value[T], onEmpty error) Outcome[T] {
	if v, ok := m.Get(); ok {
		return Success(v)
	}
	return Failure[T](onEmpty)
}
