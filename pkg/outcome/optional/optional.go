package optional

// Value holds either a present T or nothing.
type Value[T any] struct {
	value   T
	present bool
}

func Of[T any](v T) Value[T] {
	return Value[T]{value: v, present: true}
}

func Empty[T any]() Value[T] {
	return Value[T]{}
}

func (v Value[T]) IsPresent() bool {
	return v.present
}

func (v Value[T]) IsEmpty() bool {
	return !v.present
}

func (v Value[T]) Get() (T, bool) {
	return v.value, v.present
}

func (v Value[T]) OrElse(def T) T {
	if v.present {
		return v.value
	}
	return def
}
