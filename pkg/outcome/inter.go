package outcome

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a value or an error
type WithError[T any] interface {
	ValueProvider[T]
	// Err returns the error if the operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
}

var _ WithError[int] = Outcome[int]{}
