// Package optional provides a minimal present/absent Value[T]. It exists
// as the conversion boundary for outcome.Maybe/ErrMaybe and carries no
// combinator algebra of its own.
package optional
