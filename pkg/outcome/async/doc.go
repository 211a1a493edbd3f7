// Package async provides Task[T], a lazy and rerunnable asynchronous
// computation that settles into an outcome.Outcome[T].
//
// The central contract is failure unification at the Run boundary: an
// explicit escape through the per-run Helpers bundle, a plain (value, error)
// return and an unexpected panic all collapse into the same Failure channel.
// Run never panics, so downstream code only ever inspects the settled
// outcome.
//
// Key operations:
// - New/Lift/From/Go: construct a task without running anything
// - Run/Async: execute once, synchronously or on a channel
// - Map/Then/ThenTry/Join/Apply/Extend: compose the success channel
// - MapErr/Recover/Or/Swap: observe or transform the failure channel
// - Tee/TeeErr/Finally: side effects that leave the outcome untouched
// - Errs/Oks/Sequence/All: collection operators over task slices
//
// Tasks carry no run-once state; every Run re-invokes the producer, so
// producers with side effects must be safe to repeat.
package async
