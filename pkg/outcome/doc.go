// Package outcome provides an immutable two-variant Outcome[T]: a success
// carrying a value or a failure carrying an error. It is the synchronous
// base the async package lifts from.
//
// Key operations:
// - Success/Failure/From: construct an outcome
// - Map/Then/BiMap: transform or switch the success channel
// - MapErr/Recover/Or: transform or recover the failure channel
// - Apply/Extend/Reduce: applicative and comonadic composition
// - Match/MatchAny: collapse into a final value via handlers
// - Maybe/ErrMaybe/FromMaybe: convert to and from optional.Value
// - Swap/Must/Equals: variant exchange, opt-in unwrap, structural equality
//
// All operations are pure; Must is the only one that can panic.
package outcome
