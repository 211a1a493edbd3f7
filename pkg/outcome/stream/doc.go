// Package stream lifts tasks over channels for simple fan-out/fan-in flows.
//
// Common usage:
// - Source: feed a slice of inputs into a channel
// - Run: execute a task-producing stage over the input with N worker lines
// - Gather: collect the settled outcomes back into a slice
//
// Each worker line settles one task per input via Run, so every delivered
// value is an outcome and the stream itself never fails.
package stream
