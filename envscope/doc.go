// Package envscope provides scoped environment variable overrides.
//
// The core entry point is With, which applies a set of overrides around an
// action and guarantees the prior environment is restored on every exit
// path, including an action that returns an error or panics:
//
//	err := envscope.With(map[string]string{
//		"HTTP_PROXY": "http://localhost:8080",
//		"NO_COLOR":   "1",
//	}, func() error {
//		return doWork()
//	})
//
// Variables that were unset before the call are unset again afterward;
// variables that held a value (including the empty string) get that exact
// value back.
//
// # Explicit snapshots
//
// Capture and Snapshot.Restore expose the save/restore halves directly for
// callers that need to manage the lifecycle themselves:
//
//	snap := envscope.Capture("PATH", "HOME")
//	defer func() { _ = snap.Restore() }()
//
// # Concurrency
//
// The process environment table is process-wide state. With serializes
// scoped regions with an internal mutex so two overlapping override sets
// cannot interleave their save and restore steps. Capture and Restore on
// their own perform no locking.
package envscope
