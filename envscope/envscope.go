package envscope

import (
	"errors"
	"fmt"
	"os"
	"sync"
)

// scopeMu serializes scoped regions. Two overlapping With calls must not
// interleave their save/restore steps against the shared environment table.
var scopeMu sync.Mutex

// Snapshot records the prior state of a set of environment variables.
// A nil entry marks a variable that was unset at capture time, which is
// distinct from a variable set to the empty string.
type Snapshot map[string]*string

// Capture records the current value, or absence, of each named variable.
func Capture(keys ...string) Snapshot {
	snap := make(Snapshot, len(keys))
	for _, key := range keys {
		if value, ok := os.LookupEnv(key); ok {
			v := value
			snap[key] = &v
		} else {
			snap[key] = nil
		}
	}
	return snap
}

// Restore puts every captured variable back to its recorded state.
// Variables that were unset at capture time are unset again. Restoration is
// attempted for every entry regardless of earlier failures; any errors are
// combined with errors.Join.
func (s Snapshot) Restore() error {
	var errs []error
	for key, prior := range s {
		var err error
		if prior == nil {
			err = os.Unsetenv(key)
		} else {
			err = os.Setenv(key, *prior)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to restore %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

// With applies the override map, runs the action exactly once, and restores
// the prior environment on all exit paths. The action's error is returned
// unchanged; if restoration itself fails, those errors are joined after it.
//
// If applying an override fails, the action is not run, the error is
// returned, and restoration is still attempted for every key in the
// override set.
func With(overrides map[string]string, action func() error) (err error) {
	scopeMu.Lock()
	defer scopeMu.Unlock()

	keys := make([]string, 0, len(overrides))
	for key := range overrides {
		keys = append(keys, key)
	}
	snap := Capture(keys...)

	// Deferred so restoration runs even if the action panics.
	defer func() {
		if restoreErr := snap.Restore(); restoreErr != nil {
			err = errors.Join(err, restoreErr)
		}
	}()

	for key, value := range overrides {
		if setErr := os.Setenv(key, value); setErr != nil {
			return fmt.Errorf("failed to set %s: %w", key, setErr)
		}
	}

	return action()
}
