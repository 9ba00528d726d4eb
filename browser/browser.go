package browser

import (
	"fmt"
	"strings"

	"github.com/pkg/browser"

	"github.com/envlink/envlink/urlutil"
)

// Target represents the browser target for launching URLs.
type Target string

const (
	// TargetDefault uses the system default browser.
	TargetDefault Target = "default"
	// TargetSystem uses the system default browser (alias for TargetDefault).
	TargetSystem Target = "system"
	// TargetNone disables browser launching.
	TargetNone Target = "none"
)

// ValidTargets returns all valid browser target values.
func ValidTargets() []Target {
	return []Target{TargetDefault, TargetSystem, TargetNone}
}

// IsValid checks if a target string is valid.
func IsValid(target string) bool {
	t := Target(target)
	for _, valid := range ValidTargets() {
		if t == valid {
			return true
		}
	}
	return false
}

// ResolveTarget determines the actual browser target to use.
// Converts "default" to "system", and respects "none".
func ResolveTarget(target Target) Target {
	if target == TargetNone {
		return TargetNone
	}
	return TargetSystem
}

// opener is swapped out in tests to avoid spawning a real browser.
var opener = browser.OpenURL

// LaunchOptions contains options for launching a browser.
type LaunchOptions struct {
	// URL to open. Must use http or https.
	URL string
	// Target browser to use.
	Target Target
}

// Launch opens the URL in the browser selected by the target. The URL is
// validated first; TargetNone validates and then does nothing. A non-nil
// error means the URL never reached a browser.
func (o LaunchOptions) Launch() error {
	if err := urlutil.Validate(o.URL); err != nil {
		return fmt.Errorf("refusing to launch: %w", err)
	}

	if ResolveTarget(o.Target) == TargetNone {
		return nil
	}

	if err := opener(o.URL); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}

// Launch opens the specified URL using the given options.
func Launch(opts LaunchOptions) error {
	return opts.Launch()
}

// TargetDisplayName returns a human-readable name for the browser target.
func TargetDisplayName(target Target) string {
	switch ResolveTarget(target) {
	case TargetSystem, TargetDefault:
		return "default browser"
	case TargetNone:
		return "none"
	default:
		return string(target)
	}
}

// FormatValidTargets returns a comma-separated list of valid targets,
// suitable for flag help text.
func FormatValidTargets() string {
	targets := ValidTargets()
	strs := make([]string, len(targets))
	for i, t := range targets {
		strs[i] = string(t)
	}
	return strings.Join(strs, ", ")
}
