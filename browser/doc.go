// Package browser launches URLs in the user's web browser.
//
// The actual launch is delegated to github.com/pkg/browser, which knows the
// platform "open URL" commands (cmd /c start on Windows, open on macOS,
// xdg-open on Linux). The launch is fire-and-forget: the helper command is
// expected to hand the URL to the browser and return, and this package does
// not track or wait on the browser process itself.
//
// URLs are validated before launch; only http and https schemes are
// accepted, which keeps file:// and javascript: tokens from ever reaching a
// shell command.
//
// # Targets
//
// Callers select a Target: TargetDefault and TargetSystem both mean the
// system default browser, TargetNone disables launching entirely (useful
// for dry runs and tests).
//
//	err := browser.Launch(browser.LaunchOptions{
//		URL:    "http://example.com",
//		Target: browser.TargetDefault,
//	})
package browser
