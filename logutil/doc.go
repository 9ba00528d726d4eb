// Package logutil provides a structured logging abstraction built on slog.
//
// It wraps the standard library's slog package with a global logger,
// convenience functions, and environment-aware configuration.
//
// # Basic Usage
//
//	// Initialize logging (typically in main.go)
//	logutil.SetupLogger(debug, structured)
//
//	// Log messages at different levels
//	logutil.Debug("extracted url", "url", url)
//	logutil.Info("browser launched", "target", target)
//	logutil.Warn("notification failed", "error", err)
//	logutil.Error("launch failed", "error", err)
//
// # Debug Mode
//
// Debug logging can be enabled in two ways:
//   - Pass debug=true to SetupLogger
//   - Set ENVLINK_DEBUG=true in the environment
//
// # Structured Logging
//
// When structured=true is passed to SetupLogger, logs are output as JSON;
// otherwise a human-readable text format is used. Logs go to stderr so they
// never mix with command output.
package logutil
