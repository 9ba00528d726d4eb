// Package cli builds the envlink command tree.
//
// Commands:
//   - open: extract the first HTTP URL from a local file and open it
//   - run: run a command under temporary environment variable overrides
//   - version: display build version information
package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/envlink/envlink/cliout"
	"github.com/envlink/envlink/logutil"
	"github.com/envlink/envlink/version"
)

// exitError carries a specific process exit code through cobra.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// ExitCode returns the process exit code for an error returned by Execute.
// A nil error is 0; errors carrying a child exit code keep it; everything
// else is 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}

// New builds the root envlink command.
func New(info *version.Info) *cobra.Command {
	var (
		debug      bool
		structured bool
		noColor    bool
		configPath string
	)

	root := &cobra.Command{
		Use:   "envlink",
		Short: "Open URLs embedded in local files and run commands under scoped environments",
		Long: `envlink is a small toolkit around two operations:

  open  reads a local file (or file:// URI), extracts the first HTTP URL
        it contains, and opens it in the system browser
  run   runs a command with temporary environment variable overrides,
        restoring the prior environment afterward`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logutil.SetupLogger(debug, structured)
			if noColor {
				cliout.SetColorEnabled(false)
			}
		},
	}

	// Accept underscore spellings like --dry_run across the whole tree.
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	pf := root.PersistentFlags()
	pf.BoolVar(&debug, "debug", false, "Enable debug logging")
	pf.BoolVar(&structured, "log-json", false, "Emit logs as JSON")
	pf.BoolVar(&noColor, "no-color", false, "Disable colored output")
	pf.StringVar(&configPath, "config", "", "Path to envlink.yaml (default: user config dir)")

	root.AddCommand(
		newOpenCommand(&configPath),
		newRunCommand(),
		version.NewCommand(info),
	)

	return root
}
