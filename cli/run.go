package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/envlink/envlink/cmdutil"
	"github.com/envlink/envlink/envscope"
	"github.com/envlink/envlink/logutil"
)

func newRunCommand() *cobra.Command {
	var overrides []string

	cmd := &cobra.Command{
		Use:   "run [-e KEY=VALUE]... -- <command> [args...]",
		Short: "Run a command with temporary environment variable overrides",
		Long: `Applies the given environment overrides, runs the command, and restores
the prior environment afterward. Variables that were unset before the call
are unset again, even if the command fails.

The envlink process exits with the command's exit code.`,
		Example: `  envlink run -e HTTP_PROXY=http://localhost:8080 -- curl https://example.com
  envlink run -e NO_COLOR=1 -e TZ=UTC -- make test`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ovr, err := parseOverrides(overrides)
			if err != nil {
				return err
			}

			log := logutil.NewLogger("run")
			log.Debug("running command under scoped environment",
				"command", args[0], "overrides", len(ovr))

			runErr := envscope.With(ovr, func() error {
				return cmdutil.Run(cmd.Context(), args[0], args[1:], "")
			})
			if runErr != nil {
				return &exitError{code: cmdutil.ExitCode(runErr), err: runErr}
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&overrides, "env", "e", nil,
		"Environment override as KEY=VALUE (repeatable)")

	return cmd
}

// parseOverrides turns KEY=VALUE flag entries into an override map.
func parseOverrides(entries []string) (map[string]string, error) {
	result := make(map[string]string, len(entries))
	for _, entry := range entries {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid override %q, expected KEY=VALUE", entry)
		}
		result[key] = value
	}
	return result, nil
}
