package version

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/envlink/envlink/cliout"
)

// NewCommand creates a version command that displays version info.
func NewCommand(info *Info) *cobra.Command {
	var (
		quiet      bool
		jsonOutput bool
	)
	cmd := &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Display %s version information", info.Name),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput {
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				cliout.Plain("%s", data)
				return nil
			}

			if quiet {
				cliout.Plain("%s", info.Version)
				return nil
			}

			cliout.Header(fmt.Sprintf("%s Version", info.Name))
			cliout.Label("Version", info.Version)
			cliout.Label("Build Date", info.BuildDate)
			cliout.Label("Git Commit", info.GitCommit)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print version number")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print version info as JSON")
	return cmd
}
