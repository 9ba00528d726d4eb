package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/envlink/envlink/browser"
	"github.com/envlink/envlink/cliout"
	"github.com/envlink/envlink/config"
	"github.com/envlink/envlink/linkfile"
	"github.com/envlink/envlink/logutil"
	"github.com/envlink/envlink/notify"
)

// notifier is swapped out in tests to avoid touching the desktop
// notification daemon.
var notifier notify.Notifier = notify.NewDesktop()

func newOpenCommand(configPath *string) *cobra.Command {
	var (
		target     string
		dryRun     bool
		withNotify bool
	)

	cmd := &cobra.Command{
		Use:   "open <file|file-url>",
		Short: "Extract the first HTTP URL from a file and open it in a browser",
		Long: `Reads the given file (a plain path or file:// URI), scans it for the
first token starting with "http:" up to the next double quote, and opens
that URL in the selected browser.

A file with no URL is not an error; the command exits 0 without opening
anything. An unreadable file exits non-zero.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logutil.NewLogger("open")

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if target == "" {
				target = cfg.Browser.Target
			}
			if !browser.IsValid(target) {
				return fmt.Errorf("invalid browser target %q, valid targets: %s",
					target, browser.FormatValidTargets())
			}

			ref := args[0]
			log.Debug("extracting url", "ref", ref)

			url, found, err := linkfile.ExtractFromFile(ref)
			if err != nil {
				return err
			}
			if !found {
				log.Debug("no url found", "ref", ref)
				cliout.Info("no URL found in %s", linkfile.NormalizeRef(ref))
				return nil
			}

			if dryRun {
				cliout.Plain("%s", url)
				return nil
			}

			if err := browser.Launch(browser.LaunchOptions{
				URL:    url,
				Target: browser.Target(target),
			}); err != nil {
				return err
			}

			cliout.Success("opened %s in %s", url, browser.TargetDisplayName(browser.Target(target)))

			if withNotify || cfg.Notifications {
				n := notify.Notification{
					Title:   "envlink",
					Message: fmt.Sprintf("Opened %s", url),
				}
				if err := notifier.Send(n); err != nil {
					// Notifications are best effort.
					log.Warn("notification failed", "error", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&target, "browser", "b", "",
		fmt.Sprintf("Browser target (%s)", browser.FormatValidTargets()))
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the extracted URL without opening it")
	cmd.Flags().BoolVar(&withNotify, "notify", false, "Send a desktop notification after opening")

	return cmd
}
