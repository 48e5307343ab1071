package cli

import (
	"time"

	"github.com/spf13/cobra"

	"hue-cli/internal/service/scan"
)

// newScanCommand searches the bridge for new lights.
func newScanCommand(opts *options) *cobra.Command {
	var wait time.Duration

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan for new lights.",
		Long: `Tells the bridge to search for new lights, waits for the search to
finish and prints what was found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return scan.Run(cmd.Context(), &scan.Options{
				Options: opts.forCommand(cmd),
				Wait:    wait,
			})
		},
	}

	cmd.Flags().DurationVarP(&wait, "wait", "w", scan.DefaultWait, "how long to wait for the search to finish")

	return cmd
}
