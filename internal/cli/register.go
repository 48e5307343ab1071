package cli

import (
	"time"

	"github.com/spf13/cobra"

	"hue-cli/internal/hue"
	"hue-cli/internal/service/setup"
)

// newRegisterCommand pairs with the bridge and stores a fresh application key.
func newRegisterCommand(opts *options) *cobra.Command {
	var wait time.Duration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Pair with the bridge and store a new application key.",
		Long: `Pairs with the bridge even when credentials already exist.

Press the bridge's link button when prompted. The issued application key
replaces whatever is currently stored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			serviceOpts := opts.forCommand(cmd)
			serviceOpts.PairingWindow = wait

			return setup.Run(cmd.Context(), &setup.Options{
				Options: serviceOpts,
			})
		},
	}

	cmd.Flags().DurationVarP(&wait, "wait", "w", hue.DefaultPairingWindow, "how long to wait for the link button")

	return cmd
}
