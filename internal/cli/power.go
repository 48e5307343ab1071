package cli

import (
	"github.com/spf13/cobra"

	"hue-cli/internal/service/lights"
)

// newPowerCommand switches every light on or off, one command per direction.
func newPowerCommand(opts *options, on bool) *cobra.Command {
	use, short := "all-off", "Turn all lights off."
	if on {
		use, short = "all-on", "Turn all lights on."
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return lights.SetAll(cmd.Context(), &lights.Options{
				Options: opts.forCommand(cmd),
				On:      on,
			})
		},
	}
}
