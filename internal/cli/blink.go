package cli

import (
	"github.com/spf13/cobra"

	"hue-cli/internal/service/lights"
)

// newBlinkCommand toggles one light until interrupted.
func newBlinkCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "blink <id>",
		Short: "Blink a light until interrupted.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseLightID(args[0])
			if err != nil {
				return err
			}

			return lights.Blink(cmd.Context(), &lights.Options{
				Options: opts.forCommand(cmd),
				ID:      id,
			})
		},
	}
}
