package cli

import (
	"github.com/spf13/cobra"

	"hue-cli/internal/service/lights"
)

// newListCommand lists all lights known to the bridge.
func newListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all known lights.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return lights.List(cmd.Context(), &lights.Options{
				Options: opts.forCommand(cmd),
			})
		},
	}
}
