package cli

import (
	"github.com/spf13/cobra"

	"hue-cli/internal/service/lights"
)

// newNameCommand renames a single light.
func newNameCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "name <id> <name>",
		Short: "Set a light's name.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseLightID(args[0])
			if err != nil {
				return err
			}

			return lights.Rename(cmd.Context(), &lights.Options{
				Options: opts.forCommand(cmd),
				ID:      id,
				Name:    args[1],
			})
		},
	}
}
