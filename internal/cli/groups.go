package cli

import (
	"github.com/spf13/cobra"

	"hue-cli/internal/service/groups"
)

// newGroupsCommand lists all groups known to the bridge.
func newGroupsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List all known groups.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return groups.List(cmd.Context(), &groups.Options{
				Options: opts.forCommand(cmd),
			})
		},
	}
}
