package groups

import (
	"context"
	"strconv"
	"strings"

	"hue-cli/internal/logger"
	"hue-cli/internal/render"
	"hue-cli/internal/service/common"
)

// Options configures the group listing.
type Options struct {
	common.Options
}

// List prints the group table: id, name and the member light ids.
func List(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "groups")

	client, err := common.Connect(ctx, &opts.Options)
	if err != nil {
		return err
	}

	groups, err := client.GetGroups(ctx)
	if err != nil {
		return common.DescribeError(err)
	}

	logger.DebugKV(ctx, "Fetched groups", "count", len(groups))

	table := render.NewTable("id", "name", "lights")

	for _, group := range groups {
		table.AddRow(
			strconv.Itoa(group.ID),
			group.Name,
			strings.Join(group.Lights, ","),
		)
	}

	return table.Render(opts.Out)
}
