package scan

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"hue-cli/internal/logger"
	"hue-cli/internal/render"
	"hue-cli/internal/service/common"
)

// Options configures the new-light scan.
type Options struct {
	common.Options

	// Wait is how long to let the bridge search before asking for results.
	Wait time.Duration
}

// DefaultWait matches how long the bridge keeps searching for new lights.
const DefaultWait = 40 * time.Second

// Run starts a new-light search, waits for it to finish and prints what the
// bridge found.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "scan")

	if opts.Wait <= 0 {
		opts.Wait = DefaultWait
	}

	client, err := common.Connect(ctx, &opts.Options)
	if err != nil {
		return err
	}

	if err = client.StartSearch(ctx); err != nil {
		return common.DescribeError(err)
	}

	_, _ = fmt.Fprintf(opts.ErrOut, "Initiated scan, waiting %s for the bridge to finish\n", opts.Wait)

	timer := time.NewTimer(opts.Wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		// The search result would be incomplete, report the interruption.
		return ctx.Err()
	case <-timer.C:
	}

	result, err := client.GetNewLights(ctx)
	if err != nil {
		return common.DescribeError(err)
	}

	logger.DebugKV(ctx, "Scan finished", "found", len(result.Lights), "last_scan", result.LastScan)

	if len(result.Lights) == 0 {
		_, _ = fmt.Fprintln(opts.Out, "No new lights found")

		return nil
	}

	table := render.NewTable("id", "name")

	for _, light := range result.Lights {
		table.AddRow(strconv.Itoa(light.ID), light.Name)
	}

	return table.Render(opts.Out)
}
