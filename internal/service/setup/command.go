package setup

import (
	"context"
	"fmt"

	"hue-cli/internal/logger"
	"hue-cli/internal/service/common"
)

// Options configures the register command.
type Options struct {
	common.Options
}

// Run pairs with the bridge even when credentials already exist, so a stale
// or revoked application key can be replaced.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "register")

	creds, err := common.PairAndSave(ctx, &opts.Options)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(opts.Out, "Paired with bridge %s\n", creds.BridgeAddress)

	return nil
}
