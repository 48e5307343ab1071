package hue

import (
	"context"
	"fmt"

	"github.com/amimof/huego"
	"github.com/samber/lo"

	"hue-cli/internal/logger"
)

// Discover locates a Hue bridge on the local network via the public
// N-UPnP discovery endpoint and returns its address. When several
// bridges answer, the first one wins; use an explicit address to talk
// to a specific bridge.
func Discover(ctx context.Context) (string, error) {
	bridges, err := huego.DiscoverAllContext(ctx)
	if err != nil {
		return "", fmt.Errorf("bridge discovery: %w", err)
	}

	if len(bridges) == 0 {
		return "", fmt.Errorf("bridge discovery: %w: no bridges found", ErrUnreachable)
	}

	addresses := lo.Map(bridges, func(b huego.Bridge, _ int) string {
		return b.Host
	})

	logger.DebugKV(ctx, "Discovered bridges", "addresses", addresses)

	return addresses[0], nil
}
