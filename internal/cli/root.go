package cli

import (
	"context"
	"fmt"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"hue-cli/internal/logger"
	"hue-cli/internal/service/common"
	"hue-cli/internal/version"
)

// options collects the persistent flag values shared by every subcommand.
type options struct {
	// bridge is an explicit bridge address that skips discovery.
	bridge string
	// credentialsPath overrides the default credentials file location.
	credentialsPath string
	// logLevel is the minimum level for diagnostic output on stderr.
	logLevel string
}

// forCommand builds the shared service options from the persistent flags and
// the command's output streams.
func (o *options) forCommand(cmd *cobra.Command) common.Options {
	return common.Options{
		CredentialsPath: o.credentialsPath,
		Bridge:          o.bridge,
		Out:             cmd.OutOrStdout(),
		ErrOut:          cmd.ErrOrStderr(),
	}
}

// NewRootCommand assembles the hue command tree. A fresh tree per call keeps
// tests independent, flag state is not shared between invocations.
func NewRootCommand() *cobra.Command {
	opts := new(options)

	root := &cobra.Command{
		Use:   "hue",
		Short: "Helper for Philips Hue lights.",
		Long: `Command-line helper for Philips Hue lights.

Talks to a Hue bridge on the local network. On first use the tool discovers
the bridge, asks you to press its link button and stores the issued
application key, every later invocation reuses that key.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			level, ok := logger.ParseLogLevel(opts.logLevel)
			if !ok {
				return fmt.Errorf("unknown log level %q", opts.logLevel)
			}

			logger.SetLevel(level)

			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.bridge, "bridge", "b", "", "bridge address, skips discovery")
	root.PersistentFlags().StringVarP(&opts.credentialsPath, "credentials", "c", "", "path to the credentials file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(
		newListCommand(opts),
		newNameCommand(opts),
		newBlinkCommand(opts),
		newPowerCommand(opts, true),
		newPowerCommand(opts, false),
		newGroupsCommand(opts),
		newScanCommand(opts),
		newRegisterCommand(opts),
	)

	version.AttachCobraVersionCommand(root)

	return root
}

// Execute runs the CLI with signal-driven cancellation and returns the
// process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		return 1
	}

	return 0
}

// parseLightID converts a positional light id argument.
func parseLightID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("light id must be a number, got %q", arg)
	}

	return id, nil
}
