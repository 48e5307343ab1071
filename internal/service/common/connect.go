//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"

	"hue-cli/internal/credentials"
	"hue-cli/internal/hue"
	"hue-cli/internal/logger"
)

// Connect returns a client for the stored bridge, running the first-run
// discovery and pairing flow when no credentials exist yet.
func Connect(ctx context.Context, opts *Options) (*hue.Client, error) {
	opts.normalize()

	path, err := storePath(opts)
	if err != nil {
		return nil, err
	}

	var store credentials.Store = credentials.NewFileStore(path)

	creds, err := store.Load(ctx)

	switch {
	case err == nil:
	case errors.Is(err, credentials.ErrNotFound):
		logger.InfoKV(ctx, "No stored credentials, starting pairing", "path", path)

		creds, err = PairAndSave(ctx, opts)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	// An explicit bridge address wins over whatever is stored.
	if opts.Bridge != "" {
		creds.BridgeAddress = opts.Bridge
	}

	return hue.NewClient(creds.BridgeAddress, creds.ApplicationKey, opts.clientOptions()...), nil
}

// PairAndSave runs discovery and pairing unconditionally and persists
// the resulting credentials. Used by the register command and by
// Connect on first run.
func PairAndSave(ctx context.Context, opts *Options) (*credentials.Credentials, error) {
	opts.normalize()

	path, err := storePath(opts)
	if err != nil {
		return nil, err
	}

	creds, err := pair(ctx, opts)
	if err != nil {
		return nil, err
	}

	var store credentials.Store = credentials.NewFileStore(path)

	if err = store.Save(ctx, creds); err != nil {
		// The command still works with in-memory credentials, the user
		// just has to pair again next time.
		logger.WarnKV(ctx, "Could not save credentials", "path", path, "error", err)
	} else {
		_, _ = fmt.Fprintf(opts.ErrOut, "Saved credentials to %s\n", path)
	}

	return creds, nil
}

// pair resolves a bridge address and asks it for an application key.
func pair(ctx context.Context, opts *Options) (*credentials.Credentials, error) {
	address := opts.Bridge
	if address == "" {
		_, _ = fmt.Fprintln(opts.ErrOut, "Searching for a bridge...")

		discovered, err := hue.Discover(ctx)
		if err != nil {
			return nil, err
		}

		address = discovered
	}

	_, _ = fmt.Fprintf(opts.ErrOut, "Press the link button on bridge %s (waiting up to %s)\n", address, opts.PairingWindow)

	key, err := hue.Pair(ctx, address, DeviceType(), opts.PairingWindow, opts.clientOptions()...)
	if err != nil {
		return nil, fmt.Errorf("pair with bridge %s: %w", address, err)
	}

	return &credentials.Credentials{
		BridgeAddress:  address,
		ApplicationKey: key,
	}, nil
}

// storePath picks the credentials location, preferring the explicit override.
func storePath(opts *Options) (string, error) {
	if opts.CredentialsPath != "" {
		return opts.CredentialsPath, nil
	}

	return credentials.DefaultPath()
}

// DescribeError augments well-known bridge failures with a recovery
// hint. Other errors pass through unchanged.
func DescribeError(err error) error {
	if errors.Is(err, hue.ErrUnauthorized) {
		return fmt.Errorf("%w (run 'hue register' to pair with the bridge again)", err)
	}

	return err
}
