//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"io"
	"os"
	"time"

	"hue-cli/internal/hue"
)

// Options carries the connection settings shared by every command.
type Options struct {
	// CredentialsPath overrides the default credentials file location.
	CredentialsPath string

	// Bridge overrides the stored or discovered bridge address.
	Bridge string

	// PairingWindow bounds the link button wait during pairing.
	PairingWindow time.Duration

	// Timeout bounds each bridge call when set.
	Timeout time.Duration

	// Out receives command results: tables and confirmations.
	Out io.Writer

	// ErrOut receives prompts and progress messages, keeping Out clean.
	ErrOut io.Writer
}

// normalize fills in the defaults for unset fields.
func (o *Options) normalize() {
	if o.Out == nil {
		o.Out = os.Stdout
	}

	if o.ErrOut == nil {
		o.ErrOut = os.Stderr
	}

	if o.PairingWindow <= 0 {
		o.PairingWindow = hue.DefaultPairingWindow
	}
}

// clientOptions converts shared options into hue client options.
func (o *Options) clientOptions() []hue.Option {
	if o.Timeout > 0 {
		return []hue.Option{hue.WithTimeout(o.Timeout)}
	}

	return nil
}
