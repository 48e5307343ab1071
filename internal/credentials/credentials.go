package credentials

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Credentials identify one paired bridge: where it lives and the
// application key it issued during pairing.
type Credentials struct {
	// BridgeAddress is the bridge IP or hostname on the local network.
	BridgeAddress string `yaml:"bridge_address"`
	// ApplicationKey is the opaque token the bridge issued during pairing.
	ApplicationKey string `yaml:"application_key"`
}

const (
	// DefaultFilename is the credentials file name under the config directory.
	DefaultFilename = "credentials.yaml"
	// configDirName is the per-user directory holding this tool's files.
	configDirName = "hue"

	// DefaultFilePermissions keep the stored key private to the user.
	DefaultFilePermissions = 0o600
	// DefaultDirPermissions apply when the config directory must be created.
	DefaultDirPermissions = 0o700
)

var (
	// ErrNotFound is returned when no credentials file exists yet.
	ErrNotFound = errors.New("credentials not found")

	// errCredentialsNotSet is returned when a nil credentials value is provided.
	errCredentialsNotSet = errors.New("credentials are not set")
	// errBridgeAddressRequired is returned when the bridge address is missing.
	errBridgeAddressRequired = errors.New("bridge address must be provided")
	// errApplicationKeyRequired is returned when the application key is missing.
	errApplicationKeyRequired = errors.New("application key must be provided")
)

// DefaultPath returns the standard credentials location under the user
// config directory, e.g. ~/.config/hue/credentials.yaml on Linux.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}

	return filepath.Join(base, configDirName, DefaultFilename), nil
}

// Validate checks the provided credentials for required fields.
func Validate(creds *Credentials) error {
	if creds == nil {
		return errCredentialsNotSet
	}

	if creds.BridgeAddress == "" {
		return errBridgeAddressRequired
	}

	if creds.ApplicationKey == "" {
		return errApplicationKeyRequired
	}

	return nil
}
