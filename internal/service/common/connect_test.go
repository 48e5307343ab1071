//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hue-cli/internal/credentials"
	"hue-cli/internal/hue"
	"hue-cli/internal/hue/huetest"
)

// testOptions wires connect options to the fake bridge and buffers.
func testOptions(credentialsPath string, bridge *huetest.Bridge) *Options {
	return &Options{
		CredentialsPath: credentialsPath,
		Bridge:          bridge.URL(),
		PairingWindow:   time.Second,
		Out:             new(bytes.Buffer),
		ErrOut:          new(bytes.Buffer),
	}
}

// TestConnect_UsesStoredCredentials connects without pairing when a credentials file exists.
func TestConnect_UsesStoredCredentials(t *testing.T) {
	t.Parallel()

	bridge := huetest.New(t)
	bridge.AddLight(1, "Some light", true, true)

	path := filepath.Join(t.TempDir(), "credentials.yaml")
	store := credentials.NewFileStore(path)
	require.NoError(t, store.Save(context.Background(), &credentials.Credentials{
		BridgeAddress:  bridge.URL(),
		ApplicationKey: bridge.Key(),
	}))

	client, err := Connect(context.Background(), testOptions(path, bridge))
	require.NoError(t, err)

	lights, err := client.GetLights(context.Background())
	require.NoError(t, err)
	require.Len(t, lights, 1)

	// No pairing request was made.
	require.Empty(t, bridge.LastDeviceType())
}

// TestConnect_FirstRunPairsAndSaves pairs, saves credentials and returns a working client.
func TestConnect_FirstRunPairsAndSaves(t *testing.T) {
	t.Parallel()

	bridge := huetest.New(t)
	bridge.AddLight(1, "Some light", true, true)
	bridge.PressLinkButton()

	path := filepath.Join(t.TempDir(), "credentials.yaml")
	opts := testOptions(path, bridge)

	client, err := Connect(context.Background(), opts)
	require.NoError(t, err)

	lights, err := client.GetLights(context.Background())
	require.NoError(t, err)
	require.Len(t, lights, 1)

	// Credentials were persisted for the next run.
	saved, err := credentials.NewFileStore(path).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, bridge.Key(), saved.ApplicationKey)
	require.Equal(t, bridge.URL(), saved.BridgeAddress)

	prompts := opts.ErrOut.(*bytes.Buffer).String()
	require.Contains(t, prompts, "Press the link button")
	require.Contains(t, prompts, "Saved credentials to "+path)
}

// TestConnect_FirstRunTimeout surfaces ErrPairingTimeout when the button stays unpressed.
func TestConnect_FirstRunTimeout(t *testing.T) {
	t.Parallel()

	bridge := huetest.New(t)

	opts := testOptions(filepath.Join(t.TempDir(), "credentials.yaml"), bridge)
	opts.PairingWindow = 200 * time.Millisecond

	_, err := Connect(context.Background(), opts)
	require.ErrorIs(t, err, hue.ErrPairingTimeout)
}

// TestConnect_SaveFailureStillConnects keeps the command going when persisting fails.
func TestConnect_SaveFailureStillConnects(t *testing.T) {
	t.Parallel()

	bridge := huetest.New(t)
	bridge.AddLight(1, "Some light", true, true)
	bridge.PressLinkButton()

	// A regular file as parent directory makes Save fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	opts := testOptions(filepath.Join(blocker, "credentials.yaml"), bridge)

	client, err := Connect(context.Background(), opts)
	require.NoError(t, err)

	lights, err := client.GetLights(context.Background())
	require.NoError(t, err)
	require.Len(t, lights, 1)
}

// TestConnect_BridgeOverridesStoredAddress prefers the explicit address over the stored one.
func TestConnect_BridgeOverridesStoredAddress(t *testing.T) {
	t.Parallel()

	bridge := huetest.New(t)
	bridge.AddLight(1, "Some light", true, true)

	// The stored address points nowhere; the override must win.
	path := filepath.Join(t.TempDir(), "credentials.yaml")
	store := credentials.NewFileStore(path)
	require.NoError(t, store.Save(context.Background(), &credentials.Credentials{
		BridgeAddress:  "192.0.2.1",
		ApplicationKey: bridge.Key(),
	}))

	client, err := Connect(context.Background(), testOptions(path, bridge))
	require.NoError(t, err)
	require.Equal(t, bridge.URL(), client.Address())
}

// TestDescribeError adds the re-pairing hint only for unauthorized failures.
func TestDescribeError(t *testing.T) {
	t.Parallel()

	err := DescribeError(hue.ErrUnauthorized)
	require.ErrorIs(t, err, hue.ErrUnauthorized)
	require.Contains(t, err.Error(), "hue register")

	passthrough := DescribeError(hue.ErrNotFound)
	require.Same(t, hue.ErrNotFound, passthrough)
}
