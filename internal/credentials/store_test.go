package credentials

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFileStore_NotFound verifies Load returns ErrNotFound for a missing file.
func TestFileStore_NotFound(t *testing.T) {
	t.Parallel()

	store := NewFileStore(filepath.Join(t.TempDir(), "missing.yaml"))

	creds, err := store.Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
	require.Nil(t, creds)
}

// TestFileStore_SaveLoad_Roundtrip ensures Save followed by Load returns equal credentials.
func TestFileStore_SaveLoad_Roundtrip(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "nested", "credentials.yaml")
	store := NewFileStore(file)

	want := &Credentials{
		BridgeAddress:  "192.168.1.5",
		ApplicationKey: "8kMlQrXenpChJQxBbFFcqNHLqUjLxoAhQ9kGfhbR",
	}

	require.NoError(t, store.Save(context.Background(), want))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)

	info, err := os.Stat(file)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(DefaultFilePermissions), info.Mode().Perm())
}

// TestFileStore_CorruptFile reports a decode error rather than ErrNotFound.
func TestFileStore_CorruptFile(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "credentials.yaml")
	require.NoError(t, os.WriteFile(file, []byte("\tnot yaml"), 0o600))

	store := NewFileStore(file)

	_, err := store.Load(context.Background())
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}

// TestValidate checks required fields.
func TestValidate(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(nil))

	// Missing key.
	creds := &Credentials{
		BridgeAddress: "192.168.1.5",
	}
	require.Error(t, Validate(creds))

	// Missing address.
	creds = &Credentials{
		ApplicationKey: "some-key",
	}
	require.Error(t, Validate(creds))

	creds = &Credentials{
		BridgeAddress:  "192.168.1.5",
		ApplicationKey: "some-key",
	}
	require.NoError(t, Validate(creds))
}

// TestDefaultPath points inside a "hue" config directory.
func TestDefaultPath(t *testing.T) {
	t.Parallel()

	path, err := DefaultPath()
	require.NoError(t, err)
	require.True(t, filepath.IsAbs(path))
	require.Equal(t, filepath.Join(configDirName, DefaultFilename), filepath.Join(filepath.Base(filepath.Dir(path)), filepath.Base(path)))
}
