package credentials

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Store defines persistence operations for bridge credentials.
type Store interface {
	Load(ctx context.Context) (*Credentials, error)
	Save(ctx context.Context, creds *Credentials) error
}

// FileStore persists credentials as a small YAML file on disk.
type FileStore struct {
	// path is the filesystem location of the credentials file.
	path string
	// mu protects concurrent access to the credentials file.
	mu sync.Mutex
}

// NewFileStore creates a store that reads/writes YAML at the provided path.
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: filepath.Clean(path),
	}
}

// Path returns the location this store reads and writes.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads credentials from disk.
func (s *FileStore) Load(_ context.Context) (*Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contents, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read credentials file: %w", err)
	}

	var creds Credentials
	if err = yaml.Unmarshal(contents, &creds); err != nil {
		return nil, fmt.Errorf("decode credentials file: %w", err)
	}

	if err = Validate(&creds); err != nil {
		return nil, err
	}

	return &creds, nil
}

// Save writes credentials to disk, creating the parent directory when missing.
func (s *FileStore) Save(_ context.Context, creds *Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := Validate(creds); err != nil {
		return err
	}

	data, err := yaml.Marshal(creds)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(s.path), DefaultDirPermissions); err != nil {
		return fmt.Errorf("create credentials directory: %w", err)
	}

	// Restrict permissions, the file holds the bridge key.
	if err = os.WriteFile(s.path, data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write credentials file: %w", err)
	}

	return nil
}
