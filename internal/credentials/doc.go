// Package credentials persists the pairing outcome between runs.
//
// The FileStore stores and loads the bridge address and application key
// as a small YAML file under the user config directory and exposes a
// Store interface the connect flow depends on. A missing file surfaces
// as ErrNotFound, which is what triggers first-run discovery and pairing.
package credentials
