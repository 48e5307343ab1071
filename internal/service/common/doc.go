// Package common holds helpers shared by the command services.
//
// It owns the connect flow: loading stored credentials, running the
// first-run discovery and pairing handshake when none exist, and
// constructing the bridge client with shared options. It also derives
// the devicetype string the bridge records for issued keys.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
