// Package setup implements the register command, which forces a new pairing
// with the bridge regardless of any stored credentials.
package setup
