// Package hue implements a typed client for the Philips Hue bridge v1 REST API.
//
// The client covers the small resource surface this tool needs: reading
// lights and groups, renaming a light, switching a light on or off,
// scanning for new lights, and the link-button pairing handshake that
// issues application keys. Bridge discovery goes through the public
// N-UPnP endpoint.
//
// Failures map onto a sentinel taxonomy (ErrUnreachable, ErrUnauthorized,
// ErrNotFound, ErrPairingTimeout, ErrProtocol) so callers can react with
// errors.Is instead of parsing messages.
package hue
