package hue

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreachable is returned when the bridge does not respond at all.
	ErrUnreachable = errors.New("bridge is not responding")
	// ErrUnauthorized is returned when the bridge rejects the application key.
	ErrUnauthorized = errors.New("bridge rejected the application key")
	// ErrNotFound is returned when no light with the requested id exists.
	ErrNotFound = errors.New("light not found")
	// ErrLinkButtonNotPressed is the per-request pairing refusal.
	// Pair keeps polling through it until its window expires.
	ErrLinkButtonNotPressed = errors.New("link button not pressed")
	// ErrPairingTimeout is returned when the link button stays unpressed
	// for the whole pairing window.
	ErrPairingTimeout = errors.New("pairing timed out")
	// ErrProtocol is returned for responses that do not look like they
	// came from a Hue bridge at all.
	ErrProtocol = errors.New("unexpected bridge response")
)

// Error type codes of the v1 API.
const (
	errTypeUnauthorized   = 1
	errTypeNotFound       = 3
	errTypeLinkNotPressed = 101
)

// APIError is an error entry from a bridge response body. The bridge
// reports failures inside an HTTP 200 payload, one entry per failed
// operation.
type APIError struct {
	// Type is the numeric bridge error code.
	Type int `json:"type"`
	// Address is the resource path the error refers to.
	Address string `json:"address"`
	// Description is the bridge's human-readable explanation.
	Description string `json:"description"`
}

// Error renders the bridge's own description with its error code.
func (e *APIError) Error() string {
	return fmt.Sprintf("bridge error %d at %q: %s", e.Type, e.Address, e.Description)
}

// Unwrap maps well-known bridge error codes onto the package sentinels
// so callers can match with errors.Is through wrapped chains.
func (e *APIError) Unwrap() error {
	switch e.Type {
	case errTypeUnauthorized:
		return ErrUnauthorized
	case errTypeNotFound:
		return ErrNotFound
	case errTypeLinkNotPressed:
		return ErrLinkButtonNotPressed
	default:
		return nil
	}
}
