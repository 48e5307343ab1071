package hue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"hue-cli/internal/logger"
)

const (
	// DefaultPairingWindow is how long Pair waits for the link button.
	DefaultPairingWindow = 30 * time.Second
	// pairingInterval is the delay between key requests while waiting.
	pairingInterval = 1 * time.Second
)

// Pair requests an application key from the bridge at address.
// The bridge only issues keys shortly after its physical link button is
// pressed; until then every request is refused and Pair keeps asking
// once per second. When the window expires without a press, Pair fails
// with ErrPairingTimeout. Any other bridge error aborts immediately.
func Pair(ctx context.Context, address, devicetype string, window time.Duration, opts ...Option) (string, error) {
	if window <= 0 {
		window = DefaultPairingWindow
	}

	// Pairing happens before a key exists, hence the empty key.
	client := NewClient(address, "", opts...)

	// attempt asks the bridge once for a key and reports an empty key
	// while the link button has not been pressed yet.
	attempt := func() (string, error) {
		key, err := client.createUser(ctx, devicetype)
		if err != nil {
			if errors.Is(err, ErrLinkButtonNotPressed) {
				logger.Debug(ctx, "Link button not pressed yet, still waiting")
				return "", nil
			}

			return "", err
		}

		return key, nil
	}

	// Ask immediately before starting the polling loop.
	key, err := attempt()
	if err != nil {
		return "", err
	}

	if key != "" {
		return key, nil
	}

	deadline := time.NewTimer(window)
	defer deadline.Stop()

	ticker := time.NewTicker(pairingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-deadline.C:
			return "", fmt.Errorf("link button was not pressed within %s: %w", window, ErrPairingTimeout)
		case <-ticker.C:
			key, err := attempt()
			if err != nil {
				return "", err
			}

			if key != "" {
				return key, nil
			}
		}
	}
}

// createUser performs one whitelist request against the bare /api endpoint.
func (c *Client) createUser(ctx context.Context, devicetype string) (string, error) {
	payload := struct {
		DeviceType string `json:"devicetype"`
	}{DeviceType: devicetype}

	data, err := c.do(ctx, http.MethodPost, nil, payload)
	if err != nil {
		return "", err
	}

	replies, err := decodeReplies(data)
	if err != nil {
		return "", err
	}

	for _, reply := range replies {
		raw, ok := reply.Success["username"]
		if !ok {
			continue
		}

		var username string
		if err = json.Unmarshal(raw, &username); err != nil {
			return "", fmt.Errorf("%w: %v", ErrProtocol, err)
		}

		return username, nil
	}

	return "", fmt.Errorf("%w: no username in pairing response", ErrProtocol)
}
