package hue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"hue-cli/internal/logger"
)

// DefaultTimeout bounds each HTTP round trip to the bridge.
const DefaultTimeout = 30 * time.Second

// Client talks to a single Hue bridge over its v1 REST API.
// Every call is a single attempt; there is no retry or backoff, the
// caller decides whether to run the command again.
type Client struct {
	// address is the bridge IP, hostname or full URL.
	address string
	// key is the application key issued during pairing. Empty during pairing itself.
	key string

	// httpClient performs the actual requests.
	httpClient *http.Client
}

// Option configures client behaviour.
type Option func(*Client)

// WithTimeout sets a per-request timeout for bridge calls.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient creates a client for the bridge at address using the given
// application key.
func NewClient(address, key string, opts ...Option) *Client {
	client := &Client{
		address:    address,
		key:        key,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Address returns the bridge address this client talks to.
func (c *Client) Address() string {
	return c.address
}

// apiURL builds a v1 endpoint URL. The application key travels in the
// URL path in the v1 scheme. Bare addresses get the plain http scheme
// the bridge serves on the LAN.
func (c *Client) apiURL(endpoint ...string) string {
	base := c.address
	if !strings.Contains(base, "://") {
		base = "http://" + base
	}

	parts := append([]string{"api", c.key}, endpoint...)

	return base + "/" + path.Join(parts...)
}

// do issues one request and returns the raw response body.
// Transport failures map to ErrUnreachable, non-200 statuses to
// ErrProtocol; the bridge reports its own errors inside 200 bodies.
func (c *Client) do(ctx context.Context, method string, endpoint []string, payload any) ([]byte, error) {
	var body io.Reader

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}

		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiURL(endpoint...), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// The key is part of the URL, so log only the endpoint path.
	logger.DebugKV(ctx, "Bridge request", "method", method, "path", path.Join(endpoint...))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Cancellation is the caller's doing, not a bridge failure.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %s", ErrProtocol, resp.Status)
	}

	return data, nil
}

// apiReply is one element of the bridge's response array.
type apiReply struct {
	// Success maps changed resource paths to their new values.
	Success map[string]json.RawMessage `json:"success"`
	// Error is set when the corresponding operation failed.
	Error *APIError `json:"error"`
}

// decodeReplies parses a v1 response array and surfaces the first error entry.
func decodeReplies(data []byte) ([]apiReply, error) {
	var replies []apiReply
	if err := json.Unmarshal(data, &replies); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProtocol, err)
	}

	for _, reply := range replies {
		if reply.Error != nil {
			return nil, reply.Error
		}
	}

	return replies, nil
}

// decodeResource parses a resource read into dst. Reads normally return
// an object, but the bridge reports failures (bad key, unknown id) as
// the same error array mutations use, so that shape is detected first.
func decodeResource(data []byte, dst any) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if _, err := decodeReplies(data); err != nil {
			return err
		}

		return fmt.Errorf("%w: expected a resource object, got an array", ErrProtocol)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrProtocol, err)
	}

	return nil
}

// GetLights fetches all lights known to the bridge, sorted by id.
func (c *Client) GetLights(ctx context.Context) ([]Light, error) {
	data, err := c.do(ctx, http.MethodGet, []string{"lights"}, nil)
	if err != nil {
		return nil, fmt.Errorf("get lights: %w", err)
	}

	var raw map[string]Light
	if err = decodeResource(data, &raw); err != nil {
		return nil, fmt.Errorf("get lights: %w", err)
	}

	lights := make([]Light, 0, len(raw))

	for id, light := range raw {
		numericID, err := strconv.Atoi(id)
		if err != nil {
			return nil, fmt.Errorf("get lights: %w: light id %q is not numeric", ErrProtocol, id)
		}

		light.ID = numericID
		lights = append(lights, light)
	}

	sort.Slice(lights, func(i, j int) bool {
		return lights[i].ID < lights[j].ID
	})

	return lights, nil
}

// GetLight fetches a single light by id.
func (c *Client) GetLight(ctx context.Context, id int) (*Light, error) {
	data, err := c.do(ctx, http.MethodGet, []string{"lights", strconv.Itoa(id)}, nil)
	if err != nil {
		return nil, fmt.Errorf("get light %d: %w", id, err)
	}

	var light Light
	if err = decodeResource(data, &light); err != nil {
		return nil, fmt.Errorf("get light %d: %w", id, err)
	}

	light.ID = id

	return &light, nil
}

// RenameLight updates the name attribute of one light. Nothing else
// about the light is touched.
func (c *Client) RenameLight(ctx context.Context, id int, name string) error {
	payload := struct {
		Name string `json:"name"`
	}{Name: name}

	data, err := c.do(ctx, http.MethodPut, []string{"lights", strconv.Itoa(id)}, payload)
	if err != nil {
		return fmt.Errorf("rename light %d: %w", id, err)
	}

	if _, err = decodeReplies(data); err != nil {
		return fmt.Errorf("rename light %d: %w", id, err)
	}

	return nil
}

// SetLightState switches one light on or off.
func (c *Client) SetLightState(ctx context.Context, id int, on bool) error {
	payload := struct {
		On bool `json:"on"`
	}{On: on}

	data, err := c.do(ctx, http.MethodPut, []string{"lights", strconv.Itoa(id), "state"}, payload)
	if err != nil {
		return fmt.Errorf("set light %d state: %w", id, err)
	}

	if _, err = decodeReplies(data); err != nil {
		return fmt.Errorf("set light %d state: %w", id, err)
	}

	return nil
}

// GetGroups fetches all groups known to the bridge, sorted by id.
func (c *Client) GetGroups(ctx context.Context) ([]Group, error) {
	data, err := c.do(ctx, http.MethodGet, []string{"groups"}, nil)
	if err != nil {
		return nil, fmt.Errorf("get groups: %w", err)
	}

	var raw map[string]Group
	if err = decodeResource(data, &raw); err != nil {
		return nil, fmt.Errorf("get groups: %w", err)
	}

	groups := make([]Group, 0, len(raw))

	for id, group := range raw {
		numericID, err := strconv.Atoi(id)
		if err != nil {
			return nil, fmt.Errorf("get groups: %w: group id %q is not numeric", ErrProtocol, id)
		}

		group.ID = numericID
		groups = append(groups, group)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].ID < groups[j].ID
	})

	return groups, nil
}

// StartSearch asks the bridge to scan for unprovisioned lights.
// The search runs on the bridge itself for roughly 40 seconds; collect
// the outcome with GetNewLights afterwards.
func (c *Client) StartSearch(ctx context.Context) error {
	data, err := c.do(ctx, http.MethodPost, []string{"lights"}, nil)
	if err != nil {
		return fmt.Errorf("start light search: %w", err)
	}

	if _, err = decodeReplies(data); err != nil {
		return fmt.Errorf("start light search: %w", err)
	}

	return nil
}

// GetNewLights returns the results of the last light search. The bridge
// mixes found lights and the scan timestamp in a single object, keyed
// by light id plus a literal "lastscan" entry.
func (c *Client) GetNewLights(ctx context.Context) (*ScanResult, error) {
	data, err := c.do(ctx, http.MethodGet, []string{"lights", "new"}, nil)
	if err != nil {
		return nil, fmt.Errorf("get new lights: %w", err)
	}

	var raw map[string]json.RawMessage
	if err = decodeResource(data, &raw); err != nil {
		return nil, fmt.Errorf("get new lights: %w", err)
	}

	result := new(ScanResult)

	for key, value := range raw {
		if key == "lastscan" {
			if err = json.Unmarshal(value, &result.LastScan); err != nil {
				return nil, fmt.Errorf("get new lights: %w: %v", ErrProtocol, err)
			}

			continue
		}

		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("get new lights: %w: light id %q is not numeric", ErrProtocol, key)
		}

		var entry struct {
			Name string `json:"name"`
		}
		if err = json.Unmarshal(value, &entry); err != nil {
			return nil, fmt.Errorf("get new lights: %w: %v", ErrProtocol, err)
		}

		result.Lights = append(result.Lights, NewLight{ID: id, Name: entry.Name})
	}

	sort.Slice(result.Lights, func(i, j int) bool {
		return result.Lights[i].ID < result.Lights[j].ID
	})

	return result, nil
}
