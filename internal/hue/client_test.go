package hue

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hue-cli/internal/hue/huetest"
)

// newTestClient connects a client to the fake bridge using its valid key.
func newTestClient(t *testing.T, bridge *huetest.Bridge) *Client {
	t.Helper()

	return NewClient(bridge.URL(), bridge.Key(), WithTimeout(5*time.Second))
}

// TestGetLights_ReturnsAllSorted verifies every light comes back exactly once, ordered by id.
func TestGetLights_ReturnsAllSorted(t *testing.T) {
	t.Parallel()

	bridge := huetest.New(t)
	bridge.AddLight(7, "Hallway", false, true)
	bridge.AddLight(1, "Some light", true, true)
	bridge.AddLight(2, "Other light", true, false)

	client := newTestClient(t, bridge)

	lights, err := client.GetLights(context.Background())
	require.NoError(t, err)
	require.Len(t, lights, 3)

	seen := make(map[int]bool, len(lights))
	ids := make([]int, 0, len(lights))

	for _, light := range lights {
		require.False(t, seen[light.ID], "light id %d returned twice", light.ID)

		seen[light.ID] = true
		ids = append(ids, light.ID)
	}

	require.Equal(t, []int{1, 2, 7}, ids)

	require.Equal(t, "Some light", lights[0].Name)
	require.NotNil(t, lights[0].State.On)
	require.True(t, *lights[0].State.On)
	require.True(t, lights[0].State.Reachable)
	require.False(t, lights[1].State.Reachable)
}

// TestGetLight_UnknownID maps the bridge's type 3 error to ErrNotFound.
func TestGetLight_UnknownID(t *testing.T) {
	t.Parallel()

	bridge := huetest.New(t)
	bridge.AddLight(1, "Some light", true, true)

	client := newTestClient(t, bridge)

	light, err := client.GetLight(context.Background(), 99)
	require.ErrorIs(t, err, ErrNotFound)
	require.Nil(t, light)
}

// TestRenameLight_Roundtrip renames one light and checks all other fields stay untouched.
func TestRenameLight_Roundtrip(t *testing.T) {
	t.Parallel()

	bridge := huetest.New(t)
	bridge.AddLight(1, "Some light", true, true)
	bridge.AddLight(2, "Other light", true, false)

	client := newTestClient(t, bridge)
	ctx := context.Background()

	before, err := client.GetLights(ctx)
	require.NoError(t, err)

	require.NoError(t, client.RenameLight(ctx, 2, "Different name"))

	after, err := client.GetLights(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before))

	require.Equal(t, before[0], after[0])
	require.Equal(t, "Different name", after[1].Name)
	require.Equal(t, before[1].ID, after[1].ID)
	require.Equal(t, before[1].State, after[1].State)
}

// TestRenameLight_UnknownID leaves existing lights untouched on a failed rename.
func TestRenameLight_UnknownID(t *testing.T) {
	t.Parallel()

	bridge := huetest.New(t)
	bridge.AddLight(1, "Some light", true, true)

	client := newTestClient(t, bridge)

	err := client.RenameLight(context.Background(), 99, "Ghost")
	require.ErrorIs(t, err, ErrNotFound)

	light, ok := bridge.Light(1)
	require.True(t, ok)
	require.Equal(t, "Some light", light.Name)
}

// TestSetLightState flips a light and surfaces ErrNotFound for unknown ids.
func TestSetLightState(t *testing.T) {
	t.Parallel()

	bridge := huetest.New(t)
	bridge.AddLight(3, "Desk", false, true)

	client := newTestClient(t, bridge)
	ctx := context.Background()

	require.NoError(t, client.SetLightState(ctx, 3, true))

	light, ok := bridge.Light(3)
	require.True(t, ok)
	require.True(t, light.On)

	err := client.SetLightState(ctx, 42, true)
	require.ErrorIs(t, err, ErrNotFound)
}

// TestUnauthorizedKey surfaces ErrUnauthorized on reads and writes alike.
func TestUnauthorizedKey(t *testing.T) {
	t.Parallel()

	bridge := huetest.New(t)
	bridge.AddLight(1, "Some light", true, true)

	client := NewClient(bridge.URL(), "wrong-key")
	ctx := context.Background()

	_, err := client.GetLights(ctx)
	require.ErrorIs(t, err, ErrUnauthorized)

	err = client.RenameLight(ctx, 1, "New name")
	require.ErrorIs(t, err, ErrUnauthorized)
}

// TestGetLights_BridgeDown maps transport failures to ErrUnreachable.
func TestGetLights_BridgeDown(t *testing.T) {
	t.Parallel()

	bridge := huetest.New(t)
	url := bridge.URL()
	bridge.Close()

	client := NewClient(url, "any-key", WithTimeout(time.Second))

	_, err := client.GetLights(context.Background())
	require.ErrorIs(t, err, ErrUnreachable)
}

// TestGetLights_NotABridge rejects non-JSON payloads as ErrProtocol.
func TestGetLights_NotABridge(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "<html>definitely not a bridge</html>")
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, "any-key")

	_, err := client.GetLights(context.Background())
	require.ErrorIs(t, err, ErrProtocol)
}

// TestGetLights_UnexpectedStatus rejects non-200 responses as ErrProtocol.
func TestGetLights_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, "any-key")

	_, err := client.GetLights(context.Background())
	require.ErrorIs(t, err, ErrProtocol)
}

// TestGetGroups decodes and sorts the group map.
func TestGetGroups(t *testing.T) {
	t.Parallel()

	bridge := huetest.New(t)
	bridge.AddGroup(3, "Bedroom", []string{"3"}, "Room")
	bridge.AddGroup(1, "Living room", []string{"1", "2"}, "Room")

	client := newTestClient(t, bridge)

	groups, err := client.GetGroups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)

	require.Equal(t, 1, groups[0].ID)
	require.Equal(t, "Living room", groups[0].Name)
	require.Equal(t, []string{"1", "2"}, groups[0].Lights)
	require.Equal(t, "Room", groups[0].Type)
	require.Equal(t, 3, groups[1].ID)
}

// TestSearchForNewLights covers StartSearch plus the mixed-shape scan result decode.
func TestSearchForNewLights(t *testing.T) {
	t.Parallel()

	bridge := huetest.New(t)
	bridge.AddNewLight(7, "Hue lamp 7", "2026-08-23T10:00:00")
	bridge.AddNewLight(4, "Hue lamp 4", "2026-08-23T10:00:00")

	client := newTestClient(t, bridge)
	ctx := context.Background()

	require.NoError(t, client.StartSearch(ctx))
	require.Equal(t, 1, bridge.SearchCount())

	result, err := client.GetNewLights(ctx)
	require.NoError(t, err)
	require.Equal(t, "2026-08-23T10:00:00", result.LastScan)
	require.Equal(t, []NewLight{
		{ID: 4, Name: "Hue lamp 4"},
		{ID: 7, Name: "Hue lamp 7"},
	}, result.Lights)
}

// TestAPIError_Unwrap checks the error code to sentinel mapping.
func TestAPIError_Unwrap(t *testing.T) {
	t.Parallel()

	cases := map[int]error{
		1:   ErrUnauthorized,
		3:   ErrNotFound,
		101: ErrLinkButtonNotPressed,
	}
	for code, sentinel := range cases {
		err := &APIError{Type: code, Address: "/", Description: "boom"}
		require.ErrorIs(t, err, sentinel)
	}

	unknown := &APIError{Type: 901, Address: "/", Description: "internal error"}
	require.NotErrorIs(t, unknown, ErrUnauthorized)
	require.Contains(t, unknown.Error(), "901")
}
