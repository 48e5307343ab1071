// Package huetest provides an in-memory fake Hue bridge for tests.
//
// The fake serves the v1 endpoints the client exercises (lights, groups,
// new-light scans and pairing) with the same payload shapes a real
// bridge produces, including the error-array-inside-200 convention.
package huetest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// Light is the mutable state of one fake light.
type Light struct {
	Name      string
	On        bool
	Reachable bool
}

// Group is the state of one fake group.
type Group struct {
	Name   string
	Lights []string
	Type   string
}

// Bridge fakes the small v1 API surface the client uses. All state is
// guarded by a mutex so tests can mutate and inspect it while the
// server handles requests.
type Bridge struct {
	mu sync.Mutex

	server *httptest.Server

	key            string
	linkPressed    bool
	lastDeviceType string
	searchCount    int
	stateChanges   int
	lastScan       string

	lights    map[int]*Light
	groups    map[int]*Group
	newLights map[int]string
}

// New starts a fake bridge. The server shuts down when the test finishes.
func New(t *testing.T) *Bridge {
	t.Helper()

	b := &Bridge{
		key:       "valid-application-key",
		lights:    make(map[int]*Light),
		groups:    make(map[int]*Group),
		newLights: make(map[int]string),
	}

	b.server = httptest.NewServer(http.HandlerFunc(b.handle))
	t.Cleanup(b.server.Close)

	return b
}

// URL returns the bridge address, including the http scheme.
func (b *Bridge) URL() string {
	return b.server.URL
}

// Close shuts the server down early, simulating an unreachable bridge.
func (b *Bridge) Close() {
	b.server.Close()
}

// Key returns the application key the bridge accepts.
func (b *Bridge) Key() string {
	return b.key
}

// PressLinkButton makes subsequent pairing requests succeed.
func (b *Bridge) PressLinkButton() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.linkPressed = true
}

// AddLight registers a light with the given state.
func (b *Bridge) AddLight(id int, name string, on, reachable bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lights[id] = &Light{Name: name, On: on, Reachable: reachable}
}

// AddGroup registers a group.
func (b *Bridge) AddGroup(id int, name string, lightIDs []string, groupType string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.groups[id] = &Group{Name: name, Lights: lightIDs, Type: groupType}
}

// AddNewLight registers a light to be reported by the new-light scan.
func (b *Bridge) AddNewLight(id int, name, lastScan string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.newLights[id] = name
	b.lastScan = lastScan
}

// Light returns a copy of the light's current state.
func (b *Bridge) Light(id int) (Light, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	light, ok := b.lights[id]
	if !ok {
		return Light{}, false
	}

	return *light, true
}

// SearchCount reports how many new-light searches were started.
func (b *Bridge) SearchCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.searchCount
}

// StateChanges reports how many state updates the bridge accepted.
func (b *Bridge) StateChanges() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.stateChanges
}

// LastDeviceType reports the devicetype of the latest pairing request.
func (b *Bridge) LastDeviceType() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.lastDeviceType
}

// handle routes one request the way a v1 bridge would.
func (b *Bridge) handle(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	segments := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(segments) == 0 || segments[0] != "api" {
		http.NotFound(w, r)
		return
	}

	// POST /api is the unauthenticated pairing endpoint.
	if len(segments) == 1 {
		b.handlePair(w, r)
		return
	}

	if segments[1] != b.key {
		writeJSON(w, errorBody(1, "/", "unauthorized user"))
		return
	}

	rest := segments[2:]

	switch {
	case len(rest) == 1 && rest[0] == "lights" && r.Method == http.MethodGet:
		b.handleListLights(w)
	case len(rest) == 1 && rest[0] == "lights" && r.Method == http.MethodPost:
		b.searchCount++
		writeJSON(w, successBody("/lights", "Searching for new devices"))
	case len(rest) == 2 && rest[0] == "lights" && rest[1] == "new" && r.Method == http.MethodGet:
		b.handleNewLights(w)
	case len(rest) == 2 && rest[0] == "lights" && r.Method == http.MethodGet:
		b.handleGetLight(w, rest[1])
	case len(rest) == 2 && rest[0] == "lights" && r.Method == http.MethodPut:
		b.handleRename(w, r, rest[1])
	case len(rest) == 3 && rest[0] == "lights" && rest[2] == "state" && r.Method == http.MethodPut:
		b.handleSetState(w, r, rest[1])
	case len(rest) == 1 && rest[0] == "groups" && r.Method == http.MethodGet:
		b.handleListGroups(w)
	default:
		http.NotFound(w, r)
	}
}

func (b *Bridge) handlePair(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var payload struct {
		DeviceType string `json:"devicetype"`
	}
	_ = json.NewDecoder(r.Body).Decode(&payload)

	b.lastDeviceType = payload.DeviceType

	if !b.linkPressed {
		writeJSON(w, errorBody(101, "", "link button not pressed"))
		return
	}

	writeJSON(w, []map[string]any{
		{"success": map[string]any{"username": b.key}},
	})
}

func (b *Bridge) handleListLights(w http.ResponseWriter) {
	body := make(map[string]any, len(b.lights))
	for id, light := range b.lights {
		body[strconv.Itoa(id)] = lightBody(light)
	}

	writeJSON(w, body)
}

func (b *Bridge) handleGetLight(w http.ResponseWriter, rawID string) {
	light, ok := b.findLight(rawID)
	if !ok {
		writeJSON(w, notFoundBody("/lights/"+rawID))
		return
	}

	writeJSON(w, lightBody(light))
}

func (b *Bridge) handleRename(w http.ResponseWriter, r *http.Request, rawID string) {
	light, ok := b.findLight(rawID)
	if !ok {
		writeJSON(w, notFoundBody("/lights/"+rawID))
		return
	}

	var payload struct {
		Name string `json:"name"`
	}
	_ = json.NewDecoder(r.Body).Decode(&payload)

	light.Name = payload.Name

	writeJSON(w, successBody("/lights/"+rawID+"/name", payload.Name))
}

func (b *Bridge) handleSetState(w http.ResponseWriter, r *http.Request, rawID string) {
	light, ok := b.findLight(rawID)
	if !ok {
		writeJSON(w, notFoundBody("/lights/"+rawID+"/state"))
		return
	}

	var payload struct {
		On bool `json:"on"`
	}
	_ = json.NewDecoder(r.Body).Decode(&payload)

	light.On = payload.On
	b.stateChanges++

	writeJSON(w, successBody("/lights/"+rawID+"/state/on", payload.On))
}

func (b *Bridge) handleNewLights(w http.ResponseWriter) {
	body := map[string]any{"lastscan": b.lastScan}
	for id, name := range b.newLights {
		body[strconv.Itoa(id)] = map[string]any{"name": name}
	}

	writeJSON(w, body)
}

func (b *Bridge) handleListGroups(w http.ResponseWriter) {
	body := make(map[string]any, len(b.groups))
	for id, group := range b.groups {
		body[strconv.Itoa(id)] = map[string]any{
			"name":   group.Name,
			"lights": group.Lights,
			"type":   group.Type,
		}
	}

	writeJSON(w, body)
}

// findLight resolves a raw path id to a live light entry.
func (b *Bridge) findLight(rawID string) (*Light, bool) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return nil, false
	}

	light, ok := b.lights[id]

	return light, ok
}

func lightBody(light *Light) map[string]any {
	return map[string]any{
		"name": light.Name,
		"state": map[string]any{
			"on":        light.On,
			"reachable": light.Reachable,
		},
	}
}

func successBody(address string, value any) []map[string]any {
	return []map[string]any{
		{"success": map[string]any{address: value}},
	}
}

func errorBody(errType int, address, description string) []map[string]any {
	return []map[string]any{
		{"error": map[string]any{
			"type":        errType,
			"address":     address,
			"description": description,
		}},
	}
}

func notFoundBody(address string) []map[string]any {
	return errorBody(3, address, fmt.Sprintf("resource, %s, not available", address))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
