package hue

// Light is one light resource as reported by the bridge. The numeric id
// is the map key in the wire format and gets backfilled after decoding.
type Light struct {
	// ID is the bridge-assigned, stable numeric id.
	ID int `json:"-"`
	// Name is the user-visible light name. The only field this tool mutates.
	Name string `json:"name"`
	// State carries the light's current condition.
	State LightState `json:"state"`
}

// LightState is the subset of the state object this tool reads.
type LightState struct {
	// On reports whether the light is switched on. Some fixtures omit
	// the field, so it stays a pointer and renders as "-" when nil.
	On *bool `json:"on"`
	// Reachable reports whether the bridge can currently talk to the light.
	Reachable bool `json:"reachable"`
}

// Group is one group resource (room, zone or plain light group).
type Group struct {
	// ID is the bridge-assigned numeric id, backfilled from the map key.
	ID int `json:"-"`
	// Name is the user-visible group name.
	Name string `json:"name"`
	// Lights holds the ids of member lights, as the bridge reports them.
	Lights []string `json:"lights"`
	// Type distinguishes rooms, zones and plain groups.
	Type string `json:"type"`
}

// NewLight is one light found by a search started with StartSearch.
type NewLight struct {
	ID   int
	Name string
}

// ScanResult holds the outcome of the most recent new-light search.
type ScanResult struct {
	// LastScan is the bridge's timestamp of the last completed search.
	LastScan string
	// Lights lists the newly found lights, sorted by id.
	Lights []NewLight
}
