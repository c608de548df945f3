package movecar

import "movecar-service/internal/geo"

// Status is the session's lifecycle state. A session with no status record
// reports StatusWaiting; each notify cycle resets the machine to waiting
// regardless of prior state.
type Status string

const (
	StatusWaiting   Status = "waiting"
	StatusConfirmed Status = "confirmed"
)

// Coordinates is a WGS-84 position as submitted by a browser.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// StoredLocation is the persisted form of a shared position: the raw
// coordinate plus derived map deep-links, and for owner locations a capture
// timestamp.
type StoredLocation struct {
	Coordinates
	geo.MapLinks
	Timestamp int64 `json:"ts,omitempty"`
}

// StatusReport is what both parties poll. OwnerLocation is null until the
// owner confirms with a position.
type StatusReport struct {
	Status        Status          `json:"status"`
	OwnerLocation *StoredLocation `json:"ownerLocation"`
}

// NotifyInput carries one requester-initiated notify cycle.
type NotifyInput struct {
	SessionKey string
	Message    string
	Location   *Coordinates
	Delayed    bool
	Lang       string
	Origin     string // scheme://host of the inbound request, confirm-link fallback
}

// ConfirmInput carries the owner's confirmation.
type ConfirmInput struct {
	SessionKey string
	Location   *Coordinates
	Lang       string
}
