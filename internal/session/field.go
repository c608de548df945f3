package session

import "strings"

// DefaultKey is used when the caller supplies no session identifier.
const DefaultKey = "default"

// Normalize derives the session key from a caller-supplied identifier:
// lower-cased, defaulting to DefaultKey when empty.
func Normalize(raw string) string {
	if raw == "" {
		return DefaultKey
	}
	return strings.ToLower(raw)
}

// Field names one record kind within a session's namespace. The string
// values are part of the persisted key layout and must not change.
type Field string

const (
	FieldStatus            Field = "status"
	FieldRequesterLocation Field = "loc"
	FieldOwnerLocation     Field = "owner_loc"
	FieldLock              Field = "lock"
)

// Key encodes the composite key for a field within a session's namespace.
func (f Field) Key(sessionKey string) string {
	return string(f) + "_" + sessionKey
}
