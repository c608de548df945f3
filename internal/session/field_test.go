package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty defaults", "", DefaultKey},
		{"lowercased", "NianBa", "nianba"},
		{"already lower", "abc", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestFieldKey_Layout(t *testing.T) {
	assert.Equal(t, "status_abc", FieldStatus.Key("abc"))
	assert.Equal(t, "loc_abc", FieldRequesterLocation.Key("abc"))
	assert.Equal(t, "owner_loc_abc", FieldOwnerLocation.Key("abc"))
	assert.Equal(t, "lock_abc", FieldLock.Key("abc"))
}

func TestFieldKey_CollisionFree(t *testing.T) {
	fields := []Field{FieldStatus, FieldRequesterLocation, FieldOwnerLocation, FieldLock}
	sessions := []string{"default", "a", "b", "loc", "owner"}

	seen := make(map[string]string)
	for _, f := range fields {
		for _, sk := range sessions {
			key := f.Key(sk)
			prev, dup := seen[key]
			assert.False(t, dup, "key %q produced by both %q and %q", key, prev, string(f)+"/"+sk)
			seen[key] = string(f) + "/" + sk
		}
	}
}
