package config

import (
	"os"
	"strings"
)

// Source is where per-session variables come from. Lookups happen at call
// time; implementations must not cache.
type Source interface {
	Lookup(name string) (string, bool)
}

// EnvSource reads from process environment variables.
type EnvSource struct{}

func (EnvSource) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// MapSource is a fixed in-memory Source, mainly for tests.
type MapSource map[string]string

func (m MapSource) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Resolver resolves per-session configuration values. A session-specific
// variable NAME_SESSIONKEY (session key upper-cased) takes precedence over the
// shared bare NAME.
type Resolver struct {
	src Source
}

func NewResolver(src Source) Resolver {
	return Resolver{src: src}
}

func (r Resolver) Resolve(sessionKey, name string) (string, bool) {
	if v, ok := r.src.Lookup(name + "_" + strings.ToUpper(sessionKey)); ok {
		return v, true
	}
	return r.src.Lookup(name)
}
