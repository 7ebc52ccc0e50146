// Package flags provides feature flags for behavior that is off by default.
// Flags are read-only after initialization and unknown flags read as false.
package flags

import (
	"maps"
	"slices"

	"github.com/RayLabsHQ/formatfuse-sub003/internal/log"
)

const (
	// FlagMyersFallback switches inputs that exceed the LCS size guard to the
	// Myers aligner instead of rejecting them.
	FlagMyersFallback = "myers-fallback"

	// FlagCacheRefresh extends a cached diff's TTL every time it is read.
	FlagCacheRefresh = "cache-refresh"
)

// Known lists every flag this build understands.
func Known() []string {
	return []string{FlagMyersFallback, FlagCacheRefresh}
}

// Registry holds feature flag state loaded from configuration.
type Registry struct {
	flags map[string]bool
}

// New creates a Registry from a config map.
// If flags is nil, an empty registry is created (all flags disabled).
func New(flags map[string]bool) *Registry {
	if flags == nil {
		flags = make(map[string]bool)
	}
	r := &Registry{flags: flags}
	log.Debug(log.CatConfig, "Feature flags initialized", "count", len(flags), "flags", r.All())
	if unknown := r.Unknown(); len(unknown) > 0 {
		log.Warn(log.CatConfig, "Unknown feature flags configured", "flags", unknown)
	}
	return r
}

// Enabled returns true if the named flag is enabled.
// Returns false for unknown flags and on a nil registry.
func (r *Registry) Enabled(name string) bool {
	if r == nil || r.flags == nil {
		return false
	}
	return r.flags[name]
}

// All returns a copy of all flags (for debugging/logging).
func (r *Registry) All() map[string]bool {
	if r == nil || r.flags == nil {
		return make(map[string]bool)
	}
	result := make(map[string]bool, len(r.flags))
	maps.Copy(result, r.flags)
	return result
}

// Unknown returns the configured flag names this build does not recognize,
// sorted.
func (r *Registry) Unknown() []string {
	if r == nil {
		return nil
	}
	known := Known()
	var unknown []string
	for name := range r.flags {
		if !slices.Contains(known, name) {
			unknown = append(unknown, name)
		}
	}
	slices.Sort(unknown)
	return unknown
}
