// Package core defines the zone data model — a normalized representation of
// merge input that all loaders produce and the merge pipeline consumes.
package core

import (
	"fmt"
	"strings"
)

// GlobalName is the reserved zone name whose key substitutions apply to the
// whole buffer rather than a tagged region. It is matched case-insensitively.
const GlobalName = "global"

// RowItem is one row's worth of substitution data within a zone.
type RowItem map[string]string

// Zone describes one named, tag-delimited region of a template and the
// substitution data attached to it.
type Zone struct {
	Name   string            `json:"zonename"`
	Keys   map[string]string `json:"zonekeys,omitempty"`
	Rows   []RowItem         `json:"zonearray,omitempty"`
	Delete bool              `json:"zonedelete,omitempty"`
}

// IsGlobal reports whether the zone carries the reserved global name.
func (z *Zone) IsGlobal() bool {
	return strings.EqualFold(z.Name, GlobalName)
}

// Collection is an ordered set of zones with unique names.
type Collection struct {
	Zones []Zone `json:"zones"`
}

// NewCollection validates the given zones and wraps them in a Collection.
// Zone names must be non-empty and unique, and at most one zone may carry
// the reserved global name in any casing — every reserved-name variant is
// consumed case-insensitively by the merge, so a second one could never be
// processed. All of these are construction errors, not merge-time
// conditions.
func NewCollection(zones []Zone) (*Collection, error) {
	seen := make(map[string]struct{}, len(zones))
	globalSeen := false
	for _, z := range zones {
		if z.Name == "" {
			return nil, fmt.Errorf("zone with empty name")
		}
		if _, ok := seen[z.Name]; ok {
			return nil, fmt.Errorf("duplicate zone name %q", z.Name)
		}
		seen[z.Name] = struct{}{}

		if z.IsGlobal() {
			if globalSeen {
				return nil, fmt.Errorf("zone %q: reserved name %q may appear at most once", z.Name, GlobalName)
			}
			globalSeen = true
		}
	}
	return &Collection{Zones: zones}, nil
}

// Zone returns the first zone with the given name, or nil if absent.
// Lookup is case-sensitive; use Global for the reserved zone.
func (c *Collection) Zone(name string) *Zone {
	for i := range c.Zones {
		if c.Zones[i].Name == name {
			return &c.Zones[i]
		}
	}
	return nil
}

// Global returns the reserved global zone, matched case-insensitively,
// or nil if the collection has none.
func (c *Collection) Global() *Zone {
	for i := range c.Zones {
		if c.Zones[i].IsGlobal() {
			return &c.Zones[i]
		}
	}
	return nil
}
