package grading

import (
	"encoding/json"
)

// Catalog is the persisted collection of grading systems
type Catalog struct {
	Version     string
	LastUpdated string // ISO date, YYYY-MM-DD
	Systems     []GradingSystem

	// Extra holds top-level fields this tool does not manage, so a rewrite keeps them
	Extra map[string]json.RawMessage
}

// catalogFields mirrors the managed part of the on-disk document
type catalogFields struct {
	Version     string          `json:"version"`
	LastUpdated string          `json:"lastUpdated"`
	Systems     []GradingSystem `json:"systems"`
}

var managedKeys = map[string]bool{"version": true, "lastUpdated": true, "systems": true}

// NewCatalog creates an empty catalog at the given version
func NewCatalog(version string) *Catalog {
	return &Catalog{
		Version: version,
		Systems: make([]GradingSystem, 0),
	}
}

// Clone returns a deep copy of the catalog
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{
		Version:     c.Version,
		LastUpdated: c.LastUpdated,
		Systems:     make([]GradingSystem, len(c.Systems)),
	}
	for i, s := range c.Systems {
		out.Systems[i] = s.Clone()
	}
	out.Extra = cloneExtra(c.Extra)
	return out
}

// UnmarshalJSON decodes the managed fields and keeps everything else in Extra
func (c *Catalog) UnmarshalJSON(data []byte) error {
	var fields catalogFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	extra, err := extraFields(data, managedKeys)
	if err != nil {
		return err
	}

	c.Version = fields.Version
	c.LastUpdated = fields.LastUpdated
	c.Systems = fields.Systems
	if c.Systems == nil {
		c.Systems = make([]GradingSystem, 0)
	}
	c.Extra = extra
	return nil
}

// MarshalJSON writes version, lastUpdated and systems first, followed by any extra
// fields in key order
func (c Catalog) MarshalJSON() ([]byte, error) {
	systems := c.Systems
	if systems == nil {
		systems = []GradingSystem{}
	}

	w := newObjectWriter()
	w.field("version", c.Version)
	w.field("lastUpdated", c.LastUpdated)
	w.field("systems", systems)
	w.extra(c.Extra)
	return w.bytes()
}
