// Package catalog holds the built-in AWS service table and architectural
// pattern library used by text inference. Both tables are built once and
// treated as read-only afterwards, so they are safe for concurrent readers.
package catalog

import (
	"fmt"
	"os"
	"sort"

	"github.com/bgdnvk/archlens/internal/model"
	"gopkg.in/yaml.v3"
)

// Catalog is an immutable snapshot of the service table and pattern library.
type Catalog struct {
	services []model.ServiceEntry
	patterns []model.PatternEntry
}

// ServiceGroup is the read-only per-category view of the service table.
type ServiceGroup struct {
	Services []model.ServiceEntry `json:"services" yaml:"services"`
}

// PatternGroup is the read-only per-category view of the pattern library.
type PatternGroup struct {
	Patterns []model.PatternEntry `json:"patterns" yaml:"patterns"`
}

// overlay is the shape of a user-supplied catalog extension file.
type overlay struct {
	Services []model.ServiceEntry `yaml:"services"`
	Patterns []model.PatternEntry `yaml:"patterns"`
}

// New returns a catalog with the built-in tables.
func New() *Catalog {
	return &Catalog{
		services: builtinServices,
		patterns: builtinPatterns,
	}
}

// NewWithOverlay returns the built-in catalog extended with entries from a
// YAML overlay file. Overlay entries with a name already present replace the
// built-in entry; new names are appended.
func NewWithOverlay(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog overlay %s: %w", path, err)
	}

	var o overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("failed to parse catalog overlay %s: %w", path, err)
	}

	c := New()
	c.services = mergeServices(c.services, o.Services)
	c.patterns = mergePatterns(c.patterns, o.Patterns)
	return c, nil
}

func mergeServices(base, extra []model.ServiceEntry) []model.ServiceEntry {
	merged := make([]model.ServiceEntry, len(base))
	copy(merged, base)
	for _, e := range extra {
		replaced := false
		for i, b := range merged {
			if b.Name == e.Name {
				merged[i] = e
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, e)
		}
	}
	return merged
}

func mergePatterns(base, extra []model.PatternEntry) []model.PatternEntry {
	merged := make([]model.PatternEntry, len(base))
	copy(merged, base)
	for _, e := range extra {
		replaced := false
		for i, b := range merged {
			if b.Name == e.Name {
				merged[i] = e
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, e)
		}
	}
	return merged
}

// Services returns a copy of the full service table.
func (c *Catalog) Services() []model.ServiceEntry {
	out := make([]model.ServiceEntry, len(c.services))
	copy(out, c.services)
	return out
}

// Patterns returns a copy of the full pattern library.
func (c *Catalog) Patterns() []model.PatternEntry {
	out := make([]model.PatternEntry, len(c.patterns))
	copy(out, c.patterns)
	return out
}

// ServicesByCategory groups the service table by category. The returned map
// and slices are copies; mutating them does not affect the catalog.
func (c *Catalog) ServicesByCategory() map[string]ServiceGroup {
	grouped := make(map[string]ServiceGroup)
	for _, s := range c.services {
		g := grouped[s.Category]
		g.Services = append(g.Services, s)
		grouped[s.Category] = g
	}
	return grouped
}

// PatternsByCategory groups the pattern library by category.
func (c *Catalog) PatternsByCategory() map[string]PatternGroup {
	grouped := make(map[string]PatternGroup)
	for _, p := range c.patterns {
		g := grouped[p.Category]
		g.Patterns = append(g.Patterns, p)
		grouped[p.Category] = g
	}
	return grouped
}

// LookupService finds a service entry by exact name.
func (c *Catalog) LookupService(name string) (model.ServiceEntry, bool) {
	for _, s := range c.services {
		if s.Name == name {
			return s, true
		}
	}
	return model.ServiceEntry{}, false
}

// Categories returns the sorted list of service categories present.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, s := range c.services {
		if !seen[s.Category] {
			seen[s.Category] = true
			cats = append(cats, s.Category)
		}
	}
	sort.Strings(cats)
	return cats
}
