// SPDX-License-Identifier: MIT

package materials

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownMaterial is returned by Lookup for names not in the catalog.
	ErrUnknownMaterial = errors.New("materials: unknown material")

	// ErrInvalidCatalog is returned by Parse for malformed YAML, duplicate
	// names, unknown kinds or non-physical property values.
	ErrInvalidCatalog = errors.New("materials: invalid catalog")
)

//go:embed catalog.yaml
var defaultYAML []byte

// Kind separates solids (which carry an elastic modulus) from fluids.
type Kind string

const (
	// Solid materials carry an elastic modulus and usually a compressive strength.
	Solid Kind = "solid"
	// Fluid materials carry only a density.
	Fluid Kind = "fluid"
)

// Material holds reference properties of one material.
type Material struct {
	Name                string  `yaml:"name"`
	Kind                Kind    `yaml:"kind"`
	ElasticModulus      float64 `yaml:"elastic_modulus"`          // Pa; 0 for fluids
	Density             float64 `yaml:"density"`                  // kg/m³
	CompressiveStrength float64 `yaml:"compressive_strength_mpa"` // MPa; 0 when not applicable
}

// Catalog is an immutable, name-indexed set of materials.
type Catalog struct {
	byName map[string]Material
	names  []string // sorted
}

type document struct {
	Materials []Material `yaml:"materials"`
}

// Parse decodes and validates a YAML catalog document.
// Names are matched case-insensitively and must be unique.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if len(doc.Materials) == 0 {
		return nil, fmt.Errorf("%w: no materials", ErrInvalidCatalog)
	}

	c := &Catalog{
		byName: make(map[string]Material, len(doc.Materials)),
		names:  make([]string, 0, len(doc.Materials)),
	}
	for i, m := range doc.Materials {
		if err := m.validate(); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrInvalidCatalog, i, err)
		}
		key := normalize(m.Name)
		if _, dup := c.byName[key]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidCatalog, m.Name)
		}
		c.byName[key] = m
		c.names = append(c.names, m.Name)
	}
	sort.Strings(c.names)

	return c, nil
}

func (m Material) validate() error {
	if normalize(m.Name) == "" {
		return errors.New("empty name")
	}
	if !positive(m.Density) {
		return fmt.Errorf("%s: density %g must be > 0", m.Name, m.Density)
	}
	switch m.Kind {
	case Solid:
		if !positive(m.ElasticModulus) {
			return fmt.Errorf("%s: elastic_modulus %g must be > 0", m.Name, m.ElasticModulus)
		}
	case Fluid:
		if m.ElasticModulus != 0 {
			return fmt.Errorf("%s: fluids carry no elastic_modulus", m.Name)
		}
	default:
		return fmt.Errorf("%s: unknown kind %q", m.Name, m.Kind)
	}
	if m.CompressiveStrength != 0 && !positive(m.CompressiveStrength) {
		return fmt.Errorf("%s: compressive_strength_mpa %g must be > 0", m.Name, m.CompressiveStrength)
	}

	return nil
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 1) }

func normalize(name string) string { return strings.ToLower(strings.TrimSpace(name)) }

// Lookup returns the material called name (case-insensitive).
func (c *Catalog) Lookup(name string) (Material, error) {
	m, ok := c.byName[normalize(name)]
	if !ok {
		return Material{}, fmt.Errorf("%q: %w", name, ErrUnknownMaterial)
	}

	return m, nil
}

// Names returns the catalog names in sorted order. The slice is a copy.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) { return Parse(defaultYAML) })

// Default returns the embedded catalog.
func Default() (*Catalog, error) { return defaultCatalog() }

// Lookup finds name in the embedded catalog.
func Lookup(name string) (Material, error) {
	c, err := Default()
	if err != nil {
		return Material{}, err
	}

	return c.Lookup(name)
}

// Names lists the embedded catalog, sorted.
func Names() ([]string, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}

	return c.Names(), nil
}
