package scene

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/df07/go-ar-hittest/pkg/geometry"
	"github.com/df07/go-ar-hittest/pkg/math"
)

// VolumeKind selects the bounding volume used for tap-hit testing
type VolumeKind string

const (
	// VolumeBox tests taps against the object's world-space box
	VolumeBox VolumeKind = "box"
	// VolumeCone tests taps against a cone derived from the bounds,
	// used for models that are visually cone-shaped
	VolumeCone VolumeKind = "cone"
)

// Entry describes one placeable object kind. Kinds differ only in
// configuration, not behavior, so the catalog is a plain data table.
type Entry struct {
	Kind      string     `toml:"kind"`
	Model     string     `toml:"model,omitempty"`
	Volume    VolumeKind `toml:"volume"`
	Scale     float32    `toml:"scale,omitempty"`
	BoundsMin []float32  `toml:"bounds_min"`
	BoundsMax []float32  `toml:"bounds_max"`
}

// LocalBounds returns the entry's object-local bounding box with the
// catalog scale applied
func (e Entry) LocalBounds() geometry.AABB {
	scale := e.Scale
	if scale == 0 {
		scale = 1
	}
	min := math.NewVec3(e.BoundsMin[0], e.BoundsMin[1], e.BoundsMin[2])
	max := math.NewVec3(e.BoundsMax[0], e.BoundsMax[1], e.BoundsMax[2])
	return geometry.NewAABB(min.Multiply(scale), max.Multiply(scale))
}

// Catalog is the table of placeable object kinds
type Catalog struct {
	Entries []Entry `toml:"object"`
}

// DefaultCatalog returns the built-in object kinds: the cone-volume
// tree plus the box-volume bauble and the alternate viking, cannon and
// target models
func DefaultCatalog() *Catalog {
	return &Catalog{Entries: []Entry{
		{Kind: "tree", Model: "models/tree.obj", Volume: VolumeCone,
			BoundsMin: []float32{-0.4, 0, -0.4}, BoundsMax: []float32{0.4, 1.6, 0.4}},
		{Kind: "bauble", Model: "models/bauble.obj", Volume: VolumeBox,
			BoundsMin: []float32{-0.1, 0, -0.1}, BoundsMax: []float32{0.1, 0.2, 0.1}},
		{Kind: "viking", Model: "models/viking.obj", Volume: VolumeBox,
			BoundsMin: []float32{-0.25, 0, -0.25}, BoundsMax: []float32{0.25, 0.7, 0.25}},
		{Kind: "cannon", Model: "models/cannon.obj", Volume: VolumeBox,
			BoundsMin: []float32{-0.3, 0, -0.2}, BoundsMax: []float32{0.3, 0.4, 0.2}},
		{Kind: "target", Model: "models/target.obj", Volume: VolumeBox,
			BoundsMin: []float32{-0.35, 0, -0.05}, BoundsMax: []float32{0.35, 0.7, 0.05}},
	}}
}

// LoadCatalog reads and validates a TOML catalog file
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var catalog Catalog
	if err := toml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := catalog.validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	return &catalog, nil
}

func (c *Catalog) validate() error {
	if len(c.Entries) == 0 {
		return fmt.Errorf("catalog has no object entries")
	}

	seen := make(map[string]bool)
	for i, entry := range c.Entries {
		if entry.Kind == "" {
			return fmt.Errorf("object %d: missing kind", i)
		}
		if seen[entry.Kind] {
			return fmt.Errorf("object %d: duplicate kind %q", i, entry.Kind)
		}
		seen[entry.Kind] = true

		if entry.Volume != VolumeBox && entry.Volume != VolumeCone {
			return fmt.Errorf("object %q: unknown volume kind %q", entry.Kind, entry.Volume)
		}
		if len(entry.BoundsMin) != 3 || len(entry.BoundsMax) != 3 {
			return fmt.Errorf("object %q: bounds_min and bounds_max need 3 components", entry.Kind)
		}
		for axis := 0; axis < 3; axis++ {
			if entry.BoundsMin[axis] > entry.BoundsMax[axis] {
				return fmt.Errorf("object %q: bounds_min exceeds bounds_max on axis %d", entry.Kind, axis)
			}
		}
		if entry.Scale < 0 {
			return fmt.Errorf("object %q: scale must be non-negative", entry.Kind)
		}
	}

	return nil
}

// Entry looks up a catalog entry by kind
func (c *Catalog) Entry(kind string) (Entry, bool) {
	for _, entry := range c.Entries {
		if entry.Kind == kind {
			return entry, true
		}
	}
	return Entry{}, false
}
