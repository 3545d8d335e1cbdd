package scene

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-ar-hittest/pkg/geometry"
	"github.com/df07/go-ar-hittest/pkg/math"
)

// Object is a placed scene object: a catalog kind plus the model
// matrix its tracking anchor supplies each frame. The object-local
// bounds come from the model's vertices (or the catalog defaults) and
// never change; world-space volumes are derived fresh per query.
type Object struct {
	ID     int
	Kind   string
	volume VolumeKind
	bounds geometry.AABB
	model  math.Mat4
}

func newObject(id int, entry Entry, bounds geometry.AABB, model math.Mat4) *Object {
	return &Object{
		ID:     id,
		Kind:   entry.Kind,
		volume: entry.Volume,
		bounds: bounds,
		model:  model,
	}
}

// VolumeKind returns the bounding volume kind used for tap testing
func (o *Object) VolumeKind() VolumeKind {
	return o.volume
}

// LocalBounds returns the object-local bounding box
func (o *Object) LocalBounds() geometry.AABB {
	return o.bounds
}

// ModelMatrix returns the current model transform
func (o *Object) ModelMatrix() math.Mat4 {
	return o.model
}

// SetModelMatrix updates the model transform, typically once per frame
// from the object's anchor pose
func (o *Object) SetModelMatrix(m math.Mat4) {
	o.model = m
}

// WorldBounds projects the object-local bounds through the current
// model matrix. The result is frame-scoped: recompute it after every
// matrix update rather than caching it.
func (o *Object) WorldBounds() geometry.AABB {
	return o.bounds.Transformed(o.model)
}

// TapCone returns the world-space cone volume for cone-kind objects
func (o *Object) TapCone() (*geometry.Cone, error) {
	return geometry.ConeForBounds(o.bounds, o.model)
}

// HitTest tests a world-space tap ray against the object's bounding
// volume. Cone kinds use the analytic ray-cone intersection, box kinds
// the slab test against the world bounds.
func (o *Object) HitTest(ray math.Ray) (geometry.Hit, bool) {
	unit := math.NewRay(ray.Origin, ray.Direction.Normalize())

	if o.volume == VolumeCone {
		cone, err := o.TapCone()
		if err != nil {
			// Degenerate bounds cannot be tapped
			return geometry.Hit{}, false
		}
		return cone.Hit(unit)
	}

	t, ok := o.WorldBounds().Hit(unit, 0, math32.MaxFloat32)
	if !ok {
		return geometry.Hit{}, false
	}
	return geometry.Hit{Point: unit.At(t), T: t}, true
}
