package geometry

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-ar-hittest/pkg/math"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min math.Vec3 // Minimum corner
	Max math.Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max corners
func NewAABB(min, max math.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewEmptyAABB creates an AABB with sentinel bounds (+Inf minimum,
// -Inf maximum) so that any real point dominates them. An empty box
// contains nothing and intersects nothing.
func NewEmptyAABB() AABB {
	inf := math32.Inf(1)
	return AABB{
		Min: math.NewVec3(inf, inf, inf),
		Max: math.NewVec3(-inf, -inf, -inf),
	}
}

// NewAABBFromVertices reduces a flat x,y,z vertex stream to
// componentwise min/max bounds. This is the form model loaders hand
// over raw vertex data in. An empty stream yields an empty box; a
// trailing partial triple is ignored. Never panics.
func NewAABBFromVertices(verts []float32) AABB {
	box := NewEmptyAABB()
	for i := 0; i+2 < len(verts); i += 3 {
		box = box.grow(math.NewVec3(verts[i], verts[i+1], verts[i+2]))
	}
	return box
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...math.Vec3) AABB {
	box := NewEmptyAABB()
	for _, point := range points {
		box = box.grow(point)
	}
	return box
}

// grow returns the box extended to contain the given point
func (aabb AABB) grow(p math.Vec3) AABB {
	return AABB{
		Min: math.NewVec3(
			math32.Min(aabb.Min.X, p.X),
			math32.Min(aabb.Min.Y, p.Y),
			math32.Min(aabb.Min.Z, p.Z),
		),
		Max: math.NewVec3(
			math32.Max(aabb.Max.X, p.X),
			math32.Max(aabb.Max.Y, p.Y),
			math32.Max(aabb.Max.Z, p.Z),
		),
	}
}

// IsEmpty reports whether no point has been accumulated into the box
func (aabb AABB) IsEmpty() bool {
	return aabb.Min.X > aabb.Max.X ||
		aabb.Min.Y > aabb.Max.Y ||
		aabb.Min.Z > aabb.Max.Z
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return !aabb.IsEmpty()
}

// Corners returns the 8 corner points of the box, all combinations of
// {min,max} on each axis
func (aabb AABB) Corners() [8]math.Vec3 {
	return [8]math.Vec3{
		math.NewVec3(aabb.Min.X, aabb.Min.Y, aabb.Min.Z),
		math.NewVec3(aabb.Max.X, aabb.Min.Y, aabb.Min.Z),
		math.NewVec3(aabb.Min.X, aabb.Max.Y, aabb.Min.Z),
		math.NewVec3(aabb.Max.X, aabb.Max.Y, aabb.Min.Z),
		math.NewVec3(aabb.Min.X, aabb.Min.Y, aabb.Max.Z),
		math.NewVec3(aabb.Max.X, aabb.Min.Y, aabb.Max.Z),
		math.NewVec3(aabb.Min.X, aabb.Max.Y, aabb.Max.Z),
		math.NewVec3(aabb.Max.X, aabb.Max.Y, aabb.Max.Z),
	}
}

// Transformed projects the box into world space through a model
// matrix: each of the 8 corners is transformed with w=1 and the
// results are re-bounded. Under rotation this over-approximates the
// true rotated volume, the accepted trade-off for cheap collision
// tests. Returns a new box; the receiver is not mutated.
func (aabb AABB) Transformed(m math.Mat4) AABB {
	if aabb.IsEmpty() {
		return NewEmptyAABB()
	}

	box := NewEmptyAABB()
	for _, corner := range aabb.Corners() {
		box = box.grow(m.TransformPoint(corner))
	}
	return box
}

// segmentsOverlap reports whether the segments [min0,max0] and
// [min1,max1] share more than a single point. Strict inequality:
// segments touching only at an endpoint do not overlap.
func segmentsOverlap(min0, max0, min1, max1 float32) bool {
	return math32.Min(max0, max1) > math32.Max(min0, min1)
}

// Intersects tests whether two boxes overlap. Boxes overlap iff their
// projections overlap on all three axes independently; boxes sharing
// only a face, edge or corner do not intersect.
func (aabb AABB) Intersects(other AABB) bool {
	return segmentsOverlap(aabb.Min.X, aabb.Max.X, other.Min.X, other.Max.X) &&
		segmentsOverlap(aabb.Min.Y, aabb.Max.Y, other.Min.Y, other.Max.Y) &&
		segmentsOverlap(aabb.Min.Z, aabb.Max.Z, other.Min.Z, other.Max.Z)
}

// Hit tests if a ray intersects this AABB using the slab method and
// returns the entry distance along the ray
func (aabb AABB) Hit(ray math.Ray, tMin, tMax float32) (float32, bool) {
	for axis := 0; axis < 3; axis++ {
		var min, max, origin, direction float32

		switch axis {
		case 0: // X axis
			min = aabb.Min.X
			max = aabb.Max.X
			origin = ray.Origin.X
			direction = ray.Direction.X
		case 1: // Y axis
			min = aabb.Min.Y
			max = aabb.Max.Y
			origin = ray.Origin.Y
			direction = ray.Direction.Y
		case 2: // Z axis
			min = aabb.Min.Z
			max = aabb.Max.Z
			origin = ray.Origin.Z
			direction = ray.Direction.Z
		}

		// Handle parallel rays (direction near zero)
		if math32.Abs(direction) < 1e-8 {
			if origin < min || origin > max {
				return 0, false // Ray origin outside slab
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (min - origin) * invDirection
		t2 := (max - origin) * invDirection

		if t1 > t2 {
			t1, t2 = t2, t1
		}

		// Update overall intersection interval
		tMin = math32.Max(tMin, t1)
		tMax = math32.Min(tMax, t2)

		if tMin > tMax {
			return 0, false
		}
	}

	return tMin, true
}

// Center returns the center point of the AABB
func (aabb AABB) Center() math.Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() math.Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		Min: math.NewVec3(
			math32.Min(aabb.Min.X, other.Min.X),
			math32.Min(aabb.Min.Y, other.Min.Y),
			math32.Min(aabb.Min.Z, other.Min.Z),
		),
		Max: math.NewVec3(
			math32.Max(aabb.Max.X, other.Max.X),
			math32.Max(aabb.Max.Y, other.Max.Y),
			math32.Max(aabb.Max.Z, other.Max.Z),
		),
	}
}

// Expand returns an AABB expanded by the given amount in all directions
func (aabb AABB) Expand(amount float32) AABB {
	expansion := math.NewVec3(amount, amount, amount)
	return AABB{
		Min: aabb.Min.Subtract(expansion),
		Max: aabb.Max.Add(expansion),
	}
}
