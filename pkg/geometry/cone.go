package geometry

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/df07/go-ar-hittest/pkg/math"
)

// Hit describes a ray-volume intersection result
type Hit struct {
	Point math.Vec3 // World-space intersection point
	T     float32   // Distance along the unit ray direction
}

// Cone is the world-space tap volume used for cone-shaped models such
// as the tree. Apex is the top face center of the source bounding box,
// BaseCenter the bottom face center, Radius half the box's X extent.
type Cone struct {
	Apex       math.Vec3
	BaseCenter math.Vec3
	Radius     float32

	// Cached derived values
	axis     math.Vec3 // Unit vector from apex to base
	height   float32   // Distance between apex and base
	cosAngle float32   // Cosine of the half-angle
}

// NewCone creates a cone with its half-angle derived from the
// geometry: cos(angle) = h / sqrt(h^2 + r^2) with h the apex-to-base
// distance and r the base radius.
func NewCone(apex, baseCenter math.Vec3, radius float32) (*Cone, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("radius must be positive, got %f", radius)
	}
	height := baseCenter.Subtract(apex).Length()
	cosAngle := height / math32.Sqrt(height*height+radius*radius)
	return NewConeWithCos(apex, baseCenter, radius, cosAngle)
}

// NewConeWithCos creates a cone with an explicit half-angle cosine,
// which must lie strictly between 0 and 1
func NewConeWithCos(apex, baseCenter math.Vec3, radius, cosAngle float32) (*Cone, error) {
	if radius < 0 {
		return nil, fmt.Errorf("radius must be non-negative, got %f", radius)
	}
	if cosAngle <= 0 || cosAngle >= 1 {
		return nil, fmt.Errorf("half-angle cosine must be in (0, 1), got %f", cosAngle)
	}

	axisVector := baseCenter.Subtract(apex)
	height := axisVector.Length()
	if height <= 0 {
		return nil, fmt.Errorf("apex and base center cannot coincide")
	}

	return &Cone{
		Apex:       apex,
		BaseCenter: baseCenter,
		Radius:     radius,
		axis:       axisVector.Normalize(),
		height:     height,
		cosAngle:   cosAngle,
	}, nil
}

// ConeForBounds derives the world-space tap cone for an object-local
// bounding box under a model matrix. The apex and base center are the
// transformed top and bottom face centers, the radius is half the
// projected box's X extent.
func ConeForBounds(local AABB, m math.Mat4) (*Cone, error) {
	if local.IsEmpty() {
		return nil, fmt.Errorf("cannot derive cone from an empty bounding box")
	}

	center := local.Center()
	apex := m.TransformPoint(math.NewVec3(center.X, local.Max.Y, center.Z))
	base := m.TransformPoint(math.NewVec3(center.X, local.Min.Y, center.Z))
	radius := local.Transformed(m).Size().X / 2

	return NewCone(apex, base, radius)
}

// intersectEpsilon guards the quadratic solve against degenerate
// coefficients
const intersectEpsilon = 1e-6

// Hit computes the nearest point where the ray enters the cone
// surface, clipped to the finite segment between apex and base.
// A miss is an expected outcome reported as ok=false, never as a
// sentinel point.
func (c *Cone) Hit(ray math.Ray) (Hit, bool) {
	d := ray.Direction.Normalize()
	if d.LengthSquared() == 0 {
		return Hit{}, false
	}

	// Vector from apex to ray origin
	co := ray.Origin.Subtract(c.Apex)

	cos2 := c.cosAngle * c.cosAngle
	dDotA := d.Dot(c.axis)
	coDotA := co.Dot(c.axis)

	// Quadratic coefficients: a*t^2 + b*t + cc = 0
	a := dDotA*dDotA - cos2
	b := 2 * (dDotA*coDotA - d.Dot(co)*cos2)
	cc := coDotA*coDotA - co.Dot(co)*cos2

	// Ray parallel to the cone's limiting angle: the quadratic
	// degenerates and the solve below would divide by ~0
	if math32.Abs(a) < intersectEpsilon {
		return Hit{}, false
	}

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		// Rounding can push a tangent ray's discriminant slightly
		// negative; clamp those to zero but keep genuinely negative
		// discriminants as misses
		if discriminant < -1e-4*math32.Abs(b*b) {
			return Hit{}, false
		}
		discriminant = 0
	}

	sqrtD := math32.Sqrt(discriminant)

	// Order the roots along the ray: when a is negative the
	// (-b - sqrtD) root is the farther one
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	// Take the nearer valid intersection, falling back to the exit
	// point when the ray starts inside the cone
	t := t0
	if !c.validateHit(ray.Origin, d, t) {
		t = t1
		if !c.validateHit(ray.Origin, d, t) {
			return Hit{}, false
		}
	}

	return Hit{Point: ray.Origin.Add(d.Multiply(t)), T: t}, true
}

// validateHit checks that an intersection at parameter t lies in front
// of the ray origin and on the finite cone between apex and base. The
// height clip also rejects points on the mirror nappe behind the apex.
func (c *Cone) validateHit(origin, d math.Vec3, t float32) bool {
	if math32.IsNaN(t) || math32.IsInf(t, 0) {
		return false
	}
	if t < 0 {
		return false
	}

	point := origin.Add(d.Multiply(t))
	h := point.Subtract(c.Apex).Dot(c.axis)

	epsilon := c.height * 1e-3
	return h >= -epsilon && h <= c.height+epsilon
}
