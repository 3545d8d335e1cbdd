package scene

import (
	"github.com/df07/go-ar-hittest/pkg/math"
)

// Camera unprojects screen taps into world-space rays
type Camera struct {
	origin          math.Vec3
	lowerLeftCorner math.Vec3
	horizontal      math.Vec3
	vertical        math.Vec3
}

// NewCamera creates a pinhole camera at the given origin looking down
// -Z with the given aspect ratio (width / height)
func NewCamera(origin math.Vec3, aspectRatio float32) *Camera {
	viewportHeight := float32(2.0)
	viewportWidth := aspectRatio * viewportHeight
	focalLength := float32(1.0)

	horizontal := math.NewVec3(viewportWidth, 0, 0)
	vertical := math.NewVec3(0, viewportHeight, 0)
	lowerLeftCorner := origin.Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(math.NewVec3(0, 0, focalLength))

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// Unproject generates the world-space tap ray for screen coordinates
// (s, t) where 0 <= s,t <= 1, s to the right and t up. The returned
// direction is unit length.
func (c *Camera) Unproject(s, t float32) math.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Normalize()

	return math.NewRay(c.origin, direction)
}
