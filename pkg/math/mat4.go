package math

import "github.com/chewxy/math32"

// Mat4 is a 4x4 affine transform in column-major order, the layout GL
// and AR runtimes hand over model matrices in. Element (row, col) is
// stored at index col*4+row.
type Mat4 [16]float32

// Identity returns the identity transform
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns a transform that translates by (x, y, z)
func Translation(x, y, z float32) Mat4 {
	m := Identity()
	m[12] = x
	m[13] = y
	m[14] = z
	return m
}

// Scaling returns a transform that scales by (x, y, z)
func Scaling(x, y, z float32) Mat4 {
	m := Identity()
	m[0] = x
	m[5] = y
	m[10] = z
	return m
}

// RotationY returns a transform that rotates by angle radians around
// the Y axis
func RotationY(angle float32) Mat4 {
	sin, cos := math32.Sincos(angle)
	m := Identity()
	m[0] = cos
	m[2] = -sin
	m[8] = sin
	m[10] = cos
	return m
}

// Multiply returns the product m * other, so that transforming a point
// by the result applies other first, then m.
func (m Mat4) Multiply(other Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * other[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// TransformPoint applies the transform to a point (homogeneous w=1)
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return Vec3{
		X: m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12],
		Y: m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13],
		Z: m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14],
	}
}

// TransformDirection applies the transform to a direction (w=0), so
// translation does not contribute
func (m Mat4) TransformDirection(d Vec3) Vec3 {
	return Vec3{
		X: m[0]*d.X + m[4]*d.Y + m[8]*d.Z,
		Y: m[1]*d.X + m[5]*d.Y + m[9]*d.Z,
		Z: m[2]*d.X + m[6]*d.Y + m[10]*d.Z,
	}
}
