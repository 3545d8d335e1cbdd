package math

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestMat4_TransformPoint(t *testing.T) {
	tests := []struct {
		name     string
		matrix   Mat4
		point    Vec3
		expected Vec3
	}{
		{
			name:     "Identity",
			matrix:   Identity(),
			point:    NewVec3(1, 2, 3),
			expected: NewVec3(1, 2, 3),
		},
		{
			name:     "Translation",
			matrix:   Translation(1, -2, 3),
			point:    NewVec3(1, 1, 1),
			expected: NewVec3(2, -1, 4),
		},
		{
			name:     "Scaling",
			matrix:   Scaling(2, 3, 4),
			point:    NewVec3(1, 1, 1),
			expected: NewVec3(2, 3, 4),
		},
		{
			name:     "90 degree rotation around Y axis",
			matrix:   RotationY(math32.Pi / 2),
			point:    NewVec3(1, 0, 0),
			expected: NewVec3(0, 0, -1),
		},
		{
			name:     "180 degree rotation around Y axis",
			matrix:   RotationY(math32.Pi),
			point:    NewVec3(1, 0, 0),
			expected: NewVec3(-1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.matrix.TransformPoint(tt.point)

			const tolerance = 1e-6
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestMat4_Multiply_AppliesRightFirst(t *testing.T) {
	// Translation after scaling: scale (1,1,1) to (2,2,2), then move +1 in X
	m := Translation(1, 0, 0).Multiply(Scaling(2, 2, 2))
	result := m.TransformPoint(NewVec3(1, 1, 1))

	expected := NewVec3(3, 2, 2)
	const tolerance = 1e-6
	if result.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestMat4_TransformDirection_IgnoresTranslation(t *testing.T) {
	m := Translation(5, 5, 5)
	result := m.TransformDirection(NewVec3(0, 0, -1))

	if !result.Equals(NewVec3(0, 0, -1)) {
		t.Errorf("Expected direction unchanged, got %v", result)
	}
}
