package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-ar-hittest/pkg/geometry"
	"github.com/df07/go-ar-hittest/pkg/math"
)

func TestScene_Place(t *testing.T) {
	sc := NewScene(nil)

	obj, err := sc.Place("tree", math.Identity())
	require.NoError(t, err)
	assert.Equal(t, "tree", obj.Kind)
	assert.Equal(t, VolumeCone, obj.VolumeKind())
	assert.Len(t, sc.Objects(), 1)
}

func TestScene_Place_UnknownKind(t *testing.T) {
	sc := NewScene(nil)

	_, err := sc.Place("dragon", math.Identity())
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Empty(t, sc.Objects())
}

func TestScene_Place_Collision(t *testing.T) {
	sc := NewScene(nil)

	_, err := sc.Place("tree", math.Identity())
	require.NoError(t, err)

	// A bauble inside the tree's world bounds is rejected
	_, err = sc.Place("bauble", math.Translation(0, 0.5, 0))
	assert.ErrorIs(t, err, ErrCollision)
	assert.Len(t, sc.Objects(), 1)

	// Far enough away it is accepted
	_, err = sc.Place("bauble", math.Translation(3, 0, 0))
	require.NoError(t, err)
	assert.Len(t, sc.Objects(), 2)
}

func TestScene_Place_TouchingBoundsAllowed(t *testing.T) {
	sc := NewScene(&Catalog{Entries: []Entry{{
		Kind:      "crate",
		Volume:    VolumeBox,
		BoundsMin: []float32{-1, 0, -1},
		BoundsMax: []float32{1, 1, 1},
	}}})

	// Two crates sharing exactly one face do not collide: box overlap
	// uses strict inequality
	_, err := sc.Place("crate", math.Identity())
	require.NoError(t, err)

	_, err = sc.Place("crate", math.Translation(2, 0, 0))
	require.NoError(t, err)
}

func TestScene_HitTest_Nearest(t *testing.T) {
	sc := NewScene(nil)

	near, err := sc.Place("bauble", math.Translation(0, 0, -2))
	require.NoError(t, err)
	_, err = sc.Place("bauble", math.Translation(0, 0, -5))
	require.NoError(t, err)

	ray := math.NewRay(math.NewVec3(0, 0.1, 0), math.NewVec3(0, 0, -1))

	obj, hit, ok := sc.HitTest(ray)
	require.True(t, ok)
	assert.Equal(t, near.ID, obj.ID)
	assert.InDelta(t, 1.9, hit.T, 1e-3)
}

func TestScene_HitTest_ConeVolume(t *testing.T) {
	sc := NewScene(nil)

	// Tree centered two units in front of the camera; a ray through
	// the trunk axis hits the cone surface at z = -1.8
	_, err := sc.Place("tree", math.Translation(0, -0.8, -2))
	require.NoError(t, err)

	ray := math.NewRay(math.NewVec3(0, 0, 0), math.NewVec3(0, 0, -1))

	obj, hit, ok := sc.HitTest(ray)
	require.True(t, ok)
	assert.Equal(t, "tree", obj.Kind)
	assert.InDelta(t, 1.8, hit.T, 1e-3)
	assert.InDelta(t, -1.8, hit.Point.Z, 1e-3)
}

func TestScene_HitTest_Miss(t *testing.T) {
	sc := NewScene(nil)

	_, err := sc.Place("tree", math.Translation(0, 0, -2))
	require.NoError(t, err)

	ray := math.NewRay(math.NewVec3(0, 0, 0), math.NewVec3(0, 0, 1))

	_, _, ok := sc.HitTest(ray)
	assert.False(t, ok)
}

func TestScene_RemoveAndClear(t *testing.T) {
	sc := NewScene(nil)

	obj, err := sc.Place("tree", math.Identity())
	require.NoError(t, err)

	assert.True(t, sc.Remove(obj.ID))
	assert.False(t, sc.Remove(obj.ID))
	assert.Empty(t, sc.Objects())

	_, err = sc.Place("tree", math.Identity())
	require.NoError(t, err)
	sc.Clear()
	assert.Empty(t, sc.Objects())
}

func TestScene_SetCatalog(t *testing.T) {
	sc := NewScene(nil)
	sc.SetCatalog(&Catalog{Entries: []Entry{{
		Kind:      "crate",
		Volume:    VolumeBox,
		BoundsMin: []float32{-1, 0, -1},
		BoundsMax: []float32{1, 1, 1},
	}}})

	_, err := sc.Place("tree", math.Identity())
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = sc.Place("crate", math.Identity())
	assert.NoError(t, err)
}

func TestObject_WorldBounds(t *testing.T) {
	sc := NewScene(nil)

	obj, err := sc.Place("tree", math.Translation(2, 0, -3))
	require.NoError(t, err)

	world := obj.WorldBounds()
	local := obj.LocalBounds()
	assert.InDelta(t, float64(local.Min.X+2), float64(world.Min.X), 1e-6)
	assert.InDelta(t, float64(local.Max.Z-3), float64(world.Max.Z), 1e-6)

	// Updating the anchor transform moves the world bounds next query
	obj.SetModelMatrix(math.Translation(-2, 0, -3))
	world = obj.WorldBounds()
	assert.InDelta(t, float64(local.Min.X-2), float64(world.Min.X), 1e-6)
}

func TestObject_HitTest_DegenerateBounds(t *testing.T) {
	sc := NewScene(nil)

	// Flat bounds cannot produce a cone; the tap must miss, not panic
	obj, err := sc.PlaceWithBounds("tree",
		geometry.NewAABB(math.NewVec3(0, 0, 0), math.NewVec3(0, 1, 0)),
		math.Identity())
	require.NoError(t, err)

	ray := math.NewRay(math.NewVec3(0, 0.5, 5), math.NewVec3(0, 0, -1))
	_, ok := obj.HitTest(ray)
	assert.False(t, ok)
}

func TestCamera_Unproject(t *testing.T) {
	camera := NewCamera(math.NewVec3(0, 0, 0), 1)

	center := camera.Unproject(0.5, 0.5)
	assert.True(t, center.Direction.ApproxEquals(math.NewVec3(0, 0, -1), 1e-6),
		"center tap should look straight down -Z, got %v", center.Direction)
	assert.InDelta(t, 1.0, float64(center.Direction.Length()), 1e-6)

	right := camera.Unproject(1, 0.5)
	assert.Greater(t, right.Direction.X, float32(0))

	top := camera.Unproject(0.5, 1)
	assert.Greater(t, top.Direction.Y, float32(0))
}
