package scene

import (
	"errors"
	"fmt"
	"sync"

	"github.com/df07/go-ar-hittest/pkg/geometry"
	"github.com/df07/go-ar-hittest/pkg/math"
)

// ErrUnknownKind is returned when a placement names a kind the catalog
// does not contain
var ErrUnknownKind = errors.New("unknown object kind")

// ErrCollision is returned when a placement's world bounds overlap an
// already placed object
var ErrCollision = errors.New("placement collides with existing object")

// Scene owns the placed objects and answers placement-collision and
// tap-hit queries against them. The geometry underneath is pure; the
// mutex only serializes access from concurrent HTTP handlers.
type Scene struct {
	mu      sync.RWMutex
	catalog *Catalog
	objects []*Object
	nextID  int
}

// NewScene creates a scene backed by the given catalog, or the default
// catalog when nil
func NewScene(catalog *Catalog) *Scene {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Scene{catalog: catalog, nextID: 1}
}

// Catalog returns the current object catalog
func (s *Scene) Catalog() *Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// SetCatalog swaps the object catalog, used for live config reload.
// Already placed objects keep their bounds.
func (s *Scene) SetCatalog(catalog *Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = catalog
}

// Place adds an object of the given catalog kind under the given model
// transform, using the catalog's default bounds for that kind
func (s *Scene) Place(kind string, model math.Mat4) (*Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.catalog.Entry(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return s.place(entry, entry.LocalBounds(), model)
}

// PlaceWithBounds adds an object with explicit object-local bounds,
// typically reduced from the model file's vertices
func (s *Scene) PlaceWithBounds(kind string, bounds geometry.AABB, model math.Mat4) (*Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.catalog.Entry(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return s.place(entry, bounds, model)
}

// place assumes s.mu is held
func (s *Scene) place(entry Entry, bounds geometry.AABB, model math.Mat4) (*Object, error) {
	obj := newObject(s.nextID, entry, bounds, model)

	world := obj.WorldBounds()
	for _, other := range s.objects {
		if world.Intersects(other.WorldBounds()) {
			return nil, fmt.Errorf("%q against %q #%d: %w", entry.Kind, other.Kind, other.ID, ErrCollision)
		}
	}

	s.nextID++
	s.objects = append(s.objects, obj)
	return obj, nil
}

// HitTest returns the nearest object hit by the world-space tap ray
func (s *Scene) HitTest(ray math.Ray) (*Object, geometry.Hit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var bestObj *Object
	var bestHit geometry.Hit

	for _, obj := range s.objects {
		if hit, ok := obj.HitTest(ray); ok {
			if bestObj == nil || hit.T < bestHit.T {
				bestObj = obj
				bestHit = hit
			}
		}
	}

	return bestObj, bestHit, bestObj != nil
}

// Objects returns a snapshot of the placed objects
func (s *Scene) Objects() []*Object {
	s.mu.RLock()
	defer s.mu.RUnlock()

	objects := make([]*Object, len(s.objects))
	copy(objects, s.objects)
	return objects
}

// Get returns the placed object with the given id
func (s *Scene) Get(id int) (*Object, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, obj := range s.objects {
		if obj.ID == id {
			return obj, true
		}
	}
	return nil, false
}

// Remove deletes the placed object with the given id
func (s *Scene) Remove(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, obj := range s.objects {
		if obj.ID == id {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes all placed objects
func (s *Scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = nil
}
