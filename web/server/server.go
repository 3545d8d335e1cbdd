package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/df07/go-ar-hittest/pkg/math"
	"github.com/df07/go-ar-hittest/pkg/scene"
)

// Server exposes scene placement and tap-hit queries over HTTP
type Server struct {
	port   int
	scene  *scene.Scene
	camera *scene.Camera
}

// NewServer creates a new web server around a scene and tap camera
func NewServer(port int, sc *scene.Scene, camera *scene.Camera) *Server {
	return &Server{port: port, scene: sc, camera: camera}
}

// PlaceRequest represents an object placement request from the client
type PlaceRequest struct {
	Kind      string     `json:"kind"`      // Catalog kind (e.g. "tree")
	Position  [3]float32 `json:"position"`  // World-space anchor position
	RotationY float32    `json:"rotationY"` // Rotation around Y in radians
	Scale     float32    `json:"scale"`     // Uniform scale, 0 means 1
}

// ObjectInfo describes a placed object in responses
type ObjectInfo struct {
	ID        int        `json:"id"`
	Kind      string     `json:"kind"`
	Volume    string     `json:"volume"`
	BoundsMin [3]float32 `json:"boundsMin"` // World-space bounds
	BoundsMax [3]float32 `json:"boundsMax"`
}

// TapRequest represents a tap query in normalized screen coordinates
type TapRequest struct {
	X float32 `json:"x"` // 0 (left) .. 1 (right)
	Y float32 `json:"y"` // 0 (bottom) .. 1 (top)
}

// TapResponse reports the tap-hit result. A miss sets only Hit=false;
// hit coordinates are never reported for misses.
type TapResponse struct {
	Hit      bool       `json:"hit"`
	ID       int        `json:"id,omitempty"`
	Kind     string     `json:"kind,omitempty"`
	Point    [3]float32 `json:"point,omitempty"`
	Distance float32    `json:"distance,omitempty"`
}

// Start starts the web server
func (s *Server) Start() error {
	http.HandleFunc("/api/health", s.HandleHealth)
	http.HandleFunc("/api/objects", s.HandleObjects)
	http.HandleFunc("/api/tap", s.HandleTap)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting tap-hit server on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

// HandleHealth provides a simple health check endpoint
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// HandleObjects lists placed objects on GET and places a new object on
// POST
func (s *Server) HandleObjects(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listObjects(w)
	case http.MethodPost:
		s.placeObject(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) listObjects(w http.ResponseWriter) {
	objects := s.scene.Objects()
	infos := make([]ObjectInfo, 0, len(objects))
	for _, obj := range objects {
		infos = append(infos, objectInfo(obj))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(infos)
}

func (s *Server) placeObject(w http.ResponseWriter, r *http.Request) {
	var req PlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request: %v", err), http.StatusBadRequest)
		return
	}

	scale := req.Scale
	if scale == 0 {
		scale = 1
	}

	// Anchor pose: translate, then rotate around Y, then scale
	model := math.Translation(req.Position[0], req.Position[1], req.Position[2]).
		Multiply(math.RotationY(req.RotationY)).
		Multiply(math.Scaling(scale, scale, scale))

	obj, err := s.scene.Place(req.Kind, model)
	if err != nil {
		switch {
		case errors.Is(err, scene.ErrUnknownKind):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, scene.ErrCollision):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	log.Printf("Placed %q #%d at (%.2f, %.2f, %.2f)", obj.Kind, obj.ID,
		req.Position[0], req.Position[1], req.Position[2])

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(objectInfo(obj))
}

// HandleTap unprojects a screen tap and reports the nearest hit object
func (s *Server) HandleTap(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req TapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request: %v", err), http.StatusBadRequest)
		return
	}
	if req.X < 0 || req.X > 1 || req.Y < 0 || req.Y > 1 {
		http.Error(w, "tap coordinates must be within [0, 1]", http.StatusBadRequest)
		return
	}

	ray := s.camera.Unproject(req.X, req.Y)

	resp := TapResponse{}
	if obj, hit, ok := s.scene.HitTest(ray); ok {
		resp = TapResponse{
			Hit:      true,
			ID:       obj.ID,
			Kind:     obj.Kind,
			Point:    [3]float32{hit.Point.X, hit.Point.Y, hit.Point.Z},
			Distance: hit.T,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func objectInfo(obj *scene.Object) ObjectInfo {
	world := obj.WorldBounds()
	return ObjectInfo{
		ID:        obj.ID,
		Kind:      obj.Kind,
		Volume:    string(obj.VolumeKind()),
		BoundsMin: [3]float32{world.Min.X, world.Min.Y, world.Min.Z},
		BoundsMax: [3]float32{world.Max.X, world.Max.Y, world.Max.Z},
	}
}
