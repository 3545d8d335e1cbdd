package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseOBJ reads vertex positions ("v x y z" statements) from a
// Wavefront OBJ stream and returns them as a flat x,y,z array, the
// form the bounding box constructor consumes. Faces, normals, texture
// coordinates and all other statements are skipped; only the vertex
// cloud matters for bounding volumes.
func ParseOBJ(r io.Reader) ([]float32, error) {
	scanner := bufio.NewScanner(r)
	var verts []float32

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || fields[0] != "v" {
			continue
		}
		if len(fields) < 4 {
			return nil, fmt.Errorf("line %d: vertex needs 3 coordinates, got %d", lineNum, len(fields)-1)
		}

		for _, field := range fields[1:4] {
			value, err := strconv.ParseFloat(field, 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid coordinate %q: %w", lineNum, field, err)
			}
			verts = append(verts, float32(value))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read OBJ data: %w", err)
	}

	return verts, nil
}

// LoadOBJ reads vertex positions from an OBJ file on disk
func LoadOBJ(path string) ([]float32, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open OBJ file: %w", err)
	}
	defer file.Close()

	verts, err := ParseOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return verts, nil
}
