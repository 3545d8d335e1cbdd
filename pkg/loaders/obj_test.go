package loaders

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOBJ(t *testing.T) {
	input := `# simple pyramid
v -1.0 0.0 -1.0
v 1.0 0.0 -1.0
v 0.0 2.0 0.0
vn 0.0 1.0 0.0
vt 0.5 0.5
f 1 2 3
`

	verts, err := ParseOBJ(strings.NewReader(input))
	require.NoError(t, err)

	expected := []float32{-1, 0, -1, 1, 0, -1, 0, 2, 0}
	assert.Equal(t, expected, verts)
}

func TestParseOBJ_VertexWithColor(t *testing.T) {
	// Some exporters append RGB after the position; only x,y,z count
	verts, err := ParseOBJ(strings.NewReader("v 1 2 3 0.5 0.5 0.5\n"))
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3}, verts)
}

func TestParseOBJ_Empty(t *testing.T) {
	verts, err := ParseOBJ(strings.NewReader("# nothing here\n"))
	require.NoError(t, err)
	assert.Empty(t, verts)
}

func TestParseOBJ_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "short vertex", input: "v 1.0 2.0\n"},
		{name: "bad coordinate", input: "v 1.0 two 3.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOBJ(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestLoadOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.obj")
	require.NoError(t, os.WriteFile(path, []byte("v 0 0 0\nv 1 1 1\n"), 0644))

	verts, err := LoadOBJ(path)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 0, 1, 1, 1}, verts)
}

func TestLoadOBJ_MissingFile(t *testing.T) {
	_, err := LoadOBJ(filepath.Join(t.TempDir(), "missing.obj"))
	assert.Error(t, err)
}
