package debug

import (
	"fmt"

	"mesh-viewer/internal/mesh"
	"mesh-viewer/internal/primitives"
)

// errLine is the index of the error line in Stats.Lines when Err is set.
const errLine = 3

// Stats is the mesh readout shown at the top-left.
type Stats struct {
	Params     primitives.Set
	Vertices   int
	Triangles  int
	Generation uint64
	Wireframe  bool
	Err        error
}

// NewStats captures the readout for a freshly built mesh.
func NewStats(p primitives.Set, m *mesh.Mesh, generation uint64) Stats {
	return Stats{
		Params:     p,
		Vertices:   m.VertexCount(),
		Triangles:  m.TriangleCount(),
		Generation: generation,
	}
}

// Lines formats the readout, one entry per overlay line.
func (s Stats) Lines() []string {
	mode := "textured"
	if s.Wireframe {
		mode = "wireframe"
	}
	lines := []string{
		s.Params.Summary(),
		fmt.Sprintf("vertices: %d  triangles: %d", s.Vertices, s.Triangles),
		fmt.Sprintf("mesh #%d  %s", s.Generation, mode),
	}
	if s.Err != nil {
		lines = append(lines, "error: "+s.Err.Error())
	}
	return lines
}
