package mesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrCorrupt is returned by Validate when a mesh breaks one of its invariants.
	ErrCorrupt = errors.New("corrupt mesh")
	// ErrIndexRange is returned when a mesh cannot be addressed by a 16-bit index buffer.
	ErrIndexRange = errors.New("mesh too large for 16-bit indices")
)

// Vertex is one corner of the mesh: object-space position and a texture coordinate
// normalized to [0,1] along each parametric axis of the solid.
type Vertex struct {
	Position mgl32.Vec3
	UV       mgl32.Vec2
}

// Mesh is a triangle list. Every three indices form one triangle, wound
// counter-clockwise when seen from outside the solid.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// New returns an empty mesh with room for the given number of vertices and indices.
func New(vertexCap, indexCap int) *Mesh {
	return &Mesh{
		Vertices: make([]Vertex, 0, vertexCap),
		Indices:  make([]uint32, 0, indexCap),
	}
}

// Add appends a vertex and returns its index.
func (m *Mesh) Add(pos mgl32.Vec3, uv mgl32.Vec2) uint32 {
	m.Vertices = append(m.Vertices, Vertex{Position: pos, UV: uv})
	return uint32(len(m.Vertices) - 1)
}

// Triangle appends one triangle.
func (m *Mesh) Triangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// Quad appends the two triangles (a,b,c) and (a,c,d). Corners must be given
// counter-clockwise as seen from the front.
func (m *Mesh) Quad(a, b, c, d uint32) {
	m.Indices = append(m.Indices, a, b, c, a, c, d)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns len(Indices)/3.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Scale multiplies every position per axis.
func (m *Mesh) Scale(s mgl32.Vec3) {
	for i := range m.Vertices {
		p := &m.Vertices[i].Position
		p[0] *= s[0]
		p[1] *= s[1]
		p[2] *= s[2]
	}
}

// Validate checks the mesh invariants: the index list is a whole number of
// triangles, every index addresses a vertex, and positions and UVs are finite
// with UVs inside [0,1].
func (m *Mesh) Validate() error {
	if m == nil {
		return fmt.Errorf("%w: nil mesh", ErrCorrupt)
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices is not a multiple of 3", ErrCorrupt, len(m.Indices))
	}
	n := uint32(len(m.Vertices))
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("%w: index %d at %d out of range (%d vertices)", ErrCorrupt, idx, i, n)
		}
	}
	for i, v := range m.Vertices {
		for _, c := range v.Position {
			if !finite(c) {
				return fmt.Errorf("%w: vertex %d has non-finite position %v", ErrCorrupt, i, v.Position)
			}
		}
		for _, c := range v.UV {
			if !finite(c) || c < 0 || c > 1 {
				return fmt.Errorf("%w: vertex %d has uv %v outside [0,1]", ErrCorrupt, i, v.UV)
			}
		}
	}
	return nil
}

// Positions returns the positions packed as x,y,z per vertex.
func (m *Mesh) Positions() []float32 {
	out := make([]float32, 0, len(m.Vertices)*3)
	for _, v := range m.Vertices {
		out = append(out, v.Position[0], v.Position[1], v.Position[2])
	}
	return out
}

// TexCoords returns the texture coordinates packed as u,v per vertex.
func (m *Mesh) TexCoords() []float32 {
	out := make([]float32, 0, len(m.Vertices)*2)
	for _, v := range m.Vertices {
		out = append(out, v.UV[0], v.UV[1])
	}
	return out
}

// Interleaved returns x,y,z,u,v per vertex, the layout of an interleaved
// position+UV vertex buffer.
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Vertices)*5)
	for _, v := range m.Vertices {
		out = append(out, v.Position[0], v.Position[1], v.Position[2], v.UV[0], v.UV[1])
	}
	return out
}

// Indices16 narrows the index list for renderers that only take 16-bit index buffers.
func (m *Mesh) Indices16() ([]uint16, error) {
	if len(m.Vertices) > math.MaxUint16+1 {
		return nil, fmt.Errorf("%w: %d vertices", ErrIndexRange, len(m.Vertices))
	}
	out := make([]uint16, len(m.Indices))
	for i, idx := range m.Indices {
		out[i] = uint16(idx)
	}
	return out, nil
}

// Bounds returns the axis-aligned bounding box of all positions. An empty mesh
// returns two zero vectors.
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3) {
	if len(m.Vertices) == 0 {
		return lo, hi
	}
	lo = m.Vertices[0].Position
	hi = lo
	for _, v := range m.Vertices[1:] {
		for k := 0; k < 3; k++ {
			lo[k] = math32.Min(lo[k], v.Position[k])
			hi[k] = math32.Max(hi[k], v.Position[k])
		}
	}
	return lo, hi
}

// Equal reports whether both meshes hold bit-identical vertex and index sequences.
func (m *Mesh) Equal(other *Mesh) bool {
	if m == nil || other == nil {
		return m == other
	}
	if len(m.Vertices) != len(other.Vertices) || len(m.Indices) != len(other.Indices) {
		return false
	}
	for i, v := range m.Vertices {
		o := other.Vertices[i]
		for k := 0; k < 3; k++ {
			if math.Float32bits(v.Position[k]) != math.Float32bits(o.Position[k]) {
				return false
			}
		}
		for k := 0; k < 2; k++ {
			if math.Float32bits(v.UV[k]) != math.Float32bits(o.UV[k]) {
				return false
			}
		}
	}
	for i, idx := range m.Indices {
		if idx != other.Indices[i] {
			return false
		}
	}
	return true
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
