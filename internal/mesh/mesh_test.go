package mesh

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quad() *Mesh {
	m := New(4, 6)
	a := m.Add(mgl32.Vec3{0, 0, 0}, mgl32.Vec2{0, 0})
	b := m.Add(mgl32.Vec3{1, 0, 0}, mgl32.Vec2{1, 0})
	c := m.Add(mgl32.Vec3{1, 1, 0}, mgl32.Vec2{1, 1})
	d := m.Add(mgl32.Vec3{0, 1, 0}, mgl32.Vec2{0, 1})
	m.Quad(a, b, c, d)
	return m
}

func TestQuadSplitsIntoTwoTriangles(t *testing.T) {
	m := quad()
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, m.Indices)
	assert.Equal(t, 2, m.TriangleCount())
	assert.Equal(t, 4, m.VertexCount())
	require.NoError(t, m.Validate())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(m *Mesh)
	}{
		{"partial triangle", func(m *Mesh) { m.Indices = append(m.Indices, 0) }},
		{"index out of range", func(m *Mesh) { m.Indices[5] = 4 }},
		{"nan position", func(m *Mesh) { m.Vertices[2].Position[1] = float32(math.NaN()) }},
		{"inf position", func(m *Mesh) { m.Vertices[0].Position[2] = float32(math.Inf(-1)) }},
		{"uv above one", func(m *Mesh) { m.Vertices[1].UV[0] = 1.5 }},
		{"negative uv", func(m *Mesh) { m.Vertices[3].UV[1] = -0.25 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := quad()
			tc.mutate(m)
			assert.ErrorIs(t, m.Validate(), ErrCorrupt)
		})
	}

	var nilMesh *Mesh
	assert.ErrorIs(t, nilMesh.Validate(), ErrCorrupt)
}

func TestEmptyMeshIsValid(t *testing.T) {
	m := New(0, 0)
	require.NoError(t, m.Validate())
	assert.Zero(t, m.TriangleCount())
}

func TestBufferViews(t *testing.T) {
	m := quad()
	assert.Equal(t, []float32{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0}, m.Positions())
	assert.Equal(t, []float32{0, 0, 1, 0, 1, 1, 0, 1}, m.TexCoords())

	inter := m.Interleaved()
	require.Len(t, inter, 20)
	assert.Equal(t, []float32{1, 1, 0, 1, 1}, inter[10:15])

	idx, err := m.Indices16()
	require.NoError(t, err)
	assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3}, idx)
}

func TestIndices16RejectsLargeMeshes(t *testing.T) {
	m := &Mesh{Vertices: make([]Vertex, math.MaxUint16+2)}
	_, err := m.Indices16()
	assert.ErrorIs(t, err, ErrIndexRange)

	m.Vertices = m.Vertices[:math.MaxUint16+1]
	_, err = m.Indices16()
	assert.NoError(t, err)
}

func TestScaleAndBounds(t *testing.T) {
	m := quad()
	m.Scale(mgl32.Vec3{2, 3, 4})
	lo, hi := m.Bounds()
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, lo)
	assert.Equal(t, mgl32.Vec3{2, 3, 0}, hi)
	assert.Equal(t, mgl32.Vec2{1, 1}, m.Vertices[2].UV)

	lo, hi = New(0, 0).Bounds()
	assert.Equal(t, mgl32.Vec3{}, lo)
	assert.Equal(t, mgl32.Vec3{}, hi)
}

func TestEqual(t *testing.T) {
	a, b := quad(), quad()
	assert.True(t, a.Equal(b))

	b.Vertices[1].UV[0] = 0.999
	assert.False(t, a.Equal(b))

	b = quad()
	b.Indices[0] = 3
	assert.False(t, a.Equal(b))

	var nilMesh *Mesh
	assert.True(t, nilMesh.Equal(nil))
	assert.False(t, a.Equal(nil))
}
