package primitives

import (
	"github.com/go-gl/mathgl/mgl32"

	"mesh-viewer/internal/mesh"
)

// BuildCylinder returns a capped cylinder along the z axis, centered at the
// origin. Vertex order: top cap center, Segments+1 top ring vertices,
// Segments+1 bottom ring vertices, bottom cap center. Triangles: 4·Segments
// (one fan per cap plus two per side quad).
func BuildCylinder(p CylinderParams, scale mgl32.Vec3) (*mesh.Mesh, error) {
	if err := validateScale(Cylinder, scale); err != nil {
		return nil, err
	}
	if err := validateCylinder(p); err != nil {
		return nil, err
	}
	n := p.Segments
	stride := uint32(n + 1)
	m := mesh.New(2*n+4, 12*n)
	cos, sin := unitCircle(n)
	half := p.Height / 2

	top := m.Add(mgl32.Vec3{0, 0, half}, mgl32.Vec2{0.5, 1})
	for j := 0; j <= n; j++ {
		m.Add(mgl32.Vec3{p.TopRadius * cos[j], p.TopRadius * sin[j], half}, mgl32.Vec2{float32(j) / float32(n), 1})
	}
	for j := 0; j <= n; j++ {
		m.Add(mgl32.Vec3{p.BottomRadius * cos[j], p.BottomRadius * sin[j], -half}, mgl32.Vec2{float32(j) / float32(n), 0})
	}
	bottom := m.Add(mgl32.Vec3{0, 0, -half}, mgl32.Vec2{0.5, 0})

	upper := top + 1
	lower := upper + stride
	for j := uint32(0); j < uint32(n); j++ {
		m.Triangle(top, upper+j, upper+j+1)
	}
	for j := uint32(0); j < uint32(n); j++ {
		m.Triangle(bottom, lower+j+1, lower+j)
	}
	for j := uint32(0); j < uint32(n); j++ {
		m.Quad(upper+j, lower+j, lower+j+1, upper+j+1)
	}

	m.Scale(scale)
	return m, nil
}
