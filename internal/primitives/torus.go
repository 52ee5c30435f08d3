package primitives

import (
	"github.com/go-gl/mathgl/mgl32"

	"mesh-viewer/internal/mesh"
)

// BuildTorus returns a torus around the z axis. The outer loop sweeps the tube
// center around the ring (angle α), the inner loop sweeps the tube cross
// section (angle β); both run to their segment count inclusive so the seams
// carry u=1 and v=1. Vertex (i,j) is at index i·(TubeSegments+1)+j.
// Triangles: 2·RingSegments·TubeSegments.
func BuildTorus(p TorusParams, scale mgl32.Vec3) (*mesh.Mesh, error) {
	if err := validateScale(Torus, scale); err != nil {
		return nil, err
	}
	if err := validateTorus(p); err != nil {
		return nil, err
	}
	rings, tubes := p.RingSegments, p.TubeSegments
	stride := uint32(tubes + 1)
	m := mesh.New((rings+1)*(tubes+1), 6*rings*tubes)
	cosA, sinA := unitCircle(rings)
	cosB, sinB := unitCircle(tubes)

	for i := 0; i <= rings; i++ {
		u := float32(i) / float32(rings)
		for j := 0; j <= tubes; j++ {
			r := p.RingRadius + p.TubeRadius*cosB[j]
			pos := mgl32.Vec3{r * cosA[i], r * sinA[i], p.TubeRadius * sinB[j]}
			m.Add(pos, mgl32.Vec2{u, float32(j) / float32(tubes)})
		}
	}
	for i := uint32(0); i < uint32(rings); i++ {
		for j := uint32(0); j < uint32(tubes); j++ {
			a := i*stride + j
			b := a + stride
			m.Quad(a, b, b+1, a+1)
		}
	}

	m.Scale(scale)
	return m, nil
}
