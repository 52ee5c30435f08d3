package primitives

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"mesh-viewer/internal/mesh"
)

// BuildSphere returns a UV sphere around the z axis. Vertices are the north pole
// (0,0,+r), HeightSegments-1 latitude rings of WidthSegments+1 vertices each (the
// last repeats the first so u runs 0..1), and the south pole (0,0,-r).
// Triangles: 2·WidthSegments·(HeightSegments-1).
func BuildSphere(p SphereParams, scale mgl32.Vec3) (*mesh.Mesh, error) {
	if err := validateScale(Sphere, scale); err != nil {
		return nil, err
	}
	if err := validateSphere(p); err != nil {
		return nil, err
	}
	w, h := p.WidthSegments, p.HeightSegments
	stride := uint32(w + 1)
	m := mesh.New(2+(h-1)*(w+1), 6*w*(h-1))
	cos, sin := unitCircle(w)

	north := m.Add(mgl32.Vec3{0, 0, p.Radius}, mgl32.Vec2{0.5, 0})
	for i := 1; i < h; i++ {
		theta := math32.Pi * float32(i) / float32(h)
		ringR := p.Radius * math32.Sin(theta)
		z := p.Radius * math32.Cos(theta)
		v := float32(i) / float32(h)
		for j := 0; j <= w; j++ {
			m.Add(mgl32.Vec3{ringR * cos[j], ringR * sin[j], z}, mgl32.Vec2{float32(j) / float32(w), v})
		}
	}
	south := m.Add(mgl32.Vec3{0, 0, -p.Radius}, mgl32.Vec2{0.5, 1})

	first := north + 1
	for j := uint32(0); j < uint32(w); j++ {
		m.Triangle(north, first+j, first+j+1)
	}
	for i := 0; i < h-2; i++ {
		upper := first + uint32(i)*stride
		lower := upper + stride
		for j := uint32(0); j < uint32(w); j++ {
			m.Quad(upper+j, lower+j, lower+j+1, upper+j+1)
		}
	}
	last := first + uint32(h-2)*stride
	for j := uint32(0); j < uint32(w); j++ {
		m.Triangle(south, last+j+1, last+j)
	}

	m.Scale(scale)
	return m, nil
}

// unitCircle returns cos and sin at n+1 evenly spaced angles from 0 to 2π.
// Entry n repeats entry 0 exactly so seam vertices share a position.
func unitCircle(n int) (cos, sin []float32) {
	cos = make([]float32, n+1)
	sin = make([]float32, n+1)
	for j := 0; j < n; j++ {
		a := 2 * math32.Pi * float32(j) / float32(n)
		cos[j], sin[j] = math32.Cos(a), math32.Sin(a)
	}
	cos[n], sin[n] = cos[0], sin[0]
	return cos, sin
}
