package primitives

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Family tags which solid a parameter set describes.
type Family int

const (
	Cube Family = iota
	Sphere
	Cylinder
	Torus
)

// Families lists every solid family in selection order.
var Families = []Family{Cube, Sphere, Cylinder, Torus}

var familyNames = map[Family]string{
	Cube:     "cube",
	Sphere:   "sphere",
	Cylinder: "cylinder",
	Torus:    "torus",
}

func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return fmt.Sprintf("family(%d)", int(f))
}

// ParseFamily maps a name (case-insensitive) to a Family. "donut" is accepted for Torus.
func ParseFamily(name string) (Family, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "donut" {
		return Torus, nil
	}
	for f, n := range familyNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown solid %q (use cube, sphere, cylinder, or torus)", name)
}

// Segment count limits. MinSegments is the smallest triangulable ring. MaxSegments keeps
// the largest solid (a torus with (n+1)² vertices) addressable by the renderer's 16-bit
// index buffer, so every mesh that builds can also be drawn.
const (
	MinSegments = 3
	MaxSegments = 255
)

// CubeParams has no shape parameters: the cube is always the unit box.
type CubeParams struct{}

// SphereParams describes a UV sphere. WidthSegments are longitude divisions,
// HeightSegments latitude divisions.
type SphereParams struct {
	Radius         float32
	WidthSegments  int
	HeightSegments int
}

// CylinderParams describes a capped cylinder. Unequal radii give a frustum,
// a zero radius gives a cone.
type CylinderParams struct {
	TopRadius    float32
	BottomRadius float32
	Height       float32
	Segments     int
}

// TorusParams describes a torus. RingRadius is the distance from the center to
// the tube center.
type TorusParams struct {
	RingRadius   float32
	TubeRadius   float32
	RingSegments int
	TubeSegments int
}

// Set is the parameter state of the viewer: the active family plus one record
// per family and the scale shared by all of them.
type Set struct {
	Family   Family
	Scale    mgl32.Vec3
	Cube     CubeParams
	Sphere   SphereParams
	Cylinder CylinderParams
	Torus    TorusParams
}

// UnitScale is the identity scale.
var UnitScale = mgl32.Vec3{1, 1, 1}

// DefaultSet returns the parameters the viewer starts with.
func DefaultSet() Set {
	return Set{
		Family: Cube,
		Scale:  UnitScale,
		Sphere: SphereParams{
			Radius:         5,
			WidthSegments:  10,
			HeightSegments: 10,
		},
		Cylinder: CylinderParams{
			TopRadius:    5,
			BottomRadius: 5,
			Height:       4,
			Segments:     10,
		},
		Torus: TorusParams{
			RingRadius:   5,
			TubeRadius:   2,
			RingSegments: 40,
			TubeSegments: 40,
		},
	}
}

// Identical reports whether s and o hold bit-identical values. Unlike ==, a NaN field
// matches itself.
func (s Set) Identical(o Set) bool {
	return s.SameSolid(o) &&
		s.Sphere.identical(o.Sphere) &&
		s.Cylinder.identical(o.Cylinder) &&
		s.Torus.identical(o.Torus)
}

// SameSolid reports whether s and o describe the same mesh: same family, scale and active
// record, bit for bit. Records of inactive families are ignored.
func (s Set) SameSolid(o Set) bool {
	if s.Family != o.Family || !sameVec(s.Scale, o.Scale) {
		return false
	}
	switch s.Family {
	case Sphere:
		return s.Sphere.identical(o.Sphere)
	case Cylinder:
		return s.Cylinder.identical(o.Cylinder)
	case Torus:
		return s.Torus.identical(o.Torus)
	}
	return true
}

func (p SphereParams) identical(o SphereParams) bool {
	return sameBits(p.Radius, o.Radius) &&
		p.WidthSegments == o.WidthSegments &&
		p.HeightSegments == o.HeightSegments
}

func (p CylinderParams) identical(o CylinderParams) bool {
	return sameBits(p.TopRadius, o.TopRadius) &&
		sameBits(p.BottomRadius, o.BottomRadius) &&
		sameBits(p.Height, o.Height) &&
		p.Segments == o.Segments
}

func (p TorusParams) identical(o TorusParams) bool {
	return sameBits(p.RingRadius, o.RingRadius) &&
		sameBits(p.TubeRadius, o.TubeRadius) &&
		p.RingSegments == o.RingSegments &&
		p.TubeSegments == o.TubeSegments
}

func sameVec(a, b mgl32.Vec3) bool {
	for i := range a {
		if !sameBits(a[i], b[i]) {
			return false
		}
	}
	return true
}

func sameBits(a, b float32) bool {
	return math32.Float32bits(a) == math32.Float32bits(b)
}

// Summary is a one-line description of the active family's parameters.
func (s Set) Summary() string {
	var b strings.Builder
	b.WriteString(s.Family.String())
	switch s.Family {
	case Sphere:
		fmt.Fprintf(&b, " r=%.2f w=%d h=%d", s.Sphere.Radius, s.Sphere.WidthSegments, s.Sphere.HeightSegments)
	case Cylinder:
		fmt.Fprintf(&b, " top=%.2f bottom=%.2f height=%.2f seg=%d",
			s.Cylinder.TopRadius, s.Cylinder.BottomRadius, s.Cylinder.Height, s.Cylinder.Segments)
	case Torus:
		fmt.Fprintf(&b, " ring=%.2f tube=%.2f seg=%dx%d",
			s.Torus.RingRadius, s.Torus.TubeRadius, s.Torus.RingSegments, s.Torus.TubeSegments)
	}
	fmt.Fprintf(&b, " scale=%.2f,%.2f,%.2f", s.Scale[0], s.Scale[1], s.Scale[2])
	return b.String()
}
