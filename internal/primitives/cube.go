package primitives

import (
	"github.com/go-gl/mathgl/mgl32"

	"mesh-viewer/internal/mesh"
)

// cubeFace is one side of the unit box: its outward normal and the two in-plane
// axes, chosen so right × up = normal.
type cubeFace struct {
	normal, right, up mgl32.Vec3
}

var cubeFaces = [6]cubeFace{
	{normal: mgl32.Vec3{1, 0, 0}, right: mgl32.Vec3{0, 1, 0}, up: mgl32.Vec3{0, 0, 1}},
	{normal: mgl32.Vec3{-1, 0, 0}, right: mgl32.Vec3{0, -1, 0}, up: mgl32.Vec3{0, 0, 1}},
	{normal: mgl32.Vec3{0, 1, 0}, right: mgl32.Vec3{-1, 0, 0}, up: mgl32.Vec3{0, 0, 1}},
	{normal: mgl32.Vec3{0, -1, 0}, right: mgl32.Vec3{1, 0, 0}, up: mgl32.Vec3{0, 0, 1}},
	{normal: mgl32.Vec3{0, 0, 1}, right: mgl32.Vec3{1, 0, 0}, up: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{0, 0, -1}, right: mgl32.Vec3{-1, 0, 0}, up: mgl32.Vec3{0, 1, 0}},
}

// cubeCorners walks a face counter-clockwise from its lower-left corner, in
// (right, up) coordinates, matching the UVs (0,0),(1,0),(1,1),(0,1).
var cubeCorners = [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// BuildCube returns the unit box centered at the origin: 24 vertices (four per
// face so every face has its own UV square) and 12 triangles.
func BuildCube(scale mgl32.Vec3) (*mesh.Mesh, error) {
	if err := validateScale(Cube, scale); err != nil {
		return nil, err
	}
	m := mesh.New(24, 36)
	for _, f := range cubeFaces {
		center := f.normal.Mul(0.5)
		var idx [4]uint32
		for k, uv := range cubeCorners {
			pos := center.
				Add(f.right.Mul(uv[0] - 0.5)).
				Add(f.up.Mul(uv[1] - 0.5))
			idx[k] = m.Add(pos, uv)
		}
		m.Quad(idx[0], idx[1], idx[2], idx[3])
	}
	m.Scale(scale)
	return m, nil
}
