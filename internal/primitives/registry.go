package primitives

import (
	"fmt"

	"mesh-viewer/internal/mesh"
)

// Builder turns the record for its family (and the shared scale) into a mesh.
type Builder func(s Set) (*mesh.Mesh, error)

// builders maps each family to its generator. All regeneration goes through
// Build so there is one dispatch point for the four solids.
var builders = map[Family]Builder{
	Cube: func(s Set) (*mesh.Mesh, error) {
		return BuildCube(s.Scale)
	},
	Sphere: func(s Set) (*mesh.Mesh, error) {
		return BuildSphere(s.Sphere, s.Scale)
	},
	Cylinder: func(s Set) (*mesh.Mesh, error) {
		return BuildCylinder(s.Cylinder, s.Scale)
	},
	Torus: func(s Set) (*mesh.Mesh, error) {
		return BuildTorus(s.Torus, s.Scale)
	},
}

// Build generates the mesh for the active family of s. The result has passed
// mesh.Validate; on any error no mesh is returned.
func Build(s Set) (*mesh.Mesh, error) {
	build, ok := builders[s.Family]
	if !ok {
		return nil, &ParamError{Family: s.Family, Field: "family", Value: int(s.Family), Reason: "unknown solid"}
	}
	m, err := build(s)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", s.Family, err)
	}
	return m, nil
}
