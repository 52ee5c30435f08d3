package primitives

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidParameter is the sentinel behind every rejected parameter set.
var ErrInvalidParameter = errors.New("invalid parameter")

// ParamError names the field that was rejected. It unwraps to ErrInvalidParameter.
type ParamError struct {
	Family Family
	Field  string
	Value  any
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s = %v: %s", e.Family, e.Field, e.Value, e.Reason)
}

func (e *ParamError) Unwrap() error {
	return ErrInvalidParameter
}

// Validate checks the parameters of the active family and the shared scale.
func Validate(s Set) error {
	if err := validateScale(s.Family, s.Scale); err != nil {
		return err
	}
	switch s.Family {
	case Cube:
		return nil
	case Sphere:
		return validateSphere(s.Sphere)
	case Cylinder:
		return validateCylinder(s.Cylinder)
	case Torus:
		return validateTorus(s.Torus)
	}
	return &ParamError{Family: s.Family, Field: "family", Value: int(s.Family), Reason: "unknown solid"}
}

func validateScale(f Family, scale mgl32.Vec3) error {
	for i, c := range scale {
		if !finite(c) || c <= 0 {
			return &ParamError{Family: f, Field: "scale." + "xyz"[i:i+1], Value: c, Reason: "must be positive and finite"}
		}
	}
	return nil
}

func validateSphere(p SphereParams) error {
	if err := positive(Sphere, "radius", p.Radius); err != nil {
		return err
	}
	if err := segments(Sphere, "widthSegments", p.WidthSegments); err != nil {
		return err
	}
	return segments(Sphere, "heightSegments", p.HeightSegments)
}

func validateCylinder(p CylinderParams) error {
	if err := nonNegative(Cylinder, "topRadius", p.TopRadius); err != nil {
		return err
	}
	if err := nonNegative(Cylinder, "bottomRadius", p.BottomRadius); err != nil {
		return err
	}
	if p.TopRadius == 0 && p.BottomRadius == 0 {
		return &ParamError{Family: Cylinder, Field: "topRadius", Value: p.TopRadius, Reason: "top and bottom radius cannot both be zero"}
	}
	if err := positive(Cylinder, "height", p.Height); err != nil {
		return err
	}
	return segments(Cylinder, "segments", p.Segments)
}

func validateTorus(p TorusParams) error {
	if err := positive(Torus, "ringRadius", p.RingRadius); err != nil {
		return err
	}
	if err := positive(Torus, "tubeRadius", p.TubeRadius); err != nil {
		return err
	}
	if err := segments(Torus, "ringSegments", p.RingSegments); err != nil {
		return err
	}
	return segments(Torus, "tubeSegments", p.TubeSegments)
}

func positive(f Family, field string, v float32) error {
	if !finite(v) || v <= 0 {
		return &ParamError{Family: f, Field: field, Value: v, Reason: "must be positive and finite"}
	}
	return nil
}

func nonNegative(f Family, field string, v float32) error {
	if !finite(v) || v < 0 {
		return &ParamError{Family: f, Field: field, Value: v, Reason: "must be non-negative and finite"}
	}
	return nil
}

func segments(f Family, field string, n int) error {
	if n < MinSegments || n > MaxSegments {
		return &ParamError{Family: f, Field: field, Value: n, Reason: fmt.Sprintf("must be in [%d,%d]", MinSegments, MaxSegments)}
	}
	return nil
}

func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
