package view

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// SpinAxis is the auto-rotation axis (normalized on use).
var SpinAxis = mgl32.Vec3{1, 0.5, 0}

// Transform is the model transform of the displayed solid: a user rotation (Euler angles in
// degrees, applied x then y then z) followed by the auto-rotation accumulator.
type Transform struct {
	Rotation  mgl32.Vec3
	Spin      bool
	SpinSpeed float32 // degrees per second
	spinAngle float32
}

// NewTransform returns an identity transform spinning at speed degrees per second when enabled.
func NewTransform(spin bool, speed float32) *Transform {
	return &Transform{Spin: spin, SpinSpeed: speed}
}

// Advance accumulates dt seconds of auto-rotation. No-op while spin is off.
func (t *Transform) Advance(dt float32) {
	if !t.Spin || dt <= 0 {
		return
	}
	t.spinAngle = math32.Mod(t.spinAngle+t.SpinSpeed*dt, 360)
}

// ResetSpin zeroes the accumulated auto-rotation. Called when the displayed family changes.
func (t *Transform) ResetSpin() {
	t.spinAngle = 0
}

// SpinAngle is the accumulated auto-rotation in degrees.
func (t *Transform) SpinAngle() float32 {
	return t.spinAngle
}

// Model returns spin · Rz · Ry · Rx.
func (t *Transform) Model() mgl32.Mat4 {
	user := mgl32.HomogRotate3DZ(mgl32.DegToRad(t.Rotation[2])).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(t.Rotation[1]))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(t.Rotation[0])))
	if t.spinAngle == 0 {
		return user
	}
	spin := mgl32.HomogRotate3D(mgl32.DegToRad(t.spinAngle), SpinAxis.Normalize())
	return spin.Mul4(user)
}
