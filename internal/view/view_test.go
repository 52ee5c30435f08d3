package view

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestOrbitPitchClamped(t *testing.T) {
	o := NewOrbit(10, 0, 0)
	o.Drag(0, 10000)
	assert.Equal(t, float32(MaxPitch), o.Pitch)
	o.Drag(0, -10000)
	assert.Equal(t, float32(-MaxPitch), o.Pitch)
}

func TestOrbitYawWraps(t *testing.T) {
	o := NewOrbit(10, 10, 0)
	o.Drag(100, 0) // 10 - 30
	assert.InDelta(t, 340, o.Yaw, 1e-3)
	o.Drag(-200, 0) // 340 + 60
	assert.InDelta(t, 40, o.Yaw, 1e-3)

	for _, dx := range []float32{1e4, -1e4, 1200, -1200} {
		o.Drag(dx, 0)
		assert.GreaterOrEqual(t, o.Yaw, float32(0))
		assert.Less(t, o.Yaw, float32(360))
	}
}

func TestOrbitZoomClamped(t *testing.T) {
	o := NewOrbit(10, 0, 0)
	o.Zoom(1)
	assert.InDelta(t, 9, o.Distance, 1e-4)
	o.Zoom(-1)
	assert.InDelta(t, 10, o.Distance, 1e-3)
	o.Zoom(0)
	assert.InDelta(t, 10, o.Distance, 1e-3)

	o.Zoom(1000)
	assert.Equal(t, float32(MinDistance), o.Distance)
	o.Zoom(-1000)
	assert.Equal(t, float32(MaxDistance), o.Distance)
}

func TestOrbitPosition(t *testing.T) {
	o := NewOrbit(10, 0, 0)
	assert.True(t, o.Position().ApproxEqualThreshold(mgl32.Vec3{10, 0, 0}, 1e-4))

	o = NewOrbit(10, 90, 0)
	assert.True(t, o.Position().ApproxEqualThreshold(mgl32.Vec3{0, 10, 0}, 1e-4))

	o = NewOrbit(10, 0, 89)
	p := o.Position()
	assert.InDelta(t, 10, p.Len(), 1e-4)
	assert.Greater(t, p.Z(), float32(9.9))
}

func TestOrbitReset(t *testing.T) {
	o := NewOrbit(25, 45, 30)
	o.Drag(50, 50)
	o.Zoom(3)
	o.Target = mgl32.Vec3{1, 2, 3}
	o.Reset()
	assert.Equal(t, float32(45), o.Yaw)
	assert.Equal(t, float32(30), o.Pitch)
	assert.Equal(t, float32(25), o.Distance)
	assert.Equal(t, mgl32.Vec3{}, o.Target)
}

func TestOrbitViewMatrixLooksAtTarget(t *testing.T) {
	o := NewOrbit(10, 30, 20)
	v := o.ViewMatrix()
	// The target lands on the negative view axis.
	p := v.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, p.X(), 1e-4)
	assert.InDelta(t, 0, p.Y(), 1e-4)
	assert.InDelta(t, -10, p.Z(), 1e-4)
}

func TestTransformSpin(t *testing.T) {
	tr := NewTransform(false, 90)
	tr.Advance(1)
	assert.Equal(t, float32(0), tr.SpinAngle())
	assert.Equal(t, mgl32.Ident4(), tr.Model())

	tr.Spin = true
	tr.Advance(0.5)
	assert.InDelta(t, 45, tr.SpinAngle(), 1e-4)
	tr.Advance(4)
	assert.InDelta(t, 45, tr.SpinAngle(), 1e-3)
	tr.Advance(-1)
	assert.InDelta(t, 45, tr.SpinAngle(), 1e-3)

	// The spin axis is left fixed by the model matrix.
	axis := SpinAxis.Normalize()
	got := tr.Model().Mul4x1(axis.Vec4(0)).Vec3()
	assert.True(t, got.ApproxEqualThreshold(axis, 1e-5))

	tr.ResetSpin()
	assert.Equal(t, float32(0), tr.SpinAngle())
	assert.Equal(t, mgl32.Ident4(), tr.Model())
}

func TestTransformUserRotation(t *testing.T) {
	tr := NewTransform(false, 0)
	tr.Rotation = mgl32.Vec3{0, 0, 90}
	got := tr.Model().Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	assert.True(t, got.ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, 1e-5))

	// x is applied before z.
	tr.Rotation = mgl32.Vec3{90, 0, 90}
	got = tr.Model().Mul4x1(mgl32.Vec4{0, 1, 0, 1}).Vec3()
	// Rx(90) takes y to z; Rz(90) leaves z alone.
	assert.True(t, got.ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, 1e-5))
}

func TestOrbitSetters(t *testing.T) {
	o := NewOrbit(10, 0, 0)
	o.SetYaw(-90)
	assert.InDelta(t, 270, o.Yaw, 1e-4)
	o.SetYaw(720)
	assert.Equal(t, float32(0), o.Yaw)

	o.SetPitch(120)
	assert.Equal(t, float32(MaxPitch), o.Pitch)
	o.SetPitch(-15)
	assert.Equal(t, float32(-15), o.Pitch)

	o.SetDistance(0)
	assert.Equal(t, float32(MinDistance), o.Distance)
	o.SetDistance(1e6)
	assert.Equal(t, float32(MaxDistance), o.Distance)

	o.SetTarget(mgl32.Vec3{1, -2, 1e4})
	assert.Equal(t, mgl32.Vec3{1, -2, MaxDistance}, o.Target)

	nan := float32(math.NaN())
	o.SetYaw(nan)
	o.SetPitch(nan)
	o.SetDistance(float32(math.Inf(1)))
	o.SetTarget(mgl32.Vec3{0, nan, 0})
	assert.Equal(t, float32(0), o.Yaw)
	assert.Equal(t, float32(-15), o.Pitch)
	assert.Equal(t, float32(MaxDistance), o.Distance)
	assert.Equal(t, mgl32.Vec3{1, -2, MaxDistance}, o.Target)
}

func TestOrbitMove(t *testing.T) {
	o := NewOrbit(10, 0, 0)
	// At yaw 0 the camera sits on +x looking towards -x.
	o.Move(2, 0, 0)
	assert.True(t, o.Target.ApproxEqualThreshold(mgl32.Vec3{-2, 0, 0}, 1e-5))
	o.Move(0, 3, 1)
	assert.True(t, o.Target.ApproxEqualThreshold(mgl32.Vec3{-2, 3, 1}, 1e-5))
	assert.True(t, o.Position().ApproxEqualThreshold(mgl32.Vec3{8, 3, 1}, 1e-4))

	o = NewOrbit(10, 90, 0)
	o.Move(1, 0, 0)
	assert.True(t, o.Target.ApproxEqualThreshold(mgl32.Vec3{0, -1, 0}, 1e-5))
}
