package view

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Orbit camera limits.
const (
	MaxPitch = 89
	// RotateSpeed is degrees of yaw/pitch per pixel of mouse drag.
	RotateSpeed = 0.3
	// ZoomStep scales the distance per wheel notch.
	ZoomStep    = 0.1
	MinDistance = 1
	MaxDistance = 500
	// MoveSpeed is the keyboard pan speed in world units per second.
	MoveSpeed = 10
)

// Up is the world up axis. Solids are built around z, so the camera orbits z as well.
var Up = mgl32.Vec3{0, 0, 1}

// Orbit is a camera circling Target at Distance. Yaw (degrees, [0,360)) is measured in the
// XY plane from +x; Pitch (degrees, ±MaxPitch) lifts the camera towards +z.
type Orbit struct {
	Target   mgl32.Vec3
	Yaw      float32
	Pitch    float32
	Distance float32

	home pose
}

type pose struct {
	yaw, pitch, distance float32
}

// NewOrbit returns a camera looking at the origin from the given pose, which becomes its reset pose.
func NewOrbit(distance, yaw, pitch float32) *Orbit {
	o := &Orbit{home: pose{yaw, pitch, distance}}
	o.Reset()
	return o
}

// Reset restores the initial pose and recentres on the origin.
func (o *Orbit) Reset() {
	o.Target = mgl32.Vec3{}
	o.Yaw = wrapDegrees(o.home.yaw)
	o.Pitch = clampPitch(o.home.pitch)
	o.Distance = clampDistance(o.home.distance)
}

// Drag rotates the camera by a mouse delta in pixels. Moving right turns the view right,
// moving down raises the camera.
func (o *Orbit) Drag(dx, dy float32) {
	o.Yaw = wrapDegrees(o.Yaw - dx*RotateSpeed)
	o.Pitch = clampPitch(o.Pitch + dy*RotateSpeed)
}

// Zoom moves the camera in (wheel > 0) or out by ZoomStep per notch.
func (o *Orbit) Zoom(wheel float32) {
	if wheel == 0 {
		return
	}
	o.Distance = clampDistance(o.Distance * math32.Pow(1-ZoomStep, wheel))
}

// SetYaw sets the yaw in degrees, wrapped to [0,360). Non-finite values are ignored.
func (o *Orbit) SetYaw(deg float32) {
	if finite(deg) {
		o.Yaw = wrapDegrees(deg)
	}
}

// SetPitch sets the pitch in degrees, clamped to ±MaxPitch. Non-finite values are ignored.
func (o *Orbit) SetPitch(deg float32) {
	if finite(deg) {
		o.Pitch = clampPitch(deg)
	}
}

// SetDistance sets the distance to the target, clamped to [MinDistance, MaxDistance].
// Non-finite values are ignored.
func (o *Orbit) SetDistance(d float32) {
	if finite(d) {
		o.Distance = clampDistance(d)
	}
}

// SetTarget moves the point the camera circles. Each component is clamped to
// ±MaxDistance; a non-finite target is ignored.
func (o *Orbit) SetTarget(t mgl32.Vec3) {
	for _, c := range t {
		if !finite(c) {
			return
		}
	}
	for i := range t {
		t[i] = mgl32.Clamp(t[i], -MaxDistance, MaxDistance)
	}
	o.Target = t
}

// Move pans the camera and its target together. forward follows the view direction
// flattened onto the XY plane, right is perpendicular to it, up is +z.
func (o *Orbit) Move(forward, right, up float32) {
	yaw := mgl32.DegToRad(o.Yaw)
	fwd := mgl32.Vec3{-math32.Cos(yaw), -math32.Sin(yaw), 0}
	side := fwd.Cross(Up)
	delta := fwd.Mul(forward).Add(side.Mul(right)).Add(Up.Mul(up))
	o.SetTarget(o.Target.Add(delta))
}

// Position is the camera's world position.
func (o *Orbit) Position() mgl32.Vec3 {
	yaw := mgl32.DegToRad(o.Yaw)
	pitch := mgl32.DegToRad(o.Pitch)
	cp := math32.Cos(pitch)
	dir := mgl32.Vec3{cp * math32.Cos(yaw), cp * math32.Sin(yaw), math32.Sin(pitch)}
	return o.Target.Add(dir.Mul(o.Distance))
}

// ViewMatrix is the look-at matrix for the current pose.
func (o *Orbit) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(o.Position(), o.Target, Up)
}

func wrapDegrees(d float32) float32 {
	d = math32.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d = 0
	}
	return d
}

func clampPitch(p float32) float32 {
	return mgl32.Clamp(p, -MaxPitch, MaxPitch)
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

func clampDistance(d float32) float32 {
	return mgl32.Clamp(d, MinDistance, MaxDistance)
}
