package scene

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
)

var (
	gridMinor = rl.NewColor(128, 128, 128, gridMinorAlpha)
	gridMajor = rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX     = rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY     = rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ     = rl.NewColor(80, 80, 220, axisLineAlpha)
)

// drawEditorGrid draws a grid on the XY plane (z=0, the solids' equator) with major/minor
// lines and the three axis lines through the origin.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawEditorGrid() {
	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := gridMajor
		if x%gridMajorStep != 0 {
			c = gridMinor
		}
		start.X, start.Y, start.Z = float32(x), float32(-gridExtent), 0
		end.X, end.Y, end.Z = float32(x), float32(gridExtent), 0
		rl.DrawLine3D(start, end, c)
	}
	for y := -gridExtent; y <= gridExtent; y += gridMinorStep {
		c := gridMajor
		if y%gridMajorStep != 0 {
			c = gridMinor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), float32(y), 0
		end.X, end.Y, end.Z = float32(gridExtent), float32(y), 0
		rl.DrawLine3D(start, end, c)
	}

	// X=red, Y=green, Z=blue
	start.X, start.Y, start.Z = float32(-gridExtent), 0, 0
	end.X, end.Y, end.Z = float32(gridExtent), 0, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, float32(-gridExtent), 0
	end.X, end.Y, end.Z = 0, float32(gridExtent), 0
	rl.DrawLine3D(start, end, axisY)
	start.X, start.Y, start.Z = 0, 0, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, 0, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}
