package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"mesh-viewer/internal/config"
)

// Run opens the window described by win and runs the main loop. Each frame it calls update
// (input, regeneration), then clears to background() and calls draw. setup runs once after
// the GL context exists and before the first frame (GPU uploads); teardown runs before the
// window is destroyed (GPU releases).
// ESC is reserved for the terminal; close via the window button.
func Run(win config.Window, background func() rl.Color, setup, update, draw, teardown func()) {
	flags := uint32(rl.FlagWindowResizable | rl.FlagVsyncHint)
	if win.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(win.FPS)

	setup()
	defer teardown()

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(background())
		draw()
		rl.EndDrawing()
	}
}

// Color converts RGBA components in [0,1] to a raylib colour.
func Color(r, g, b, a float32) rl.Color {
	return rl.NewColor(channel(r), channel(g), channel(b), channel(a))
}

func channel(v float32) uint8 {
	return uint8(config.Clamp(v, 0, 1)*255 + 0.5)
}
