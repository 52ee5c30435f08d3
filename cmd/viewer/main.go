package main

import (
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"mesh-viewer/internal/commands"
	"mesh-viewer/internal/config"
	"mesh-viewer/internal/debug"
	"mesh-viewer/internal/fonts"
	"mesh-viewer/internal/graphics"
	"mesh-viewer/internal/logger"
	"mesh-viewer/internal/mesh"
	"mesh-viewer/internal/primitives"
	"mesh-viewer/internal/regen"
	"mesh-viewer/internal/scene"
	"mesh-viewer/internal/terminal"
	"mesh-viewer/internal/view"
)

// familyKeys maps the number row to solids.
var familyKeys = map[int32]primitives.Family{
	rl.KeyOne:   primitives.Cube,
	rl.KeyTwo:   primitives.Sphere,
	rl.KeyThree: primitives.Cylinder,
	rl.KeyFour:  primitives.Torus,
}

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the viewer config (YAML)")
	flag.Parse()

	cfg, _ := config.Load(*configPath)
	log := logger.New(cfg.LogFile)
	defer log.Close()

	initial, err := cfg.Solids.Set()
	if err != nil {
		log.WithError(err).Warn("solids config has rejected records, using their defaults")
	}
	ctl, err := regen.New(log, initial)
	if err != nil {
		log.WithError(err).Warn("initial solid rejected, using defaults")
		ctl, err = regen.New(log, primitives.DefaultSet())
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	orbit := view.NewOrbit(cfg.Camera.Distance, cfg.Camera.Yaw, cfg.Camera.Pitch)
	transform := view.NewTransform(cfg.View.Spin, cfg.View.SpinSpeed)
	scn := scene.New(orbit, transform, cfg, log)
	dbg := debug.New()
	dbg.SetShowFPS(cfg.View.ShowFPS)
	dbg.SetShowMemAlloc(cfg.View.ShowMemAlloc)

	scn.SetMesh(ctl.Mesh())
	dbg.Stats = debug.NewStats(ctl.Applied(), ctl.Mesh(), ctl.Generation())
	ctl.OnSwitch(func(_, _ primitives.Family) {
		transform.ResetSpin()
	})
	ctl.OnRebuild(func(m *mesh.Mesh) {
		scn.SetMesh(m)
		dbg.Stats = debug.NewStats(ctl.Applied(), m, ctl.Generation())
	})

	reg := commands.NewRegistry()
	commands.RegisterViewer(reg, &commands.Viewer{
		Solids:    ctl,
		Display:   scn,
		Transform: transform,
		Camera:    orbit,
		Bounds:    cfg.Bounds,
		Log:       log,

		Config:     &cfg,
		ConfigPath: *configPath,
	})
	term := terminal.New(log, reg)
	log.WithField("config", *configPath).Info("viewer started; press ESC for the terminal, type help")

	update := func() {
		term.Update()
		if !term.IsOpen() {
			handleHotkeys(ctl, scn, transform)
			handleMovement(orbit, rl.GetFrameTime())
		}
		scn.Update()
		transform.Advance(rl.GetFrameTime())
		// Parameters may also be edited in place through ctl.Params(); pick those up here.
		_, _ = ctl.Sync()
		dbg.Stats.Wireframe = scn.Wireframe()
		dbg.Stats.Err = ctl.Err()
	}
	draw := func() {
		scn.Draw()
		term.Draw()
		dbg.Draw()
	}
	var font rl.Font
	setup := func() {
		scn.Init()
		if cfg.View.Font == "" {
			return
		}
		path, err := fonts.Find(cfg.View.Font)
		if err != nil {
			log.WithField("font", cfg.View.Font).Warn("font not found, using default")
			return
		}
		font = rl.LoadFont(path)
		term.SetFont(font)
		dbg.SetFont(font)
	}
	teardown := func() {
		if font.Texture.ID != 0 {
			rl.UnloadFont(font)
		}
		scn.Close()
	}
	graphics.Run(cfg.Window, scn.Background, setup, update, draw, teardown)
}

func handleHotkeys(ctl *regen.Controller, scn *scene.Scene, transform *view.Transform) {
	for key, f := range familyKeys {
		if rl.IsKeyPressed(key) {
			_, _ = ctl.Select(f)
		}
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		transform.Spin = !transform.Spin
	}
	if rl.IsKeyPressed(rl.KeyF) {
		scn.SetWireframe(!scn.Wireframe())
	}
	if rl.IsKeyPressed(rl.KeyR) {
		scn.ResetCamera()
	}
}

// handleMovement pans the orbit camera with WASD (forward/left/back/right) and E/Q (up/down).
func handleMovement(orbit *view.Orbit, dt float32) {
	forward := keyAxis(rl.KeyW, rl.KeyS)
	right := keyAxis(rl.KeyD, rl.KeyA)
	up := keyAxis(rl.KeyE, rl.KeyQ)
	if forward == 0 && right == 0 && up == 0 {
		return
	}
	step := view.MoveSpeed * dt
	orbit.Move(forward*step, right*step, up*step)
}

func keyAxis(pos, neg int32) float32 {
	var v float32
	if rl.IsKeyDown(pos) {
		v++
	}
	if rl.IsKeyDown(neg) {
		v--
	}
	return v
}
