package commands

import (
	"flag"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"mesh-viewer/internal/config"
	"mesh-viewer/internal/logger"
	"mesh-viewer/internal/mesh"
	"mesh-viewer/internal/primitives"
	"mesh-viewer/internal/view"
)

// Solids is the regeneration side of the viewer (implemented by *regen.Controller).
type Solids interface {
	Select(f primitives.Family) (bool, error)
	Edit(fn func(*primitives.Set)) (bool, error)
	Applied() primitives.Set
	Mesh() *mesh.Mesh
	Generation() uint64
	Revert()
}

// Display is the renderer side of the viewer (implemented by *scene.Scene).
type Display interface {
	SetWireframe(on bool)
	Wireframe() bool
	SetGridVisible(on bool)
	GridVisible() bool
	UseTexture(slot int) error
	TextureCount() int
	SetClearColor(c mgl32.Vec4)
	ClearColor() mgl32.Vec4
	ResetCamera()
}

// Viewer bundles what the viewer commands operate on.
type Viewer struct {
	Solids    Solids
	Display   Display
	Transform *view.Transform
	Camera    *view.Orbit
	Bounds    config.Bounds
	Log       *logger.Logger

	// Config and ConfigPath back the save command; save fails when Config is nil.
	Config     *config.Config
	ConfigPath string
}

// RegisterViewer adds the viewer's commands to reg. Numeric input is clamped to v.Bounds
// before the parameter set is touched; each command is a single edit.
func RegisterViewer(reg *Registry, v *Viewer) {
	reg.Register("solid", "solid cube|sphere|cylinder|torus", func(fs *flag.FlagSet) func([]string) error {
		return func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("solid: expected one family name")
			}
			f, err := primitives.ParseFamily(args[0])
			if err != nil {
				return fmt.Errorf("solid: %w", err)
			}
			_, err = v.Solids.Select(f)
			return err
		}
	})

	reg.Register("sphere", "sphere [-radius r] [-width n] [-height n]", func(fs *flag.FlagSet) func([]string) error {
		cur := v.Solids.Applied().Sphere
		radius := fs.Float64("radius", float64(cur.Radius), "sphere radius")
		width := fs.Int("width", cur.WidthSegments, "segments around the z axis")
		height := fs.Int("height", cur.HeightSegments, "segments from pole to pole")
		return func(args []string) error {
			if err := noArgs("sphere", args); err != nil {
				return err
			}
			p := primitives.SphereParams{
				Radius:         v.Bounds.Radius.Clamp(float32(*radius)),
				WidthSegments:  v.Bounds.Segments.Clamp(*width),
				HeightSegments: v.Bounds.Segments.Clamp(*height),
			}
			_, err := v.Solids.Edit(func(s *primitives.Set) {
				s.Family = primitives.Sphere
				s.Sphere = p
			})
			return err
		}
	})

	reg.Register("cylinder", "cylinder [-top r] [-bottom r] [-height h] [-segments n]", func(fs *flag.FlagSet) func([]string) error {
		cur := v.Solids.Applied().Cylinder
		top := fs.Float64("top", float64(cur.TopRadius), "top radius (0 for a cone)")
		bottom := fs.Float64("bottom", float64(cur.BottomRadius), "bottom radius (0 for a cone)")
		height := fs.Float64("height", float64(cur.Height), "height along z")
		segs := fs.Int("segments", cur.Segments, "segments around the z axis")
		return func(args []string) error {
			if err := noArgs("cylinder", args); err != nil {
				return err
			}
			p := primitives.CylinderParams{
				TopRadius:    config.Clamp(float32(*top), 0, v.Bounds.Radius.Max),
				BottomRadius: config.Clamp(float32(*bottom), 0, v.Bounds.Radius.Max),
				Height:       v.Bounds.Height.Clamp(float32(*height)),
				Segments:     v.Bounds.Segments.Clamp(*segs),
			}
			_, err := v.Solids.Edit(func(s *primitives.Set) {
				s.Family = primitives.Cylinder
				s.Cylinder = p
			})
			return err
		}
	})

	reg.Register("torus", "torus [-ring r] [-tube r] [-ring-segments n] [-tube-segments n]", func(fs *flag.FlagSet) func([]string) error {
		cur := v.Solids.Applied().Torus
		ring := fs.Float64("ring", float64(cur.RingRadius), "distance from the center to the tube center")
		tube := fs.Float64("tube", float64(cur.TubeRadius), "tube radius")
		ringSegs := fs.Int("ring-segments", cur.RingSegments, "segments around the ring")
		tubeSegs := fs.Int("tube-segments", cur.TubeSegments, "segments around the tube")
		return func(args []string) error {
			if err := noArgs("torus", args); err != nil {
				return err
			}
			p := primitives.TorusParams{
				RingRadius:   v.Bounds.Radius.Clamp(float32(*ring)),
				TubeRadius:   v.Bounds.Radius.Clamp(float32(*tube)),
				RingSegments: v.Bounds.Segments.Clamp(*ringSegs),
				TubeSegments: v.Bounds.Segments.Clamp(*tubeSegs),
			}
			_, err := v.Solids.Edit(func(s *primitives.Set) {
				s.Family = primitives.Torus
				s.Torus = p
			})
			return err
		}
	})

	reg.Register("scale", "scale s | scale x y z", func(fs *flag.FlagSet) func([]string) error {
		return func(args []string) error {
			vec, err := parseVec3("scale", args, true)
			if err != nil {
				return err
			}
			for i := range vec {
				vec[i] = v.Bounds.Scale.Clamp(vec[i])
			}
			_, err = v.Solids.Edit(func(s *primitives.Set) { s.Scale = vec })
			return err
		}
	})

	reg.Register("rotate", "rotate x y z (degrees)", func(fs *flag.FlagSet) func([]string) error {
		return func(args []string) error {
			vec, err := parseVec3("rotate", args, false)
			if err != nil {
				return err
			}
			v.Transform.Rotation = vec
			return nil
		}
	})

	reg.Register("spin", "spin [-speed deg/s] [on|off]", func(fs *flag.FlagSet) func([]string) error {
		speed := fs.Float64("speed", float64(v.Transform.SpinSpeed), "degrees per second")
		return func(args []string) error {
			on, err := parseToggle("spin", args, v.Transform.Spin)
			if err != nil {
				return err
			}
			v.Transform.Spin = on
			v.Transform.SpinSpeed = float32(*speed)
			return nil
		}
	})

	reg.Register("wire", "wire [on|off]", func(fs *flag.FlagSet) func([]string) error {
		return func(args []string) error {
			on, err := parseToggle("wire", args, v.Display.Wireframe())
			if err != nil {
				return err
			}
			v.Display.SetWireframe(on)
			return nil
		}
	})

	reg.Register("grid", "grid [on|off]", func(fs *flag.FlagSet) func([]string) error {
		return func(args []string) error {
			on, err := parseToggle("grid", args, v.Display.GridVisible())
			if err != nil {
				return err
			}
			v.Display.SetGridVisible(on)
			return nil
		}
	})

	reg.Register("texture", "texture <slot>|off", func(fs *flag.FlagSet) func([]string) error {
		return func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("texture: expected a slot (0-%d) or off", v.Display.TextureCount()-1)
			}
			if strings.EqualFold(args[0], "off") {
				return v.Display.UseTexture(-1)
			}
			slot, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("texture: invalid slot %q", args[0])
			}
			return v.Display.UseTexture(slot)
		}
	})

	reg.Register("camera", "camera reset | camera yaw|pitch|distance <v> | camera target x y z", func(fs *flag.FlagSet) func([]string) error {
		return func(args []string) error {
			if len(args) == 0 {
				o := v.Camera
				v.Log.Log(fmt.Sprintf("camera yaw=%.1f pitch=%.1f distance=%.2f target=%.2f,%.2f,%.2f",
					o.Yaw, o.Pitch, o.Distance, o.Target[0], o.Target[1], o.Target[2]))
				return nil
			}
			switch strings.ToLower(args[0]) {
			case "reset":
				if err := noArgs("camera reset", args[1:]); err != nil {
					return err
				}
				v.Display.ResetCamera()
				return nil
			case "target":
				t, err := parseVec3("camera target", args[1:], false)
				if err != nil {
					return err
				}
				v.Camera.SetTarget(t)
				return nil
			}
			set := map[string]func(float32){
				"yaw":      v.Camera.SetYaw,
				"pitch":    v.Camera.SetPitch,
				"distance": v.Camera.SetDistance,
			}[strings.ToLower(args[0])]
			if set == nil {
				return fmt.Errorf("camera: unknown setting %q", args[0])
			}
			if len(args) != 2 {
				return fmt.Errorf("camera %s: expected one value", args[0])
			}
			f, err := parseFloat("camera "+args[0], args[1])
			if err != nil {
				return err
			}
			set(f)
			return nil
		}
	})

	reg.Register("clear", "clear [#rrggbb]", func(fs *flag.FlagSet) func([]string) error {
		return func(args []string) error {
			switch len(args) {
			case 0:
				v.Log.Log("clear " + config.FormatColor(v.Display.ClearColor()))
				return nil
			case 1:
				c, err := config.ParseColor(args[0])
				if err != nil {
					return fmt.Errorf("clear: %w", err)
				}
				v.Display.SetClearColor(c)
				return nil
			}
			return fmt.Errorf("clear: expected one colour")
		}
	})

	reg.Register("revert", "revert", func(fs *flag.FlagSet) func([]string) error {
		return func(args []string) error {
			if err := noArgs("revert", args); err != nil {
				return err
			}
			v.Solids.Revert()
			v.Log.Log("reverted to " + v.Solids.Applied().Summary())
			return nil
		}
	})

	reg.Register("save", "save [path]", func(fs *flag.FlagSet) func([]string) error {
		return func(args []string) error {
			if v.Config == nil {
				return fmt.Errorf("save: no configuration loaded")
			}
			path := v.ConfigPath
			switch len(args) {
			case 0:
			case 1:
				path = args[0]
			default:
				return fmt.Errorf("save: expected at most one path")
			}
			cfg, err := v.snapshot()
			if err != nil {
				return fmt.Errorf("save: %w", err)
			}
			if err := config.Save(path, cfg); err != nil {
				return fmt.Errorf("save: %w", err)
			}
			*v.Config = cfg
			v.Log.WithField("path", path).Info("config saved")
			return nil
		}
	})

	reg.Register("stats", "stats", func(fs *flag.FlagSet) func([]string) error {
		return func(args []string) error {
			m := v.Solids.Mesh()
			v.Log.Log(fmt.Sprintf("%s | vertices=%d triangles=%d generation=%d",
				v.Solids.Applied().Summary(), m.VertexCount(), m.TriangleCount(), v.Solids.Generation()))
			return nil
		}
	})

	reg.Register("help", "help", func(fs *flag.FlagSet) func([]string) error {
		return func(args []string) error {
			for _, name := range reg.Names() {
				v.Log.Log("  " + reg.Usage(name))
			}
			return nil
		}
	})
}

// snapshot is the loaded config with the applied solid and the current view toggles.
func (v *Viewer) snapshot() (config.Config, error) {
	cfg := *v.Config
	solids, err := config.SolidsFrom(v.Solids.Applied())
	if err != nil {
		return cfg, err
	}
	cfg.Solids = solids
	cfg.View.Wireframe = v.Display.Wireframe()
	cfg.View.GridVisible = v.Display.GridVisible()
	cfg.View.Spin = v.Transform.Spin
	cfg.View.SpinSpeed = v.Transform.SpinSpeed
	cfg.View.ClearColor = config.FormatColor(v.Display.ClearColor())
	return cfg, nil
}

func noArgs(name string, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%s: unexpected argument %q", name, args[0])
	}
	return nil
}

// parseVec3 reads three floats, or one float broadcast to all axes when uniform is set.
func parseVec3(name string, args []string, uniform bool) (mgl32.Vec3, error) {
	var out mgl32.Vec3
	switch {
	case uniform && len(args) == 1:
		f, err := parseFloat(name, args[0])
		if err != nil {
			return out, err
		}
		return mgl32.Vec3{f, f, f}, nil
	case len(args) == 3:
		for i, a := range args {
			f, err := parseFloat(name, a)
			if err != nil {
				return out, err
			}
			out[i] = f
		}
		return out, nil
	}
	return out, fmt.Errorf("%s: expected x y z", name)
}

func parseFloat(name, s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s: invalid number %q", name, s)
	}
	return float32(f), nil
}

// parseToggle reads on/off; with no argument it flips cur.
func parseToggle(name string, args []string, cur bool) (bool, error) {
	if len(args) == 0 {
		return !cur, nil
	}
	switch strings.ToLower(args[0]) {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	}
	return cur, fmt.Errorf("%s: expected on or off", name)
}
