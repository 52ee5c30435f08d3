package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jinzhu/copier"
	"golang.org/x/exp/constraints"
	"gopkg.in/yaml.v3"

	"mesh-viewer/internal/primitives"
)

// DefaultPath is the path to the viewer config file, relative to the process working directory.
const DefaultPath = "config/viewer.yaml"

// Config holds viewer preferences and the initial solid parameters.
type Config struct {
	Window   Window   `yaml:"window"`
	Camera   Camera   `yaml:"camera"`
	View     View     `yaml:"view"`
	Textures Textures `yaml:"textures"`
	Bounds   Bounds   `yaml:"bounds"`
	Solids   Solids   `yaml:"solids"`
	LogFile  string   `yaml:"log_file"`
}

type Window struct {
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int32  `yaml:"fps"`
	MSAA   bool   `yaml:"msaa"`
}

// Camera is the orbit camera's starting position, in degrees and world units.
type Camera struct {
	Distance float32 `yaml:"distance"`
	Yaw      float32 `yaml:"yaw"`
	Pitch    float32 `yaml:"pitch"`
}

type View struct {
	Wireframe    bool    `yaml:"wireframe"`
	Spin         bool    `yaml:"spin"`
	SpinSpeed    float32 `yaml:"spin_speed"` // degrees per second
	ShowFPS      bool    `yaml:"show_fps"`
	ShowMemAlloc bool    `yaml:"show_memalloc"`
	GridVisible  bool    `yaml:"grid_visible"`
	ClearColor   string  `yaml:"clear_color"` // hex, e.g. "#1a1a1f"
	Font         string  `yaml:"font"`        // file path or name under assets/fonts; empty uses the raylib default
}

type Textures struct {
	Paths   []string `yaml:"paths"`
	MaxSize int      `yaml:"max_size"` // longest side in pixels; 0 keeps the source size
}

// Range is an inclusive [Min, Max] interval.
type Range[T constraints.Ordered] struct {
	Min T `yaml:"min"`
	Max T `yaml:"max"`
}

// Clamp returns v limited to the range.
func (r Range[T]) Clamp(v T) T {
	return Clamp(v, r.Min, r.Max)
}

// Bounds are the ranges editing commands clamp user input to before mutating parameters.
type Bounds struct {
	Segments Range[int]     `yaml:"segments"`
	Radius   Range[float32] `yaml:"radius"`
	Height   Range[float32] `yaml:"height"`
	Scale    Range[float32] `yaml:"scale"`
}

// Solids are the initial parameter records. Family is a name accepted by primitives.ParseFamily.
type Solids struct {
	Family   string         `yaml:"family"`
	Sphere   SphereConfig   `yaml:"sphere"`
	Cylinder CylinderConfig `yaml:"cylinder"`
	Torus    TorusConfig    `yaml:"torus"`
}

type SphereConfig struct {
	Radius         float32 `yaml:"radius"`
	WidthSegments  int     `yaml:"width_segments"`
	HeightSegments int     `yaml:"height_segments"`
}

type CylinderConfig struct {
	TopRadius    float32 `yaml:"top_radius"`
	BottomRadius float32 `yaml:"bottom_radius"`
	Height       float32 `yaml:"height"`
	Segments     int     `yaml:"segments"`
}

type TorusConfig struct {
	RingRadius   float32 `yaml:"ring_radius"`
	TubeRadius   float32 `yaml:"tube_radius"`
	RingSegments int     `yaml:"ring_segments"`
	TubeSegments int     `yaml:"tube_segments"`
}

// Default returns the default configuration.
func Default() Config {
	d := primitives.DefaultSet()
	return Config{
		Window: Window{Width: 1280, Height: 720, Title: "Mesh Viewer", FPS: 60, MSAA: true},
		Camera: Camera{Distance: 25, Yaw: 45, Pitch: 30},
		View: View{
			SpinSpeed:   45,
			GridVisible: true,
			ClearColor:  "#1a1a1f",
		},
		Textures: Textures{
			Paths:   []string{"assets/textures/container.jpg", "assets/textures/awesomeface.png"},
			MaxSize: 1024,
		},
		Bounds: Bounds{
			Segments: Range[int]{Min: primitives.MinSegments, Max: 50},
			Radius:   Range[float32]{Min: 0.1, Max: 50},
			Height:   Range[float32]{Min: 0.1, Max: 50},
			Scale:    Range[float32]{Min: 0.1, Max: 10},
		},
		Solids: Solids{
			Family: d.Family.String(),
			Sphere: SphereConfig{
				Radius:         d.Sphere.Radius,
				WidthSegments:  d.Sphere.WidthSegments,
				HeightSegments: d.Sphere.HeightSegments,
			},
			Cylinder: CylinderConfig{
				TopRadius:    d.Cylinder.TopRadius,
				BottomRadius: d.Cylinder.BottomRadius,
				Height:       d.Cylinder.Height,
				Segments:     d.Cylinder.Segments,
			},
			Torus: TorusConfig{
				RingRadius:   d.Torus.RingRadius,
				TubeRadius:   d.Torus.TubeRadius,
				RingSegments: d.Torus.RingSegments,
				TubeSegments: d.Torus.TubeSegments,
			},
		},
		LogFile: "logs/viewer.txt",
	}
}

// Load reads the config from path. If the file is missing or invalid, returns Default() and
// does not create a file. Keys absent from the file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), nil
	}
	return c, nil
}

// Save writes the config to path, creating the directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Set converts the configured records into a primitives.Set with unit scale. An unknown
// family name falls back to the default family. Every family's record is checked, not only
// the active one: a rejected record is replaced by its default and reported in the joined
// error, so the returned set is always buildable.
func (s Solids) Set() (primitives.Set, error) {
	set := primitives.DefaultSet()
	if f, err := primitives.ParseFamily(s.Family); err == nil {
		set.Family = f
	}
	if err := copier.Copy(&set.Sphere, &s.Sphere); err != nil {
		return primitives.DefaultSet(), err
	}
	if err := copier.Copy(&set.Cylinder, &s.Cylinder); err != nil {
		return primitives.DefaultSet(), err
	}
	if err := copier.Copy(&set.Torus, &s.Torus); err != nil {
		return primitives.DefaultSet(), err
	}
	set.Scale = primitives.UnitScale

	defaults := primitives.DefaultSet()
	var errs []error
	for _, f := range primitives.Families {
		check := set
		check.Family = f
		err := primitives.Validate(check)
		if err == nil {
			continue
		}
		errs = append(errs, err)
		switch f {
		case primitives.Sphere:
			set.Sphere = defaults.Sphere
		case primitives.Cylinder:
			set.Cylinder = defaults.Cylinder
		case primitives.Torus:
			set.Torus = defaults.Torus
		}
	}
	return set, errors.Join(errs...)
}

// SolidsFrom is the inverse of Solids.Set. Scale is not persisted.
func SolidsFrom(set primitives.Set) (Solids, error) {
	out := Solids{Family: set.Family.String()}
	if err := copier.Copy(&out.Sphere, &set.Sphere); err != nil {
		return out, err
	}
	if err := copier.Copy(&out.Cylinder, &set.Cylinder); err != nil {
		return out, err
	}
	if err := copier.Copy(&out.Torus, &set.Torus); err != nil {
		return out, err
	}
	return out, nil
}

// ClearRGBA parses View.ClearColor ("#rrggbb" or "rrggbb") into RGBA components in [0,1].
// Invalid strings yield the default colour.
func (v View) ClearRGBA() mgl32.Vec4 {
	if c, ok := parseHex(v.ClearColor); ok {
		return c
	}
	c, _ := parseHex(Default().View.ClearColor)
	return c
}

// ParseColor parses "#rrggbb" or "rrggbb" into opaque RGBA components in [0,1].
func ParseColor(s string) (mgl32.Vec4, error) {
	c, ok := parseHex(strings.TrimSpace(s))
	if !ok {
		return c, fmt.Errorf("invalid colour %q (want #rrggbb)", s)
	}
	return c, nil
}

// FormatColor is the inverse of ParseColor. Alpha is dropped.
func FormatColor(c mgl32.Vec4) string {
	return fmt.Sprintf("#%02x%02x%02x", byteChannel(c[0]), byteChannel(c[1]), byteChannel(c[2]))
}

func byteChannel(v float32) uint8 {
	return uint8(Clamp(v, 0, 1)*255 + 0.5)
}

func parseHex(s string) (mgl32.Vec4, bool) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return mgl32.Vec4{}, false
	}
	var rgb [3]float32
	for i := range rgb {
		hi, ok1 := hexDigit(s[2*i])
		lo, ok2 := hexDigit(s[2*i+1])
		if !ok1 || !ok2 {
			return mgl32.Vec4{}, false
		}
		rgb[i] = float32(hi<<4|lo) / 255
	}
	return mgl32.Vec4{rgb[0], rgb[1], rgb[2], 1}, true
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Clamp returns v limited to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
