package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesh-viewer/internal/primitives"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "Load must not create the file")
}

func TestLoadInvalidFileReturnsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [unclosed"), 0644))
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	data := []byte("view:\n  wireframe: true\nsolids:\n  family: torus\n  torus:\n    ring_radius: 8\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.True(t, c.View.Wireframe)
	assert.Equal(t, "torus", c.Solids.Family)
	assert.Equal(t, float32(8), c.Solids.Torus.RingRadius)
	assert.Equal(t, 40, c.Solids.Torus.TubeSegments)
	assert.Equal(t, Default().Window, c.Window)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "viewer.yaml")
	c := Default()
	c.Camera.Distance = 40
	c.Solids.Family = "cylinder"
	c.Solids.Cylinder.TopRadius = 0
	c.Textures.Paths = []string{"a.png"}

	require.NoError(t, Save(path, c))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestSolidsSet(t *testing.T) {
	s := Default().Solids
	s.Family = "Sphere"
	s.Sphere = SphereConfig{Radius: 3, WidthSegments: 16, HeightSegments: 8}
	s.Cylinder.Segments = 7

	set, err := s.Set()
	require.NoError(t, err)
	assert.Equal(t, primitives.Sphere, set.Family)
	assert.Equal(t, primitives.SphereParams{Radius: 3, WidthSegments: 16, HeightSegments: 8}, set.Sphere)
	assert.Equal(t, 7, set.Cylinder.Segments)
	assert.Equal(t, primitives.DefaultSet().Torus, set.Torus)
	assert.Equal(t, primitives.UnitScale, set.Scale)
	assert.NoError(t, primitives.Validate(set))
}

func TestSolidsSetUnknownFamily(t *testing.T) {
	s := Default().Solids
	s.Family = "pyramid"
	set, err := s.Set()
	require.NoError(t, err)
	assert.Equal(t, primitives.DefaultSet().Family, set.Family)
}

func TestSolidsSetReplacesRejectedRecords(t *testing.T) {
	s := Default().Solids
	s.Family = "torus"
	s.Torus.TubeSegments = 2
	set, err := s.Set()
	assert.True(t, errors.Is(err, primitives.ErrInvalidParameter))
	assert.Equal(t, primitives.Torus, set.Family)
	assert.Equal(t, primitives.DefaultSet().Torus, set.Torus)
	assert.NoError(t, primitives.Validate(set))

	// Records of inactive families are checked too.
	s.Family = "cube"
	set, err = s.Set()
	assert.True(t, errors.Is(err, primitives.ErrInvalidParameter))
	assert.Equal(t, primitives.Cube, set.Family)
	assert.Equal(t, primitives.DefaultSet().Torus, set.Torus)
}

func TestLoadRejectsNaNInactiveRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	data := "solids:\n  family: cube\n  sphere:\n    radius: .nan\n    width_segments: 16\n  cylinder:\n    segments: 2\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	set, err := c.Solids.Set()
	require.Error(t, err)

	d := primitives.DefaultSet()
	assert.Equal(t, d.Sphere, set.Sphere)
	assert.Equal(t, d.Cylinder, set.Cylinder)
	for _, f := range primitives.Families {
		check := set
		check.Family = f
		assert.NoError(t, primitives.Validate(check), f.String())
	}
}

func TestSolidsFromRoundTrip(t *testing.T) {
	set := primitives.DefaultSet()
	set.Family = primitives.Cylinder
	set.Cylinder.TopRadius = 0
	set.Torus.RingSegments = 12

	s, err := SolidsFrom(set)
	require.NoError(t, err)
	assert.Equal(t, "cylinder", s.Family)
	assert.Equal(t, float32(0), s.Cylinder.TopRadius)
	assert.Equal(t, 12, s.Torus.RingSegments)

	back, err := s.Set()
	require.NoError(t, err)
	assert.Equal(t, set, back)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 3, Clamp(1, 3, 50))
	assert.Equal(t, 50, Clamp(80, 3, 50))
	assert.Equal(t, 10, Clamp(10, 3, 50))
	assert.Equal(t, float32(0.1), Clamp(float32(-2), 0.1, 50))

	b := Default().Bounds
	assert.Equal(t, 50, b.Segments.Clamp(1000))
	assert.Equal(t, primitives.MinSegments, b.Segments.Clamp(0))
	assert.Equal(t, float32(50), b.Radius.Clamp(99))
}

func TestClearRGBA(t *testing.T) {
	v := View{ClearColor: "#ff0080"}
	assert.InDelta(t, 1.0, v.ClearRGBA()[0], 1e-6)
	assert.InDelta(t, 0.0, v.ClearRGBA()[1], 1e-6)
	assert.InDelta(t, 128.0/255, v.ClearRGBA()[2], 1e-6)
	assert.Equal(t, float32(1), v.ClearRGBA()[3])

	bad := View{ClearColor: "zzz"}
	assert.Equal(t, Default().View.ClearRGBA(), bad.ClearRGBA())
	assert.NotEqual(t, mgl32.Vec4{}, bad.ClearRGBA())
}

func TestParseAndFormatColor(t *testing.T) {
	for _, in := range []string{"#1a1a1f", "ff0080", " #00FF7f "} {
		c, err := ParseColor(in)
		require.NoError(t, err, in)
		again, err := ParseColor(FormatColor(c))
		require.NoError(t, err)
		assert.Equal(t, c, again, in)
	}
	assert.Equal(t, "#ff0080", FormatColor(mgl32.Vec4{1, 0, 128.0 / 255, 1}))
	assert.Equal(t, "#ff0000", FormatColor(mgl32.Vec4{2, -1, 0, 1}))

	_, err := ParseColor("#12345")
	assert.Error(t, err)
	_, err = ParseColor("#gggggg")
	assert.Error(t, err)
}
