package scene

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"mesh-viewer/internal/assets"
	"mesh-viewer/internal/config"
	"mesh-viewer/internal/graphics"
	"mesh-viewer/internal/logger"
	"mesh-viewer/internal/mesh"
	"mesh-viewer/internal/view"
)

const fovy = 45

var (
	// Reused every frame to avoid per-frame color allocations.
	solidColor = rl.NewColor(200, 200, 205, 255)
	wireColor  = rl.NewColor(240, 240, 240, 255)
)

// Scene draws the current solid under an orbit camera, plus the editor grid. Update runs
// camera input; Draw renders between BeginMode3D and EndMode3D.
// GPU work is deferred until Init so a Scene can be created (and fed a mesh) before the
// window exists.
type Scene struct {
	Camera    rl.Camera3D
	orbit     *view.Orbit
	transform *view.Transform
	log       *logger.Logger

	gridVisible bool
	wireframe   bool
	clear       mgl32.Vec4

	ready   bool
	pending *mesh.Mesh
	gpu     *GPUMesh
	drawOK  bool // false after a failed upload until the next successful one

	mtl        rl.Material
	texMtl     rl.Material
	texPaths   []string
	texMaxSize int
	textures   []rl.Texture2D
	slot       int // -1 = untextured
}

// New returns a scene using orbit for the camera and transform for the model matrix.
// cfg supplies the initial wireframe/grid state and the texture slots.
func New(orbit *view.Orbit, transform *view.Transform, cfg config.Config, log *logger.Logger) *Scene {
	s := &Scene{
		orbit:       orbit,
		transform:   transform,
		log:         log,
		gridVisible: cfg.View.GridVisible,
		wireframe:   cfg.View.Wireframe,
		clear:       cfg.View.ClearRGBA(),
		texPaths:    cfg.Textures.Paths,
		texMaxSize:  cfg.Textures.MaxSize,
		slot:        -1,
	}
	s.Camera.Up = vec3(view.Up)
	s.Camera.Fovy = fovy
	s.Camera.Projection = rl.CameraPerspective
	s.syncCamera()
	return s
}

// Init allocates GPU resources. Call once after the window/OpenGL context exists.
// Texture failures are logged and leave the viewer untextured.
func (s *Scene) Init() {
	s.mtl = rl.LoadMaterialDefault()
	if albedo := s.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = solidColor
	}
	s.texMtl = rl.LoadMaterialDefault()
	if albedo := s.texMtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.White
	}
	if err := s.loadTextures(); err != nil {
		s.log.WithError(err).Warn("textures unavailable")
	}
	if len(s.textures) > 0 {
		s.slot = 0
	}
	s.ready = true
	if s.pending != nil {
		m := s.pending
		s.pending = nil
		s.SetMesh(m)
	}
}

// Close releases the GPU mesh and textures. Call before the window closes.
func (s *Scene) Close() {
	s.gpu.Release()
	s.gpu = nil
	for _, tex := range s.textures {
		rl.UnloadTexture(tex)
	}
	s.textures = nil
	s.ready = false
}

// SetMesh replaces the displayed mesh. The previous GPU buffers are released first.
// Before Init the mesh is held and uploaded by Init. An upload failure is logged and
// disables mesh drawing until the next successful SetMesh.
func (s *Scene) SetMesh(m *mesh.Mesh) {
	if !s.ready {
		s.pending = m
		return
	}
	s.gpu.Release()
	s.gpu = nil
	g, err := Upload(m)
	if err != nil {
		s.drawOK = false
		s.log.WithError(err).Warn("mesh upload failed")
		return
	}
	s.gpu = g
	s.drawOK = true
}

// loadTextures decodes every configured path with bild and uploads it. Slots that fail are
// skipped; the first failure is returned.
func (s *Scene) loadTextures() error {
	var first error
	for _, path := range s.texPaths {
		img, err := assets.LoadTexture(path, s.texMaxSize)
		if err != nil {
			if first == nil {
				first = err
			}
			continue
		}
		rlImg := rl.NewImageFromImage(img)
		tex := rl.LoadTextureFromImage(rlImg)
		rl.UnloadImage(rlImg)
		if !rl.IsTextureValid(tex) {
			if first == nil {
				first = fmt.Errorf("%w: texture %s: upload failed", ErrResourceUnavailable, path)
			}
			continue
		}
		rl.SetTextureFilter(tex, rl.FilterBilinear)
		s.textures = append(s.textures, tex)
		s.log.WithField("path", path).Info("texture loaded")
	}
	return first
}

// UseTexture selects the texture slot drawn on the solid; -1 draws untextured.
func (s *Scene) UseTexture(slot int) error {
	if slot < -1 || slot >= len(s.textures) {
		return fmt.Errorf("%w: no texture in slot %d (%d loaded)", ErrResourceUnavailable, slot, len(s.textures))
	}
	s.slot = slot
	return nil
}

// TextureCount is the number of loaded texture slots.
func (s *Scene) TextureCount() int {
	return len(s.textures)
}

// SetWireframe switches between wireframe and filled drawing.
func (s *Scene) SetWireframe(on bool) {
	s.wireframe = on
}

func (s *Scene) Wireframe() bool {
	return s.wireframe
}

// SetGridVisible sets whether the editor grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.gridVisible = visible
}

func (s *Scene) GridVisible() bool {
	return s.gridVisible
}

// SetClearColor sets the background colour (RGBA in [0,1]) used from the next frame.
func (s *Scene) SetClearColor(c mgl32.Vec4) {
	s.clear = c
}

func (s *Scene) ClearColor() mgl32.Vec4 {
	return s.clear
}

// Background is the clear colour in raylib form; graphics.Run reads it every frame.
func (s *Scene) Background() rl.Color {
	return graphics.Color(s.clear[0], s.clear[1], s.clear[2], s.clear[3])
}

// ResetCamera returns the orbit camera to its configured pose.
func (s *Scene) ResetCamera() {
	s.orbit.Reset()
	s.syncCamera()
}

// Update runs once per frame. Holding the right mouse button orbits the camera; the wheel
// zooms. The cursor stays visible so the terminal and window controls remain usable.
func (s *Scene) Update() {
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		s.orbit.Drag(d.X, d.Y)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		s.orbit.Zoom(wheel)
	}
	s.syncCamera()
}

func (s *Scene) syncCamera() {
	s.Camera.Position = vec3(s.orbit.Position())
	s.Camera.Target = vec3(s.orbit.Target)
}

// Draw renders the 3D scene. Call after ClearBackground and before 2D overlays (terminal, debug).
// Draws the grid on the XY plane when visible, then the solid.
func (s *Scene) Draw() {
	rl.BeginMode3D(s.Camera)
	if s.gridVisible {
		drawEditorGrid()
	}
	if s.drawOK {
		s.drawSolid()
	}
	rl.EndMode3D()
}

func (s *Scene) drawSolid() {
	model := matrix(s.transform.Model())
	if s.wireframe {
		if albedo := s.mtl.GetMap(rl.MapAlbedo); albedo != nil {
			albedo.Color = wireColor
		}
		rl.EnableWireMode()
		s.gpu.Draw(s.mtl, model)
		rl.DisableWireMode()
		if albedo := s.mtl.GetMap(rl.MapAlbedo); albedo != nil {
			albedo.Color = solidColor
		}
		return
	}
	if s.slot >= 0 && s.slot < len(s.textures) {
		rl.SetMaterialTexture(&s.texMtl, rl.MapAlbedo, s.textures[s.slot])
		s.gpu.Draw(s.texMtl, model)
		return
	}
	s.gpu.Draw(s.mtl, model)
}

func vec3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}

// matrix converts a column-major mgl32 matrix to raylib's layout (Mn is element n in
// column-major order for both).
func matrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M4: m[4], M8: m[8], M12: m[12],
		M1: m[1], M5: m[5], M9: m[9], M13: m[13],
		M2: m[2], M6: m[6], M10: m[10], M14: m[14],
		M3: m[3], M7: m[7], M11: m[11], M15: m[15],
	}
}
