package scene

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"mesh-viewer/internal/assets"
	"mesh-viewer/internal/mesh"
)

// ErrResourceUnavailable marks texture and upload failures. Drawing continues without the
// failed resource.
var ErrResourceUnavailable = assets.ErrResourceUnavailable

// GPUMesh is a mesh uploaded to vertex buffers. The CPU-side arrays are Go memory pinned
// for as long as the raylib mesh references them; Release frees the GPU buffers and
// unpins. Must be used on the thread that owns the GL context.
type GPUMesh struct {
	mesh      rl.Mesh
	positions []float32
	texcoords []float32
	indices   []uint16
	pinner    runtime.Pinner
	loaded    bool
}

// Upload copies m into GPU buffers. Meshes that cannot be addressed with 16-bit indices, or
// that are empty, are rejected with ErrResourceUnavailable.
func Upload(m *mesh.Mesh) (*GPUMesh, error) {
	if m.VertexCount() == 0 || m.TriangleCount() == 0 {
		return nil, fmt.Errorf("%w: empty mesh", ErrResourceUnavailable)
	}
	indices, err := m.Indices16()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResourceUnavailable, err)
	}
	g := &GPUMesh{
		positions: m.Positions(),
		texcoords: m.TexCoords(),
		indices:   indices,
	}
	g.pinner.Pin(&g.positions[0])
	g.pinner.Pin(&g.texcoords[0])
	g.pinner.Pin(&g.indices[0])
	g.mesh = rl.Mesh{
		VertexCount:   int32(m.VertexCount()),
		TriangleCount: int32(m.TriangleCount()),
		Vertices:      &g.positions[0],
		Texcoords:     &g.texcoords[0],
		Indices:       &g.indices[0],
	}
	rl.UploadMesh(&g.mesh, false)
	g.loaded = true
	if g.mesh.VaoID == 0 {
		g.Release()
		return nil, fmt.Errorf("%w: vertex array upload failed", ErrResourceUnavailable)
	}
	return g, nil
}

// Draw renders the mesh with mtl and the model matrix.
func (g *GPUMesh) Draw(mtl rl.Material, model rl.Matrix) {
	if g == nil || !g.loaded {
		return
	}
	rl.DrawMesh(g.mesh, mtl, model)
}

// Release frees the GPU buffers. Safe to call more than once and on nil.
func (g *GPUMesh) Release() {
	if g == nil || !g.loaded {
		return
	}
	// The arrays are Go memory; keep raylib from freeing them.
	g.mesh.Vertices = nil
	g.mesh.Texcoords = nil
	g.mesh.Indices = nil
	rl.UnloadMesh(&g.mesh)
	g.pinner.Unpin()
	g.loaded = false
}
