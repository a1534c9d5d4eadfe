package rend2dgl

import (
	"github.com/bloeys/nmage-basic/gldriver"
	"github.com/bloeys/nmage-basic/logging"
	"github.com/bloeys/nmage-basic/meshes"
	"github.com/bloeys/nmage-basic/renderer"
	"github.com/bloeys/nmage-basic/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var _ renderer.Render = &Rend2DGL{}

type Rend2DGL struct {
	Drv shaders.Driver

	BoundVaoId  uint32
	BoundProgId uint32

	// CheckErrors drains and logs OpenGL errors after each draw call
	CheckErrors bool
}

func (r *Rend2DGL) DrawMesh(prog shaders.ShaderProgram, mesh meshes.Mesh) {

	if mesh.Vao.Id != r.BoundVaoId {
		mesh.Vao.Bind()
		r.BoundVaoId = mesh.Vao.Id
	}

	if prog.Id != r.BoundProgId {
		prog.Bind(r.Drv)
		r.BoundProgId = prog.Id
	}

	if r.CheckErrors {
		gldriver.CollectErrors()
	}

	if mesh.IsIndexed() {
		gl.DrawElementsWithOffset(gl.TRIANGLES, mesh.IndexCount, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, mesh.VertexCount)
	}

	if r.CheckErrors {
		for _, err := range gldriver.CollectErrors() {
			logging.ErrLog.Printf("OpenGL error while drawing mesh '%s'. Err: %v\n", mesh.Name, err)
		}
	}
}

func (r *Rend2DGL) FrameEnd() {
	// GL bindings may be changed by other code between frames
	r.BoundVaoId = 0
	r.BoundProgId = 0
}

func NewRend2DGL(drv shaders.Driver) *Rend2DGL {
	return &Rend2DGL{Drv: drv}
}
