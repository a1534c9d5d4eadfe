package renderer

import (
	"github.com/bloeys/nmage-basic/meshes"
	"github.com/bloeys/nmage-basic/shaders"
)

type Render interface {
	DrawMesh(prog shaders.ShaderProgram, mesh meshes.Mesh)
	FrameEnd()
}
