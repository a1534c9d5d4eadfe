package meshes

import (
	"github.com/bloeys/nmage-basic/buffers"
)

type Mesh struct {
	Name string
	/*
		Vao has the following shader attribute layout:
			- Loc0: Pos (Vec2)
	*/
	Vao buffers.VertexArray

	VertexCount int32
	// IndexCount is zero for meshes drawn without an index buffer
	IndexCount int32
}

func (m *Mesh) IsIndexed() bool {
	return m.IndexCount > 0
}

func (m *Mesh) Delete() {
	m.Vao.Delete()
	m.VertexCount = 0
	m.IndexCount = 0
}

// NewMesh uploads the shape into a new vao. Must be called with a current OpenGL context.
func NewMesh(name string, shape Shape) Mesh {

	mesh := Mesh{
		Name: name,
		Vao:  buffers.NewVertexArray(),
	}

	vbo := buffers.NewVertexBuffer(buffers.Element{ElementType: buffers.DataTypeVec2})
	vbo.SetData(shape.Flatten(), buffers.BufUsage_Static_Draw)
	mesh.Vao.AddVertexBuffer(vbo)
	mesh.VertexCount = vbo.VertexCount

	if len(shape.Indices) > 0 {

		ibo := buffers.NewIndexBuffer()
		ibo.SetData(shape.Indices)
		mesh.Vao.SetIndexBuffer(ibo)
		mesh.IndexCount = ibo.IndexBufCount
	}

	// This is needed so that if you create meshes one after the other the
	// following mesh doesn't attach its vbo/ibo to this vao
	mesh.Vao.UnBind()

	return mesh
}
