package shaders

import (
	"github.com/bloeys/nmage-basic/assert"
	"github.com/pkg/errors"
)

type ShaderProgram struct {
	Id           uint32
	VertShaderId uint32
	FragShaderId uint32
}

func NewShaderProgram(drv Driver) (ShaderProgram, error) {

	id := drv.CreateProgram()
	if id == 0 {
		return ShaderProgram{}, errors.New("failed to create shader program")
	}

	return ShaderProgram{Id: id}, nil
}

func (sp *ShaderProgram) AttachShader(drv Driver, shader Shader) {

	assert.T(shader.Id != 0, "Attempted to attach an invalid %s shader to program '%d'", shader.Type, sp.Id)

	drv.AttachShader(sp.Id, shader.Id)
	switch shader.Type {
	case ShaderType_Vertex:
		sp.VertShaderId = shader.Id
	case ShaderType_Fragment:
		sp.FragShaderId = shader.Id
	default:
		assert.T(false, "Unknown shader type '%d' for shader id '%d'", shader.Type, shader.Id)
	}
}

func (sp *ShaderProgram) Link(drv Driver) error {

	if sp.VertShaderId == 0 {
		return errors.New("no vertex shader attached to program")
	}

	if sp.FragShaderId == 0 {
		return errors.New("no fragment shader attached to program")
	}

	drv.LinkProgram(sp.Id)
	if drv.ProgramLinkStatus(sp.Id) {
		return nil
	}

	logLength := drv.ProgramInfoLogLength(sp.Id)
	return &LinkError{Log: trimInfoLog(drv.ProgramInfoLog(sp.Id, logLength))}
}

func (sp *ShaderProgram) Validate(drv Driver) error {

	drv.ValidateProgram(sp.Id)
	if drv.ProgramValidateStatus(sp.Id) {
		return nil
	}

	logLength := drv.ProgramInfoLogLength(sp.Id)
	return errors.New(trimInfoLog(drv.ProgramInfoLog(sp.Id, logLength)))
}

func (sp *ShaderProgram) Bind(drv Driver) {
	drv.UseProgram(sp.Id)
}

func (sp *ShaderProgram) UnBind(drv Driver) {
	drv.UseProgram(0)
}

// Delete destroys the program. Calling it again, or on the zero program, does nothing.
func (sp *ShaderProgram) Delete(drv Driver) {

	if sp.Id == 0 {
		return
	}

	drv.DeleteProgram(sp.Id)
	*sp = ShaderProgram{}
}
