// Package gldriver implements shaders.Driver on top of OpenGL 4.1 core.
//
// A Driver may only be used on the thread that owns the current OpenGL context, after gl.Init.
package gldriver

import (
	"fmt"
	"strings"

	"github.com/bloeys/nmage-basic/assert"
	"github.com/bloeys/nmage-basic/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var _ shaders.Driver = &Driver{}

type Driver struct{}

func New() *Driver {
	return &Driver{}
}

func ShaderTypeToGl(s shaders.ShaderType) uint32 {

	switch s {
	case shaders.ShaderType_Vertex:
		return gl.VERTEX_SHADER
	case shaders.ShaderType_Fragment:
		return gl.FRAGMENT_SHADER

	default:
		assert.T(false, "Unknown shader type '%d'", s)
		return 0
	}
}

func (d *Driver) CreateShader(shaderType shaders.ShaderType) uint32 {
	return gl.CreateShader(ShaderTypeToGl(shaderType))
}

func (d *Driver) ShaderSource(shaderId uint32, src string) {

	shaderCStr, shaderFree := gl.Strs(src + "\x00")
	defer shaderFree()

	gl.ShaderSource(shaderId, 1, shaderCStr, nil)
}

func (d *Driver) CompileShader(shaderId uint32) {
	gl.CompileShader(shaderId)
}

func (d *Driver) ShaderCompileStatus(shaderId uint32) bool {

	var status int32
	gl.GetShaderiv(shaderId, gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (d *Driver) ShaderInfoLogLength(shaderId uint32) int32 {

	var logLength int32
	gl.GetShaderiv(shaderId, gl.INFO_LOG_LENGTH, &logLength)
	return logLength
}

func (d *Driver) ShaderInfoLog(shaderId uint32, logLength int32) string {

	// One extra byte so gl.Str always gets a null terminated string, even for empty logs
	log := gl.Str(strings.Repeat("\x00", int(logLength)+1))
	gl.GetShaderInfoLog(shaderId, logLength, nil, log)
	return gl.GoStr(log)
}

func (d *Driver) DeleteShader(shaderId uint32) {
	gl.DeleteShader(shaderId)
}

func (d *Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *Driver) AttachShader(progId, shaderId uint32) {
	gl.AttachShader(progId, shaderId)
}

func (d *Driver) LinkProgram(progId uint32) {
	gl.LinkProgram(progId)
}

func (d *Driver) ProgramLinkStatus(progId uint32) bool {

	var status int32
	gl.GetProgramiv(progId, gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (d *Driver) ValidateProgram(progId uint32) {
	gl.ValidateProgram(progId)
}

func (d *Driver) ProgramValidateStatus(progId uint32) bool {

	var status int32
	gl.GetProgramiv(progId, gl.VALIDATE_STATUS, &status)
	return status == gl.TRUE
}

func (d *Driver) ProgramInfoLogLength(progId uint32) int32 {

	var logLength int32
	gl.GetProgramiv(progId, gl.INFO_LOG_LENGTH, &logLength)
	return logLength
}

func (d *Driver) ProgramInfoLog(progId uint32, logLength int32) string {

	log := gl.Str(strings.Repeat("\x00", int(logLength)+1))
	gl.GetProgramInfoLog(progId, logLength, nil, log)
	return gl.GoStr(log)
}

func (d *Driver) UseProgram(progId uint32) {
	gl.UseProgram(progId)
}

func (d *Driver) DeleteProgram(progId uint32) {
	gl.DeleteProgram(progId)
}

// GlError is one error code reported by glGetError
type GlError uint32

func (e GlError) Error() string {

	switch uint32(e) {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("GL error 0x%x", uint32(e))
	}
}

// CollectErrors drains the OpenGL error queue and returns what was in it, oldest first
func CollectErrors() []GlError {

	var errs []GlError
	for e := gl.GetError(); e != gl.NO_ERROR; e = gl.GetError() {
		errs = append(errs, GlError(e))
	}

	return errs
}
