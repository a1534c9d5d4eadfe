package shaders

// Driver is the GPU context that shader and program objects are created in.
// All calls must happen on the thread that owns the context.
//
// Ids returned by CreateShader and CreateProgram are 0 on failure.
type Driver interface {
	CreateShader(shaderType ShaderType) uint32
	ShaderSource(shaderId uint32, src string)
	CompileShader(shaderId uint32)
	ShaderCompileStatus(shaderId uint32) bool
	ShaderInfoLogLength(shaderId uint32) int32
	ShaderInfoLog(shaderId uint32, logLength int32) string
	DeleteShader(shaderId uint32)

	CreateProgram() uint32
	AttachShader(progId, shaderId uint32)
	LinkProgram(progId uint32)
	ProgramLinkStatus(progId uint32) bool
	ValidateProgram(progId uint32)
	ProgramValidateStatus(progId uint32) bool
	ProgramInfoLogLength(progId uint32) int32
	ProgramInfoLog(progId uint32, logLength int32) string
	UseProgram(progId uint32)
	DeleteProgram(progId uint32)
}
