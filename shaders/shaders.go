package shaders

import (
	"strings"

	"github.com/bloeys/nmage-basic/logging"
	"github.com/pkg/errors"
)

type Shader struct {
	Id   uint32
	Type ShaderType
}

// Delete releases the shader object. Deleting the zero Shader does nothing.
func (s *Shader) Delete(drv Driver) {

	if s.Id == 0 {
		return
	}

	drv.DeleteShader(s.Id)
	s.Id = 0
}

func CompileShaderOfType(drv Driver, shaderSource string, shaderType ShaderType) (Shader, error) {

	shaderId := drv.CreateShader(shaderType)
	if shaderId == 0 {
		return Shader{}, errors.Errorf("failed to create OpenGL %s shader", shaderType)
	}

	drv.ShaderSource(shaderId, shaderSource)
	drv.CompileShader(shaderId)

	if drv.ShaderCompileStatus(shaderId) {
		return Shader{Id: shaderId, Type: shaderType}, nil
	}

	logLength := drv.ShaderInfoLogLength(shaderId)
	errMsg := trimInfoLog(drv.ShaderInfoLog(shaderId, logLength))
	drv.DeleteShader(shaderId)

	logging.ErrLog.Printf("Failed to compile %s shader. Err: %s\n", shaderType, errMsg)
	return Shader{}, &CompileError{Stage: shaderType, Log: errMsg}
}

// BuildProgram compiles both stages of ss and links them into a program.
//
// Both stages are always compiled so every compile error is reported, as an ErrorSet of *CompileError.
// No program object exists unless both stages compiled and linked.
func BuildProgram(drv Driver, ss ShaderSource) (ShaderProgram, error) {

	vertShdr, vertErr := CompileShaderOfType(drv, ss.Vertex, ShaderType_Vertex)
	defer vertShdr.Delete(drv)

	fragShdr, fragErr := CompileShaderOfType(drv, ss.Fragment, ShaderType_Fragment)
	defer fragShdr.Delete(drv)

	var errs ErrorSet
	errs.Append(vertErr, fragErr)
	if errs.Len() > 0 {
		return ShaderProgram{}, errs
	}

	shdrProg, err := NewShaderProgram(drv)
	if err != nil {
		return ShaderProgram{}, err
	}

	shdrProg.AttachShader(drv, vertShdr)
	shdrProg.AttachShader(drv, fragShdr)

	if err := shdrProg.Link(drv); err != nil {
		shdrProg.Delete(drv)
		return ShaderProgram{}, err
	}

	// Validation checks the program against current GL state (e.g. bound buffers),
	// which might not be final at build time, so failures are only reported
	if err := shdrProg.Validate(drv); err != nil {
		logging.WarnLog.Println("Shader program validation failed. Err:", err)
	}

	return shdrProg, nil
}

func LoadAndCompileCombinedShader(drv Driver, shaderPath string) (ShaderProgram, error) {

	ss, err := LoadCombinedShader(shaderPath)
	if err != nil {
		logging.ErrLog.Println("Failed to read shader. Err:", err)
		return ShaderProgram{}, err
	}

	return BuildProgram(drv, ss)
}

func LoadAndCompileCombinedShaderSrc(drv Driver, shaderSrc []byte) (ShaderProgram, error) {

	ss, err := SplitCombinedShaderSrc(shaderSrc)
	if err != nil {
		return ShaderProgram{}, err
	}

	return BuildProgram(drv, ss)
}

func trimInfoLog(log string) string {
	return strings.TrimRight(log, "\x00 \t\r\n")
}
