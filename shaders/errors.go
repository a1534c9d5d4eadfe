package shaders

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrResourceNotFound      = errors.New("shader resource not found")
	ErrSourceBeforeDirective = errors.New("shader source found before any '#shader' directive")
)

// CompileError is returned when the driver rejects the source of one stage.
type CompileError struct {
	Stage ShaderType
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// LinkError is returned when compiled stages can't be linked into a program.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "failed to link shader program: " + e.Log
}

// DirectiveError reports a malformed line of a combined shader file.
// Line is 1-based.
type DirectiveError struct {
	Line int
	Text string
	Err  error
}

func (e *DirectiveError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *DirectiveError) Unwrap() error {
	return e.Err
}

// ErrorSet defines a list of one or more errors and is itself an error.
type ErrorSet []error

func (e ErrorSet) Len() int {
	return len(e)
}

func (e *ErrorSet) Append(args ...error) {

	for _, err := range args {
		if err != nil {
			*e = append(*e, err)
		}
	}
}

func (e ErrorSet) Unwrap() []error {
	return e
}

func (e ErrorSet) Error() string {

	var sb strings.Builder
	for i, err := range e {

		if i > 0 {
			sb.WriteString("\n")
		}

		sb.WriteString(err.Error())
	}

	return sb.String()
}
