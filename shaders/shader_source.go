package shaders

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

const (
	directiveMarker   = "#shader"
	directiveVertex   = "vertex"
	directiveFragment = "fragment"

	maxLineLen = 1024 * 1024
)

var errUnknownDirective = errors.New("'#shader' directive must name 'vertex' or 'fragment'")

// ShaderSource holds the per-stage sources demultiplexed from a combined shader file.
// Each buffer keeps the original lines of its stage, in file order, each ending with '\n'.
type ShaderSource struct {
	Vertex   string
	Fragment string
}

func (ss *ShaderSource) Stage(t ShaderType) string {

	switch t {
	case ShaderType_Vertex:
		return ss.Vertex
	case ShaderType_Fragment:
		return ss.Fragment
	default:
		return ""
	}
}

func LoadCombinedShader(shaderPath string) (ShaderSource, error) {

	f, err := os.Open(shaderPath)
	if err != nil {

		if errors.Is(err, os.ErrNotExist) {
			return ShaderSource{}, errors.Wrapf(ErrResourceNotFound, "'%s'", shaderPath)
		}

		return ShaderSource{}, errors.Wrapf(err, "failed to open shader '%s'", shaderPath)
	}
	defer f.Close()

	ss, err := SplitCombinedShader(f)
	if err != nil {
		return ShaderSource{}, errors.Wrapf(err, "failed to read shader '%s'", shaderPath)
	}

	return ss, nil
}

func SplitCombinedShaderSrc(shaderSrc []byte) (ShaderSource, error) {
	return SplitCombinedShader(bytes.NewReader(shaderSrc))
}

// SplitCombinedShader scans r line by line. A line containing '#shader' selects the
// stage that following lines belong to ('vertex' or 'fragment') and is itself dropped.
// The selected stage stays in effect until the next directive or the end of input.
func SplitCombinedShader(r io.Reader) (ShaderSource, error) {

	var bufs [3]strings.Builder
	stage := ShaderType_Unknown

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLen)

	lineNum := 0
	for scanner.Scan() {

		lineNum++
		line := scanner.Text()

		if strings.Contains(line, directiveMarker) {

			switch {
			case strings.Contains(line, directiveVertex):
				stage = ShaderType_Vertex
			case strings.Contains(line, directiveFragment):
				stage = ShaderType_Fragment
			default:
				return ShaderSource{}, &DirectiveError{Line: lineNum, Text: line, Err: errUnknownDirective}
			}

			continue
		}

		if stage == ShaderType_Unknown {

			if strings.TrimSpace(line) == "" {
				continue
			}

			return ShaderSource{}, &DirectiveError{Line: lineNum, Text: line, Err: ErrSourceBeforeDirective}
		}

		bufs[stage].WriteString(line)
		bufs[stage].WriteByte('\n')
	}

	if err := scanner.Err(); err != nil {
		return ShaderSource{}, errors.Wrap(err, "failed to scan combined shader")
	}

	return ShaderSource{
		Vertex:   bufs[ShaderType_Vertex].String(),
		Fragment: bufs[ShaderType_Fragment].String(),
	}, nil
}
