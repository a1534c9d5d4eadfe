package shaders

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestSplitCombinedShader(t *testing.T) {

	tests := []struct {
		name     string
		src      string
		vertex   string
		fragment string
	}{
		{
			name:     "basic",
			src:      "#shader vertex\nA\n#shader fragment\nB\n",
			vertex:   "A\n",
			fragment: "B\n",
		},
		{
			name:     "no trailing newline",
			src:      "#shader vertex\nA\n#shader fragment\nB",
			vertex:   "A\n",
			fragment: "B\n",
		},
		{
			name:     "empty vertex section",
			src:      "#shader vertex\n#shader fragment\nB1\nB2\n",
			vertex:   "",
			fragment: "B1\nB2\n",
		},
		{
			name:     "repeated stage concatenates",
			src:      "#shader vertex\nA1\n#shader fragment\nB\n#shader vertex\nA2\n",
			vertex:   "A1\nA2\n",
			fragment: "B\n",
		},
		{
			name:     "fragment first",
			src:      "#shader fragment\nB\n#shader vertex\nA\n",
			vertex:   "A\n",
			fragment: "B\n",
		},
		{
			name:     "directive is a substring match",
			src:      "  // #shader: vertex stage\nA\n#shader   fragment  \nB\n",
			vertex:   "A\n",
			fragment: "B\n",
		},
		{
			name:     "blank lines kept inside sections",
			src:      "#shader vertex\n\nA\n\n#shader fragment\n\tB\n",
			vertex:   "\nA\n\n",
			fragment: "\tB\n",
		},
		{
			name:     "leading blank lines dropped",
			src:      "\n   \n#shader vertex\nA\n#shader fragment\nB\n",
			vertex:   "A\n",
			fragment: "B\n",
		},
		{
			name:     "crlf",
			src:      "#shader vertex\r\nA\r\n#shader fragment\r\nB\r\n",
			vertex:   "A\n",
			fragment: "B\n",
		},
		{
			name:     "vertex checked before fragment",
			src:      "#shader vertex fragment\nA\n",
			vertex:   "A\n",
			fragment: "",
		},
		{
			name: "empty input",
			src:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			ss, err := SplitCombinedShader(strings.NewReader(tt.src))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if ss.Vertex != tt.vertex {
				t.Errorf("vertex: got %q, want %q", ss.Vertex, tt.vertex)
			}

			if ss.Fragment != tt.fragment {
				t.Errorf("fragment: got %q, want %q", ss.Fragment, tt.fragment)
			}

			for _, buf := range []string{ss.Vertex, ss.Fragment} {
				if strings.Contains(buf, directiveMarker) {
					t.Errorf("directive leaked into output: %q", buf)
				}
			}
		})
	}
}

func TestSplitCombinedShaderRoundTrip(t *testing.T) {

	vertLines := []string{"#version 330 core", "", "layout(location = 0) in vec4 position;", "void main() {", "    gl_Position = position;", "}"}
	fragLines := []string{"#version 330 core", "layout(location = 0) out vec4 color;", "void main() { color = vec4(1.0); }"}

	src := "#shader vertex\n" + strings.Join(vertLines, "\n") + "\n#shader fragment\n" + strings.Join(fragLines, "\n") + "\n"

	ss, err := SplitCombinedShaderSrc([]byte(src))
	if err != nil {
		t.Fatal(err)
	}

	check := func(name, buf string, want []string) {

		got := strings.Split(strings.TrimSuffix(buf, "\n"), "\n")
		if len(got) != len(want) {
			t.Fatalf("%s: got %d lines, want %d", name, len(got), len(want))
		}

		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s line %d: got %q, want %q", name, i, got[i], want[i])
			}
		}
	}

	check("vertex", ss.Stage(ShaderType_Vertex), vertLines)
	check("fragment", ss.Stage(ShaderType_Fragment), fragLines)

	if ss.Stage(ShaderType_Unknown) != "" {
		t.Error("unknown stage should have no source")
	}
}

func TestSplitCombinedShaderErrors(t *testing.T) {

	tests := []struct {
		name string
		src  string
		line int
		is   error
	}{
		{
			name: "source before directive",
			src:  "\nvoid main() {}\n#shader vertex\n",
			line: 2,
			is:   ErrSourceBeforeDirective,
		},
		{
			name: "unknown directive",
			src:  "#shader vertex\nA\n#shader geometry\nB\n",
			line: 3,
			is:   errUnknownDirective,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			_, err := SplitCombinedShader(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("expected error")
			}

			var dirErr *DirectiveError
			if !errors.As(err, &dirErr) {
				t.Fatalf("expected *DirectiveError, got %T: %v", err, err)
			}

			if dirErr.Line != tt.line {
				t.Errorf("got line %d, want %d", dirErr.Line, tt.line)
			}

			if !errors.Is(err, tt.is) {
				t.Errorf("expected error to wrap %v, got %v", tt.is, err)
			}
		})
	}
}

func TestLoadCombinedShader(t *testing.T) {

	dir := t.TempDir()
	path := filepath.Join(dir, "basic.shader")
	if err := os.WriteFile(path, []byte("#shader vertex\nA\n#shader fragment\nB\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ss, err := LoadCombinedShader(path)
	if err != nil {
		t.Fatal(err)
	}

	if ss.Vertex != "A\n" || ss.Fragment != "B\n" {
		t.Errorf("got %+v", ss)
	}

	_, err = LoadCombinedShader(filepath.Join(dir, "missing.shader"))
	if !errors.Is(err, ErrResourceNotFound) {
		t.Errorf("expected ErrResourceNotFound, got %v", err)
	}

	_, err = LoadCombinedShader(dir)
	if err == nil || errors.Is(err, ErrResourceNotFound) {
		t.Errorf("expected a read error for a directory, got %v", err)
	}
}

func TestLoadCombinedShaderMissingSkipsCompile(t *testing.T) {

	drv := newFakeDriver()
	_, err := LoadAndCompileCombinedShader(drv, filepath.Join(t.TempDir(), "nope.shader"))
	if !errors.Is(err, ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}

	if len(drv.compiled) != 0 || drv.nextId != 0 {
		t.Error("no GPU objects should be created when the resource is missing")
	}
}

func TestLoadBundledShader(t *testing.T) {

	ss, err := LoadCombinedShader("../res/shaders/basic.shader")
	if err != nil {
		t.Fatal(err)
	}

	for _, stage := range []ShaderType{ShaderType_Vertex, ShaderType_Fragment} {

		src := ss.Stage(stage)
		if !strings.HasPrefix(src, "#version 330 core\n") || !strings.Contains(src, "void main()") {
			t.Errorf("%s: unexpected source %q", stage, src)
		}
	}

	drv := newFakeDriver()
	prog, err := BuildProgram(drv, ss)
	if err != nil {
		t.Fatal(err)
	}

	prog.Delete(drv)
	if drv.liveObjects() != 0 {
		t.Errorf("expected no live objects, got %d", drv.liveObjects())
	}
}
