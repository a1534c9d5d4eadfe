package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/bloeys/nmage-basic/meshes"
	"github.com/pkg/errors"
)

const (
	DefaultShaderPath   = "./res/shaders/basic.shader"
	DefaultWindowWidth  = 640
	DefaultWindowHeight = 480
)

// flagOutput receives usage and flag parsing errors
var flagOutput io.Writer = os.Stderr

// Config defines program configuration.
type Config struct {
	ShaderPath string           // Path to the combined vertex+fragment shader file.
	Shape      meshes.ShapeKind // Geometry to draw.
	Width      int32            // Window width in pixels.
	Height     int32            // Window height in pixels.
	Title      string           // Window title.
	VSync      bool             // Sync buffer swaps to the display refresh rate?
	CheckGl    bool             // Check for OpenGL errors after every draw call?
	Version    bool             // Print version information and exit?
}

// parseArgs parses command line arguments (without the program name).
func parseArgs(args []string) (*Config, error) {

	c := Config{
		ShaderPath: DefaultShaderPath,
		Width:      DefaultWindowWidth,
		Height:     DefaultWindowHeight,
		Title:      "Hello World",
		VSync:      true,
		CheckGl:    true,
	}

	fs := flag.NewFlagSet(AppName, flag.ContinueOnError)
	fs.SetOutput(flagOutput)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "%s [options]\n", os.Args[0])
		fs.PrintDefaults()
	}

	var shape string
	var width, height int

	fs.StringVar(&c.ShaderPath, "shader", c.ShaderPath, "Combined shader file with '#shader vertex' and '#shader fragment' sections.")
	fs.StringVar(&shape, "shape", meshes.ShapeKind_Square.String(), "Shape to draw: 'triangle' or 'square'.")
	fs.IntVar(&width, "width", int(c.Width), "Window width.")
	fs.IntVar(&height, "height", int(c.Height), "Window height.")
	fs.StringVar(&c.Title, "title", c.Title, "Window title.")
	fs.BoolVar(&c.VSync, "vsync", c.VSync, "Enable vsync.")
	fs.BoolVar(&c.CheckGl, "check-gl", c.CheckGl, "Log OpenGL errors raised by draw calls.")
	fs.BoolVar(&c.Version, "version", false, "Display version information.")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, errors.Errorf("unexpected arguments: %v", fs.Args())
	}

	var err error
	c.Shape, err = meshes.ParseShapeKind(shape)
	if err != nil {
		return nil, err
	}

	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("window size must be positive, got %dx%d", width, height)
	}

	c.Width = int32(width)
	c.Height = int32(height)
	return &c, nil
}
