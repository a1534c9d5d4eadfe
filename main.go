package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/nmage-basic/engine"
	"github.com/bloeys/nmage-basic/gldriver"
	"github.com/bloeys/nmage-basic/input"
	"github.com/bloeys/nmage-basic/logging"
	"github.com/bloeys/nmage-basic/meshes"
	"github.com/bloeys/nmage-basic/renderer/rend2dgl"
	"github.com/bloeys/nmage-basic/shaders"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	clearColor = gglm.Vec4{Data: [4]float32{0.08, 0.08, 0.1, 1}}
)

type Game struct {
	Win   *engine.Window
	Drv   *gldriver.Driver
	Rend  *rend2dgl.Rend2DGL
	Shape meshes.Shape

	Prog shaders.ShaderProgram
	Mesh meshes.Mesh
}

func main() {

	cfg, err := parseArgs(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if cfg.Version {
		fmt.Println(Version())
		return
	}

	if err := run(cfg); err != nil {
		logging.ErrLog.Println(err)
		os.Exit(1)
	}
}

func run(cfg *Config) error {

	shape, err := meshes.NewShape(cfg.Shape)
	if err != nil {
		return err
	}

	// Read the shader before touching the window so a bad path fails without opening one
	shaderSrc, err := shaders.LoadCombinedShader(cfg.ShaderPath)
	if err != nil {
		return err
	}

	err = engine.Init()
	if err != nil {
		return errors.Wrap(err, "failed to init engine")
	}

	window, err := engine.CreateOpenGLWindowCentered(cfg.Title, cfg.Width, cfg.Height, engine.WindowFlags_RESIZABLE)
	if err != nil {
		return errors.Wrap(err, "failed to create window")
	}
	defer window.Destroy()

	engine.SetVSync(cfg.VSync)
	engine.SetClearColor(clearColor)

	drv := gldriver.New()
	prog, err := shaders.BuildProgram(drv, shaderSrc)
	if err != nil {
		return errors.Wrapf(err, "failed to build shader program from '%s'", cfg.ShaderPath)
	}

	rend := rend2dgl.NewRend2DGL(drv)
	rend.CheckErrors = cfg.CheckGl

	game := &Game{
		Win:   window,
		Drv:   drv,
		Rend:  rend,
		Shape: shape,
		Prog:  prog,
	}

	engine.Run(game, window)
	return nil
}

func (g *Game) Init() {

	g.Mesh = meshes.NewMesh(g.Shape.Kind.String(), g.Shape)

	logging.InfoLog.Printf("Drawing %s with program %d (vertices=%d, indices=%d)\n", g.Mesh.Name, g.Prog.Id, g.Mesh.VertexCount, g.Mesh.IndexCount)
}

func (g *Game) Update() {

	if input.KeyClicked(sdl.K_ESCAPE) {
		g.Win.RequestClose()
	}
}

func (g *Game) Render() {
	g.Rend.DrawMesh(g.Prog, g.Mesh)
}

func (g *Game) FrameEnd() {
	g.Rend.FrameEnd()
}

func (g *Game) DeInit() {
	g.Mesh.Delete()
	g.Prog.Delete(g.Drv)
}
