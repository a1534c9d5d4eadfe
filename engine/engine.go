package engine

import (
	"runtime"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/nmage-basic/assert"
	"github.com/bloeys/nmage-basic/input"
	"github.com/bloeys/nmage-basic/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	isInited = false
)

type Window struct {
	SDLWin         *sdl.Window
	GlCtx          sdl.GLContext
	EventCallbacks []func(sdl.Event)

	closeRequested bool
}

func (w *Window) handleInputs() {

	input.EventLoopStart()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {

		//Fire callbacks
		for i := 0; i < len(w.EventCallbacks); i++ {
			w.EventCallbacks[i](event)
		}

		//Internal processing
		switch e := event.(type) {

		case *sdl.KeyboardEvent:
			input.HandleKeyboardEvent(e)

		case *sdl.WindowEvent:

			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				w.handleWindowResize()
			}

		case *sdl.QuitEvent:
			input.HandleQuitEvent(e)
		}
	}
}

func (w *Window) handleWindowResize() {

	fbWidth, fbHeight := w.SDLWin.GLGetDrawableSize()
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}
	gl.Viewport(0, 0, fbWidth, fbHeight)
}

// RequestClose makes Run return after the current frame
func (w *Window) RequestClose() {
	w.closeRequested = true
}

func (w *Window) IsCloseRequested() bool {
	return w.closeRequested
}

// Destroy tears down the OpenGL context and the window, then shuts down SDL.
// OpenGL objects must be deleted before calling this.
func (w *Window) Destroy() error {

	if w.GlCtx != nil {
		sdl.GLDeleteContext(w.GlCtx)
		w.GlCtx = nil
	}

	var err error
	if w.SDLWin != nil {
		err = w.SDLWin.Destroy()
		w.SDLWin = nil
	}

	sdl.Quit()
	isInited = false
	return err
}

// Init must be called from the main goroutine, and all later engine and OpenGL calls must happen on it too
func Init() error {

	runtime.LockOSThread()

	if err := initSDL(); err != nil {
		return &ContextInitError{Step: "sdl init", Err: err}
	}

	isInited = true
	return nil
}

func initSDL() error {

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return err
	}

	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)

	sdl.GLSetAttribute(sdl.GL_RED_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_GREEN_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_BLUE_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_ALPHA_SIZE, 8)

	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)

	return nil
}

func CreateOpenGLWindow(title string, x, y, width, height int32, flags WindowFlags) (*Window, error) {
	return createWindow(title, x, y, width, height, WindowFlags_OPENGL|flags)
}

func CreateOpenGLWindowCentered(title string, width, height int32, flags WindowFlags) (*Window, error) {
	return createWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, WindowFlags_OPENGL|flags)
}

func createWindow(title string, x, y, width, height int32, flags WindowFlags) (*Window, error) {

	assert.T(isInited, "engine.Init() was not called!")

	sdlWin, err := sdl.CreateWindow(title, x, y, width, height, uint32(flags))
	if err != nil {
		return nil, &ContextInitError{Step: "create window", Err: err}
	}

	win := &Window{
		SDLWin:         sdlWin,
		EventCallbacks: make([]func(sdl.Event), 0),
	}

	win.GlCtx, err = sdlWin.GLCreateContext()
	if err != nil {
		win.Destroy()
		return nil, &ContextInitError{Step: "create OpenGL context", Err: err}
	}

	err = initOpenGL()
	if err != nil {
		win.Destroy()
		return nil, &ContextInitError{Step: "load OpenGL functions", Err: err}
	}

	logging.InfoLog.Printf("OpenGL version: %s\n", gl.GoStr(gl.GetString(gl.VERSION)))

	// Get rid of the white startup screen
	gl.Clear(gl.COLOR_BUFFER_BIT)
	sdlWin.GLSwap()

	return win, nil
}

func initOpenGL() error {

	if err := gl.Init(); err != nil {
		return err
	}

	gl.ClearColor(0, 0, 0, 1)

	return nil
}

func SetClearColor(c gglm.Vec4) {
	gl.ClearColor(c.Data[0], c.Data[1], c.Data[2], c.Data[3])
}

func SetVSync(enabled bool) {

	if enabled {
		sdl.GLSetSwapInterval(1)
	} else {
		sdl.GLSetSwapInterval(0)
	}
}
