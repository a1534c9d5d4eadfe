package engine

import (
	"github.com/bloeys/nmage-basic/assert"
	"github.com/bloeys/nmage-basic/input"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type Game interface {
	Init()

	Update()
	Render()
	FrameEnd()

	DeInit()
}

// Run runs the render loop on the calling thread until the window is asked to close
// (quit event or Window.RequestClose). Each frame clears, renders, swaps then polls events.
func Run(g Game, w *Window) {

	assert.T(isInited, "engine.Init() was not called!")

	g.Init()

	for {

		gl.Clear(gl.COLOR_BUFFER_BIT)
		g.Render()
		w.SDLWin.GLSwap()
		g.FrameEnd()

		w.handleInputs()
		if input.IsQuitClicked() {
			w.RequestClose()
		}

		if w.IsCloseRequested() {
			break
		}

		g.Update()
	}

	g.DeInit()
}
