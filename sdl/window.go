package sdl

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"uk.ac.bris.cs/mandelbrot/fractal"
)

// Window draws a completed grid point by point. SDL calls must come from the main OS thread.
type Window struct {
	Width    int32
	Height   int32
	maxDepth int
	window   *sdl.Window
	renderer *sdl.Renderer
}

func NewWindow(width, height int32, maxDepth int) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("init sdl: %w", err)
	}
	window, err := sdl.CreateWindow("Mandelbrot", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		width, height, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	renderer.SetDrawColor(0, 0, 0, 255)
	renderer.Clear()
	return &Window{
		Width:    width,
		Height:   height,
		maxDepth: maxDepth,
		window:   window,
		renderer: renderer,
	}, nil
}

func (w *Window) Render(x, y, depth int) {
	c := fractal.Colour(depth, w.maxDepth)
	w.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	w.renderer.DrawPoint(int32(x), int32(y))
}

func (w *Window) Flush() error {
	w.renderer.Present()
	return nil
}

// WaitForClose blocks until a key is pressed or the window is closed.
func (w *Window) WaitForClose() {
	for {
		switch e := sdl.WaitEvent().(type) {
		case *sdl.QuitEvent:
			return
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				return
			}
		}
	}
}

func (w *Window) Destroy() {
	w.renderer.Destroy()
	w.window.Destroy()
	sdl.Quit()
}
