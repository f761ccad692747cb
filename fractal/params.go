package fractal

import (
	"fmt"

	"uk.ac.bris.cs/mandelbrot/stubs"
)

// Params provides the size of the grid, the iteration limit and the window of the complex plane to sample.
type Params struct {
	Width    int     `yaml:"width" toml:"width"`
	Height   int     `yaml:"height" toml:"height"`
	MaxDepth int     `yaml:"depth" toml:"depth"`
	MinR     float64 `yaml:"minr" toml:"minr"`
	MinI     float64 `yaml:"mini" toml:"mini"`
	Size     float64 `yaml:"size" toml:"size"`
}

// DefaultParams matches the resolution and window of the X11 version.
func DefaultParams() Params {
	return Params{
		Width:    1000,
		Height:   1000,
		MaxDepth: 1000,
		MinR:     -2,
		MinI:     -2,
		Size:     4,
	}
}

func (p Params) Validate() error {
	if p.Width < 1 || p.Height < 1 {
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", p.Width, p.Height)
	}
	if p.MaxDepth < 1 {
		return fmt.Errorf("depth must be positive, got %d", p.MaxDepth)
	}
	if p.Size <= 0 {
		return fmt.Errorf("window size must be positive, got %v", p.Size)
	}
	return nil
}

func (p Params) MaxR() float64 { return p.MinR + p.Size }
func (p Params) MaxI() float64 { return p.MinI + p.Size }

// Increments returns the distance in the complex plane between neighbouring pixels.
func (p Params) Increments() (float64, float64) {
	return p.Size / float64(p.Width), p.Size / float64(p.Height)
}

// PixelToComplex maps a pixel to its point in the window.
// The last pixel lands one increment short of (MaxR, MaxI).
func (p Params) PixelToComplex(x, y int) (float64, float64) {
	increaseX, increaseY := p.Increments()
	return p.MinR + float64(x)*increaseX, p.MinI + float64(y)*increaseY
}

func (p Params) NewTask(cell stubs.Cell) stubs.Task {
	cr, ci := p.PixelToComplex(cell.X, cell.Y)
	return stubs.Task{Cell: cell, CR: cr, CI: ci, MaxDepth: p.MaxDepth}
}

func (p Params) Cells() int {
	return p.Width * p.Height
}
