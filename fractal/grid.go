package fractal

import (
	"fmt"

	"uk.ac.bris.cs/mandelbrot/stubs"
)

// Grid is a dense row-major array of escape depths.
type Grid struct {
	Width  int
	Height int
	depths []int
	set    []bool
	filled int
}

func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		depths: make([]int, width*height),
		set:    make([]bool, width*height),
	}
}

func (g *Grid) offset(cell stubs.Cell) (int, error) {
	if cell.X < 0 || cell.X >= g.Width || cell.Y < 0 || cell.Y >= g.Height {
		return 0, fmt.Errorf("cell (%d,%d) outside %dx%d grid", cell.X, cell.Y, g.Width, g.Height)
	}
	return cell.Y*g.Width + cell.X, nil
}

// Set records the depth of a cell. Each cell may be written once.
func (g *Grid) Set(cell stubs.Cell, depth int) error {
	i, err := g.offset(cell)
	if err != nil {
		return err
	}
	if g.set[i] {
		return fmt.Errorf("cell (%d,%d) already recorded", cell.X, cell.Y)
	}
	g.depths[i] = depth
	g.set[i] = true
	g.filled++
	return nil
}

func (g *Grid) At(x, y int) int {
	return g.depths[y*g.Width+x]
}

func (g *Grid) Filled() int {
	return g.filled
}

func (g *Grid) Complete() bool {
	return g.filled == len(g.depths)
}
