package fractal

// Renderer receives every cell of a completed grid.
type Renderer interface {
	Render(x, y, depth int)
	Flush() error
}

// RenderGrid draws a complete grid in row-major order.
func RenderGrid(grid *Grid, r Renderer) error {
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			r.Render(x, y, grid.At(x, y))
		}
	}
	return r.Flush()
}

type NopRenderer struct{}

func (NopRenderer) Render(x, y, depth int) {}
func (NopRenderer) Flush() error           { return nil }
