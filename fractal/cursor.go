package fractal

import "uk.ac.bris.cs/mandelbrot/stubs"

// cursor walks the grid in row-major order, handing out each cell once.
type cursor struct {
	p          Params
	next       stubs.Cell
	dispatched int
}

func newCursor(p Params) *cursor {
	return &cursor{p: p}
}

func (c *cursor) Exhausted() bool {
	return c.next.Y >= c.p.Height
}

// Next returns the task for the current cell and advances.
// Once the last cell has been issued it returns false forever.
func (c *cursor) Next() (stubs.Task, bool) {
	if c.Exhausted() {
		return stubs.Task{Done: true}, false
	}
	task := c.p.NewTask(c.next)
	c.next.X++
	if c.next.X == c.p.Width {
		c.next.X = 0
		c.next.Y++
	}
	c.dispatched++
	return task, true
}

func (c *cursor) Dispatched() int {
	return c.dispatched
}
