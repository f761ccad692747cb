package util

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"uk.ac.bris.cs/mandelbrot/fractal"
)

const block = "█"

// Terminal renders a grid as coloured blocks, sampled down to fit a number of columns.
type Terminal struct {
	out      io.Writer
	maxDepth int
	step     int
	lastRow  int
	styles   map[color.RGBA]lipgloss.Style
	screen   strings.Builder
}

func NewTerminal(out io.Writer, p fractal.Params, columns int) *Terminal {
	step := 1
	if columns > 0 && p.Width > columns {
		step = (p.Width + columns - 1) / columns
	}
	return &Terminal{
		out:      out,
		maxDepth: p.MaxDepth,
		step:     step,
		lastRow:  -1,
		styles:   make(map[color.RGBA]lipgloss.Style),
	}
}

func (t *Terminal) style(c color.RGBA) lipgloss.Style {
	s, ok := t.styles[c]
	if !ok {
		s = lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)))
		t.styles[c] = s
	}
	return s
}

// Render keeps every step-th column and every 2*step-th row, since a character cell is about twice as tall as it is wide.
func (t *Terminal) Render(x, y, depth int) {
	if x%t.step != 0 || y%(2*t.step) != 0 {
		return
	}
	if y != t.lastRow {
		if t.lastRow >= 0 {
			t.screen.WriteString("\n")
		}
		t.lastRow = y
	}
	t.screen.WriteString(t.style(fractal.Colour(depth, t.maxDepth)).Render(block))
}

func (t *Terminal) Flush() error {
	if t.lastRow >= 0 {
		t.screen.WriteString("\n")
	}
	_, err := io.WriteString(t.out, t.screen.String())
	t.screen.Reset()
	t.lastRow = -1
	return err
}
