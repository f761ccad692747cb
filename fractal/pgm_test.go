package fractal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"uk.ac.bris.cs/mandelbrot/stubs"
)

func TestPGMWriter(t *testing.T) {
	p := Params{Width: 2, Height: 2, MaxDepth: 10, MinR: -2, MinI: -2, Size: 4}
	grid := NewGrid(2, 2)
	require.NoError(t, grid.Set(stubs.Cell{X: 0, Y: 0}, 0))
	require.NoError(t, grid.Set(stubs.Cell{X: 1, Y: 0}, 5))
	require.NoError(t, grid.Set(stubs.Cell{X: 0, Y: 1}, 10))
	require.NoError(t, grid.Set(stubs.Cell{X: 1, Y: 1}, 9))

	dir := filepath.Join(t.TempDir(), "out")
	writer := NewPGMWriter(dir, p)
	require.NoError(t, RenderGrid(grid, writer))

	assert.Equal(t, filepath.Join(dir, "2x2x10.pgm"), writer.Filename())
	data, err := os.ReadFile(writer.Filename())
	require.NoError(t, err)
	want := append([]byte("P5\n2 2\n255\n"), 255, 128, 0, 26)
	assert.Equal(t, want, data)
}
