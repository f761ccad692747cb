package fractal

import (
	"net"
	"net/rpc"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"uk.ac.bris.cs/mandelbrot/stubs"
)

type recorder struct {
	cells   []stubs.Cell
	depths  []int
	flushed bool
}

func (r *recorder) Render(x, y, depth int) {
	r.cells = append(r.cells, stubs.Cell{X: x, Y: y})
	r.depths = append(r.depths, depth)
}

func (r *recorder) Flush() error {
	r.flushed = true
	return nil
}

// startWorkers connects n workers to the coordinator at addr, each in its own goroutine.
func startWorkers(t *testing.T, addr string, n int) ([]*Worker, *sync.WaitGroup) {
	workers := make([]*Worker, n)
	var wg sync.WaitGroup
	for i := range workers {
		client, err := rpc.Dial("tcp", addr)
		require.NoError(t, err)
		workers[i] = NewWorker(client)
		wg.Add(1)
		go func(w *Worker, client *rpc.Client) {
			defer wg.Done()
			defer client.Close()
			assert.NoError(t, w.Run())
		}(workers[i], client)
	}
	return workers, &wg
}

func listen(t *testing.T) net.Listener {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { listener.Close() })
	return listener
}

func TestRunFourByFour(t *testing.T) {
	p := Params{Width: 4, Height: 4, MaxDepth: 10, MinR: -2, MinI: -2, Size: 4}
	listener := listen(t)
	workers, wg := startWorkers(t, listener.Addr().String(), 1)

	r := &recorder{}
	grid, stats, err := Run(p, listener, nil, r)
	require.NoError(t, err)
	wg.Wait()

	want := [4][4]int{
		{0, 0, 1, 0},
		{0, 2, 10, 1},
		{10, 10, 10, 2},
		{0, 2, 10, 1},
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, want[y][x], grid.At(x, y), "(%d,%d)", x, y)
		}
	}
	assert.Equal(t, 2, grid.At(1, 1))

	require.Len(t, r.cells, 16)
	assert.True(t, r.flushed)
	for i, cell := range r.cells {
		assert.Equal(t, stubs.Cell{X: i % 4, Y: i / 4}, cell)
		assert.Equal(t, want[cell.Y][cell.X], r.depths[i])
	}

	assert.Equal(t, WorkerDone, workers[0].State())
	assert.Equal(t, 16, workers[0].Computed())
	assert.Equal(t, map[string]int{workers[0].ID: 16}, stats.Tasks)
}

func TestRunDispatchesEachCellOnce(t *testing.T) {
	p := Params{Width: 23, Height: 17, MaxDepth: 200, MinR: -2, MinI: -1.5, Size: 3}
	for _, n := range []int{1, 2, 5, 8} {
		listener := listen(t)
		workers, wg := startWorkers(t, listener.Addr().String(), n)

		events := make(chan Event)
		audit := make(chan map[stubs.Cell][2]int)
		go func() {
			seen := make(map[stubs.Cell][2]int)
			for event := range events {
				switch e := event.(type) {
				case TaskDispatched:
					counts := seen[e.Cell]
					counts[0]++
					seen[e.Cell] = counts
				case ResultCollected:
					counts := seen[e.Cell]
					counts[1]++
					seen[e.Cell] = counts
				}
			}
			audit <- seen
		}()

		grid, stats, err := Run(p, listener, events, NopRenderer{})
		require.NoError(t, err)
		wg.Wait()
		seen := <-audit

		require.Len(t, seen, p.Cells())
		for cell, counts := range seen {
			assert.Equal(t, [2]int{1, 1}, counts, "(%d,%d)", cell.X, cell.Y)
			cr, ci := p.PixelToComplex(cell.X, cell.Y)
			assert.Equal(t, EscapeDepth(cr, ci, p.MaxDepth), grid.At(cell.X, cell.Y))
		}

		computed := 0
		for _, w := range workers {
			assert.Equal(t, WorkerDone, w.State())
			computed += w.Computed()
		}
		assert.Equal(t, p.Cells(), computed)
		assert.LessOrEqual(t, stats.Workers(), n)
	}
}

func TestRunRejectsBadParams(t *testing.T) {
	events := make(chan Event, 1)
	_, _, err := Run(Params{Width: 0, Height: 4, MaxDepth: 10, Size: 4}, listen(t), events, NopRenderer{})
	assert.Error(t, err)
	_, open := <-events
	assert.False(t, open)
}
