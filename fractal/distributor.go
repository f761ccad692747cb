package fractal

import (
	"fmt"
	"log"
	"time"

	"uk.ac.bris.cs/mandelbrot/stubs"
)

// request is a worker asking for work. A nil result means a first readiness signal.
type request struct {
	worker string
	result *stubs.Result
	reply  chan reply
}

type reply struct {
	task stubs.Task
	err  error
}

type distributorChannels struct {
	events  chan<- Event
	results <-chan request
	ready   <-chan request
}

// Stats describes a finished run.
type Stats struct {
	Params  Params
	Tasks   map[string]int // tasks dispatched to each worker
	Elapsed time.Duration
}

func (s Stats) Workers() int {
	return len(s.Tasks)
}

type dispatch struct {
	p        Params
	c        distributorChannels
	grid     *Grid
	tasks    *cursor
	inFlight map[string]stubs.Cell
	stats    Stats
}

func (d *dispatch) send(event Event) {
	if d.c.events != nil {
		d.c.events <- event
	}
}

// collect writes a result into the grid if it is the task in flight for that worker.
func (d *dispatch) collect(worker string, result stubs.Result) error {
	cell, ok := d.inFlight[worker]
	if !ok {
		return fmt.Errorf("worker %s reported (%d,%d) with no task in flight", worker, result.Cell.X, result.Cell.Y)
	}
	if cell != result.Cell {
		return fmt.Errorf("worker %s reported (%d,%d) but was assigned (%d,%d)",
			worker, result.Cell.X, result.Cell.Y, cell.X, cell.Y)
	}
	if result.Depth < 0 || result.Depth > d.p.MaxDepth {
		return fmt.Errorf("worker %s reported depth %d outside [0,%d]", worker, result.Depth, d.p.MaxDepth)
	}
	if err := d.grid.Set(result.Cell, result.Depth); err != nil {
		return err
	}
	delete(d.inFlight, worker)
	d.send(ResultCollected{Collected: d.grid.Filled(), Worker: worker, Cell: result.Cell, Depth: result.Depth})
	return nil
}

// assign hands the next cell to the worker, or the Done sentinel once the cursor is exhausted.
func (d *dispatch) assign(worker string) stubs.Task {
	task, ok := d.tasks.Next()
	if !ok {
		d.send(WorkerRetired{Collected: d.grid.Filled(), Worker: worker, Tasks: d.stats.Tasks[worker]})
		return task
	}
	d.inFlight[worker] = task.Cell
	d.stats.Tasks[worker]++
	d.send(TaskDispatched{Collected: d.grid.Filled(), Worker: worker, Cell: task.Cell})
	if d.tasks.Exhausted() {
		d.send(StateChange{d.grid.Filled(), Draining})
	}
	return task
}

// balanced reports whether every dispatched task is either collected or still in flight.
func (d *dispatch) balanced() error {
	if d.tasks.Dispatched()-d.grid.Filled() != len(d.inFlight) {
		return fmt.Errorf("%d tasks dispatched, %d collected, %d in flight",
			d.tasks.Dispatched(), d.grid.Filled(), len(d.inFlight))
	}
	return nil
}

func (d *dispatch) handle(req request) reply {
	if req.result != nil {
		if err := d.collect(req.worker, *req.result); err != nil {
			return reply{err: err}
		}
		return reply{task: d.assign(req.worker)}
	}
	if cell, busy := d.inFlight[req.worker]; busy {
		return reply{err: fmt.Errorf("worker %s asked for work while (%d,%d) is in flight", req.worker, cell.X, cell.Y)}
	}
	return reply{task: d.assign(req.worker)}
}

func newDispatch(p Params, c distributorChannels) *dispatch {
	return &dispatch{
		p:        p,
		c:        c,
		grid:     NewGrid(p.Width, p.Height),
		tasks:    newCursor(p),
		inFlight: make(map[string]stubs.Cell),
		stats:    Stats{Params: p, Tasks: make(map[string]int)},
	}
}

// distributor hands out cells to whichever worker asks and collects results until the grid is full.
func distributor(p Params, c distributorChannels) (*Grid, Stats) {
	d := newDispatch(p, c)
	start := time.Now()
	d.send(StateChange{0, Dispatching})

	for !d.grid.Complete() {
		// Results take priority over first requests.
		var req request
		select {
		case req = <-c.results:
		default:
			select {
			case req = <-c.results:
			case req = <-c.ready:
			}
		}
		rep := d.handle(req)
		if rep.err != nil {
			log.Printf("Rejected request: %v", rep.err)
		}
		if err := d.balanced(); err != nil {
			log.Panic(err)
		}
		req.reply <- rep
	}

	d.stats.Elapsed = time.Since(start)
	d.send(FinalGridComplete{d.grid.Filled(), d.grid})
	return d.grid, d.stats
}
