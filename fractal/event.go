package fractal

import (
	"fmt"

	"uk.ac.bris.cs/mandelbrot/stubs"
)

// Event represents any notable occurrence in the coordinator.
type Event interface {
	fmt.Stringer
	GetCollected() int
}

// State represents the phase of the coordinator.
type State int

const (
	Dispatching State = iota
	Draining
	Rendering
	Complete
)

func (state State) String() string {
	switch state {
	case Dispatching:
		return "Dispatching"
	case Draining:
		return "Draining"
	case Rendering:
		return "Rendering"
	case Complete:
		return "Complete"
	default:
		return "Incorrect State"
	}
}

// StateChange is sent every time the coordinator moves to a new phase.
type StateChange struct {
	Collected int
	NewState  State
}

// TaskDispatched is sent each time a cell is handed to a worker.
type TaskDispatched struct {
	Collected int
	Worker    string
	Cell      stubs.Cell
}

// ResultCollected is sent each time a cell's depth is written into the grid.
type ResultCollected struct {
	Collected int
	Worker    string
	Cell      stubs.Cell
	Depth     int
}

// WorkerRetired is sent when a worker is told there is no more work.
type WorkerRetired struct {
	Collected int
	Worker    string
	Tasks     int
}

// FinalGridComplete is sent once every cell has a depth.
type FinalGridComplete struct {
	Collected int
	Grid      *Grid
}

func (event StateChange) String() string {
	return fmt.Sprintf("%v", event.NewState)
}

func (event StateChange) GetCollected() int {
	return event.Collected
}

func (event TaskDispatched) String() string {
	return fmt.Sprintf("(%d,%d) -> %s", event.Cell.X, event.Cell.Y, event.Worker)
}

func (event TaskDispatched) GetCollected() int {
	return event.Collected
}

func (event ResultCollected) String() string {
	return fmt.Sprintf("(%d,%d) = %d from %s", event.Cell.X, event.Cell.Y, event.Depth, event.Worker)
}

func (event ResultCollected) GetCollected() int {
	return event.Collected
}

func (event WorkerRetired) String() string {
	return fmt.Sprintf("%s done after %d tasks", event.Worker, event.Tasks)
}

func (event WorkerRetired) GetCollected() int {
	return event.Collected
}

func (event FinalGridComplete) String() string {
	return fmt.Sprintf("Grid %dx%d complete", event.Grid.Width, event.Grid.Height)
}

func (event FinalGridComplete) GetCollected() int {
	return event.Collected
}
