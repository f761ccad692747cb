package fractal

import (
	"fmt"

	"github.com/google/uuid"
	"uk.ac.bris.cs/mandelbrot/stubs"
)

// Caller is the part of *rpc.Client a worker needs.
type Caller interface {
	Call(serviceMethod string, args interface{}, reply interface{}) error
}

// WorkerState is the position of a worker in its request/compute/report cycle.
type WorkerState int

const (
	WorkerStarted WorkerState = iota
	WorkerReady
	AwaitingTask
	Computing
	WorkerDone
)

func (state WorkerState) String() string {
	switch state {
	case WorkerStarted:
		return "Started"
	case WorkerReady:
		return "Ready"
	case AwaitingTask:
		return "AwaitingTask"
	case Computing:
		return "Computing"
	case WorkerDone:
		return "Done"
	default:
		return "Incorrect State"
	}
}

type Worker struct {
	ID       string
	client   Caller
	state    WorkerState
	computed int
}

func NewWorker(client Caller) *Worker {
	return &Worker{
		ID:     uuid.NewString(),
		client: client,
		state:  WorkerStarted,
	}
}

func (w *Worker) State() WorkerState {
	return w.state
}

func (w *Worker) Computed() int {
	return w.computed
}

// Run asks the coordinator for work and computes tasks one at a time until it is told to stop.
func (w *Worker) Run() error {
	w.state = WorkerReady
	task := new(stubs.Task)
	w.state = AwaitingTask
	if err := w.client.Call(stubs.Ready, stubs.ReadyRequest{WorkerID: w.ID}, task); err != nil {
		return fmt.Errorf("worker %s: ready: %w", w.ID, err)
	}

	for !task.Done {
		w.state = Computing
		result := stubs.Result{
			WorkerID: w.ID,
			Cell:     task.Cell,
			Depth:    EscapeDepth(task.CR, task.CI, task.MaxDepth),
		}
		w.computed++

		next := new(stubs.Task)
		w.state = AwaitingTask
		if err := w.client.Call(stubs.Report, result, next); err != nil {
			return fmt.Errorf("worker %s: report (%d,%d): %w", w.ID, task.Cell.X, task.Cell.Y, err)
		}
		task = next
	}
	w.state = WorkerDone
	return nil
}
