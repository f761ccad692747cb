package fractal

import (
	"errors"

	"uk.ac.bris.cs/mandelbrot/stubs"
)

// Broker is the RPC receiver workers talk to. It forwards every call to the
// distributor goroutine, which owns the grid.
type Broker struct {
	results chan request
	ready   chan request
	done    chan struct{}
}

func NewBroker() *Broker {
	return &Broker{
		results: make(chan request),
		ready:   make(chan request),
		done:    make(chan struct{}),
	}
}

func (b *Broker) channels(events chan<- Event) distributorChannels {
	return distributorChannels{
		events:  events,
		results: b.results,
		ready:   b.ready,
	}
}

// finish makes every later call answer with the Done sentinel.
func (b *Broker) finish() {
	close(b.done)
}

func (b *Broker) submit(ch chan<- request, req request, res *stubs.Task) error {
	if req.worker == "" {
		return errors.New("missing worker id")
	}
	req.reply = make(chan reply, 1)
	select {
	case ch <- req:
	case <-b.done:
		*res = stubs.Task{Done: true}
		return nil
	}
	rep := <-req.reply
	if rep.err != nil {
		return rep.err
	}
	*res = rep.task
	return nil
}

// Ready is a worker's first request for work.
func (b *Broker) Ready(req stubs.ReadyRequest, res *stubs.Task) (err error) {
	return b.submit(b.ready, request{worker: req.WorkerID}, res)
}

// Report delivers a result and asks for the next task.
func (b *Broker) Report(req stubs.Result, res *stubs.Task) (err error) {
	return b.submit(b.results, request{worker: req.WorkerID, result: &req}, res)
}
