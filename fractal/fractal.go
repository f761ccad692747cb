package fractal

import (
	"fmt"
	"net"
	"net/rpc"
)

// Run serves the Broker on listener until every cell of the grid has been
// computed by the workers, then hands the grid to r. The events channel may
// be nil; if not, it is closed when Run returns.
func Run(p Params, listener net.Listener, events chan<- Event, r Renderer) (*Grid, Stats, error) {
	if events != nil {
		defer close(events)
	}
	if err := p.Validate(); err != nil {
		return nil, Stats{}, err
	}

	broker := NewBroker()
	server := rpc.NewServer()
	if err := server.Register(broker); err != nil {
		return nil, Stats{}, fmt.Errorf("register broker: %w", err)
	}
	go server.Accept(listener)

	grid, stats := distributor(p, broker.channels(events))
	broker.finish()

	if events != nil {
		events <- StateChange{grid.Filled(), Rendering}
	}
	if err := RenderGrid(grid, r); err != nil {
		return grid, stats, fmt.Errorf("render: %w", err)
	}
	if events != nil {
		events <- StateChange{grid.Filled(), Complete}
	}
	return grid, stats, nil
}
