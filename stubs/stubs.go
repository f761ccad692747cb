package stubs

var Ready = "Broker.Ready"
var Report = "Broker.Report"

// Cell is a pixel coordinate in the grid.
type Cell struct {
	X, Y int
}

type ReadyRequest struct {
	WorkerID string
}

type Task struct {
	Cell Cell
	CR   float64
	CI   float64
	// MaxDepth is the coordinator's iteration limit, so every cell uses the same one.
	MaxDepth int
	Done     bool // no more work, the worker should stop
}

type Result struct {
	WorkerID string
	Cell     Cell
	Depth    int
}
