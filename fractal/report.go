package fractal

import (
	"fmt"
	"io"
	"runtime"

	"golang.org/x/perf/benchfmt"
)

// WriteBenchmark writes a run in the Go benchmark format so runs with
// different worker counts can be compared with benchstat.
func WriteBenchmark(w io.Writer, s Stats) error {
	maxTasks := 0
	for _, n := range s.Tasks {
		if n > maxTasks {
			maxTasks = n
		}
	}
	cellsPerSecond := 0.0
	if s.Elapsed > 0 {
		cellsPerSecond = float64(s.Params.Cells()) / s.Elapsed.Seconds()
	}

	result := &benchfmt.Result{
		Config: []benchfmt.Config{
			{Key: "goos", Value: []byte(runtime.GOOS), File: true},
			{Key: "goarch", Value: []byte(runtime.GOARCH), File: true},
			{Key: "pkg", Value: []byte("uk.ac.bris.cs/mandelbrot"), File: true},
		},
		Name: benchfmt.Name(fmt.Sprintf("Mandelbrot/%dx%dx%d-%d",
			s.Params.Width, s.Params.Height, s.Params.MaxDepth, s.Workers())),
		Iters: 1,
		Values: []benchfmt.Value{
			{Value: float64(s.Elapsed.Nanoseconds()), Unit: "ns/op"},
			{Value: cellsPerSecond, Unit: "cells/s"},
			{Value: float64(maxTasks), Unit: "max-tasks/worker"},
		},
	}
	return benchfmt.NewWriter(w).Write(result)
}
