package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"runtime"

	"uk.ac.bris.cs/mandelbrot/fractal"
	"uk.ac.bris.cs/mandelbrot/sdl"
	"uk.ac.bris.cs/mandelbrot/util"
)

func init() {
	// SDL has to be driven from the main thread.
	runtime.LockOSThread()
}

// newRenderer opens the sink chosen by cfg.Render. The returned func releases it once drawing is finished.
func newRenderer(cfg fractal.Config) (fractal.Renderer, func(), error) {
	switch cfg.Render {
	case "sdl":
		window, err := sdl.NewWindow(int32(cfg.Params.Width), int32(cfg.Params.Height), cfg.Params.MaxDepth)
		if err != nil {
			return nil, nil, err
		}
		return window, func() {
			window.WaitForClose()
			window.Destroy()
			log.Print("Display closed")
		}, nil
	case "terminal":
		return util.NewTerminal(os.Stdout, cfg.Params, 80), func() {}, nil
	case "pgm":
		return fractal.NewPGMWriter(cfg.OutDir, cfg.Params), func() {}, nil
	case "none":
		return fractal.NopRenderer{}, func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown renderer %q", cfg.Render)
}

// logProgress reports every tenth of the grid and each phase change.
func logProgress(events <-chan fractal.Event, cells int) {
	step := cells / 10
	if step == 0 {
		step = 1
	}
	for event := range events {
		switch e := event.(type) {
		case fractal.ResultCollected:
			if e.Collected%step == 0 {
				log.Printf("Collected %d/%d cells", e.Collected, cells)
			}
		case fractal.StateChange, fractal.WorkerRetired, fractal.FinalGridComplete:
			log.Print(e)
		}
	}
}

func appendBenchmark(path string, stats fractal.Stats) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer file.Close()
	return fractal.WriteBenchmark(file, stats)
}

// serve runs the grid to completion on listener and reports on it. The renderer is released on every path.
func serve(cfg fractal.Config, listener net.Listener, renderer fractal.Renderer, release func()) error {
	defer release()

	events := make(chan fractal.Event, 1024)
	logged := make(chan struct{})
	go func() {
		logProgress(events, cfg.Params.Cells())
		close(logged)
	}()

	_, stats, err := fractal.Run(cfg.Params, listener, events, renderer)
	<-logged
	if err != nil {
		return err
	}
	log.Printf("%d cells computed by %d workers in %v", cfg.Params.Cells(), stats.Workers(), stats.Elapsed)
	for worker, tasks := range stats.Tasks {
		log.Printf("  %s: %d tasks", worker, tasks)
	}
	if cfg.Bench != "" {
		if err := appendBenchmark(cfg.Bench, stats); err != nil {
			log.Printf("Cannot write benchmark: %v", err)
		}
	}
	return nil
}

func main() {
	cfg := fractal.DefaultConfig()
	configPath := flag.String("config", "", "YAML or TOML config file")
	pAddr := flag.String("port", cfg.Port, "Port to listen on")
	width := flag.Int("w", cfg.Params.Width, "Grid width in pixels")
	height := flag.Int("h", cfg.Params.Height, "Grid height in pixels")
	depth := flag.Int("depth", cfg.Params.MaxDepth, "Maximum iteration depth")
	minR := flag.Float64("minr", cfg.Params.MinR, "Real part of the window's corner")
	minI := flag.Float64("mini", cfg.Params.MinI, "Imaginary part of the window's corner")
	size := flag.Float64("size", cfg.Params.Size, "Side of the window in the complex plane")
	render := flag.String("render", cfg.Render, "Renderer: sdl, terminal, pgm or none")
	outDir := flag.String("out", cfg.OutDir, "Directory for pgm output")
	bench := flag.String("bench", cfg.Bench, "Append a benchmark line for this run to the given file")
	flag.Parse()

	if *configPath != "" {
		util.Check(fractal.LoadConfig(*configPath, &cfg))
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = *pAddr
		case "w":
			cfg.Params.Width = *width
		case "h":
			cfg.Params.Height = *height
		case "depth":
			cfg.Params.MaxDepth = *depth
		case "minr":
			cfg.Params.MinR = *minR
		case "mini":
			cfg.Params.MinI = *minI
		case "size":
			cfg.Params.Size = *size
		case "render":
			cfg.Render = *render
		case "out":
			cfg.OutDir = *outDir
		case "bench":
			cfg.Bench = *bench
		}
	})
	util.Check(cfg.Params.Validate())

	renderer, release, err := newRenderer(cfg)
	if err != nil {
		log.Fatalf("Cannot start renderer: %v", err)
	}

	listener, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		release()
		log.Fatalf("Failed to listen on port %v: %v", cfg.Port, err)
	}
	defer listener.Close()
	log.Printf("Coordinator listening on :%v for a %dx%d grid", cfg.Port, cfg.Params.Width, cfg.Params.Height)

	if err := serve(cfg, listener, renderer, release); err != nil {
		log.Fatal(err)
	}
}
