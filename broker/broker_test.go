package main

import (
	"net"
	"net/rpc"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"uk.ac.bris.cs/mandelbrot/fractal"
)

func listen(t *testing.T) net.Listener {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { listener.Close() })
	return listener
}

func TestServeReleasesRendererOnError(t *testing.T) {
	cfg := fractal.DefaultConfig()
	cfg.Params.Width = 0

	released := false
	err := serve(cfg, listen(t), fractal.NopRenderer{}, func() { released = true })
	assert.Error(t, err)
	assert.True(t, released)
}

func TestServeWritesBenchmark(t *testing.T) {
	cfg := fractal.DefaultConfig()
	cfg.Params = fractal.Params{Width: 4, Height: 4, MaxDepth: 10, MinR: -2, MinI: -2, Size: 4}
	cfg.Bench = filepath.Join(t.TempDir(), "bench.txt")
	listener := listen(t)

	client, err := rpc.Dial("tcp", listener.Addr().String())
	require.NoError(t, err)
	defer client.Close()
	done := make(chan error, 1)
	go func() {
		done <- fractal.NewWorker(client).Run()
	}()

	released := false
	require.NoError(t, serve(cfg, listener, fractal.NopRenderer{}, func() { released = true }))
	assert.NoError(t, <-done)
	assert.True(t, released)

	bench, err := os.ReadFile(cfg.Bench)
	require.NoError(t, err)
	assert.Contains(t, string(bench), "Mandelbrot/4x4x10-1")
}
