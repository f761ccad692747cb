package fractal

import (
	"fmt"
	"io"
	"log"
	"net"
	"net/rpc"
	"sync"
	"testing"
)

// go test -run a$ -bench BenchmarkRun -benchtime=10x
func BenchmarkRun(b *testing.B) {
	log.SetOutput(io.Discard)
	p := Params{Width: 128, Height: 128, MaxDepth: 1000, MinR: -2, MinI: -2, Size: 4}

	for workers := 1; workers <= 8; workers *= 2 {
		name := fmt.Sprintf("%dx%dx%d-%d", p.Width, p.Height, p.MaxDepth, workers)
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				listener, err := net.Listen("tcp", "127.0.0.1:0")
				if err != nil {
					b.Fatal(err)
				}
				var wg sync.WaitGroup
				for w := 0; w < workers; w++ {
					client, err := rpc.Dial("tcp", listener.Addr().String())
					if err != nil {
						b.Fatal(err)
					}
					wg.Add(1)
					go func() {
						defer wg.Done()
						defer client.Close()
						if err := NewWorker(client).Run(); err != nil {
							b.Error(err)
						}
					}()
				}
				if _, _, err := Run(p, listener, nil, NopRenderer{}); err != nil {
					b.Fatal(err)
				}
				wg.Wait()
				listener.Close()
			}
		})
	}
}
