package main

import (
	"flag"
	"log"
	"net/rpc"
	"time"

	"uk.ac.bris.cs/mandelbrot/fractal"
)

// dial keeps trying to reach the coordinator until retry has elapsed.
func dial(addr string, retry time.Duration) (*rpc.Client, error) {
	deadline := time.Now().Add(retry)
	for {
		client, err := rpc.Dial("tcp", addr)
		if err == nil || time.Now().After(deadline) {
			return client, err
		}
		log.Printf("Coordinator %s not reachable, retrying", addr)
		time.Sleep(time.Second)
	}
}

func main() {
	cfg := fractal.DefaultConfig()
	configPath := flag.String("config", "", "YAML or TOML config file")
	brokerAddr := flag.String("broker", cfg.Broker, "Address of the coordinator")
	retry := flag.Duration("retry", 10*time.Second, "How long to keep trying to reach the coordinator")
	flag.Parse()

	if *configPath != "" {
		if err := fractal.LoadConfig(*configPath, &cfg); err != nil {
			log.Fatalf("Cannot load config: %v", err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "broker" {
			cfg.Broker = *brokerAddr
		}
	})

	client, err := dial(cfg.Broker, *retry)
	if err != nil {
		log.Fatalf("Cannot reach coordinator at %s: %v", cfg.Broker, err)
	}
	defer client.Close()

	worker := fractal.NewWorker(client)
	log.Printf("Worker %s connected to %s", worker.ID, cfg.Broker)
	if err := worker.Run(); err != nil {
		log.Fatal(err)
	}
	log.Printf("Worker %s done after %d tasks", worker.ID, worker.Computed())
}
