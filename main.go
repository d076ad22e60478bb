package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"undervault/internal/engine"
	"undervault/internal/game"
)

func main() {
	seed := flag.Int64("seed", 0, "Dungeon seed (0 picks one from the clock)")
	flag.Parse()

	cfg := engine.DefaultConfig()
	if *seed != 0 {
		cfg.Seed = *seed
	} else {
		cfg.Seed = time.Now().UnixNano()
	}

	g, err := game.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	g.Run()
}
