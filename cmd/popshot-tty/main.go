// Command popshot-tty plays the game in the terminal. Escape or Ctrl-C quits.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/phanxgames/popshot/config"
	"github.com/phanxgames/popshot/term"
)

func main() {
	log.SetPrefix("[popshot] ")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	tick := flag.Duration("tick", cfg.Tick, "frame interval")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "enemy spawn seed (0 = random)")
	flag.BoolVar(&cfg.Audio.Enabled, "audio", cfg.Audio.Enabled, "play sound cues")
	flag.Parse()
	cfg.Tick = *tick

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	if err := term.Run(ctx, cfg); err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
	log.Printf("played for %v", time.Since(start).Round(time.Second))
}
