// Command popshot opens the game in a window.
//
// Settings come from .env and POPSHOT_* variables; flags override them.
package main

import (
	"flag"
	"log"

	"github.com/phanxgames/popshot"
	"github.com/phanxgames/popshot/config"
)

func main() {
	log.SetPrefix("[popshot] ")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	flag.Float64Var(&cfg.Scale, "scale", cfg.Scale, "window size multiplier")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "enemy spawn seed (0 = random)")
	flag.BoolVar(&cfg.ShowFPS, "fps", cfg.ShowFPS, "show FPS/TPS overlay")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log frame stats to stderr")
	flag.BoolVar(&cfg.PopEffects, "pops", cfg.PopEffects, "draw pop bursts")
	flag.BoolVar(&cfg.Audio.Enabled, "audio", cfg.Audio.Enabled, "play sound cues")
	flag.StringVar(&cfg.SpritePath, "sprite", cfg.SpritePath, "ship sprite PNG (default: embedded)")
	flag.StringVar(&cfg.ScriptPath, "script", cfg.ScriptPath, "JSON test script to run")
	flag.StringVar(&cfg.ScreenshotDir, "screenshots", cfg.ScreenshotDir, "screenshot output directory")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if err := popshot.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
