package main

import (
	"fmt"
	"os"

	"github.com/tatianab/baoyan-sim/internal/config"
	"github.com/tatianab/baoyan-sim/internal/content"
	"github.com/tatianab/baoyan-sim/internal/engine"
	"github.com/tatianab/baoyan-sim/internal/models"
	"github.com/tatianab/baoyan-sim/internal/tui"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	models.SaveDir = cfg.SaveDir

	lib, err := content.Load()
	if err != nil {
		fmt.Printf("Error loading content: %v\n", err)
		os.Exit(1)
	}

	eng := engine.New(lib, engine.NewRand(cfg.Seed))

	if err := tui.Run(eng, cfg.Debug); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
