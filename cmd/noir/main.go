package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/tatianab/seattle-noir/internal/config"
	"github.com/tatianab/seattle-noir/internal/game"
	"github.com/tatianab/seattle-noir/internal/gameio"
	"github.com/tatianab/seattle-noir/internal/item"
	"github.com/tatianab/seattle-noir/internal/logging"
	"github.com/tatianab/seattle-noir/internal/puzzle"
	"github.com/tatianab/seattle-noir/internal/save"
	"github.com/tatianab/seattle-noir/internal/state"
	"github.com/tatianab/seattle-noir/internal/tui"
	"github.com/tatianab/seattle-noir/internal/world"
)

func main() {
	var (
		configPath = flag.String("config", "noir.yaml", "path to the config file")
		plain      = flag.Bool("plain", false, "run on plain stdin/stdout instead of the TUI")
		seed       = flag.Int64("seed", 0, "random seed for puzzle generation (0 = time-based)")
	)
	flag.Parse()

	if err := run(*configPath, *plain, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, plain bool, seed int64) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := logging.New(logFile, level)
	log.Info("starting Seattle Noir")

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	saves, err := save.NewManager(cfg.SaveDir, cfg.MaxAutoSaves, cfg.MaxSaveDirBytes, log)
	if err != nil {
		return err
	}

	st := state.New()
	w := world.New(log)
	inv := item.NewInventory(log)
	puzzles := puzzle.NewDirectory(
		puzzle.NewCipher(log),
		puzzle.NewRadio(rng, log),
		puzzle.NewMorse(log),
		puzzle.NewVehicle(rng, log),
		log,
	)

	newController := func(term gameio.Terminal) *game.Controller {
		return game.NewController(term, st, w, inv, puzzles, saves, cfg.AutoSaveInterval, log)
	}

	if plain {
		term := gameio.NewStdTerminal(os.Stdin, os.Stdout, cfg.TextDelay)
		return newController(term).Run()
	}

	return tui.Run(tui.Options{
		Engine: func(term gameio.Terminal) error {
			return newController(term).Run()
		},
		Status: func() tui.Status {
			return tui.Status{
				Location:  w.Current(),
				Inventory: inv.Items(),
			}
		},
	})
}
