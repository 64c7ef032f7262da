package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-slicer/internal/config"
	"github.com/vovakirdan/fruit-slicer/internal/core"
	"github.com/vovakirdan/fruit-slicer/internal/game"
	"github.com/vovakirdan/fruit-slicer/internal/platform/tui"
	"github.com/vovakirdan/fruit-slicer/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run at level 1.

Controls:
  Mouse        - Steer the ship
  Left/Right   - Nudge the ship (also A/D)
  P/Esc        - Pause
  R            - Restart (while paused or after the run ends)
  Tab          - High scores
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower fruit and fewer spawns
  normal - The standard campaign
  hard   - Faster fruit and more spawns
  fixed  - No progression, every level plays like level 1

Examples:
  slicer play
  slicer play --difficulty easy
  slicer play --seed 42 --fps 30
  slicer play --config ./my-slicer.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, _, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return playRun(cfg, runtimeConfig(), store, logger)
}

// playRun runs one game program until the player quits.
func playRun(cfg config.SlicerConfig, rc core.RuntimeConfig, store *storage.Store, logger *log.Logger) error {
	opts := tui.Options{
		Logger:        logger,
		ScreenshotDir: tui.DefaultScreenshotDir(),
	}
	// A nil *Store must not become a non-nil interface
	if store != nil {
		opts.Store = store
	}

	g := game.New(cfg)
	logger.Debug("starting run", "player", rc.Player, "seed", rc.Seed, "fps", rc.TickRate)
	if err := tui.Run(g, rc, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	snap := g.Snapshot()
	logger.Debug("run closed",
		"level", snap.Level,
		"score", snap.Score,
		"phase", snap.Phase,
		"reason", snap.Reason,
		"ticks", snap.Tick,
	)
	return nil
}
