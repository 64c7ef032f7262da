package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-slicer/internal/config"
	"github.com/vovakirdan/fruit-slicer/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title screen",
	Long: `Start in interactive menu mode.

Pick a difficulty with the arrow keys or j/k and press Enter to play.
After a run you return to the title screen.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q/Esc        - Quit

Examples:
  slicer menu
  slicer menu --difficulty hard
  slicer menu --db ./runs.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	base, err := config.Load(flagConfig)
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

	rc := runtimeConfig()

	// Menu loop
	for {
		best := 0
		if store != nil {
			if hs, hsErr := store.HighScore(""); hsErr == nil {
				best = hs
			}
		}

		result, err := tui.RunMenu(rc, preset, best)
		if err != nil {
			return err
		}
		rc = result.Config
		preset = result.Preset

		switch result.Choice {
		case tui.MenuChoiceScores:
			var runs tui.RunLister
			if store != nil {
				runs = store
			}
			back, sbErr := tui.RunScoreboard(runs, rc.ScreenW, rc.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if !back {
				return nil
			}

		case tui.MenuChoicePlay:
			// Presets only scale numbers, so a copy of base is enough
			cfg := base
			config.ApplyPreset(&cfg, preset)
			log.Debug("menu selection", "difficulty", preset)
			if err := playRun(cfg, rc, store, logger); err != nil {
				return err
			}

		default:
			return nil
		}
	}
}
