// slicer is a terminal fruit shooter: steer the ship, auto-fire at the fruit
// falling from the sky and clear 50 levels against the clock.
//
// Usage:
//
//	slicer                   - Play (same as "slicer play")
//	slicer play              - Play a run
//	slicer menu              - Title screen with difficulty picker
//	slicer scores            - Show the high-score table
//	slicer serve             - Start SSH server for remote play
//	slicer config            - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.slicer/runs.db)
//	--config <path>       - Load gameplay settings from a YAML file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write debug logs to a file
//	--name <player>       - Name recorded with saved runs
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fruit-slicer/internal/config"
	"github.com/vovakirdan/fruit-slicer/internal/core"
	"github.com/vovakirdan/fruit-slicer/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagName       string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slicer",
	Short: "Fruit Slicer - shoot falling fruit in your terminal",
	Long: `Fruit Slicer is a terminal arcade shooter. Your ship slides along the
bottom of the screen and fires automatically; slice enough fruit before the
timer runs out to advance through 50 levels.

Available commands:
  play     - Play a run (default)
  menu     - Title screen with difficulty picker
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  slicer
  slicer play --difficulty hard
  slicer menu
  slicer scores --limit 20
  slicer serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slicer/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagName, "name", "", "Player name for saved runs (default: $USER)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging returns the logger handed to game sessions. Without --log-file
// sessions log nothing so the alt-screen stays clean; with it every logger,
// including the default one, writes to the file at debug level.
func setupLogging() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		Prefix:          "slicer",
	})
	log.SetDefault(logger)
	return logger, func() { f.Close() }, nil
}

// loadGameConfig loads the gameplay config and applies --difficulty.
func loadGameConfig() (config.SlicerConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.SlicerConfig{}, "", err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.SlicerConfig{}, "", err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, preset, nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Player = playerName()
	return cfg
}

// playerName resolves the name recorded with runs.
func playerName() string {
	if flagName != "" {
		return flagName
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

// openStore opens the run database. A failure is logged and play continues
// without history.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open run database, scores will not be saved", "error", err)
		return nil
	}
	return store
}
