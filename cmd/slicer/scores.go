package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fruit-slicer/internal/platform/tui"
	"github.com/vovakirdan/fruit-slicer/internal/storage"
)

var (
	flagLimit  int
	flagPlayer string
	flagPlain  bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best recorded runs.

On a terminal the scores open in an interactive table; when the output is
piped, or with --plain, a text listing and overall statistics are printed.

Examples:
  slicer scores
  slicer scores --limit 20 --plain
  slicer scores --player ana
  slicer scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only list runs of this player")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a text listing even on a terminal")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("All runs deleted.")
		return nil
	}

	interactive := !flagPlain && flagPlayer == "" && term.IsTerminal(int(os.Stdout.Fd()))
	if interactive {
		rc := runtimeConfig()
		_, err := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH)
		return err
	}

	var runs []storage.RunResult
	if flagPlayer != "" {
		runs, err = store.PlayerRuns(flagPlayer, flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		return err
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}

	printScores(os.Stdout, runs, stats)
	return nil
}

// printScores writes a plain-text high-score listing followed by totals.
func printScores(w io.Writer, runs []storage.RunResult, stats *storage.RunStats) {
	fmt.Fprintln(w, "High Scores - Fruit Slicer")
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'slicer play' to set the first high score!")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  Rank\tPlayer\tScore\tLevel\tResult\tTime\tWhen")
	fmt.Fprintln(tw, "  ----\t------\t-----\t-----\t------\t----\t----")
	for i, r := range runs {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			humanize.Ordinal(i+1),
			r.Player,
			humanize.Comma(int64(r.Score)),
			r.Level,
			resultLabel(r),
			r.Duration,
			humanize.Time(r.CreatedAt),
		)
	}
	tw.Flush()

	if stats == nil {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Runs: %s  Cleared: %s  Best: %s  Best level: %d\n",
		humanize.Comma(int64(stats.Runs)),
		humanize.Comma(int64(stats.Wins)),
		humanize.Comma(int64(stats.HighScore)),
		stats.BestLevel,
	)
	fmt.Fprintf(w, "Average score: %.1f  Fruit sliced: %s  Time played: %s\n",
		stats.AvgScore,
		humanize.Comma(int64(stats.TotalScore)),
		stats.PlayTime,
	)
	if !stats.LastPlayed.IsZero() {
		fmt.Fprintf(w, "Last played: %s\n", humanize.Time(stats.LastPlayed))
	}
}

func resultLabel(r storage.RunResult) string {
	switch {
	case r.Won():
		return "cleared"
	case r.Reason == "quit":
		return "quit"
	default:
		return "time up"
	}
}
