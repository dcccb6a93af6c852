package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/riffrun/internal/platform/tui"
	"github.com/vovakirdan/riffrun/internal/registry"
	"github.com/vovakirdan/riffrun/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresBoard bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show recorded sessions for a game",
	Long: `Display the best session and the most recent sessions of a game.

Examples:
  riffrun scores
  riffrun scores riff_endless --limit 20
  riffrun scores --board       # interactive scoreboard
  riffrun scores riff --clear  # delete all records of riff`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of recent sessions to show")
	scoresCmd.Flags().BoolVar(&flagScoresBoard, "board", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all records of the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID, err := gameArg(args)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening sessions database: %w", err)
	}
	defer store.Close()

	if flagScoresBoard {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		_, err := tui.RunScoreboard(store, width, height)
		return err
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared all records of %s.\n", gameID)
		return nil
	}

	return printScores(cmd, store, gameID)
}

func printScores(cmd *cobra.Command, store *storage.Store, gameID string) error {
	out := cmd.OutOrStdout()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	sessions, err := store.RecentSessions(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Sessions - %s\n", game.Title())
	fmt.Fprintln(out)

	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'riffrun play %s' to record the first one!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-16s  %-6s  %-5s  %-8s  %-6s  %s\n", "Date", "Result", "Notes", "Score", "Time", "Combo")
	fmt.Fprintf(out, "  %-16s  %-6s  %-5s  %-8s  %-6s  %s\n", "----", "------", "-----", "-----", "----", "-----")

	for _, r := range sessions {
		fmt.Fprintf(out, "  %-16s  %-6s  %-5d  %-8d  %-6s  x%.1f\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Outcome,
			r.Stats.Notes,
			r.Stats.Score,
			fmt.Sprintf("%ds", r.Stats.Seconds),
			r.Stats.MaxCombo,
		)
	}

	fmt.Fprintln(out)
	best, err := store.BestSession(gameID)
	if err != nil {
		return err
	}
	if best != nil {
		fmt.Fprintf(out, "Best: %d (%d notes, %s)\n", best.Stats.Score, best.Stats.Notes, best.Outcome)
	}

	top, err := store.TopScores(gameID, 3)
	if err == nil && len(top) > 0 {
		fmt.Fprint(out, "Top 3:")
		for _, e := range top {
			fmt.Fprintf(out, " %d", e.Score)
		}
		fmt.Fprintln(out)
	}

	if high, err := store.HighScore(gameID); err == nil {
		fmt.Fprintf(out, "High score: %d\n", high)
	}
	return nil
}
