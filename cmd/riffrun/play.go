package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/riffrun/internal/core"
	"github.com/vovakirdan/riffrun/internal/platform/tui"
	"github.com/vovakirdan/riffrun/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a session",
	Long: `Start a session of the specified game (riff by default).

Controls:
  Mouse          - Aim: the runner steers toward the pointer
  Arrows/WASD    - Nudge the pointer
  Space/Click    - Dash toward the pointer
  P              - Pause
  R              - Restart (after the session ends)
  Ctrl+S         - Save a screenshot
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Slower hazard ramp, one starting zombie
  normal - Default ramp
  hard   - Faster ramp, shorter spawn floor, three starting zombies
  fixed  - No progression

Examples:
  riffrun play
  riffrun play riff_endless
  riffrun play --difficulty hard
  riffrun play --config ./my-riff.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addTuningFlags(playCmd)
}

// addTuningFlags registers --config and --difficulty on cmd.
func addTuningFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom riff config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := gameArg(args)
	if err != nil {
		return err
	}

	riffCfg, err := loadRiffConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	game, err := registry.CreateConfigured(gameID, riffCfg)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	// The alternate screen owns the terminal, so session logs go to a file
	playLogger, closeLog := fileLogger()
	defer closeLog()

	runErr := tui.Run(game, cfg, tui.Options{Store: store, Logger: playLogger})
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// fileLogger returns a logger writing to ~/.riffrun/riffrun.log, or one that
// discards everything when the file cannot be opened.
func fileLogger() (*log.Logger, func()) {
	opts := log.Options{ReportTimestamp: true, Prefix: "riffrun", Level: logger.GetLevel()}

	home, err := os.UserHomeDir()
	if err != nil {
		return log.NewWithOptions(io.Discard, opts), func() {}
	}
	dir := filepath.Join(home, ".riffrun")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.NewWithOptions(io.Discard, opts), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "riffrun.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log.NewWithOptions(io.Discard, opts), func() {}
	}
	return log.NewWithOptions(f, opts), func() { f.Close() }
}
