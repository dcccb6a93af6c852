// riffrun is a terminal arcade: steer through an arena, collect notes and
// keep away from the zombies.
//
// Usage:
//
//	riffrun list              - List available games
//	riffrun play [game]       - Play a session (default: riff)
//	riffrun sim [game]        - Run a headless autopilot session
//	riffrun scores [game]     - Show recorded sessions
//	riffrun serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.riffrun/scores.db)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/riffrun/internal/config"
	"github.com/vovakirdan/riffrun/internal/games/riff"
	"github.com/vovakirdan/riffrun/internal/registry"
	"github.com/vovakirdan/riffrun/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "riffrun",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "riffrun",
	Short: "Riff Run - collect notes, dodge zombies, in your terminal",
	Long: `Riff Run is a terminal arcade game. Your runner steers toward the
mouse pointer, flees nearby zombies and picks up notes on its own; you aim,
dash and use power-ups. Collect 30 notes to win.

Available commands:
  list     - Show all available games
  play     - Play a session
  sim      - Run a headless autopilot session
  scores   - View recorded sessions
  serve    - Start SSH server for remote play

Examples:
  riffrun play
  riffrun play riff_endless --difficulty hard
  riffrun sim --seed 42 --ticks 7200
  riffrun serve --ssh :2222 --metrics :2112`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.riffrun/scores.db", "Path to sessions database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// gameArg returns the game ID from args, defaulting to the campaign.
func gameArg(args []string) (string, error) {
	gameID := riff.IDCampaign
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return "", fmt.Errorf("unknown game %q, run 'riffrun list' to see available games", gameID)
	}
	return gameID, nil
}

// loadRiffConfig resolves the tuning file and applies the difficulty preset.
func loadRiffConfig(path, difficulty string) (config.RiffConfig, error) {
	cfg, err := config.LoadRiff(path)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyRiffPreset(&cfg, preset)
	return cfg, nil
}

// openStore opens the sessions database. Failure is logged and play
// continues without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open sessions database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
