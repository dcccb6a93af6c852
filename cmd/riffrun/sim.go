package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/riffrun/internal/core"
	"github.com/vovakirdan/riffrun/internal/games/riff"
	"github.com/vovakirdan/riffrun/internal/metrics"
)

var (
	flagSimTicks   int
	flagSimWidth   float64
	flagSimHeight  float64
	flagSimDash    float64
	flagSimRecord  bool
	flagSimMetrics bool
)

var simCmd = &cobra.Command{
	Use:   "sim [game]",
	Short: "Run a headless autopilot session",
	Long: `Run a session without a terminal. The autopilot aims at the nearest
note and dashes when a zombie gets close. Time advances 1/fps per tick.

Examples:
  riffrun sim
  riffrun sim --seed 42 --ticks 7200 --log-level debug
  riffrun sim riff_endless --difficulty hard --record
  riffrun sim --metrics`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	addTuningFlags(simCmd)
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 60*60*5, "Maximum number of ticks to simulate")
	simCmd.Flags().Float64Var(&flagSimWidth, "width", 800, "Arena width in units")
	simCmd.Flags().Float64Var(&flagSimHeight, "height", 600, "Arena height in units")
	simCmd.Flags().Float64Var(&flagSimDash, "dash-range", 120, "Dash when a zombie is closer than this")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save the finished session to the database")
	simCmd.Flags().BoolVar(&flagSimMetrics, "metrics", false, "Print session metrics in Prometheus text format")
}

// simResult is the outcome of a headless run.
type simResult struct {
	GameID  string
	Outcome riff.Outcome
	Ticks   int
	Stats   core.SessionStats
}

// simulate runs one autopilot session. rec may be nil.
func simulate(gameID string, w *riff.World, fps, maxTicks int, dashRange float64, rec *metrics.Recorder) simResult {
	if fps <= 0 {
		fps = 60
	}
	rec.SessionStarted(gameID)

	for tick := 1; tick <= maxTicks && w.Outcome() == riff.Playing; tick++ {
		in := riff.Autopilot(w, dashRange)
		in.Elapsed = float64(tick) / float64(fps)
		ev := w.Tick(in)
		rec.Tick(gameID, ev.Collected)

		if tick%fps == 0 {
			hud := w.HUD()
			logger.Debug("progress",
				"second", tick/fps,
				"notes", hud.Notes,
				"score", hud.Score,
				"combo", hud.Combo,
				"zombies", len(w.Zombies),
				"level", hud.Level,
			)
		}
	}

	res := simResult{GameID: gameID, Outcome: w.Outcome(), Ticks: w.Ticks(), Stats: w.Stats()}
	if res.Outcome != riff.Playing {
		rec.SessionFinished(gameID, res.Outcome.String())
	}
	return res
}

func runSim(cmd *cobra.Command, args []string) error {
	gameID, err := gameArg(args)
	if err != nil {
		return err
	}

	cfg, err := loadRiffConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}

	rec := metrics.NewRecorder()
	world := riff.NewWorld(cfg, seed, flagSimWidth, flagSimHeight, gameID == riff.IDEndless)
	res := simulate(gameID, world, flagFPS, flagSimTicks, flagSimDash, rec)

	logger.Info("simulation finished",
		"game", res.GameID,
		"seed", seed,
		"outcome", res.Outcome,
		"ticks", res.Ticks,
		"notes", res.Stats.Notes,
		"score", res.Stats.Score,
		"seconds", res.Stats.Seconds,
		"max_combo", res.Stats.MaxCombo,
	)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %s after %d ticks\n", res.GameID, res.Outcome, res.Ticks)
	fmt.Fprintf(out, "  notes %d  score %d  time %ds  max combo x%.1f\n",
		res.Stats.Notes, res.Stats.Score, res.Stats.Seconds, res.Stats.MaxCombo)

	if flagSimRecord {
		recordSim(res)
	}

	if flagSimMetrics {
		fmt.Fprintln(out)
		if err := rec.WriteText(out); err != nil {
			return err
		}
	}
	return nil
}

// recordSim saves a finished run. Runs cut off by --ticks are not recorded.
func recordSim(res simResult) {
	if res.Outcome == riff.Playing {
		logger.Warn("session still running at the tick limit, not recorded")
		return
	}
	store := openStore()
	if store == nil {
		return
	}
	defer store.Close()

	id, err := store.SaveSession(res.GameID, res.Outcome.String(), res.Stats)
	if err != nil {
		logger.Warn("could not save session", "error", err)
		return
	}
	logger.Info("session recorded", "id", id)
}
