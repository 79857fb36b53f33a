package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/games/runner"
	"github.com/vovakirdan/lane-runner/internal/platform/tui"
	"github.com/vovakirdan/lane-runner/internal/registry"
	"github.com/vovakirdan/lane-runner/internal/spawn"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

var (
	flagSimMode    string
	flagSimSeconds float64
	flagSimSave    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless autopilot game and print a summary",
	Long: `Run a mode without a terminal. An autopilot steers toward the cheapest
lane (away from obstacles, toward coins). The run ends on a crash, on a stop
or when the time limit is reached. A fixed --seed gives identical output.

Examples:
  runner simulate
  runner simulate --mode runner_zen --seconds 300 --seed 7
  runner simulate --difficulty hard --log-level debug
  runner simulate --seed 42 --save`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimMode, "mode", runner.ModeClassic, "Mode to simulate")
	simulateCmd.Flags().Float64Var(&flagSimSeconds, "seconds", 120, "Game-clock time limit in seconds")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Store the finished run in the runs database")
	addGameFlags(simulateCmd)
}

// SimulationOptions configures one headless run.
type SimulationOptions struct {
	Mode       string
	Seconds    float64
	TickRate   int
	Seed       int64
	ConfigPath string
	Preset     string
	Logger     *log.Logger
}

// SimulationResult summarizes a headless run.
type SimulationResult struct {
	Mode      string
	Seed      int64
	Ticks     int
	State     core.GameState
	Obstacles int
	Coins     int
	Ended     string // "crash", "stopped" or "time"
}

// simulate plays a mode with the autopilot until it ends or the time runs out.
func simulate(opts SimulationOptions) (SimulationResult, error) {
	g, err := registry.Create(opts.Mode, registry.Options{
		ConfigPath: opts.ConfigPath,
		Preset:     opts.Preset,
		Logger:     opts.Logger,
	})
	if err != nil {
		return SimulationResult{}, err
	}
	game, ok := g.(*runner.Game)
	if !ok {
		return SimulationResult{}, fmt.Errorf("mode %q has no autopilot", opts.Mode)
	}

	rt := core.DefaultConfig()
	rt.TickRate = opts.TickRate
	rt.Seed = opts.Seed
	game.Reset(rt)

	res := SimulationResult{Mode: opts.Mode, Seed: opts.Seed, Ended: "time"}
	limit := int(opts.Seconds * float64(max(rt.TickRate, 1)))
	for res.Ticks < limit {
		res.Ticks++
		if game.Step(runner.Autopilot(game)).State.GameOver {
			res.Ended = "stopped"
			if game.Crashed() {
				res.Ended = "crash"
			}
			break
		}
	}

	res.State = game.State()
	res.Obstacles = game.World().Spawned(spawn.FamilyObstacle)
	res.Coins = game.World().Spawned(spawn.FamilyCoin)
	return res, nil
}

func printSimulation(w io.Writer, r SimulationResult) {
	fmt.Fprintf(w, "Mode:      %s\n", r.Mode)
	fmt.Fprintf(w, "Seed:      %d\n", r.Seed)
	fmt.Fprintf(w, "Ended:     %s after %.1fs (%d ticks)\n", r.Ended, r.State.Elapsed, r.Ticks)
	fmt.Fprintf(w, "Score:     %d\n", r.State.Score)
	fmt.Fprintf(w, "Coins:     %d\n", r.State.Coins)
	fmt.Fprintf(w, "Distance:  %.1f\n", r.State.Distance)
	fmt.Fprintf(w, "Phase:     %d\n", r.State.Phase)
	fmt.Fprintf(w, "Speed:     %.1f\n", r.State.Speed)
	fmt.Fprintf(w, "Spawned:   %d obstacles, %d coins\n", r.Obstacles, r.Coins)
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	res, err := simulate(SimulationOptions{
		Mode:       flagSimMode,
		Seconds:    flagSimSeconds,
		TickRate:   flagFPS,
		Seed:       seed,
		ConfigPath: flagConfig,
		Preset:     flagDifficulty,
		Logger:     logger.WithPrefix("sim"),
	})
	if err != nil {
		return err
	}
	printSimulation(cmd.OutOrStdout(), res)

	if !flagSimSave {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open runs database: %w", err)
	}
	defer store.Close()

	run, err := store.SaveRun(tui.RunRecord(res.Mode, res.Seed, res.State))
	if err != nil {
		return err
	}
	logger.Info("run saved", "run", run.RunID, "score", run.Score)
	return nil
}
