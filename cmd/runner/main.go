// runner is an endless lane runner for the terminal.
//
// Usage:
//
//	runner list              - List available modes
//	runner play [mode]       - Play a mode (default: runner)
//	runner menu              - Start menu to pick modes interactively
//	runner serve             - Start SSH server for remote play
//	runner scores <mode>     - Show best runs for a mode
//	runner simulate          - Run a headless autopilot game and print a summary
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.lanerunner/runs.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write game logs to a file while the TUI is up
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/lane-runner/internal/games/runner"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	// Shared by play, menu, serve and simulate
	flagConfig     string
	flagDifficulty string

	logger  = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "runner"})
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Lane Runner - an endless runner in your terminal",
	Long: `Lane Runner is a terminal endless runner. Steer between lanes, collect
coins and dodge obstacles while the pace picks up every phase.

Available commands:
  list      - Show all available modes
  play      - Play a mode directly
  menu      - Interactive mode picker menu
  serve     - Start SSH server for remote play
  scores    - View run history
  simulate  - Headless autopilot run

Examples:
  runner list
  runner play
  runner play runner_zen --difficulty easy
  runner menu
  runner serve --ssh :2222
  runner simulate --seconds 120 --seed 42`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lanerunner/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write game logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// addGameFlags registers the flags every command that creates games shares.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file %s: %w", flagLogFile, err)
		}
		logFile = f
	}
	return nil
}

// gameLogger returns the logger handed to games running under the TUI.
// Without --log-file it discards, since stderr shares the terminal.
func gameLogger() *log.Logger {
	var w io.Writer = io.Discard
	if logFile != nil {
		w = logFile
	}
	l := log.NewWithOptions(w, log.Options{ReportTimestamp: true, Prefix: "runner"})
	l.SetLevel(logger.GetLevel())
	return l
}
