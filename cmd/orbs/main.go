// orbs solves and plays sliding orb puzzles in the terminal.
//
// Usage:
//
//	orbs list                    - List available levels
//	orbs show <level>            - Print a level
//	orbs solve <level>           - Find a minimal solution
//	orbs verify <level> <file>   - Check a move list against a level
//	orbs play [level]            - Play a level (picker without argument)
//	orbs history [level]         - Show stored solutions and attempts
//	orbs serve                   - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.orbs/configs/orbs.yaml)
//	--db <path>         - Database path (default: ~/.orbs/orbs.db)
//	--levels <dir>      - Extra level directory
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/orbs/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLevels   string
	flagLogLevel string

	// Set up by the root command before any subcommand runs
	cfg    config.OrbsConfig
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "orbs",
	Short: "Orbs - slide every orb into a goal",
	Long: `Orbs is a sliding puzzle: an orb travels in a straight line until it
hits a block, another orb or a goal. Breakable blocks shatter on impact.
The puzzle is solved when every orb has reached a goal.

Available commands:
  list     - Show all available levels
  show     - Print a level as ASCII or YAML
  solve    - Find a solution with the fewest moves
  verify   - Check a move list against a level
  play     - Play interactively
  history  - View stored solutions and attempts
  serve    - Start SSH server for remote play

Examples:
  orbs list
  orbs solve room-1 --steps
  orbs play basics-2
  orbs serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Extra level directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup creates the logger and loads the configuration.
func setup(cmd *cobra.Command, args []string) error {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "orbs",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDBPath != "" {
		cfg.Paths.DB = flagDBPath
	}
	if flagLevels != "" {
		cfg.Paths.Levels = flagLevels
	}
	logger.Debug("config loaded", "db", cfg.Paths.DB, "levels", cfg.Paths.Levels)
	return nil
}
