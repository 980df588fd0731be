package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/orbs/internal/config"
	"github.com/vovakirdan/orbs/internal/orbs"
	"github.com/vovakirdan/orbs/internal/platform/tui"
)

var (
	flagAssist string
	flagMono   bool
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Play a level interactively. Without an argument a level picker is shown.

Controls:
  Arrows/WASD  - Slide the selected orb
  Tab/S-Tab    - Select next/previous orb
  U            - Undo
  R            - Restart
  H            - Hint (first move of a shortest solution)
  Space        - Auto-solve from the current position
  Esc          - Back to levels
  Q/Ctrl+C     - Quit

Assist options:
  off      - No hints, no undo
  normal   - 3 hints per attempt, undo enabled
  relaxed  - Unlimited hints, undo enabled

Examples:
  orbs play
  orbs play room-2 --assist off
  orbs play ./my-level.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagAssist, "assist", "", "Assist preset: off, normal, relaxed")
	playCmd.Flags().BoolVar(&flagMono, "mono", false, "Disable colors")
	playCmd.Flags().StringVar(&flagPlayer, "player", "local", "Name recorded with attempts")
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagAssist != "" {
		preset, ok := config.ParseAssistPreset(flagAssist)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown assist preset %q\n", flagAssist)
			os.Exit(1)
		}
		config.ApplyAssistPreset(&cfg, preset)
	}

	store := openStore()
	env := &tui.Env{
		Store:  store,
		Solver: orbs.NewService(store, logger, cfg.Solver.Cache),
		Config: cfg,
		Theme:  tui.ThemeFromConfig(cfg.Render.Colors),
		Player: flagPlayer,
		Logger: logger,
	}
	if flagMono {
		env.Theme = tui.MonochromeTheme()
	}

	var runErr error
	if len(args) == 0 {
		lvls, err := loadLevels()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
			os.Exit(1)
		}
		runErr = tui.RunApp(lvls, env, runtimeConfig())
	} else {
		lvl, err := resolveLevel(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'orbs list' to see available levels.")
			os.Exit(1)
		}
		runErr = tui.Run(lvl, env, runtimeConfig())
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
