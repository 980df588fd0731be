package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/orbs/internal/orbs"
	"github.com/vovakirdan/orbs/internal/orbs/core"
)

var (
	flagSteps   bool
	flagNoCache bool
	flagStats   bool
	flagJSON    bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <level>",
	Short: "Find a solution with the fewest moves",
	Long: `Run a breadth-first search over every reachable board and print the
shortest sequence of moves that removes all orbs. Results are cached in the
database unless --no-cache is given. Exits with status 1 when the level has
no solution.

Examples:
  orbs solve room-1
  orbs solve room-4 --steps --stats
  orbs solve ./my-level.yaml --json > moves.json`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&flagSteps, "steps", false, "Print the board after each move")
	solveCmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Always run the search, do not read or write the cache")
	solveCmd.Flags().BoolVar(&flagStats, "stats", false, "Print search statistics")
	solveCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the moves as JSON")
}

func runSolve(cmd *cobra.Command, args []string) error {
	lvl, err := resolveLevel(args[0])
	if err != nil {
		return err
	}

	useCache := cfg.Solver.Cache && !flagNoCache
	store := openStoreIf(useCache)
	if store != nil {
		defer store.Close()
	}

	b := lvl.ToBoard()
	svc := orbs.NewService(store, logger, useCache)
	res, err := svc.Solve(lvl.ID, b)
	if errors.Is(err, core.ErrNoSolution) {
		fmt.Fprintf(os.Stderr, "%s: no solution\n", lvl.ID)
		printStats(res)
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res.Moves)
	}

	fmt.Printf("%s (%s): %d moves", lvl.Name, lvl.ID, len(res.Moves))
	if lvl.Par > 0 {
		fmt.Printf(" (par %d)", lvl.Par)
	}
	if res.Cached {
		fmt.Print(" [cached]")
	}
	fmt.Println()

	if flagSteps {
		fmt.Print(core.RenderASCII(b))
	}
	for i, m := range res.Moves {
		fmt.Printf("%3d. %-6s %s\n", i+1, m.Dir(), m)
		if flagSteps {
			if err := b.ApplyMove(m); err != nil {
				return fmt.Errorf("move %d: %w", i+1, err)
			}
			fmt.Print(core.RenderASCII(b))
		}
	}
	printStats(res)
	return nil
}

func printStats(res orbs.Result) {
	if !flagStats && !cfg.Solver.ShowStats {
		return
	}
	if res.Cached {
		fmt.Fprintf(os.Stderr, "served from cache in %s\n", res.Elapsed)
		return
	}
	fmt.Fprintf(os.Stderr, "expanded %d, enqueued %d, max frontier %d, depth %d, %s\n",
		res.Stats.Expanded, res.Stats.Enqueued, res.Stats.MaxFrontier, res.Stats.Depth, res.Elapsed)
}
