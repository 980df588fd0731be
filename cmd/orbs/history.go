package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/orbs/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history [level]",
	Short: "Show stored solutions and attempts",
	Long: `Display solver results and play attempts stored in the database.
Without a level the most recent entries across all levels are shown.

Examples:
  orbs history
  orbs history room-1`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 10, "Number of entries per section")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(cfg.Paths.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Printf("Database: %s\n", cfg.Paths.DB)
	fmt.Printf("  %d solved boards, %d attempts (%d solved)\n\n", stats.Solutions, stats.Attempts, stats.SolvedAttempts)

	var sols []storage.Solution
	if levelID != "" {
		sols, err = store.LevelSolutions(levelID)
	} else {
		sols, err = store.RecentSolutions(flagHistoryLimit)
	}
	if err != nil {
		return err
	}
	printSolutions(sols)

	if levelID != "" {
		best, found, err := store.BestAttempt(levelID)
		if err != nil {
			return err
		}
		if found {
			fmt.Printf("Best attempt: %d moves by %s on %s\n\n", best.Moves, best.Player, best.CreatedAt.Format("2006-01-02"))
		}
	}

	attempts, err := store.Attempts(levelID, flagHistoryLimit)
	if err != nil {
		return err
	}
	printAttempts(attempts)
	return nil
}

func printSolutions(sols []storage.Solution) {
	fmt.Println("Solutions")
	if len(sols) == 0 {
		fmt.Println("  No solutions stored yet.")
		fmt.Println()
		return
	}
	fmt.Printf("  %-12s  %-16s  %5s  %9s  %s\n", "Level", "Board", "Moves", "Expanded", "Date")
	fmt.Printf("  %-12s  %-16s  %5s  %9s  %s\n", "-----", "-----", "-----", "--------", "----")
	for _, s := range sols {
		level := s.LevelID
		if level == "" {
			level = "-"
		}
		moves := fmt.Sprintf("%d", len(s.Moves))
		if !s.Solvable {
			moves = "none"
		}
		fmt.Printf("  %-12s  %016x  %5s  %9d  %s\n", level, s.BoardHash, moves, s.Expanded, s.CreatedAt.Format("2006-01-02"))
	}
	fmt.Println()
}

func printAttempts(attempts []storage.Attempt) {
	fmt.Println("Attempts")
	if len(attempts) == 0 {
		fmt.Println("  No attempts yet. Run 'orbs play' to play!")
		return
	}
	fmt.Printf("  %-12s  %-10s  %5s  %5s  %-6s  %s\n", "Level", "Player", "Moves", "Hints", "Result", "Date")
	fmt.Printf("  %-12s  %-10s  %5s  %5s  %-6s  %s\n", "-----", "------", "-----", "-----", "------", "----")
	for _, a := range attempts {
		result := "gave up"
		if a.Solved {
			result = "solved"
		}
		fmt.Printf("  %-12s  %-10s  %5d  %5d  %-6s  %s\n", a.LevelID, a.Player, a.Moves, a.Hints, result, a.CreatedAt.Format("2006-01-02"))
	}
}
