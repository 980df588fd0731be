package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/orbs/internal/orbs/core"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <level> <moves.json>",
	Short: "Check a move list against a level",
	Long: `Replay a JSON move list (as printed by 'orbs solve --json') on a level
and report whether it solves it. Exits with status 1 when a move is rejected
or orbs remain.`,
	Args: cobra.ExactArgs(2),
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	lvl, err := resolveLevel(args[0])
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}
	var moves []core.Move
	if err := json.Unmarshal(data, &moves); err != nil {
		return fmt.Errorf("parsing %s: %w", args[1], err)
	}

	final, err := core.Replay(lvl.ToBoard(), moves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", lvl.ID, err)
		os.Exit(1)
	}
	if left := final.CountOf(core.Orb); left > 0 {
		fmt.Fprintf(os.Stderr, "%s: %d moves applied, %d orbs left\n", lvl.ID, len(moves), left)
		fmt.Fprint(os.Stderr, core.RenderASCII(final))
		os.Exit(1)
	}

	fmt.Printf("%s: solved in %d moves", lvl.ID, len(moves))
	if lvl.Par > 0 {
		fmt.Printf(" (par %d)", lvl.Par)
	}
	fmt.Println()
	return nil
}
