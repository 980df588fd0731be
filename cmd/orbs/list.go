package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows the embedded levels and those found in the --levels directory.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	lvls, err := loadLevels()
	if err != nil {
		return err
	}
	if len(lvls) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, lvl := range lvls {
		maxIDLen = max(maxIDLen, len(lvl.ID))
		maxNameLen = max(maxNameLen, len(lvl.Name))
	}

	fmt.Printf("  %-*s  %-*s  %4s  %3s\n", maxIDLen, "ID", maxNameLen, "Name", "Orbs", "Par")
	fmt.Printf("  %-*s  %-*s  %4s  %3s\n", maxIDLen, "--", maxNameLen, "----", "----", "---")
	for _, lvl := range lvls {
		par := "-"
		if lvl.Par > 0 {
			par = strconv.Itoa(lvl.Par)
		}
		fmt.Printf("  %-*s  %-*s  %4d  %3s\n", maxIDLen, lvl.ID, maxNameLen, lvl.Name, lvl.Orbs(), par)
	}

	fmt.Println()
	fmt.Println("Run 'orbs play <id>' to play a level or 'orbs solve <id>' to solve it.")
	return nil
}
