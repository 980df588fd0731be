package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/orbs/internal/orbs/core"
	"github.com/vovakirdan/orbs/internal/orbs/levels/formats"
)

var flagShowFormat string

var showCmd = &cobra.Command{
	Use:   "show <level>",
	Short: "Print a level",
	Long: `Print a level by ID or file path.

Formats:
  ascii    - framed board (default)
  compact  - board without frame, '.' for empty cells
  yaml     - level file with an explicit object list

Examples:
  orbs show room-1
  orbs show ./my-level.yaml --format yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVarP(&flagShowFormat, "format", "f", "ascii", "Output format: ascii, compact, yaml")
}

func runShow(cmd *cobra.Command, args []string) error {
	lvl, err := resolveLevel(args[0])
	if err != nil {
		return err
	}

	switch flagShowFormat {
	case "ascii":
		b := lvl.ToBoard()
		fmt.Printf("%s (%s): %d orbs, %d goals\n", lvl.Name, lvl.ID, b.CountOf(core.Orb), b.CountOf(core.Goal))
		fmt.Print(core.RenderASCII(b))
	case "compact":
		fmt.Print(core.RenderCompact(lvl.ToBoard()))
	case "yaml":
		data, err := formats.MarshalYAML(formats.Level{
			ID:       lvl.ID,
			Name:     lvl.Name,
			Entries:  lvl.Entries,
			Par:      lvl.Par,
			Metadata: lvl.Metadata,
		})
		if err != nil {
			return err
		}
		os.Stdout.Write(data)
	default:
		return fmt.Errorf("unknown format %q", flagShowFormat)
	}
	return nil
}
