// Package tui provides the Bubble Tea integration for the orb puzzle.
// It handles the terminal UI loop, input mapping, level picking and the
// SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/orbs/internal/orbs"
)

// TickMsg is sent to trigger a game tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// solveDoneMsg carries a finished hint or replay search back to the model.
type solveDoneMsg orbs.SolveResult

// solveCmd runs a queued search outside the update loop.
func solveCmd(req orbs.SolveRequest) tea.Cmd {
	return func() tea.Msg {
		return solveDoneMsg(req.Run())
	}
}
