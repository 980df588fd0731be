package orbs

import (
	"fmt"

	platformcore "github.com/vovakirdan/orbs/internal/core"
	"github.com/vovakirdan/orbs/internal/orbs/core"
)

const hudHeight = 2

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	boardW := g.cols*g.opts.CellWidth + 2
	boardH := g.rows + 2
	area := platformcore.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight-1)
	if boardW > area.W || boardH > area.H {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("need %dx%d", boardW, boardH+hudHeight+1))
		return
	}

	box := platformcore.NewRect(0, 0, boardW, boardH).CenterIn(area)
	dst.DrawBox(box, platformcore.ColorDim)
	g.renderBoard(dst, box.X+1, box.Y+1)

	if g.message != "" {
		dst.DrawTextCentered(dst.Height()-1, g.message, g.messageColor())
	}

	if g.solved {
		g.renderOverlay(dst, fmt.Sprintf("Solved in %d moves!", len(g.history)), "R to replay level, Esc for levels")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	dst.DrawTextColor(1, 0, fmt.Sprintf("%s (%s)", g.level.Name, g.level.ID), platformcore.ColorTitle)

	status := fmt.Sprintf("Moves: %d", len(g.history))
	if g.level.Par > 0 {
		status += fmt.Sprintf("  Par: %d", g.level.Par)
	}
	status += fmt.Sprintf("  Orbs: %d", g.board.CountOf(core.Orb))
	switch {
	case g.opts.Hints < 0:
		status += fmt.Sprintf("  Hints: %d", g.hintsUsed)
	case g.opts.Hints > 0:
		status += fmt.Sprintf("  Hints: %d/%d", g.hintsUsed, g.opts.Hints)
	}
	dst.DrawText(1, 1, status)
}

// renderBoard draws every cell of the viewport with its top-left at (x0, y0).
func (g *Game) renderBoard(dst *platformcore.Screen, x0, y0 int) {
	hintEnd, hasHint := core.Coord{}, !g.hint.IsZero()
	if hasHint {
		hintEnd = g.hint.End()
	}

	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			at := core.C(g.origin.X+col, g.origin.Y+row)
			cell := platformcore.Cell{Rune: g.opts.Empty, Color: platformcore.ColorDim}

			if obj, ok := g.board.Object(at); ok {
				cell = platformcore.Cell{Rune: g.opts.Glyphs[obj], Color: objectColor(obj)}
				if obj == core.Orb && g.hasSel && at == g.selected {
					cell.Color = platformcore.ColorCursor
				}
			}
			if hasHint && at == hintEnd && cell.Color != platformcore.ColorGoal {
				cell = platformcore.Cell{Rune: '+', Color: platformcore.ColorCursor}
			}

			dst.SetCell(x0+col*g.opts.CellWidth, y0+row, cell)
		}
	}
}

func objectColor(o core.Object) platformcore.Color {
	switch o {
	case core.Orb:
		return platformcore.ColorOrb
	case core.Goal:
		return platformcore.ColorGoal
	case core.Block:
		return platformcore.ColorBlock
	case core.BreakableBlock:
		return platformcore.ColorBreakable
	default:
		return platformcore.ColorDefault
	}
}

func (g *Game) messageColor() platformcore.Color {
	switch {
	case g.solved:
		return platformcore.ColorSuccess
	case g.stuck:
		return platformcore.ColorWarning
	default:
		return platformcore.ColorDefault
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := platformcore.NewRect(0, 0, w, 5).CenterIn(dst.Bounds())

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, platformcore.ColorTitle)
	dst.DrawTextCentered(box.Y+1, line1, platformcore.ColorSuccess)
	dst.DrawTextCentered(box.Y+3, line2, platformcore.ColorDefault)
}
