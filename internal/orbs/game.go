// Package orbs provides the interactive sliding orb puzzle: a tick-driven
// game over a core.Board that the terminal platform drives and draws.
package orbs

import (
	"errors"
	"fmt"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/orbs/internal/config"
	platformcore "github.com/vovakirdan/orbs/internal/core"
	"github.com/vovakirdan/orbs/internal/orbs/core"
	"github.com/vovakirdan/orbs/internal/orbs/levels"
)

// SolveFunc computes a minimal solution for a board.
type SolveFunc func(b *core.Board) ([]core.Move, error)

// Options configures a Game.
type Options struct {
	CellWidth      int
	Glyphs         core.Glyphs
	Empty          rune
	Hints          int // -1 = unlimited
	Undo           bool
	ReplayInterval time.Duration
	Solve          SolveFunc // defaults to core.FindSolution

	// Async hands hint and replay searches to the caller through
	// TakeSolveRequest instead of running them inside Step.
	Async bool
}

// SolvePurpose says what a queued search is for.
type SolvePurpose int

const (
	SolveForHint SolvePurpose = iota
	SolveForReplay
)

// SolveRequest is a search queued by an async game.
type SolveRequest struct {
	Purpose SolvePurpose
	Board   *core.Board // Private copy of the position

	solve SolveFunc
	seq   int
	gen   int
}

// Run performs the search. It does not touch the game, so it may run on
// any goroutine.
func (r SolveRequest) Run() SolveResult {
	moves, err := r.solve(r.Board)
	return SolveResult{Request: r, Moves: moves, Err: err}
}

// SolveResult is the outcome of SolveRequest.Run.
type SolveResult struct {
	Request SolveRequest
	Moves   []core.Move
	Err     error
}

// OptionsFromConfig builds game options from the loaded configuration.
func OptionsFromConfig(cfg config.OrbsConfig) Options {
	glyphs := core.DefaultGlyphs()
	for obj, s := range map[core.Object]string{
		core.Orb:            cfg.Render.Glyphs.Orb,
		core.Goal:           cfg.Render.Glyphs.Goal,
		core.Block:          cfg.Render.Glyphs.Block,
		core.BreakableBlock: cfg.Render.Glyphs.Breakable,
	} {
		if r, _ := utf8.DecodeRuneInString(s); s != "" && r != utf8.RuneError {
			glyphs[obj] = r
		}
	}
	empty := ' '
	if r, _ := utf8.DecodeRuneInString(cfg.Render.Glyphs.Empty); cfg.Render.Glyphs.Empty != "" && r != utf8.RuneError {
		empty = r
	}

	return Options{
		CellWidth:      cfg.Render.CellWidth,
		Glyphs:         glyphs,
		Empty:          empty,
		Hints:          cfg.Play.Assist.Hints,
		Undo:           cfg.Play.Assist.Undo,
		ReplayInterval: time.Duration(cfg.Play.ReplayIntervalMS) * time.Millisecond,
	}
}

// Game implements the orb puzzle for one level.
type Game struct {
	opts  Options
	level levels.Level

	board    *core.Board
	history  []core.Move
	selected core.Coord
	hasSel   bool

	// Viewport in board coordinates, fixed at Reset
	origin core.Coord
	cols   int
	rows   int

	hint      core.Move
	hintsUsed int
	message   string
	stuck     bool
	solved    bool

	// gen changes whenever the board does; results for older positions
	// are dropped
	gen      int
	solveSeq int
	solving  bool
	pending  *SolveRequest

	replay      []core.Move
	replayEvery int
	replayTick  int
	replayed    bool

	screenW  int
	screenH  int
	tickRate int
}

// New creates a game for the given level.
func New(lvl levels.Level, opts Options) *Game {
	if opts.CellWidth < 1 {
		opts.CellWidth = 1
	}
	if opts.Glyphs == nil {
		opts.Glyphs = core.DefaultGlyphs()
	}
	if opts.Empty == 0 {
		opts.Empty = ' '
	}
	if opts.Solve == nil {
		opts.Solve = core.FindSolution
	}
	if opts.ReplayInterval <= 0 {
		opts.ReplayInterval = 400 * time.Millisecond
	}
	g := &Game{opts: opts, level: lvl}
	g.Reset(platformcore.DefaultConfig())
	return g
}

// ID returns the level identifier.
func (g *Game) ID() string {
	return g.level.ID
}

// Title returns the level's display name.
func (g *Game) Title() string {
	return g.level.Name
}

// Level returns the level being played.
func (g *Game) Level() levels.Level {
	return g.level
}

// Reset restarts the level with the given screen configuration.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = max(cfg.TickRate, 1)
	g.replayEvery = max(1, int(g.opts.ReplayInterval*time.Duration(g.tickRate)/time.Second))

	g.board = g.level.ToBoard()
	g.history = nil
	g.hint = core.Move{}
	g.hintsUsed = 0
	g.message = ""
	g.stuck = false
	g.solved = g.board.CountOf(core.Orb) == 0
	g.replay = nil
	g.replayTick = 0
	g.replayed = false
	g.gen++
	g.solving = false
	g.pending = nil

	lo, hi, ok := g.board.Bounds()
	if !ok {
		lo, hi = core.C(0, 0), core.C(0, 0)
	}
	g.origin = core.C(min(lo.X, 0), min(lo.Y, 0))
	g.cols = hi.X - g.origin.X + 1
	g.rows = hi.Y - g.origin.Y + 1

	g.selectFirst()
}

// Resize updates the screen size without touching the puzzle state.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Board returns the current board. Callers must not modify it.
func (g *Game) Board() *core.Board {
	return g.board
}

// History returns the moves made so far.
func (g *Game) History() []core.Move {
	return slices.Clone(g.history)
}

// Selected returns the location of the selected orb.
func (g *Game) Selected() (core.Coord, bool) {
	return g.selected, g.hasSel
}

// Message returns the current status line.
func (g *Game) Message() string {
	return g.message
}

// Step applies the actions of one tick and advances auto-replay.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	wasSolved := g.solved

	for _, a := range in.Actions() {
		// Any key other than replay stops a running replay
		if g.replay != nil && a != platformcore.ActionReplay {
			g.replay = nil
			g.message = "replay stopped"
		}

		switch a {
		case platformcore.ActionUp:
			g.Slide(core.DirUp)
		case platformcore.ActionDown:
			g.Slide(core.DirDown)
		case platformcore.ActionLeft:
			g.Slide(core.DirLeft)
		case platformcore.ActionRight:
			g.Slide(core.DirRight)
		case platformcore.ActionNext:
			g.cycle(1)
		case platformcore.ActionPrev:
			g.cycle(-1)
		case platformcore.ActionUndo:
			g.Undo()
		case platformcore.ActionRestart:
			g.Restart()
			wasSolved = false
		case platformcore.ActionHint:
			if !g.opts.Async {
				g.Hint()
			} else if g.hintAllowed() {
				g.request(SolveForHint)
			}
		case platformcore.ActionReplay:
			if !g.opts.Async || g.replay != nil {
				g.ToggleReplay()
			} else if !g.solved {
				g.request(SolveForReplay)
			}
		}
	}

	if g.replay != nil {
		g.replayTick++
		if g.replayTick >= g.replayEvery {
			g.replayTick = 0
			g.advanceReplay()
		}
	}

	return platformcore.StepResult{
		State:    g.State(),
		Finished: g.solved && !wasSolved,
	}
}

// Slide moves the selected orb in direction d.
// Returns false when there is no orb selected or it cannot move that way.
func (g *Game) Slide(d core.Dir) bool {
	if g.solved || !g.hasSel {
		return false
	}
	m, ok := g.board.SlideMove(g.selected, d)
	if !ok {
		g.message = fmt.Sprintf("orb at %s cannot move %s", g.selected, d)
		return false
	}
	return g.apply(m)
}

func (g *Game) apply(m core.Move) bool {
	if err := g.board.ApplyMove(m); err != nil {
		g.message = err.Error()
		return false
	}
	g.history = append(g.history, m)
	g.gen++
	g.hint = core.Move{}
	g.stuck = false
	g.message = ""

	if m.EndIsGoal() {
		g.selectFirst()
	} else {
		g.selected, g.hasSel = m.End(), true
	}

	if g.board.CountOf(core.Orb) == 0 {
		g.solved = true
		g.replay = nil
		g.message = fmt.Sprintf("solved in %d moves", len(g.history))
	}
	return true
}

// Undo takes back the last move.
func (g *Game) Undo() bool {
	if !g.opts.Undo {
		g.message = "undo is disabled"
		return false
	}
	if len(g.history) == 0 {
		g.message = "nothing to undo"
		return false
	}
	m := g.history[len(g.history)-1]
	if err := g.board.UndoMove(m); err != nil {
		g.message = err.Error()
		return false
	}
	g.history = g.history[:len(g.history)-1]
	g.gen++
	g.selected, g.hasSel = m.Start(), true
	g.solved = false
	g.stuck = false
	g.hint = core.Move{}
	g.message = "undid " + m.String()
	return true
}

// Restart resets the level, keeping the screen configuration.
func (g *Game) Restart() {
	g.Reset(platformcore.RuntimeConfig{ScreenW: g.screenW, ScreenH: g.screenH, TickRate: g.tickRate})
	g.message = "level restarted"
}

// Hint computes the first move of a minimal solution from the current
// position and selects its orb.
func (g *Game) Hint() (core.Move, bool) {
	if !g.hintAllowed() {
		return core.Move{}, false
	}
	moves, err := g.opts.Solve(g.board)
	return g.showHint(moves, err)
}

func (g *Game) hintAllowed() bool {
	if g.solved {
		return false
	}
	if g.opts.Hints >= 0 && g.hintsUsed >= g.opts.Hints {
		g.message = "no hints left"
		return false
	}
	return true
}

func (g *Game) showHint(moves []core.Move, err error) (core.Move, bool) {
	if err != nil {
		if errors.Is(err, core.ErrNoSolution) {
			g.stuck = true
			g.message = "no solution from here, undo or restart"
		} else {
			g.message = err.Error()
		}
		return core.Move{}, false
	}
	if len(moves) == 0 {
		return core.Move{}, false
	}

	g.hintsUsed++
	g.hint = moves[0]
	g.selected, g.hasSel = g.hint.Start(), true
	g.message = fmt.Sprintf("hint: move %s %s (%d moves to go)", g.hint.Start(), g.hint.Dir(), len(moves))
	return g.hint, true
}

// ToggleReplay starts playing a minimal solution from the current position,
// or stops a running replay.
func (g *Game) ToggleReplay() {
	if g.replay != nil {
		g.replay = nil
		g.message = "replay stopped"
		return
	}
	if g.solved {
		return
	}
	moves, err := g.opts.Solve(g.board)
	g.startReplay(moves, err)
}

func (g *Game) startReplay(moves []core.Move, err error) {
	if err != nil {
		if errors.Is(err, core.ErrNoSolution) {
			g.stuck = true
			g.message = "no solution from here, undo or restart"
		} else {
			g.message = err.Error()
		}
		return
	}
	g.replay = moves
	g.replayTick = 0
	g.replayed = true
	g.message = fmt.Sprintf("replaying %d moves", len(moves))
}

// request queues a search of the current position for the caller.
func (g *Game) request(p SolvePurpose) {
	if g.solving {
		g.message = "still solving..."
		return
	}
	g.solveSeq++
	g.solving = true
	g.pending = &SolveRequest{
		Purpose: p,
		Board:   g.board.Clone(),
		solve:   g.opts.Solve,
		seq:     g.solveSeq,
		gen:     g.gen,
	}
	g.message = "solving..."
}

// TakeSolveRequest returns the search queued by the last Step, if any.
func (g *Game) TakeSolveRequest() (SolveRequest, bool) {
	if g.pending == nil {
		return SolveRequest{}, false
	}
	r := *g.pending
	g.pending = nil
	return r, true
}

// CompleteSolve delivers the result of a queued search. Results for a
// position the player has since left are dropped.
func (g *Game) CompleteSolve(res SolveResult) {
	if res.Request.seq == g.solveSeq {
		g.solving = false
	}
	if res.Request.gen != g.gen {
		return
	}
	switch res.Request.Purpose {
	case SolveForHint:
		g.showHint(res.Moves, res.Err)
	case SolveForReplay:
		g.startReplay(res.Moves, res.Err)
	}
}

// Solving reports whether a queued search has not completed yet.
func (g *Game) Solving() bool {
	return g.solving
}

func (g *Game) advanceReplay() {
	if len(g.replay) == 0 {
		g.replay = nil
		return
	}
	m := g.replay[0]
	g.replay = g.replay[1:]
	if !g.apply(m) {
		g.replay = nil
		return
	}
	if len(g.replay) == 0 {
		g.replay = nil
	}
}

// orbsInReadingOrder returns orb locations row by row, so cycling through
// them follows the screen.
func (g *Game) orbsInReadingOrder() []core.Coord {
	orbs := g.board.LocationsOf(core.Orb)
	slices.SortFunc(orbs, func(a, b core.Coord) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return orbs
}

func (g *Game) selectFirst() {
	orbs := g.orbsInReadingOrder()
	if len(orbs) == 0 {
		g.hasSel = false
		return
	}
	g.selected, g.hasSel = orbs[0], true
}

func (g *Game) cycle(delta int) {
	orbs := g.orbsInReadingOrder()
	if len(orbs) == 0 {
		return
	}
	i := slices.Index(orbs, g.selected)
	if i < 0 {
		g.selected, g.hasSel = orbs[0], true
		return
	}
	i = (i + delta + len(orbs)) % len(orbs)
	g.selected, g.hasSel = orbs[i], true
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Moves:    len(g.history),
		Hints:    g.hintsUsed,
		Solved:   g.solved,
		Stuck:    g.stuck,
		Replay:   g.replayed,
		GameOver: g.solved,
	}
}
