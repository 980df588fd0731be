package orbs

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/orbs/internal/config"
	platformcore "github.com/vovakirdan/orbs/internal/core"
	"github.com/vovakirdan/orbs/internal/orbs/core"
	"github.com/vovakirdan/orbs/internal/orbs/levels"
)

func testLevel(t *testing.T, id string) levels.Level {
	t.Helper()
	lvl, err := levels.Embedded().LoadByID(id)
	if err != nil {
		t.Fatalf("LoadByID(%s) failed: %v", id, err)
	}
	return lvl
}

func newTestGame(t *testing.T, id string, opts Options) *Game {
	t.Helper()
	g := New(testLevel(t, id), opts)
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10})
	return g
}

func step(g *Game, actions ...platformcore.Action) platformcore.StepResult {
	in := platformcore.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func TestGameSolveByHand(t *testing.T) {
	g := newTestGame(t, "basics-2", Options{})

	if sel, ok := g.Selected(); !ok || sel != core.C(0, 0) {
		t.Fatalf("expected orb at (0,0) selected, got %v (ok=%v)", sel, ok)
	}

	res := step(g, platformcore.ActionRight)
	if res.State.Moves != 1 || res.Finished {
		t.Fatalf("unexpected state after first move: %+v", res)
	}
	if sel, _ := g.Selected(); sel != core.C(2, 0) {
		t.Errorf("selection should follow the orb, got %v", sel)
	}

	res = step(g, platformcore.ActionDown)
	if !res.Finished || !res.State.Solved {
		t.Fatalf("expected level solved, got %+v", res)
	}

	// Finished fires only once
	res = step(g)
	if res.Finished {
		t.Error("Finished should only be reported on the solving tick")
	}
}

func TestGameBlockedSlide(t *testing.T) {
	g := newTestGame(t, "basics-2", Options{})

	if g.Slide(core.DirLeft) {
		t.Fatal("orb at the left edge should not move left")
	}
	if g.State().Moves != 0 {
		t.Error("failed slide should not count as a move")
	}
	if !strings.Contains(g.Message(), "cannot move") {
		t.Errorf("expected a message, got %q", g.Message())
	}
}

func TestGameUndo(t *testing.T) {
	g := newTestGame(t, "basics-3", Options{Undo: true})
	start := g.Board().Clone()

	if !g.Slide(core.DirRight) {
		t.Fatal("expected orb to break through")
	}
	if g.Board().CountOf(core.BreakableBlock) != 0 {
		t.Fatal("breakable block should be gone")
	}

	step(g, platformcore.ActionUndo)
	if !g.Board().Equal(start) {
		t.Errorf("undo did not restore the board:\n%s", core.RenderASCII(g.Board()))
	}
	if len(g.History()) != 0 {
		t.Errorf("expected empty history, got %v", g.History())
	}

	if g.Undo() {
		t.Error("undo with empty history should fail")
	}
}

func TestGameUndoDisabled(t *testing.T) {
	g := newTestGame(t, "basics-3", Options{Undo: false})
	g.Slide(core.DirRight)

	if g.Undo() {
		t.Error("undo should be disabled")
	}
	if g.State().Moves != 1 {
		t.Error("history should be untouched")
	}
}

func TestGameRestart(t *testing.T) {
	g := newTestGame(t, "basics-2", Options{})
	step(g, platformcore.ActionRight, platformcore.ActionDown)
	if !g.State().Solved {
		t.Fatal("expected solved")
	}

	step(g, platformcore.ActionRestart)
	st := g.State()
	if st.Solved || st.Moves != 0 {
		t.Errorf("restart should reset the attempt, got %+v", st)
	}
	if g.Board().CountOf(core.Orb) != 1 {
		t.Error("restart should restore the orb")
	}
}

func TestGameCycleSelection(t *testing.T) {
	g := newTestGame(t, "basics-4", Options{})

	first, _ := g.Selected()
	step(g, platformcore.ActionNext)
	second, _ := g.Selected()
	if first == second {
		t.Fatal("tab should select another orb")
	}
	step(g, platformcore.ActionNext)
	if third, _ := g.Selected(); third != first {
		t.Errorf("selection should wrap around, got %v", third)
	}
	step(g, platformcore.ActionPrev)
	if back, _ := g.Selected(); back != second {
		t.Errorf("shift+tab should go back, got %v", back)
	}
}

func TestGameHint(t *testing.T) {
	g := newTestGame(t, "basics-2", Options{Hints: 1})

	m, ok := g.Hint()
	if !ok {
		t.Fatalf("expected a hint, message %q", g.Message())
	}
	want := core.NewMove(core.C(0, 0), core.C(2, 0))
	if m != want {
		t.Errorf("expected hint %v, got %v", want, m)
	}
	if g.State().Hints != 1 {
		t.Errorf("expected 1 hint used, got %d", g.State().Hints)
	}

	if _, ok := g.Hint(); ok {
		t.Error("hint budget should be exhausted")
	}
}

func TestGameHintStuck(t *testing.T) {
	lvl := levels.Level{
		ID:      "stuck",
		Name:    "Stuck",
		Entries: core.MustParseLayout("o.", ".G").Entries(),
	}
	g := New(lvl, Options{Hints: -1})

	if _, ok := g.Hint(); ok {
		t.Fatal("unsolvable board should not produce a hint")
	}
	if !g.State().Stuck {
		t.Error("expected stuck state")
	}
}

func TestGameReplay(t *testing.T) {
	g := newTestGame(t, "basics-2", Options{ReplayInterval: 100 * time.Millisecond})

	step(g, platformcore.ActionReplay)
	if !g.State().Replay {
		t.Fatal("expected replay to start")
	}

	finished := false
	for i := 0; i < 10 && !finished; i++ {
		finished = step(g).Finished
	}
	if !finished {
		t.Fatal("replay should solve the level")
	}
	if g.State().Moves != 2 {
		t.Errorf("expected 2 replayed moves, got %d", g.State().Moves)
	}
}

func TestGameReplayCancelledByInput(t *testing.T) {
	g := newTestGame(t, "basics-2", Options{ReplayInterval: time.Second})

	step(g, platformcore.ActionReplay)
	step(g, platformcore.ActionNext)
	for i := 0; i < 30; i++ {
		step(g)
	}
	if g.State().Moves != 0 {
		t.Errorf("cancelled replay should not move, got %d moves", g.State().Moves)
	}
}

func TestGameAsyncHint(t *testing.T) {
	g := newTestGame(t, "basics-2", Options{Hints: 1, Async: true})

	step(g, platformcore.ActionHint)
	req, ok := g.TakeSolveRequest()
	if !ok {
		t.Fatal("expected a queued search")
	}
	if req.Purpose != SolveForHint {
		t.Errorf("expected hint purpose, got %v", req.Purpose)
	}
	if _, again := g.TakeSolveRequest(); again {
		t.Error("request should only be handed out once")
	}
	if g.State().Hints != 0 {
		t.Error("hint should not count before the search completes")
	}

	step(g, platformcore.ActionHint)
	if _, ok := g.TakeSolveRequest(); ok {
		t.Error("no second search while one is running")
	}

	g.CompleteSolve(req.Run())
	if g.Solving() {
		t.Error("search should be complete")
	}
	if g.State().Hints != 1 {
		t.Errorf("expected 1 hint used, got %d", g.State().Hints)
	}
	if !strings.HasPrefix(g.Message(), "hint:") {
		t.Errorf("expected hint message, got %q", g.Message())
	}
}

func TestGameAsyncResultForOldPosition(t *testing.T) {
	g := newTestGame(t, "basics-2", Options{Hints: -1, Async: true})

	step(g, platformcore.ActionHint)
	req, ok := g.TakeSolveRequest()
	if !ok {
		t.Fatal("expected a queued search")
	}

	// The player moves while the search runs
	step(g, platformcore.ActionRight)
	if g.State().Moves != 1 {
		t.Fatalf("expected the slide to apply, got %d moves", g.State().Moves)
	}

	g.CompleteSolve(req.Run())
	if g.State().Hints != 0 {
		t.Error("result for an old position should be dropped")
	}
	if g.Solving() {
		t.Error("completed search should clear the solving flag")
	}
}

func TestGameAsyncReplay(t *testing.T) {
	g := newTestGame(t, "basics-2", Options{ReplayInterval: 100 * time.Millisecond, Async: true})

	step(g, platformcore.ActionReplay)
	if g.State().Replay {
		t.Fatal("replay should wait for the search")
	}
	req, ok := g.TakeSolveRequest()
	if !ok || req.Purpose != SolveForReplay {
		t.Fatalf("expected a replay search, got %v (ok=%v)", req.Purpose, ok)
	}
	g.CompleteSolve(req.Run())

	finished := false
	for i := 0; i < 10 && !finished; i++ {
		finished = step(g).Finished
	}
	if !finished {
		t.Fatal("replay should solve the level")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, "basics-1", Options{CellWidth: 2})
	s := platformcore.NewScreen(40, 12)
	g.Render(s)

	out := s.String()
	if !strings.Contains(out, "Into the Goal") {
		t.Errorf("expected level name in HUD:\n%s", out)
	}
	if !strings.Contains(out, "o G") {
		t.Errorf("expected board cells:\n%s", out)
	}

	tiny := platformcore.NewScreen(4, 3)
	g.Render(tiny)
	if strings.Contains(tiny.String(), "o G") {
		t.Error("board should not be drawn on a tiny screen")
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.DefaultOrbsConfig()
	cfg.Render.Glyphs.Orb = "@"
	cfg.Render.Glyphs.Empty = ""

	opts := OptionsFromConfig(cfg)
	if opts.Glyphs[core.Orb] != '@' {
		t.Errorf("expected custom orb glyph, got %q", opts.Glyphs[core.Orb])
	}
	if opts.Glyphs[core.Goal] != 'G' {
		t.Errorf("expected goal glyph G, got %q", opts.Glyphs[core.Goal])
	}
	if opts.Empty != ' ' {
		t.Errorf("expected blank empty glyph, got %q", opts.Empty)
	}
	if opts.ReplayInterval != 400*time.Millisecond {
		t.Errorf("unexpected replay interval %v", opts.ReplayInterval)
	}
}
