package core_test

import (
	"testing"

	"github.com/vovakirdan/orbs/internal/orbs/core"
)

func TestSlideMove(t *testing.T) {
	testCases := []struct {
		name   string
		objs   []obj
		dir    core.Dir
		want   core.Move
		wantOK bool
	}{
		{
			name:   "stops before block",
			objs:   []obj{orb(0, 0), block(3, 0)},
			dir:    core.DirRight,
			want:   core.NewMove(core.C(0, 0), core.C(2, 0)),
			wantOK: true,
		},
		{
			name:   "breaks breakable block",
			objs:   []obj{orb(0, 0), breakable(2, 0)},
			dir:    core.DirRight,
			want:   core.NewMove(core.C(0, 0), core.C(1, 0)).WithBlockBroken(),
			wantOK: true,
		},
		{
			name:   "stops before orb",
			objs:   []obj{orb(0, 5), orb(0, 1)},
			dir:    core.DirUp,
			want:   core.NewMove(core.C(0, 5), core.C(0, 2)),
			wantOK: true,
		},
		{
			name:   "enters goal",
			objs:   []obj{orb(4, 0), goal(4, 6), block(4, 9)},
			dir:    core.DirDown,
			want:   core.NewMove(core.C(4, 0), core.C(4, 6)).WithGoal(),
			wantOK: true,
		},
		{
			name:   "adjacent goal",
			objs:   []obj{orb(5, 5), goal(4, 5)},
			dir:    core.DirLeft,
			want:   core.NewMove(core.C(5, 5), core.C(4, 5)).WithGoal(),
			wantOK: true,
		},
		{
			name: "adjacent block",
			objs: []obj{orb(0, 0), block(1, 0), block(5, 0)},
			dir:  core.DirRight,
		},
		{
			name: "adjacent breakable block",
			objs: []obj{orb(0, 0), breakable(0, 1)},
			dir:  core.DirDown,
		},
		{
			name: "adjacent orb",
			objs: []obj{orb(3, 3), orb(3, 2), block(3, 0)},
			dir:  core.DirUp,
		},
		{
			name: "nothing ahead",
			objs: []obj{orb(0, 0), block(3, 1)},
			dir:  core.DirRight,
		},
		{
			name: "object behind is ignored",
			objs: []obj{orb(5, 0), block(2, 0)},
			dir:  core.DirRight,
		},
		{
			name:   "nearest of several",
			objs:   []obj{orb(0, 0), block(9, 0), goal(6, 0), breakable(4, 0)},
			dir:    core.DirRight,
			want:   core.NewMove(core.C(0, 0), core.C(3, 0)).WithBlockBroken(),
			wantOK: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := newBoard(t, tc.objs...)
			got, ok := b.SlideMove(core.C(tc.objs[0].x, tc.objs[0].y), tc.dir)
			if ok != tc.wantOK {
				t.Fatalf("expected ok=%v, got %v (move %v)", tc.wantOK, ok, got)
			}
			if ok && got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestDirectionalMoves(t *testing.T) {
	// Orb in the middle of a box of blocks, two cells away on every side.
	b := newBoard(t, orb(5, 5), block(5, 2), block(5, 8), block(2, 5), block(8, 5))
	at := core.C(5, 5)

	testCases := []struct {
		name string
		fn   func(core.Coord) (core.Move, bool)
		end  core.Coord
	}{
		{"up", b.UpMove, core.C(5, 3)},
		{"down", b.DownMove, core.C(5, 7)},
		{"left", b.LeftMove, core.C(3, 5)},
		{"right", b.RightMove, core.C(7, 5)},
	}
	for _, tc := range testCases {
		m, ok := tc.fn(at)
		if !ok {
			t.Errorf("%s: expected a move", tc.name)
			continue
		}
		if m.Start() != at || m.End() != tc.end {
			t.Errorf("%s: expected %v->%v, got %v", tc.name, at, tc.end, m)
		}
	}
}

func TestGenerateMovesBreakableTwoCellsAway(t *testing.T) {
	b := newBoard(t, orb(0, 0), breakable(2, 0))

	moves := b.GenerateMoves()
	if len(moves) != 1 {
		t.Fatalf("expected 1 move, got %d: %v", len(moves), moves)
	}

	m := moves[0]
	if m.Start() != core.C(0, 0) || m.End() != core.C(1, 0) {
		t.Errorf("expected (0,0)->(1,0), got %v", m)
	}
	if !m.BlockBroken() {
		t.Error("expected block to be broken")
	}
	loc, ok := m.BrokenBlockLocation()
	if !ok || loc != core.C(2, 0) {
		t.Errorf("expected broken block at (2,0), got %v (ok=%v)", loc, ok)
	}
}

func TestGenerateMovesManyObjects(t *testing.T) {
	objs := concat(
		[]obj{block(5, 0), block(9, 0), block(1, 1), breakable(3, 1), block(11, 1)},
		goals(14, 1, 16, 2),
		[]obj{breakable(10, 3)},
		goals(14, 3, 16, 3),
		[]obj{
			orb(1, 5), block(7, 5), block(12, 5), block(0, 6), block(10, 7),
			block(10, 8), block(2, 9), orb(4, 9), breakable(11, 9), orb(8, 10),
		},
	)
	b := newBoard(t, objs...)

	want := []core.Move{
		core.NewMove(core.C(1, 5), core.C(1, 2)),
		core.NewMove(core.C(1, 5), core.C(6, 5)),
		core.NewMove(core.C(4, 9), core.C(3, 9)),
		core.NewMove(core.C(4, 9), core.C(10, 9)).WithBlockBroken(),
	}

	got := b.GenerateMoves()
	if len(got) != len(want) {
		t.Fatalf("expected %d moves, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("move %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestGenerateMovesEmptyBoard(t *testing.T) {
	if moves := core.NewBoard().GenerateMoves(); len(moves) != 0 {
		t.Errorf("expected no moves, got %v", moves)
	}
}

func TestGenerateMovesInvariants(t *testing.T) {
	for _, p := range puzzles() {
		t.Run(p.name, func(t *testing.T) {
			b := newBoard(t, p.objs...)
			for _, m := range b.GenerateMoves() {
				if m.Start() == m.End() {
					t.Errorf("move %v has equal start and end", m)
				}
				if loc, ok := m.BrokenBlockLocation(); ok {
					if o, _ := b.Object(loc); o != core.BreakableBlock {
						t.Errorf("move %v breaks %v, which holds %v", m, loc, o)
					}
				}
			}
		})
	}
}
