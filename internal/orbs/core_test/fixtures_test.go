package core_test

import (
	"testing"

	"github.com/vovakirdan/orbs/internal/orbs/core"
)

// obj is a placement used to build boards in insertion order.
type obj struct {
	o    core.Object
	x, y int
}

func orb(x, y int) obj       { return obj{core.Orb, x, y} }
func goal(x, y int) obj      { return obj{core.Goal, x, y} }
func block(x, y int) obj     { return obj{core.Block, x, y} }
func breakable(x, y int) obj { return obj{core.BreakableBlock, x, y} }

// goals returns a rectangle of goals, row by row.
func goals(x0, y0, x1, y1 int) []obj {
	var out []obj
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			out = append(out, goal(x, y))
		}
	}
	return out
}

func newBoard(t testing.TB, objs ...obj) *core.Board {
	t.Helper()
	b := core.NewBoard()
	for _, o := range objs {
		if err := b.PlaceObject(o.o, core.C(o.x, o.y)); err != nil {
			t.Fatalf("PlaceObject(%v, %d,%d) failed: %v", o.o, o.x, o.y, err)
		}
	}
	return b
}

func concat(parts ...[]obj) []obj {
	var out []obj
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// puzzle is one of the hand-made rooms with the length of its known
// solution.
type puzzle struct {
	name    string
	objs    []obj
	maxLen  int
	longRun bool
}

func puzzles() []puzzle {
	return []puzzle{
		{
			name: "puzzle1",
			objs: concat(
				[]obj{block(10, 0), block(14, 1), block(1, 3), block(9, 4)},
				goals(12, 4, 14, 6),
				[]obj{block(0, 11), orb(6, 11), breakable(10, 11), block(16, 12), orb(10, 14)},
			),
			maxLen: 6,
		},
		{
			name: "puzzle2",
			objs: concat(
				[]obj{block(4, 0), breakable(11, 0), block(14, 0), block(12, 2), breakable(2, 3)},
				goals(9, 5, 11, 7),
				[]obj{block(3, 11), orb(8, 11), orb(12, 11), block(15, 11)},
			),
			maxLen: 9,
		},
		{
			name: "puzzle3",
			objs: concat(
				goals(10, 1, 12, 1),
				[]obj{block(2, 2)},
				goals(10, 2, 12, 3),
				[]obj{
					orb(7, 4), block(16, 4), orb(2, 5), block(12, 5), breakable(14, 6),
					breakable(7, 7), block(7, 12), block(1, 13), breakable(2, 14),
					block(15, 14), block(13, 15),
				},
			),
			maxLen: 8,
		},
		{
			name: "puzzle4",
			objs: concat(
				[]obj{block(7, 4), block(11, 4), block(3, 5), breakable(5, 5), block(13, 5)},
				goals(16, 5, 18, 6),
				[]obj{breakable(12, 7)},
				goals(16, 7, 18, 7),
				[]obj{
					breakable(7, 8), orb(3, 9), block(9, 9), block(14, 9), block(2, 10),
					block(12, 11), block(12, 12), block(4, 13), orb(7, 13), breakable(13, 13),
					orb(10, 14),
				},
			),
			maxLen:  19,
			longRun: true,
		},
	}
}
