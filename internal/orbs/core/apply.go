package core

import "fmt"

// ApplyMove performs the move on the board.
// The orb leaves its start location; unless the end is a goal it is placed
// at the end location, and a broken block is removed. All preconditions are
// checked before the board is touched.
func (b *Board) ApplyMove(m Move) error {
	if m.IsZero() {
		return &ContractError{Op: "apply", Err: ErrNoLocation}
	}
	if o, ok := b.objects[m.start]; !ok || o != Orb {
		return &ContractError{Op: "apply", At: m.start, Err: ErrNotOrb}
	}
	broken, breaks := m.BrokenBlockLocation()
	if breaks {
		if o, ok := b.objects[broken]; !ok || o != BreakableBlock {
			return &ContractError{Op: "apply", At: broken, Err: ErrNotBreakable}
		}
	}
	if !m.endIsGoal && m.end != m.start && b.IsOccupied(m.end) {
		return &ContractError{Op: "apply", At: m.end, Err: ErrOccupied}
	}

	b.remove(m.start)
	if !m.endIsGoal {
		b.place(Orb, m.end)
		if breaks {
			b.remove(broken)
		}
	}
	return nil
}

// UndoMove reverts a move previously applied to the board.
func (b *Board) UndoMove(m Move) error {
	if m.IsZero() {
		return &ContractError{Op: "undo", Err: ErrNoLocation}
	}
	if b.IsOccupied(m.start) {
		return &ContractError{Op: "undo", At: m.start, Err: ErrStartOccupied}
	}
	broken, breaks := m.BrokenBlockLocation()
	if breaks && b.IsOccupied(broken) {
		return &ContractError{Op: "undo", At: broken, Err: ErrOccupied}
	}
	if !m.endIsGoal {
		if o, ok := b.objects[m.end]; !ok || o != Orb {
			return &ContractError{Op: "undo", At: m.end, Err: ErrEndNotOrb}
		}
	}

	if breaks {
		b.place(BreakableBlock, broken)
	}
	if !m.endIsGoal {
		b.remove(m.end)
	}
	b.place(Orb, m.start)
	return nil
}

// Replay applies moves in order to a clone of b and returns the result.
// The error names the first move that could not be applied.
func Replay(b *Board, moves []Move) (*Board, error) {
	out := b.Clone()
	for i, m := range moves {
		if err := out.ApplyMove(m); err != nil {
			return out, &ReplayError{Index: i, Move: m, Err: err}
		}
	}
	return out, nil
}

// ReplayError reports the move that failed during Replay.
type ReplayError struct {
	Index int
	Move  Move
	Err   error
}

func (e *ReplayError) Error() string {
	return fmt.Sprintf("replay move %d %s: %v", e.Index, e.Move, e.Err)
}

func (e *ReplayError) Unwrap() error {
	return e.Err
}
