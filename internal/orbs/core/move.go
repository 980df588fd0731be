package core

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Move describes one orb slide.
// A Move is only meaningful once built with NewMove; the zero Move has no
// locations and its accessors panic.
type Move struct {
	start       Coord
	end         Coord
	blockBroken bool
	endIsGoal   bool
	set         bool
}

// NewMove creates a move from start to end.
func NewMove(start, end Coord) Move {
	return Move{start: start, end: end, set: true}
}

// WithBlockBroken returns a copy of m that destroys the breakable block
// one step past the end location.
func (m Move) WithBlockBroken() Move {
	m.blockBroken = true
	return m
}

// WithGoal returns a copy of m whose end location is a goal.
func (m Move) WithGoal() Move {
	m.endIsGoal = true
	return m
}

// IsZero reports whether m was never built.
func (m Move) IsZero() bool {
	return !m.set
}

// Start returns the orb's location before the move.
func (m Move) Start() Coord {
	m.mustBeSet("Start")
	return m.start
}

// End returns where the orb stops, or the goal that consumes it.
func (m Move) End() Coord {
	m.mustBeSet("End")
	return m.end
}

// BlockBroken reports whether the move shatters a breakable block.
func (m Move) BlockBroken() bool {
	return m.blockBroken
}

// EndIsGoal reports whether the orb is consumed by a goal at End.
func (m Move) EndIsGoal() bool {
	return m.endIsGoal
}

// Dir returns the direction of travel.
func (m Move) Dir() Dir {
	m.mustBeSet("Dir")
	switch dx := m.end.X - m.start.X; {
	case dx < 0:
		return DirLeft
	case dx > 0:
		return DirRight
	}
	if m.end.Y < m.start.Y {
		return DirUp
	}
	return DirDown
}

// BrokenBlockLocation returns the cell one step past End in the direction
// of travel. ok is false when the move does not break a block.
func (m Move) BrokenBlockLocation() (loc Coord, ok bool) {
	if !m.blockBroken {
		return Coord{}, false
	}
	return m.End().Step(m.Dir()), true
}

func (m Move) mustBeSet(op string) {
	if !m.set {
		panic(&ContractError{Op: "Move." + op, Err: ErrNoLocation})
	}
}

// String returns a compact representation such as "(0,0)->(2,0)+break".
func (m Move) String() string {
	if !m.set {
		return "(unset)"
	}
	var sb strings.Builder
	sb.WriteString(m.start.String())
	sb.WriteString("->")
	sb.WriteString(m.end.String())
	if m.blockBroken {
		sb.WriteString("+break")
	}
	if m.endIsGoal {
		sb.WriteString("+goal")
	}
	return sb.String()
}

// moveJSON is the wire form of a Move.
type moveJSON struct {
	Start             *jsonCoord `json:"startLocation,omitempty"`
	End               *jsonCoord `json:"endLocation,omitempty"`
	BlockBroken       bool       `json:"blockBroken,omitempty"`
	EndLocationIsGoal bool       `json:"endLocationIsGoal,omitempty"`
}

type jsonCoord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// MarshalJSON implements json.Marshaler.
func (m Move) MarshalJSON() ([]byte, error) {
	var out moveJSON
	if m.set {
		out.Start = &jsonCoord{X: m.start.X, Y: m.start.Y}
		out.End = &jsonCoord{X: m.end.X, Y: m.end.Y}
	}
	out.BlockBroken = m.blockBroken
	out.EndLocationIsGoal = m.endIsGoal
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Move) UnmarshalJSON(data []byte) error {
	var in moveJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in.Start == nil || in.End == nil {
		return fmt.Errorf("move: %w", ErrNoLocation)
	}
	*m = NewMove(C(in.Start.X, in.Start.Y), C(in.End.X, in.End.Y))
	m.blockBroken = in.BlockBroken
	m.endIsGoal = in.EndLocationIsGoal
	return nil
}
