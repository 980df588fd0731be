// Package core provides the board model, move generation and breadth-first
// solver for the sliding orb puzzle.
// This package is UI-agnostic and deterministic.
package core

import "fmt"

// Dir represents a slide direction.
type Dir uint8

const (
	DirUp Dir = iota
	DirDown
	DirLeft
	DirRight
)

// Dirs lists the directions in move generation order.
var Dirs = [4]Dir{DirUp, DirDown, DirLeft, DirRight}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

// Object is the content of an occupied board cell.
type Object uint8

const (
	Orb Object = iota + 1
	Goal
	Block
	BreakableBlock
)

// Objects lists every object kind.
var Objects = [4]Object{Orb, Goal, Block, BreakableBlock}

// String returns the name of the object.
func (o Object) String() string {
	switch o {
	case Orb:
		return "Orb"
	case Goal:
		return "Goal"
	case Block:
		return "Block"
	case BreakableBlock:
		return "BreakableBlock"
	default:
		return fmt.Sprintf("Object(%d)", uint8(o))
	}
}

// Glyph returns the single character used for the object in ASCII layouts.
func (o Object) Glyph() rune {
	switch o {
	case Orb:
		return 'o'
	case Goal:
		return 'G'
	case Block:
		return 'B'
	case BreakableBlock:
		return 'X'
	default:
		return '?'
	}
}

// IsSolid reports whether the object is an obstacle (Block or BreakableBlock).
func (o Object) IsSolid() bool {
	return o == Block || o == BreakableBlock
}

// Valid reports whether o is one of the four object kinds.
func (o Object) Valid() bool {
	return o >= Orb && o <= BreakableBlock
}

// ParseObject converts a layout glyph into an object.
func ParseObject(r rune) (Object, bool) {
	switch r {
	case 'o', 'O':
		return Orb, true
	case 'G', 'g':
		return Goal, true
	case 'B', 'b':
		return Block, true
	case 'X', 'x':
		return BreakableBlock, true
	default:
		return 0, false
	}
}

// ParseObjectName converts a name such as "orb" or "breakable_block" into an object.
func ParseObjectName(name string) (Object, bool) {
	switch name {
	case "orb", "Orb", "o":
		return Orb, true
	case "goal", "Goal", "G":
		return Goal, true
	case "block", "Block", "B":
		return Block, true
	case "breakable", "breakable_block", "breakableblock", "BreakableBlock", "X":
		return BreakableBlock, true
	default:
		return 0, false
	}
}
