package core

import (
	"encoding/binary"
	"slices"

	"github.com/zeebo/xxh3"
)

// Entry is one occupied cell.
type Entry struct {
	At     Coord
	Object Object
}

// Board is a sparse mapping from coordinates to objects.
// Each location is either empty or holds exactly one object.
// Iteration follows insertion order; equality and hashing do not.
type Board struct {
	objects map[Coord]Object
	order   []Coord
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{objects: make(map[Coord]Object)}
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	return len(b.objects)
}

// CountOf returns the number of cells holding obj.
func (b *Board) CountOf(obj Object) int {
	n := 0
	for _, o := range b.objects {
		if o == obj {
			n++
		}
	}
	return n
}

// Object returns the object at the given location.
func (b *Board) Object(at Coord) (Object, bool) {
	o, ok := b.objects[at]
	return o, ok
}

// IsOccupied returns true if an object exists at the given location.
func (b *Board) IsOccupied(at Coord) bool {
	_, ok := b.objects[at]
	return ok
}

// LocationsOf returns the locations holding obj in board iteration order.
func (b *Board) LocationsOf(obj Object) []Coord {
	var locs []Coord
	for _, c := range b.order {
		if b.objects[c] == obj {
			locs = append(locs, c)
		}
	}
	return locs
}

// Entries returns every occupied cell in board iteration order.
func (b *Board) Entries() []Entry {
	entries := make([]Entry, len(b.order))
	for i, c := range b.order {
		entries[i] = Entry{At: c, Object: b.objects[c]}
	}
	return entries
}

// PlaceObject puts obj at the given location.
func (b *Board) PlaceObject(obj Object, at Coord) error {
	if !obj.Valid() {
		return &ContractError{Op: "place " + obj.String(), At: at, Err: ErrInvalidObject}
	}
	if _, ok := b.objects[at]; ok {
		return &ContractError{Op: "place " + obj.String(), At: at, Err: ErrOccupied}
	}
	b.place(obj, at)
	return nil
}

// RemoveObject clears the given location.
func (b *Board) RemoveObject(at Coord) error {
	if _, ok := b.objects[at]; !ok {
		return &ContractError{Op: "remove", At: at, Err: ErrUnoccupied}
	}
	b.remove(at)
	return nil
}

// place and remove assume the caller checked occupancy.
func (b *Board) place(obj Object, at Coord) {
	if b.objects == nil {
		b.objects = make(map[Coord]Object)
	}
	b.objects[at] = obj
	b.order = append(b.order, at)
}

func (b *Board) remove(at Coord) {
	delete(b.objects, at)
	if i := slices.Index(b.order, at); i >= 0 {
		b.order = slices.Delete(b.order, i, i+1)
	}
}

// Clone returns a deep copy of the board with the same iteration order.
func (b *Board) Clone() *Board {
	objects := make(map[Coord]Object, len(b.objects))
	for c, o := range b.objects {
		objects[c] = o
	}
	order := make([]Coord, len(b.order), len(b.order)+1)
	copy(order, b.order)
	return &Board{objects: objects, order: order}
}

// Equal returns true if both boards hold the same set of (location, object)
// pairs, regardless of insertion order.
func (b *Board) Equal(other *Board) bool {
	if other == nil || len(b.objects) != len(other.objects) {
		return false
	}
	for c, o := range b.objects {
		if oo, ok := other.objects[c]; !ok || oo != o {
			return false
		}
	}
	return true
}

// Key returns a canonical encoding of the board contents. Two boards have
// the same key exactly when they are Equal.
func (b *Board) Key() string {
	buf := make([]byte, 0, len(b.objects)*5)
	for _, e := range b.sortedEntries() {
		buf = binary.AppendVarint(buf, int64(e.At.X))
		buf = binary.AppendVarint(buf, int64(e.At.Y))
		buf = append(buf, byte(e.Object))
	}
	return string(buf)
}

// Hash returns a 64-bit hash of the board contents, consistent with Equal.
func (b *Board) Hash() uint64 {
	return xxh3.HashString(b.Key())
}

// OrderKey extends Key with the iteration order of the orbs. Move
// generation visits orbs in that order, so boards with the same OrderKey
// get the same solution from the solver, tie-breaks included.
func (b *Board) OrderKey() string {
	buf := []byte(b.Key())
	buf = append(buf, 0xff)
	for _, c := range b.order {
		if b.objects[c] != Orb {
			continue
		}
		buf = binary.AppendVarint(buf, int64(c.X))
		buf = binary.AppendVarint(buf, int64(c.Y))
	}
	return string(buf)
}

// OrderHash returns a 64-bit hash of OrderKey.
func (b *Board) OrderHash() uint64 {
	return xxh3.HashString(b.OrderKey())
}

// sortedEntries returns the entries in row-major order.
func (b *Board) sortedEntries() []Entry {
	entries := b.Entries()
	slices.SortFunc(entries, func(l, r Entry) int {
		switch {
		case l.At.less(r.At):
			return -1
		case r.At.less(l.At):
			return 1
		default:
			return 0
		}
	})
	return entries
}

// Bounds returns the smallest and largest coordinate on each axis.
// ok is false for an empty board.
func (b *Board) Bounds() (lo, hi Coord, ok bool) {
	for i, c := range b.order {
		if i == 0 {
			lo, hi = c, c
			continue
		}
		lo.X = min(lo.X, c.X)
		lo.Y = min(lo.Y, c.Y)
		hi.X = max(hi.X, c.X)
		hi.Y = max(hi.Y, c.Y)
	}
	return lo, hi, len(b.order) > 0
}
