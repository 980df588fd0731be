package core

// GenerateMoves returns every move available on the board.
// Orbs are visited in board iteration order and each orb tries Up, Down,
// Left and Right in that order.
func (b *Board) GenerateMoves() []Move {
	var moves []Move
	for _, orb := range b.LocationsOf(Orb) {
		for _, d := range Dirs {
			if m, ok := b.SlideMove(orb, d); ok {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// UpMove returns the move of the orb at the given location towards smaller Y.
func (b *Board) UpMove(orb Coord) (Move, bool) {
	return b.SlideMove(orb, DirUp)
}

// DownMove returns the move of the orb at the given location towards larger Y.
func (b *Board) DownMove(orb Coord) (Move, bool) {
	return b.SlideMove(orb, DirDown)
}

// LeftMove returns the move of the orb at the given location towards smaller X.
func (b *Board) LeftMove(orb Coord) (Move, bool) {
	return b.SlideMove(orb, DirLeft)
}

// RightMove returns the move of the orb at the given location towards larger X.
func (b *Board) RightMove(orb Coord) (Move, bool) {
	return b.SlideMove(orb, DirRight)
}

// SlideMove computes where an orb at the given location ends up when it
// slides in direction d. ok is false when the orb cannot move that way:
// it is already pressed against an obstacle or orb, or nothing stops it.
func (b *Board) SlideMove(orb Coord, d Dir) (Move, bool) {
	if next, ok := b.objects[orb.Step(d)]; ok && next != Goal {
		return Move{}, false
	}

	stop, obj, found := b.nearest(orb, d)
	if !found {
		return Move{}, false
	}

	if obj == Goal {
		return NewMove(orb, stop).WithGoal(), true
	}

	end := stop.Step(d.Opposite())
	if end == orb {
		return Move{}, false
	}
	m := NewMove(orb, end)
	if obj == BreakableBlock {
		m = m.WithBlockBroken()
	}
	return m, true
}

// nearest finds the closest occupied cell strictly in direction d from the
// given location, on the same row or column.
func (b *Board) nearest(from Coord, d Dir) (at Coord, obj Object, found bool) {
	best := 0
	for c, o := range b.objects {
		dist, ok := distanceAlong(from, c, d)
		if !ok {
			continue
		}
		if !found || dist < best {
			at, obj, best, found = c, o, dist, true
		}
	}
	return at, obj, found
}

// distanceAlong returns how many steps in direction d lead from `from` to
// `to`. ok is false when `to` is not strictly ahead on that line.
func distanceAlong(from, to Coord, d Dir) (int, bool) {
	switch d {
	case DirUp:
		return from.Y - to.Y, to.X == from.X && to.Y < from.Y
	case DirDown:
		return to.Y - from.Y, to.X == from.X && to.Y > from.Y
	case DirLeft:
		return from.X - to.X, to.Y == from.Y && to.X < from.X
	case DirRight:
		return to.X - from.X, to.Y == from.Y && to.X > from.X
	default:
		return 0, false
	}
}
