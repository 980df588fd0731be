package core

// Stats describes the work done by the last search.
type Stats struct {
	Expanded    int // Boards taken off the queue and expanded
	Enqueued    int // Boards put on the queue, including the start board
	MaxFrontier int // Largest queue length observed
	Depth       int // Length of the solution, or deepest level reached on failure
}

// Solver finds the shortest sequence of moves that removes every orb.
// A Solver is not safe for concurrent use; each FindSolution call owns its
// queue and visited set.
type Solver struct {
	stats Stats
}

// NewSolver creates a solver.
func NewSolver() *Solver {
	return &Solver{}
}

// FindSolution is a convenience wrapper around NewSolver().FindSolution.
func FindSolution(b *Board) ([]Move, error) {
	return NewSolver().FindSolution(b)
}

// Stats returns statistics for the most recent FindSolution call.
func (s *Solver) Stats() Stats {
	return s.stats
}

// history is a persistent list of moves; siblings share their prefix.
type history struct {
	move   Move
	parent *history
	depth  int
}

func (h *history) push(m Move) *history {
	depth := 1
	if h != nil {
		depth = h.depth + 1
	}
	return &history{move: m, parent: h, depth: depth}
}

func (h *history) moves() []Move {
	if h == nil {
		return []Move{}
	}
	out := make([]Move, h.depth)
	for n := h; n != nil; n = n.parent {
		out[n.depth-1] = n.move
	}
	return out
}

type searchNode struct {
	board *Board
	key   string
	path  *history
}

// FindSolution runs a breadth-first search from b. Because every move costs
// one, the first board found without orbs is reached by a minimal number of
// moves. b itself is never modified.
func (s *Solver) FindSolution(b *Board) ([]Move, error) {
	s.stats = Stats{}

	start := b.Clone()
	queue := []searchNode{{board: start, key: start.Key()}}
	head := 0
	s.stats.Enqueued = 1
	s.stats.MaxFrontier = 1

	visited := make(map[string]struct{})

	for head < len(queue) {
		node := queue[head]
		queue[head] = searchNode{}
		head++

		if _, seen := visited[node.key]; seen {
			continue
		}
		visited[node.key] = struct{}{}

		if d := node.path.len(); d > s.stats.Depth {
			s.stats.Depth = d
		}

		if node.board.CountOf(Orb) == 0 {
			s.stats.Depth = node.path.len()
			return node.path.moves(), nil
		}

		s.stats.Expanded++
		for _, m := range node.board.GenerateMoves() {
			next := node.board.Clone()
			if err := next.ApplyMove(m); err != nil {
				// Generated moves always satisfy ApplyMove's preconditions.
				panic(err)
			}
			key := next.Key()
			if _, seen := visited[key]; seen {
				continue
			}
			queue = append(queue, searchNode{board: next, key: key, path: node.path.push(m)})
			s.stats.Enqueued++
		}

		if head > len(queue)/2 && head > 1024 {
			queue = append(queue[:0:0], queue[head:]...)
			head = 0
		}
		if f := len(queue) - head; f > s.stats.MaxFrontier {
			s.stats.MaxFrontier = f
		}
	}

	return nil, ErrNoSolution
}

func (h *history) len() int {
	if h == nil {
		return 0
	}
	return h.depth
}
