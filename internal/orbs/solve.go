package orbs

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/orbs/internal/orbs/core"
	"github.com/vovakirdan/orbs/internal/storage"
)

// Result is the outcome of a Service.Solve call.
type Result struct {
	Moves   []core.Move
	Stats   core.Stats // Zero when Cached
	Cached  bool
	Elapsed time.Duration
}

// Service runs the solver with an optional sqlite cache in front of it.
type Service struct {
	store    *storage.Store
	logger   *log.Logger
	useCache bool
}

// NewService creates a solve service. store and logger may be nil.
func NewService(store *storage.Store, logger *log.Logger, useCache bool) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{store: store, logger: logger, useCache: useCache && store != nil}
}

// Solve finds a minimal solution for b. Unsolvable boards return
// core.ErrNoSolution and are cached like solvable ones.
func (s *Service) Solve(levelID string, b *core.Board) (Result, error) {
	start := time.Now()
	logger := s.logger.With("level", levelID)

	if s.useCache {
		sol, found, err := s.store.SolutionFor(b)
		switch {
		case err != nil:
			logger.Warn("cache lookup failed", "error", err)
		case found && !sol.Solvable:
			logger.Debug("cache hit", "solvable", false)
			return Result{Cached: true, Elapsed: time.Since(start)}, core.ErrNoSolution
		case found:
			if _, err := core.Replay(b, sol.Moves); err != nil {
				logger.Warn("discarding cached solution", "error", err)
				break
			}
			logger.Debug("cache hit", "moves", len(sol.Moves))
			return Result{Moves: sol.Moves, Cached: true, Elapsed: time.Since(start)}, nil
		}
	}

	logger.Debug("solving", "orbs", b.CountOf(core.Orb), "objects", b.Count())
	solver := core.NewSolver()
	moves, err := solver.FindSolution(b)
	res := Result{Moves: moves, Stats: solver.Stats(), Elapsed: time.Since(start)}

	switch {
	case errors.Is(err, core.ErrNoSolution):
		logger.Info("no solution",
			"expanded", res.Stats.Expanded,
			"enqueued", res.Stats.Enqueued,
			"elapsed", res.Elapsed,
		)
	case err != nil:
		return res, err
	default:
		logger.Info("solved",
			"moves", len(moves),
			"expanded", res.Stats.Expanded,
			"enqueued", res.Stats.Enqueued,
			"elapsed", res.Elapsed,
		)
	}

	if s.useCache {
		_, saveErr := s.store.SaveSolution(storage.Solution{
			LevelID:   levelID,
			BoardHash: b.OrderHash(),
			BoardKey:  b.OrderKey(),
			Solvable:  err == nil,
			Moves:     moves,
			Expanded:  res.Stats.Expanded,
			Enqueued:  res.Stats.Enqueued,
		})
		if saveErr != nil {
			logger.Warn("could not cache solution", "error", saveErr)
		}
	}

	return res, err
}

// SolveFunc adapts the service for use as Options.Solve.
func (s *Service) SolveFunc(levelID string) SolveFunc {
	return func(b *core.Board) ([]core.Move, error) {
		res, err := s.Solve(levelID, b)
		return res.Moves, err
	}
}
