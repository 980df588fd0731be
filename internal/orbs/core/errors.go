package core

import (
	"errors"
	"fmt"
)

// Contract violations. These are programmer errors: the operation that
// returns one has not mutated the board.
var (
	ErrOccupied      = errors.New("location is already occupied")
	ErrUnoccupied    = errors.New("location is not occupied")
	ErrNotOrb        = errors.New("start location does not hold an orb")
	ErrNotBreakable  = errors.New("broken block location does not hold a breakable block")
	ErrStartOccupied = errors.New("start location is occupied")
	ErrEndNotOrb     = errors.New("end location does not hold an orb")
	ErrNoLocation    = errors.New("move locations are not set")
	ErrInvalidObject = errors.New("unknown object kind")
)

// ErrNoSolution is returned when the search exhausts every reachable board
// without removing all orbs.
var ErrNoSolution = errors.New("no solution exists for the provided board")

// ContractError reports a violated precondition.
// At is meaningless when Err is ErrNoLocation.
type ContractError struct {
	Op  string
	At  Coord
	Err error
}

func (e *ContractError) Error() string {
	if errors.Is(e.Err, ErrNoLocation) {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.At, e.Err)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

// IsContractViolation reports whether err is a precondition failure.
func IsContractViolation(err error) bool {
	var ce *ContractError
	return errors.As(err, &ce)
}
