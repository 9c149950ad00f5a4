package snake

import (
	"errors"
	"fmt"
)

// ErrInvalidMove means a planned step was not a single orthogonal move. It
// always points at a planning bug, so it is raised with panic.
var ErrInvalidMove = errors.New("invalid move")

type InvalidMoveError struct {
	From, To Cell
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("%v: %v -> %v is not one orthogonal step", ErrInvalidMove, e.From, e.To)
}

func (e *InvalidMoveError) Unwrap() error { return ErrInvalidMove }

// TurnToward returns the direction that takes from onto to. It panics with an
// *InvalidMoveError if to is not orthogonally adjacent to from.
func TurnToward(from, to Cell) Direction {
	d := Direction{X: to.X - from.X, Y: to.Y - from.Y}
	if !d.Cardinal() {
		panic(&InvalidMoveError{From: from, To: to})
	}
	return d
}

// followPath steers b onto each cell of p in turn, advancing once per cell.
func followPath(b *Body, p Path) {
	for _, c := range p {
		b.Turn(TurnToward(b.Head().Cell, c))
		b.Advance()
	}
}
