package snake

import (
	"strings"
)

// testBoard decodes a square ASCII board. Rows are listed top down, matching
// the grid's downward Y axis. 's' is an obstacle segment, 'H' a start cell and
// 'G' a goal cell.
func testBoard(s string) (g Grid, segments []Segment, start, goal Cell) {
	rows := strings.Split(strings.TrimSpace(s), "\n")
	for i := range rows {
		rows[i] = strings.TrimSpace(rows[i])
	}
	g = Grid{Size: len(rows)}
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			c := Cell{X: x, Y: y}
			switch row[x] {
			case 's':
				segments = append(segments, Segment{Cell: c})
			case 'H':
				start = c
			case 'G':
				goal = c
			}
		}
	}
	return g, segments, start, goal
}

// bodyOf builds a body from head-first cells. Every segment heads toward the
// cell in front of it and every cell behind the head carries a pending turn,
// so the body keeps following the head however far it moves.
func bodyOf(cells ...Cell) Body {
	b := Body{Segments: make([]Segment, len(cells)), Turns: TurnMap{}}
	for i, c := range cells {
		var d Direction
		switch {
		case i > 0:
			d = Direction{X: cells[i-1].X - c.X, Y: cells[i-1].Y - c.Y}
		case len(cells) > 1:
			d = Direction{X: c.X - cells[1].X, Y: c.Y - cells[1].Y}
		default:
			d = Left
		}
		b.Segments[i] = Segment{Cell: c, Dir: d}
		if i > 0 {
			b.Turns[c] = d
		}
	}
	b.Segments[len(cells)-1].Tail = true
	b.Heading = b.Segments[0].Dir
	return b
}

func cells(segments []Segment) []Cell {
	out := make([]Cell, len(segments))
	for i := range segments {
		out[i] = segments[i].Cell
	}
	return out
}

// newTestState starts a game from a handcrafted body.
func newTestState(cfg Config, b Body, target Cell) *State {
	return &State{
		cfg:    cfg,
		grid:   Grid{Size: cfg.Size},
		body:   b,
		target: Target{Cell: target},
		cursor: target,
	}
}

type fixedPlacer struct {
	cells []Cell
}

func (p *fixedPlacer) Place(g Grid, b Body) (Cell, bool) {
	for len(p.cells) > 0 {
		c := p.cells[0]
		p.cells = p.cells[1:]
		if IsFree(g, b.Segments, c) {
			return c, true
		}
	}
	return Cell{}, false
}
