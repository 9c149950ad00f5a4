// Package snake plans and moves a single snake around a square grid.
//
// Every tick the planner searches for a route to the target, dry-runs it on a
// throwaway copy of the body, and only commits to it if the snake could still
// reach its own tail afterwards. Otherwise it chases its tail.
package snake

import "fmt"

// Cell is a grid coordinate. Y grows downward.
type Cell struct {
	X int
	Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the cell one step from c in direction d.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Direction is a unit step on the grid.
type Direction struct {
	X int
	Y int
}

var (
	Left  = Direction{X: -1, Y: 0}
	Right = Direction{X: 1, Y: 0}
	Up    = Direction{X: 0, Y: -1}
	Down  = Direction{X: 0, Y: 1}

	// None marks something that does not move, like the target.
	None = Direction{}
)

// directions is the neighbour expansion order. Keep it fixed so paths are
// reproducible.
var directions = [4]Direction{Left, Right, Up, Down}

func (d Direction) Opposite() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

// Cardinal reports whether d is one of the four unit steps.
func (d Direction) Cardinal() bool {
	for _, c := range directions {
		if d == c {
			return true
		}
	}
	return false
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	case None:
		return "none"
	}
	return fmt.Sprintf("<%d,%d>", d.X, d.Y)
}

// ParseDirection maps "left", "right", "up" or "down" onto a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return None, fmt.Errorf("unknown direction %q", s)
}

// Grid is a Size×Size board.
type Grid struct {
	Size int
}

func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Size && c.Y >= 0 && c.Y < g.Size
}

// Neighbors returns the orthogonal neighbours of c that lie on the grid.
func (g Grid) Neighbors(c Cell) []Cell {
	ns := make([]Cell, 0, len(directions))
	for _, d := range directions {
		if n := c.Add(d); g.InBounds(n) {
			ns = append(ns, n)
		}
	}
	return ns
}

func (g Grid) index(c Cell) int {
	return c.Y*g.Size + c.X
}

func (g Grid) cells() int {
	return g.Size * g.Size
}

// Distance is the Manhattan distance between two cells.
func Distance(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
