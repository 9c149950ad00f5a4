package snake

// Path is the sequence of cells from (but excluding) a start cell to a goal.
// An empty path means no route was found.
type Path []Cell

// IsFree reports whether c is on the grid and not covered by any segment.
func IsFree(g Grid, segments []Segment, c Cell) bool {
	return g.InBounds(c) && !occupied(segments, c)
}

// FindPath runs a breadth-first search from start to goal through free cells.
// start and goal themselves are not checked against segments. The result is
// empty when goal cannot be reached or when start == goal.
func FindPath(g Grid, segments []Segment, start, goal Cell) Path {
	if start == goal || !g.InBounds(start) || !g.InBounds(goal) {
		return nil
	}

	n := g.cells()
	visited := make([]bool, n)
	prev := make([]int, n)
	for i := range prev {
		prev[i] = -1
	}

	visited[g.index(start)] = true
	queue := []Cell{start}
	found := false
	for len(queue) > 0 {
		var cur Cell
		cur, queue = queue[0], queue[1:]
		if cur == goal {
			found = true
			break
		}
		for _, next := range g.Neighbors(cur) {
			i := g.index(next)
			if visited[i] {
				continue
			}
			if next != goal && occupied(segments, next) {
				continue
			}
			visited[i] = true
			prev[i] = g.index(cur)
			queue = append(queue, next)
		}
	}
	if !found {
		return nil
	}

	var path Path
	startIdx := g.index(start)
	for i := g.index(goal); i != startIdx; i = prev[i] {
		if prev[i] < 0 {
			return nil
		}
		path = append(path, Cell{X: i % g.Size, Y: i / g.Size})
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}
