package snake

// Route says which branch of the planner produced a path.
type Route int

const (
	RouteNone Route = iota
	RouteTarget
	RouteTail
)

func (r Route) String() string {
	switch r {
	case RouteTarget:
		return "target"
	case RouteTail:
		return "tail"
	}
	return "none"
}

type Plan struct {
	Route Route
	Path  Path
}

// Next is the cell the head should move onto, if any.
func (p Plan) Next() (Cell, bool) {
	if len(p.Path) == 0 {
		return Cell{}, false
	}
	return p.Path[0], true
}

// PlanRoute chooses this tick's path for body. The target route is taken
// only if, after following it and growing, the snake can still reach its own
// tail. Otherwise it chases its tail, and failing that it has no route.
func PlanRoute(g Grid, body Body, target Target) Plan {
	head := body.Head().Cell
	if !target.Consumed {
		if toTarget := FindPath(g, body.Segments, head, target.Cell); len(toTarget) > 0 {
			v := NewVirtual(g, body, target.Cell)
			v.AdvanceAlong(toTarget)
			v.Grow()
			if len(v.PathToOwnTail()) > 0 {
				return Plan{Route: RouteTarget, Path: toTarget}
			}
		}
	}
	if toTail := pathToTail(g, body); len(toTail) > 0 {
		return Plan{Route: RouteTail, Path: toTail}
	}
	return Plan{Route: RouteNone}
}
