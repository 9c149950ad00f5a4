package snake

// Virtual is a disposable copy of a body used to dry-run a path before the
// real snake commits to it. It never scores.
type Virtual struct {
	grid   Grid
	body   Body
	target Cell
}

// NewVirtual deep-copies body; moving the virtual snake never touches it.
func NewVirtual(g Grid, body Body, target Cell) *Virtual {
	return &Virtual{grid: g, body: body.Clone(), target: target}
}

// Body returns a copy of the simulated body.
func (v *Virtual) Body() Body {
	return v.body.Clone()
}

func (v *Virtual) Target() Cell { return v.target }

// AdvanceAlong walks the head over every cell of p, the rest of the body
// following. Length is unchanged.
func (v *Virtual) AdvanceAlong(p Path) {
	followPath(&v.body, p)
}

// Grow adds one segment behind the tail, as after eating.
func (v *Virtual) Grow() {
	v.body.Grow()
}

// PathToOwnTail searches from the head to the tail's cell, treating the tail
// as free.
func (v *Virtual) PathToOwnTail() Path {
	return pathToTail(v.grid, v.body)
}

func pathToTail(g Grid, b Body) Path {
	return FindPath(g, b.withoutTail(), b.Head().Cell, b.Tail().Cell)
}
