package snake

// Segment is one cell of a body and the direction it last moved in.
type Segment struct {
	Cell
	Dir  Direction
	Tail bool
}

// TurnMap holds pending direction changes keyed by the cell the head was on
// when the turn was issued. Each segment adopts the turn as it passes the
// cell; the tail removes it.
type TurnMap map[Cell]Direction

func (t TurnMap) clone() TurnMap {
	out := make(TurnMap, len(t))
	for c, d := range t {
		out[c] = d
	}
	return out
}

// Body is an ordered list of segments, head first.
type Body struct {
	Segments []Segment
	Turns    TurnMap
	Heading  Direction
}

// NewBody lays out length segments from head toward the opposite of heading,
// so the body is already moving in heading.
func NewBody(head Cell, heading Direction, length int) Body {
	b := Body{
		Segments: make([]Segment, length),
		Turns:    TurnMap{},
		Heading:  heading,
	}
	back := heading.Opposite()
	c := head
	for i := range b.Segments {
		b.Segments[i] = Segment{Cell: c, Dir: heading}
		c = c.Add(back)
	}
	b.Segments[length-1].Tail = true
	return b
}

// Clone returns a deep copy; nothing is shared with b.
func (b Body) Clone() Body {
	out := Body{
		Segments: make([]Segment, len(b.Segments)),
		Turns:    b.Turns.clone(),
		Heading:  b.Heading,
	}
	copy(out.Segments, b.Segments)
	return out
}

func (b Body) Len() int { return len(b.Segments) }

func (b Body) Head() Segment { return b.Segments[0] }

func (b Body) Tail() Segment { return b.Segments[len(b.Segments)-1] }

// withoutTail is the body as an obstacle set with the tail cell left free.
func (b Body) withoutTail() []Segment {
	return b.Segments[:len(b.Segments)-1]
}

// Turn records a direction change anchored at the head's current cell.
func (b *Body) Turn(d Direction) {
	b.Heading = d
	b.Turns[b.Head().Cell] = d
}

// Advance moves every segment one step. A segment standing on a pending turn
// takes that direction, and the tail clears the turn behind it.
func (b *Body) Advance() {
	last := len(b.Segments) - 1
	for i := range b.Segments {
		s := &b.Segments[i]
		if d, ok := b.Turns[s.Cell]; ok {
			s.Dir = d
			if i == last {
				delete(b.Turns, s.Cell)
			}
		}
		s.Cell = s.Cell.Add(s.Dir)
	}
}

// Grow appends a segment behind the tail, continuing in the tail's direction.
func (b *Body) Grow() {
	tail := &b.Segments[len(b.Segments)-1]
	tail.Tail = false
	b.Segments = append(b.Segments, Segment{
		Cell: tail.Cell.Add(tail.Dir.Opposite()),
		Dir:  tail.Dir,
		Tail: true,
	})
}

// Occupies reports whether any segment sits on c.
func (b Body) Occupies(c Cell) bool {
	return occupied(b.Segments, c)
}

// HitsSelf reports whether the head shares a cell with another segment.
func (b Body) HitsSelf() bool {
	return occupied(b.Segments[1:], b.Head().Cell)
}

func occupied(segments []Segment, c Cell) bool {
	for _, s := range segments {
		if s.Cell == c {
			return true
		}
	}
	return false
}
