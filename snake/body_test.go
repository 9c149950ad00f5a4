package snake

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestNewBody(t *testing.T) {
	c := qt.New(t)
	b := NewBody(Cell{5, 5}, Left, 3)
	c.Assert(b.Segments, qt.DeepEquals, []Segment{
		{Cell: Cell{5, 5}, Dir: Left},
		{Cell: Cell{6, 5}, Dir: Left},
		{Cell: Cell{7, 5}, Dir: Left, Tail: true},
	})
	c.Assert(b.Heading, qt.Equals, Left)
	c.Assert(b.Turns, qt.HasLen, 0)
}

func TestAdvanceStraight(t *testing.T) {
	c := qt.New(t)
	b := NewBody(Cell{5, 5}, Left, 3)
	b.Advance()
	c.Assert(cells(b.Segments), qt.DeepEquals, []Cell{{4, 5}, {5, 5}, {6, 5}})
}

func TestTurnPropagatesToTail(t *testing.T) {
	c := qt.New(t)
	b := NewBody(Cell{2, 2}, Left, 3)
	b.Turn(Up)
	c.Assert(b.Turns, qt.DeepEquals, TurnMap{{2, 2}: Up})

	b.Advance()
	c.Assert(cells(b.Segments), qt.DeepEquals, []Cell{{2, 1}, {2, 2}, {3, 2}})
	b.Advance()
	c.Assert(cells(b.Segments), qt.DeepEquals, []Cell{{2, 0}, {2, 1}, {2, 2}})
	c.Assert(b.Turns, qt.HasLen, 1)

	// The tail takes the last pending turn and clears it.
	b.Advance()
	c.Assert(cells(b.Segments), qt.DeepEquals, []Cell{{2, -1}, {2, 0}, {2, 1}})
	for _, s := range b.Segments {
		c.Assert(s.Dir, qt.Equals, Up)
	}
	c.Assert(b.Turns, qt.HasLen, 0)
}

func TestGrow(t *testing.T) {
	c := qt.New(t)
	b := NewBody(Cell{2, 2}, Left, 3)
	b.Grow()
	c.Assert(b.Len(), qt.Equals, 4)
	c.Assert(b.Segments[2].Tail, qt.IsFalse)
	c.Assert(b.Tail(), qt.Equals, Segment{Cell: Cell{5, 2}, Dir: Left, Tail: true})

	b = bodyOf(Cell{2, 0}, Cell{2, 1}, Cell{2, 2})
	b.Grow()
	c.Assert(b.Tail(), qt.Equals, Segment{Cell: Cell{2, 3}, Dir: Up, Tail: true})
	tails := 0
	for _, s := range b.Segments {
		if s.Tail {
			tails++
		}
	}
	c.Assert(tails, qt.Equals, 1)
}

func TestCloneIsIndependent(t *testing.T) {
	c := qt.New(t)
	b := NewBody(Cell{5, 5}, Left, 3)
	b.Turn(Up)
	clone := b.Clone()
	c.Assert(clone, qt.DeepEquals, b)

	clone.Advance()
	clone.Turn(Left)
	clone.Grow()
	c.Assert(cells(b.Segments), qt.DeepEquals, []Cell{{5, 5}, {6, 5}, {7, 5}})
	c.Assert(b.Turns, qt.DeepEquals, TurnMap{{5, 5}: Up})
	c.Assert(b.Heading, qt.Equals, Up)
	c.Assert(b.Len(), qt.Equals, 3)
}

func TestHitsSelf(t *testing.T) {
	c := qt.New(t)
	c.Assert(NewBody(Cell{5, 5}, Left, 3).HitsSelf(), qt.IsFalse)
	b := Body{Segments: []Segment{
		{Cell: Cell{0, 0}},
		{Cell: Cell{1, 0}},
		{Cell: Cell{1, 1}},
		{Cell: Cell{0, 1}},
		{Cell: Cell{0, 0}, Tail: true},
	}}
	c.Assert(b.HitsSelf(), qt.IsTrue)
	c.Assert(b.Occupies(Cell{1, 1}), qt.IsTrue)
	c.Assert(b.Occupies(Cell{2, 1}), qt.IsFalse)
}
