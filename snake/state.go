package snake

import (
	"errors"
	"fmt"
)

type Config struct {
	Size          int
	InitialLength int
	// MaxScore ends the game as a win once reached.
	MaxScore int
	// StuckAfter ends the game after this many ticks without eating.
	StuckAfter int
	// ManualTarget leaves the target where it is after eating until a new one
	// is placed with the cursor. Otherwise the Placer picks a new one.
	ManualTarget bool
	// Seed feeds the random target placer. Zero seeds from crypto/rand.
	Seed int64
}

func DefaultConfig() Config {
	return ConfigForSize(20)
}

// ConfigForSize returns the default configuration scaled to a size×size grid.
func ConfigForSize(size int) Config {
	const length = 3
	return Config{
		Size:          size,
		InitialLength: length,
		MaxScore:      size*size - length,
		StuckAfter:    size * size * 2,
		ManualTarget:  true,
	}
}

var ErrInvalidConfig = errors.New("invalid config")

func (c Config) Validate() error {
	switch {
	case c.Size < 2:
		return fmt.Errorf("%w: size %d is smaller than 2", ErrInvalidConfig, c.Size)
	case c.InitialLength < 1:
		return fmt.Errorf("%w: initial length %d", ErrInvalidConfig, c.InitialLength)
	case c.Size/2+c.InitialLength > c.Size:
		return fmt.Errorf("%w: initial length %d does not fit a %dx%d grid", ErrInvalidConfig, c.InitialLength, c.Size, c.Size)
	case c.MaxScore < 1:
		return fmt.Errorf("%w: max score %d", ErrInvalidConfig, c.MaxScore)
	case c.StuckAfter < 1:
		return fmt.Errorf("%w: stuck threshold %d", ErrInvalidConfig, c.StuckAfter)
	}
	return nil
}

// Placer chooses where a new target goes. ok is false when there is no room.
type Placer interface {
	Place(g Grid, b Body) (c Cell, ok bool)
}

// Target is the cell the snake is after. Consumed is set once the snake
// reaches it and cleared when a new target is placed.
type Target struct {
	Cell     Cell
	Consumed bool
}

type Signal int

const (
	SignalNone Signal = iota
	SignalWin
	SignalDeath
	SignalStuck
)

func (s Signal) String() string {
	switch s {
	case SignalWin:
		return "win"
	case SignalDeath:
		return "death"
	case SignalStuck:
		return "stuck"
	}
	return "none"
}

// Terminal reports whether the game is over and the state should be replaced.
func (s Signal) Terminal() bool {
	return s != SignalNone
}

// Event is what happened on one tick.
type Event struct {
	Signal Signal
	// Cause is "wall" or "self" for deaths.
	Cause string
	Ate   bool
	Route Route
	Score int
	Moves int
}

// State is one game in progress. It is not safe for concurrent use; callers
// run a whole tick, planning and motion, as a unit.
type State struct {
	cfg    Config
	grid   Grid
	placer Placer

	body     Body
	target   Target
	cursor   Cell
	distance int
	plan     Plan

	score              int
	movesWithoutEating int
	totalMoves         int
	over               *Event
}

// NewState starts a fresh game. It is also how a game is reset: callers
// replace their state with a new one rather than rewinding it.
func NewState(cfg Config, placer Placer) *State {
	g := Grid{Size: cfg.Size}
	mid := cfg.Size / 2
	s := &State{
		cfg:    cfg,
		grid:   g,
		placer: placer,
		body:   NewBody(Cell{X: mid, Y: mid}, Left, cfg.InitialLength),
	}
	s.placeNext()
	s.cursor = s.target.Cell
	return s
}

func (s *State) placeNext() {
	if s.placer != nil {
		if c, ok := s.placer.Place(s.grid, s.body); ok {
			s.target = Target{Cell: c}
			return
		}
	}
	s.target = Target{Cell: s.body.Head().Cell, Consumed: true}
}

func (s *State) Config() Config { return s.cfg }
func (s *State) Grid() Grid     { return s.grid }
func (s *State) Body() Body     { return s.body.Clone() }
func (s *State) Target() Target { return s.target }
func (s *State) Score() int     { return s.score }

// Tick plans, moves the snake one cell and reports the outcome. Once a
// terminal event has been returned, further ticks return it again without
// moving.
func (s *State) Tick() Event {
	if s.over != nil {
		return *s.over
	}

	s.plan = PlanRoute(s.grid, s.body, s.target)
	if next, ok := s.plan.Next(); ok {
		s.body.Turn(TurnToward(s.body.Head().Cell, next))
	}
	s.body.Advance()
	s.movesWithoutEating++
	s.totalMoves++

	ev := Event{Route: s.plan.Route}
	head := s.body.Head().Cell
	switch {
	case s.score >= s.cfg.MaxScore:
		ev.Signal = SignalWin
	case !s.grid.InBounds(head):
		ev.Signal, ev.Cause = SignalDeath, "wall"
	case s.body.HitsSelf():
		ev.Signal, ev.Cause = SignalDeath, "self"
	case s.movesWithoutEating >= s.cfg.StuckAfter:
		ev.Signal = SignalStuck
	case head == s.target.Cell && !s.target.Consumed:
		s.eat()
		ev.Ate = true
	}
	ev.Score, ev.Moves = s.score, s.totalMoves
	if ev.Signal.Terminal() {
		s.over = &ev
	}
	return ev
}

func (s *State) eat() {
	s.score++
	s.movesWithoutEating = 0
	s.body.Grow()
	s.target.Consumed = true
	if !s.cfg.ManualTarget {
		s.placeNext()
	}
}

// Steer applies a direction intent from an input source. Reversing onto the
// neck is ignored, though the current heading is still recorded as a turn.
// The planner's own turn on the next tick replaces it whenever it finds a
// route.
func (s *State) Steer(d Direction) {
	if !d.Cardinal() || s.over != nil {
		return
	}
	if s.body.Len() > 1 && d == s.body.Heading.Opposite() {
		d = s.body.Heading
	}
	s.body.Turn(d)
}

// MoveCursor moves the placement cursor one cell, clamped to the grid. It
// only works in manual target mode.
func (s *State) MoveCursor(d Direction) {
	if !s.cfg.ManualTarget || !d.Cardinal() {
		return
	}
	if c := s.cursor.Add(d); s.grid.InBounds(c) {
		s.cursor = c
	}
}

// PlaceTarget moves the target under the cursor.
func (s *State) PlaceTarget() bool {
	return s.PlaceTargetAt(s.cursor)
}

// PlaceTargetAt moves the target to c. Requests outside the grid, onto the
// body, or outside manual mode are ignored and return false.
func (s *State) PlaceTargetAt(c Cell) bool {
	if !s.cfg.ManualTarget || !IsFree(s.grid, s.body.Segments, c) {
		return false
	}
	s.distance = Distance(s.target.Cell, c)
	s.target = Target{Cell: c}
	s.cursor = c
	return true
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	Size               int
	Segments           []Segment
	Target             Target
	Cursor             Cell
	ManualTarget       bool
	Distance           int
	Plan               Plan
	Score              int
	MovesWithoutEating int
	TotalMoves         int
}

func (s *State) Snapshot() Snapshot {
	segs := make([]Segment, s.body.Len())
	copy(segs, s.body.Segments)
	path := make(Path, len(s.plan.Path))
	copy(path, s.plan.Path)
	return Snapshot{
		Size:               s.cfg.Size,
		Segments:           segs,
		Target:             s.target,
		Cursor:             s.cursor,
		ManualTarget:       s.cfg.ManualTarget,
		Distance:           s.distance,
		Plan:               Plan{Route: s.plan.Route, Path: path},
		Score:              s.score,
		MovesWithoutEating: s.movesWithoutEating,
		TotalMoves:         s.totalMoves,
	}
}
