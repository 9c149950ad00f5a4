package api

import "github.com/cmars/snekpath/snake"

// Everything in this file is wire format for renderers and input sources.

type InfoResponse struct {
	APIVersion string `json:"apiversion"`
	Author     string `json:"author,omitempty"`
	Version    string `json:"version,omitempty"`
	Size       int    `json:"size"`
	Manual     bool   `json:"manual"`
}

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Segment struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Dir  string `json:"dir"`
	Tail bool   `json:"tail,omitempty"`
}

type Target struct {
	X        int  `json:"x"`
	Y        int  `json:"y"`
	Consumed bool `json:"consumed,omitempty"`
}

// Frame is one render of a game.
type Frame struct {
	ID                 string    `json:"id"`
	Size               int       `json:"size"`
	Body               []Segment `json:"body"`
	Target             Target    `json:"target"`
	Cursor             Point     `json:"cursor"`
	Manual             bool      `json:"manual"`
	Distance           int       `json:"distance"`
	Route              string    `json:"route"`
	Path               []Point   `json:"path"`
	Score              int       `json:"score"`
	MovesWithoutEating int       `json:"movesWithoutEating"`
	TotalMoves         int       `json:"totalMoves"`
	Resets             int       `json:"resets"`
}

type Event struct {
	Signal string `json:"signal"`
	Cause  string `json:"cause,omitempty"`
	Ate    bool   `json:"ate,omitempty"`
	Route  string `json:"route"`
	Score  int    `json:"score"`
	Moves  int    `json:"moves"`
}

type TickResponse struct {
	Event Event `json:"event"`
	Frame Frame `json:"frame"`
}

// InputRequest is a request from an input source. Kind is one of "steer",
// "cursor", "place" or "reset". Direction applies to steer and cursor; At
// optionally places the target somewhere other than the cursor.
type InputRequest struct {
	Kind      string `json:"kind"`
	Direction string `json:"direction,omitempty"`
	At        *Point `json:"at,omitempty"`
}

type InputResponse struct {
	Accepted bool  `json:"accepted"`
	Frame    Frame `json:"frame"`
}

func newFrame(id string, resets int, snap snake.Snapshot) Frame {
	f := Frame{
		ID:                 id,
		Size:               snap.Size,
		Body:               make([]Segment, len(snap.Segments)),
		Target:             Target{X: snap.Target.Cell.X, Y: snap.Target.Cell.Y, Consumed: snap.Target.Consumed},
		Cursor:             Point{X: snap.Cursor.X, Y: snap.Cursor.Y},
		Manual:             snap.ManualTarget,
		Distance:           snap.Distance,
		Route:              snap.Plan.Route.String(),
		Path:               make([]Point, len(snap.Plan.Path)),
		Score:              snap.Score,
		MovesWithoutEating: snap.MovesWithoutEating,
		TotalMoves:         snap.TotalMoves,
		Resets:             resets,
	}
	for i, s := range snap.Segments {
		f.Body[i] = Segment{X: s.X, Y: s.Y, Dir: s.Dir.String(), Tail: s.Tail}
	}
	for i, c := range snap.Plan.Path {
		f.Path[i] = Point{X: c.X, Y: c.Y}
	}
	return f
}

func newEvent(ev snake.Event) Event {
	return Event{
		Signal: ev.Signal.String(),
		Cause:  ev.Cause,
		Ate:    ev.Ate,
		Route:  ev.Route.String(),
		Score:  ev.Score,
		Moves:  ev.Moves,
	}
}
