package api

import (
	"fmt"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/cmars/snekpath/snake"
)

// Session owns one game and swaps in a fresh one whenever it ends. A tick,
// planning and motion together, runs under the session lock.
type Session struct {
	ID string

	newGame func() *snake.State
	logger  log.Logger

	mu     sync.Mutex
	state  *snake.State
	resets int
}

func NewSession(id string, newGame func() *snake.State, logger log.Logger) *Session {
	return &Session{
		ID:      id,
		newGame: newGame,
		logger:  log.With(logger, "session", id),
		state:   newGame(),
	}
}

// Tick advances the game once. If the game ended, the returned frame already
// shows the fresh game that replaced it.
func (s *Session) Tick() (snake.Event, Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ev := s.state.Tick()
	if ev.Ate {
		level.Debug(s.logger).Log("msg", "target reached", "score", ev.Score, "moves", ev.Moves)
	}
	if ev.Signal.Terminal() {
		s.logEnd(ev)
		s.resetLocked()
	}
	return ev, s.frameLocked()
}

func (s *Session) logEnd(ev snake.Event) {
	switch ev.Signal {
	case snake.SignalWin:
		level.Info(s.logger).Log("msg", "snake won", "score", ev.Score, "moves", ev.Moves)
	case snake.SignalDeath:
		level.Info(s.logger).Log("msg", "snake died, retrying", "cause", ev.Cause, "score", ev.Score, "moves", ev.Moves)
	case snake.SignalStuck:
		level.Warn(s.logger).Log("msg", "snake stuck, retrying", "score", ev.Score, "moves", ev.Moves)
	}
}

// Input applies a request from an input source. accepted is false when a
// placement was rejected; err is set only for malformed requests.
func (s *Session) Input(req InputRequest) (accepted bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch req.Kind {
	case "steer", "cursor":
		d, err := snake.ParseDirection(req.Direction)
		if err != nil {
			return false, err
		}
		if req.Kind == "steer" {
			s.state.Steer(d)
		} else {
			s.state.MoveCursor(d)
		}
		return true, nil
	case "place":
		if req.At != nil {
			return s.state.PlaceTargetAt(snake.Cell{X: req.At.X, Y: req.At.Y}), nil
		}
		return s.state.PlaceTarget(), nil
	case "reset":
		level.Info(s.logger).Log("msg", "reset requested")
		s.resetLocked()
		return true, nil
	}
	return false, fmt.Errorf("unknown input kind %q", req.Kind)
}

func (s *Session) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frameLocked()
}

func (s *Session) resetLocked() {
	s.state = s.newGame()
	s.resets++
}

func (s *Session) frameLocked() Frame {
	return newFrame(s.ID, s.resets, s.state.Snapshot())
}
