package api

import (
	"bytes"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/cmars/snekpath/logging"
	"github.com/cmars/snekpath/snake"
)

func TestSessionLogsAndResets(t *testing.T) {
	c := qt.New(t)
	var buf bytes.Buffer
	logger, err := logging.New(&buf, "info")
	c.Assert(err, qt.IsNil)

	cfg := snake.ConfigForSize(10)
	cfg.StuckAfter = 2
	games := 0
	sess := NewSession("s1", func() *snake.State {
		games++
		return snake.NewState(cfg, placeAt{X: 1, Y: 5})
	}, logger)
	c.Assert(games, qt.Equals, 1)

	ev, f := sess.Tick()
	c.Assert(ev.Signal, qt.Equals, snake.SignalNone)
	c.Assert(f.TotalMoves, qt.Equals, 1)

	ev, f = sess.Tick()
	c.Assert(ev.Signal, qt.Equals, snake.SignalStuck)
	c.Assert(games, qt.Equals, 2)
	c.Assert(f.Resets, qt.Equals, 1)
	c.Assert(f.TotalMoves, qt.Equals, 0)
	c.Assert(buf.String(), qt.Contains, `msg="snake stuck, retrying"`)
	c.Assert(buf.String(), qt.Contains, "session=s1")
}

func TestSessionPlacementRejected(t *testing.T) {
	c := qt.New(t)
	cfg := snake.ConfigForSize(10)
	cfg.ManualTarget = false
	sess := NewSession("s2", func() *snake.State {
		return snake.NewState(cfg, placeAt{X: 1, Y: 5})
	}, logging.Nop())

	ok, err := sess.Input(InputRequest{Kind: "place", At: &Point{X: 0, Y: 0}})
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsFalse)
	c.Assert(sess.Frame().Target, qt.Equals, Target{X: 1, Y: 5})
}
