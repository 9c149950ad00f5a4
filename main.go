package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/cmars/snekpath/api"
	"github.com/cmars/snekpath/logging"
	"github.com/cmars/snekpath/random"
	"github.com/cmars/snekpath/snake"
)

func main() {
	addr := flag.String("addr", ":3000", "HTTP listen address")
	size := flag.Int("size", 20, "Grid side length")
	length := flag.Int("length", 3, "Initial snake length")
	maxScore := flag.Int("max-score", 0, "Score that wins the game (0 fills the grid)")
	stuckAfter := flag.Int("stuck-after", 0, "Ticks without eating before the game is reset (0 = 2*size*size)")
	autoTarget := flag.Bool("auto-target", false, "Place a new target at random after each one is eaten")
	seed := flag.Int64("seed", 0, "Target placement seed (0 = random)")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	headless := flag.Bool("headless", false, "Play games without serving HTTP")
	games := flag.Int("games", 1, "Games to play in headless mode")
	flag.Parse()

	logger, err := logging.New(os.Stderr, *logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg := snake.ConfigForSize(*size)
	cfg.InitialLength = *length
	cfg.MaxScore = cfg.Size*cfg.Size - cfg.InitialLength
	if *maxScore > 0 {
		cfg.MaxScore = *maxScore
	}
	if *stuckAfter > 0 {
		cfg.StuckAfter = *stuckAfter
	}
	cfg.ManualTarget = !*autoTarget
	cfg.Seed = *seed
	if err := cfg.Validate(); err != nil {
		level.Error(logger).Log("msg", "invalid configuration", "err", err)
		os.Exit(2)
	}

	if *headless {
		// Nobody is there to place targets by hand.
		cfg.ManualTarget = false
		playHeadless(cfg, *games, logger)
		return
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Mount("/snake", api.Router(cfg, logger))

	level.Info(logger).Log("msg", "listening", "addr", *addr, "size", cfg.Size)
	if err := http.ListenAndServe(*addr, r); err != nil {
		level.Error(logger).Log("msg", "server stopped", "err", err)
		os.Exit(1)
	}
}

func playHeadless(cfg snake.Config, games int, logger log.Logger) {
	placer := random.New(cfg.Seed)
	sess := api.NewSession("headless", func() *snake.State {
		return snake.NewState(cfg, placer)
	}, logger)

	var wins, best, ticks int
	for played := 0; played < games; {
		ev, _ := sess.Tick()
		ticks++
		if !ev.Signal.Terminal() {
			continue
		}
		played++
		if ev.Signal == snake.SignalWin {
			wins++
		}
		if ev.Score > best {
			best = ev.Score
		}
	}
	level.Info(logger).Log("msg", "headless run complete", "games", games, "wins", wins, "best", best, "ticks", ticks)
}
