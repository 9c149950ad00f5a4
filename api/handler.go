package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/cmars/snekpath/random"
	"github.com/cmars/snekpath/snake"
)

const (
	defaultStreamInterval = 100 * time.Millisecond
	minStreamInterval     = 10 * time.Millisecond
)

// Router serves games played with cfg. Each session gets its own target
// placer so sessions never share random state.
func Router(cfg snake.Config, logger log.Logger) http.Handler {
	return NewRouter(func() func() *snake.State {
		placer := random.New(cfg.Seed)
		return func() *snake.State {
			return snake.NewState(cfg, placer)
		}
	}, cfg, logger)
}

// NewRouter is Router with a custom game factory. newGames is called once per
// session and returns the factory that session resets from.
func NewRouter(newGames func() func() *snake.State, cfg snake.Config, logger log.Logger) http.Handler {
	r := chi.NewRouter()
	h := &handler{
		cfg:      cfg,
		newGames: newGames,
		logger:   logger,
		sessions: map[string]*Session{},
	}
	r.Get("/", h.Info)
	r.Post("/start", h.Start)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Frame)
		r.Post("/tick", h.Tick)
		r.Post("/input", h.Input)
		r.Post("/end", h.End)
		r.Get("/stream", h.Stream)
	})
	return r
}

type handler struct {
	cfg      snake.Config
	newGames func() func() *snake.State
	logger   log.Logger
	upgrader websocket.Upgrader

	mu       sync.RWMutex
	sessions map[string]*Session
}

func (h *handler) Info(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, &InfoResponse{
		APIVersion: "1",
		Author:     "cmars",
		Size:       h.cfg.Size,
		Manual:     h.cfg.ManualTarget,
	})
}

func (h *handler) Start(w http.ResponseWriter, r *http.Request) {
	id := uuid.New().String()
	sess := NewSession(id, h.newGames(), h.logger)
	h.mu.Lock()
	h.sessions[id] = sess
	h.mu.Unlock()

	level.Info(h.logger).Log("msg", "session started", "session", id)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	h.encode(w, sess.Frame())
}

func (h *handler) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	id := chi.URLParam(r, "id")
	h.mu.RLock()
	sess, ok := h.sessions[id]
	h.mu.RUnlock()
	if !ok {
		http.Error(w, "game not started", http.StatusNotFound)
	}
	return sess, ok
}

func (h *handler) Frame(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, sess.Frame())
}

func (h *handler) Tick(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	ev, frame := sess.Tick()
	h.writeJSON(w, &TickResponse{Event: newEvent(ev), Frame: frame})
}

func (h *handler) Input(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var req InputRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		level.Warn(h.logger).Log("msg", "failed to decode request", "err", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	accepted, err := sess.Input(req)
	if err != nil {
		level.Warn(h.logger).Log("msg", "rejected input", "session", sess.ID, "err", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	h.writeJSON(w, &InputResponse{Accepted: accepted, Frame: sess.Frame()})
}

func (h *handler) End(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.mu.Lock()
	_, ok := h.sessions[id]
	delete(h.sessions, id)
	h.mu.Unlock()
	if !ok {
		http.Error(w, "game not started", http.StatusNotFound)
		return
	}
	level.Info(h.logger).Log("msg", "session ended", "session", id)
	w.WriteHeader(http.StatusOK)
}

// Stream ticks the session on a timer and pushes every tick over a
// websocket. Input requests may be sent back over the same socket.
func (h *handler) Stream(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	interval := defaultStreamInterval
	if s := r.URL.Query().Get("interval"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil || d < minStreamInterval {
			http.Error(w, "bad interval", http.StatusBadRequest)
			return
		}
		interval = d
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		level.Warn(h.logger).Log("msg", "websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var req InputRequest
			if err := conn.ReadJSON(&req); err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) && !errors.Is(err, io.EOF) {
					level.Debug(h.logger).Log("msg", "stream read ended", "session", sess.ID, "err", err)
				}
				return
			}
			if _, err := sess.Input(req); err != nil {
				level.Warn(h.logger).Log("msg", "rejected input", "session", sess.ID, "err", err)
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-r.Context().Done():
			return
		case <-done:
			return
		case <-ticker.C:
			ev, frame := sess.Tick()
			conn.SetWriteDeadline(time.Now().Add(interval * 10))
			if err := conn.WriteJSON(&TickResponse{Event: newEvent(ev), Frame: frame}); err != nil {
				level.Debug(h.logger).Log("msg", "stream write failed", "session", sess.ID, "err", err)
				return
			}
		}
	}
}

func (h *handler) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	h.encode(w, v)
}

func (h *handler) encode(w http.ResponseWriter, v interface{}) {
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		level.Error(h.logger).Log("msg", "failed to write response", "err", err)
	}
}
