package web

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	// Frames queued per connection before it is dropped.
	sendBuffer = 16
)

//go:embed static/index.html
var indexHTML []byte

// Server serves the browser client, the WebSocket endpoint and run history.
type Server struct {
	addr     string
	cfg      config.T2048Config
	store    *storage.Store
	logger   *log.Logger
	upgrader websocket.Upgrader
	router   chi.Router
	seed     func() int64
}

// Option configures a Server.
type Option func(*Server)

// WithSeedFunc sets the seed source for new boards.
func WithSeedFunc(f func() int64) Option {
	return func(s *Server) {
		s.seed = f
	}
}

// NewServer creates a server. store may be nil; runs are then not recorded.
func NewServer(addr string, cfg config.T2048Config, store *storage.Store, logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "t2048-web",
		})
	}

	s := &Server{
		addr:   addr,
		cfg:    cfg,
		store:  store,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		seed: func() int64 { return time.Now().UnixNano() },
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Get("/runs", s.handleRuns)
	r.Get("/ws", s.handleWS)

	s.router = r
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "address", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("web: http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// requestLogger logs plain HTTP requests. WebSocket lifetimes are logged
// by the connection itself.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ws" {
			next.ServeHTTP(w, r)
			return
		}
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML) //nolint:errcheck // client went away
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRuns lists stored runs: /runs?best=1&limit=20.
func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		respondJSON(w, http.StatusServiceUnavailable, ErrorMessage{Type: MsgError, Error: "run history disabled"})
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	var runs []storage.Run
	var err error
	if best, _ := strconv.ParseBool(r.URL.Query().Get("best")); best {
		runs, err = s.store.BestRuns(t2048.GameID, limit)
	} else {
		runs, err = s.store.RecentRuns(t2048.GameID, limit)
	}
	if err != nil {
		s.logger.Error("could not load runs", "error", err)
		respondJSON(w, http.StatusInternalServerError, ErrorMessage{Type: MsgError, Error: "could not load runs"})
		return
	}

	if runs == nil {
		runs = []storage.Run{}
	}
	respondJSON(w, http.StatusOK, runs)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	c := &client{
		server: s,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		sess:   newSession(uuid.NewString(), s.cfg, s.seed()),
	}
	s.logger.Info("session started", "session", c.sess.id, "remote", r.RemoteAddr)

	go c.writePump()
	go c.readPump()
}

// saveRun stores a finished run. Failures are logged only.
func (s *Server) saveRun(run storage.Run) {
	if s.store == nil {
		return
	}
	if _, err := s.store.SaveRun(run); err != nil {
		s.logger.Warn("could not save run", "session", run.SessionID, "error", err)
		return
	}
	s.logger.Info("run saved", "session", run.SessionID, "max_tile", run.MaxTile, "moves", run.Moves, "reason", run.EndReason)
}

// respondJSON writes a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data) //nolint:errcheck // client went away
}
