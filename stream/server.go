package stream

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/maze"
)

// Server hands out one maze per websocket connection.
type Server struct {
	cfg    config.Config
	hub    *Hub
	logger *log.Logger
}

// NewServer returns a Server whose mazes default to cfg's size and seed.
// A nil logger discards output.
func NewServer(cfg config.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return &Server{cfg: cfg, hub: NewHub(), logger: logger}
}

// Hub returns the spectator hub.
func (s *Server) Hub() *Hub { return s.hub }

// Handler returns the HTTP routes:
//
//	GET /healthz  liveness probe
//	GET /ws       generate and solve a maze (?rows=&columns=&seed=)
//	GET /watch    receive every session's events
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/ws", s.handleMaze)
	r.Get("/watch", s.handleWatch)

	return r
}

// ListenAndServe serves Handler on cfg.Server.Addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{Addr: s.cfg.Server.Addr, Handler: s.Handler()}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("stream server listening", "addr", s.cfg.Server.Addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		sctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		_ = srv.Shutdown(sctx)
		return ctx.Err()
	}
}

func (s *Server) handleMaze(w http.ResponseWriter, r *http.Request) {
	rows := config.Clamp(intParam(r, "rows", s.cfg.Rows))
	cols := config.Clamp(intParam(r, "columns", s.cfg.Columns))
	seed := s.cfg.Seed
	if v, err := strconv.ParseUint(r.URL.Query().Get("seed"), 10, 64); err == nil {
		seed = v
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		s.logger.Warn("websocket accept failed", "err", err)
		return
	}
	defer conn.Close(websocket.StatusInternalError, "")

	session := uuid.New()
	logger := s.logger.With("session", session)
	logger.Info("session started", "rows", rows, "columns", cols)

	ctx := r.Context()
	em := NewEmitter(ctx, session, s.cfg.SquareSize, func(ctx context.Context, msg []byte) error {
		wctx, cancel := context.WithTimeout(ctx, writeTimeout)
		defer cancel()
		if err := conn.Write(wctx, websocket.MessageText, msg); err != nil {
			return err
		}
		s.hub.Broadcast(ctx, msg)
		return nil
	})

	opts := []maze.Option{maze.WithObserver(em), maze.WithLogger(logger)}
	if seed != 0 {
		opts = append(opts, maze.WithSeed(seed))
	}
	gen := maze.New(opts...)
	if err := gen.Initialize(rows, cols); err != nil {
		logger.Error("initialize", "err", err)
		return
	}
	if err := gen.Generate(); err != nil {
		logger.Error("generate", "err", err)
		return
	}
	path, err := gen.Solve()
	if err != nil {
		logger.Error("solve", "err", err)
		return
	}
	em.Emit(Event{Type: TypeDone, Rows: rows, Columns: cols, Cells: len(path)})
	if err := em.Err(); err != nil {
		logger.Warn("session aborted", "err", err)
		return
	}

	logger.Info("session finished", "cells", len(path))
	_ = conn.Close(websocket.StatusNormalClosure, "")
}

func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		s.logger.Warn("websocket accept failed", "err", err)
		return
	}
	s.hub.Add(conn)
	defer s.hub.Remove(conn)
	s.logger.Debug("spectator joined", "spectators", s.hub.Len())

	// Block until the spectator goes away; incoming messages are discarded.
	ctx := conn.CloseRead(r.Context())
	<-ctx.Done()
}

func intParam(r *http.Request, name string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return def
	}

	return v
}
