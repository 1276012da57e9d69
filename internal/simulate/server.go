package simulate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/jask/scenescope/internal/bridge"
)

// Config holds configuration for the simulated target.
type Config struct {
	Addr     string
	Interval time.Duration
	Seed     uint64
	Logger   *slog.Logger
}

// Server exposes a World on /bridge.
type Server struct {
	cfg      Config
	world    *World
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

func NewServer(cfg Config) *Server {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		cfg:    cfg,
		world:  NewWorld(cfg.Seed),
		logger: logger.With("component", "simulate"),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (s *Server) World() *World { return s.world }

// Handler returns the router: the websocket endpoint and a health check.
func (s *Server) Handler() http.Handler {
	r := chi.NewMux()
	r.Use(middleware.RequestID, middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/bridge", s.handleBridge)
	return r
}

// Serve listens on cfg.Addr and blocks until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	return s.ServeListener(ctx, ln)
}

func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	s.logger.Info("serving simulated target", "addr", "ws://"+ln.Addr().String()+"/bridge")

	eg, egctx := errgroup.WithContext(ctx)
	srv := &http.Server{
		Handler: s.Handler(),
		BaseContext: func(net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Debug("shutting down simulated target")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

func (s *Server) handleBridge(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "error", err)
		return
	}
	sess := &session{ws: ws, world: s.world, logger: s.logger.With("request_id", middleware.GetReqID(r.Context()))}
	sess.run(r.Context(), s.cfg.Interval)
}

// session is one connected inspector.
type session struct {
	ws     *websocket.Conn
	world  *World
	logger *slog.Logger
	mu     sync.Mutex
}

func (s *session) run(ctx context.Context, interval time.Duration) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.ws.Close()
	stop := context.AfterFunc(ctx, func() {
		s.mu.Lock()
		_ = s.ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"), time.Now().Add(time.Second))
		s.mu.Unlock()
		_ = s.ws.Close()
	})
	defer stop()

	s.logger.Info("inspector attached")
	if err := s.send(s.world.Snapshot()...); err != nil {
		return
	}
	go s.tick(ctx, cancel, interval)

	for {
		_, data, err := s.ws.ReadMessage()
		if err != nil {
			s.logger.Info("inspector detached", "error", err)
			return
		}
		cmd, err := bridge.Decode(data)
		if err != nil {
			s.reportError(err)
			continue
		}
		if err := s.handle(cmd); err != nil {
			return
		}
	}
}

func (s *session) handle(cmd bridge.Message) error {
	switch cmd.Type {
	case bridge.CommandReload:
		s.logger.Debug("reload requested")
		return s.send(s.world.Snapshot()...)
	case bridge.CommandUpdateProperty:
		msg, err := s.world.SetProperty(cmd.UUID, cmd.Property, cmd.Value)
		if err != nil {
			return s.reportError(err)
		}
		return s.send(msg)
	default:
		return s.reportError(fmt.Errorf("unsupported command %q", cmd.Type))
	}
}

func (s *session) tick(ctx context.Context, cancel context.CancelFunc, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := s.send(s.world.Tick()...); err != nil {
				cancel()
				return
			}
		}
	}
}

func (s *session) reportError(err error) error {
	s.logger.Warn("command failed", "error", err)
	return s.send(bridge.Message{Type: bridge.KindError, Message: err.Error()})
}

func (s *session) send(msgs ...bridge.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range msgs {
		data, err := bridge.Encode(m)
		if err != nil {
			return err
		}
		if err := s.ws.WriteMessage(websocket.TextMessage, data); err != nil {
			return err
		}
	}
	return nil
}
