package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/rerender/pkg/app"
	"github.com/vango-dev/rerender/pkg/metrics"
	"github.com/vango-dev/rerender/pkg/render"
	"github.com/vango-dev/rerender/pkg/router"
)

// Route paths.
const (
	PathWebSocket = "/_rerender/ws"
	PathClient    = render.DefaultClientScript
	PathHealth    = "/healthz"
)

// PageTitle is the document title of the shell.
const PageTitle = "Re-render Lab"

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics records into m and serves gatherer at the metrics path.
func WithMetrics(m *metrics.Metrics, gatherer prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = m
		s.gatherer = gatherer
	}
}

// WithTracer starts spans for session events.
func WithTracer(t *metrics.Tracer) Option {
	return func(s *Server) {
		s.tracer = t
	}
}

// Server serves the shell, the thin client and the session sockets.
type Server struct {
	config   *ServerConfig
	router   chi.Router
	upgrader websocket.Upgrader
	sessions *SessionManager
	logger   *slog.Logger
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	tracer   *metrics.Tracer

	mu         sync.Mutex
	httpServer *http.Server
}

// New creates a server. A nil config uses the defaults.
func New(config *ServerConfig, opts ...Option) *Server {
	if config == nil {
		config = DefaultServerConfig()
	}
	config = config.withDefaults()

	s := &Server{
		config: config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		sessions: NewSessionManager(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "server")
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handlePage)
	r.Get(PathWebSocket, s.HandleWebSocket)
	r.Get(PathClient, s.serveClient)
	r.Head(PathClient, s.serveClient)
	r.Get(PathHealth, s.handleHealth)
	if s.gatherer != nil {
		r.Handle(s.config.MetricsPath, promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handlePage serves the shell. The fragment never reaches the server, so
// the shell carries the Overview and the client's hello selects the view.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	a := app.New(router.NewMemorySource(""), app.WithLogger(s.logger))
	defer a.Close()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")

	renderer := render.NewRenderer(render.RendererConfig{Pretty: s.config.Pretty})
	err := renderer.RenderPage(w, render.PageData{
		Body:   a.Render(),
		Title:  PageTitle,
		Styles: []string{styleCSS},
	})
	if err != nil {
		s.logger.Error("page render failed",
			"request_id", middleware.GetReqID(r.Context()),
			"error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

// HandleWebSocket upgrades the request and starts a session.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader has already written the HTTP error.
		s.logger.Warn("websocket upgrade failed",
			"request_id", middleware.GetReqID(r.Context()),
			"error", err)
		s.metrics.RecordWebSocketError("upgrade")
		return
	}

	session := newSession(conn, s.config.Session, s.config.Pretty, s.logger)
	session.metrics = s.metrics
	session.tracer = s.tracer
	session.onClose = func(sess *Session) {
		if s.sessions.Remove(sess.ID) {
			s.metrics.SessionClosed()
		}
	}

	s.sessions.Add(session)
	s.metrics.SessionOpened()
	s.logger.Info("session opened",
		"session_id", session.ID,
		"remote", r.RemoteAddr,
		"request_id", middleware.GetReqID(r.Context()))

	session.Start()
}

// Run listens on the configured address and serves until ctx is done,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.mu.Lock()
	s.httpServer = srv
	s.mu.Unlock()

	s.logger.Info("listening", "address", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	}
}

// Shutdown closes every session, then the HTTP server. Hijacked WebSocket
// connections are not tracked by http.Server, so sessions go first.
func (s *Server) Shutdown(ctx context.Context) error {
	s.sessions.Shutdown()

	s.mu.Lock()
	srv := s.httpServer
	s.mu.Unlock()

	if srv != nil {
		if err := srv.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}
	s.logger.Info("server shutdown complete")
	return nil
}

// Sessions returns the session manager.
func (s *Server) Sessions() *SessionManager {
	return s.sessions
}

// Config returns the effective configuration.
func (s *Server) Config() *ServerConfig {
	return s.config
}
