package server

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vango-dev/rerender/pkg/app"
	"github.com/vango-dev/rerender/pkg/metrics"
	"github.com/vango-dev/rerender/pkg/render"
	"github.com/vango-dev/rerender/pkg/router"
	"github.com/vango-dev/rerender/pkg/vdom"
)

// Session is one browser tab. The read loop decodes and queues, the event
// loop owns the App, and writes are serialized by mu.
type Session struct {
	ID string

	conn    *websocket.Conn
	config  SessionConfig
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  *metrics.Tracer

	// Owned by the event loop.
	app      *app.App
	source   *wsSource
	renderer *render.Renderer
	handlers map[string]vdom.Handler
	lastHTML string

	events chan Message
	done   chan struct{}
	closed atomic.Bool
	mu     sync.Mutex

	eventCount atomic.Uint64
	onClose    func(*Session)
}

func newSession(conn *websocket.Conn, config SessionConfig, pretty bool, logger *slog.Logger) *Session {
	id := uuid.NewString()
	s := &Session{
		ID:       id,
		conn:     conn,
		config:   config,
		logger:   logger.With("session_id", id),
		renderer: render.NewRenderer(render.RendererConfig{Pretty: pretty}),
		handlers: make(map[string]vdom.Handler),
		events:   make(chan Message, config.MaxEventQueue),
		done:     make(chan struct{}),
	}
	s.source = newWSSource(s.send)
	return s
}

// Start starts the session loops.
func (s *Session) Start() {
	go s.ReadLoop()
	go s.WriteLoop()
	go s.EventLoop()
}

// ReadLoop reads frames until the connection fails, queueing each message
// for the event loop.
func (s *Session) ReadLoop() {
	defer s.Close()

	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
	})

	for {
		s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))

		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
				s.metrics.RecordWebSocketError("read")
			}
			return
		}

		msg, err := DecodeMessage(data)
		if err != nil {
			s.logger.Warn("decode error", "error", err)
			s.metrics.RecordEvent("invalid", 0, err)
			s.send(errorMessage(err))
			continue
		}

		if err := s.QueueEvent(msg); err != nil {
			s.send(errorMessage(err))
		}
	}
}

// WriteLoop sends heartbeat pings until the session closes.
func (s *Session) WriteLoop() {
	ticker := time.NewTicker(s.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.ping(); err != nil {
				s.metrics.RecordWebSocketError("ping")
				s.Close()
				return
			}
		case <-s.done:
			return
		}
	}
}

// EventLoop processes queued messages. The App lives and dies here.
func (s *Session) EventLoop() {
	defer func() {
		if s.app != nil {
			s.app.Close()
		}
	}()

	for {
		select {
		case msg := <-s.events:
			s.handleMessage(msg)
		case <-s.done:
			return
		}
	}
}

// QueueEvent queues a message for the event loop without blocking.
func (s *Session) QueueEvent(msg Message) error {
	if s.closed.Load() {
		return ErrSessionClosed
	}
	select {
	case s.events <- msg:
		return nil
	default:
		s.logger.Warn("event queue full, dropping event", "type", msg.T, "hid", msg.HID)
		s.metrics.RecordEvent(msg.T, 0, ErrEventQueueFull)
		return ErrEventQueueFull
	}
}

// handleMessage processes one message, with a span and metrics around it.
func (s *Session) handleMessage(msg Message) {
	s.eventCount.Add(1)
	start := time.Now()
	_, span := s.tracer.StartEvent(context.Background(), s.ID, msg.T, msg.HID)

	err := s.process(msg)

	metrics.End(span, err)
	s.metrics.RecordEvent(msg.T, time.Since(start), err)
	if err != nil {
		s.logger.Warn("event failed", "type", msg.T, "hid", msg.HID, "error", err)
		s.send(errorMessage(err))
	}
}

func (s *Session) process(msg Message) error {
	switch msg.T {
	case MsgHello, MsgFragment:
		s.apply(msg.Fragment)
		return s.render()

	case MsgClick:
		handler, ok := s.handlers[msg.HID+"_onclick"]
		if !ok {
			return NewSessionError(s.ID, "click "+msg.HID, ErrHandlerNotFound)
		}
		herr := s.safeExecute(msg.HID, handler)
		if err := s.render(); err != nil {
			return err
		}
		return herr

	case MsgPing:
		return s.send(Message{T: MsgPong})
	}
	return NewSessionError(s.ID, "process", ErrUnknownMessage)
}

// apply feeds a client fragment to the router, creating the App on the
// first one so the initial normalization sees the real address.
func (s *Session) apply(fragment string) {
	if s.app != nil {
		s.source.receive(fragment)
		return
	}
	s.source.fragment = fragment
	s.app = app.New(s.source,
		app.WithLogger(s.logger),
		app.WithRenderHook(s.metrics.RecordRender),
		app.WithViewHook(s.viewChanged),
	)
}

func (s *Session) viewChanged(from, to router.Location) {
	s.metrics.RecordNavigation(from, to)
	_, span := s.tracer.StartNavigation(context.Background(), s.ID, string(from), string(to))
	metrics.End(span, nil)
}

// safeExecute runs a click handler with panic recovery.
func (s *Session) safeExecute(hid string, handler vdom.Handler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			s.logger.Error("handler panic", "panic", r, "hid", hid, "stack", string(stack))
			err = &HandlerError{SessionID: s.ID, HID: hid, Panic: r, Stack: stack}
		}
	}()

	s.app.Dispatch(handler.Call)
	return nil
}

// render pushes the current view if it changed since the last push.
func (s *Session) render() error {
	html, err := s.renderer.RenderToString(s.app.Render())
	if err != nil {
		return NewSessionError(s.ID, "render", err)
	}
	s.handlers = s.renderer.Handlers()
	if html == s.lastHTML {
		return nil
	}
	s.lastHTML = html
	return s.send(Message{T: MsgRender, HTML: html, Location: string(s.app.Location())})
}

// send writes one message. A failed write closes the session.
func (s *Session) send(msg Message) error {
	s.mu.Lock()
	if s.closed.Load() {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	err := s.conn.WriteJSON(msg)
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("write error", "type", msg.T, "error", err)
		s.metrics.RecordWebSocketError("write")
		s.Close()
		return NewSessionError(s.ID, "write", err)
	}
	return nil
}

func (s *Session) ping() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed.Load() {
		return ErrSessionClosed
	}
	return s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(s.config.WriteTimeout))
}

// Close closes the session. It is safe to call more than once and from any
// goroutine.
func (s *Session) Close() {
	if s.closed.Swap(true) {
		return
	}
	close(s.done)

	s.mu.Lock()
	s.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second),
	)
	s.conn.Close()
	s.mu.Unlock()

	if s.onClose != nil {
		s.onClose(s)
	}
	s.logger.Info("session closed", "events", s.eventCount.Load())
}

// IsClosed returns whether the session is closed.
func (s *Session) IsClosed() bool {
	return s.closed.Load()
}

// Done returns a channel that's closed when the session is done.
func (s *Session) Done() <-chan struct{} {
	return s.done
}
