package server

import (
	"net/http"
	"time"
)

// ServerConfig configures a Server.
type ServerConfig struct {
	// Address is the listen address used by Run.
	Address string

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	// ReadBufferSize and WriteBufferSize size the WebSocket buffers.
	ReadBufferSize  int
	WriteBufferSize int

	// CheckOrigin validates the WebSocket Origin header. Nil accepts
	// same-origin requests only.
	CheckOrigin func(r *http.Request) bool

	// MetricsPath is where metrics are served when a gatherer is set.
	MetricsPath string

	// Session configures every session.
	Session SessionConfig

	// Pretty indents pushed HTML.
	Pretty bool
}

// SessionConfig configures a Session.
type SessionConfig struct {
	// MaxEventQueue is the capacity of the event queue.
	MaxEventQueue int

	// ReadTimeout closes a session that sent nothing for this long.
	ReadTimeout time.Duration

	// WriteTimeout bounds each frame write.
	WriteTimeout time.Duration

	// HeartbeatInterval is the WebSocket ping period.
	HeartbeatInterval time.Duration
}

// DefaultServerConfig returns the default configuration.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Address:         ":8080",
		ShutdownTimeout: 10 * time.Second,
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		MetricsPath:     "/metrics",
		Session:         DefaultSessionConfig(),
	}
}

// DefaultSessionConfig returns the default session configuration.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		MaxEventQueue:     64,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      10 * time.Second,
		HeartbeatInterval: 30 * time.Second,
	}
}

// withDefaults fills zero values from the defaults.
func (c *ServerConfig) withDefaults() *ServerConfig {
	d := DefaultServerConfig()
	out := *c
	if out.Address == "" {
		out.Address = d.Address
	}
	if out.ShutdownTimeout <= 0 {
		out.ShutdownTimeout = d.ShutdownTimeout
	}
	if out.ReadBufferSize <= 0 {
		out.ReadBufferSize = d.ReadBufferSize
	}
	if out.WriteBufferSize <= 0 {
		out.WriteBufferSize = d.WriteBufferSize
	}
	if out.MetricsPath == "" {
		out.MetricsPath = d.MetricsPath
	}
	s := &out.Session
	if s.MaxEventQueue <= 0 {
		s.MaxEventQueue = d.Session.MaxEventQueue
	}
	if s.ReadTimeout <= 0 {
		s.ReadTimeout = d.Session.ReadTimeout
	}
	if s.WriteTimeout <= 0 {
		s.WriteTimeout = d.Session.WriteTimeout
	}
	if s.HeartbeatInterval <= 0 {
		s.HeartbeatInterval = d.Session.HeartbeatInterval
	}
	return &out
}
