package config

import (
	stderrors "errors"
	"io"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/vango-dev/rerender/internal/errors"
)

const (
	// ConfigName is the base name of the configuration file.
	ConfigName = "rerender"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "RERENDER"

	// DefaultAddress is the default listen address.
	DefaultAddress = ":8080"
)

// Config is the complete host configuration.
type Config struct {
	Server  ServerConfig
	Session SessionConfig
	Metrics MetricsConfig
	Tracing TracingConfig
	Log     LogConfig
	Render  RenderConfig

	// file is the configuration file that was read, if any.
	file string
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	// Address is the listen address (host:port).
	Address string

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	// ReadBufferSize and WriteBufferSize size the WebSocket buffers.
	ReadBufferSize  int
	WriteBufferSize int
}

// SessionConfig configures per-tab sessions.
type SessionConfig struct {
	// MaxEventQueue is the number of client events buffered per session.
	MaxEventQueue int

	// ReadTimeout closes a session that sent nothing, pings included.
	ReadTimeout time.Duration

	// WriteTimeout bounds each frame write.
	WriteTimeout time.Duration

	// HeartbeatInterval is the server ping period.
	HeartbeatInterval time.Duration
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled   bool
	Path      string
	Namespace string
}

// TracingConfig configures OpenTelemetry spans.
type TracingConfig struct {
	// Enabled starts a span per session event and navigation. Spans go to
	// the global provider, which the binary leaves as the OpenTelemetry
	// no-op default; a build that exports spans must call
	// otel.SetTracerProvider before serve runs.
	Enabled bool
}

// LogConfig configures the slog handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string

	// Format is text or json.
	Format string
}

// RenderConfig configures HTML output.
type RenderConfig struct {
	// Pretty indents the pushed HTML.
	Pretty bool
}

// setDefaults registers every key, which also makes each key visible to
// AutomaticEnv during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", DefaultAddress)
	v.SetDefault("server.shutdownTimeout", 10*time.Second)
	v.SetDefault("server.readBufferSize", 4096)
	v.SetDefault("server.writeBufferSize", 4096)

	v.SetDefault("session.maxEventQueue", 64)
	v.SetDefault("session.readTimeout", 60*time.Second)
	v.SetDefault("session.writeTimeout", 10*time.Second)
	v.SetDefault("session.heartbeatInterval", 30*time.Second)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("metrics.namespace", "rerender")

	v.SetDefault("tracing.enabled", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("render.pretty", false)
}

// Default returns the built-in configuration.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	// Defaults always decode.
	_ = v.Unmarshal(&c)
	return &c
}

// Load reads the configuration. An empty path looks for rerender.json in
// the working directory and tolerates its absence; an explicit path must
// exist. The result is validated.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("json")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !stderrors.As(err, &notFound) {
			return nil, errors.New("R040").WithKey(path).Wrap(err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.New("R040").Wrap(err)
	}
	c.file = v.ConfigFileUsed()

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// File returns the configuration file that was read, or "".
func (c *Config) File() string {
	return c.file
}

// Validate checks the configuration and returns the first problem as a
// coded error.
func (c *Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.Server.Address); err != nil {
		return errors.New("R041").
			WithKey("server.address").
			WithDetailf("%q: %v", c.Server.Address, err).
			WithSuggestion(`Use host:port, for example ":8080" or "127.0.0.1:8080"`)
	}

	durations := []struct {
		key string
		d   time.Duration
	}{
		{"server.shutdownTimeout", c.Server.ShutdownTimeout},
		{"session.readTimeout", c.Session.ReadTimeout},
		{"session.writeTimeout", c.Session.WriteTimeout},
		{"session.heartbeatInterval", c.Session.HeartbeatInterval},
	}
	for _, d := range durations {
		if d.d <= 0 {
			return errors.New("R042").WithKey(d.key).WithDetailf("got %v", d.d)
		}
	}
	if c.Session.HeartbeatInterval >= c.Session.ReadTimeout {
		return errors.New("R042").
			WithKey("session.heartbeatInterval").
			WithDetailf("heartbeat %v is not shorter than the read timeout %v", c.Session.HeartbeatInterval, c.Session.ReadTimeout).
			WithSuggestion("Keep the heartbeat well below session.readTimeout")
	}

	sizes := []struct {
		key string
		n   int
	}{
		{"server.readBufferSize", c.Server.ReadBufferSize},
		{"server.writeBufferSize", c.Server.WriteBufferSize},
		{"session.maxEventQueue", c.Session.MaxEventQueue},
	}
	for _, s := range sizes {
		if s.n <= 0 {
			return errors.New("R043").WithKey(s.key).WithDetailf("got %d", s.n)
		}
	}

	if _, ok := parseLevel(c.Log.Level); !ok {
		return errors.New("R044").WithKey("log.level").WithDetailf("got %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return errors.New("R045").WithKey("log.format").WithDetailf("got %q", c.Log.Format)
	}

	if c.Metrics.Enabled {
		p := c.Metrics.Path
		if !strings.HasPrefix(p, "/") || p == "/" || strings.HasPrefix(p, "/_rerender") {
			return errors.New("R046").
				WithKey("metrics.path").
				WithDetailf("got %q", p).
				WithSuggestion(`Use "/metrics"`)
		}
	}
	return nil
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// SlogLevel returns the configured level, info when unrecognized.
func (l LogConfig) SlogLevel() slog.Level {
	level, _ := parseLevel(l.Level)
	return level
}

// Logger builds a logger writing to w in the configured format.
func (l LogConfig) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
