package config

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/vango-dev/rerender/internal/errors"
)

func TestDefault(t *testing.T) {
	want := Config{
		Server: ServerConfig{
			Address:         ":8080",
			ShutdownTimeout: 10 * time.Second,
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
		Session: SessionConfig{
			MaxEventQueue:     64,
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      10 * time.Second,
			HeartbeatInterval: 30 * time.Second,
		},
		Metrics: MetricsConfig{Enabled: true, Path: "/metrics", Namespace: "rerender"},
		Log:     LogConfig{Level: "info", Format: "text"},
	}

	got := Default()
	if diff := cmp.Diff(want, *got, cmpopts.IgnoreUnexported(Config{})); diff != "" {
		t.Errorf("Default() mismatch (-want +got):\n%s", diff)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.File() != "" {
		t.Errorf("File() = %q, want empty", cfg.File())
	}
	if cfg.Server.Address != DefaultAddress {
		t.Errorf("Server.Address = %q, want %q", cfg.Server.Address, DefaultAddress)
	}
}

func TestLoadFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, filepath.Join(dir, "rerender.json"), `{
		"server": {"address": "127.0.0.1:9000", "shutdownTimeout": "3s"},
		"session": {"maxEventQueue": 8, "heartbeatInterval": "5s"},
		"log": {"level": "debug", "format": "json"},
		"render": {"pretty": true}
	}`)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Address != "127.0.0.1:9000" {
		t.Errorf("Server.Address = %q", cfg.Server.Address)
	}
	if cfg.Server.ShutdownTimeout != 3*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 3s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Session.MaxEventQueue != 8 {
		t.Errorf("Session.MaxEventQueue = %d, want 8", cfg.Session.MaxEventQueue)
	}
	if cfg.Session.ReadTimeout != 60*time.Second {
		t.Errorf("Session.ReadTimeout = %v, want default 60s", cfg.Session.ReadTimeout)
	}
	if !cfg.Render.Pretty {
		t.Error("Render.Pretty = false, want true")
	}
	if !strings.HasSuffix(cfg.File(), "rerender.json") {
		t.Errorf("File() = %q", cfg.File())
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.json")
	writeFile(t, path, `{"server": {"address": ":7000"}, "log": {"level": "warn"}}`)

	t.Setenv("RERENDER_SERVER_ADDRESS", ":7001")
	t.Setenv("RERENDER_SESSION_MAXEVENTQUEUE", "16")
	t.Setenv("RERENDER_METRICS_ENABLED", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Address != ":7001" {
		t.Errorf("Server.Address = %q, want :7001", cfg.Server.Address)
	}
	if cfg.Session.MaxEventQueue != 16 {
		t.Errorf("Session.MaxEventQueue = %d, want 16", cfg.Session.MaxEventQueue)
	}
	if cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled = true, want false")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.json")
	writeFile(t, broken, `{"server": `)

	invalid := filepath.Join(dir, "invalid.json")
	writeFile(t, invalid, `{"log": {"format": "xml"}}`)

	tests := []struct {
		name string
		path string
		code string
	}{
		{"missing explicit file", filepath.Join(dir, "nope.json"), "R040"},
		{"malformed json", broken, "R040"},
		{"invalid value", invalid, "R045"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if !stderrors.Is(err, errors.New(tt.code)) {
				t.Errorf("Load() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		code   string
		key    string
	}{
		{"no port", func(c *Config) { c.Server.Address = "localhost" }, "R041", "server.address"},
		{"zero write timeout", func(c *Config) { c.Session.WriteTimeout = 0 }, "R042", "session.writeTimeout"},
		{"heartbeat too slow", func(c *Config) { c.Session.HeartbeatInterval = time.Minute }, "R042", "session.heartbeatInterval"},
		{"zero queue", func(c *Config) { c.Session.MaxEventQueue = 0 }, "R043", "session.maxEventQueue"},
		{"negative buffer", func(c *Config) { c.Server.ReadBufferSize = -1 }, "R043", "server.readBufferSize"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "R044", "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "R045", "log.format"},
		{"metrics at root", func(c *Config) { c.Metrics.Path = "/" }, "R046", "metrics.path"},
		{"metrics shadows client", func(c *Config) { c.Metrics.Path = "/_rerender/metrics" }, "R046", "metrics.path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(c)

			err := c.Validate()
			var e *errors.Error
			if !stderrors.As(err, &e) {
				t.Fatalf("Validate() = %v, want *errors.Error", err)
			}
			if e.Code != tt.code || e.Key != tt.key {
				t.Errorf("Validate() = %s (%s), want %s (%s)", e.Code, e.Key, tt.code, tt.key)
			}
		})
	}

	t.Run("metrics path ignored when disabled", func(t *testing.T) {
		c := Default()
		c.Metrics.Enabled = false
		c.Metrics.Path = ""
		if err := c.Validate(); err != nil {
			t.Errorf("Validate() = %v", err)
		}
	})
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := LogConfig{Level: "warn", Format: "json"}.Logger(&buf)

	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record written at warn level: %s", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"k":"v"`) {
		t.Errorf("json record missing fields: %s", out)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
