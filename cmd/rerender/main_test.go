package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/vango-dev/rerender/internal/config"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute(%v) error = %v", args, err)
	}
	return out.String()
}

func TestVersionShort(t *testing.T) {
	if got := strings.TrimSpace(run(t, "version", "--short")); got != version {
		t.Errorf("version --short = %q, want %q", got, version)
	}
}

func TestRoutesListsEveryLocation(t *testing.T) {
	out := run(t, "routes")
	for _, want := range []string{
		"/self-driven/code", "self-driven-code",
		"/parent-driven", "parent-driven",
		"/context-driven/code", "context-driven-code",
		"overview",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("routes missing %q in:\n%s", want, out)
		}
	}
}

func TestRoutesResolvesFragments(t *testing.T) {
	out := run(t, "routes", "#/context-driven", "/nope")

	lines := strings.Split(out, "\n")
	var ctxLine, nopeLine string
	for _, l := range lines {
		switch {
		case strings.Contains(l, `"#/context-driven"`):
			ctxLine = l
		case strings.Contains(l, `"/nope"`):
			nopeLine = l
		}
	}
	if !strings.Contains(ctxLine, "context-driven") {
		t.Errorf("#/context-driven row = %q", ctxLine)
	}
	if !strings.Contains(nopeLine, "overview") {
		t.Errorf("/nope row = %q, want overview", nopeLine)
	}
}

func TestServerConfigMapping(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Address = "127.0.0.1:9999"
	cfg.Session.MaxEventQueue = 7
	cfg.Render.Pretty = true

	sc := serverConfig(cfg)
	if sc.Address != "127.0.0.1:9999" || sc.Session.MaxEventQueue != 7 || !sc.Pretty {
		t.Errorf("serverConfig() = %+v", sc)
	}
	if sc.MetricsPath != "/metrics" {
		t.Errorf("MetricsPath = %q", sc.MetricsPath)
	}
}

func TestServerOptions(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		metrics bool
		tracing bool
		want    int
	}{
		{"logger only", false, false, 1},
		{"metrics", true, false, 2},
		{"tracing", false, true, 2},
		{"both", true, true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Metrics.Enabled = tt.metrics
			cfg.Tracing.Enabled = tt.tracing
			if got := len(serverOptions(cfg, logger)); got != tt.want {
				t.Errorf("len(serverOptions()) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestServeRejectsBadAddress(t *testing.T) {
	chdir(t, t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"serve", "--addr", "nohost"})
	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "R041") {
		t.Errorf("serve --addr nohost error = %v, want R041", err)
	}
}
