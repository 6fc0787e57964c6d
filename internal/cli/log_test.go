package cli

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/boxlayout/pkg/observability"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		emit  func(*log.Logger)
		want  bool
	}{
		{"info at info", log.InfoLevel, func(l *log.Logger) { l.Info("computed layout") }, true},
		{"debug at info", log.InfoLevel, func(l *log.Logger) { l.Debug("cache hit") }, false},
		{"debug at debug", log.DebugLevel, func(l *log.Logger) { l.Debug("cache hit") }, true},
		{"warn at info", log.InfoLevel, func(l *log.Logger) { l.Warn("duplicate identities") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("wrote output = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewLoggerTimestamp(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, log.InfoLevel).Info("computed layout", "items", 3)

	out := buf.String()
	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `).MatchString(out) {
		t.Errorf("output should start with a HH:MM:SS.ms timestamp: %q", out)
	}
	if !strings.Contains(out, "items=3") {
		t.Errorf("output should carry key/value pairs: %q", out)
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(newLogger(&buf, log.InfoLevel))
	p.start = p.start.Add(-1500 * time.Millisecond)
	p.done("Converted 4 boxes")

	out := buf.String()
	if !strings.Contains(out, "Converted 4 boxes (1.5") {
		t.Errorf("done() output = %q, want message with rounded elapsed time", out)
	}
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)

	tests := []struct {
		name string
		ctx  context.Context
		want *log.Logger
	}{
		{"attached", withLogger(context.Background(), custom), custom},
		{"nil parent", withLogger(nil, custom), custom},
		{"none attached", context.Background(), log.Default()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := loggerFromContext(tt.ctx); got != tt.want {
				t.Errorf("loggerFromContext() = %p, want %p", got, tt.want)
			}
		})
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := &logHooks{logger: newLogger(&buf, log.DebugLevel)}
	ctx := context.Background()

	h.OnDecodeStart(ctx, "json")
	h.OnDecodeComplete(ctx, "yaml", 0, time.Millisecond, errors.New("bad node"))
	h.OnLayoutComplete(ctx, 3, time.Millisecond, nil)
	h.OnRenderStart(ctx, []string{"svg", "dot"})
	h.OnCacheSet(ctx, "layout", 42)
	h.OnResponse(ctx, "GET", "/healthz", 200, time.Millisecond)

	out := buf.String()
	for _, want := range []string{
		"decode start", "bad node", "layout complete", "items=3",
		"render start", "cache set", "kind=layout", "bytes=42", "status=200",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestSetLogLevelInstallsHooks(t *testing.T) {
	observability.Reset()
	t.Cleanup(observability.Reset)

	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	observability.Cache().OnCacheHit(context.Background(), "layout")
	if buf.Len() != 0 {
		t.Fatalf("info level should not log cache events, got %q", buf.String())
	}

	c.SetLogLevel(LogDebug)
	observability.Cache().OnCacheHit(context.Background(), "layout")
	if !strings.Contains(buf.String(), "cache hit") {
		t.Errorf("debug level should log cache events, got %q", buf.String())
	}
}
