package debug

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func newCapture(level slog.Level) (*bytes.Buffer, *slog.Logger) {
	var buf bytes.Buffer
	return &buf, slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level}))
}

func TestLogDisabledWritesNothing(t *testing.T) {
	buf, logger := newCapture(slog.LevelDebug)
	New(false, logger).Log("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestLogEnabled(t *testing.T) {
	buf, logger := newCapture(slog.LevelDebug)
	l := New(true, logger)
	l.Log("plain message")
	l.Log(map[string]int{"count": 2})

	out := buf.String()
	if !strings.Contains(out, "plain message") {
		t.Fatalf("expected string content, got %q", out)
	}
	if !strings.Contains(out, `\"count\": 2`) {
		t.Fatalf("expected pretty printed map, got %q", out)
	}
}

func TestLogEnabledWithDefaultHandlerLevel(t *testing.T) {
	t.Setenv(EnvVar, "true")
	var buf bytes.Buffer
	l := FromEnv(slog.New(slog.NewTextHandler(&buf, nil)))
	l.Log("posted values")
	if !strings.Contains(buf.String(), "posted values") {
		t.Fatalf("expected output at the default handler level, got %q", buf.String())
	}
}

func TestTriggerLevels(t *testing.T) {
	cases := []struct {
		level string
		want  string
	}{
		{LevelError, "level=ERROR"},
		{LevelWarning, "level=WARN"},
		{LevelNotice, "level=INFO"},
		{"custom", "type=custom"},
	}
	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			buf, logger := newCapture(slog.LevelInfo)
			New(false, logger).Trigger("boom", tc.level)
			if !strings.Contains(buf.String(), tc.want) {
				t.Fatalf("expected %q in %q", tc.want, buf.String())
			}
		})
	}
}

func TestDumpEscapes(t *testing.T) {
	var buf bytes.Buffer
	if err := Dump(&buf, "<script>"); err != nil {
		t.Fatalf("dump: %v", err)
	}
	if buf.String() != "<pre>&lt;script&gt;</pre>" {
		t.Fatalf("unexpected dump %q", buf.String())
	}
}

func TestPrettyFallback(t *testing.T) {
	ch := make(chan int)
	if got := Pretty(ch); got == "" {
		t.Fatalf("expected fallback formatting")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvVar, "true")
	if !FromEnv(nil).Enabled() {
		t.Fatalf("expected logger to be enabled")
	}
	t.Setenv(EnvVar, "nope")
	if FromEnv(nil).Enabled() {
		t.Fatalf("expected logger to be disabled")
	}
}
