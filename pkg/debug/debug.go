package debug

import (
	"context"
	"fmt"
	"html"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
)

// EnvVar toggles debug logging for FromEnv.
const EnvVar = "FORMHELPERS_DEBUG"

// Trigger levels.
const (
	LevelError   = "error"
	LevelWarning = "warning"
	LevelNotice  = "notice"
)

// Logger writes developer diagnostics. Log is gated on the enabled flag;
// Trigger always reports.
type Logger struct {
	enabled bool
	logger  *slog.Logger
}

// New creates a logger. A nil slog logger falls back to slog.Default().
func New(enabled bool, logger *slog.Logger) *Logger {
	return &Logger{enabled: enabled, logger: logger}
}

// FromEnv enables debug logging when FORMHELPERS_DEBUG parses as true.
func FromEnv(logger *slog.Logger) *Logger {
	enabled, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(EnvVar)))
	return New(err == nil && enabled, logger)
}

// Enabled reports whether Log writes anything.
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}

func (l *Logger) log() *slog.Logger {
	if l == nil || l.logger == nil {
		return slog.Default()
	}
	return l.logger
}

// Log records content at info level when enabled. The enabled flag is the
// only gate. Strings are logged as-is, anything else is pretty printed.
func (l *Logger) Log(content any) {
	if !l.Enabled() {
		return
	}
	message, ok := content.(string)
	if !ok {
		message = Pretty(content)
	}
	l.log().Info(message)
}

// Trigger reports message at the slog level matching level. Unknown levels
// are logged at info with the raw level attached.
func (l *Logger) Trigger(message, level string) {
	slogLevel, known := levelFor(level)
	var attrs []slog.Attr
	if !known {
		attrs = append(attrs, slog.String("type", level))
	}
	l.log().LogAttrs(context.Background(), slogLevel, message, attrs...)
}

func levelFor(level string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case LevelError:
		return slog.LevelError, true
	case LevelWarning:
		return slog.LevelWarn, true
	case LevelNotice, "":
		return slog.LevelInfo, true
	default:
		return slog.LevelInfo, false
	}
}

// Pretty renders v as indented JSON, falling back to %+v for values JSON
// cannot represent.
func Pretty(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	out, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(out)
}

// Dump writes the pretty printed value wrapped in <pre>, escaped for HTML.
func Dump(w io.Writer, v any) error {
	_, err := io.WriteString(w, "<pre>"+html.EscapeString(Pretty(v))+"</pre>")
	return err
}
