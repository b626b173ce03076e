package fields

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/goliatone/go-formhelpers/pkg/attrs"
	"github.com/goliatone/go-formhelpers/pkg/escape"
)

// DefaultRequiredMarker is appended to labels of required fields.
const DefaultRequiredMarker = `<span class="required">*</span>`

type Option func(*config)

type config struct {
	escaper        escape.Escaper
	requiredMarker string
	logger         *slog.Logger
}

// WithEscaper swaps the escaping collaborator used for attributes and text.
func WithEscaper(escaper escape.Escaper) Option {
	return func(cfg *config) {
		if escaper != nil {
			cfg.escaper = escaper
		}
	}
}

// WithRequiredMarker overrides the markup appended to required labels. The
// marker is written verbatim.
func WithRequiredMarker(marker string) Option {
	return func(cfg *config) {
		cfg.requiredMarker = marker
	}
}

// WithLogger injects the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// Renderer builds form element markup. It holds no per-call state and is safe
// for concurrent use.
type Renderer struct {
	escaper        escape.Escaper
	serializer     attrs.Serializer
	requiredMarker string
	logger         *slog.Logger
}

// New constructs a renderer applying any provided options.
func New(options ...Option) *Renderer {
	cfg := config{
		escaper:        escape.Default,
		requiredMarker: DefaultRequiredMarker,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	return &Renderer{
		escaper:        cfg.escaper,
		serializer:     attrs.Serializer{Escaper: cfg.escaper},
		requiredMarker: cfg.requiredMarker,
		logger:         cfg.logger,
	}
}

func (r *Renderer) log() *slog.Logger {
	if r.logger == nil {
		return slog.Default()
	}
	return r.logger
}

// openTag writes `<name attrs>`.
func (r *Renderer) openTag(builder *strings.Builder, name string, set *attrs.Map) {
	builder.WriteByte('<')
	builder.WriteString(name)
	if serialized := r.serializer.Serialize(set); serialized != "" {
		builder.WriteByte(' ')
		builder.WriteString(serialized)
	}
	builder.WriteByte('>')
}

var (
	defaultOnce     sync.Once
	defaultRenderer *Renderer
)

// Default returns the shared renderer used by the package-level helpers.
func Default() *Renderer {
	defaultOnce.Do(func() {
		defaultRenderer = New()
	})
	return defaultRenderer
}

// Label renders cfg with the default renderer.
func Label(cfg LabelConfig) string { return Default().Label(cfg) }

// Input renders cfg with the default renderer.
func Input(cfg InputConfig) string { return Default().Input(cfg) }

// Checkbox renders cfg with the default renderer.
func Checkbox(cfg CheckboxConfig) string { return Default().Checkbox(cfg) }

// Select renders cfg with the default renderer.
func Select(cfg SelectConfig) string { return Default().Select(cfg) }

// Emit writes markup to w. Empty markup writes nothing.
func Emit(w io.Writer, markup string) error {
	if w == nil || markup == "" {
		return nil
	}
	_, err := io.WriteString(w, markup)
	return err
}
