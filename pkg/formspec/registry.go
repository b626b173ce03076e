package formspec

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/goliatone/go-formhelpers/pkg/fields"
)

// RenderFunc renders a field of a registered kind.
type RenderFunc func(r *fields.Renderer, field Field) string

// Registry maps field kinds to render functions. Callers can register new
// kinds or override the built-in ones.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]RenderFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]RenderFunc)}
}

// NewDefaultRegistry returns a registry with label, input, checkbox and
// select registered.
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()
	registry.MustRegister(KindLabel, renderLabel)
	registry.MustRegister(KindInput, renderInput)
	registry.MustRegister(KindCheckbox, renderCheckbox)
	registry.MustRegister(KindSelect, renderSelect)
	return registry
}

// Register associates fn with kind. Existing entries are replaced.
func (r *Registry) Register(kind string, fn RenderFunc) error {
	if kind = normalizeKind(kind); kind == "" {
		return fmt.Errorf("formspec: kind is required")
	}
	if fn == nil {
		return fmt.Errorf("formspec: render func for %q is nil", kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds[kind] = fn
	return nil
}

// MustRegister mirrors Register but panics on error.
func (r *Registry) MustRegister(kind string, fn RenderFunc) {
	if err := r.Register(kind, fn); err != nil {
		panic(err)
	}
}

// Lookup fetches the render func for kind.
func (r *Registry) Lookup(kind string) (RenderFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.kinds[normalizeKind(kind)]
	return fn, ok
}

// Kinds returns the sorted registered kinds.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.kinds))
	for kind := range r.kinds {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	return kinds
}

// Render renders field with the func registered for its kind. Unknown kinds
// render as inputs whose type is the kind.
func (r *Registry) Render(renderer *fields.Renderer, field Field) string {
	if renderer == nil {
		renderer = fields.Default()
	}
	kind := field.kind()
	if fn, ok := r.Lookup(kind); ok {
		return fn(renderer, field)
	}
	if field.Type == "" {
		field.Type = kind
	}
	return renderInput(renderer, field)
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry returns the shared registry used by Field.Render.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewDefaultRegistry()
	})
	return defaultRegistry
}

func normalizeKind(kind string) string {
	return strings.ToLower(strings.TrimSpace(kind))
}

func renderLabel(r *fields.Renderer, f Field) string {
	text := f.Text
	if text == "" {
		text = f.Label
	}
	return r.Label(fields.LabelConfig{
		Text:     text,
		Required: f.Required,
		For:      f.For,
		Attrs:    f.LabelAttrs.Clone().Merge(f.Attrs),
	})
}

func renderInput(r *fields.Renderer, f Field) string {
	return r.Input(fields.InputConfig{
		Type:       f.Type,
		Value:      f.Value,
		Label:      f.Label,
		Required:   f.Required,
		Attrs:      f.controlAttrs(),
		LabelAttrs: f.LabelAttrs,
	})
}

func renderCheckbox(r *fields.Renderer, f Field) string {
	return r.Checkbox(fields.CheckboxConfig{
		Value:      f.Value,
		Label:      f.Label,
		Checked:    f.Checked,
		Required:   f.Required,
		Attrs:      f.controlAttrs(),
		LabelAttrs: f.LabelAttrs,
	})
}

func renderSelect(r *fields.Renderer, f Field) string {
	return r.Select(fields.SelectConfig{
		Value:      f.Value,
		Options:    f.Options,
		NoneOption: f.NoneOption,
		Label:      f.Label,
		Required:   f.Required,
		Attrs:      f.controlAttrs(),
		LabelAttrs: f.LabelAttrs,
	})
}
