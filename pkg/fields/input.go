package fields

import (
	"strings"

	"github.com/goliatone/go-formhelpers/pkg/attrs"
)

// InputConfig describes an <input> element with an optional leading label.
type InputConfig struct {
	Type     string
	Value    string
	Label    string
	Required bool
	// Attrs are written before type, value and required. Set "id" to bind the
	// label.
	Attrs      *attrs.Map
	LabelAttrs *attrs.Map
}

// DefaultInputConfig returns the input defaults.
func DefaultInputConfig() InputConfig {
	return InputConfig{Type: "text"}
}

func (c InputConfig) withDefaults() InputConfig {
	defaults := DefaultInputConfig()
	if strings.TrimSpace(c.Type) == "" {
		c.Type = defaults.Type
	}
	c.Attrs = c.Attrs.Clone()
	return c
}

// Input renders `<input ...>`, preceded by a label when cfg.Label is set. The
// value attribute is always written, bare when empty.
func (r *Renderer) Input(cfg InputConfig) string {
	cfg = cfg.withDefaults()

	set := cfg.Attrs
	set.Set("type", attrs.String(cfg.Type))
	set.Set("value", attrs.String(cfg.Value))
	set.Set("required", attrs.Bool(cfg.Required))

	var builder strings.Builder
	builder.WriteString(r.controlLabel(cfg.Label, cfg.Required, set, cfg.LabelAttrs))
	r.openTag(&builder, "input", set)
	return builder.String()
}
