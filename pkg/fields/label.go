package fields

import (
	"strings"

	"github.com/goliatone/go-formhelpers/pkg/attrs"
)

// LabelConfig describes a standalone <label>.
type LabelConfig struct {
	Text     string
	Required bool
	// For is the id of the labelled control. Empty drops the attribute.
	For   string
	Attrs *attrs.Map
}

func (c LabelConfig) withDefaults() LabelConfig {
	c.Attrs = c.Attrs.Clone()
	return c
}

// Label renders `<label for="..">text</label>`. Empty text renders nothing.
func (r *Renderer) Label(cfg LabelConfig) string {
	if cfg.Text == "" {
		return ""
	}
	cfg = cfg.withDefaults()

	set := cfg.Attrs
	set.Set("for", attrs.Optional(cfg.For, cfg.For != ""))

	var builder strings.Builder
	r.openTag(&builder, "label", set)
	builder.WriteString(r.escaper.HTML(cfg.Text))
	r.writeRequired(&builder, cfg.Required)
	builder.WriteString("</label>")
	return builder.String()
}

func (r *Renderer) writeRequired(builder *strings.Builder, required bool) {
	if !required || r.requiredMarker == "" {
		return
	}
	builder.WriteByte(' ')
	builder.WriteString(r.requiredMarker)
}

// controlLabel renders the label placed in front of an input or select,
// bound to the control id when one is set.
func (r *Renderer) controlLabel(text string, required bool, control, labelAttrs *attrs.Map) string {
	if text == "" {
		return ""
	}
	id, ok := control.Get("id")
	return r.Label(LabelConfig{
		Text:     text,
		Required: required,
		For:      boundID(id, ok),
		Attrs:    labelAttrs,
	})
}

func boundID(id attrs.Value, ok bool) string {
	if !ok || id.Kind() != attrs.KindText {
		return ""
	}
	return id.Text()
}
