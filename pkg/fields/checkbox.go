package fields

import (
	"strings"

	"github.com/goliatone/go-formhelpers/pkg/attrs"
)

// CheckboxConfig describes a checkbox wrapped in its label.
type CheckboxConfig struct {
	Value      string
	Label      string
	Checked    bool
	Required   bool
	Attrs      *attrs.Map
	LabelAttrs *attrs.Map
}

// DefaultCheckboxConfig returns the checkbox defaults. The submitted value of
// a checked box defaults to "1".
func DefaultCheckboxConfig() CheckboxConfig {
	return CheckboxConfig{Value: "1"}
}

func (c CheckboxConfig) withDefaults() CheckboxConfig {
	defaults := DefaultCheckboxConfig()
	if c.Value == "" {
		c.Value = defaults.Value
	}
	c.Attrs = c.Attrs.Clone()
	c.LabelAttrs = c.LabelAttrs.Clone()
	return c
}

// Checkbox renders `<input type="checkbox">`. With a label the input sits
// inside `<label>` followed by the escaped text.
func (r *Renderer) Checkbox(cfg CheckboxConfig) string {
	cfg = cfg.withDefaults()

	set := cfg.Attrs
	set.Set("type", attrs.String("checkbox"))
	set.Set("value", attrs.String(cfg.Value))
	set.Set("checked", attrs.Bool(cfg.Checked))
	set.Set("required", attrs.Bool(cfg.Required))

	var builder strings.Builder
	if cfg.Label == "" {
		r.openTag(&builder, "input", set)
		return builder.String()
	}

	r.openTag(&builder, "label", cfg.LabelAttrs)
	r.openTag(&builder, "input", set)
	builder.WriteByte(' ')
	builder.WriteString(r.escaper.HTML(cfg.Label))
	r.writeRequired(&builder, cfg.Required)
	builder.WriteString("</label>")
	return builder.String()
}
