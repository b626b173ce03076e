package fields

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-formhelpers/pkg/attrs"
)

// SelectConfig describes a <select> element.
type SelectConfig struct {
	// Value is the currently selected option value.
	Value   string
	Options Options
	// NoneOption, when not empty, is the label of a leading option with an
	// empty value.
	NoneOption string
	Label      string
	Required   bool
	Attrs      *attrs.Map
	LabelAttrs *attrs.Map
}

func (c SelectConfig) withDefaults() SelectConfig {
	c.Attrs = c.Attrs.Clone()
	return c
}

// Select renders `<select>` with its options. Nothing is rendered when there
// are neither options nor a none option.
func (r *Renderer) Select(cfg SelectConfig) string {
	if len(cfg.Options) == 0 && cfg.NoneOption == "" {
		r.log().Debug("fields: select skipped, no options", "attrs", cfg.Attrs.Names())
		return ""
	}
	cfg = cfg.withDefaults()

	choices := cfg.Options
	if cfg.NoneOption != "" {
		choices = append(Options{{Value: "", Label: cfg.NoneOption}}, cfg.Options...)
	}

	set := cfg.Attrs
	set.Set("required", attrs.Bool(cfg.Required))

	var builder strings.Builder
	builder.WriteString(r.controlLabel(cfg.Label, cfg.Required, set, cfg.LabelAttrs))
	r.openTag(&builder, "select", set)
	for _, choice := range choices {
		// value is always quoted so the none option submits an empty string
		builder.WriteString(`<option value="`)
		builder.WriteString(r.escaper.Attr(choice.Value))
		builder.WriteByte('"')
		if looseEqual(choice.Value, cfg.Value) {
			builder.WriteString(` selected="selected"`)
		}
		builder.WriteByte('>')
		builder.WriteString(r.escaper.HTML(choice.Label))
		builder.WriteString("</option>")
	}
	builder.WriteString("</select>")
	return builder.String()
}

// looseEqual compares option values as strings. Plain decimal literals that
// denote the same number also match ("1" and "1.0"); hex, exponents,
// infinities and padded values only match verbatim.
func looseEqual(a, b string) bool {
	if a == b {
		return true
	}
	if !isDecimal(a) || !isDecimal(b) {
		return false
	}
	left, errLeft := strconv.ParseFloat(a, 64)
	right, errRight := strconv.ParseFloat(b, 64)
	return errLeft == nil && errRight == nil && left == right
}

// isDecimal reports whether s is an optionally signed run of digits with at
// most one decimal point.
func isDecimal(s string) bool {
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	digits, dot := 0, false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digits > 0
}
