package attrs

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-formhelpers/pkg/escape"
)

// Serializer writes attribute maps using a configurable escaper.
type Serializer struct {
	Escaper escape.Escaper
}

// DefaultSerializer escapes with escape.Default.
var DefaultSerializer = Serializer{Escaper: escape.Default}

// Serialize renders m with DefaultSerializer.
func Serialize(m *Map) string {
	return DefaultSerializer.Serialize(m)
}

// Serialize renders m as a space separated attribute string, e.g.
// `id="email" required`. Numeric and empty names and omitted values are
// skipped.
func (s Serializer) Serialize(m *Map) string {
	if m.Len() == 0 {
		return ""
	}
	esc := s.Escaper
	if esc == nil {
		esc = escape.Default
	}

	var builder strings.Builder
	for _, entry := range m.entries {
		if !validName(entry.Name) || entry.Value.IsOmitted() {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteByte(' ')
		}
		builder.WriteString(esc.Attr(entry.Name))
		if entry.Value.kind == KindBare {
			continue
		}
		builder.WriteString(`="`)
		builder.WriteString(esc.Attr(entry.Value.text))
		builder.WriteByte('"')
	}
	return builder.String()
}

func validName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	// positional keys from list-style input are not attribute names
	if _, err := strconv.Atoi(name); err == nil {
		return false
	}
	return true
}
