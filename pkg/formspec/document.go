package formspec

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formhelpers/pkg/attrs"
	"github.com/goliatone/go-formhelpers/pkg/fields"
)

// ErrEmptyDocument is returned when a definition file has no content.
var ErrEmptyDocument = errors.New("formspec: document is empty")

// Field kinds understood by Field.Render.
const (
	KindLabel    = "label"
	KindInput    = "input"
	KindCheckbox = "checkbox"
	KindSelect   = "select"
)

// Document is an ordered list of field definitions.
type Document struct {
	Fields []Field `json:"fields" yaml:"fields"`
}

// Field is the declarative form of one element. Only the members relevant to
// Kind are used.
type Field struct {
	Kind       string         `json:"kind,omitempty" yaml:"kind,omitempty"`
	Type       string         `json:"type,omitempty" yaml:"type,omitempty"`
	ID         string         `json:"id,omitempty" yaml:"id,omitempty"`
	Name       string         `json:"name,omitempty" yaml:"name,omitempty"`
	Label      string         `json:"label,omitempty" yaml:"label,omitempty"`
	Text       string         `json:"text,omitempty" yaml:"text,omitempty"`
	For        string         `json:"for,omitempty" yaml:"for,omitempty"`
	Value      string         `json:"value,omitempty" yaml:"value,omitempty"`
	Required   bool           `json:"required,omitempty" yaml:"required,omitempty"`
	Checked    bool           `json:"checked,omitempty" yaml:"checked,omitempty"`
	Options    fields.Options `json:"options,omitempty" yaml:"options,omitempty"`
	NoneOption string         `json:"none_option,omitempty" yaml:"none_option,omitempty"`
	Attrs      *attrs.Map     `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	LabelAttrs *attrs.Map     `json:"label_attrs,omitempty" yaml:"label_attrs,omitempty"`
}

// LoadFile reads and parses a JSON or YAML definition from disk.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("formspec: read %s: %w", path, err)
	}
	return Load(data, filepath.Base(path))
}

// Load parses data as JSON and falls back to YAML. source is only used in
// error messages.
func Load(data []byte, source string) (Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("formspec: %s: %w", source, ErrEmptyDocument)
	}

	var doc Document
	jsonErr := json.Unmarshal(data, &doc)
	if jsonErr == nil {
		return doc, nil
	}

	doc = Document{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("formspec: parse %s: invalid JSON (%v) or YAML: %w", source, jsonErr, err)
	}
	return doc, nil
}

// Render renders every field, one per line, skipping fields with no output.
func (d Document) Render(r *fields.Renderer) string {
	var builder strings.Builder
	for _, field := range d.Fields {
		markup := field.Render(r)
		if markup == "" {
			continue
		}
		builder.WriteString(markup)
		builder.WriteByte('\n')
	}
	return builder.String()
}

// Apply overrides field values keyed by field name (or id when the name is
// empty). A checkbox is checked when the submitted value equals its own value
// (default "1") or parses as a true boolean.
func (d Document) Apply(values map[string]string) Document {
	if len(values) == 0 {
		return d
	}
	out := Document{Fields: make([]Field, len(d.Fields))}
	for idx, field := range d.Fields {
		value, ok := values[field.Key()]
		if ok {
			if field.kind() == KindCheckbox {
				field.Checked = field.checkedBy(value)
			} else {
				field.Value = value
			}
		}
		out.Fields[idx] = field
	}
	return out
}

func (f Field) checkedBy(submitted string) bool {
	own := f.Value
	if own == "" {
		own = fields.DefaultCheckboxConfig().Value
	}
	if submitted == own {
		return true
	}
	checked, err := strconv.ParseBool(strings.TrimSpace(submitted))
	return err == nil && checked
}

// Key identifies the field for value lookups.
func (f Field) Key() string {
	if name := strings.TrimSpace(f.Name); name != "" {
		return name
	}
	return strings.TrimSpace(f.ID)
}

func (f Field) kind() string {
	kind := strings.ToLower(strings.TrimSpace(f.Kind))
	if kind == "" {
		return KindInput
	}
	return kind
}

// Render renders the field through DefaultRegistry. Unknown kinds render as
// inputs of that type.
func (f Field) Render(r *fields.Renderer) string {
	return DefaultRegistry().Render(r, f)
}

// controlAttrs puts id and name first unless Attrs already carries them.
func (f Field) controlAttrs() *attrs.Map {
	set := attrs.New()
	if id := strings.TrimSpace(f.ID); id != "" && !f.Attrs.Has("id") {
		set.Set("id", attrs.String(id))
	}
	if name := strings.TrimSpace(f.Name); name != "" && !f.Attrs.Has("name") {
		set.Set("name", attrs.String(name))
	}
	return set.Merge(f.Attrs)
}
