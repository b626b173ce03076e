package schemaform

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formhelpers/pkg/attrs"
	"github.com/goliatone/go-formhelpers/pkg/fields"
	"github.com/goliatone/go-formhelpers/pkg/formspec"
)

// ErrSchemaNotFound is returned when a component schema is missing.
var ErrSchemaNotFound = errors.New("schemaform: schema not found")

// EnumLabelsExtension lists display labels matching the enum values by index.
const EnumLabelsExtension = "x-enum-labels"

// DefaultNoneOption labels the empty choice of an optional enum select.
const DefaultNoneOption = "—"

// Option customises FromSchema.
type Option func(*config)

type config struct {
	noneOption string
}

// WithNoneOption sets the label of the empty choice added to optional enum
// selects. An empty label drops the choice.
func WithNoneOption(label string) Option {
	return func(c *config) {
		c.noneOption = label
	}
}

// LoadComponent loads an OpenAPI document from path and returns the named
// component schema.
func LoadComponent(ctx context.Context, path, name string) (*openapi3.Schema, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx
	loader.IsExternalRefsAllowed = true

	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("schemaform: load %s: %w", path, err)
	}
	return Component(doc, name)
}

// Component resolves a schema from doc.Components.
func Component(doc *openapi3.T, name string) (*openapi3.Schema, error) {
	if doc == nil || doc.Components == nil {
		return nil, fmt.Errorf("schemaform: %q: %w", name, ErrSchemaNotFound)
	}
	ref, ok := doc.Components.Schemas[strings.TrimSpace(name)]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("schemaform: %q: %w", name, ErrSchemaNotFound)
	}
	return ref.Value, nil
}

// FromSchema derives one field per property of an object schema, sorted by
// property name. Object and array properties are skipped.
func FromSchema(schema *openapi3.Schema, options ...Option) formspec.Document {
	if schema == nil || len(schema.Properties) == 0 {
		return formspec.Document{}
	}
	cfg := config{noneOption: DefaultNoneOption}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	slices.Sort(names)

	var doc formspec.Document
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		field, ok := cfg.fieldFromProperty(name, ref.Value, slices.Contains(schema.Required, name))
		if !ok {
			continue
		}
		doc.Fields = append(doc.Fields, field)
	}
	return doc
}

func (c config) fieldFromProperty(name string, prop *openapi3.Schema, required bool) (formspec.Field, bool) {
	kind := firstType(prop.Type)
	if kind == openapi3.TypeObject || kind == openapi3.TypeArray {
		return formspec.Field{}, false
	}

	field := formspec.Field{
		ID:       name,
		Name:     name,
		Label:    labelFor(name, prop),
		Required: required,
		Value:    defaultValue(prop.Default),
	}

	switch {
	case len(prop.Enum) > 0:
		field.Kind = formspec.KindSelect
		field.Options = enumOptions(prop)
		if !required {
			field.NoneOption = c.noneOption
		}
	case kind == openapi3.TypeBoolean:
		field.Kind = formspec.KindCheckbox
		field.Checked = field.Value == "true"
		field.Value = ""
	default:
		field.Kind = formspec.KindInput
		field.Type = inputType(kind, prop.Format)
		field.Attrs = constraintAttrs(prop)
	}
	return field, true
}

func labelFor(name string, prop *openapi3.Schema) string {
	if title := strings.TrimSpace(prop.Title); title != "" {
		return title
	}
	return name
}

func firstType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	for _, value := range values {
		if value != "null" {
			return value
		}
	}
	return ""
}

func inputType(kind, format string) string {
	switch kind {
	case openapi3.TypeInteger, openapi3.TypeNumber:
		return "number"
	}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "email":
		return "email"
	case "date":
		return "date"
	case "date-time":
		return "datetime-local"
	case "time":
		return "time"
	case "password":
		return "password"
	case "uri", "url":
		return "url"
	default:
		return "text"
	}
}

func constraintAttrs(prop *openapi3.Schema) *attrs.Map {
	set := attrs.New()
	if prop.Min != nil {
		set.Set("min", attrs.Of(*prop.Min))
	}
	if prop.Max != nil {
		set.Set("max", attrs.Of(*prop.Max))
	}
	if prop.MinLength > 0 {
		set.Set("minlength", attrs.Of(prop.MinLength))
	}
	if prop.MaxLength != nil {
		set.Set("maxlength", attrs.Of(*prop.MaxLength))
	}
	if pattern := strings.TrimSpace(prop.Pattern); pattern != "" {
		set.Set("pattern", attrs.String(pattern))
	}
	if prop.Description != "" {
		set.Set("placeholder", attrs.String(prop.Description))
	}
	if set.Len() == 0 {
		return nil
	}
	return set
}

func enumOptions(prop *openapi3.Schema) fields.Options {
	labels := enumLabels(prop.Extensions[EnumLabelsExtension])
	out := make(fields.Options, 0, len(prop.Enum))
	for idx, raw := range prop.Enum {
		if raw == nil {
			continue
		}
		value := defaultValue(raw)
		label := value
		if idx < len(labels) && labels[idx] != "" {
			label = labels[idx]
		}
		out = append(out, fields.Choice{Value: value, Label: label})
	}
	return out
}

func enumLabels(raw any) []string {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]string, len(items))
	for idx, item := range items {
		if s, ok := item.(string); ok {
			out[idx] = s
		}
	}
	return out
}

func defaultValue(raw any) string {
	if b, ok := raw.(bool); ok {
		return strconv.FormatBool(b)
	}
	return attrs.Of(raw).Text()
}
