package tmpl

import (
	"fmt"
	"slices"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formhelpers/pkg/attrs"
	"github.com/goliatone/go-formhelpers/pkg/fields"
	"github.com/goliatone/go-formhelpers/pkg/formspec"
)

// AttrsFilter is the name of the filter that serializes an attribute map,
// e.g. `<div {{ wrapper|html_attrs }}>`.
const AttrsFilter = "html_attrs"

// Functions exposes the field renderers to pongo2 templates. Every function
// takes a field map (or a formspec.Field) and returns safe markup; invalid
// input renders nothing.
func Functions(r *fields.Renderer) pongo2.Context {
	if r == nil {
		r = fields.Default()
	}
	render := func(kind string) func(*pongo2.Value) *pongo2.Value {
		return func(in *pongo2.Value) *pongo2.Value {
			field, err := formspec.FieldFromAny(in.Interface())
			if err != nil {
				return pongo2.AsSafeValue("")
			}
			if kind != "" {
				field.Kind = kind
			}
			return pongo2.AsSafeValue(field.Render(r))
		}
	}

	return pongo2.Context{
		"form_label":    render(formspec.KindLabel),
		"form_input":    render(formspec.KindInput),
		"form_checkbox": render(formspec.KindCheckbox),
		"form_select":   render(formspec.KindSelect),
		"form_field":    render(""),
	}
}

// RenderString executes source with data and the form functions in scope.
// Function names win over data keys.
func RenderString(source string, data map[string]any, r *fields.Renderer) (string, error) {
	if err := registerFilters(); err != nil {
		return "", err
	}
	tpl, err := pongo2.FromString(source)
	if err != nil {
		return "", fmt.Errorf("tmpl: parse template: %w", err)
	}

	ctx := pongo2.Context{}
	ctx.Update(data)
	ctx.Update(Functions(r))

	out, err := tpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("tmpl: execute template: %w", err)
	}
	return out, nil
}

var (
	filtersOnce sync.Once
	filtersErr  error
)

func registerFilters() error {
	filtersOnce.Do(func() {
		if pongo2.FilterExists(AttrsFilter) {
			return
		}
		if err := pongo2.RegisterFilter(AttrsFilter, attrsFilter); err != nil {
			filtersErr = fmt.Errorf("tmpl: register %s filter: %w", AttrsFilter, err)
		}
	})
	return filtersErr
}

func attrsFilter(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsSafeValue(attrs.Serialize(toAttrs(in.Interface()))), nil
}

func toAttrs(value any) *attrs.Map {
	switch v := value.(type) {
	case *attrs.Map:
		return v
	case map[string]any:
		set := attrs.New()
		for _, key := range sortedKeys(v) {
			set.Set(key, attrs.Of(v[key]))
		}
		return set
	case map[string]string:
		set := attrs.New()
		for _, key := range sortedKeys(v) {
			set.Set(key, attrs.String(v[key]))
		}
		return set
	default:
		return nil
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
