package fields

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Choice is one <option> of a select.
type Choice struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Options is an ordered option list. It decodes from a JSON object or YAML
// mapping (value: label, document order kept) or from a list of
// {value, label} entries.
type Options []Choice

// OptionsFromMap converts an unordered map, sorting by value.
func OptionsFromMap(values map[string]string) Options {
	if len(values) == 0 {
		return nil
	}
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	out := make(Options, 0, len(keys))
	for _, key := range keys {
		out = append(out, Choice{Value: key, Label: values[key]})
	}
	return out
}

// OptionsFromValues uses each value as its own label.
func OptionsFromValues(values ...string) Options {
	if len(values) == 0 {
		return nil
	}
	out := make(Options, 0, len(values))
	for _, value := range values {
		out = append(out, Choice{Value: value, Label: value})
	}
	return out
}

func (o *Options) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	switch node.Kind {
	case yaml.MappingNode:
		out := make(Options, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if value.Kind != yaml.ScalarNode {
				return fmt.Errorf("fields: option %q must map to a scalar label", key.Value)
			}
			out = append(out, Choice{Value: key.Value, Label: value.Value})
		}
		*o = out
		return nil
	case yaml.SequenceNode:
		var list []Choice
		if err := node.Decode(&list); err != nil {
			return fmt.Errorf("fields: decode option list: %w", err)
		}
		*o = list
		return nil
	default:
		return fmt.Errorf("fields: options must be a mapping or a sequence")
	}
}

func (o *Options) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*o = nil
		return nil
	}
	if trimmed[0] == '[' {
		var list []Choice
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return fmt.Errorf("fields: decode option list: %w", err)
		}
		*o = list
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	if tok, err := dec.Token(); err != nil {
		return fmt.Errorf("fields: decode options: %w", err)
	} else if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("fields: options must be an object or an array")
	}

	var out Options
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("fields: decode options: %w", err)
		}
		key, _ := keyTok.(string)
		valueTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("fields: decode option %q: %w", key, err)
		}
		if _, nested := valueTok.(json.Delim); nested {
			return fmt.Errorf("fields: option %q must map to a scalar label", key)
		}
		out = append(out, Choice{Value: key, Label: scalarString(valueTok)})
	}
	*o = out
	return nil
}

func scalarString(tok json.Token) string {
	switch typed := tok.(type) {
	case nil:
		return ""
	case string:
		return typed
	case json.Number:
		return typed.String()
	default:
		return fmt.Sprint(typed)
	}
}
