package attrs

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a mapping keeping document order. Booleans follow
// Bool, null omits and every other scalar is text.
func (m *Map) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("attrs: expected mapping, got %s", nodeKindName(node.Kind))
	}
	*m = Map{index: make(map[string]int, len(node.Content)/2)}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return fmt.Errorf("attrs: attribute %q must be a scalar", key.Value)
		}
		switch value.ShortTag() {
		case "!!null":
			m.Set(key.Value, Omit())
		case "!!bool":
			var on bool
			if err := value.Decode(&on); err != nil {
				return fmt.Errorf("attrs: attribute %q: %w", key.Value, err)
			}
			m.Set(key.Value, Bool(on))
		default:
			m.Set(key.Value, String(value.Value))
		}
	}
	return nil
}

// UnmarshalJSON decodes an object keeping key order.
func (m *Map) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("attrs: %w", err)
	}
	if tok == nil {
		*m = Map{index: make(map[string]int)}
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("attrs: expected object")
	}

	*m = Map{index: make(map[string]int)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("attrs: %w", err)
		}
		key, _ := keyTok.(string)
		valueTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("attrs: attribute %q: %w", key, err)
		}
		switch typed := valueTok.(type) {
		case json.Delim:
			return fmt.Errorf("attrs: attribute %q must be a scalar", key)
		case json.Number:
			m.Set(key, String(typed.String()))
		default:
			m.Set(key, Of(typed))
		}
	}
	return nil
}

func nodeKindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
