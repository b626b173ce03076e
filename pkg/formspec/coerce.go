package formspec

import (
	"encoding/json"
	"fmt"
	"strconv"
)

var stringKeys = []string{"kind", "type", "id", "name", "label", "text", "for", "value", "none_option"}

// FieldFromAny converts template or decoded data into a Field. Map input goes
// through a JSON round trip, so option maps come out sorted by value.
func FieldFromAny(value any) (Field, error) {
	switch v := value.(type) {
	case nil:
		return Field{}, fmt.Errorf("formspec: nil field value")
	case Field:
		return v, nil
	case *Field:
		if v == nil {
			return Field{}, fmt.Errorf("formspec: nil field pointer")
		}
		return *v, nil
	case map[string]any:
		return FieldFromMap(v)
	case map[string]string:
		generic := make(map[string]any, len(v))
		for key, item := range v {
			generic[key] = item
		}
		return FieldFromMap(generic)
	default:
		return Field{}, fmt.Errorf("formspec: unsupported field type %T", value)
	}
}

// FieldFromMap decodes a generic map. Scalar members such as value may be
// numbers or booleans; they are stringified first.
func FieldFromMap(raw map[string]any) (Field, error) {
	normalized := make(map[string]any, len(raw))
	for key, value := range raw {
		normalized[key] = value
	}
	for _, key := range stringKeys {
		if value, ok := normalized[key]; ok {
			normalized[key] = stringify(value)
		}
	}
	for _, key := range []string{"required", "checked"} {
		if value, ok := normalized[key]; ok {
			normalized[key] = truthy(value)
		}
	}

	payload, err := json.Marshal(normalized)
	if err != nil {
		return Field{}, fmt.Errorf("formspec: marshal field map: %w", err)
	}
	var field Field
	if err := json.Unmarshal(payload, &field); err != nil {
		return Field{}, fmt.Errorf("formspec: unmarshal field map: %w", err)
	}
	return field, nil
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		parsed, err := strconv.ParseBool(v)
		return err == nil && parsed
	case int:
		return v != 0
	case float64:
		return v != 0
	default:
		return true
	}
}
