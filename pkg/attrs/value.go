package attrs

import (
	"fmt"
	"strconv"
)

// Kind tells the serializer how an attribute is written.
type Kind uint8

const (
	// KindOmit suppresses the attribute entirely.
	KindOmit Kind = iota
	// KindBare writes the attribute name only, e.g. `required`.
	KindBare
	// KindText writes name="value".
	KindText
)

// Value is an attribute value with an explicit omit/bare/text sentinel. The
// zero Value is omitted.
type Value struct {
	kind Kind
	text string
}

// Omit returns a value that drops the attribute.
func Omit() Value { return Value{kind: KindOmit} }

// Bare returns a valueless attribute.
func Bare() Value { return Value{kind: KindBare} }

// String returns a text value. The empty string renders bare.
func String(s string) Value {
	if s == "" {
		return Bare()
	}
	return Value{kind: KindText, text: s}
}

// Bool renders bare when on and omits the attribute otherwise. It is the
// encoding used for boolean HTML attributes such as required or checked.
func Bool(on bool) Value {
	if on {
		return Bare()
	}
	return Omit()
}

// Optional returns String(s) when ok is true and Omit otherwise.
func Optional(s string, ok bool) Value {
	if !ok {
		return Omit()
	}
	return String(s)
}

// Of coerces an arbitrary value. nil and false omit, true is bare, anything
// else is formatted as text.
func Of(v any) Value {
	switch typed := v.(type) {
	case nil:
		return Omit()
	case Value:
		return typed
	case *Value:
		if typed == nil {
			return Omit()
		}
		return *typed
	case bool:
		return Bool(typed)
	case string:
		return String(typed)
	case *string:
		if typed == nil {
			return Omit()
		}
		return String(*typed)
	case []byte:
		return String(string(typed))
	case int:
		return String(strconv.Itoa(typed))
	case int64:
		return String(strconv.FormatInt(typed, 10))
	case int32:
		return String(strconv.FormatInt(int64(typed), 10))
	case uint:
		return String(strconv.FormatUint(uint64(typed), 10))
	case uint64:
		return String(strconv.FormatUint(typed, 10))
	case float64:
		return String(strconv.FormatFloat(typed, 'f', -1, 64))
	case float32:
		return String(strconv.FormatFloat(float64(typed), 'f', -1, 32))
	case fmt.Stringer:
		return String(typed.String())
	default:
		return String(fmt.Sprint(typed))
	}
}

// Kind reports how the value is written.
func (v Value) Kind() Kind { return v.kind }

// Text returns the raw text for KindText values and "" otherwise.
func (v Value) Text() string { return v.text }

// IsOmitted reports whether the attribute is suppressed.
func (v Value) IsOmitted() bool { return v.kind == KindOmit }
