package attrs

// Attr is a single name/value pair.
type Attr struct {
	Name  string
	Value Value
}

// Pair builds an Attr coercing v with Of.
func Pair(name string, v any) Attr {
	return Attr{Name: name, Value: Of(v)}
}

// Map is an insertion-ordered attribute set. A nil *Map reads as empty.
type Map struct {
	entries []Attr
	index   map[string]int
}

// New creates a map from the supplied pairs. Later duplicates replace earlier
// ones in place.
func New(pairs ...Attr) *Map {
	m := &Map{index: make(map[string]int, len(pairs))}
	for _, pair := range pairs {
		m.Set(pair.Name, pair.Value)
	}
	return m
}

// FromStrings builds a map from alternating name/value arguments. A trailing
// name without a value is dropped.
func FromStrings(kv ...string) *Map {
	m := New()
	for i := 0; i+1 < len(kv); i += 2 {
		m.Set(kv[i], String(kv[i+1]))
	}
	return m
}

// Set assigns value to name. Existing names keep their position.
func (m *Map) Set(name string, value Value) *Map {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if idx, ok := m.index[name]; ok {
		m.entries[idx].Value = value
		return m
	}
	m.index[name] = len(m.entries)
	m.entries = append(m.entries, Attr{Name: name, Value: value})
	return m
}

// SetDefault assigns value only when name is not present yet.
func (m *Map) SetDefault(name string, value Value) *Map {
	if m.Has(name) {
		return m
	}
	return m.Set(name, value)
}

// Get returns the value stored for name.
func (m *Map) Get(name string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	idx, ok := m.index[name]
	if !ok {
		return Value{}, false
	}
	return m.entries[idx].Value, true
}

// Has reports whether name has an entry, omitted or not.
func (m *Map) Has(name string) bool {
	_, ok := m.Get(name)
	return ok
}

// Delete removes name while keeping the order of the remaining entries.
func (m *Map) Delete(name string) {
	if m == nil {
		return
	}
	idx, ok := m.index[name]
	if !ok {
		return
	}
	m.entries = append(m.entries[:idx], m.entries[idx+1:]...)
	delete(m.index, name)
	for i := idx; i < len(m.entries); i++ {
		m.index[m.entries[i].Name] = i
	}
}

// Len returns the number of entries, including omitted ones.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Entries returns a copy of the ordered entries.
func (m *Map) Entries() []Attr {
	if m == nil || len(m.entries) == 0 {
		return nil
	}
	out := make([]Attr, len(m.entries))
	copy(out, m.entries)
	return out
}

// Names returns the attribute names in insertion order.
func (m *Map) Names() []string {
	if m == nil {
		return nil
	}
	names := make([]string, 0, len(m.entries))
	for _, entry := range m.entries {
		names = append(names, entry.Name)
	}
	return names
}

// Clone returns an independent copy. Cloning nil yields an empty map.
func (m *Map) Clone() *Map {
	out := New()
	if m == nil {
		return out
	}
	for _, entry := range m.entries {
		out.Set(entry.Name, entry.Value)
	}
	return out
}

// Merge copies the entries of other over m.
func (m *Map) Merge(other *Map) *Map {
	if other == nil {
		return m
	}
	for _, entry := range other.entries {
		m.Set(entry.Name, entry.Value)
	}
	return m
}
