package snapshot

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Field is a single named value in a snapshot.
type Field struct {
	Name  string
	Value any
}

// F is a shorthand constructor for a Field.
func F(name string, value any) Field {
	return Field{Name: name, Value: value}
}

// Snapshot is an immutable set of named fields representing the complete
// state of an entity at one instant. The zero value is an empty snapshot.
type Snapshot struct {
	fields map[string]any
}

// New creates a snapshot from the given fields. Later duplicates of a name
// override earlier ones. The inputs are copied; callers keep no handle into
// the snapshot's storage.
func New(fields ...Field) Snapshot {
	if len(fields) == 0 {
		return Snapshot{}
	}

	m := make(map[string]any, len(fields))
	for _, f := range fields {
		m[f.Name] = f.Value
	}
	return Snapshot{fields: m}
}

// FromMap creates a snapshot from a field map. The map is copied.
func FromMap(fields map[string]any) Snapshot {
	if len(fields) == 0 {
		return Snapshot{}
	}

	m := make(map[string]any, len(fields))
	for k, v := range fields {
		m[k] = v
	}
	return Snapshot{fields: m}
}

// With returns a new snapshot with the given fields applied over this one.
// The receiver is unchanged.
func (s Snapshot) With(fields ...Field) Snapshot {
	if len(fields) == 0 {
		return s
	}

	m := make(map[string]any, len(s.fields)+len(fields))
	for k, v := range s.fields {
		m[k] = v
	}
	for _, f := range fields {
		m[f.Name] = f.Value
	}
	return Snapshot{fields: m}
}

// Get returns the value of a field and whether it is present.
func (s Snapshot) Get(name string) (any, bool) {
	v, ok := s.fields[name]
	return v, ok
}

// String returns the string value of a field, or "" if the field is absent
// or not a string.
func (s Snapshot) String(name string) string {
	v, ok := s.fields[name].(string)
	if !ok {
		return ""
	}
	return v
}

// Float returns the float64 value of a field, or 0 if the field is absent
// or not a float64.
func (s Snapshot) Float(name string) float64 {
	v, ok := s.fields[name].(float64)
	if !ok {
		return 0
	}
	return v
}

// Int returns the int value of a field, or 0 if the field is absent or not
// an int.
func (s Snapshot) Int(name string) int {
	v, ok := s.fields[name].(int)
	if !ok {
		return 0
	}
	return v
}

// Names returns the field names in sorted order.
func (s Snapshot) Names() []string {
	names := make([]string, 0, len(s.fields))
	for name := range s.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of fields.
func (s Snapshot) Len() int {
	return len(s.fields)
}

// IsZero returns true if the snapshot has no fields.
func (s Snapshot) IsZero() bool {
	return len(s.fields) == 0
}

// Equal reports structural equality: same field names, deeply equal values.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s.fields) != len(other.fields) {
		return false
	}
	for k, v := range s.fields {
		ov, ok := other.fields[k]
		if !ok || !reflect.DeepEqual(v, ov) {
			return false
		}
	}
	return true
}

// Map returns a copy of the fields as a map.
func (s Snapshot) Map() map[string]any {
	m := make(map[string]any, len(s.fields))
	for k, v := range s.fields {
		m[k] = v
	}
	return m
}

// Format returns a deterministic single-line rendering, useful for logs and
// the demo CLI.
func (s Snapshot) Format() string {
	if len(s.fields) == 0 {
		return "{}"
	}

	var b strings.Builder
	b.WriteByte('{')
	for i, name := range s.Names() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", name, s.fields[name])
	}
	b.WriteByte('}')
	return b.String()
}
