package types

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Field is a named, typed, described unit of documentation: an argument, an
// attribute, a raised error kind, or the return value. Raises fields and the
// return field have an empty name.
type Field struct {
	Name     string
	Kind     string
	Desc     []string
	Optional bool
}

// NewField creates a Field, normalizing a nil description to an empty slice.
func NewField(name, kind string, desc []string, optional bool) *Field {
	if desc == nil {
		desc = []string{}
	}
	return &Field{Name: name, Kind: kind, Desc: desc, Optional: optional}
}

// merge applies later additions for the same name. An empty kind and a nil
// desc are no-ops; a non-nil empty desc overwrites. The optional flag is
// applied only when setOptional is true, so type-only additions never
// disturb it.
func (f *Field) merge(kind string, desc []string, setOptional, optional bool) {
	if kind != "" {
		f.Kind = kind
	}
	if desc != nil {
		f.Desc = desc
	}
	if setOptional {
		f.Optional = optional
	}
}

// FieldTable is an ordered name-to-Field map. Insertion order is preserved
// and is the document order of each name's first mention; duplicate names
// merge into the existing Field instead of appending.
type FieldTable struct {
	m *orderedmap.OrderedMap[string, *Field]
}

// NewFieldTable creates an empty FieldTable.
func NewFieldTable() *FieldTable {
	return &FieldTable{m: orderedmap.New[string, *Field]()}
}

// Len returns the number of fields in the table.
func (t *FieldTable) Len() int {
	return t.m.Len()
}

// Get returns the field for name, if present.
func (t *FieldTable) Get(name string) (*Field, bool) {
	return t.m.Get(name)
}

// Has reports whether name is present.
func (t *FieldTable) Has(name string) bool {
	_, ok := t.m.Get(name)
	return ok
}

// Set inserts or replaces the field for name.
func (t *FieldTable) Set(name string, f *Field) {
	t.m.Set(name, f)
}

// Fields returns all fields in insertion order.
func (t *FieldTable) Fields() []*Field {
	fields := make([]*Field, 0, t.m.Len())
	for pair := t.m.Oldest(); pair != nil; pair = pair.Next() {
		fields = append(fields, pair.Value)
	}
	return fields
}
