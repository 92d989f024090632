package projector

import "github.com/reoring/esmap/typesys"

// AllTypes is the synthetic bucket key holding every accepted field.
const AllTypes = "_all"

// FieldMap is an insertion-ordered map from flat field name to type.
type FieldMap struct {
	names []string
	types map[string]typesys.Type
}

// NewFieldMap returns an empty FieldMap.
func NewFieldMap() *FieldMap { return &FieldMap{types: map[string]typesys.Type{}} }

// Set stores t under name, keeping the first insertion position.
func (m *FieldMap) Set(name string, t typesys.Type) {
	if _, ok := m.types[name]; !ok {
		m.names = append(m.names, name)
	}
	m.types[name] = t
}

// Get returns the type stored under name.
func (m *FieldMap) Get(name string) (typesys.Type, bool) {
	if m == nil {
		return nil, false
	}
	t, ok := m.types[name]
	return t, ok
}

// Has reports whether name is present.
func (m *FieldMap) Has(name string) bool {
	_, ok := m.Get(name)
	return ok
}

// Names returns the flat field names in insertion order.
func (m *FieldMap) Names() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.names...)
}

// Len returns the number of fields.
func (m *FieldMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.names)
}

// FieldTypeBucket groups accepted leaves by Elasticsearch type. The AllTypes
// bucket holds the union.
type FieldTypeBucket struct {
	byType map[string]*FieldMap
	all    *FieldMap
}

// NewFieldTypeBucket returns an empty bucket.
func NewFieldTypeBucket() *FieldTypeBucket {
	return &FieldTypeBucket{byType: map[string]*FieldMap{}, all: NewFieldMap()}
}

// Add records a leaf under its Elasticsearch type and under AllTypes.
func (b *FieldTypeBucket) Add(elasticType, flat string, t typesys.Type) {
	m, ok := b.byType[elasticType]
	if !ok {
		m = NewFieldMap()
		b.byType[elasticType] = m
	}
	m.Set(flat, t)
	b.all.Set(flat, t)
}

// ByType returns the fields of one Elasticsearch type, or the union for
// AllTypes. It returns nil for a type without fields.
func (b *FieldTypeBucket) ByType(elasticType string) *FieldMap {
	if elasticType == AllTypes {
		return b.all
	}
	return b.byType[elasticType]
}

// All returns the union of every accepted field.
func (b *FieldTypeBucket) All() *FieldMap { return b.all }
