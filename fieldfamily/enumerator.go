package fieldfamily

import (
	"fmt"

	"github.com/reoring/esmap"
	"github.com/reoring/esmap/fieldname"
	"github.com/reoring/esmap/projector"
	"github.com/reoring/esmap/typesys"
)

// AllValue is the synthetic value added by families with AddAll.
const AllValue = "_all"

// Enumerator builds family types over one field bucket. Types are cached in
// the registry under prefix + <Family.Name>Fields + postfix.
type Enumerator struct {
	reg    *typesys.Registry
	fields *projector.FieldTypeBucket
	opts   esmap.ConvertOptions
}

// New returns an Enumerator. A nil fields bucket makes every enumeration
// degrade to the String scalar and every field map to JSON.
func New(reg *typesys.Registry, fields *projector.FieldTypeBucket, opts esmap.ConvertOptions) *Enumerator {
	return &Enumerator{reg: reg, fields: fields, opts: opts}
}

// Names returns the flat names of the fields in family f.
func (e *Enumerator) Names(f Family) []string {
	if e.fields == nil {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	for _, t := range f.Types {
		for _, n := range e.fields.ByType(t).Names() {
			if seen[n] {
				continue
			}
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

// FieldNames returns the enumeration of the fields in family f, or the String
// scalar when the family has no fields. An empty enumeration is never built.
func (e *Enumerator) FieldNames(f Family) (typesys.Type, error) {
	if e.fields == nil {
		return typesys.String, nil
	}
	name := e.opts.TypeName(f.Name + "Fields")
	t, err := e.reg.GetOrCreate(name, func() (typesys.Type, error) {
		names := e.Names(f)
		if len(names) == 0 {
			return typesys.String, nil
		}
		values := make([]typesys.EnumValue, 0, len(names)+1)
		if f.AddAll {
			values = append(values, typesys.EnumValue{Name: AllValue, Value: AllValue})
		}
		for _, n := range names {
			values = append(values, typesys.EnumValue{Name: n, Value: fieldname.ToCanonical(n)})
		}
		return typesys.NewEnum(name, "Available fields from mapping.", values), nil
	})
	if err != nil {
		return nil, err
	}
	switch t.(type) {
	case *typesys.Enum, *typesys.Scalar:
		return t, nil
	}
	return nil, esmap.Issue{Code: esmap.CodeTypeConflict,
		Message: fmt.Sprintf("type %q is already registered as %s, not enum", name, t.Kind()), Params: map[string]any{"type": name}}
}

// FieldMap maps every flat field name of family f to placeholder (JSON when
// nil). Families with AddAll also get an "_all" entry. It returns nil when
// the family has no fields; callers then fall back to the JSON scalar.
//
// Keys are flat names, so arguments built from the map must be rehydrated
// before they reach Elasticsearch.
func (e *Enumerator) FieldMap(f Family, placeholder typesys.Type) *projector.FieldMap {
	if placeholder == nil {
		placeholder = typesys.JSON
	}
	names := e.Names(f)
	if len(names) == 0 {
		return nil
	}
	m := projector.NewFieldMap()
	if f.AddAll {
		m.Set(AllValue, placeholder)
	}
	for _, n := range names {
		m.Set(n, placeholder)
	}
	return m
}

// FieldInput builds a cached input object named prefix + typeName + postfix
// over FieldMap(f, placeholder), or returns the JSON scalar when the family
// has no fields.
func (e *Enumerator) FieldInput(typeName string, f Family, placeholder typesys.Type) (typesys.Type, error) {
	m := e.FieldMap(f, placeholder)
	if m == nil {
		return typesys.JSON, nil
	}
	o, err := e.reg.GetOrCreateInputObject(e.opts.TypeName(typeName), "", func(o *typesys.InputObject) error {
		for _, n := range m.Names() {
			t, _ := m.Get(n)
			o.AddField(&typesys.InputField{Name: n, Type: t})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}
