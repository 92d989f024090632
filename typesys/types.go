// Package typesys defines the types produced from a mapping (scalars,
// output objects, input objects, enums and lists) and the Registry that
// guarantees one instance per type name.
package typesys

// Kind identifies a type node.
type Kind int

const (
	KindScalar Kind = iota
	KindObject
	KindInputObject
	KindEnum
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindObject:
		return "type"
	case KindInputObject:
		return "input"
	case KindEnum:
		return "enum"
	case KindList:
		return "list"
	}
	return "unknown"
}

// Type is implemented by every produced type.
type Type interface {
	Name() string
	Kind() Kind
}

// Scalar is a leaf value type.
type Scalar struct {
	name        string
	description string
	builtin     bool
}

func (s *Scalar) Name() string        { return s.name }
func (s *Scalar) Kind() Kind          { return KindScalar }
func (s *Scalar) Description() string { return s.description }

// Builtin reports whether the scalar needs no declaration in SDL.
func (s *Scalar) Builtin() bool { return s.builtin }

// NewScalar declares a custom scalar.
func NewScalar(name, description string) *Scalar {
	return &Scalar{name: name, description: description}
}

// Built-in and well-known scalars.
var (
	String  = &Scalar{name: "String", builtin: true}
	Int     = &Scalar{name: "Int", builtin: true}
	Float   = &Scalar{name: "Float", builtin: true}
	Boolean = &Scalar{name: "Boolean", builtin: true}
	Date    = NewScalar("Date", "Date and time, serialized as an ISO-8601 string.")
	JSON    = NewScalar("JSON", "Arbitrary JSON value passed through unchanged.")
	Buffer  = NewScalar("Buffer", "Binary data, serialized as a base64 string.")
)

// List wraps another type.
type List struct{ of Type }

// ListOf returns a list of t.
func ListOf(t Type) *List { return &List{of: t} }

func (l *List) Name() string { return "[" + l.of.Name() + "]" }
func (l *List) Kind() Kind   { return KindList }

// Of returns the element type.
func (l *List) Of() Type { return l.of }

// Unwrap strips every list wrapper from t.
func Unwrap(t Type) Type {
	for {
		l, ok := t.(*List)
		if !ok {
			return t
		}
		t = l.of
	}
}

// ResolveFunc reads a field value out of a retrieved document.
type ResolveFunc func(source map[string]any) any

// Field is a field of an output object.
type Field struct {
	Name        string
	Type        Type
	Description string
	// Resolve reads the value from the parent document; nil reads
	// source[Name] unchanged.
	Resolve ResolveFunc
}

// Value runs the resolution rule of the field against source.
func (f *Field) Value(source map[string]any) any {
	if f.Resolve == nil {
		return source[f.Name]
	}
	return f.Resolve(source)
}

// Object is an output object type.
type Object struct {
	name        string
	description string
	fields      []*Field
}

// NewObject returns an empty object type.
func NewObject(name, description string) *Object {
	return &Object{name: name, description: description}
}

func (o *Object) Name() string        { return o.name }
func (o *Object) Kind() Kind          { return KindObject }
func (o *Object) Description() string { return o.description }

// AddField appends f, replacing an existing field of the same name in place.
func (o *Object) AddField(f *Field) {
	for i, cur := range o.fields {
		if cur.Name == f.Name {
			o.fields[i] = f
			return
		}
	}
	o.fields = append(o.fields, f)
}

// Field returns the named field.
func (o *Object) Field(name string) (*Field, bool) {
	for _, f := range o.fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// Fields returns the fields in declaration order.
func (o *Object) Fields() []*Field { return append([]*Field(nil), o.fields...) }

// InputField is a field of an input object.
type InputField struct {
	Name        string
	Type        Type
	Description string
}

// InputObject is an input object type.
type InputObject struct {
	name        string
	description string
	fields      []*InputField
}

// NewInputObject returns an empty input object type.
func NewInputObject(name, description string) *InputObject {
	return &InputObject{name: name, description: description}
}

func (o *InputObject) Name() string        { return o.name }
func (o *InputObject) Kind() Kind          { return KindInputObject }
func (o *InputObject) Description() string { return o.description }

// AddField appends f, replacing an existing field of the same name in place.
func (o *InputObject) AddField(f *InputField) {
	for i, cur := range o.fields {
		if cur.Name == f.Name {
			o.fields[i] = f
			return
		}
	}
	o.fields = append(o.fields, f)
}

// Field returns the named field.
func (o *InputObject) Field(name string) (*InputField, bool) {
	for _, f := range o.fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// Fields returns the fields in declaration order.
func (o *InputObject) Fields() []*InputField { return append([]*InputField(nil), o.fields...) }

// EnumValue is one symbol of an enum and the value it stands for.
type EnumValue struct {
	Name        string
	Value       any
	Description string
}

// Enum is an enumeration type.
type Enum struct {
	name        string
	description string
	values      []EnumValue
}

// NewEnum returns an enum with the given values.
func NewEnum(name, description string, values []EnumValue) *Enum {
	return &Enum{name: name, description: description, values: append([]EnumValue(nil), values...)}
}

func (e *Enum) Name() string        { return e.name }
func (e *Enum) Kind() Kind          { return KindEnum }
func (e *Enum) Description() string { return e.description }

// Values returns the enum values in declaration order.
func (e *Enum) Values() []EnumValue { return append([]EnumValue(nil), e.values...) }

// Parse maps a symbol to its value.
func (e *Enum) Parse(name string) (any, bool) {
	for _, v := range e.values {
		if v.Name == name {
			return v.Value, true
		}
	}
	return nil, false
}

// Serialize maps a value back to its symbol.
func (e *Enum) Serialize(value any) (string, bool) {
	for _, v := range e.values {
		if v.Value == value {
			return v.Name, true
		}
	}
	return "", false
}
