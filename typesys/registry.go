package typesys

import (
	"fmt"

	"github.com/reoring/esmap"
)

// Registry maps composed type names to the single instance built for them.
//
// A Registry is owned by one schema build and is not safe for concurrent
// use. Object and input object builders register their type before filling
// it, so a builder may refer back to a type that is still being built.
type Registry struct {
	types map[string]Type
	order []string
	// building tracks names whose generic builder is running.
	building map[string]bool
	// origins records what each bound name was built from.
	origins map[string]origin
}

type origin struct {
	source  any
	pointer string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: map[string]Type{}, building: map[string]bool{}, origins: map[string]origin{}}
}

// Lookup returns the type registered under name.
func (r *Registry) Lookup(name string) (Type, bool) {
	t, ok := r.types[name]
	return t, ok
}

// Len returns the number of registered types.
func (r *Registry) Len() int { return len(r.order) }

// Types returns the registered types in registration order.
func (r *Registry) Types() []Type {
	out := make([]Type, 0, len(r.order))
	for _, n := range r.order {
		out = append(out, r.types[n])
	}
	return out
}

// GetOrCreate returns the type registered under name, calling build at most
// once per name. A failed build registers nothing, including types the
// builder registered on its way.
func (r *Registry) GetOrCreate(name string, build func() (Type, error)) (Type, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if t, ok := r.types[name]; ok {
		return t, nil
	}
	if r.building[name] {
		return nil, esmap.Issue{Code: esmap.CodeTypeConflict,
			Message: fmt.Sprintf("type %q is requested while it is being built", name), Params: map[string]any{"type": name}}
	}
	mark := len(r.order)
	r.building[name] = true
	t, err := build()
	delete(r.building, name)
	if err == nil && t == nil {
		err = fmt.Errorf("typesys: builder for %q returned no type", name)
	}
	if err != nil {
		r.rollback(mark)
		return nil, err
	}
	if cur, ok := r.types[name]; ok {
		// the builder registered the name itself
		return cur, nil
	}
	r.add(name, t)
	return t, nil
}

// GetOrCreateObject returns the object registered under name, creating and
// filling it on first use. The empty object is registered before fill runs.
func (r *Registry) GetOrCreateObject(name, description string, fill func(*Object) error) (*Object, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if t, ok := r.types[name]; ok {
		o, isObj := t.(*Object)
		if !isObj {
			return nil, conflict(name, KindObject, t)
		}
		return o, nil
	}
	mark := len(r.order)
	o := NewObject(name, description)
	r.add(name, o)
	if fill != nil {
		if err := fill(o); err != nil {
			r.rollback(mark)
			return nil, err
		}
	}
	return o, nil
}

// GetOrCreateInputObject is GetOrCreateObject for input objects.
func (r *Registry) GetOrCreateInputObject(name, description string, fill func(*InputObject) error) (*InputObject, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if t, ok := r.types[name]; ok {
		o, isInput := t.(*InputObject)
		if !isInput {
			return nil, conflict(name, KindInputObject, t)
		}
		return o, nil
	}
	mark := len(r.order)
	o := NewInputObject(name, description)
	r.add(name, o)
	if fill != nil {
		if err := fill(o); err != nil {
			r.rollback(mark)
			return nil, err
		}
	}
	return o, nil
}

// Bind records source, found at the JSON Pointer pointer, as what the type
// named name is built from. Binding the same name again to another source
// fails with type_conflict, so two parts of a mapping never share one type
// by accident of naming. Sources are compared with ==.
func (r *Registry) Bind(name string, source any, pointer string) error {
	if err := checkName(name); err != nil {
		return err
	}
	prev, ok := r.origins[name]
	if !ok {
		r.origins[name] = origin{source: source, pointer: pointer}
		return nil
	}
	if prev.source == source {
		return nil
	}
	return esmap.Issue{
		Path:    pointer,
		Code:    esmap.CodeTypeConflict,
		Message: fmt.Sprintf("type %q is built from both %s and %s", name, prev.pointer, pointer),
		Params:  map[string]any{"type": name, "first": prev.pointer, "second": pointer},
	}
}

func (r *Registry) add(name string, t Type) {
	r.types[name] = t
	r.order = append(r.order, name)
}

func (r *Registry) rollback(mark int) {
	for _, n := range r.order[mark:] {
		delete(r.types, n)
		delete(r.origins, n)
	}
	r.order = r.order[:mark]
}

func checkName(name string) error {
	if name == "" {
		return esmap.Issue{Code: esmap.CodeInvalidTypeName, Message: "type name should be a non-empty string"}
	}
	return nil
}

func conflict(name string, want Kind, got Type) error {
	return esmap.Issue{
		Code:    esmap.CodeTypeConflict,
		Message: fmt.Sprintf("type %q is already registered as %s, not %s", name, got.Kind(), want),
		Params:  map[string]any{"type": name},
	}
}
