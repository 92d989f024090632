// Package mapping holds the in-memory model of an Elasticsearch index
// mapping and reads it from JSON, YAML or already-decoded Go values.
//
// Ingestion validates the tree once: every node is an object or a typed
// leaf, and every field path flattens to a unique, reversible identifier.
// All structural problems are collected and returned together as
// esmap.Issues.
package mapping

import (
	"errors"
	"fmt"

	"github.com/reoring/esmap"
	"github.com/reoring/esmap/fieldname"
)

// ParseJSON parses a mapping document from JSON bytes, keeping property order.
func ParseJSON(data []byte, opts Options) (*Node, Diag, error) {
	v, err := decodeJSON(data)
	if err != nil {
		return nil, &simpleDiag{}, fmt.Errorf("mapping: invalid JSON: %w", err)
	}
	return parse(v, opts)
}

// ParseYAML parses a mapping document from the first document of a YAML
// stream, keeping property order. Duplicate keys are rejected.
func ParseYAML(data []byte, opts Options) (*Node, Diag, error) {
	v, err := decodeYAML(data)
	if err != nil {
		return nil, &simpleDiag{}, fmt.Errorf("mapping: invalid YAML: %w", err)
	}
	return parse(v, opts)
}

// Parse builds a mapping from decoded Go values (map[string]any and friends).
// Properties are ordered by name.
func Parse(doc any, opts Options) (*Node, Diag, error) {
	if doc == nil {
		return nil, &simpleDiag{}, esmap.Issues{esmap.Root().Issue(esmap.CodeInvalidMapping, "nil mapping")}
	}
	return parse(fromGo(doc), opts)
}

func parse(v any, opts Options) (*Node, Diag, error) {
	d := &simpleDiag{}
	root, ok := v.(*object)
	if !ok {
		return nil, d, esmap.Issues{esmap.Root().Issue(esmap.CodeInvalidMapping,
			"mapping should be an object `{ properties: {} }`")}
	}
	ref := esmap.Root()
	root, ref = unwrapRoot(root, ref)

	b := &builder{opts: opts, diag: d, flat: map[string]string{}}
	n := b.node(root, ref, nil)
	if n != nil && !n.IsObject() {
		b.issues = append(b.issues, ref.Issue(esmap.CodeInvalidMapping,
			"mapping should be an object `{ properties: {} }`"))
	}
	if len(b.issues) > 0 {
		return nil, d, b.issues
	}
	return n, d, nil
}

// unwrapRoot accepts {properties}, {mappings:{properties}} and the
// GET /<index>/_mapping response {<index>:{mappings:{properties}}}.
func unwrapRoot(root *object, ref esmap.PathRef) (*object, esmap.PathRef) {
	if _, ok := root.get("properties"); ok {
		return root, ref
	}
	if m, ok := root.vals["mappings"].(*object); ok {
		if _, ok := m.get("properties"); ok {
			return m, ref.Key("mappings")
		}
	}
	if len(root.keys) == 1 {
		index := root.keys[0]
		if idx, ok := root.vals[index].(*object); ok {
			if m, ok := idx.vals["mappings"].(*object); ok {
				if _, ok := m.get("properties"); ok {
					return m, ref.Key(index).Key("mappings")
				}
			}
		}
	}
	return root, ref
}

type builder struct {
	opts   Options
	diag   *simpleDiag
	issues esmap.Issues
	// flat maps every flat field name seen so far to the pointer of the
	// field that produced it.
	flat map[string]string
}

func (b *builder) fail(ref esmap.PathRef, code, msg string, kv ...any) {
	b.issues = append(b.issues, ref.Issue(code, msg, kv...))
}

// node converts one raw mapping entry. path holds the segments from the
// root; it is empty for the root itself.
func (b *builder) node(raw any, ref esmap.PathRef, path []string) *Node {
	o, ok := raw.(*object)
	if !ok {
		b.fail(ref, esmap.CodeInvalidMapping, "property config should be an object")
		return nil
	}
	n := &Node{}
	if tv, ok := o.get("type"); ok {
		s, isStr := tv.(string)
		if !isStr || s == "" {
			b.fail(ref.Key("type"), esmap.CodeInvalidMapping, "type should be a non-empty string")
			return nil
		}
		n.Type = s
	}
	n.Index = b.flag(o, "index", ref)
	n.Enabled = b.flag(o, "enabled", ref)

	props, hasProps := o.get("properties")
	fields, hasFields := o.get("fields")
	switch {
	case hasProps:
		if n.Type != "" && n.Type != "object" && n.Type != "nested" {
			b.fail(ref, esmap.CodeInvalidMapping, fmt.Sprintf("field of type %q cannot have properties", n.Type), "type", n.Type)
			return nil
		}
		if hasFields {
			b.fail(ref.Key("fields"), esmap.CodeInvalidMapping, "object field cannot have multi-fields")
			return nil
		}
		n.Properties = b.children(props, ref, "properties", path)
	case n.Type == "":
		b.fail(ref, esmap.CodeInvalidMapping, "property config has neither properties nor type")
		return nil
	case hasFields:
		n.Fields = b.children(fields, ref, "fields", path)
	}

	for _, k := range o.keys {
		switch k {
		case "type", "index", "enabled", "properties", "fields":
			continue
		}
		if n.Params == nil {
			n.Params = map[string]any{}
		}
		n.Params[k] = toGo(o.vals[k])
	}
	return n
}

func (b *builder) flag(o *object, key string, ref esmap.PathRef) *bool {
	v, ok := o.get(key)
	if !ok {
		return nil
	}
	var f bool
	switch t := v.(type) {
	case bool:
		f = t
	case string:
		// Elasticsearch accepts the string forms too.
		switch t {
		case "true":
			f = true
		case "false":
			f = false
		default:
			b.fail(ref.Key(key), esmap.CodeInvalidMapping, key+" should be a boolean")
			return nil
		}
	default:
		b.fail(ref.Key(key), esmap.CodeInvalidMapping, key+" should be a boolean")
		return nil
	}
	return &f
}

func (b *builder) children(raw any, ref esmap.PathRef, key string, path []string) Properties {
	o, ok := raw.(*object)
	if !ok {
		b.fail(ref.Key(key), esmap.CodeInvalidMapping, key+" should be an object")
		return nil
	}
	out := make(Properties, 0, len(o.keys))
	for _, name := range o.keys {
		cref := ref.Key(key).Key(name)
		cpath := append(append([]string(nil), path...), name)
		b.checkName(cref, cpath)
		child := b.node(o.vals[name], cref, cpath)
		if child == nil {
			continue
		}
		out = append(out, Property{Name: name, Node: child})
	}
	return out
}

func (b *builder) checkName(ref esmap.PathRef, path []string) {
	canonical := fieldname.JoinCanonical(path...)
	if err := fieldname.ValidatePath(path); err != nil {
		var se *fieldname.SegmentError
		msg := err.Error()
		if errors.As(err, &se) && se.Segment == "" {
			b.fail(ref, esmap.CodeInvalidMapping, "field name is empty")
			return
		}
		if b.opts.AllowAmbiguousNames {
			b.diag.warnf("%s: %s", ref.Pointer(), msg)
		} else {
			b.fail(ref, esmap.CodeAmbiguousFieldName, msg, "field", canonical)
		}
	}
	flat := fieldname.ToFlat(canonical)
	if prev, dup := b.flat[flat]; dup && prev != ref.Pointer() {
		msg := fmt.Sprintf("%s and %s both flatten to %q", prev, ref.Pointer(), flat)
		if b.opts.AllowAmbiguousNames {
			b.diag.warnf("%s", msg)
		} else {
			b.fail(ref, esmap.CodeFieldNameCollision, msg, "field", canonical, "other", prev, "flat", flat)
		}
		return
	}
	b.flat[flat] = ref.Pointer()
}
