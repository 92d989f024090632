// Package projector turns a mapping tree into the typed views a query layer
// needs: the output type describing retrieved documents and the
// Aggregatable, Searchable and Analyzed input types listing the fields that
// may appear in queries.
package projector

import (
	"fmt"
	"reflect"

	"github.com/reoring/esmap"
	"github.com/reoring/esmap/fieldname"
	"github.com/reoring/esmap/mapping"
	"github.com/reoring/esmap/typesys"
)

const outputDescription = "Elasticsearch mapping does not tell whether a field holds one value or many. " +
	"Singular fields return the value or the first value of an array. " +
	"Plural fields always return an array."

// ProjectOutputType builds the output object for an object node. Nested
// objects become their own types named typeName + UpperFirst(child), with the
// prefix and postfix of opts applied at every level. Multi-fields are not
// part of the output.
//
// Every type is obtained through reg, so a repeated call with the same name
// returns the instance built first. Each name is bound to the mapping node it
// is built from: two nodes composing the same name (a.bC and aB.c both give
// DocABC) fail with type_conflict.
func ProjectOutputType(reg *typesys.Registry, node *mapping.Node, typeName string, opts esmap.ConvertOptions) (*typesys.Object, error) {
	if err := checkArgs(node, typeName); err != nil {
		return nil, err
	}
	if !opts.LenientPlural {
		if err := validatePlural(node, opts.PluralFields); err != nil {
			return nil, err
		}
	}
	return outputType(reg, node, typeName, opts, esmap.Root())
}

func outputType(reg *typesys.Registry, node *mapping.Node, typeName string, opts esmap.ConvertOptions, ref esmap.PathRef) (*typesys.Object, error) {
	name := opts.TypeName(typeName)
	if err := reg.Bind(name, node, ref.Pointer()); err != nil {
		return nil, err
	}
	return reg.GetOrCreateObject(name, outputDescription, func(o *typesys.Object) error {
		for _, p := range node.Properties {
			child := opts
			child.PluralFields = fieldname.Under(p.Name, opts.PluralFields)
			t, err := propertyType(reg, p.Node, typeName+esmap.UpperFirst(p.Name), child, ref.Property(p.Name))
			if err != nil {
				return err
			}
			if opts.IsPlural(p.Name) {
				o.AddField(&typesys.Field{Name: p.Name, Type: typesys.ListOf(t), Resolve: pluralResolver(p.Name)})
			} else {
				o.AddField(&typesys.Field{Name: p.Name, Type: t, Resolve: singularResolver(p.Name)})
			}
		}
		return nil
	})
}

func propertyType(reg *typesys.Registry, n *mapping.Node, typeName string, opts esmap.ConvertOptions, ref esmap.PathRef) (typesys.Type, error) {
	if n == nil || (!n.IsObject() && n.Type == "") {
		return nil, ref.Issue(esmap.CodeInvalidMapping, "property config has neither properties nor type")
	}
	if n.IsObject() {
		return outputType(reg, n, typeName, opts, ref)
	}
	return ScalarFor(n.Type), nil
}

// pluralResolver returns the stored array unchanged and wraps a bare value
// into a one-element array. A missing value stays nil.
func pluralResolver(name string) typesys.ResolveFunc {
	return func(source map[string]any) any {
		v, ok := source[name]
		if !ok || v == nil {
			return nil
		}
		if isSequence(v) {
			return v
		}
		return []any{v}
	}
}

// singularResolver returns the first element of a stored array and any other
// value unchanged.
func singularResolver(name string) typesys.ResolveFunc {
	return func(source map[string]any) any {
		v := source[name]
		switch t := v.(type) {
		case []any:
			if len(t) == 0 {
				return nil
			}
			return t[0]
		case nil, []byte:
			return v
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Slice {
			if rv.Len() == 0 {
				return nil
			}
			return rv.Index(0).Interface()
		}
		return v
	}
}

func isSequence(v any) bool {
	switch v.(type) {
	case []any:
		return true
	case []byte:
		return false
	}
	return reflect.ValueOf(v).Kind() == reflect.Slice
}

func checkArgs(node *mapping.Node, typeName string) error {
	if !node.IsObject() {
		return esmap.Root().Issue(esmap.CodeInvalidMapping, "mapping should be an object `{ properties: {} }`")
	}
	if typeName == "" {
		return esmap.Issue{Code: esmap.CodeInvalidTypeName,
			Message: "empty name for type; typeName should be a non-empty string"}
	}
	return nil
}

// validatePlural checks that every plural entry names a structural path.
func validatePlural(node *mapping.Node, plural []string) error {
	var iss esmap.Issues
	for _, p := range plural {
		if _, ok := node.Lookup(fieldname.Split(p)...); ok && p != "" {
			continue
		}
		iss = append(iss, esmap.Issue{
			Code:    esmap.CodeUnknownPluralField,
			Message: fmt.Sprintf("plural field %q is not a property of the mapping", p),
			Params:  map[string]any{"field": p},
		})
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}
