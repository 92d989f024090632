package projector

import (
	"github.com/reoring/esmap"
	"github.com/reoring/esmap/fieldname"
	"github.com/reoring/esmap/mapping"
	"github.com/reoring/esmap/typesys"
)

// Predicate decides whether an indexed leaf belongs to an input view.
type Predicate func(leaf *mapping.Node) bool

// Aggregatable rejects analyzed text leaves, whose values are too granular
// for aggregation.
func Aggregatable(leaf *mapping.Node) bool { return !isText(leaf.Type) }

// Searchable accepts every leaf.
func Searchable(*mapping.Node) bool { return true }

// Analyzed accepts only text leaves, the ones analyzer-based matching applies to.
func Analyzed(leaf *mapping.Node) bool { return isText(leaf.Type) }

func isText(t string) bool { return t == "text" || t == "string" }

// InputFields collects the indexed leaves below node that pred accepts,
// keyed by flat field name. Structural children and multi-fields both extend
// the path. A node with index:false (or an object with enabled:false) is
// pruned with its whole subtree before pred is consulted. A nil pred accepts
// everything.
func InputFields(node *mapping.Node, pred Predicate) (*FieldTypeBucket, error) {
	b := NewFieldTypeBucket()
	if err := collect(node, pred, "", esmap.Root(), b); err != nil {
		return nil, err
	}
	return b, nil
}

func collect(n *mapping.Node, pred Predicate, flat string, ref esmap.PathRef, b *FieldTypeBucket) error {
	if n == nil || (!n.IsObject() && n.Type == "") {
		return ref.Issue(esmap.CodeInvalidMapping, "property config has neither properties nor type")
	}
	if !n.Indexed() {
		return nil
	}
	if n.IsObject() {
		for _, p := range n.Properties {
			if err := collect(p.Node, pred, fieldname.Join(flat, p.Name), ref.Property(p.Name), b); err != nil {
				return err
			}
		}
		return nil
	}
	if flat != "" && (pred == nil || pred(n)) {
		b.Add(n.Type, flat, ScalarFor(n.Type))
	}
	for _, p := range n.Fields {
		if err := collect(p.Node, pred, fieldname.Join(flat, p.Name), ref.MultiField(p.Name), b); err != nil {
			return err
		}
	}
	return nil
}

// ProjectInputView builds an input object whose fields are the AllTypes
// bucket of InputFields(node, pred), each exposed with the scalar mapped
// from its Elasticsearch type.
func ProjectInputView(reg *typesys.Registry, node *mapping.Node, typeName string, opts esmap.ConvertOptions, description string, pred Predicate) (*typesys.InputObject, error) {
	if err := checkArgs(node, typeName); err != nil {
		return nil, err
	}
	name := opts.TypeName(typeName)
	if err := reg.Bind(name, node, esmap.Root().Pointer()); err != nil {
		return nil, err
	}
	return reg.GetOrCreateInputObject(name, description, func(o *typesys.InputObject) error {
		b, err := InputFields(node, pred)
		if err != nil {
			return err
		}
		all := b.All()
		for _, name := range all.Names() {
			t, _ := all.Get(name)
			o.AddField(&typesys.InputField{Name: name, Type: t})
		}
		return nil
	})
}

// ProjectAggregatable builds the input view of fields usable in aggregations
// and filters.
func ProjectAggregatable(reg *typesys.Registry, node *mapping.Node, typeName string, opts esmap.ConvertOptions) (*typesys.InputObject, error) {
	return ProjectInputView(reg, node, typeName, opts,
		"Input type with the non-text fields which can be used in aggregations and filters.", Aggregatable)
}

// ProjectSearchable builds the input view of every indexed field.
func ProjectSearchable(reg *typesys.Registry, node *mapping.Node, typeName string, opts esmap.ConvertOptions) (*typesys.InputObject, error) {
	return ProjectInputView(reg, node, typeName, opts,
		"Input type with every indexed field which can be used in search queries.", Searchable)
}

// ProjectAnalyzed builds the input view of text fields usable in full-text
// queries.
func ProjectAnalyzed(reg *typesys.Registry, node *mapping.Node, typeName string, opts esmap.ConvertOptions) (*typesys.InputObject, error) {
	return ProjectInputView(reg, node, typeName, opts,
		"Input type with the analyzed text fields which can be used in full-text queries.", Analyzed)
}
