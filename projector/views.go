package projector

import (
	"github.com/reoring/esmap"
	"github.com/reoring/esmap/mapping"
	"github.com/reoring/esmap/typesys"
)

// Views holds every view derived from one mapping.
type Views struct {
	Output       *typesys.Object
	Aggregatable *typesys.InputObject
	Searchable   *typesys.InputObject
	Analyzed     *typesys.InputObject
	// Fields is the unfiltered bucket of indexed leaves. It feeds field
	// family enumerations and query rehydration.
	Fields *FieldTypeBucket
}

// Build projects the four views of node. The output type is named typeName;
// the input views are named typeName + "Aggregatable", "Searchable" and
// "Analyzed". The prefix and postfix of opts apply to all of them.
func Build(reg *typesys.Registry, node *mapping.Node, typeName string, opts esmap.ConvertOptions) (*Views, error) {
	out, err := ProjectOutputType(reg, node, typeName, opts)
	if err != nil {
		return nil, err
	}
	v := &Views{Output: out}
	if v.Aggregatable, err = ProjectAggregatable(reg, node, typeName+"Aggregatable", opts); err != nil {
		return nil, err
	}
	if v.Searchable, err = ProjectSearchable(reg, node, typeName+"Searchable", opts); err != nil {
		return nil, err
	}
	if v.Analyzed, err = ProjectAnalyzed(reg, node, typeName+"Analyzed", opts); err != nil {
		return nil, err
	}
	if v.Fields, err = InputFields(node, Searchable); err != nil {
		return nil, err
	}
	return v, nil
}

// Types lists the four views, output first.
func (v *Views) Types() []typesys.Type {
	return []typesys.Type{v.Output, v.Aggregatable, v.Searchable, v.Analyzed}
}
