package projector

import "github.com/reoring/esmap/typesys"

// typeMap maps Elasticsearch data types to produced scalar types.
var typeMap = map[string]typesys.Type{
	"text":         typesys.String,
	"keyword":      typesys.String,
	"string":       typesys.String,
	"byte":         typesys.Int, // 8-bit integer
	"short":        typesys.Int, // 16-bit integer
	"integer":      typesys.Int, // 32-bit integer
	"long":         typesys.Int, // 64-bit, narrowed until a 64-bit scalar exists
	"double":       typesys.Float,
	"float":        typesys.Float,
	"half_float":   typesys.Float,
	"scaled_float": typesys.Float,
	"date":         typesys.Date,
	"boolean":      typesys.Boolean,
	"binary":       typesys.Buffer,
	"token_count":  typesys.Int,
	"ip":           typesys.String,
	"geo_point":    typesys.JSON,
	"geo_shape":    typesys.JSON,
	"object":       typesys.JSON,
	"nested":       typesys.ListOf(typesys.JSON),
	"completion":   typesys.String,
}

// ScalarFor returns the type exposed for an Elasticsearch leaf type. Unknown
// types fall back to the JSON scalar so that new Elasticsearch types never
// break schema construction.
func ScalarFor(elasticType string) typesys.Type {
	if t, ok := typeMap[elasticType]; ok {
		return t
	}
	return typesys.JSON
}
