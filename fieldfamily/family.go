// Package fieldfamily builds enumerations and field maps restricted to the
// fields of a group of Elasticsearch types, such as every field usable in a
// term query or every date field.
//
// Enumeration symbols are flat field names (user__address__city) and their
// values are canonical paths (user.address.city), so parsing an enum argument
// yields the path Elasticsearch expects.
package fieldfamily

import "github.com/reoring/esmap/projector"

// Family is a named group of Elasticsearch types.
type Family struct {
	// Name prefixes the names of the types built for the family.
	Name string
	// Types lists the Elasticsearch types; projector.AllTypes stands for
	// every field.
	Types []string
	// AddAll adds a synthetic "_all" value.
	AddAll bool
}

var numericTypes = []string{"byte", "short", "integer", "long", "double", "float", "half_float", "scaled_float", "token_count"}

// Predefined families.
var (
	String     = Family{Name: "String", Types: []string{"text", "keyword", "string"}}
	Analyzed   = Family{Name: "Analyzed", Types: []string{"text", "string"}, AddAll: true}
	Keyword    = Family{Name: "Keyword", Types: []string{"keyword"}}
	Numeric    = Family{Name: "Numeric", Types: numericTypes}
	Date       = Family{Name: "Date", Types: []string{"date"}}
	Boolean    = Family{Name: "Boolean", Types: []string{"boolean"}}
	GeoPoint   = Family{Name: "GeoPoint", Types: []string{"geo_point"}}
	GeoShape   = Family{Name: "GeoShape", Types: []string{"geo_shape"}}
	Nested     = Family{Name: "Nested", Types: []string{"nested"}}
	Ip         = Family{Name: "Ip", Types: []string{"ip"}}
	Percolator = Family{Name: "Percolator", Types: []string{"percolator"}}
	Term       = Family{Name: "Term", Types: append([]string{"keyword", "date", "boolean", "ip"}, numericTypes...)}
	All        = Family{Name: "All", Types: []string{projector.AllTypes}}
)

// Families returns every predefined family.
func Families() []Family {
	return []Family{String, Analyzed, Keyword, Numeric, Date, Boolean, GeoPoint, GeoShape, Nested, Ip, Percolator, Term, All}
}
