package rehydrate

import (
	"sort"
	"strings"
)

// ClauseKind tells the rehydrator how to treat the argument of a query key.
type ClauseKind int

const (
	// Passthrough keys are copied unchanged.
	Passthrough ClauseKind = iota
	// Leaf clauses are keyed by field name; their keys are decoded.
	Leaf
	// Compound clauses hold sub-queries and are handed to a Preparer.
	Compound
	// PostFilter holds a whole query tree.
	PostFilter
	// Nested carries a field path and a sub-query.
	Nested
)

func (k ClauseKind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case Compound:
		return "compound"
	case PostFilter:
		return "post_filter"
	case Nested:
		return "nested"
	default:
		return "passthrough"
	}
}

var clauseKinds = map[string]ClauseKind{
	// full text
	"match":               Leaf,
	"match_phrase":        Leaf,
	"match_phrase_prefix": Leaf,
	"common":              Leaf,
	// term level
	"fuzzy":    Leaf,
	"prefix":   Leaf,
	"range":    Leaf,
	"regexp":   Leaf,
	"term":     Leaf,
	"terms":    Leaf,
	"wildcard": Leaf,

	"bool":           Compound,
	"constant_score": Compound,
	"dis_max":        Compound,
	"boosting":       Compound,
	"function_score": Compound,

	"post_filter": PostFilter,
	"nested":      Nested,
}

// Classify returns the built-in kind of a query key. Every geo_* key is a
// leaf clause.
func Classify(key string) ClauseKind {
	if k, ok := clauseKinds[key]; ok {
		return k
	}
	if strings.HasPrefix(key, "geo_") {
		return Leaf
	}
	return Passthrough
}

// LeafClauses returns the named leaf clause keys, without the geo_* family.
func LeafClauses() []string { return keysOf(Leaf) }

// CompoundClauses returns the compound clause keys that have a default
// preparer.
func CompoundClauses() []string { return keysOf(Compound) }

func keysOf(kind ClauseKind) []string {
	var out []string
	for k, v := range clauseKinds {
		if v == kind {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
