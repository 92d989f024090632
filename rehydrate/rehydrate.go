// Package rehydrate turns query arguments written with flat field names
// (user__address__city) back into the dotted paths Elasticsearch expects.
//
// The walk is total: unknown keys and unexpected shapes are copied as-is and
// nothing is ever rejected, since malformed queries are reported by the
// search engine itself. The input tree is never mutated. Values that are
// not rewritten are shared between input and output.
package rehydrate

import (
	"sort"

	"github.com/reoring/esmap/fieldname"
)

// FieldSet reports whether a flat field name is known. *projector.FieldMap
// implements it.
type FieldSet interface {
	Has(flat string) bool
}

// Preparer rehydrates the argument of a compound clause. It calls back into
// r for every sub-query it holds and must not mutate clause.
type Preparer func(r *Rehydrator, clause any) any

// Option configures a Rehydrator.
type Option func(*Rehydrator)

// WithPreparer installs p for key, replacing the default preparer. A key
// with a preparer is treated as a compound clause whatever Classify says.
// A nil p removes the preparer; the clause is then copied unchanged.
func WithPreparer(key string, p Preparer) Option {
	return func(r *Rehydrator) {
		if p == nil {
			delete(r.preparers, key)
			return
		}
		r.preparers[key] = p
	}
}

// Rehydrator decodes flat field names inside query trees. It holds no
// per-call state and is safe for concurrent use.
type Rehydrator struct {
	fields    FieldSet
	preparers map[string]Preparer
	// onField observes every decoded leaf key; set only on per-call copies.
	onField func(flat string)
}

// New returns a Rehydrator. fields is only consulted by UnknownFields and
// may be nil.
func New(fields FieldSet, opts ...Option) *Rehydrator {
	r := &Rehydrator{fields: fields, preparers: defaultPreparers()}
	for _, o := range opts {
		o(r)
	}
	return r
}

// kind is Classify adjusted to the installed preparers: a compound clause
// without one is copied unchanged.
func (r *Rehydrator) kind(key string) ClauseKind {
	if _, ok := r.preparers[key]; ok {
		return Compound
	}
	if k := Classify(key); k != Compound {
		return k
	}
	return Passthrough
}

// Query returns a copy of query with every flat field name decoded.
func (r *Rehydrator) Query(query map[string]any) map[string]any {
	if query == nil {
		return nil
	}
	out := make(map[string]any, len(query))
	for key, v := range query {
		switch r.kind(key) {
		case Leaf:
			out[key] = r.leaf(v)
		case Compound:
			out[key] = r.preparers[key](r, v)
		case PostFilter:
			out[key] = r.Value(v)
		case Nested:
			out[key] = r.nested(v)
		default:
			out[key] = v
		}
	}
	return out
}

// Value rehydrates a query or a list of queries. Anything else is returned
// unchanged.
func (r *Rehydrator) Value(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return r.Query(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			if q, ok := e.(map[string]any); ok {
				out[i] = r.Query(q)
			} else {
				out[i] = e
			}
		}
		return out
	}
	return v
}

func (r *Rehydrator) leaf(v any) any {
	args, ok := v.(map[string]any)
	if !ok {
		return v
	}
	if r.onField != nil {
		for k := range args {
			r.onField(k)
		}
	}
	return fieldname.RenameKeys(args)
}

func (r *Rehydrator) nested(v any) any {
	args, ok := v.(map[string]any)
	if !ok {
		return v
	}
	out := copyMap(args)
	if p, ok := args["path"].(string); ok {
		out["path"] = fieldname.ToCanonical(p)
	}
	if q, ok := args["query"].(map[string]any); ok {
		out["query"] = r.Query(q)
	}
	return out
}

// UnknownFields lists the flat field names used as leaf clause keys in query
// that the field set does not know, in sorted order without duplicates. It
// returns nil when the Rehydrator has no field set.
func (r *Rehydrator) UnknownFields(query map[string]any) []string {
	if r.fields == nil {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	probe := *r
	probe.onField = func(flat string) {
		if seen[flat] || clauseParams[flat] || r.fields.Has(flat) {
			return
		}
		seen[flat] = true
		out = append(out, flat)
	}
	probe.Query(query)
	sort.Strings(out)
	return out
}

// clauseParams are leaf clause keys that are options, not fields.
var clauseParams = map[string]bool{
	"_all":              true,
	"_name":             true,
	"boost":             true,
	"distance":          true,
	"distance_type":     true,
	"validation_method": true,
	"ignore_unmapped":   true,
	"type":              true,
}

func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
