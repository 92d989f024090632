package mapping

import (
	"fmt"
	"sort"
)

// object is a decoded JSON/YAML object that remembers key order.
type object struct {
	keys []string
	vals map[string]any
}

func newObject(n int) *object {
	return &object{keys: make([]string, 0, n), vals: make(map[string]any, n)}
}

func (o *object) set(k string, v any) {
	if _, ok := o.vals[k]; !ok {
		o.keys = append(o.keys, k)
	}
	o.vals[k] = v
}

func (o *object) get(k string) (any, bool) {
	v, ok := o.vals[k]
	return v, ok
}

// DuplicateKeyError reports a key that appears twice in one object. Line and
// Col are set for YAML input only.
type DuplicateKeyError struct {
	Key       string
	FirstLine int
	FirstCol  int
	Line      int
	Col       int
}

func (e *DuplicateKeyError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("duplicate key %q", e.Key)
	}
	return fmt.Sprintf("duplicate YAML key %q at %d:%d (first at %d:%d)", e.Key, e.Line, e.Col, e.FirstLine, e.FirstCol)
}

// fromGo converts decoded Go values (map[string]any, map[any]any, []any and
// primitives) into ordered objects. Map keys are sorted.
func fromGo(v any) any {
	switch t := v.(type) {
	case *object:
		return t
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		o := newObject(len(keys))
		for _, k := range keys {
			o.set(k, fromGo(t[k]))
		}
		return o
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			m[ks] = vv
		}
		return fromGo(m)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = fromGo(t[i])
		}
		return arr
	default:
		return v
	}
}

// toGo converts ordered objects back into plain maps.
func toGo(v any) any {
	switch t := v.(type) {
	case *object:
		m := make(map[string]any, len(t.keys))
		for _, k := range t.keys {
			m[k] = toGo(t.vals[k])
		}
		return m
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = toGo(t[i])
		}
		return arr
	default:
		return v
	}
}
