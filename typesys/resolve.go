package typesys

// ResolveDocument materializes a retrieved document through an output type:
// every field's resolution rule runs against doc, and values of object-typed
// fields are resolved through the nested type. Fields resolving to nil are
// left out.
func ResolveDocument(o *Object, doc map[string]any) map[string]any {
	out := make(map[string]any, len(o.fields))
	for _, f := range o.fields {
		v := materialize(f.Type, f.Value(doc))
		if v != nil {
			out[f.Name] = v
		}
	}
	return out
}

func materialize(t Type, v any) any {
	switch tt := t.(type) {
	case *List:
		arr, ok := v.([]any)
		if !ok {
			return v
		}
		out := make([]any, len(arr))
		for i, e := range arr {
			out[i] = materialize(tt.of, e)
		}
		return out
	case *Object:
		m, ok := v.(map[string]any)
		if !ok {
			return v
		}
		return ResolveDocument(tt, m)
	default:
		return v
	}
}
