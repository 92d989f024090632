package rehydrate

func defaultPreparers() map[string]Preparer {
	return map[string]Preparer{
		"bool":           SubQueries("must", "filter", "should", "must_not"),
		"constant_score": SubQueries("filter"),
		"dis_max":        SubQueries("queries"),
		"boosting":       SubQueries("positive", "negative"),
		"function_score": prepareFunctionScore,
	}
}

// SubQueries returns a Preparer that rehydrates the listed keys of a clause.
// Each may hold one query or a list of queries; other keys are copied.
func SubQueries(keys ...string) Preparer {
	return func(r *Rehydrator, clause any) any {
		args, ok := clause.(map[string]any)
		if !ok {
			return clause
		}
		out := copyMap(args)
		for _, k := range keys {
			if v, ok := args[k]; ok {
				out[k] = r.Value(v)
			}
		}
		return out
	}
}

func prepareFunctionScore(r *Rehydrator, clause any) any {
	args, ok := clause.(map[string]any)
	if !ok {
		return clause
	}
	out := copyMap(args)
	if q, ok := args["query"]; ok {
		out["query"] = r.Value(q)
	}
	fns, ok := args["functions"].([]any)
	if !ok {
		return out
	}
	prepared := make([]any, len(fns))
	for i, fn := range fns {
		m, ok := fn.(map[string]any)
		if !ok {
			prepared[i] = fn
			continue
		}
		if f, ok := m["filter"]; ok {
			m = copyMap(m)
			m["filter"] = r.Value(f)
		}
		prepared[i] = m
	}
	out["functions"] = prepared
	return out
}
