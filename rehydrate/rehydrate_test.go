package rehydrate_test

import (
	"reflect"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/reoring/esmap/projector"
	"github.com/reoring/esmap/rehydrate"
	"github.com/reoring/esmap/typesys"
)

func obj(kv ...any) map[string]any {
	m := map[string]any{}
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i].(string)] = kv[i+1]
	}
	return m
}

func TestClassify(t *testing.T) {
	cases := map[string]rehydrate.ClauseKind{
		"term":             rehydrate.Leaf,
		"match_phrase":     rehydrate.Leaf,
		"geo_distance":     rehydrate.Leaf,
		"geo_anything_new": rehydrate.Leaf,
		"bool":             rehydrate.Compound,
		"function_score":   rehydrate.Compound,
		"post_filter":      rehydrate.PostFilter,
		"nested":           rehydrate.Nested,
		"match_all":        rehydrate.Passthrough,
		"exists":           rehydrate.Passthrough,
	}
	for key, want := range cases {
		if got := rehydrate.Classify(key); got != want {
			t.Errorf("Classify(%q)=%s want %s", key, got, want)
		}
	}
	if got := rehydrate.CompoundClauses(); !reflect.DeepEqual(got, []string{"bool", "boosting", "constant_score", "dis_max", "function_score"}) {
		t.Fatalf("compound=%v", got)
	}
	if got := len(rehydrate.LeafClauses()); got != 11 {
		t.Fatalf("leaf clauses=%d", got)
	}
}

func TestQuery_Term(t *testing.T) {
	r := rehydrate.New(nil)
	got := r.Query(obj("term", obj("user__address__city", "X")))
	want := obj("term", obj("user.address.city", "X"))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestQuery_BoolRecurses(t *testing.T) {
	r := rehydrate.New(nil)
	in := obj("bool", obj(
		"must", []any{obj("match", obj("title__raw", "x"))},
		"filter", obj("range", obj("stats__views", obj("gte", 10))),
		"minimum_should_match", 1,
	))
	got := r.Query(in)
	want := obj("bool", obj(
		"must", []any{obj("match", obj("title.raw", "x"))},
		"filter", obj("range", obj("stats.views", obj("gte", 10))),
		"minimum_should_match", 1,
	))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v\nwant %v", got, want)
	}
}

func TestQuery_Compounds(t *testing.T) {
	r := rehydrate.New(nil)
	cases := []struct {
		name    string
		in, out map[string]any
	}{
		{
			name: "constant_score",
			in:   obj("constant_score", obj("filter", obj("term", obj("a__b", 1)), "boost", 2)),
			out:  obj("constant_score", obj("filter", obj("term", obj("a.b", 1)), "boost", 2)),
		},
		{
			name: "dis_max",
			in:   obj("dis_max", obj("queries", []any{obj("term", obj("a__b", 1)), obj("match", obj("c__d", "x"))})),
			out:  obj("dis_max", obj("queries", []any{obj("term", obj("a.b", 1)), obj("match", obj("c.d", "x"))})),
		},
		{
			name: "boosting",
			in:   obj("boosting", obj("positive", obj("term", obj("a__b", 1)), "negative", obj("term", obj("c__d", 2)), "negative_boost", 0.5)),
			out:  obj("boosting", obj("positive", obj("term", obj("a.b", 1)), "negative", obj("term", obj("c.d", 2)), "negative_boost", 0.5)),
		},
		{
			name: "function_score",
			in: obj("function_score", obj(
				"query", obj("match", obj("a__b", "x")),
				"functions", []any{obj("filter", obj("term", obj("c__d", 1)), "weight", 3), "opaque"},
			)),
			out: obj("function_score", obj(
				"query", obj("match", obj("a.b", "x")),
				"functions", []any{obj("filter", obj("term", obj("c.d", 1)), "weight", 3), "opaque"},
			)),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Query(tc.in); !reflect.DeepEqual(got, tc.out) {
				t.Fatalf("got %v\nwant %v", got, tc.out)
			}
		})
	}
}

func TestQuery_NestedAndPostFilter(t *testing.T) {
	r := rehydrate.New(nil)
	in := obj(
		"nested", obj("path", "comments__replies", "query", obj("term", obj("comments__replies__author", "bob")), "score_mode", "avg"),
		"post_filter", obj("geo_distance", obj("distance", "12km", "shop__location", obj("lat", 1, "lon", 2))),
	)
	got := r.Query(in)
	want := obj(
		"nested", obj("path", "comments.replies", "query", obj("term", obj("comments.replies.author", "bob")), "score_mode", "avg"),
		"post_filter", obj("geo_distance", obj("distance", "12km", "shop.location", obj("lat", 1, "lon", 2))),
	)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v\nwant %v", got, want)
	}
}

func TestQuery_PassthroughAndOddShapes(t *testing.T) {
	r := rehydrate.New(nil)
	in := obj(
		"exists", obj("field", "a__b"),
		"term", "not-an-object",
		"bool", []any{1, 2},
		"nested", obj("query", "x"),
		"size", 10,
	)
	got := r.Query(in)
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("got %v want %v", got, in)
	}
	if r.Query(nil) != nil {
		t.Fatal("nil query should stay nil")
	}
}

func TestQuery_DoesNotMutateInput(t *testing.T) {
	r := rehydrate.New(nil)
	in := obj("bool", obj("must", []any{obj("term", obj("a__b", 1))}),
		"nested", obj("path", "x__y", "query", obj("match", obj("x__y__z", "v"))))
	snapshot, _ := json.Marshal(in)
	_ = r.Query(in)
	after, _ := json.Marshal(in)
	if string(snapshot) != string(after) {
		t.Fatalf("input mutated:\n%s\n%s", snapshot, after)
	}
}

func TestWithPreparer(t *testing.T) {
	calls := 0
	r := rehydrate.New(nil,
		rehydrate.WithPreparer("bool", func(r *rehydrate.Rehydrator, clause any) any {
			calls++
			return "replaced"
		}),
		rehydrate.WithPreparer("script_score", rehydrate.SubQueries("query")),
	)
	got := r.Query(obj(
		"bool", obj("must", obj("term", obj("a__b", 1))),
		"script_score", obj("query", obj("term", obj("c__d", 1)), "script", "s"),
	))
	want := obj(
		"bool", "replaced",
		"script_score", obj("query", obj("term", obj("c.d", 1)), "script", "s"),
	)
	if !reflect.DeepEqual(got, want) || calls != 1 {
		t.Fatalf("got %v (calls=%d)", got, calls)
	}
}

func TestUnknownFields(t *testing.T) {
	fields := projector.NewFieldMap()
	fields.Set("title", typesys.String)
	fields.Set("user__name", typesys.String)

	r := rehydrate.New(fields)
	q := obj(
		"bool", obj("must", []any{
			obj("match", obj("title", "x", "_name", "q1")),
			obj("term", obj("user__nmae", "bob")),
			obj("term", obj("user__nmae", "alice")),
		}),
		"nested", obj("path", "tags", "query", obj("term", obj("tags__label", "go"))),
		"geo_distance", obj("distance", "5km", "user__name", obj()),
	)
	got := r.UnknownFields(q)
	if want := []string{"tags__label", "user__nmae"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("unknown=%v want %v", got, want)
	}
	if rehydrate.New(nil).UnknownFields(q) != nil {
		t.Fatal("no field set means no diagnostics")
	}
}

func TestJSON(t *testing.T) {
	r := rehydrate.New(nil)
	out, err := r.JSON([]byte(`{"range":{"stats__views":{"gte":12345678901234567890}}}`))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if want := `{"range":{"stats.views":{"gte":12345678901234567890}}}`; string(out) != want {
		t.Fatalf("got %s want %s", out, want)
	}
	if _, err := r.JSON([]byte(`{"term":{}} {}`)); err == nil || !strings.Contains(err.Error(), "unexpected data") {
		t.Fatalf("expected trailing data error, got %v", err)
	}
	if _, err := r.JSON([]byte(`[1]`)); err == nil {
		t.Fatal("expected error for a non-object query")
	}
}

func TestWithPreparer_NilRemoves(t *testing.T) {
	r := rehydrate.New(nil, rehydrate.WithPreparer("bool", nil), rehydrate.WithPreparer("script_score", nil))
	in := obj(
		"bool", obj("must", obj("term", obj("a__b", 1))),
		"script_score", obj("query", obj("term", obj("c__d", 1))),
		"term", obj("e__f", 2),
	)
	got := r.Query(in)
	want := obj(
		"bool", obj("must", obj("term", obj("a__b", 1))),
		"script_score", obj("query", obj("term", obj("c__d", 1))),
		"term", obj("e.f", 2),
	)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v\nwant %v", got, want)
	}
}
