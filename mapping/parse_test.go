package mapping_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/reoring/esmap"
	"github.com/reoring/esmap/mapping"
)

const userMappingJSON = `{
  "properties": {
    "name":  {"type": "text", "fields": {"raw": {"type": "keyword"}}},
    "age":   {"type": "integer"},
    "user":  {"properties": {"address": {"properties": {"city": {"type": "keyword"}}}}},
    "notes": {"type": "text", "index": false, "analyzer": "english"}
  }
}`

func TestParseJSON_KeepsDocumentOrder(t *testing.T) {
	root, d, err := mapping.ParseJSON([]byte(userMappingJSON), mapping.Options{})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if d.HasWarnings() {
		t.Fatalf("unexpected warnings: %v", d.Warnings())
	}
	if got, want := root.Properties.Names(), []string{"name", "age", "user", "notes"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("order=%v want %v", got, want)
	}
	name, _ := root.Properties.Get("name")
	if !name.IsLeaf() || name.Type != "text" {
		t.Fatalf("name should be a text leaf: %+v", name)
	}
	raw, ok := name.Fields.Get("raw")
	if !ok || raw.Type != "keyword" {
		t.Fatalf("expected raw multi-field, got %+v", name.Fields)
	}
	notes, _ := root.Properties.Get("notes")
	if notes.Indexed() {
		t.Fatalf("notes should not be indexed")
	}
	if notes.Params["analyzer"] != "english" {
		t.Fatalf("params not kept: %v", notes.Params)
	}
	city, ok := root.Lookup("user", "address", "city")
	if !ok || city.Type != "keyword" {
		t.Fatalf("lookup user.address.city failed")
	}
	if _, ok := root.Lookup("name", "raw"); ok {
		t.Fatalf("lookup must not follow multi-fields")
	}
}

func TestParseYAML(t *testing.T) {
	src := []byte(`
mappings:
  properties:
    title:
      type: text
    published:
      type: date
      format: yyyy-MM-dd
    tags:
      type: keyword
      index: "false"
`)
	root, _, err := mapping.ParseYAML(src, mapping.Options{})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if got, want := root.Properties.Names(), []string{"title", "published", "tags"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("order=%v want %v", got, want)
	}
	tags, _ := root.Properties.Get("tags")
	if tags.Indexed() {
		t.Fatalf("index: \"false\" should disable indexing")
	}
}

func TestParseYAML_DuplicateKey(t *testing.T) {
	src := []byte("properties:\n  a:\n    type: text\n  a:\n    type: keyword\n")
	_, _, err := mapping.ParseYAML(src, mapping.Options{})
	var dk *mapping.DuplicateKeyError
	if !errors.As(err, &dk) || dk.Key != "a" || dk.Line != 4 {
		t.Fatalf("expected duplicate key error at line 4, got %v", err)
	}
}

func TestParseJSON_DuplicateKey(t *testing.T) {
	_, _, err := mapping.ParseJSON([]byte(`{"properties":{"a":{"type":"text"},"a":{"type":"long"}}}`), mapping.Options{})
	var dk *mapping.DuplicateKeyError
	if !errors.As(err, &dk) || dk.Key != "a" {
		t.Fatalf("expected duplicate key error, got %v", err)
	}
}

func TestParse_GoValues_SortedAndUnwrapped(t *testing.T) {
	doc := map[string]any{
		"my-index": map[string]any{
			"mappings": map[string]any{
				"properties": map[string]any{
					"zeta":  map[string]any{"type": "keyword"},
					"alpha": map[string]any{"type": "object", "properties": map[string]any{"b": map[string]any{"type": "long"}}},
				},
			},
		},
	}
	root, _, err := mapping.Parse(doc, mapping.Options{})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if got, want := root.Properties.Names(), []string{"alpha", "zeta"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("order=%v want %v", got, want)
	}
	alpha, _ := root.Properties.Get("alpha")
	if !alpha.IsObject() || alpha.Type != "object" {
		t.Fatalf("alpha should be an object node: %+v", alpha)
	}
}

func TestParse_InvalidMapping_CollectsIssues(t *testing.T) {
	doc := map[string]any{
		"properties": map[string]any{
			"a": map[string]any{"index": true},
			"b": map[string]any{"type": "keyword", "properties": map[string]any{}},
			"c": "text",
			"d": map[string]any{"type": "text", "index": 3},
		},
	}
	_, _, err := mapping.Parse(doc, mapping.Options{})
	if !errors.Is(err, esmap.ErrInvalidMapping) {
		t.Fatalf("expected ErrInvalidMapping, got %v", err)
	}
	iss, ok := esmap.AsIssues(err)
	if !ok || len(iss) != 4 {
		t.Fatalf("expected 4 issues, got %v", err)
	}
	paths := map[string]bool{}
	for _, it := range iss {
		paths[it.Path] = true
	}
	for _, p := range []string{"/properties/a", "/properties/b", "/properties/c", "/properties/d/index"} {
		if !paths[p] {
			t.Fatalf("missing issue at %s: %v", p, iss)
		}
	}
}

func TestParse_RootWithoutProperties(t *testing.T) {
	_, _, err := mapping.Parse(map[string]any{"type": "keyword"}, mapping.Options{})
	if !errors.Is(err, esmap.ErrInvalidMapping) {
		t.Fatalf("expected ErrInvalidMapping, got %v", err)
	}
	_, _, err = mapping.ParseJSON([]byte(`[1,2]`), mapping.Options{})
	if !errors.Is(err, esmap.ErrInvalidMapping) {
		t.Fatalf("expected ErrInvalidMapping for array root, got %v", err)
	}
}

func TestParse_AmbiguousFieldName(t *testing.T) {
	src := []byte(`{"properties":{"user":{"properties":{"first__name":{"type":"text"}}}}}`)
	_, _, err := mapping.ParseJSON(src, mapping.Options{})
	if !errors.Is(err, esmap.ErrAmbiguousFieldName) {
		t.Fatalf("expected ErrAmbiguousFieldName, got %v", err)
	}
	iss, _ := esmap.AsIssues(err)
	if iss[0].Path != "/properties/user/properties/first__name" {
		t.Fatalf("path=%s", iss[0].Path)
	}

	root, d, err := mapping.ParseJSON(src, mapping.Options{AllowAmbiguousNames: true})
	if err != nil {
		t.Fatalf("lenient parse err: %v", err)
	}
	if !d.HasWarnings() || root == nil {
		t.Fatalf("expected a warning in lenient mode")
	}
}

func TestParse_FieldNameCollision(t *testing.T) {
	src := []byte(`{"properties":{"a":{"properties":{"b":{"type":"long"}}},"a.b":{"type":"keyword"}}}`)
	_, _, err := mapping.ParseJSON(src, mapping.Options{})
	if !errors.Is(err, esmap.ErrFieldNameCollision) {
		t.Fatalf("expected ErrFieldNameCollision, got %v", err)
	}
}

func TestWalk(t *testing.T) {
	root, _, err := mapping.ParseJSON([]byte(userMappingJSON), mapping.Options{})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	var visited []string
	err = root.Walk(func(path []string, n *mapping.Node, multi bool) error {
		p := ""
		for i, s := range path {
			if i > 0 {
				p += "."
			}
			p += s
		}
		if multi {
			p += "*"
		}
		visited = append(visited, p)
		if p == "user.address" {
			return mapping.SkipChildren
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk err: %v", err)
	}
	want := []string{"name", "name.raw*", "age", "user", "user.address", "notes"}
	if !reflect.DeepEqual(visited, want) {
		t.Fatalf("visited=%v want %v", visited, want)
	}
}

func TestBuilders(t *testing.T) {
	n := mapping.Object(
		mapping.Prop("title", mapping.Leaf("text").WithFields(mapping.Prop("raw", mapping.Leaf("keyword")))),
		mapping.Prop("secret", mapping.Leaf("keyword").NotIndexed()),
	)
	if !n.IsObject() || n.IsLeaf() {
		t.Fatalf("object builder")
	}
	if e := mapping.Object(); !e.IsObject() {
		t.Fatalf("empty object must still be an object")
	}
	s, _ := n.Properties.Get("secret")
	if s.Indexed() {
		t.Fatalf("NotIndexed")
	}
}
