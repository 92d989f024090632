package fieldname_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/reoring/esmap/fieldname"
)

func TestToFlat_ToCanonical(t *testing.T) {
	cases := []struct {
		canonical string
		flat      string
	}{
		{"title", "title"},
		{"user.address.city", "user__address__city"},
		{"title.raw", "title__raw"},
		{"", ""},
	}
	for _, c := range cases {
		if got := fieldname.ToFlat(c.canonical); got != c.flat {
			t.Fatalf("ToFlat(%q)=%q want %q", c.canonical, got, c.flat)
		}
		if got := fieldname.ToCanonical(c.flat); got != c.canonical {
			t.Fatalf("ToCanonical(%q)=%q want %q", c.flat, got, c.canonical)
		}
	}
}

func TestRoundTrip_NoDoubleUnderscore(t *testing.T) {
	for _, p := range []string{"a", "a.b", "user_name.first_name", "_class", "x._meta", "a.b_", "geo.location.lat"} {
		if !fieldname.RoundTrips(p) {
			t.Fatalf("expected %q to round trip, got %q", p, fieldname.ToCanonical(fieldname.ToFlat(p)))
		}
	}
}

func TestRoundTrip_AmbiguousPaths(t *testing.T) {
	for _, p := range []string{"a__b", "a_.b", "a._.b"} {
		if fieldname.RoundTrips(p) {
			t.Fatalf("expected %q not to round trip", p)
		}
	}
}

func TestValidatePath(t *testing.T) {
	if err := fieldname.ValidatePath([]string{"user", "address", "city"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	err := fieldname.ValidatePath([]string{"user", "first__name"})
	var se *fieldname.SegmentError
	if !errors.As(err, &se) || se.Segment != "first__name" {
		t.Fatalf("expected SegmentError for first__name, got %v", err)
	}
	err = fieldname.ValidatePath([]string{"a_", "b"})
	if !errors.As(err, &se) || se.Segment != "a_.b" {
		t.Fatalf("expected SegmentError for a_.b, got %v", err)
	}
	if err := fieldname.ValidateSegment(""); err == nil {
		t.Fatalf("expected error for empty segment")
	}
}

func TestJoinAndSplit(t *testing.T) {
	if got := fieldname.Join("", "user", "", "city"); got != "user__city" {
		t.Fatalf("Join=%q", got)
	}
	if got := fieldname.JoinCanonical("user", "city"); got != "user.city" {
		t.Fatalf("JoinCanonical=%q", got)
	}
	if got := fieldname.Split("user.city"); !reflect.DeepEqual(got, []string{"user", "city"}) {
		t.Fatalf("Split=%v", got)
	}
	if got := fieldname.Split(""); got != nil {
		t.Fatalf("Split(\"\")=%v", got)
	}
}

func TestUnder(t *testing.T) {
	paths := []string{"tags", "user.emails", "user.address.lines", "username.x"}
	got := fieldname.Under("user", paths)
	want := []string{"emails", "address.lines"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Under=%v want %v", got, want)
	}
	if got := fieldname.Under("missing", paths); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestRenameKeys(t *testing.T) {
	in := map[string]any{"user__address__city": "X", "title": map[string]any{"a__b": 1}}
	out := fieldname.RenameKeys(in)
	if out["user.address.city"] != "X" {
		t.Fatalf("renamed key missing: %v", out)
	}
	nested, _ := out["title"].(map[string]any)
	if _, ok := nested["a__b"]; !ok {
		t.Fatalf("nested keys must not be renamed: %v", nested)
	}
	if _, ok := in["user__address__city"]; !ok {
		t.Fatalf("input must not be modified")
	}
}
