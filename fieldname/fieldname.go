// Package fieldname converts between canonical field paths (segments joined
// by ".") and flat identifiers (segments joined by "__").
//
// The conversion is a bijection only for paths whose segments survive the
// round trip, which excludes segments containing "__" and segments whose
// leading or trailing underscores merge with the separator. ValidateSegment
// and RoundTrips detect those cases; ToFlat and ToCanonical never fail.
package fieldname

import (
	"fmt"
	"strings"
)

const (
	// Separator joins segments of a flat identifier.
	Separator = "__"
	// Dot joins segments of a canonical path.
	Dot = "."
)

// ToFlat replaces every "." with "__".
func ToFlat(canonical string) string {
	return strings.ReplaceAll(canonical, Dot, Separator)
}

// ToCanonical replaces every "__" with ".".
func ToCanonical(flat string) string {
	return strings.ReplaceAll(flat, Separator, Dot)
}

// Join builds a flat identifier from path segments, skipping empty ones.
func Join(segments ...string) string {
	return join(Separator, segments)
}

// JoinCanonical builds a canonical path from path segments, skipping empty ones.
func JoinCanonical(segments ...string) string {
	return join(Dot, segments)
}

func join(sep string, segments []string) string {
	var b strings.Builder
	for _, s := range segments {
		if s == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(s)
	}
	return b.String()
}

// Split breaks a canonical path into its segments.
func Split(canonical string) []string {
	if canonical == "" {
		return nil
	}
	return strings.Split(canonical, Dot)
}

// RoundTrips reports whether ToCanonical(ToFlat(canonical)) == canonical.
func RoundTrips(canonical string) bool {
	return ToCanonical(ToFlat(canonical)) == canonical
}

// SegmentError reports a path segment that cannot be flattened reversibly.
type SegmentError struct {
	Segment string
	Reason  string
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("field name %q %s", e.Segment, e.Reason)
}

// ValidateSegment checks that a single segment is non-empty and does not
// contain the separator.
func ValidateSegment(name string) error {
	switch {
	case name == "":
		return &SegmentError{Segment: name, Reason: "is empty"}
	case strings.Contains(name, Separator):
		return &SegmentError{Segment: name, Reason: "contains " + Separator}
	}
	return nil
}

// ValidatePath checks every segment of a path and that the flat rendering of
// the whole path decodes back to it. The second check catches underscores at
// segment edges merging with a separator (a_.b flattens to a___b, which
// decodes to a._b).
func ValidatePath(segments []string) error {
	for _, s := range segments {
		if err := ValidateSegment(s); err != nil {
			return err
		}
	}
	canonical := JoinCanonical(segments...)
	if !RoundTrips(canonical) {
		return &SegmentError{Segment: canonical, Reason: "does not decode back from " + ToFlat(canonical)}
	}
	return nil
}

// Under returns the entries of paths below prefix with "prefix." stripped.
// It is the relative view used when descending into a child named prefix.
func Under(prefix string, paths []string) []string {
	st := prefix + Dot
	var out []string
	for _, p := range paths {
		if strings.HasPrefix(p, st) {
			out = append(out, p[len(st):])
		}
	}
	return out
}

// RenameKeys returns a copy of obj with every top-level key decoded to its
// canonical form. Values are shared, not copied.
func RenameKeys(obj map[string]any) map[string]any {
	out := make(map[string]any, len(obj))
	for k, v := range obj {
		out[ToCanonical(k)] = v
	}
	return out
}
