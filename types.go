package esmap

import "strings"

// ConvertOptions carries the naming and plurality knobs shared by every
// projection call.
type ConvertOptions struct {
	Prefix  string // Prepended to every composed type name.
	Postfix string // Appended to every composed type name.

	// PluralFields lists canonical (dotted) paths of fields holding several
	// values. Paths are relative to the node handed to the projector.
	PluralFields []string

	// LenientPlural accepts PluralFields entries that do not name a
	// structural path of the mapping instead of failing with
	// unknown_plural_field.
	LenientPlural bool
}

// TypeName composes prefix + name + postfix.
func (o ConvertOptions) TypeName(name string) string {
	return o.Prefix + name + o.Postfix
}

// IsPlural reports whether the direct child name is listed in PluralFields.
func (o ConvertOptions) IsPlural(name string) bool {
	for _, p := range o.PluralFields {
		if p == name {
			return true
		}
	}
	return false
}

// UpperFirst upper-cases the first byte of s when it is an ASCII letter.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	c := s[0]
	if c >= 'a' && c <= 'z' {
		return strings.ToUpper(s[:1]) + s[1:]
	}
	return s
}
