package esmap

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidMapping     = "invalid_mapping"
	CodeInvalidTypeName    = "invalid_type_name"
	CodeAmbiguousFieldName = "ambiguous_field_name"
	CodeFieldNameCollision = "field_name_collision"
	CodeUnknownPluralField = "unknown_plural_field"
	CodeTypeConflict       = "type_conflict"
)

// Sentinel errors matched by errors.Is against an Issue or Issues carrying the
// corresponding code.
var (
	ErrInvalidMapping     = errors.New("esmap: invalid mapping")
	ErrInvalidTypeName    = errors.New("esmap: invalid type name")
	ErrAmbiguousFieldName = errors.New("esmap: ambiguous field name")
	ErrFieldNameCollision = errors.New("esmap: field name collision")
	ErrUnknownPluralField = errors.New("esmap: unknown plural field")
	ErrTypeConflict       = errors.New("esmap: type conflict")
)

var sentinels = map[string]error{
	CodeInvalidMapping:     ErrInvalidMapping,
	CodeInvalidTypeName:    ErrInvalidTypeName,
	CodeAmbiguousFieldName: ErrAmbiguousFieldName,
	CodeFieldNameCollision: ErrFieldNameCollision,
	CodeUnknownPluralField: ErrUnknownPluralField,
	CodeTypeConflict:       ErrTypeConflict,
}

// Issue represents a single construction error.
type Issue struct {
	Path    string // JSON Pointer into the mapping document (for example: /properties/user/fields/raw).
	Code    string // One of the codes listed above.
	Message string
	// Params carries structured parameters (e.g., {"field":"a__b"}) for
	// callers that render their own messages.
	Params map[string]any
}

func (it Issue) Error() string {
	if it.Path == "" {
		return fmt.Sprintf("%s: %s", it.Code, it.Message)
	}
	return fmt.Sprintf("%s at %s: %s", it.Code, it.Path, it.Message)
}

// Unwrap exposes the sentinel error for the issue code.
func (it Issue) Unwrap() error { return sentinels[it.Code] }

// Issues is a collection of construction errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_mapping at /properties/a
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap lets errors.Is see every issue in the collection.
func (iss Issues) Unwrap() []error {
	out := make([]error, 0, len(iss))
	for _, it := range iss {
		out = append(out, it)
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally. A single
// Issue is returned as a one-element collection.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	var it Issue
	if errors.As(err, &it) {
		return Issues{it}, true
	}
	return nil, false
}

// HasCode reports whether err carries an issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}
