// Package jsonschema exports produced types as JSON Schema documents.
package jsonschema

import "github.com/reoring/esmap/typesys"

// Schema is a minimal JSON Schema representation used for export.
type Schema struct {
	// Core
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`
	Enum        []any  `json:"enum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`

	// String
	ContentEncoding string `json:"contentEncoding,omitempty"`
}

// Export renders t as a JSON Schema. Object and input object types become
// closed objects, enums become string enums of their symbols, and the JSON
// scalar becomes the empty (accept anything) schema.
func Export(t typesys.Type) *Schema {
	switch tt := t.(type) {
	case *typesys.List:
		return &Schema{Type: "array", Items: Export(tt.Of())}
	case *typesys.Object:
		s := &Schema{Title: tt.Name(), Description: tt.Description(), Type: "object", AdditionalProperties: false}
		s.Properties = make(map[string]*Schema, len(tt.Fields()))
		for _, f := range tt.Fields() {
			fs := Export(f.Type)
			if f.Description != "" {
				fs.Description = f.Description
			}
			s.Properties[f.Name] = fs
		}
		return s
	case *typesys.InputObject:
		s := &Schema{Title: tt.Name(), Description: tt.Description(), Type: "object", AdditionalProperties: false}
		s.Properties = make(map[string]*Schema, len(tt.Fields()))
		for _, f := range tt.Fields() {
			s.Properties[f.Name] = Export(f.Type)
		}
		return s
	case *typesys.Enum:
		s := &Schema{Title: tt.Name(), Description: tt.Description(), Type: "string"}
		for _, v := range tt.Values() {
			s.Enum = append(s.Enum, v.Name)
		}
		return s
	case *typesys.Scalar:
		return scalar(tt)
	}
	return &Schema{}
}

func scalar(s *typesys.Scalar) *Schema {
	switch s {
	case typesys.String:
		return &Schema{Type: "string"}
	case typesys.Int:
		return &Schema{Type: "integer"}
	case typesys.Float:
		return &Schema{Type: "number"}
	case typesys.Boolean:
		return &Schema{Type: "boolean"}
	case typesys.Date:
		return &Schema{Type: "string", Format: "date-time"}
	case typesys.Buffer:
		return &Schema{Type: "string", ContentEncoding: "base64"}
	}
	return &Schema{Description: s.Description()}
}
