package typesys

import (
	"bufio"
	"io"
	"strings"
)

// PrintSDL writes types in GraphQL schema definition language. Custom
// scalars referenced by the given types are declared first; built-in
// scalars and lists are never declared.
func PrintSDL(w io.Writer, types []Type) error {
	bw := bufio.NewWriter(w)
	p := &sdlPrinter{w: bw, seen: map[string]bool{}}
	for _, t := range types {
		p.collectScalars(t)
	}
	for _, s := range p.scalars {
		p.description(s.description, "")
		p.line("scalar " + s.name)
		p.line("")
	}
	for _, t := range types {
		p.print(t)
	}
	return bw.Flush()
}

// SDL returns the SDL of every registered type.
func (r *Registry) SDL() string {
	var b strings.Builder
	_ = PrintSDL(&b, r.Types())
	return b.String()
}

type sdlPrinter struct {
	w       *bufio.Writer
	seen    map[string]bool
	scalars []*Scalar
}

func (p *sdlPrinter) line(s string) {
	p.w.WriteString(s)
	p.w.WriteByte('\n')
}

func (p *sdlPrinter) description(d, indent string) {
	if d == "" {
		return
	}
	p.line(indent + `"""` + d + `"""`)
}

func (p *sdlPrinter) addScalar(t Type) {
	s, ok := Unwrap(t).(*Scalar)
	if !ok || s.builtin || p.seen[s.name] {
		return
	}
	p.seen[s.name] = true
	p.scalars = append(p.scalars, s)
}

func (p *sdlPrinter) collectScalars(t Type) {
	switch tt := Unwrap(t).(type) {
	case *Scalar:
		p.addScalar(tt)
	case *Object:
		for _, f := range tt.fields {
			p.addScalar(f.Type)
		}
	case *InputObject:
		for _, f := range tt.fields {
			p.addScalar(f.Type)
		}
	}
}

func (p *sdlPrinter) print(t Type) {
	switch tt := t.(type) {
	case *Object:
		p.description(tt.description, "")
		p.line("type " + tt.name + " {")
		for _, f := range tt.fields {
			p.description(f.Description, "  ")
			p.line("  " + f.Name + ": " + f.Type.Name())
		}
		p.line("}")
		p.line("")
	case *InputObject:
		p.description(tt.description, "")
		p.line("input " + tt.name + " {")
		for _, f := range tt.fields {
			p.description(f.Description, "  ")
			p.line("  " + f.Name + ": " + f.Type.Name())
		}
		p.line("}")
		p.line("")
	case *Enum:
		p.description(tt.description, "")
		p.line("enum " + tt.name + " {")
		for _, v := range tt.values {
			p.description(v.Description, "  ")
			p.line("  " + v.Name)
		}
		p.line("}")
		p.line("")
	}
}
