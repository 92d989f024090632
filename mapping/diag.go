package mapping

import "fmt"

// Diag carries non-fatal warnings produced during ingestion.
type Diag interface {
	HasWarnings() bool
	Warnings() []string
}

type simpleDiag struct{ ws []string }

func (d *simpleDiag) HasWarnings() bool        { return len(d.ws) > 0 }
func (d *simpleDiag) Warnings() []string       { return append([]string(nil), d.ws...) }
func (d *simpleDiag) warnf(f string, a ...any) { d.ws = append(d.ws, fmt.Sprintf(f, a...)) }

// Options controls ingestion.
type Options struct {
	// AllowAmbiguousNames reports field names that do not flatten reversibly,
	// and flat-name collisions, as warnings instead of failing.
	AllowAmbiguousNames bool
}
