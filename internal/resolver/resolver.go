// Package resolver walks a parsed JSON document and synthesizes typed record
// definitions from its shape. Nested objects carrying a discriminator member
// are hoisted into independently named definitions on a shared registry; all
// other structure is attributed to the enclosing type.
package resolver

import (
	"fmt"

	"github.com/jmatley/ldtyper/internal/config"
)

// Diagnostic records a field that was skipped rather than typed. Skips never
// abort a run; the driver surfaces them after generation.
type Diagnostic struct {
	Path   string
	Reason string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Path, d.Reason)
}

// Resolver performs the recursive walk for one document. It is not safe for
// concurrent use; create one per generation run.
type Resolver struct {
	cfg         *config.Config
	diagnostics []Diagnostic
}

// NewResolver creates a Resolver with default configuration.
func NewResolver() *Resolver {
	return NewResolverWithConfig(config.NewConfig())
}

// NewResolverWithConfig creates a Resolver with custom configuration.
func NewResolverWithConfig(cfg *config.Config) *Resolver {
	return &Resolver{cfg: cfg}
}

// Diagnostics returns the notes collected so far, in encounter order.
func (r *Resolver) Diagnostics() []Diagnostic {
	return r.diagnostics
}

func (r *Resolver) note(path, reason string) {
	r.diagnostics = append(r.diagnostics, Diagnostic{Path: path, Reason: reason})
}

// fieldIdentifier derives the identifier for a JSON key, honoring configured
// overrides before the normalization rule.
func (r *Resolver) fieldIdentifier(jsonKey string) string {
	if mapped, ok := r.cfg.FieldOverride(jsonKey); ok {
		return mapped
	}
	return NormalizeIdentifier(jsonKey)
}
