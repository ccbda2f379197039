// Package engine drives one generation run: parsed document in, ordered type
// definitions out.
package engine

import (
	"github.com/jmatley/ldtyper/internal/config"
	"github.com/jmatley/ldtyper/internal/errors"
	"github.com/jmatley/ldtyper/internal/models"
	"github.com/jmatley/ldtyper/internal/parser"
	"github.com/jmatley/ldtyper/internal/resolver"
)

// DefaultRootName is the name for the implicit root type if none is given.
const DefaultRootName = "RootType"

// Result holds the outcome of a generation run. Types lists every definition
// in rendering order: hoisted types in discovery order first, the implicit
// root type always last, so name references resolve against types that were
// already emitted.
type Result struct {
	Types       []models.TypeDefinition
	Diagnostics []resolver.Diagnostic
}

// Root returns the implicit root type definition.
func (r Result) Root() models.TypeDefinition {
	return r.Types[len(r.Types)-1]
}

// Hoisted returns the hoisted definitions in discovery order.
func (r Result) Hoisted() []models.TypeDefinition {
	return r.Types[:len(r.Types)-1]
}

// Generate runs the resolver over a parsed document and assembles the final
// type set. Each call uses a fresh TypeRegistry; registries are never shared
// across runs. A root that is not a JSON object is a terminal failure.
func Generate(ir models.IntermediateRepresentation, cfg *config.Config) (Result, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	rootName := cfg.RootName
	if rootName == "" {
		rootName = DefaultRootName
	}

	root, ok := ir.Root.(models.JSONObject)
	if !ok {
		return Result{}, errors.NewResolveError("cannot derive types from a non-object document root", errors.ErrUnsupportedRoot)
	}

	reg := models.NewTypeRegistry()
	res := resolver.NewResolverWithConfig(cfg)

	rootFields := res.ResolveObject(resolver.Property{}, root, reg)

	types := make([]models.TypeDefinition, 0, reg.Len()+1)
	types = append(types, reg.Types()...)
	types = append(types, models.TypeDefinition{Name: rootName, Fields: rootFields})

	return Result{Types: types, Diagnostics: res.Diagnostics()}, nil
}

// GenerateString parses and generates in one step; convenience for callers
// holding the sample document as text.
func GenerateString(jsonText string, cfg *config.Config) (Result, error) {
	ir, err := parser.ParseString(jsonText)
	if err != nil {
		return Result{}, err
	}
	return Generate(ir, cfg)
}
