// Package renderer turns resolved type definitions into Go source. Wire-name
// fidelity is the contract here: every field serializes under its original
// JSON key via its struct tag, regardless of the normalized identifier.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/jmatley/ldtyper/internal/config"
	"github.com/jmatley/ldtyper/internal/models"
)

// Renderer renders type definitions from a generation run
type Renderer struct {
	cfg *config.Config
}

// NewRenderer creates a Renderer with default configuration
func NewRenderer() *Renderer {
	return NewRendererWithConfig(config.NewConfig())
}

// NewRendererWithConfig creates a Renderer with custom configuration
func NewRendererWithConfig(cfg *config.Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Render generates Go struct definitions for the given types, in the order
// given. Callers pass hoisted definitions before the root type so that the
// rendered file reads references-first; field order inside each struct is
// document order and is deliberately not sorted.
func (r *Renderer) Render(types []models.TypeDefinition, packageName string) (string, error) {
	var buf bytes.Buffer

	if header := r.cfg.Output.FileHeader; header != "" {
		buf.WriteString(header)
		if header[len(header)-1] != '\n' {
			buf.WriteString("\n")
		}
	}
	buf.WriteString(fmt.Sprintf("package %s\n", packageName))

	for _, def := range types {
		buf.WriteString("\n")
		r.renderStruct(&buf, def)

		if r.cfg.Output.GenerateConstructors && hasArrayField(def) {
			buf.WriteString("\n")
			r.renderConstructor(&buf, def)
		}
	}

	return buf.String(), nil
}

func (r *Renderer) renderStruct(buf *bytes.Buffer, def models.TypeDefinition) {
	buf.WriteString(fmt.Sprintf("type %s struct {\n", def.Name))

	// Width pass for field alignment, as gofmt would produce.
	maxNameWidth := 0
	maxTypeWidth := 0
	for _, field := range def.Fields {
		if w := len(field.Identifier); w > maxNameWidth {
			maxNameWidth = w
		}
		if w := len(goType(field)); w > maxTypeWidth {
			maxTypeWidth = w
		}
	}

	for _, field := range def.Fields {
		buf.WriteString(fmt.Sprintf("\t%-*s %-*s %s\n",
			maxNameWidth, field.Identifier,
			maxTypeWidth, goType(field),
			jsonTag(field)))
	}

	buf.WriteString("}\n")
}

// renderConstructor emits a constructor that materializes the empty-sequence
// default of array fields, so a freshly built value round-trips as [] rather
// than null.
func (r *Renderer) renderConstructor(buf *bytes.Buffer, def models.TypeDefinition) {
	buf.WriteString(fmt.Sprintf("func New%s() *%s {\n", def.Name, def.Name))
	buf.WriteString(fmt.Sprintf("\treturn &%s{\n", def.Name))
	for _, field := range def.Fields {
		switch field.Kind {
		case models.FieldStringArray:
			buf.WriteString(fmt.Sprintf("\t\t%s: []string{},\n", field.Identifier))
		case models.FieldNumberArray:
			buf.WriteString(fmt.Sprintf("\t\t%s: []float64{},\n", field.Identifier))
		}
	}
	buf.WriteString("\t}\n")
	buf.WriteString("}\n")
}

// goType converts a field descriptor to its Go type expression. Object
// references render as pointers: the reference is optional and resolved by
// name against a definition rendered earlier in the file.
func goType(field models.FieldDescriptor) string {
	switch field.Kind {
	case models.FieldString:
		return "string"
	case models.FieldNumber:
		return "float64"
	case models.FieldBoolean:
		return "bool"
	case models.FieldStringArray:
		return "[]string"
	case models.FieldNumberArray:
		return "[]float64"
	case models.FieldObjectReference:
		return "*" + field.Ref
	default:
		return "interface{}"
	}
}

// jsonTag builds the struct tag carrying the original JSON key. Pointers and
// slices get omitempty; primitives serialize unconditionally.
func jsonTag(field models.FieldDescriptor) string {
	switch field.Kind {
	case models.FieldStringArray, models.FieldNumberArray, models.FieldObjectReference:
		return fmt.Sprintf("`json:\"%s,omitempty\"`", field.OriginalName)
	default:
		return fmt.Sprintf("`json:\"%s\"`", field.OriginalName)
	}
}

func hasArrayField(def models.TypeDefinition) bool {
	for _, field := range def.Fields {
		if field.Kind == models.FieldStringArray || field.Kind == models.FieldNumberArray {
			return true
		}
	}
	return false
}
