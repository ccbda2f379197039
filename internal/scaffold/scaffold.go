// Package scaffold emits per-entity repository scaffolding for the types a
// generation run discovered. It performs no inference of its own: it consumes
// the discovered-type list and expands one template per entry.
package scaffold

import (
	"bytes"
	"fmt"
	"go/token"
	"text/template"

	"github.com/iancoleman/strcase"
)

// DiscoveredType identifies one generated type by name and the package it was
// generated into.
type DiscoveredType struct {
	Name    string
	Package string
}

const repositoryTemplate = `
// {{.Repo}} holds {{.Type}} values in memory and offers basic
// persistence operations over them.
type {{.Repo}} struct {
	items []{{.Ref}}
}

// New{{.Repo}} creates an empty {{.Repo}}.
func New{{.Repo}}() *{{.Repo}} {
	return &{{.Repo}}{items: []{{.Ref}}{}}
}

// Add appends {{.Arg}} to the repository.
func (r *{{.Repo}}) Add({{.Arg}} {{.Ref}}) {
	r.items = append(r.items, {{.Arg}})
}

// Delete removes the entry at index i. Out-of-range indexes are ignored.
func (r *{{.Repo}}) Delete(i int) {
	if i < 0 || i >= len(r.items) {
		return
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
}

// Update replaces the entry at index i. Out-of-range indexes are ignored.
func (r *{{.Repo}}) Update(i int, {{.Arg}} {{.Ref}}) {
	if i < 0 || i >= len(r.items) {
		return
	}
	r.items[i] = {{.Arg}}
}
`

var repoTmpl = template.Must(template.New("repository").Parse(repositoryTemplate))

// Generate renders one repository type per discovered type into a single Go
// source file for the given package. Types generated into a different package
// are referenced with a qualified name.
func Generate(types []DiscoveredType, packageName string) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("package %s\n", packageName))

	for _, t := range types {
		ref := t.Name
		// Package main is not importable, so its types stay unqualified.
		if t.Package != "" && t.Package != "main" && t.Package != packageName {
			ref = t.Package + "." + t.Name
		}
		arg := strcase.ToLowerCamel(t.Name)
		if arg == "" || token.IsKeyword(arg) {
			arg = "item"
		}
		data := struct {
			Type string
			Repo string
			Ref  string
			Arg  string
		}{
			Type: t.Name,
			Repo: t.Name + "Repository",
			Ref:  ref,
			Arg:  arg,
		}
		if err := repoTmpl.Execute(&buf, data); err != nil {
			return "", fmt.Errorf("failed to render repository for %s: %w", t.Name, err)
		}
	}

	return buf.String(), nil
}
