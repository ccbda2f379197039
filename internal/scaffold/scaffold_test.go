package scaffold

import (
	"go/format"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_SingleType(t *testing.T) {
	code, err := Generate([]DiscoveredType{{Name: "Person", Package: "repository"}}, "repository")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(code, "package repository\n"))
	assert.Contains(t, code, "type PersonRepository struct {")
	assert.Contains(t, code, "func NewPersonRepository() *PersonRepository {")
	assert.Contains(t, code, "func (r *PersonRepository) Add(person Person) {")
	assert.Contains(t, code, "func (r *PersonRepository) Delete(i int) {")
	assert.Contains(t, code, "func (r *PersonRepository) Update(i int, person Person) {")
}

func TestGenerate_QualifiesForeignPackage(t *testing.T) {
	code, err := Generate([]DiscoveredType{{Name: "PostalAddress", Package: "schemas"}}, "repository")
	require.NoError(t, err)

	assert.Contains(t, code, "items []schemas.PostalAddress")
	assert.Contains(t, code, "Add(postalAddress schemas.PostalAddress)")
}

// Types generated into package main cannot be import-qualified; the
// reference falls back to the bare name.
func TestGenerate_MainPackageUnqualified(t *testing.T) {
	code, err := Generate([]DiscoveredType{{Name: "PostalAddress", Package: "main"}}, "repository")
	require.NoError(t, err)

	assert.Contains(t, code, "items []PostalAddress")
	assert.NotContains(t, code, "main.PostalAddress")
}

func TestGenerate_MultipleTypes(t *testing.T) {
	discovered := []DiscoveredType{
		{Name: "PostalAddress", Package: "repository"},
		{Name: "Person", Package: "repository"},
	}
	code, err := Generate(discovered, "repository")
	require.NoError(t, err)

	assert.Contains(t, code, "type PostalAddressRepository struct {")
	assert.Contains(t, code, "type PersonRepository struct {")
	// Scaffolding order follows the discovered-type list.
	assert.Less(t, strings.Index(code, "PostalAddressRepository"), strings.Index(code, "PersonRepository"))
}

func TestGenerate_KeywordArgument(t *testing.T) {
	code, err := Generate([]DiscoveredType{{Name: "Type", Package: "repository"}}, "repository")
	require.NoError(t, err)
	assert.Contains(t, code, "Add(item Type)")
}

func TestGenerate_OutputIsValidGo(t *testing.T) {
	code, err := Generate([]DiscoveredType{
		{Name: "Person", Package: "repository"},
		{Name: "PostalAddress", Package: "schemas"},
	}, "repository")
	require.NoError(t, err)

	_, err = format.Source([]byte(code))
	assert.NoError(t, err, "scaffolded source should parse:\n%s", code)
}
