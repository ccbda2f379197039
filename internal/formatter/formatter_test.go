package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_ValidCode(t *testing.T) {
	f := NewFormatter()
	input := "package models\n\ntype   Person struct{\nName string `json:\"name\"`\n}\n"

	formatted, err := f.Format(input)
	require.NoError(t, err)

	assert.Contains(t, formatted, "type Person struct {")
	assert.Contains(t, formatted, "Name string `json:\"name\"`")
}

func TestFormat_EmptyInput(t *testing.T) {
	f := NewFormatter()
	formatted, err := f.Format("   \n ")
	require.NoError(t, err)
	assert.Equal(t, "", formatted)
}

func TestFormat_InvalidCode(t *testing.T) {
	f := NewFormatter()
	_, err := f.Format("package models\n\ntype Person struct {")
	assert.Error(t, err)
}

func TestFormat_ImportGrouping(t *testing.T) {
	f := NewFormatter()
	input := `package models

import (
	"github.com/jmatley/ldtyper/internal/models"
	"fmt"
	"encoding/json"
)

func x() { fmt.Println(json.Valid(nil), models.JSONObject{}) }
`
	formatted, err := f.Format(input)
	require.NoError(t, err)

	stdIdx := strings.Index(formatted, `"encoding/json"`)
	thirdIdx := strings.Index(formatted, `"github.com/jmatley/ldtyper/internal/models"`)
	require.NotEqual(t, -1, stdIdx)
	require.NotEqual(t, -1, thirdIdx)
	assert.Less(t, stdIdx, thirdIdx, "standard library imports come first")
}

// Rendered output from the engine must always survive a formatting pass.
func TestFormat_RenderedShape(t *testing.T) {
	f := NewFormatter()
	input := "package main\n\ntype PostalAddress struct {\n\tAddressLocality string `json:\"addressLocality\"`\n}\n\ntype Person struct {\n\tName    string         `json:\"name\"`\n\tAddress *PostalAddress `json:\"address,omitempty\"`\n\tSameAs  []string       `json:\"sameAs,omitempty\"`\n}\n\nfunc NewPerson() *Person {\n\treturn &Person{\n\t\tSameAs: []string{},\n\t}\n}\n"

	formatted, err := f.Format(input)
	require.NoError(t, err)
	assert.Contains(t, formatted, "func NewPerson() *Person {")
}
