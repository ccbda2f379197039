package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "main", cfg.Package)
	assert.Equal(t, "RootType", cfg.RootName)
	assert.Equal(t, "@type", cfg.Discriminator)
	assert.True(t, cfg.Formatting.Enabled)
	assert.True(t, cfg.Output.GenerateConstructors)
	assert.False(t, cfg.Scaffold.Enabled)
	assert.Equal(t, "repository", cfg.Scaffold.Package)
	assert.NotNil(t, cfg.Naming.FieldMappings)
}

func TestLoadConfig(t *testing.T) {
	yamlContent := `
package: schemas
root_name: Person
discriminator: "@type"
formatting:
  enabled: false
naming:
  field_mappings:
    sameAs: SeeAlso
output:
  generate_constructors: false
scaffold:
  enabled: true
  package: store
`
	path := filepath.Join(t.TempDir(), "ldtyper.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "schemas", cfg.Package)
	assert.Equal(t, "Person", cfg.RootName)
	assert.False(t, cfg.Formatting.Enabled)
	assert.False(t, cfg.Output.GenerateConstructors)
	assert.True(t, cfg.Scaffold.Enabled)
	assert.Equal(t, "store", cfg.Scaffold.Package)

	mapped, ok := cfg.FieldOverride("sameAs")
	assert.True(t, ok)
	assert.Equal(t, "SeeAlso", mapped)
}

func TestLoadConfig_EmptyDiscriminatorFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ldtyper.yml")
	require.NoError(t, os.WriteFile(path, []byte(`package: x`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultDiscriminator, cfg.Discriminator)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("package: [unclosed"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestFieldOverride_Miss(t *testing.T) {
	cfg := NewConfig()
	_, ok := cfg.FieldOverride("unknown")
	assert.False(t, ok)
}

func TestTypeName(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, "PostalAddress", cfg.TypeName("PostalAddress"))
	assert.Equal(t, "postal-address", cfg.TypeName("postal-address"), "pass-through by default")

	cfg.Naming.PascalCaseTypes = true
	assert.Equal(t, "PostalAddress", cfg.TypeName("postal-address"))
}

func TestLoadConfigWithCLI_Precedence(t *testing.T) {
	yamlContent := `
package: schemas
root_name: Person
`
	path := filepath.Join(t.TempDir(), "ldtyper.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0644))

	// Default CLI values do not override the file.
	cfg, err := LoadConfigWithCLI(path, "main", "RootType")
	require.NoError(t, err)
	assert.Equal(t, "schemas", cfg.Package)
	assert.Equal(t, "Person", cfg.RootName)

	// Explicit CLI values win.
	cfg, err = LoadConfigWithCLI(path, "override", "Thing")
	require.NoError(t, err)
	assert.Equal(t, "override", cfg.Package)
	assert.Equal(t, "Thing", cfg.RootName)
}

func TestLoadConfigWithCLI_NoFile(t *testing.T) {
	cfg, err := LoadConfigWithCLI("", "models", "Person")
	require.NoError(t, err)
	assert.Equal(t, "models", cfg.Package)
	assert.Equal(t, "Person", cfg.RootName)
}
