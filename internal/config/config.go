package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"
)

// DefaultDiscriminator is the JSON-LD key whose value names a hoisted type.
const DefaultDiscriminator = "@type"

// Config represents the complete configuration for ldtyper
type Config struct {
	Package       string           `yaml:"package"`
	RootName      string           `yaml:"root_name"`
	Discriminator string           `yaml:"discriminator"`
	Formatting    FormattingConfig `yaml:"formatting"`
	Naming        NamingConfig     `yaml:"naming"`
	Output        OutputConfig     `yaml:"output"`
	Scaffold      ScaffoldConfig   `yaml:"scaffold"`
	Dev           DevConfig        `yaml:"dev"`
}

// FormattingConfig controls code formatting options
type FormattingConfig struct {
	Enabled bool `yaml:"enabled"`
}

// NamingConfig controls field identifier derivation. FieldMappings override
// the built-in normalization rule for individual JSON keys; PascalCaseTypes
// applies strcase to hoisted type names that are not valid identifiers as-is.
type NamingConfig struct {
	FieldMappings   map[string]string `yaml:"field_mappings"`
	PascalCaseTypes bool              `yaml:"pascal_case_types"`
}

// OutputConfig controls output generation options
type OutputConfig struct {
	FileHeader           string `yaml:"file_header"`
	GenerateConstructors bool   `yaml:"generate_constructors"`
}

// ScaffoldConfig controls the per-entity repository scaffolding pass
type ScaffoldConfig struct {
	Enabled bool   `yaml:"enabled"`
	Package string `yaml:"package"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug bool `yaml:"debug"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Package:       "main",
		RootName:      "RootType",
		Discriminator: DefaultDiscriminator,
		Formatting: FormattingConfig{
			Enabled: true,
		},
		Naming: NamingConfig{
			FieldMappings:   make(map[string]string),
			PascalCaseTypes: false,
		},
		Output: OutputConfig{
			GenerateConstructors: true,
		},
		Scaffold: ScaffoldConfig{
			Enabled: false,
			Package: "repository",
		},
		Dev: DevConfig{
			Debug: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Discriminator == "" {
		cfg.Discriminator = DefaultDiscriminator
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".ldtyper.yml", ".ldtyper.yaml", "ldtyper.yml", "ldtyper.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// FieldOverride returns a configured identifier override for a JSON key, if any.
func (c *Config) FieldOverride(jsonKey string) (string, bool) {
	mapped, ok := c.Naming.FieldMappings[jsonKey]
	return mapped, ok
}

// TypeName returns the rendered name for a hoisted type. Discriminator values
// in sample documents are usually already PascalCase ("PostalAddress"); the
// strcase pass is opt-in for documents whose @type values are not.
func (c *Config) TypeName(raw string) string {
	if c.Naming.PascalCaseTypes {
		return strcase.ToCamel(raw)
	}
	return raw
}

// LoadConfigWithCLI loads config with CLI argument precedence. CLI values are
// applied only when they differ from the flag defaults, so a config file can
// still supply them.
func LoadConfigWithCLI(configPath, cliPackage, cliRootName string) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if cliPackage != "" && cliPackage != "main" {
		cfg.Package = cliPackage
	}
	if cliRootName != "" && cliRootName != "RootType" {
		cfg.RootName = cliRootName
	}

	return cfg, nil
}
