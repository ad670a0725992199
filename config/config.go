// Package config provides configuration loading and management for the
// catmip toolchain.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete catmip configuration.
type Config struct {
	Registry RegistryConfig `yaml:"registry"`
	Site     SiteConfig     `yaml:"site"`
	Export   ExportConfig   `yaml:"export"`
}

// RegistryConfig locates the term sources and the build output.
type RegistryConfig struct {
	// StandardsDir is the root of the term source tree
	// (standards/<folder>/*.yaml).
	StandardsDir string `yaml:"standards_dir"`

	// BuildDir receives every generated artifact.
	BuildDir string `yaml:"build_dir"`

	// AssetsDir holds static site content (docs landing page, images).
	AssetsDir string `yaml:"assets_dir"`

	// Strict escalates registry warnings (duplicate terms, missing ids)
	// to hard failures.
	Strict bool `yaml:"strict"`
}

// SiteConfig configures the rendered documentation site.
type SiteConfig struct {
	// Name is the site title used on generated index pages.
	Name string `yaml:"name"`

	// Workers bounds concurrent page rendering. Zero means one worker
	// per CPU.
	Workers int `yaml:"workers"`
}

// ExportConfig configures the machine-readable exports.
type ExportConfig struct {
	// StdVersion is stamped on prompt CSV rows.
	StdVersion string `yaml:"std_version"`

	// RDFFormat selects the SKOS serialization (turtle, ntriples, jsonld).
	RDFFormat string `yaml:"rdf_format"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Registry: RegistryConfig{
			StandardsDir: "standards",
			BuildDir:     "build",
			AssetsDir:    "assets",
		},
		Site: SiteConfig{
			Name: "CAT-MIP Terminology Registry",
		},
		Export: ExportConfig{
			StdVersion: "v1.0",
			RDFFormat:  "turtle",
		},
	}
}

// DocsDir is the site output directory under the build directory.
func (c *Config) DocsDir() string {
	return filepath.Join(c.Registry.BuildDir, "docs")
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Registry.StandardsDir == "" {
		return fmt.Errorf("registry.standards_dir is required")
	}
	if c.Registry.BuildDir == "" {
		return fmt.Errorf("registry.build_dir is required")
	}
	if c.Site.Workers < 0 {
		return fmt.Errorf("site.workers must not be negative")
	}
	switch c.Export.RDFFormat {
	case "", "turtle", "ttl", "ntriples", "nt", "jsonld", "json-ld":
	default:
		return fmt.Errorf("export.rdf_format must be turtle, ntriples, or jsonld")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values).
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Registry.StandardsDir != "" {
		c.Registry.StandardsDir = other.Registry.StandardsDir
	}
	if other.Registry.BuildDir != "" {
		c.Registry.BuildDir = other.Registry.BuildDir
	}
	if other.Registry.AssetsDir != "" {
		c.Registry.AssetsDir = other.Registry.AssetsDir
	}
	if other.Registry.Strict {
		c.Registry.Strict = true
	}

	if other.Site.Name != "" {
		c.Site.Name = other.Site.Name
	}
	if other.Site.Workers != 0 {
		c.Site.Workers = other.Site.Workers
	}

	if other.Export.StdVersion != "" {
		c.Export.StdVersion = other.Export.StdVersion
	}
	if other.Export.RDFFormat != "" {
		c.Export.RDFFormat = other.Export.RDFFormat
	}
}
