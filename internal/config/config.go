// Package config parses //go:strongalias: directives and the optional
// aliasgen.yaml declaration file into the configuration the analyzer and
// generator consume.
package config

import (
	"fmt"
	"go/token"
	"strings"

	"github.com/strongtypes/aliasgen/internal/policy"
)

// Declaration declares one alias: a globally unique name and the
// representation type expression it wraps.
type Declaration struct {
	Name string   `yaml:"name"`
	Type string   `yaml:"type"` // resolved to a fully qualified expression by the parser
	Doc  string   `yaml:"doc"`
	Ctor string   `yaml:"ctor"` // constructor name override
	Skip []string `yaml:"skip"` // policy categories to suppress
}

// Config is the parsed configuration for one directive package.
type Config struct {
	PackageName string
	PackagePath string
	SourceDir   string
	Output      string

	// PackageAliases maps short identifiers used in type expressions to full
	// import paths.
	PackageAliases map[string]string
	Declarations   []*Declaration
}

// NewConfig returns an empty configuration.
func NewConfig() *Config {
	return &Config{
		PackageAliases: make(map[string]string),
	}
}

// Validate checks declaration well-formedness: unique exported names, a
// non-empty type expression, and known skip categories.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Declarations))
	for _, d := range c.Declarations {
		if d.Name == "" {
			return fmt.Errorf("alias declaration missing a name (type %q)", d.Type)
		}
		if !token.IsIdentifier(d.Name) || !token.IsExported(d.Name) {
			return fmt.Errorf("alias name %q must be an exported Go identifier", d.Name)
		}
		if d.Type == "" {
			return fmt.Errorf("alias %s missing a representation type", d.Name)
		}
		if seen[d.Name] {
			return fmt.Errorf("duplicate alias name %q", d.Name)
		}
		seen[d.Name] = true
		if d.Ctor != "" && !token.IsIdentifier(d.Ctor) {
			return fmt.Errorf("alias %s: constructor name %q is not an identifier", d.Name, d.Ctor)
		}
		for _, s := range d.Skip {
			if !policy.Known(s) {
				return fmt.Errorf("alias %s: unknown skip category %q (known: %s)",
					d.Name, s, strings.Join(policy.Categories(), ", "))
			}
		}
	}
	return nil
}

// Find returns the declaration with the given alias name, or nil.
func (c *Config) Find(name string) *Declaration {
	for _, d := range c.Declarations {
		if d.Name == name {
			return d
		}
	}
	return nil
}
