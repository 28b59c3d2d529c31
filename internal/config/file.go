package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the optional YAML declaration file looked up next to the
// directive package's sources.
const FileName = "aliasgen.yaml"

type fileConfig struct {
	Output   string `yaml:"output"`
	Packages []struct {
		Path  string `yaml:"path"`
		Alias string `yaml:"alias"`
	} `yaml:"packages"`
	Aliases []*Declaration `yaml:"aliases"`
}

// loadFile merges the YAML declaration file into the configuration. The
// default aliasgen.yaml next to the sources may be absent; a file named
// explicitly with WithFile must exist.
func (p *Parser) loadFile(dir string) error {
	path := p.file
	if path == "" {
		if dir == "" {
			return nil
		}
		path = filepath.Join(dir, FileName)
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && p.file == "" {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if fc.Output != "" && p.config.Output == "" {
		p.config.Output = fc.Output
	}
	for _, pkg := range fc.Packages {
		alias := pkg.Alias
		if alias == "" {
			alias = pkg.Path[strings.LastIndex(pkg.Path, "/")+1:]
		}
		if _, exists := p.config.PackageAliases[alias]; !exists {
			p.config.PackageAliases[alias] = pkg.Path
		}
	}
	for _, decl := range fc.Aliases {
		decl.Type = p.resolveTypeExpr(decl.Type)
		p.addDeclaration(decl)
	}
	slog.Debug("merged declaration file", "path", path, "aliases", len(fc.Aliases))
	return nil
}
