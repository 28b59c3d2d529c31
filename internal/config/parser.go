package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

const directivePrefix = "//go:strongalias:"

// Parser builds a Config from a directive package. Declarations may come from
// //go:strongalias: comment directives, from an aliasgen.yaml file in the
// source directory, or both; directives win on conflict.
type Parser struct {
	config *Config
	file   string
}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{config: NewConfig()}
}

// WithFile overrides the declaration file location. An empty path keeps the
// default lookup of aliasgen.yaml next to the directive package.
func (p *Parser) WithFile(path string) *Parser {
	p.file = path
	return p
}

// Parse loads the directive package at sourceDir and parses its configuration.
func (p *Parser) Parse(sourceDir string) (*Config, error) {
	loaderCfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo,
		Dir:   sourceDir,
		Tests: false,
	}
	pkgs, err := packages.Load(loaderCfg, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to load directive package at %s: %w", sourceDir, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no package found at %s", sourceDir)
	}
	pkg := pkgs[0]
	for _, pkgErr := range pkg.Errors {
		// Errors here may refer to types the generator is about to produce.
		slog.Warn("directive package contains errors", "pkg", pkg.PkgPath, "error", pkgErr)
	}

	p.config.SourceDir = sourceDir
	return p.ParsePackage(pkg)
}

// ParsePackage parses directives from an already loaded package.
func (p *Parser) ParsePackage(pkg *packages.Package) (*Config, error) {
	p.config.PackageName = pkg.Name
	p.config.PackagePath = pkg.PkgPath
	if p.config.SourceDir == "" && len(pkg.GoFiles) > 0 {
		p.config.SourceDir = filepath.Dir(pkg.GoFiles[0])
	}

	var directives []string
	for _, file := range pkg.Syntax {
		if pkg.Fset != nil {
			name := pkg.Fset.File(file.Pos()).Name()
			if strings.HasSuffix(filepath.Base(name), ".gen.go") {
				slog.Debug("skipping generated file", "file", name)
				continue
			}
		}
		for _, group := range file.Comments {
			for _, comment := range group.List {
				if strings.HasPrefix(comment.Text, directivePrefix) {
					directives = append(directives, strings.TrimSpace(comment.Text))
				}
			}
		}
	}

	// First pass: global directives, so package aliases exist before any type
	// expression is resolved.
	for _, d := range directives {
		key, value := splitDirective(d)
		if err := p.applyGlobal(key, value); err != nil {
			return nil, err
		}
	}

	// YAML declarations load before the declare pass so that directives can
	// override same-named entries.
	if err := p.loadFile(p.config.SourceDir); err != nil {
		return nil, err
	}

	// Second pass: declarations.
	for _, d := range directives {
		key, value := splitDirective(d)
		if key != "declare" {
			continue
		}
		decl, err := parseDeclare(value)
		if err != nil {
			return nil, err
		}
		decl.Type = p.resolveTypeExpr(decl.Type)
		p.addDeclaration(decl)
	}

	if len(p.config.Declarations) == 0 {
		slog.Warn("no alias declarations found, no code will be generated", "package", pkg.PkgPath)
	}
	if err := p.config.Validate(); err != nil {
		return nil, err
	}
	return p.config, nil
}

// addDeclaration appends decl, replacing any same-named declaration that came
// from the YAML file.
func (p *Parser) addDeclaration(decl *Declaration) {
	for i, existing := range p.config.Declarations {
		if existing.Name == decl.Name {
			p.config.Declarations[i] = decl
			return
		}
	}
	p.config.Declarations = append(p.config.Declarations, decl)
}

func (p *Parser) applyGlobal(key, value string) error {
	switch key {
	case "package:path":
		parts := strings.Split(value, ",")
		path := strings.TrimSpace(parts[0])
		alias := path[strings.LastIndex(path, "/")+1:]
		if len(parts) > 1 && strings.HasPrefix(strings.TrimSpace(parts[1]), "alias=") {
			alias = strings.TrimPrefix(strings.TrimSpace(parts[1]), "alias=")
		}
		p.config.PackageAliases[alias] = path
		slog.Debug("registered package alias", "alias", alias, "path", path)
	case "output":
		p.config.Output = value
	case "declare":
		// handled by the second pass
	case "":
		// not a strongalias directive
	default:
		return fmt.Errorf("unknown directive %q", directivePrefix+key)
	}
	return nil
}

// parseDeclare parses the value of a declare directive:
// name=Meters,type=float64,doc=...,ctor=...,skip=a;b
func parseDeclare(value string) (*Declaration, error) {
	decl := &Declaration{}
	for _, part := range strings.Split(value, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		key, val := kv[0], kv[1]
		switch key {
		case "name":
			decl.Name = val
		case "type":
			decl.Type = val
		case "doc":
			decl.Doc = val
		case "ctor":
			decl.Ctor = val
		case "skip":
			for _, s := range strings.Split(val, ";") {
				if s = strings.TrimSpace(s); s != "" {
					decl.Skip = append(decl.Skip, s)
				}
			}
		default:
			return nil, fmt.Errorf("declare: unknown key %q in %q", key, value)
		}
	}
	if decl.Name == "" || decl.Type == "" {
		return nil, fmt.Errorf("declare %q: both name and type are required", value)
	}
	return decl, nil
}

// resolveTypeExpr rewrites a short package qualifier to its full import path,
// preserving any pointer prefix: *geom.Vec3 -> *example.com/geom.Vec3.
func (p *Parser) resolveTypeExpr(expr string) string {
	stars := ""
	for strings.HasPrefix(expr, "*") {
		stars += "*"
		expr = expr[1:]
	}
	lastDot := strings.LastIndex(expr, ".")
	if lastDot == -1 {
		return stars + expr
	}
	qualifier := expr[:lastDot]
	name := expr[lastDot+1:]
	if path, ok := p.config.PackageAliases[qualifier]; ok {
		return stars + path + "." + name
	}
	return stars + expr
}

func splitDirective(line string) (key, value string) {
	if !strings.HasPrefix(line, directivePrefix) {
		return "", ""
	}
	directive := strings.TrimPrefix(line, directivePrefix)
	parts := strings.SplitN(directive, "=", 2)
	key = parts[0]
	if len(parts) > 1 {
		value = strings.Trim(strings.TrimSpace(parts[1]), `"`)
	}
	return key, value
}
