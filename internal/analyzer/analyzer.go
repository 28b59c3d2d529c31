// Package analyzer resolves declared representation types and classifies each
// one into a generation strategy with a capability set. Everything here is a
// question about the type, answered through go/types; nothing is assumed from
// the declaration text.
package analyzer

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"
	"log/slog"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/strongtypes/aliasgen/internal/config"
	"github.com/strongtypes/aliasgen/internal/model"
)

// Analyzer resolves type expressions against a loaded package graph.
type Analyzer struct {
	pkgs  []*packages.Package
	local *packages.Package
}

// New creates an Analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

// SetPackages injects pre-loaded packages, used by tests.
func (a *Analyzer) SetPackages(local *packages.Package, pkgs ...*packages.Package) {
	a.local = local
	a.pkgs = append([]*packages.Package{}, pkgs...)
	if local != nil {
		a.pkgs = append(a.pkgs, local)
	}
}

// Analyze loads the directive package plus all referenced packages and builds
// one AliasInfo per declaration. Failing declarations are collected so a run
// reports every problem at once.
func (a *Analyzer) Analyze(cfg *config.Config) ([]*model.AliasInfo, error) {
	if a.local == nil {
		if err := a.load(cfg); err != nil {
			return nil, err
		}
	}

	var infos []*model.AliasInfo
	var errs []error
	for _, decl := range cfg.Declarations {
		t, err := a.resolveExpr(decl.Type)
		if err != nil {
			errs = append(errs, fmt.Errorf("alias %s: %w", decl.Name, err))
			continue
		}
		info, err := a.build(decl, t)
		if err != nil {
			errs = append(errs, fmt.Errorf("alias %s: %w", decl.Name, err))
			continue
		}
		slog.Debug("analyzed alias declaration",
			"name", info.Name, "strategy", info.Strategy.String(), "type", decl.Type)
		infos = append(infos, info)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return infos, nil
}

func (a *Analyzer) load(cfg *config.Config) error {
	patterns := []string{"."}
	for _, path := range cfg.PackageAliases {
		patterns = append(patterns, path)
	}
	loaderCfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo | packages.NeedImports | packages.NeedDeps,
		Dir:   cfg.SourceDir,
		Tests: false,
	}
	pkgs, err := packages.Load(loaderCfg, patterns...)
	if err != nil {
		return fmt.Errorf("failed to load package graph: %w", err)
	}
	if len(pkgs) == 0 {
		return fmt.Errorf("no packages loaded for %s", cfg.SourceDir)
	}
	a.pkgs = pkgs
	for _, pkg := range pkgs {
		if pkg.PkgPath == cfg.PackagePath {
			a.local = pkg
		}
	}
	if a.local == nil {
		a.local = pkgs[0]
	}
	return nil
}

// resolveExpr resolves a fully qualified type expression produced by the
// config parser: zero or more leading stars, then either a predeclared type
// name, a local type name, or <import path>.<Name>. Composite expressions
// such as *[4]float64 are evaluated in the directive package's scope.
func (a *Analyzer) resolveExpr(expr string) (types.Type, error) {
	orig := expr
	stars := 0
	for strings.HasPrefix(expr, "*") {
		stars++
		expr = expr[1:]
	}

	if !token.IsIdentifier(expr) && strings.LastIndex(expr, ".") == -1 {
		if a.local == nil || a.local.Types == nil {
			return nil, fmt.Errorf("cannot evaluate type expression %q without a loaded package", orig)
		}
		tv, err := types.Eval(a.local.Fset, a.local.Types, token.NoPos, orig)
		if err != nil {
			return nil, fmt.Errorf("invalid type expression %q: %w", orig, err)
		}
		if !tv.IsType() {
			return nil, fmt.Errorf("%q does not name a type", orig)
		}
		return tv.Type, nil
	}

	var t types.Type
	lastDot := strings.LastIndex(expr, ".")
	if lastDot == -1 {
		if obj := types.Universe.Lookup(expr); obj != nil {
			tn, ok := obj.(*types.TypeName)
			if !ok {
				return nil, fmt.Errorf("%q does not name a type", expr)
			}
			t = tn.Type()
		} else if a.local != nil && a.local.Types != nil {
			obj := a.local.Types.Scope().Lookup(expr)
			if obj == nil {
				return nil, fmt.Errorf("type %q not found in package %s", expr, a.local.PkgPath)
			}
			tn, ok := obj.(*types.TypeName)
			if !ok {
				return nil, fmt.Errorf("%q does not name a type", expr)
			}
			t = tn.Type()
		} else {
			return nil, fmt.Errorf("type %q not found", expr)
		}
	} else {
		pkgPath, name := expr[:lastDot], expr[lastDot+1:]
		pkg := a.findPackage(pkgPath)
		if pkg == nil {
			return nil, fmt.Errorf("package %q not loaded (missing package:path directive?)", pkgPath)
		}
		obj := pkg.Types.Scope().Lookup(name)
		if obj == nil {
			return nil, fmt.Errorf("type %q not found in package %s", name, pkgPath)
		}
		tn, ok := obj.(*types.TypeName)
		if !ok {
			return nil, fmt.Errorf("%s.%s does not name a type", pkgPath, name)
		}
		t = tn.Type()
	}

	for i := 0; i < stars; i++ {
		t = types.NewPointer(t)
	}
	return t, nil
}

func (a *Analyzer) findPackage(pkgPath string) *packages.Package {
	for _, pkg := range a.pkgs {
		if pkg.PkgPath == pkgPath {
			return pkg
		}
		if imported, ok := pkg.Imports[pkgPath]; ok && imported.Types != nil {
			return imported
		}
	}
	return nil
}

// build classifies the resolved type and probes its capabilities.
func (a *Analyzer) build(decl *config.Declaration, t types.Type) (*model.AliasInfo, error) {
	localPath := ""
	if a.local != nil {
		localPath = a.local.PkgPath
	}
	strategy, err := Classify(t, localPath)
	if err != nil {
		return nil, err
	}

	info := &model.AliasInfo{
		Name:     decl.Name,
		Doc:      decl.Doc,
		Ctor:     decl.Ctor,
		Skip:     make(map[string]bool, len(decl.Skip)),
		Strategy: strategy,
		Under:    t,
	}
	if info.Ctor == "" {
		info.Ctor = "New" + decl.Name
	}
	for _, s := range decl.Skip {
		info.Skip[s] = true
	}

	switch strategy {
	case model.StrategyScalar:
		info.Caps = probeScalar(t)
	case model.StrategyPointer:
		ptr := t.Underlying().(*types.Pointer)
		info.Caps = probePointer(ptr)
		info.Pointee = ptr.Elem()
		if arr, ok := ptr.Elem().Underlying().(*types.Array); ok {
			info.ArrayElem = arr.Elem()
		}
	case model.StrategyStruct:
		named := t.(*types.Named)
		info.Caps = probeStruct(named)
		info.EmbedName = named.Obj().Name()
	}
	return info, nil
}
