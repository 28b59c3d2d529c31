package generator

import (
	"bytes"
	"fmt"
	"go/types"
	"path"
	"sort"
	"strings"
)

// ImportManager assigns stable aliases to imported package paths and renders
// the import block of the generated file.
type ImportManager struct {
	imports map[string]string
	counter int
}

// NewImportManager creates a new import manager.
func NewImportManager() *ImportManager {
	return &ImportManager{
		imports: make(map[string]string),
		counter: 1,
	}
}

// Add adds an import and returns the alias to be used.
func (im *ImportManager) Add(importPath string) string {
	if alias, exists := im.imports[importPath]; exists {
		return alias
	}

	alias := path.Base(importPath)
	if alias == "." || alias == "" {
		alias = fmt.Sprintf("pkg%d", im.counter)
		im.counter++
	}

	original := alias
	for n := 1; im.aliasTaken(alias); n++ {
		alias = fmt.Sprintf("%s%d", original, n)
	}
	im.imports[importPath] = alias
	return alias
}

// AddAs adds an import with a fixed alias.
func (im *ImportManager) AddAs(importPath, alias string) string {
	im.imports[importPath] = alias
	return alias
}

// GetAlias returns the alias for an import path.
func (im *ImportManager) GetAlias(importPath string) (string, bool) {
	alias, ok := im.imports[importPath]
	return alias, ok
}

// Qualifier returns a go/types qualifier that imports every package it
// renders, leaving local types unqualified.
func (im *ImportManager) Qualifier(localPath string) types.Qualifier {
	return func(p *types.Package) string {
		if p == nil || p.Path() == localPath {
			return ""
		}
		return im.Add(p.Path())
	}
}

// Paths returns all imported paths, sorted.
func (im *ImportManager) Paths() []string {
	paths := make([]string, 0, len(im.imports))
	for p := range im.imports {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// WriteTo writes the import block to buf. Nothing is written when no imports
// were collected.
func (im *ImportManager) WriteTo(buf *bytes.Buffer) {
	if len(im.imports) == 0 {
		return
	}
	buf.WriteString("import (\n")
	for _, importPath := range im.Paths() {
		alias := im.imports[importPath]
		if alias == path.Base(importPath) && !strings.HasPrefix(alias, "pkg") {
			fmt.Fprintf(buf, "\t%q\n", importPath)
		} else {
			fmt.Fprintf(buf, "\t%s %q\n", alias, importPath)
		}
	}
	buf.WriteString(")\n\n")
}

func (im *ImportManager) aliasTaken(alias string) bool {
	for _, existing := range im.imports {
		if existing == alias {
			return true
		}
	}
	return false
}
