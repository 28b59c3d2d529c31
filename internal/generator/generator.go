// Package generator turns analyzed alias declarations into Go source. The
// emission for each alias is the intersection of three inputs: the strategy
// chosen by the analyzer, the capabilities of the representation type, and
// the operator policy table.
package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"go/types"
	"log/slog"

	"github.com/strongtypes/aliasgen/internal/config"
	"github.com/strongtypes/aliasgen/internal/model"
	"github.com/strongtypes/aliasgen/internal/policy"
	"github.com/strongtypes/aliasgen/internal/template"
)

// aliasKindImportPath is the support package every generated file imports for
// its AliasTag method.
const aliasKindImportPath = "github.com/strongtypes/aliasgen/aliaskind"

// Generator renders generated files for one directive package.
type Generator struct {
	templates *template.Manager
}

// New creates a Generator.
func New() *Generator {
	return &Generator{templates: template.NewManager()}
}

// Generate renders the complete generated file for the configuration and its
// analyzed aliases, formatted with go/format.
func (g *Generator) Generate(cfg *config.Config, infos []*model.AliasInfo) ([]byte, error) {
	imports := NewImportManager()
	kindAlias := imports.AddAs(aliasKindImportPath, "aliaskind")
	qualify := imports.Qualifier(cfg.PackagePath)

	// Render bodies first so the import manager sees every referenced package
	// before the import block is written.
	var bodies bytes.Buffer
	for _, info := range infos {
		data, tmplName, err := g.renderData(info, qualify, kindAlias)
		if err != nil {
			return nil, fmt.Errorf("alias %s: %w", info.Name, err)
		}
		if err := g.templates.RenderTo(&bodies, tmplName, data); err != nil {
			return nil, fmt.Errorf("alias %s: %w", info.Name, err)
		}
		slog.Debug("rendered alias", "name", info.Name, "strategy", info.Strategy.String())
	}

	var out bytes.Buffer
	if err := g.templates.RenderTo(&out, "header", struct{ Package string }{cfg.PackageName}); err != nil {
		return nil, err
	}
	out.WriteString("\n")
	imports.WriteTo(&out)
	out.Write(bodies.Bytes())

	formatted, err := format.Source(out.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code does not parse: %w", err)
	}
	return formatted, nil
}

// opRender is one operator family in template form.
type opRender struct {
	Name       string
	AssignName string
	Token      string
}

// fwdRender is one re-wrapped struct method in template form.
type fwdRender struct {
	Name string
	Kind string
}

// aliasRender is the template payload for a single alias.
type aliasRender struct {
	Name       string
	Doc        string
	Ctor       string
	Under      string
	UnderCanon string
	Pointee    string
	Elem       string
	Embed      string
	KindPkg    string

	Compound []opRender
	Ordered  []opRender
	Logical  []opRender
	Forward  []fwdRender

	HasValue   bool
	HasIncDec  bool
	HasEqual   bool
	HasCompare bool
	HasNot     bool
	HasDeref   bool
	HasArrow   bool
	HasIndex   bool
}

// templateName maps a forwarding style onto the named template realizing it.
func templateName(f policy.Forwarding) string {
	switch f {
	case policy.ForwardNative:
		return "scalar"
	case policy.ForwardField:
		return "pointer"
	case policy.ForwardRewrap:
		return "struct"
	}
	return ""
}

func (g *Generator) renderData(info *model.AliasInfo, qualify types.Qualifier, kindAlias string) (*aliasRender, string, error) {
	fwd, ok := policy.ForwardingFor(info.Strategy)
	if !ok {
		return nil, "", fmt.Errorf("unknown strategy %v", info.Strategy)
	}
	tmpl := templateName(fwd)

	data := &aliasRender{
		Name:       info.Name,
		Doc:        info.Doc,
		Ctor:       info.Ctor,
		Under:      types.TypeString(info.Under, qualify),
		UnderCanon: types.TypeString(info.Under, nil),
		Embed:      info.EmbedName,
		KindPkg:    kindAlias,
	}
	if data.Doc == "" {
		data.Doc = fmt.Sprintf("%s is a strong alias of %s.", info.Name, data.UnderCanon)
	}
	data.HasValue = !info.Skips(string(policy.Convert))

	caps := info.Caps
	switch info.Strategy {
	case model.StrategyScalar:
		if !info.Skips(string(policy.Compound)) {
			for _, op := range policy.CompoundOps {
				if policy.Satisfied(op.Needs, caps) {
					data.Compound = append(data.Compound, opRender{op.Name, op.AssignName, op.Token})
				}
			}
		}
		data.HasIncDec = caps.IncDec && !info.Skips(string(policy.IncDec))
		if !info.Skips(string(policy.Comparison)) {
			data.HasEqual = caps.Comparable
			data.HasCompare = caps.Ordered
			for _, op := range policy.OrderedOps {
				if policy.Satisfied(op.Needs, caps) {
					data.Ordered = append(data.Ordered, opRender{Name: op.Name, Token: op.Token})
				}
			}
		}
		if !info.Skips(string(policy.Logical)) {
			for _, op := range policy.LogicalOps {
				if policy.Satisfied(op.Needs, caps) {
					data.Logical = append(data.Logical, opRender{Name: op.Name, Token: op.Token})
				}
			}
			data.HasNot = caps.Logical
		}
		return data, tmpl, nil

	case model.StrategyPointer:
		if info.Pointee != nil {
			data.Pointee = types.TypeString(info.Pointee, qualify)
		}
		if info.ArrayElem != nil {
			data.Elem = types.TypeString(info.ArrayElem, qualify)
		}
		if !info.Skips(string(policy.MemberAccess)) {
			data.HasDeref = caps.Deref
			data.HasArrow = caps.Arrow
			data.HasIndex = caps.Index
		}
		data.HasEqual = caps.Comparable && !info.Skips(string(policy.Comparison))
		return data, tmpl, nil

	case model.StrategyStruct:
		skipCompound := info.Skips(string(policy.Compound))
		skipComparison := info.Skips(string(policy.Comparison))
		hasEqualMethod := false
		for _, fwd := range caps.Forward {
			switch fwd.Kind {
			case model.ForwardBinary, model.ForwardUnary:
				if skipCompound {
					continue
				}
			case model.ForwardPredicate, model.ForwardCompare:
				if skipComparison {
					continue
				}
			}
			if fwd.Name == "Equal" {
				hasEqualMethod = true
			}
			data.Forward = append(data.Forward, fwdRender{Name: fwd.Name, Kind: forwardKindName(fwd.Kind)})
		}
		// Fall back to native struct equality only when the representation
		// type is comparable and offers no Equal of its own.
		data.HasEqual = caps.Comparable && !hasEqualMethod && !skipComparison
		return data, tmpl, nil
	}
	return nil, "", fmt.Errorf("unknown strategy %v", info.Strategy)
}

func forwardKindName(k model.ForwardKind) string {
	switch k {
	case model.ForwardBinary:
		return "binary"
	case model.ForwardPredicate:
		return "predicate"
	case model.ForwardCompare:
		return "compare"
	case model.ForwardUnary:
		return "unary"
	}
	return "unknown"
}
