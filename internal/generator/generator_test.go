package generator

import (
	"go/token"
	"go/types"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strongtypes/aliasgen/internal/config"
	"github.com/strongtypes/aliasgen/internal/model"
	"github.com/strongtypes/aliasgen/internal/policy"
)

func testConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.PackageName = "units"
	cfg.PackagePath = "example.com/units"
	return cfg
}

func floatScalar(name string) *model.AliasInfo {
	return &model.AliasInfo{
		Name:     name,
		Ctor:     "New" + name,
		Skip:     map[string]bool{},
		Strategy: model.StrategyScalar,
		Under:    types.Typ[types.Float64],
		Caps: model.Capabilities{
			Arithmetic: true,
			Ordered:    true,
			Comparable: true,
			IncDec:     true,
		},
	}
}

func generate(t *testing.T, infos ...*model.AliasInfo) string {
	t.Helper()
	src, err := New().Generate(testConfig(), infos)
	require.NoError(t, err)
	return string(src)
}

func TestTemplateNameFollowsForwardingStyle(t *testing.T) {
	for _, tt := range []struct {
		strategy model.Strategy
		want     string
	}{
		{model.StrategyScalar, "scalar"},
		{model.StrategyPointer, "pointer"},
		{model.StrategyStruct, "struct"},
	} {
		fwd, ok := policy.ForwardingFor(tt.strategy)
		require.True(t, ok)
		assert.Equal(t, tt.want, templateName(fwd))
	}
}

func TestGenerateRejectsUnknownStrategy(t *testing.T) {
	info := floatScalar("Meters")
	info.Strategy = model.Strategy(0)
	_, err := New().Generate(testConfig(), []*model.AliasInfo{info})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown strategy")
}

func TestGenerateScalar(t *testing.T) {
	src := generate(t, floatScalar("Meters"))

	assert.Contains(t, src, "// Code generated by aliasgen. DO NOT EDIT.")
	assert.Contains(t, src, "package units")
	assert.Contains(t, src, "type Meters float64")
	assert.Contains(t, src, "func NewMeters(v float64) Meters")
	assert.Contains(t, src, "func (a Meters) Value() float64")
	assert.Contains(t, src, "func (Meters) AliasTag() aliaskind.Tag")
	assert.Contains(t, src, "func (a Meters) Add(b Meters) Meters")
	assert.Contains(t, src, "func (a *Meters) AddAssign(b Meters) *Meters")
	assert.Contains(t, src, "func (a Meters) Less(b Meters) bool")
	assert.Contains(t, src, "func (a Meters) Compare(b Meters) int")
	assert.Contains(t, src, "func (a *Meters) PostIncr() Meters")

	// A float representation gets no integer-only families.
	assert.NotContains(t, src, "Mod(")
	assert.NotContains(t, src, "Shl(")
	assert.NotContains(t, src, "Concat(")
	assert.NotContains(t, src, "Not()")
}

func TestGenerateNeverAdmitsForeignAlias(t *testing.T) {
	// Two aliases over the same representation type: every emitted signature
	// must pair an alias only with itself, so a cross-alias call site fails to
	// type-check rather than being rejected at run time.
	src := generate(t, floatScalar("Meters"), floatScalar("Seconds"))

	assert.Contains(t, src, "type Seconds float64")
	assert.Contains(t, src, "func (a Seconds) Add(b Seconds) Seconds")

	assert.NotContains(t, src, "(b Seconds) Meters")
	assert.NotContains(t, src, "(b Meters) Seconds")
	assert.NotContains(t, src, "Add(b float64)")
	assert.NotContains(t, src, "Equal(b float64)")
}

func TestGenerateScalarSkips(t *testing.T) {
	info := floatScalar("Meters")
	info.Skip = map[string]bool{"compound": true, "incdec": true, "convert": true}
	src := generate(t, info)

	assert.NotContains(t, src, "AddAssign")
	assert.NotContains(t, src, "Incr")
	assert.NotContains(t, src, "Value()")
	// Comparison is not skipped and stays.
	assert.Contains(t, src, "func (a Meters) Equal(b Meters) bool")
}

func TestGenerateIntegerScalar(t *testing.T) {
	info := &model.AliasInfo{
		Name:     "Ticks",
		Ctor:     "NewTicks",
		Skip:     map[string]bool{},
		Strategy: model.StrategyScalar,
		Under:    types.Typ[types.Uint64],
		Caps: model.Capabilities{
			Arithmetic: true,
			Integer:    true,
			Ordered:    true,
			Comparable: true,
			IncDec:     true,
		},
	}
	src := generate(t, info)
	assert.Contains(t, src, "func (a Ticks) Mod(b Ticks) Ticks")
	assert.Contains(t, src, "func (a Ticks) Xor(b Ticks) Ticks")
	assert.Contains(t, src, "func (a *Ticks) ShlAssign(b Ticks) *Ticks")
}

func TestGeneratePointer(t *testing.T) {
	info := &model.AliasInfo{
		Name:     "SampleRef",
		Ctor:     "NewSampleRef",
		Skip:     map[string]bool{},
		Strategy: model.StrategyPointer,
		Under:    types.NewPointer(types.Typ[types.Float64]),
		Pointee:  types.Typ[types.Float64],
		Caps: model.Capabilities{
			Comparable: true,
			Deref:      true,
		},
	}
	src := generate(t, info)

	assert.Contains(t, src, "value *float64")
	assert.Contains(t, src, "func NewSampleRef(v *float64) SampleRef")
	assert.Contains(t, src, "func (a SampleRef) Elem() float64")
	assert.Contains(t, src, "func (a SampleRef) SetElem(v float64)")
	assert.Contains(t, src, "func (a SampleRef) IsNil() bool")

	// A scalar pointee has no members and no elements.
	assert.NotContains(t, src, "Get()")
	assert.NotContains(t, src, "At(")
}

func TestGenerateArrayPointer(t *testing.T) {
	arr := types.NewArray(types.Typ[types.Float64], 4)
	info := &model.AliasInfo{
		Name:      "Window",
		Ctor:      "NewWindow",
		Skip:      map[string]bool{},
		Strategy:  model.StrategyPointer,
		Under:     types.NewPointer(arr),
		Pointee:   arr,
		ArrayElem: types.Typ[types.Float64],
		Caps: model.Capabilities{
			Comparable: true,
			Deref:      true,
			Index:      true,
		},
	}
	src := generate(t, info)
	assert.Contains(t, src, "func (a Window) At(i int) float64")
	assert.Contains(t, src, "func (a Window) SetAt(i int, v float64)")
}

func TestGenerateStruct(t *testing.T) {
	geom := types.NewPackage("example.com/geom", "geom")
	tn := types.NewTypeName(token.NoPos, geom, "Vec3", nil)
	x := types.NewVar(token.NoPos, geom, "X", types.Typ[types.Float64])
	vec := types.NewNamed(tn, types.NewStruct([]*types.Var{x}, nil), nil)

	info := &model.AliasInfo{
		Name:      "Velocity",
		Ctor:      "NewVelocity",
		Skip:      map[string]bool{},
		Strategy:  model.StrategyStruct,
		Under:     vec,
		EmbedName: "Vec3",
		Caps: model.Capabilities{
			Comparable: true,
			Forward: []model.ForwardMethod{
				{Name: "Add", Kind: model.ForwardBinary},
				{Name: "Neg", Kind: model.ForwardUnary},
				{Name: "Equal", Kind: model.ForwardPredicate},
			},
		},
	}
	src := generate(t, info)

	assert.Contains(t, src, `"example.com/geom"`)
	assert.Contains(t, src, "geom.Vec3\n}")
	assert.Contains(t, src, "func NewVelocity(v geom.Vec3) Velocity")
	assert.Contains(t, src, "func (a Velocity) Unwrap() geom.Vec3")
	assert.Contains(t, src, "func (a Velocity) Add(b Velocity) Velocity")
	assert.Contains(t, src, "func (a Velocity) Neg() Velocity")
	assert.Contains(t, src, "func (a Velocity) Equal(b Velocity) bool")

	// The forwarded Equal supersedes the native equality fallback; exactly
	// one Equal must be emitted.
	assert.Equal(t, 1, strings.Count(src, ") Equal(b Velocity) bool"))
}

func TestGenerateStructNativeEquality(t *testing.T) {
	local := types.NewPackage("example.com/units", "units")
	tn := types.NewTypeName(token.NoPos, local, "Pose", nil)
	pose := types.NewNamed(tn, types.NewStruct(nil, nil), nil)

	info := &model.AliasInfo{
		Name:      "Stance",
		Ctor:      "NewStance",
		Skip:      map[string]bool{},
		Strategy:  model.StrategyStruct,
		Under:     pose,
		EmbedName: "Pose",
		Caps:      model.Capabilities{Comparable: true},
	}
	src := generate(t, info)

	// Local representation types are referenced unqualified.
	assert.NotContains(t, src, "units.Pose")
	assert.Contains(t, src, "func (a Stance) Equal(b Stance) bool")
}
