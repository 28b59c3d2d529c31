package analyzer

import (
	"go/types"

	"github.com/strongtypes/aliasgen/internal/model"
)

// probeScalar reports the operator categories a basic (or named basic)
// representation type supports, read off go/types' BasicInfo bits.
func probeScalar(t types.Type) model.Capabilities {
	b, ok := t.Underlying().(*types.Basic)
	if !ok {
		return model.Capabilities{}
	}
	info := b.Info()
	return model.Capabilities{
		Arithmetic: info&types.IsNumeric != 0,
		Integer:    info&types.IsInteger != 0,
		Ordered:    info&types.IsOrdered != 0,
		Comparable: true,
		Logical:    info&types.IsBoolean != 0,
		IncDec:     info&types.IsNumeric != 0,
		Concat:     info&types.IsString != 0,
	}
}

// probePointer reports what a pointer representation supports: dereference
// always, member access only for named struct pointees, indexing only for
// pointers to arrays. Go has no pointer arithmetic, so the arithmetic
// categories stay off and their methods are silently absent.
func probePointer(p *types.Pointer) model.Capabilities {
	caps := model.Capabilities{
		Comparable: true,
		Deref:      true,
	}
	pointee := types.Unalias(p.Elem())
	if named, ok := pointee.(*types.Named); ok {
		if _, isStruct := named.Underlying().(*types.Struct); isStruct {
			caps.Arrow = true
		}
	}
	if _, ok := pointee.Underlying().(*types.Array); ok {
		caps.Index = true
	}
	return caps
}

// probeStruct scans the named type's method set for operator-like shapes the
// generator can re-wrap. Everything else reaches the alias through method
// promotion and needs no forwarding.
func probeStruct(named *types.Named) model.Capabilities {
	caps := model.Capabilities{
		Comparable: types.Comparable(named),
	}
	for i := 0; i < named.NumMethods(); i++ {
		m := named.Method(i)
		if !m.Exported() {
			continue
		}
		sig, ok := m.Type().(*types.Signature)
		if !ok || sig.Variadic() {
			continue
		}
		if recv := sig.Recv(); recv != nil {
			if _, isPtr := recv.Type().(*types.Pointer); isPtr {
				// Pointer-receiver mutators stay promoted; re-wrapping them
				// would hide the mutation behind a copy.
				continue
			}
		}
		if sig.Results().Len() != 1 {
			continue
		}
		res := sig.Results().At(0).Type()

		switch sig.Params().Len() {
		case 0:
			if types.Identical(res, named) {
				caps.Forward = append(caps.Forward, model.ForwardMethod{
					Name: m.Name(), Kind: model.ForwardUnary,
				})
			}
		case 1:
			if !types.Identical(sig.Params().At(0).Type(), types.Type(named)) {
				continue
			}
			switch {
			case types.Identical(res, named):
				caps.Forward = append(caps.Forward, model.ForwardMethod{
					Name: m.Name(), Kind: model.ForwardBinary,
				})
			case isBasicKind(res, types.Bool):
				caps.Forward = append(caps.Forward, model.ForwardMethod{
					Name: m.Name(), Kind: model.ForwardPredicate,
				})
			case isBasicKind(res, types.Int):
				caps.Forward = append(caps.Forward, model.ForwardMethod{
					Name: m.Name(), Kind: model.ForwardCompare,
				})
			}
		}
	}
	return caps
}

func isBasicKind(t types.Type, kind types.BasicKind) bool {
	b, ok := types.Unalias(t).(*types.Basic)
	return ok && b.Kind() == kind
}
