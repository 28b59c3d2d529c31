package analyzer

import (
	"fmt"
	"go/types"

	"github.com/strongtypes/aliasgen/internal/model"
)

// Classify selects exactly one generation strategy for the representation
// type, or rejects it. localPath is the import path of the package the code
// is generated into; a struct type can only be embedded when its name is
// reachable from there.
func Classify(t types.Type, localPath string) (model.Strategy, error) {
	t = types.Unalias(t)

	switch u := t.(type) {
	case *types.Basic:
		return classifyBasic(u)
	case *types.Pointer:
		return model.StrategyPointer, nil
	case *types.Named:
		switch under := u.Underlying().(type) {
		case *types.Basic:
			if _, err := classifyBasic(under); err != nil {
				return 0, err
			}
			return model.StrategyScalar, nil
		case *types.Pointer:
			return model.StrategyPointer, nil
		case *types.Struct:
			obj := u.Obj()
			if !obj.Exported() && obj.Pkg() != nil && obj.Pkg().Path() != localPath {
				// The Go analogue of a final class: the type exists but cannot
				// be embedded from here.
				return 0, fmt.Errorf("struct type %s is unexported outside %s and cannot be embedded",
					obj.Name(), obj.Pkg().Path())
			}
			return model.StrategyStruct, nil
		default:
			return 0, fmt.Errorf("unsupported representation type %s (underlying %s)", t, u.Underlying())
		}
	case *types.Struct:
		return 0, fmt.Errorf("unnamed struct types are not supported; name the type first")
	default:
		return 0, fmt.Errorf("unsupported representation type %s", t)
	}
}

func classifyBasic(b *types.Basic) (model.Strategy, error) {
	switch b.Kind() {
	case types.Invalid:
		return 0, fmt.Errorf("invalid type")
	case types.UnsafePointer:
		return 0, fmt.Errorf("unsafe.Pointer is not a supported representation type")
	}
	if b.Info()&types.IsUntyped != 0 {
		return 0, fmt.Errorf("untyped constant type %s is not a supported representation type", b)
	}
	return model.StrategyScalar, nil
}
