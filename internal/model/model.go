// Package model defines the data structures shared between the analyzer,
// the operator policy table, and the generator.
package model

import "go/types"

// Strategy selects how an alias wraps its representation type.
type Strategy int

const (
	// StrategyScalar renders the alias as a defined type over a basic (or
	// named basic) representation type.
	StrategyScalar Strategy = iota + 1
	// StrategyPointer renders the alias as a struct holding the pointer in an
	// unexported field. Go forbids methods on defined pointer types, so the
	// composition path is the only one available here.
	StrategyPointer
	// StrategyStruct renders the alias as a struct embedding the named struct
	// representation type, promoting its method set.
	StrategyStruct
)

func (s Strategy) String() string {
	switch s {
	case StrategyScalar:
		return "scalar"
	case StrategyPointer:
		return "pointer"
	case StrategyStruct:
		return "struct"
	}
	return "unknown"
}

// ForwardKind classifies an operator-like method found on a struct
// representation type. Only these shapes are re-emitted with alias-typed
// signatures; everything else is reached through method promotion.
type ForwardKind int

const (
	ForwardBinary    ForwardKind = iota + 1 // func (T) M(T) T
	ForwardPredicate                        // func (T) M(T) bool
	ForwardCompare                          // func (T) M(T) int
	ForwardUnary                            // func (T) M() T
)

// ForwardMethod is one method the generator re-wraps on a struct alias.
type ForwardMethod struct {
	Name string
	Kind ForwardKind
}

// Capabilities reports which operation categories a representation type
// supports. A missing capability suppresses emission of the corresponding
// methods; it is never an error.
type Capabilities struct {
	Arithmetic bool // + - * /
	Integer    bool // % & | ^ << >>
	Ordered    bool // < <= > >=
	Comparable bool // == !=
	Logical    bool // && || !
	IncDec     bool // ++ --
	Concat     bool // string +

	Deref bool // pointer star-dereference
	Arrow bool // pointer member access (named struct pointee)
	Index bool // pointer-to-array indexing

	Forward []ForwardMethod // struct strategy only
}

// AliasInfo is the fully analyzed form of one alias declaration. It carries
// everything the generator needs to emit the type.
type AliasInfo struct {
	Name string
	Doc  string
	Ctor string          // constructor name, e.g. NewMeters
	Skip map[string]bool // policy categories suppressed by the declaration

	Strategy Strategy
	Caps     Capabilities

	Under     types.Type // the representation type T
	Pointee   types.Type // pointer strategy: T's element type
	ArrayElem types.Type // pointer-to-array: the array's element type
	EmbedName string     // struct strategy: name of the embedded field
}

// Skips reports whether the declaration suppressed the given policy category.
func (a *AliasInfo) Skips(category string) bool {
	return a.Skip[category]
}
