// Package policy is the operator policy table. For every operator category it
// states which operand kinds an alias admits — plain underlying values, values
// of the same alias, values of a different alias — and how the underlying
// operation is forwarded. The analyzer decides what a representation type can
// do; this table decides what the alias may expose, and the generator emits
// only the intersection.
//
// Rejection is structural: the generator never emits a signature that admits
// a different alias, so a violating call site simply does not type-check.
package policy

import "github.com/strongtypes/aliasgen/internal/model"

// Category names one group of operators from the policy table. The string
// values double as the tokens accepted by a declaration's skip list.
type Category string

const (
	Construct    Category = "construct"
	Convert      Category = "convert"
	IncDec       Category = "incdec"
	Compound     Category = "compound"
	Comparison   Category = "comparison"
	Logical      Category = "logical"
	MemberAccess Category = "member-access"
)

// Operand classifies the right-hand side of an operation.
type Operand int

const (
	OperandPlain Operand = iota + 1 // plain value of the underlying type
	OperandSameAlias
	OperandDifferentAlias
)

// Verdict is the table's answer for one operand kind.
type Verdict int

const (
	Reject Verdict = iota
	Allow
)

// Forwarding states how the generator routes the underlying operation.
type Forwarding int

const (
	// ForwardNative relies on the defined type's own operator support.
	ForwardNative Forwarding = iota + 1
	// ForwardField applies the operation to the unexported value field.
	ForwardField
	// ForwardRewrap calls the representation type's method and re-wraps the
	// result in the alias type.
	ForwardRewrap
)

// ForwardingFor returns the forwarding style for a generation strategy. The
// generator selects its emission path from this answer.
func ForwardingFor(s model.Strategy) (Forwarding, bool) {
	switch s {
	case model.StrategyScalar:
		return ForwardNative, true
	case model.StrategyPointer:
		return ForwardField, true
	case model.StrategyStruct:
		return ForwardRewrap, true
	}
	return 0, false
}

// Rule is one row of the policy table.
type Rule struct {
	Category  Category
	Plain     Verdict
	Same      Verdict
	Different Verdict
}

var table = map[Category]Rule{
	Construct:    {Construct, Allow, Allow, Reject},
	Convert:      {Convert, Allow, Allow, Reject},
	IncDec:       {IncDec, Reject, Allow, Reject},
	Compound:     {Compound, Allow, Allow, Reject},
	Comparison:   {Comparison, Allow, Allow, Reject},
	Logical:      {Logical, Allow, Allow, Reject},
	MemberAccess: {MemberAccess, Allow, Allow, Reject},
}

// For returns the rule for the given category.
func For(c Category) Rule {
	return table[c]
}

// Admits reports whether the category allows the given operand kind.
func Admits(c Category, op Operand) bool {
	r := table[c]
	switch op {
	case OperandPlain:
		return r.Plain == Allow
	case OperandSameAlias:
		return r.Same == Allow
	case OperandDifferentAlias:
		return r.Different == Allow
	}
	return false
}

// Categories returns every category name, for skip-list validation.
func Categories() []string {
	return []string{
		string(Construct), string(Convert), string(IncDec), string(Compound),
		string(Comparison), string(Logical), string(MemberAccess),
	}
}

// Known reports whether s names a policy category.
func Known(s string) bool {
	_, ok := table[Category(s)]
	return ok
}

// Need names the capability a representation type must have before an
// operator family is emitted.
type Need int

const (
	NeedArithmetic Need = iota + 1
	NeedInteger
	NeedConcat
	NeedOrdered
	NeedComparable
	NeedLogical
)

// Satisfied reports whether caps covers the need.
func Satisfied(n Need, caps model.Capabilities) bool {
	switch n {
	case NeedArithmetic:
		return caps.Arithmetic
	case NeedInteger:
		return caps.Integer
	case NeedConcat:
		return caps.Concat
	case NeedOrdered:
		return caps.Ordered
	case NeedComparable:
		return caps.Comparable
	case NeedLogical:
		return caps.Logical
	}
	return false
}

// Op describes one operator family: the value form returns a fresh alias
// value, the assign form mutates through the receiver and returns it for
// chaining.
type Op struct {
	Name       string // value form method name
	AssignName string // mutating form method name, empty when none exists
	Token      string // the Go operator token
	Needs      Need
}

// CompoundOps are the ten compound-assignment operator families of the table,
// plus string concatenation which Go spells with the same token as addition.
var CompoundOps = []Op{
	{Name: "Add", AssignName: "AddAssign", Token: "+", Needs: NeedArithmetic},
	{Name: "Sub", AssignName: "SubAssign", Token: "-", Needs: NeedArithmetic},
	{Name: "Mul", AssignName: "MulAssign", Token: "*", Needs: NeedArithmetic},
	{Name: "Div", AssignName: "DivAssign", Token: "/", Needs: NeedArithmetic},
	{Name: "Mod", AssignName: "ModAssign", Token: "%", Needs: NeedInteger},
	{Name: "And", AssignName: "AndAssign", Token: "&", Needs: NeedInteger},
	{Name: "Or", AssignName: "OrAssign", Token: "|", Needs: NeedInteger},
	{Name: "Xor", AssignName: "XorAssign", Token: "^", Needs: NeedInteger},
	{Name: "Shl", AssignName: "ShlAssign", Token: "<<", Needs: NeedInteger},
	{Name: "Shr", AssignName: "ShrAssign", Token: ">>", Needs: NeedInteger},
	{Name: "Concat", AssignName: "ConcatAssign", Token: "+", Needs: NeedConcat},
}

// OrderedOps are the ordering comparisons. Equality is handled separately
// because it applies to every comparable representation type; inequality is
// the caller's negation of Equal.
var OrderedOps = []Op{
	{Name: "Less", Token: "<", Needs: NeedOrdered},
	{Name: "LessEq", Token: "<=", Needs: NeedOrdered},
	{Name: "Greater", Token: ">", Needs: NeedOrdered},
	{Name: "GreaterEq", Token: ">=", Needs: NeedOrdered},
}

// LogicalOps are the boolean connectives, emitted for bool representations.
var LogicalOps = []Op{
	{Name: "And", Token: "&&", Needs: NeedLogical},
	{Name: "Or", Token: "||", Needs: NeedLogical},
}
