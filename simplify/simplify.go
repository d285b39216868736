package simplify

import "github.com/lunarlang/lunar/ir"

// Instruction attempts to simplify in by local analysis of its operands,
// without looking at its uses. It returns an equivalent value that
// already exists in the IR, or nil when no simplification applies.
//
// types supplies the canonical boolean type needed by the
// boolean-literal rule; it is passed explicitly so the simplifier never
// reaches through ambient state.
func Instruction(types *ir.TypeContext, in ir.Instruction) ir.Value {
	s := simplifier{types: types}
	return s.visit(in)
}

// simplifier dispatches one instruction to the rule registered for its
// kind. A fresh value is built per call; it carries no state beyond the
// injected type context.
type simplifier struct {
	types *ir.TypeContext
}

// visit routes the instruction by kind. Kinds without a rule yield nil.
func (s simplifier) visit(in ir.Instruction) ir.Value {
	switch in := in.(type) {
	case *ir.AggregateExtract:
		return s.simplifyAggregateExtract(in)
	case *ir.AggregateConstruct:
		return s.simplifyAggregateConstruct(in)
	case *ir.IntegerLiteral:
		return s.simplifyIntegerLiteral(in)
	case *ir.EnumConstruct:
		return s.simplifyEnumConstruct(in)
	case *ir.AddressToPointer:
		return s.simplifyAddressToPointer(in)
	case *ir.PointerToAddress:
		return s.simplifyPointerToAddress(in)
	case *ir.RefToRawPointer:
		return s.simplifyRefToRawPointer(in)
	case *ir.CheckedCast:
		return s.simplifyCheckedCast(in)
	case *ir.ObjectPointerToRef:
		return s.simplifyObjectPointerToRef(in)
	default:
		return nil
	}
}
