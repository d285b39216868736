package simplify

import "github.com/lunarlang/lunar/ir"

// simplifyIntegerLiteral folds a boolean literal to the branch condition
// that guards its block:
//
//	bb0: cond_br %c, bb1, bb2
//	bb1: %t = int_literal 1 : i1   -> %c
//
// Sound because the literal's block has exactly one predecessor and is
// only reachable when the condition equals the literal, so the two
// values agree on every execution that reaches the literal. Requires the
// literal to have the canonical width-1 type from the injected context.
func (s simplifier) simplifyIntegerLiteral(in *ir.IntegerLiteral) ir.Value {
	if in.Type() != s.types.IntType(1) {
		return nil
	}

	block := in.Parent()
	if block == nil {
		return nil
	}
	pred := block.SinglePredecessor()
	if pred == nil {
		return nil
	}

	br, ok := pred.Terminator().(*ir.CondBranch)
	if !ok {
		return nil
	}

	target := br.False
	if in.Bool() {
		target = br.True
	}
	if block == target {
		return br.Cond
	}
	return nil
}

// simplifyEnumConstruct folds a payload-free enum construction to the
// scrutinee of the switch_enum that dispatched here:
//
//	bb0: switch_enum %0, [#some: bb1]
//	bb1: %1 = enum #some : E   -> %0
//
// The construct's type must equal the scrutinee's type exactly and the
// block must be the destination registered for the constructed case.
func (s simplifier) simplifyEnumConstruct(in *ir.EnumConstruct) ir.Value {
	if in.Payload != nil {
		return nil
	}

	block := in.Parent()
	if block == nil {
		return nil
	}
	pred := block.SinglePredecessor()
	if pred == nil {
		return nil
	}

	sw, ok := pred.Terminator().(*ir.SwitchEnum)
	if !ok {
		return nil
	}

	if in.Type() != sw.Scrutinee.Type() {
		return nil
	}

	if block == sw.CaseDest(in.Case) {
		return sw.Scrutinee
	}
	return nil
}
