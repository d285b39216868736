package simplify

import "github.com/lunarlang/lunar/ir"

// The conversion rules collapse a single construct-then-invert pair back
// to the original value. Only one inverse hop is ever taken: chains are
// not chased, and a pair whose round-trip types differ is left alone,
// since rewriting across a type change could alter representation width
// or semantics.

// simplifyAddressToPointer folds
//
//	address_to_pointer(pointer_to_address(x)) -> x
//
// when x's type equals the outer conversion's result type.
func (s simplifier) simplifyAddressToPointer(in *ir.AddressToPointer) ir.Value {
	inner, ok := in.Operand.(*ir.PointerToAddress)
	if !ok {
		return nil
	}
	if inner.Operand.Type() != in.Type() {
		return nil
	}
	return inner.Operand
}

// simplifyPointerToAddress folds
//
//	pointer_to_address(address_to_pointer(x)) -> x
//
// when x's type equals the outer conversion's result type. Two distinct
// address types round-tripped through the raw pointer must not collapse.
func (s simplifier) simplifyPointerToAddress(in *ir.PointerToAddress) ir.Value {
	inner, ok := in.Operand.(*ir.AddressToPointer)
	if !ok {
		return nil
	}
	if inner.Operand.Type() != in.Type() {
		return nil
	}
	return inner.Operand
}

// simplifyRefToRawPointer folds
//
//	ref_to_raw_pointer(raw_pointer_to_ref(x)) -> x
//
// No type guard is needed: the conversion pair is always type-sound.
func (s simplifier) simplifyRefToRawPointer(in *ir.RefToRawPointer) ir.Value {
	if inner, ok := in.Operand.(*ir.RawPointerToRef); ok {
		return inner.Operand
	}
	return nil
}

// simplifyCheckedCast folds a downcast of an upcast back to the original
// value:
//
//	checked_cast downcast(checked_cast upcast(x : T) : U) : T -> x
//
// The downcast's result type must equal the upcast's operand type; the
// downcast's operand type equals the upcast's result type by
// construction, since its operand is the upcast itself.
func (s simplifier) simplifyCheckedCast(in *ir.CheckedCast) ir.Value {
	if in.Direction != ir.Downcast {
		return nil
	}
	up, ok := in.Operand.(*ir.CheckedCast)
	if !ok || up.Direction != ir.Upcast {
		return nil
	}
	if in.Type() != up.Operand.Type() {
		return nil
	}
	return up.Operand
}

// simplifyObjectPointerToRef folds
//
//	object_pointer_to_ref(ref_to_object_pointer(x)) -> x
//
// when x's type equals the outer conversion's result type.
func (s simplifier) simplifyObjectPointerToRef(in *ir.ObjectPointerToRef) ir.Value {
	inner, ok := in.Operand.(*ir.RefToObjectPointer)
	if !ok {
		return nil
	}
	if inner.Operand.Type() != in.Type() {
		return nil
	}
	return inner.Operand
}
