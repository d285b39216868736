package ir

import "fmt"

// Instruction is the sealed sum of instruction kinds known to the model.
//
// Every instruction is also a Value: the value it defines. The variant
// set is closed; consumers dispatch with a type switch and treat any
// variant they do not handle as opaque.
type Instruction interface {
	Value

	// Parent returns the basic block containing the instruction.
	Parent() *BasicBlock

	// Operands returns the instruction's operand values in order.
	Operands() []Value

	isInstruction() // Sealed.
}

// instr carries the state common to every instruction kind: the result
// type, the enclosing block, and the per-function numbering used for
// printed names.
type instr struct {
	id    int
	typ   *Type
	block *BasicBlock
}

func (i *instr) Type() *Type         { return i.typ }
func (i *instr) Parent() *BasicBlock { return i.block }
func (i *instr) Name() string        { return fmt.Sprintf("%%%d", i.id) }
func (i *instr) irValue()            {}
func (i *instr) isInstruction()      {}

// AggregateExtract projects one field out of a tuple or struct value.
// Field is the zero-based index of the projected field.
type AggregateExtract struct {
	instr
	Agg   Value
	Field int
}

// Operands returns the source aggregate.
func (i *AggregateExtract) Operands() []Value { return []Value{i.Agg} }

// AggregateConstruct builds a tuple or struct literal from its elements
// in declaration order. Its result type declares exactly len(Elems)
// fields.
type AggregateConstruct struct {
	instr
	Elems []Value
}

// Operands returns the element values in construction order.
func (i *AggregateConstruct) Operands() []Value { return i.Elems }

// IntegerLiteral materializes a constant of an integer type. The bit
// width lives on the result type; a width-1 literal is a boolean, true
// iff Val is nonzero.
type IntegerLiteral struct {
	instr
	Val int64
}

// Operands returns nil; a literal has no operands.
func (i *IntegerLiteral) Operands() []Value { return nil }

// Width returns the bit width of the literal's integer type.
func (i *IntegerLiteral) Width() int { return i.typ.Width() }

// Bool reports the literal's value as a boolean (nonzero means true).
func (i *IntegerLiteral) Bool() bool { return i.Val != 0 }

// EnumConstruct builds an enum value with the given case tag. Payload is
// nil for payload-free cases; at most one payload operand exists.
type EnumConstruct struct {
	instr
	Case    string
	Payload Value
}

// Operands returns the payload, if any.
func (i *EnumConstruct) Operands() []Value {
	if i.Payload == nil {
		return nil
	}
	return []Value{i.Payload}
}

// AddressToPointer converts an address value to the raw-pointer type.
type AddressToPointer struct {
	instr
	Operand Value
}

// Operands returns the converted address.
func (i *AddressToPointer) Operands() []Value { return []Value{i.Operand} }

// PointerToAddress converts a raw-pointer value to an address type.
type PointerToAddress struct {
	instr
	Operand Value
}

// Operands returns the converted pointer.
func (i *PointerToAddress) Operands() []Value { return []Value{i.Operand} }

// RefToRawPointer converts a managed reference to the raw-pointer type.
type RefToRawPointer struct {
	instr
	Operand Value
}

// Operands returns the converted reference.
func (i *RefToRawPointer) Operands() []Value { return []Value{i.Operand} }

// RawPointerToRef converts a raw pointer back to a managed reference
// type. It is the complement of RefToRawPointer.
type RawPointerToRef struct {
	instr
	Operand Value
}

// Operands returns the converted pointer.
func (i *RawPointerToRef) Operands() []Value { return []Value{i.Operand} }

// RefToObjectPointer converts a managed reference to the opaque
// object-pointer type.
type RefToObjectPointer struct {
	instr
	Operand Value
}

// Operands returns the converted reference.
func (i *RefToObjectPointer) Operands() []Value { return []Value{i.Operand} }

// ObjectPointerToRef converts an object pointer back to a managed
// reference type. It is the complement of RefToObjectPointer.
type ObjectPointerToRef struct {
	instr
	Operand Value
}

// Operands returns the converted pointer.
func (i *ObjectPointerToRef) Operands() []Value { return []Value{i.Operand} }

// CastDirection distinguishes the two directions of a checked cast.
type CastDirection int

const (
	// Upcast widens to a supertype. It cannot fail.
	Upcast CastDirection = iota

	// Downcast narrows to a subtype, trapping at runtime on mismatch.
	Downcast
)

// String returns "upcast" or "downcast".
func (d CastDirection) String() string {
	if d == Upcast {
		return "upcast"
	}
	return "downcast"
}

// CheckedCast converts between related reference types in the given
// direction.
type CheckedCast struct {
	instr
	Direction CastDirection
	Operand   Value
}

// Operands returns the cast operand.
func (i *CheckedCast) Operands() []Value { return []Value{i.Operand} }

// BinaryOp is a stand-in for the many instruction kinds the simplifier
// treats as opaque. Op is a mnemonic such as "add".
type BinaryOp struct {
	instr
	Op  string
	LHS Value
	RHS Value
}

// Operands returns the two operands.
func (i *BinaryOp) Operands() []Value { return []Value{i.LHS, i.RHS} }
