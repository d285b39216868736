package ir

import "fmt"

// Value is a sealed interface over everything that can appear as an
// instruction operand: block parameters and instruction results.
//
// Values compare by identity. A Value is immutable once created; the
// simplifier and every other consumer only ever reads it.
type Value interface {
	// Type returns the value's type descriptor.
	Type() *Type

	// Name returns the printed name of the value ("%c" for parameters,
	// "%3" for instruction results).
	Name() string

	irValue() // Sealed - only BlockParam and the instruction kinds implement it.
}

// BlockParam is a value introduced as a parameter of a basic block.
// It has no defining instruction.
type BlockParam struct {
	name  string
	typ   *Type
	block *BasicBlock
}

// Type returns the parameter's type.
func (p *BlockParam) Type() *Type { return p.typ }

// Name returns the parameter's printed name.
func (p *BlockParam) Name() string { return "%" + p.name }

// Parent returns the block that declares the parameter.
func (p *BlockParam) Parent() *BasicBlock { return p.block }

func (p *BlockParam) irValue() {}

// String renders the parameter with its type for diagnostics.
func (p *BlockParam) String() string {
	return fmt.Sprintf("%s : %s", p.Name(), p.typ)
}
