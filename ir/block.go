package ir

// Function is a named collection of basic blocks. The first block created
// is the entry block. The function owns the counter that numbers
// instruction results for printing.
type Function struct {
	name   string
	blocks []*BasicBlock
	nextID int
}

// NewFunction creates an empty function.
func NewFunction(name string) *Function {
	return &Function{name: name}
}

// Name returns the function name.
func (f *Function) Name() string { return f.name }

// Blocks returns the function's blocks in creation order.
func (f *Function) Blocks() []*BasicBlock { return f.blocks }

// NewBlock appends a new, empty, unterminated block to the function.
func (f *Function) NewBlock(name string) *BasicBlock {
	b := &BasicBlock{name: name, fn: f}
	f.blocks = append(f.blocks, b)
	return b
}

// BasicBlock is an ordered sequence of instructions ending in exactly one
// terminator. The block tracks its predecessors; wiring happens in
// SetTerminator, so predecessor counts are correct as soon as every
// branching block has been terminated.
type BasicBlock struct {
	name   string
	fn     *Function
	params []*BlockParam
	instrs []Instruction
	term   Terminator
	preds  []*BasicBlock
}

// Name returns the block label.
func (b *BasicBlock) Name() string { return b.name }

// Func returns the enclosing function.
func (b *BasicBlock) Func() *Function { return b.fn }

// Params returns the block's parameters in declaration order.
func (b *BasicBlock) Params() []*BlockParam { return b.params }

// Instructions returns the block's instructions in order, excluding the
// terminator.
func (b *BasicBlock) Instructions() []Instruction { return b.instrs }

// Terminator returns the block's terminator, or nil while the block is
// still being built.
func (b *BasicBlock) Terminator() Terminator { return b.term }

// Preds returns the block's predecessor blocks.
func (b *BasicBlock) Preds() []*BasicBlock { return b.preds }

// NumPredecessors returns the number of predecessor blocks.
func (b *BasicBlock) NumPredecessors() int { return len(b.preds) }

// SinglePredecessor returns the block's sole predecessor, or nil when the
// block has zero or more than one.
func (b *BasicBlock) SinglePredecessor() *BasicBlock {
	if len(b.preds) != 1 {
		return nil
	}
	return b.preds[0]
}

// SetTerminator installs the block's terminator and records this block as
// a predecessor of every successor. A block is terminated exactly once.
func (b *BasicBlock) SetTerminator(t Terminator) {
	if b.term != nil {
		panic("ir: block " + b.name + " already terminated")
	}
	b.term = t
	for _, succ := range t.Successors() {
		succ.preds = append(succ.preds, b)
	}
}

// NewParam declares a block parameter.
func (b *BasicBlock) NewParam(name string, typ *Type) *BlockParam {
	p := &BlockParam{name: name, typ: typ, block: b}
	b.params = append(b.params, p)
	return p
}

// append assigns the instruction its result number and places it at the
// end of the block.
func (b *BasicBlock) append(base *instr, in Instruction) {
	base.id = b.fn.nextID
	b.fn.nextID++
	base.block = b
	b.instrs = append(b.instrs, in)
}

// NewAggregateExtract appends a field projection from agg.
func (b *BasicBlock) NewAggregateExtract(typ *Type, agg Value, field int) *AggregateExtract {
	in := &AggregateExtract{Agg: agg, Field: field}
	in.typ = typ
	b.append(&in.instr, in)
	return in
}

// NewAggregateConstruct appends a tuple or struct literal.
func (b *BasicBlock) NewAggregateConstruct(typ *Type, elems ...Value) *AggregateConstruct {
	in := &AggregateConstruct{Elems: elems}
	in.typ = typ
	b.append(&in.instr, in)
	return in
}

// NewIntegerLiteral appends an integer constant of the given type.
func (b *BasicBlock) NewIntegerLiteral(typ *Type, val int64) *IntegerLiteral {
	in := &IntegerLiteral{Val: val}
	in.typ = typ
	b.append(&in.instr, in)
	return in
}

// NewEnumConstruct appends an enum construction. payload is nil for
// payload-free cases.
func (b *BasicBlock) NewEnumConstruct(typ *Type, caseTag string, payload Value) *EnumConstruct {
	in := &EnumConstruct{Case: caseTag, Payload: payload}
	in.typ = typ
	b.append(&in.instr, in)
	return in
}

// NewAddressToPointer appends an address-to-pointer conversion.
func (b *BasicBlock) NewAddressToPointer(typ *Type, operand Value) *AddressToPointer {
	in := &AddressToPointer{Operand: operand}
	in.typ = typ
	b.append(&in.instr, in)
	return in
}

// NewPointerToAddress appends a pointer-to-address conversion.
func (b *BasicBlock) NewPointerToAddress(typ *Type, operand Value) *PointerToAddress {
	in := &PointerToAddress{Operand: operand}
	in.typ = typ
	b.append(&in.instr, in)
	return in
}

// NewRefToRawPointer appends a reference-to-raw-pointer conversion.
func (b *BasicBlock) NewRefToRawPointer(typ *Type, operand Value) *RefToRawPointer {
	in := &RefToRawPointer{Operand: operand}
	in.typ = typ
	b.append(&in.instr, in)
	return in
}

// NewRawPointerToRef appends a raw-pointer-to-reference conversion.
func (b *BasicBlock) NewRawPointerToRef(typ *Type, operand Value) *RawPointerToRef {
	in := &RawPointerToRef{Operand: operand}
	in.typ = typ
	b.append(&in.instr, in)
	return in
}

// NewRefToObjectPointer appends a reference-to-object-pointer conversion.
func (b *BasicBlock) NewRefToObjectPointer(typ *Type, operand Value) *RefToObjectPointer {
	in := &RefToObjectPointer{Operand: operand}
	in.typ = typ
	b.append(&in.instr, in)
	return in
}

// NewObjectPointerToRef appends an object-pointer-to-reference conversion.
func (b *BasicBlock) NewObjectPointerToRef(typ *Type, operand Value) *ObjectPointerToRef {
	in := &ObjectPointerToRef{Operand: operand}
	in.typ = typ
	b.append(&in.instr, in)
	return in
}

// NewCheckedCast appends a checked cast in the given direction.
func (b *BasicBlock) NewCheckedCast(typ *Type, dir CastDirection, operand Value) *CheckedCast {
	in := &CheckedCast{Direction: dir, Operand: operand}
	in.typ = typ
	b.append(&in.instr, in)
	return in
}

// NewBinaryOp appends an opaque two-operand instruction.
func (b *BasicBlock) NewBinaryOp(typ *Type, op string, lhs, rhs Value) *BinaryOp {
	in := &BinaryOp{Op: op, LHS: lhs, RHS: rhs}
	in.typ = typ
	b.append(&in.instr, in)
	return in
}
