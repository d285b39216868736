package ir

// Terminator is the sealed sum of block terminators known to the model.
// Every basic block ends in exactly one terminator.
type Terminator interface {
	// Successors returns the blocks control may transfer to, in a fixed
	// order per kind.
	Successors() []*BasicBlock

	isTerminator() // Sealed.
}

// CondBranch transfers control to True when Cond (a width-1 integer) is
// nonzero, and to False otherwise.
type CondBranch struct {
	Cond  Value
	True  *BasicBlock
	False *BasicBlock
}

// Successors returns the true target followed by the false target.
func (t *CondBranch) Successors() []*BasicBlock { return []*BasicBlock{t.True, t.False} }

func (t *CondBranch) isTerminator() {}

// SwitchCase maps one enum case tag to its destination block.
type SwitchCase struct {
	Case string
	Dest *BasicBlock
}

// SwitchEnum dispatches on the active case of an enum scrutinee,
// transferring control to the destination registered for that case.
type SwitchEnum struct {
	Scrutinee Value
	Cases     []SwitchCase
}

// CaseDest returns the destination block for the given case tag, or nil
// when the tag has no registered destination.
func (t *SwitchEnum) CaseDest(tag string) *BasicBlock {
	for _, c := range t.Cases {
		if c.Case == tag {
			return c.Dest
		}
	}
	return nil
}

// Successors returns the case destinations in declaration order.
func (t *SwitchEnum) Successors() []*BasicBlock {
	dests := make([]*BasicBlock, len(t.Cases))
	for i, c := range t.Cases {
		dests[i] = c.Dest
	}
	return dests
}

func (t *SwitchEnum) isTerminator() {}

// Goto transfers control unconditionally.
type Goto struct {
	Target *BasicBlock
}

// Successors returns the single target.
func (t *Goto) Successors() []*BasicBlock { return []*BasicBlock{t.Target} }

func (t *Goto) isTerminator() {}

// Return leaves the function, optionally yielding a value.
type Return struct {
	Value Value // nil for a void return
}

// Successors returns nil; control leaves the function.
func (t *Return) Successors() []*BasicBlock { return nil }

func (t *Return) isTerminator() {}

// Unreachable marks a block that control must never reach.
type Unreachable struct{}

// Successors returns nil.
func (t *Unreachable) Successors() []*BasicBlock { return nil }

func (t *Unreachable) isTerminator() {}
