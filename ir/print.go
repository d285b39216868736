package ir

import (
	"fmt"
	"strings"
)

// String renders the function as deterministic text. The output is stable
// across runs for identical construction order, which is what the golden
// tests compare against.
func (f *Function) String() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "func @%s {\n", f.name)
	for _, b := range f.blocks {
		buf.WriteString(b.String())
	}
	buf.WriteString("}\n")
	return buf.String()
}

// String renders the block label, parameters, instructions, and
// terminator.
func (b *BasicBlock) String() string {
	var buf strings.Builder
	buf.WriteString(b.name)
	if len(b.params) > 0 {
		parts := make([]string, len(b.params))
		for i, p := range b.params {
			parts[i] = p.String()
		}
		buf.WriteString("(" + strings.Join(parts, ", ") + ")")
	}
	buf.WriteString(":\n")
	for _, in := range b.instrs {
		fmt.Fprintf(&buf, "  %s = %s\n", in.Name(), formatInstruction(in))
	}
	if b.term != nil {
		fmt.Fprintf(&buf, "  %s\n", formatTerminator(b.term))
	}
	return buf.String()
}

func formatInstruction(in Instruction) string {
	switch in := in.(type) {
	case *AggregateExtract:
		return fmt.Sprintf("aggregate_extract %s, %d : %s", in.Agg.Name(), in.Field, in.Type())
	case *AggregateConstruct:
		return fmt.Sprintf("aggregate_construct [%s] : %s", operandNames(in.Elems), in.Type())
	case *IntegerLiteral:
		return fmt.Sprintf("int_literal %d : %s", in.Val, in.Type())
	case *EnumConstruct:
		if in.Payload != nil {
			return fmt.Sprintf("enum #%s(%s) : %s", in.Case, in.Payload.Name(), in.Type())
		}
		return fmt.Sprintf("enum #%s : %s", in.Case, in.Type())
	case *AddressToPointer:
		return fmt.Sprintf("address_to_pointer %s : %s", in.Operand.Name(), in.Type())
	case *PointerToAddress:
		return fmt.Sprintf("pointer_to_address %s : %s", in.Operand.Name(), in.Type())
	case *RefToRawPointer:
		return fmt.Sprintf("ref_to_raw_pointer %s : %s", in.Operand.Name(), in.Type())
	case *RawPointerToRef:
		return fmt.Sprintf("raw_pointer_to_ref %s : %s", in.Operand.Name(), in.Type())
	case *RefToObjectPointer:
		return fmt.Sprintf("ref_to_object_pointer %s : %s", in.Operand.Name(), in.Type())
	case *ObjectPointerToRef:
		return fmt.Sprintf("object_pointer_to_ref %s : %s", in.Operand.Name(), in.Type())
	case *CheckedCast:
		return fmt.Sprintf("checked_cast %s %s : %s", in.Direction, in.Operand.Name(), in.Type())
	case *BinaryOp:
		return fmt.Sprintf("%s %s, %s : %s", in.Op, in.LHS.Name(), in.RHS.Name(), in.Type())
	default:
		return fmt.Sprintf("unknown<%T>", in)
	}
}

func formatTerminator(t Terminator) string {
	switch t := t.(type) {
	case *CondBranch:
		return fmt.Sprintf("cond_br %s, %s, %s", t.Cond.Name(), t.True.Name(), t.False.Name())
	case *SwitchEnum:
		parts := make([]string, len(t.Cases))
		for i, c := range t.Cases {
			parts[i] = fmt.Sprintf("#%s: %s", c.Case, c.Dest.Name())
		}
		return fmt.Sprintf("switch_enum %s, [%s]", t.Scrutinee.Name(), strings.Join(parts, ", "))
	case *Goto:
		return "br " + t.Target.Name()
	case *Return:
		if t.Value != nil {
			return "ret " + t.Value.Name()
		}
		return "ret"
	case *Unreachable:
		return "unreachable"
	default:
		return fmt.Sprintf("unknown<%T>", t)
	}
}

func operandNames(vals []Value) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = v.Name()
	}
	return strings.Join(parts, ", ")
}
