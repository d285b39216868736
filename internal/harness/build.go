package harness

import (
	"fmt"

	"github.com/lunarlang/lunar/ir"
)

// Program is a scenario materialized through the ir builder.
type Program struct {
	Ctx    *ir.TypeContext
	Fn     *ir.Function
	Values map[string]ir.Value       // every named value (params and instructions)
	Instrs map[string]ir.Instruction // named instructions only
}

// Build materializes the scenario's function. Value references must be
// declared before use; block references resolve across the whole file
// because terminators are installed after every block exists.
func Build(s *Scenario) (*Program, error) {
	p := &Program{
		Ctx:    ir.NewTypeContext(),
		Values: make(map[string]ir.Value),
		Instrs: make(map[string]ir.Instruction),
	}

	types, err := buildTypes(p.Ctx, s.Types)
	if err != nil {
		return nil, err
	}

	p.Fn = ir.NewFunction(s.Name)
	blocks := make(map[string]*ir.BasicBlock, len(s.Blocks))
	for _, bd := range s.Blocks {
		if _, dup := blocks[bd.Name]; dup {
			return nil, fmt.Errorf("duplicate block %q", bd.Name)
		}
		blocks[bd.Name] = p.Fn.NewBlock(bd.Name)
	}

	for _, bd := range s.Blocks {
		block := blocks[bd.Name]
		for _, pd := range bd.Params {
			typ, ok := types[pd.Type]
			if !ok {
				return nil, fmt.Errorf("block %q param %q: unknown type %q", bd.Name, pd.Name, pd.Type)
			}
			if err := p.bind(pd.Name, block.NewParam(pd.Name, typ)); err != nil {
				return nil, err
			}
		}
		for _, id := range bd.Instrs {
			in, err := p.buildInstr(block, types, id)
			if err != nil {
				return nil, fmt.Errorf("block %q instr %q: %w", bd.Name, id.Name, err)
			}
			if id.Name != "" {
				if err := p.bind(id.Name, in); err != nil {
					return nil, err
				}
				p.Instrs[id.Name] = in
			}
		}
	}

	for _, bd := range s.Blocks {
		term, err := p.buildTerm(blocks, bd.Terminator)
		if err != nil {
			return nil, fmt.Errorf("block %q terminator: %w", bd.Name, err)
		}
		blocks[bd.Name].SetTerminator(term)
	}

	return p, nil
}

func (p *Program) bind(name string, v ir.Value) error {
	if _, dup := p.Values[name]; dup {
		return fmt.Errorf("duplicate value name %q", name)
	}
	p.Values[name] = v
	return nil
}

func (p *Program) value(name string) (ir.Value, error) {
	v, ok := p.Values[name]
	if !ok {
		return nil, fmt.Errorf("unknown value %q", name)
	}
	return v, nil
}

func buildTypes(ctx *ir.TypeContext, defs []TypeDef) (map[string]*ir.Type, error) {
	types := make(map[string]*ir.Type, len(defs))
	lookup := func(name string) (*ir.Type, error) {
		t, ok := types[name]
		if !ok {
			return nil, fmt.Errorf("unknown type %q", name)
		}
		return t, nil
	}

	for _, d := range defs {
		if _, dup := types[d.Name]; dup {
			return nil, fmt.Errorf("duplicate type %q", d.Name)
		}
		switch d.Kind {
		case "integer":
			if d.Width <= 0 {
				return nil, fmt.Errorf("type %q: integer width must be positive", d.Name)
			}
			types[d.Name] = ctx.IntType(d.Width)
		case "raw_pointer":
			types[d.Name] = ctx.RawPointerType()
		case "address":
			elem, err := lookup(d.Elem)
			if err != nil {
				return nil, fmt.Errorf("type %q: %w", d.Name, err)
			}
			types[d.Name] = ctx.AddressType(elem)
		case "ref":
			types[d.Name] = ctx.RefType(d.Name)
		case "object_pointer":
			types[d.Name] = ctx.ObjectPointerType()
		case "enum":
			types[d.Name] = ctx.EnumType(d.Name, d.Cases...)
		case "tuple", "struct":
			fields := make([]*ir.Type, len(d.Fields))
			for i, fname := range d.Fields {
				f, err := lookup(fname)
				if err != nil {
					return nil, fmt.Errorf("type %q field %d: %w", d.Name, i, err)
				}
				fields[i] = f
			}
			if d.Kind == "tuple" {
				types[d.Name] = ctx.TupleType(fields...)
			} else {
				types[d.Name] = ctx.StructType(d.Name, fields...)
			}
		default:
			return nil, fmt.Errorf("type %q: unknown kind %q", d.Name, d.Kind)
		}
	}
	return types, nil
}

func (p *Program) buildInstr(block *ir.BasicBlock, types map[string]*ir.Type, d InstrDef) (ir.Instruction, error) {
	typ, ok := types[d.Type]
	if !ok {
		return nil, fmt.Errorf("unknown type %q", d.Type)
	}

	switch d.Op {
	case "aggregate_extract":
		agg, err := p.value(d.Agg)
		if err != nil {
			return nil, err
		}
		return block.NewAggregateExtract(typ, agg, d.Field), nil

	case "aggregate_construct":
		elems := make([]ir.Value, len(d.Elems))
		for i, name := range d.Elems {
			v, err := p.value(name)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return block.NewAggregateConstruct(typ, elems...), nil

	case "int_literal":
		return block.NewIntegerLiteral(typ, d.Value), nil

	case "enum":
		var payload ir.Value
		if d.Payload != "" {
			v, err := p.value(d.Payload)
			if err != nil {
				return nil, err
			}
			payload = v
		}
		return block.NewEnumConstruct(typ, d.Case, payload), nil

	case "address_to_pointer":
		op, err := p.value(d.Operand)
		if err != nil {
			return nil, err
		}
		return block.NewAddressToPointer(typ, op), nil

	case "pointer_to_address":
		op, err := p.value(d.Operand)
		if err != nil {
			return nil, err
		}
		return block.NewPointerToAddress(typ, op), nil

	case "ref_to_raw_pointer":
		op, err := p.value(d.Operand)
		if err != nil {
			return nil, err
		}
		return block.NewRefToRawPointer(typ, op), nil

	case "raw_pointer_to_ref":
		op, err := p.value(d.Operand)
		if err != nil {
			return nil, err
		}
		return block.NewRawPointerToRef(typ, op), nil

	case "ref_to_object_pointer":
		op, err := p.value(d.Operand)
		if err != nil {
			return nil, err
		}
		return block.NewRefToObjectPointer(typ, op), nil

	case "object_pointer_to_ref":
		op, err := p.value(d.Operand)
		if err != nil {
			return nil, err
		}
		return block.NewObjectPointerToRef(typ, op), nil

	case "checked_cast":
		op, err := p.value(d.Operand)
		if err != nil {
			return nil, err
		}
		var dir ir.CastDirection
		switch d.Direction {
		case "upcast":
			dir = ir.Upcast
		case "downcast":
			dir = ir.Downcast
		default:
			return nil, fmt.Errorf("unknown cast direction %q", d.Direction)
		}
		return block.NewCheckedCast(typ, dir, op), nil

	case "add", "sub", "mul":
		lhs, err := p.value(d.LHS)
		if err != nil {
			return nil, err
		}
		rhs, err := p.value(d.RHS)
		if err != nil {
			return nil, err
		}
		return block.NewBinaryOp(typ, d.Op, lhs, rhs), nil

	default:
		return nil, fmt.Errorf("unknown op %q", d.Op)
	}
}

func (p *Program) buildTerm(blocks map[string]*ir.BasicBlock, d *TermDef) (ir.Terminator, error) {
	blockRef := func(name string) (*ir.BasicBlock, error) {
		b, ok := blocks[name]
		if !ok {
			return nil, fmt.Errorf("unknown block %q", name)
		}
		return b, nil
	}

	switch d.Op {
	case "cond_br":
		cond, err := p.value(d.Cond)
		if err != nil {
			return nil, err
		}
		trueBB, err := blockRef(d.True)
		if err != nil {
			return nil, err
		}
		falseBB, err := blockRef(d.False)
		if err != nil {
			return nil, err
		}
		return &ir.CondBranch{Cond: cond, True: trueBB, False: falseBB}, nil

	case "switch_enum":
		scrutinee, err := p.value(d.Scrutinee)
		if err != nil {
			return nil, err
		}
		cases := make([]ir.SwitchCase, len(d.Cases))
		for i, c := range d.Cases {
			dest, err := blockRef(c.Dest)
			if err != nil {
				return nil, err
			}
			cases[i] = ir.SwitchCase{Case: c.Case, Dest: dest}
		}
		return &ir.SwitchEnum{Scrutinee: scrutinee, Cases: cases}, nil

	case "br":
		target, err := blockRef(d.Target)
		if err != nil {
			return nil, err
		}
		return &ir.Goto{Target: target}, nil

	case "ret":
		var val ir.Value
		if d.Value != "" {
			v, err := p.value(d.Value)
			if err != nil {
				return nil, err
			}
			val = v
		}
		return &ir.Return{Value: val}, nil

	case "unreachable":
		return &ir.Unreachable{}, nil

	default:
		return nil, fmt.Errorf("unknown terminator op %q", d.Op)
	}
}
