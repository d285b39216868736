package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunarlang/lunar/ir"
)

func retTerm() *TermDef {
	return &TermDef{Op: "ret"}
}

func TestBuildMaterializesFunction(t *testing.T) {
	scenario := &Scenario{
		Name:        "build_smoke",
		Description: "builder smoke test",
		Types: []TypeDef{
			{Name: "i1", Kind: "integer", Width: 1},
		},
		Blocks: []BlockDef{
			{
				Name:   "bb0",
				Params: []ParamDef{{Name: "c", Type: "i1"}},
				Terminator: &TermDef{
					Op: "cond_br", Cond: "c", True: "bb1", False: "bb2",
				},
			},
			{
				Name: "bb1",
				Instrs: []InstrDef{
					{Name: "t", Op: "int_literal", Type: "i1", Value: 1},
				},
				Terminator: &TermDef{Op: "ret", Value: "t"},
			},
			{Name: "bb2", Terminator: retTerm()},
		},
		Expect: []Expectation{{Instr: "t", Result: "c"}},
	}

	prog, err := Build(scenario)
	require.NoError(t, err)

	require.Len(t, prog.Fn.Blocks(), 3)
	entry := prog.Fn.Blocks()[0]
	target := prog.Fn.Blocks()[1]

	br, ok := entry.Terminator().(*ir.CondBranch)
	require.True(t, ok)
	assert.Same(t, prog.Values["c"], br.Cond)
	assert.Same(t, target, br.True)
	assert.Same(t, entry, target.SinglePredecessor())

	lit, ok := prog.Instrs["t"].(*ir.IntegerLiteral)
	require.True(t, ok)
	assert.Equal(t, int64(1), lit.Val)
	assert.Same(t, prog.Ctx.BoolType(), lit.Type())
}

func TestBuildErrors(t *testing.T) {
	base := func() *Scenario {
		return &Scenario{
			Name:        "s",
			Description: "d",
			Types:       []TypeDef{{Name: "i64", Kind: "integer", Width: 64}},
			Expect:      []Expectation{{Instr: "x", Result: ResultNone}},
		}
	}

	t.Run("duplicate block name", func(t *testing.T) {
		s := base()
		s.Blocks = []BlockDef{
			{Name: "bb0", Terminator: retTerm()},
			{Name: "bb0", Terminator: retTerm()},
		}
		_, err := Build(s)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate block")
	})

	t.Run("unknown operand value", func(t *testing.T) {
		s := base()
		s.Blocks = []BlockDef{{
			Name: "bb0",
			Instrs: []InstrDef{
				{Name: "x", Op: "address_to_pointer", Type: "i64", Operand: "ghost"},
			},
			Terminator: retTerm(),
		}}
		_, err := Build(s)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown value "ghost"`)
	})

	t.Run("unknown type", func(t *testing.T) {
		s := base()
		s.Blocks = []BlockDef{{
			Name: "bb0",
			Instrs: []InstrDef{
				{Name: "x", Op: "int_literal", Type: "i32", Value: 0},
			},
			Terminator: retTerm(),
		}}
		_, err := Build(s)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown type "i32"`)
	})

	t.Run("unknown op", func(t *testing.T) {
		s := base()
		s.Blocks = []BlockDef{{
			Name: "bb0",
			Instrs: []InstrDef{
				{Name: "x", Op: "frobnicate", Type: "i64"},
			},
			Terminator: retTerm(),
		}}
		_, err := Build(s)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown op "frobnicate"`)
	})

	t.Run("unknown cast direction", func(t *testing.T) {
		s := base()
		s.Blocks = []BlockDef{{
			Name:   "bb0",
			Params: []ParamDef{{Name: "a", Type: "i64"}},
			Instrs: []InstrDef{
				{Name: "x", Op: "checked_cast", Type: "i64", Operand: "a", Direction: "sideways"},
			},
			Terminator: retTerm(),
		}}
		_, err := Build(s)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown cast direction "sideways"`)
	})

	t.Run("unknown terminator target", func(t *testing.T) {
		s := base()
		s.Blocks = []BlockDef{{
			Name:       "bb0",
			Terminator: &TermDef{Op: "br", Target: "bb9"},
		}}
		_, err := Build(s)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown block "bb9"`)
	})

	t.Run("duplicate value name", func(t *testing.T) {
		s := base()
		s.Blocks = []BlockDef{{
			Name:   "bb0",
			Params: []ParamDef{{Name: "a", Type: "i64"}},
			Instrs: []InstrDef{
				{Name: "a", Op: "int_literal", Type: "i64", Value: 1},
			},
			Terminator: retTerm(),
		}}
		_, err := Build(s)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `duplicate value name "a"`)
	})
}
