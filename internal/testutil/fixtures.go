// Package testutil provides deterministic IR fixtures shared across test
// packages.
//
// The fixtures build small, fully-wired control-flow graphs with fixed
// block and value names, so tests that exercise predecessor-sensitive
// rules all start from identical shapes and golden comparisons stay
// stable across runs.
package testutil

import (
	"fmt"

	"github.com/lunarlang/lunar/ir"
)

// BranchFixture is a three-block CFG ending in a conditional branch:
//
//	bb0(%c : i1): cond_br %c, bb1, bb2
//
// True and False are left unterminated so a test can place the
// instruction under test inside either target.
type BranchFixture struct {
	Ctx   *ir.TypeContext
	Fn    *ir.Function
	Cond  *ir.BlockParam
	Entry *ir.BasicBlock
	True  *ir.BasicBlock
	False *ir.BasicBlock
}

// NewBranchFixture builds the conditional-branch CFG.
func NewBranchFixture() *BranchFixture {
	ctx := ir.NewTypeContext()
	fn := ir.NewFunction("branch")
	entry := fn.NewBlock("bb0")
	cond := entry.NewParam("c", ctx.BoolType())
	trueBB := fn.NewBlock("bb1")
	falseBB := fn.NewBlock("bb2")
	entry.SetTerminator(&ir.CondBranch{Cond: cond, True: trueBB, False: falseBB})
	return &BranchFixture{
		Ctx:   ctx,
		Fn:    fn,
		Cond:  cond,
		Entry: entry,
		True:  trueBB,
		False: falseBB,
	}
}

// SwitchFixture is a CFG whose entry dispatches an enum scrutinee to one
// destination block per case:
//
//	bb0(%e : E): switch_enum %e, [#a: bb1, #b: bb2, ...]
//
// Destinations are left unterminated.
type SwitchFixture struct {
	Ctx       *ir.TypeContext
	Fn        *ir.Function
	EnumType  *ir.Type
	Scrutinee *ir.BlockParam
	Entry     *ir.BasicBlock
	Dests     map[string]*ir.BasicBlock
}

// NewSwitchFixture builds the switch CFG with one destination per case
// tag, in the given order.
func NewSwitchFixture(cases ...string) *SwitchFixture {
	ctx := ir.NewTypeContext()
	enumType := ctx.EnumType("E", cases...)
	fn := ir.NewFunction("dispatch")
	entry := fn.NewBlock("bb0")
	scrutinee := entry.NewParam("e", enumType)

	dests := make(map[string]*ir.BasicBlock, len(cases))
	switchCases := make([]ir.SwitchCase, len(cases))
	for i, tag := range cases {
		dest := fn.NewBlock(blockName(i + 1))
		dests[tag] = dest
		switchCases[i] = ir.SwitchCase{Case: tag, Dest: dest}
	}
	entry.SetTerminator(&ir.SwitchEnum{Scrutinee: scrutinee, Cases: switchCases})

	return &SwitchFixture{
		Ctx:       ctx,
		Fn:        fn,
		EnumType:  enumType,
		Scrutinee: scrutinee,
		Entry:     entry,
		Dests:     dests,
	}
}

func blockName(i int) string {
	return fmt.Sprintf("bb%d", i)
}
