package simplify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunarlang/lunar/internal/testutil"
	"github.com/lunarlang/lunar/ir"
	"github.com/lunarlang/lunar/simplify"
)

func TestUnhandledKindsNeverSimplify(t *testing.T) {
	ctx := ir.NewTypeContext()
	fn := ir.NewFunction("f")
	b := fn.NewBlock("bb0")
	i64 := ctx.IntType(64)
	x := b.NewParam("x", i64)
	y := b.NewParam("y", i64)

	sum := b.NewBinaryOp(i64, "add", x, y)
	diff := b.NewBinaryOp(i64, "sub", sum, y)

	assert.Nil(t, simplify.Instruction(ctx, sum))
	assert.Nil(t, simplify.Instruction(ctx, diff))
}

func TestWideIntegerLiteralHasNoRuleEffect(t *testing.T) {
	// A non-boolean literal reaches the integer-literal rule but fails
	// its type guard; it must come back nil without touching the CFG.
	ctx := ir.NewTypeContext()
	fn := ir.NewFunction("f")
	b := fn.NewBlock("bb0")
	lit := b.NewIntegerLiteral(ctx.IntType(32), 42)

	assert.Nil(t, simplify.Instruction(ctx, lit))
}

// Simplification reaches a fixpoint in one step: whatever a rule
// returns, applying the simplifier to that result's defining instruction
// (if any) within the same IR yields nothing further from the same local
// context.
func TestSimplificationIsOneStepFixpoint(t *testing.T) {
	t.Run("pointer round trip", func(t *testing.T) {
		ctx := ir.NewTypeContext()
		fn := ir.NewFunction("f")
		b := fn.NewBlock("bb0")
		rawptr := ctx.RawPointerType()
		addr := ctx.AddressType(ctx.IntType(64))

		p := b.NewParam("p", rawptr)
		mem := b.NewPointerToAddress(addr, p)
		back := b.NewAddressToPointer(rawptr, mem)
		again := b.NewPointerToAddress(addr, back)

		got := simplify.Instruction(ctx, again)
		require.Same(t, ir.Value(mem), got)

		// The replacement is itself an instruction; it must not reduce
		// further.
		next, ok := got.(ir.Instruction)
		require.True(t, ok)
		assert.Nil(t, simplify.Instruction(ctx, next))
	})

	t.Run("branch condition", func(t *testing.T) {
		fx := testutil.NewBranchFixture()
		lit := fx.True.NewIntegerLiteral(fx.Ctx.BoolType(), 1)

		got := simplify.Instruction(fx.Ctx, lit)
		require.Same(t, ir.Value(fx.Cond), got)

		// The condition is a block parameter: nothing to simplify.
		_, isInstruction := got.(ir.Instruction)
		assert.False(t, isInstruction)
	})

	t.Run("aggregate element", func(t *testing.T) {
		ctx := ir.NewTypeContext()
		fn := ir.NewFunction("f")
		b := fn.NewBlock("bb0")
		i64 := ctx.IntType(64)
		single := ctx.TupleType(i64)

		s := b.NewParam("s", single)
		ex := b.NewAggregateExtract(i64, s, 0)
		rewrap := b.NewAggregateConstruct(single, ex)

		got := simplify.Instruction(ctx, rewrap)
		require.Same(t, ir.Value(s), got)

		// Extracting from the (non-literal) source does not reduce.
		assert.Nil(t, simplify.Instruction(ctx, ex))
	})
}

func TestSimplifierIsStateless(t *testing.T) {
	// The same call on the same instruction yields the identical answer;
	// no state accumulates between calls.
	fx := testutil.NewBranchFixture()
	lit := fx.True.NewIntegerLiteral(fx.Ctx.BoolType(), 1)

	first := simplify.Instruction(fx.Ctx, lit)
	second := simplify.Instruction(fx.Ctx, lit)

	require.NotNil(t, first)
	assert.Same(t, first, second)
}
