package simplify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunarlang/lunar/ir"
	"github.com/lunarlang/lunar/simplify"
)

func TestAddressToPointerRoundTrip(t *testing.T) {
	ctx := ir.NewTypeContext()
	fn := ir.NewFunction("f")
	b := fn.NewBlock("bb0")
	rawptr := ctx.RawPointerType()
	addr := ctx.AddressType(ctx.IntType(64))

	t.Run("collapses to the original pointer", func(t *testing.T) {
		p := b.NewParam("p", rawptr)
		mem := b.NewPointerToAddress(addr, p)
		back := b.NewAddressToPointer(rawptr, mem)

		assert.Same(t, ir.Value(p), simplify.Instruction(ctx, back))
	})

	t.Run("result type differing from the original is no match", func(t *testing.T) {
		p := b.NewParam("q", rawptr)
		mem := b.NewPointerToAddress(addr, p)
		// Malformed on purpose: the round trip does not land on the
		// operand's type, so the guard must reject rather than fold.
		back := b.NewAddressToPointer(ctx.ObjectPointerType(), mem)

		assert.Nil(t, simplify.Instruction(ctx, back))
	})

	t.Run("operand not produced by the inverse is no match", func(t *testing.T) {
		a := b.NewParam("a", addr)
		conv := b.NewAddressToPointer(rawptr, a)

		assert.Nil(t, simplify.Instruction(ctx, conv))
	})
}

func TestPointerToAddressRoundTrip(t *testing.T) {
	ctx := ir.NewTypeContext()
	fn := ir.NewFunction("f")
	b := fn.NewBlock("bb0")
	rawptr := ctx.RawPointerType()
	addr := ctx.AddressType(ctx.IntType(64))

	t.Run("collapses to the original address", func(t *testing.T) {
		x := b.NewParam("x", addr)
		p := b.NewAddressToPointer(rawptr, x)
		back := b.NewPointerToAddress(addr, p)

		assert.Same(t, ir.Value(x), simplify.Instruction(ctx, back))
	})

	t.Run("distinct intermediate address type is no match", func(t *testing.T) {
		// Same element type, distinct identity: round-tripping through
		// the raw pointer must not silently re-type the address.
		other := ctx.AddressType(ctx.IntType(64))
		require.NotSame(t, addr, other)

		x := b.NewParam("y", addr)
		p := b.NewAddressToPointer(rawptr, x)
		back := b.NewPointerToAddress(other, p)

		assert.Nil(t, simplify.Instruction(ctx, back))
	})
}

func TestRefToRawPointerRoundTrip(t *testing.T) {
	ctx := ir.NewTypeContext()
	fn := ir.NewFunction("f")
	b := fn.NewBlock("bb0")
	rawptr := ctx.RawPointerType()
	node := ctx.RefType("Node")

	t.Run("collapses without a type guard", func(t *testing.T) {
		r := b.NewParam("r", node)
		raw := b.NewRefToRawPointer(rawptr, r)
		ref := b.NewRawPointerToRef(node, raw)
		again := b.NewRefToRawPointer(rawptr, ref)

		assert.Same(t, ir.Value(raw), simplify.Instruction(ctx, again))
	})

	t.Run("single hop only: chains are not chased", func(t *testing.T) {
		r := b.NewParam("s", node)
		raw := b.NewRefToRawPointer(rawptr, r)

		// The inner conversion's operand is a plain reference, so there
		// is nothing further to collapse.
		assert.Nil(t, simplify.Instruction(ctx, raw))
	})

	t.Run("outer raw_pointer_to_ref has no rule", func(t *testing.T) {
		r := b.NewParam("u", node)
		raw := b.NewRefToRawPointer(rawptr, r)
		ref := b.NewRawPointerToRef(node, raw)

		assert.Nil(t, simplify.Instruction(ctx, ref))
	})
}

func TestCheckedCastRoundTrip(t *testing.T) {
	ctx := ir.NewTypeContext()
	fn := ir.NewFunction("f")
	b := fn.NewBlock("bb0")
	base := ctx.RefType("Base")
	derived := ctx.RefType("Derived")

	t.Run("downcast of upcast collapses", func(t *testing.T) {
		x := b.NewParam("x", derived)
		up := b.NewCheckedCast(base, ir.Upcast, x)
		down := b.NewCheckedCast(derived, ir.Downcast, up)

		assert.Same(t, ir.Value(x), simplify.Instruction(ctx, down))
	})

	t.Run("downcast landing on a different type is no match", func(t *testing.T) {
		other := ctx.RefType("Other")
		x := b.NewParam("y", derived)
		up := b.NewCheckedCast(base, ir.Upcast, x)
		down := b.NewCheckedCast(other, ir.Downcast, up)

		assert.Nil(t, simplify.Instruction(ctx, down))
	})

	t.Run("upcast is never simplified", func(t *testing.T) {
		x := b.NewParam("z", derived)
		up := b.NewCheckedCast(base, ir.Upcast, x)

		assert.Nil(t, simplify.Instruction(ctx, up))
	})

	t.Run("downcast of a non-cast operand is no match", func(t *testing.T) {
		x := b.NewParam("w", base)
		down := b.NewCheckedCast(derived, ir.Downcast, x)

		assert.Nil(t, simplify.Instruction(ctx, down))
	})

	t.Run("downcast of downcast is no match", func(t *testing.T) {
		x := b.NewParam("v", base)
		inner := b.NewCheckedCast(derived, ir.Downcast, x)
		outer := b.NewCheckedCast(base, ir.Downcast, inner)

		assert.Nil(t, simplify.Instruction(ctx, outer))
	})
}

func TestObjectPointerRoundTrip(t *testing.T) {
	ctx := ir.NewTypeContext()
	fn := ir.NewFunction("f")
	b := fn.NewBlock("bb0")
	objptr := ctx.ObjectPointerType()
	node := ctx.RefType("Node")

	t.Run("collapses to the original reference", func(t *testing.T) {
		r := b.NewParam("r", node)
		hidden := b.NewRefToObjectPointer(objptr, r)
		back := b.NewObjectPointerToRef(node, hidden)

		assert.Same(t, ir.Value(r), simplify.Instruction(ctx, back))
	})

	t.Run("result type differing from the original is no match", func(t *testing.T) {
		other := ctx.RefType("Other")
		r := b.NewParam("s", node)
		hidden := b.NewRefToObjectPointer(objptr, r)
		back := b.NewObjectPointerToRef(other, hidden)

		assert.Nil(t, simplify.Instruction(ctx, back))
	})

	t.Run("outer ref_to_object_pointer has no rule", func(t *testing.T) {
		r := b.NewParam("u", node)
		hidden := b.NewRefToObjectPointer(objptr, r)

		assert.Nil(t, simplify.Instruction(ctx, hidden))
	})
}
