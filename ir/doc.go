// Package ir defines the SSA intermediate representation consumed by the
// simplifier: values, a closed set of instruction kinds, basic blocks,
// terminators, and identity-compared types.
//
// This package contains the model and its builder only. Optimization
// packages import ir; ir imports nothing internal. This keeps the IR the
// foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Type equality is pointer identity. Two *Type values denote the same
//     IR type iff they are the same pointer; no structural coercion is
//     ever applied. Canonical types come from a TypeContext, which is
//     always passed explicitly, never reached through a global.
//   - Value equality is pointer identity. Every Value is either the
//     result of exactly one defining Instruction or a block parameter.
//   - Instruction and Terminator are sealed sums: the variant sets are
//     closed, so consumers dispatch with exhaustive type switches and a
//     new kind is a compile-visible change at every switch.
//   - Nothing here mutates after construction except block/terminator
//     wiring performed by the builder itself.
package ir
