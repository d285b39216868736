// Package simplify implements local peephole simplification of single
// IR instructions.
//
// Given one instruction, the simplifier inspects only that instruction's
// immediate operands and, for two control-flow-sensitive rules, the
// enclosing block's single predecessor terminator. It either returns an
// equivalent value that already exists in the IR, or nil when nothing
// applies. It never looks at an instruction's uses, never iterates to a
// fixpoint, and never mutates the IR: the caller performs any
// replace-and-delete rewrite.
//
// Rule catalog:
//   - aggregate_extract of an aggregate_construct literal folds to the
//     constructed element.
//   - aggregate_construct of in-order extracts from one source folds to
//     that source (with a deliberately preserved narrowness; see
//     aggregate.go).
//   - a boolean literal in the target of a cond_br folds to the branch
//     condition when the block is reachable only under that value.
//   - a payload-free enum construction in a switch_enum case destination
//     folds to the scrutinee.
//   - single inverse conversion pairs (address/pointer, managed/raw
//     reference, object-pointer/reference, upcast/downcast) collapse to
//     the original value when the round-trip types match exactly.
//
// Every probe checks shape before dereferencing, so a malformed or
// unexpected instruction yields nil rather than a panic. Absence of a
// simplification is the normal outcome, not an error; the package has no
// error channel.
//
// The simplifier holds no state between calls and performs no I/O, so it
// is safe to call concurrently as long as the IR is not mutated during a
// call.
package simplify
