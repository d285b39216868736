// Package harness provides scenario-driven conformance testing for the
// simplifier.
//
// A scenario is a YAML file describing one IR function (types, blocks
// with parameters and instructions, terminators) and a list of
// expectations: which instruction to simplify and which existing value,
// if any, must come back. The harness builds the function through the ir
// builder, evaluates every expectation against simplify.Instruction, and
// reports mismatches with full context.
//
// # Scenario Format
//
//	name: scenario_name
//	description: "What this scenario validates"
//	types:
//	  - {name: i1, kind: integer, width: 1}
//	  - {name: E, kind: enum, cases: [a, b]}
//	blocks:
//	  - name: bb0
//	    params:
//	      - {name: c, type: i1}
//	    terminator: {op: cond_br, cond: c, "true": bb1, "false": bb2}
//	  - name: bb1
//	    instrs:
//	      - {name: t, op: int_literal, type: i1, value: 1}
//	    terminator: {op: ret}
//	  - name: bb2
//	    terminator: {op: ret}
//	expect:
//	  - {instr: t, result: c}
//
// A result of "none" asserts that no simplification applies.
//
// # Deterministic Testing
//
// Scenarios carry no clocks and no randomness; the function text and the
// expectation outcomes are fully determined by the file, which makes the
// rendered snapshot suitable for golden comparison (see RunWithGolden).
package harness
