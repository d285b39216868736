package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario: one IR function and the
// simplification expectations to evaluate against it.
type Scenario struct {
	// Name uniquely identifies this scenario. It names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Types declares the named type descriptors the function uses.
	// Declaration order matters only for readability; a type may
	// reference any other declared type.
	Types []TypeDef `yaml:"types,omitempty"`

	// Blocks defines the function body. The first block is the entry.
	Blocks []BlockDef `yaml:"blocks"`

	// Expect lists the expectations to evaluate.
	Expect []Expectation `yaml:"expect"`
}

// TypeDef declares one named type.
type TypeDef struct {
	// Name is the identifier instructions use to reference the type.
	Name string `yaml:"name"`

	// Kind selects the descriptor: integer, raw_pointer, address, ref,
	// object_pointer, enum, tuple, or struct.
	Kind string `yaml:"kind"`

	// Width is the bit width (integer only).
	Width int `yaml:"width,omitempty"`

	// Elem is the element type name (address only).
	Elem string `yaml:"elem,omitempty"`

	// Cases are the case tags (enum only).
	Cases []string `yaml:"cases,omitempty"`

	// Fields are the field type names (tuple and struct only).
	Fields []string `yaml:"fields,omitempty"`
}

// BlockDef defines one basic block.
type BlockDef struct {
	Name   string     `yaml:"name"`
	Params []ParamDef `yaml:"params,omitempty"`
	Instrs []InstrDef `yaml:"instrs,omitempty"`

	// Terminator is required; every block ends in exactly one.
	Terminator *TermDef `yaml:"terminator"`
}

// ParamDef declares one block parameter.
type ParamDef struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// InstrDef defines one instruction. Op selects the kind; the remaining
// fields are per-op. Operand references are value names declared earlier
// in the file (parameters or named instructions).
type InstrDef struct {
	// Name binds the instruction's result for later reference.
	Name string `yaml:"name"`

	// Op is one of: aggregate_extract, aggregate_construct, int_literal,
	// enum, address_to_pointer, pointer_to_address, ref_to_raw_pointer,
	// raw_pointer_to_ref, ref_to_object_pointer, object_pointer_to_ref,
	// checked_cast, add, sub, mul.
	Op string `yaml:"op"`

	// Type names the result type.
	Type string `yaml:"type"`

	Agg       string   `yaml:"agg,omitempty"`       // aggregate_extract
	Field     int      `yaml:"field,omitempty"`     // aggregate_extract
	Elems     []string `yaml:"elems,omitempty"`     // aggregate_construct
	Value     int64    `yaml:"value,omitempty"`     // int_literal
	Case      string   `yaml:"case,omitempty"`      // enum
	Payload   string   `yaml:"payload,omitempty"`   // enum (optional)
	Operand   string   `yaml:"operand,omitempty"`   // conversions, checked_cast
	Direction string   `yaml:"direction,omitempty"` // checked_cast: upcast|downcast
	LHS       string   `yaml:"lhs,omitempty"`       // add, sub, mul
	RHS       string   `yaml:"rhs,omitempty"`       // add, sub, mul
}

// TermDef defines a block terminator.
type TermDef struct {
	// Op is one of: cond_br, switch_enum, br, ret, unreachable.
	Op string `yaml:"op"`

	Cond string `yaml:"cond,omitempty"` // cond_br

	// True and False must be written as quoted keys ("true": bb1) in the
	// YAML, since bare true/false parse as booleans, not strings.
	True      string    `yaml:"true,omitempty"`      // cond_br
	False     string    `yaml:"false,omitempty"`     // cond_br
	Scrutinee string    `yaml:"scrutinee,omitempty"` // switch_enum
	Cases     []CaseDef `yaml:"cases,omitempty"`     // switch_enum
	Target    string    `yaml:"target,omitempty"`    // br
	Value     string    `yaml:"value,omitempty"`     // ret (optional)
}

// CaseDef maps one enum case tag to a destination block name.
type CaseDef struct {
	Case string `yaml:"case"`
	Dest string `yaml:"dest"`
}

// Expectation asserts the simplification outcome for one instruction.
type Expectation struct {
	// Instr names the instruction to simplify.
	Instr string `yaml:"instr"`

	// Result names the value the simplifier must return, or "none" to
	// assert that no simplification applies.
	Result string `yaml:"result"`
}

// ResultNone asserts the no-match outcome.
const ResultNone = "none"

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "expects:" vs "expect:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Blocks) == 0 {
		return fmt.Errorf("blocks list is required and must be non-empty")
	}
	if len(s.Expect) == 0 {
		return fmt.Errorf("expect list is required and must be non-empty")
	}
	for i, b := range s.Blocks {
		if b.Name == "" {
			return fmt.Errorf("block %d: name is required", i)
		}
		if b.Terminator == nil {
			return fmt.Errorf("block %q: terminator is required", b.Name)
		}
	}
	for i, e := range s.Expect {
		if e.Instr == "" {
			return fmt.Errorf("expect %d: instr is required", i)
		}
		if e.Result == "" {
			return fmt.Errorf("expect %d: result is required (use %q for no match)", i, ResultNone)
		}
	}
	return nil
}
