package harness

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/lunarlang/lunar/ir"
	"github.com/lunarlang/lunar/simplify"
)

// Harness evaluates scenarios. The zero value is not usable; construct
// with New.
type Harness struct {
	logger *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger sets the logger used for per-expectation debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Harness) { h.logger = logger }
}

// New creates a harness. By default logging is discarded; pass WithLogger
// to observe expectation evaluation.
func New(opts ...Option) *Harness {
	h := &Harness{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Check records the observed outcome of one expectation.
type Check struct {
	// Instr is the name of the simplified instruction.
	Instr string

	// Got is the name of the returned value, or ResultNone.
	Got string
}

// Result holds everything a scenario run observed.
type Result struct {
	// Name is the scenario name.
	Name string

	// Pass is true when every expectation held.
	Pass bool

	// Checks records the observed outcome per expectation, in order.
	Checks []Check

	// Errors holds one AssertionError per failed expectation.
	Errors []error

	// Program is the materialized function, kept for rendering.
	Program *Program
}

// Run builds the scenario's function and evaluates every expectation.
// A failed expectation is recorded in Result.Errors, not returned as an
// error; the returned error covers scenario construction only.
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	prog, err := Build(scenario)
	if err != nil {
		return nil, fmt.Errorf("build scenario %q: %w", scenario.Name, err)
	}

	result := &Result{Name: scenario.Name, Pass: true, Program: prog}
	for _, e := range scenario.Expect {
		in, ok := prog.Instrs[e.Instr]
		if !ok {
			return nil, fmt.Errorf("scenario %q: expect references unknown instruction %q", scenario.Name, e.Instr)
		}

		got := simplify.Instruction(prog.Ctx, in)
		check := Check{Instr: e.Instr, Got: ResultNone}
		if got != nil {
			check.Got = valueLabel(prog, got)
		}
		result.Checks = append(result.Checks, check)

		h.logger.Debug("expectation evaluated",
			"scenario", scenario.Name,
			"instr", e.Instr,
			"want", e.Result,
			"got", check.Got,
		)

		if err := checkExpectation(prog, e, got); err != nil {
			result.Pass = false
			result.Errors = append(result.Errors, err)
		}
	}
	return result, nil
}

// checkExpectation compares the simplifier's answer against the
// expectation. Comparison is value identity, never structural.
func checkExpectation(prog *Program, e Expectation, got ir.Value) error {
	if e.Result == ResultNone {
		if got == nil {
			return nil
		}
		return &AssertionError{
			Instr:    e.Instr,
			Expected: ResultNone,
			Actual:   valueLabel(prog, got),
			Function: prog.Fn.String(),
		}
	}

	want, ok := prog.Values[e.Result]
	if !ok {
		return fmt.Errorf("expect for %q references unknown value %q", e.Instr, e.Result)
	}
	if got == want {
		return nil
	}

	actual := ResultNone
	if got != nil {
		actual = valueLabel(prog, got)
	}
	return &AssertionError{
		Instr:    e.Instr,
		Expected: e.Result,
		Actual:   actual,
		Function: prog.Fn.String(),
	}
}

// valueLabel names a value for reporting: the scenario-given name when
// the value is bound, otherwise its printed IR name.
func valueLabel(prog *Program, v ir.Value) string {
	for name, bound := range prog.Values {
		if bound == v {
			return name
		}
	}
	return v.Name()
}
