package harness

import (
	"fmt"
	"strings"
)

// AssertionError is returned when an expectation fails. It includes the
// printed function so a failure is debuggable from the message alone.
type AssertionError struct {
	Instr    string // instruction that was simplified
	Expected string // expected value name, or "none"
	Actual   string // observed value name, or "none"
	Function string // printed function text for context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: simplify(%s)\n", e.Instr)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)
	buf.WriteString("\nFunction:\n")
	buf.WriteString(e.Function)
	return buf.String()
}
