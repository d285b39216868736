package harness

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden executes a scenario and compares its rendered snapshot
// against a golden file stored in testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// The snapshot contains the printed function followed by the observed
// simplification outcome for every expectation, so the golden file pins
// both the builder output and the simplifier's answers.
func RunWithGolden(t *testing.T, h *Harness, scenario *Scenario) error {
	t.Helper()

	result, err := h.Run(scenario)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, []byte(renderSnapshot(result)))

	for _, err := range result.Errors {
		t.Error(err)
	}
	return nil
}

// renderSnapshot produces the deterministic text compared against the
// golden file.
func renderSnapshot(result *Result) string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "scenario: %s\n\n", result.Name)
	buf.WriteString(result.Program.Fn.String())
	buf.WriteString("\nsimplify:\n")
	for _, c := range result.Checks {
		fmt.Fprintf(&buf, "  %s -> %s\n", c.Instr, c.Got)
	}
	return buf.String()
}
