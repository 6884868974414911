package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden runs a scenario, checks its expectations and, when
// Expect.StdoutGolden is set, compares stdout with
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) *Result {
	t.Helper()

	result := Run(t, scenario)
	for _, err := range Check(scenario, result) {
		t.Error(err)
	}

	if scenario.Expect.StdoutGolden {
		g := goldie.New(t,
			goldie.WithFixtureDir("testdata/golden"),
			goldie.WithNameSuffix(".golden"),
		)
		g.Assert(t, scenario.Name, []byte(result.Stdout))
	}
	return result
}
