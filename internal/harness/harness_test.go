package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ctmembers/internal/testutil"
)

func TestScenarios(t *testing.T) {
	scenarios, err := LoadScenarios("testdata/scenarios")
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			RunWithGolden(t, s)
		})
	}
}

func TestRun_CapturesOutputAndCounters(t *testing.T) {
	s := &Scenario{
		Name:        "inline",
		Description: "inline scenario",
		Args:        []string{"--format", "yaml", "11"},
		Contracts: []testutil.ContractFixture{
			{ID: 11, StatusFixture: testutil.StatusFixture{Members: []int32{3, 1, 2}}},
		},
	}

	result := Run(t, s)

	assert.Equal(t, 0, result.ExitCode, result.Stderr)
	assert.Contains(t, result.Stdout, "contract_id: \"11\"")
	assert.Contains(t, result.Stdout, "trace_id: "+DefaultInvocationID)
	assert.Equal(t, 1, result.Lib.Frees)
}

func TestCheck_ReportsEveryFailure(t *testing.T) {
	s := &Scenario{
		Expect: Expect{ExitCode: 0},
		Assertions: []Assertion{
			{Type: AssertStdoutEmpty},
			{Type: AssertStderrContains, Text: "nope"},
			{Type: AssertNativeCount, Counter: "frees", Count: 1},
		},
	}
	result := &Result{ExitCode: 1, Stdout: "x", Stderr: "boom", Lib: testutil.NewFakeLibrary()}

	errs := Check(s, result)
	require.Len(t, errs, 4)

	var ae *AssertionError
	require.ErrorAs(t, errs[0], &ae)
	assert.Equal(t, "exit_code", ae.Type)
	assert.Contains(t, errs[0].Error(), "Expected: 0")
	assert.Contains(t, errs[0].Error(), "Stderr:\nboom")
}
