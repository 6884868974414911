package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/ctmembers/internal/testutil"
)

// counters maps native_count counter names to FakeLibrary readings.
var counters = map[string]func(*testutil.FakeLibrary) int{
	"reads":          func(l *testutil.FakeLibrary) int { return l.Reads },
	"member_calls":   func(l *testutil.FakeLibrary) int { return l.MemberCalls },
	"frees":          func(l *testutil.FakeLibrary) int { return l.Frees },
	"double_frees":   func(l *testutil.FakeLibrary) int { return l.DoubleFrees },
	"use_after_free": func(l *testutil.FakeLibrary) int { return l.UseAfterFree },
	"created":        func(l *testutil.FakeLibrary) int { return l.Created() },
	"live":           func(l *testutil.FakeLibrary) int { return l.Live() },
	"calls":          func(l *testutil.FakeLibrary) int { return l.Calls() },
}

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
	Stderr   string // Diagnostic output for context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)
	if e.Stderr != "" {
		fmt.Fprintf(&buf, "\nStderr:\n%s", e.Stderr)
	}
	return buf.String()
}

// Check evaluates the scenario's exit code and assertions against result.
// It returns every failure, not just the first.
func Check(scenario *Scenario, result *Result) []error {
	var errs []error

	if result.ExitCode != scenario.Expect.ExitCode {
		errs = append(errs, &AssertionError{
			Type:     "exit_code",
			Expected: fmt.Sprintf("%d", scenario.Expect.ExitCode),
			Actual:   fmt.Sprintf("%d", result.ExitCode),
			Stderr:   result.Stderr,
		})
	}

	for _, a := range scenario.Assertions {
		if err := checkAssertion(a, result); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func checkAssertion(a Assertion, result *Result) error {
	fail := func(expected, actual string) error {
		return &AssertionError{Type: a.Type, Expected: expected, Actual: actual, Stderr: result.Stderr}
	}

	switch a.Type {
	case AssertStdoutContains:
		if !strings.Contains(result.Stdout, a.Text) {
			return fail(fmt.Sprintf("stdout containing %q", a.Text), fmt.Sprintf("%q", result.Stdout))
		}
	case AssertStderrContains:
		if !strings.Contains(result.Stderr, a.Text) {
			return fail(fmt.Sprintf("stderr containing %q", a.Text), fmt.Sprintf("%q", result.Stderr))
		}
	case AssertStdoutEmpty:
		if result.Stdout != "" {
			return fail("empty stdout", fmt.Sprintf("%q", result.Stdout))
		}
	case AssertStderrEmpty:
		if result.Stderr != "" {
			return fail("empty stderr", fmt.Sprintf("%q", result.Stderr))
		}
	case AssertNativeCount:
		read, ok := counters[a.Counter]
		if !ok {
			return fail("known counter", a.Counter)
		}
		if got := read(result.Lib); got != a.Count {
			return fail(fmt.Sprintf("%s == %d", a.Counter, a.Count), fmt.Sprintf("%d (%s)", got, result.Lib))
		}
	default:
		return fail("known assertion type", a.Type)
	}
	return nil
}
