package harness

import (
	"bytes"
	"testing"

	"github.com/roach88/ctmembers/internal/cli"
	"github.com/roach88/ctmembers/internal/config"
	"github.com/roach88/ctmembers/internal/contract"
	"github.com/roach88/ctmembers/internal/testutil"
)

// Result captures one scenario run.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Lib      *testutil.FakeLibrary
}

// Run executes a scenario against a fresh fake ctfs and native library.
//
// The environment is reset through t.Setenv, so Run must not be used from
// parallel tests.
func Run(t testing.TB, scenario *Scenario) *Result {
	t.Helper()

	kind := scenario.Kind
	if kind == "" {
		kind = contract.DefaultKind
	}
	root := t.TempDir()
	testutil.WriteStatusTree(t, root, kind, scenario.Contracts...)

	t.Setenv(config.EnvRoot, root)
	t.Setenv(config.EnvKind, kind)
	t.Setenv(config.EnvFormat, "")
	t.Setenv(config.EnvLogLevel, "")
	for k, v := range scenario.Env {
		t.Setenv(k, v)
	}

	invocationID := scenario.InvocationID
	if invocationID == "" {
		invocationID = DefaultInvocationID
	}

	lib := testutil.NewFakeLibrary()
	opts := &cli.RootOptions{
		Library:     lib,
		IDGenerator: testutil.NewFixedIDGenerator(invocationID),
	}
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	code := cli.Main(opts, scenario.Args, stdout, stderr)

	return &Result{
		ExitCode: code,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Lib:      lib,
	}
}
