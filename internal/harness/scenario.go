package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/roach88/ctmembers/internal/testutil"
)

// Scenario defines one end-to-end run of the CLI.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Args are the command-line arguments, without the program name.
	Args []string `yaml:"args"`

	// Kind is the ctfs directory fixtures are written under. Defaults to "all".
	Kind string `yaml:"kind,omitempty"`

	// Contracts are the status files present in the fake ctfs.
	Contracts []testutil.ContractFixture `yaml:"contracts,omitempty"`

	// Env sets extra environment variables for the run.
	Env map[string]string `yaml:"env,omitempty"`

	// InvocationID is the fixed invocation id. Defaults to
	// DefaultInvocationID so golden output is stable.
	InvocationID string `yaml:"invocation_id,omitempty"`

	// Expect is the expected process outcome.
	Expect Expect `yaml:"expect"`

	// Assertions are additional checks on the run.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Expect describes the process outcome.
type Expect struct {
	// ExitCode is the expected exit code.
	ExitCode int `yaml:"exit_code"`

	// StdoutGolden compares stdout with testdata/golden/<name>.golden.
	StdoutGolden bool `yaml:"stdout_golden,omitempty"`
}

// Assertion validates one aspect of a run.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Text is the substring for *_contains assertions.
	Text string `yaml:"text,omitempty"`

	// Counter names the FakeLibrary counter for native_count.
	Counter string `yaml:"counter,omitempty"`

	// Count is the expected counter value for native_count.
	Count int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertStdoutContains = "stdout_contains"
	AssertStderrContains = "stderr_contains"
	AssertStdoutEmpty    = "stdout_empty"
	AssertStderrEmpty    = "stderr_empty"
	AssertNativeCount    = "native_count"
)

// DefaultInvocationID is used when a scenario does not set one.
const DefaultInvocationID = "00000000-0000-0000-0000-000000000001"

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Parse YAML with strict field validation (catches typos like "assertion:" vs "assertions:")
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

// LoadScenarios loads every *.yaml file in dir, sorted by file name.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(p), err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Expect.ExitCode < 0 {
		return fmt.Errorf("expect.exit_code must be non-negative")
	}

	seen := make(map[int32]bool)
	for i, c := range s.Contracts {
		if c.ID <= 0 {
			return fmt.Errorf("contracts[%d]: id must be positive", i)
		}
		if seen[c.ID] {
			return fmt.Errorf("contracts[%d]: duplicate id %d", i, c.ID)
		}
		seen[c.ID] = true
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(i, &a); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	switch a.Type {
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	case AssertStdoutContains, AssertStderrContains:
		if a.Text == "" {
			return fmt.Errorf("assertions[%d]: text is required for %s", index, a.Type)
		}
	case AssertStdoutEmpty, AssertStderrEmpty:
	case AssertNativeCount:
		if _, ok := counters[a.Counter]; !ok {
			return fmt.Errorf("assertions[%d]: unknown counter %q", index, a.Counter)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
