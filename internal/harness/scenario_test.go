package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario_Valid(t *testing.T) {
	path := writeScenario(t, `
name: ok
description: "two members"
args: ["42"]
contracts:
  - id: 42
    members: [100, 205]
    members_errno: 22
expect:
  exit_code: 1
assertions:
  - type: native_count
    counter: frees
    count: 1
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "ok", s.Name)
	assert.Equal(t, []string{"42"}, s.Args)
	require.Len(t, s.Contracts, 1)
	assert.Equal(t, int32(42), s.Contracts[0].ID)
	assert.Equal(t, []int32{100, 205}, s.Contracts[0].Members)
	assert.Equal(t, 22, s.Contracts[0].MembersErrno)
	assert.Equal(t, 1, s.Expect.ExitCode)
}

func TestLoadScenario_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown field", "name: a\ndescription: b\nassertion: []\n", "failed to parse YAML"},
		{"missing name", "description: b\n", "name is required"},
		{"missing description", "name: a\n", "description is required"},
		{"bad id", "name: a\ndescription: b\ncontracts:\n  - id: 0\n", "id must be positive"},
		{"duplicate id", "name: a\ndescription: b\ncontracts:\n  - id: 1\n  - id: 1\n", "duplicate id 1"},
		{"unknown assertion", "name: a\ndescription: b\nassertions:\n  - type: weird\n", "unknown assertion type"},
		{"contains without text", "name: a\ndescription: b\nassertions:\n  - type: stdout_contains\n", "text is required"},
		{"unknown counter", "name: a\ndescription: b\nassertions:\n  - type: native_count\n    counter: leaks\n", "unknown counter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}
