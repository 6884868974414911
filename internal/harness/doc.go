// Package harness runs ctmembers end to end against YAML scenarios.
//
// Each scenario lays out a fake ctfs, runs the CLI against the fake native
// library from package testutil, and checks exit code, output and handle
// lifetime counters.
//
// # Scenario Format
//
//	name: contract_42_members
//	description: "Contract 42 reports both members"
//	args: ["42"]
//	contracts:
//	  - id: 42
//	    members: [100, 205]
//	expect:
//	  exit_code: 0
//	  stdout_golden: true
//	assertions:
//	  - type: stderr_empty
//	  - type: native_count
//	    counter: frees
//	    count: 1
//
// # Assertion Types
//
//   - stdout_contains / stderr_contains: output contains Text
//   - stdout_empty / stderr_empty: nothing was written
//   - native_count: a FakeLibrary counter (reads, member_calls, frees,
//     double_frees, use_after_free, created, live) equals Count
//
// With stdout_golden set, stdout is compared against
// testdata/golden/<name>.golden. Regenerate with:
//
//	go test ./internal/harness -update
package harness
