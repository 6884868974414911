package contract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/ctmembers/internal/libcontract"
	"github.com/roach88/ctmembers/internal/testutil"
)

// newTestTree writes a fake ctfs under a temp dir and returns a source for it.
func newTestTree(t *testing.T, contracts ...testutil.ContractFixture) *StatusSource {
	t.Helper()
	root := t.TempDir()
	testutil.WriteStatusTree(t, root, DefaultKind, contracts...)
	return NewStatusSource(root, DefaultKind)
}

// openHandle reads the status of id through lib, closing the descriptor.
func openHandle(t *testing.T, src *StatusSource, lib *testutil.FakeLibrary, id ID) *Handle {
	t.Helper()
	f, err := src.Open(id)
	require.NoError(t, err)
	defer f.Close()
	h, err := ReadStatus(lib, id, f, libcontract.DetailAll)
	require.NoError(t, err)
	return h
}

func withMembers(pids ...int32) testutil.StatusFixture {
	return testutil.StatusFixture{Members: pids}
}
