package contract

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ctmembers/internal/libcontract"
	"github.com/roach88/ctmembers/internal/testutil"
)

func TestReadStatus(t *testing.T) {
	src := newTestTree(t, testutil.ContractFixture{ID: 42, StatusFixture: withMembers(100, 205)})
	lib := testutil.NewFakeLibrary()

	h := openHandle(t, src, lib, 42)
	assert.Equal(t, ID(42), h.id)
	assert.False(t, h.released)
	assert.Equal(t, 1, lib.Live())

	require.NoError(t, h.Close())
	assert.True(t, h.released)
	assert.Nil(t, h.ref)
	assert.Equal(t, 0, lib.Live())
}

func TestReadStatus_NativeFailure(t *testing.T) {
	src := newTestTree(t, testutil.ContractFixture{ID: 8, StatusFixture: testutil.StatusFixture{ReadErrno: int(syscall.EIO)}})
	lib := testutil.NewFakeLibrary()

	f, err := src.Open(8)
	require.NoError(t, err)
	defer f.Close()

	h, err := ReadStatus(lib, 8, f, libcontract.DetailAll)
	require.Error(t, err)
	assert.Nil(t, h)
	assert.True(t, IsStatusReadError(err))
	assert.ErrorIs(t, err, syscall.EIO)
	assert.Equal(t, 0, lib.Created())
	assert.Equal(t, 0, lib.Frees)
}

func TestReadStatus_DescriptorClosedEarly(t *testing.T) {
	src := newTestTree(t, testutil.ContractFixture{ID: 42, StatusFixture: withMembers(100, 205)})
	lib := testutil.NewFakeLibrary()

	f, err := src.Open(42)
	require.NoError(t, err)
	h, err := ReadStatus(lib, 42, f, libcontract.DetailAll)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	m, err := h.Members()
	require.NoError(t, err)
	assert.Equal(t, []PID{100, 205}, m.PIDs())
	require.NoError(t, h.Close())
}

func TestHandleClose_FreesExactlyOnce(t *testing.T) {
	src := newTestTree(t, testutil.ContractFixture{ID: 42, StatusFixture: withMembers(1)})
	lib := testutil.NewFakeLibrary()
	h := openHandle(t, src, lib, 42)

	require.NoError(t, h.Close())
	require.NoError(t, h.Close())
	require.NoError(t, h.Close())

	assert.Equal(t, 1, lib.Frees, lib.String())
	assert.Equal(t, 0, lib.DoubleFrees, lib.String())
}

func TestHandle_UseAfterCloseRefused(t *testing.T) {
	src := newTestTree(t, testutil.ContractFixture{ID: 42, StatusFixture: withMembers(1)})
	lib := testutil.NewFakeLibrary()
	h := openHandle(t, src, lib, 42)
	require.NoError(t, h.Close())

	_, err := h.Members()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHandleReleased)
	assert.Equal(t, 0, lib.MemberCalls)
	assert.Equal(t, 0, lib.UseAfterFree)
}
