package contract

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ctmembers/internal/testutil"
)

func TestNewStatusSourceDefaults(t *testing.T) {
	src := NewStatusSource("", "")
	assert.Equal(t, "/system/contract/all/42/status", src.Path(42))

	src = NewStatusSource("/tmp/ctfs", "process")
	assert.Equal(t, "/tmp/ctfs/process/7/status", src.Path(7))
}

func TestStatusSourceOpen(t *testing.T) {
	src := newTestTree(t, testutil.ContractFixture{ID: 42, StatusFixture: withMembers(100)})

	f, err := src.Open(42)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, src.Path(42), f.Name())
}

func TestStatusSourceOpen_NotFound(t *testing.T) {
	src := newTestTree(t)

	f, err := src.Open(999)
	require.Error(t, err)
	assert.Nil(t, f)
	assert.True(t, IsIOError(err))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "failed to open contract status file: not found")
	assert.Contains(t, err.Error(), "contract=999")
}

func TestStatusSourceOpen_PermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses file permissions")
	}
	src := newTestTree(t, testutil.ContractFixture{ID: 5, StatusFixture: withMembers(1)})
	require.NoError(t, os.Chmod(src.Path(5), 0))

	_, err := src.Open(5)
	require.Error(t, err)
	assert.True(t, IsIOError(err))
	assert.True(t, errors.Is(err, fs.ErrPermission))
	assert.Contains(t, err.Error(), "permission denied")
}

func TestOpenReason(t *testing.T) {
	assert.Equal(t, "not found", openReason(fs.ErrNotExist))
	assert.Equal(t, "permission denied", openReason(fs.ErrPermission))
	assert.Equal(t, "i/o error", openReason(&fs.PathError{Op: "open", Path: filepath.Join("x", "status"), Err: errors.New("boom")}))
}
