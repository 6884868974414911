//go:build !((illumos || solaris) && cgo)

package libcontract

import (
	"os"
	"syscall"
)

type unsupported struct{}

// System returns the libcontract binding for this host. This build has no
// contract subsystem, so every call fails with ENOTSUP.
func System() Library {
	return unsupported{}
}

func (unsupported) StatusRead(*os.File, Detail) (Ref, error) {
	return nil, syscall.ENOTSUP
}

func (unsupported) StatusMembers(Ref) (*int32, uint32, error) {
	return nil, 0, syscall.ENOTSUP
}

func (unsupported) StatusFree(Ref) {}
