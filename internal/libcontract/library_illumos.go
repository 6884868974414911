//go:build (illumos || solaris) && cgo

package libcontract

/*
#cgo LDFLAGS: -lcontract
#include <sys/types.h>
#include <sys/contract.h>
#include <libcontract.h>
*/
import "C"

import (
	"os"
	"runtime"
	"syscall"
	"unsafe"
)

type system struct{}

// System returns the libcontract binding for this host.
func System() Library {
	return system{}
}

func (system) StatusRead(f *os.File, detail Detail) (Ref, error) {
	var hdl C.ct_stathdl_t
	rc := C.ct_status_read(C.int(f.Fd()), C.int(detail), &hdl)
	runtime.KeepAlive(f)
	if rc != 0 {
		return nil, syscall.Errno(rc)
	}
	return Ref(hdl), nil
}

func (system) StatusMembers(ref Ref) (*int32, uint32, error) {
	var (
		pids *C.pid_t
		n    C.uint_t
	)
	if rc := C.ct_pr_status_get_members(C.ct_stathdl_t(ref), &pids, &n); rc != 0 {
		return nil, 0, syscall.Errno(rc)
	}
	return (*int32)(unsafe.Pointer(pids)), uint32(n), nil
}

func (system) StatusFree(ref Ref) {
	C.ct_status_free(C.ct_stathdl_t(ref))
}
