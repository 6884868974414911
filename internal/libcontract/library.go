package libcontract

import (
	"os"
	"unsafe"
)

// Detail selects how much status information ct_status_read collects.
type Detail int

// Values match CTD_COMMON, CTD_FIXED and CTD_ALL in <sys/contract.h>.
const (
	DetailCommon Detail = 0
	DetailFixed  Detail = 1
	DetailAll    Detail = 2
)

func (d Detail) String() string {
	switch d {
	case DetailCommon:
		return "common"
	case DetailFixed:
		return "fixed"
	case DetailAll:
		return "all"
	default:
		return "unknown"
	}
}

// Ref is an opaque ct_stathdl_t. Only the Library that produced it may
// interpret it.
type Ref unsafe.Pointer

// Library is the native contract status API.
//
// Errors returned by a Library are syscall.Errno values carrying the
// nonzero return code of the native call.
type Library interface {
	// StatusRead parses the status file open on f into a new status handle.
	StatusRead(f *os.File, detail Detail) (Ref, error)

	// StatusMembers returns the member pid array of a process contract
	// status handle. The array is owned by the handle and is only valid
	// until StatusFree is called on it.
	StatusMembers(ref Ref) (pids *int32, count uint32, err error)

	// StatusFree releases a handle returned by StatusRead.
	StatusFree(ref Ref)
}
