package contract

import (
	"fmt"
	"os"

	"github.com/roach88/ctmembers/internal/libcontract"
)

// Handle is a parsed contract status snapshot.
//
// A Handle only exists after a successful ct_status_read. Close frees the
// native snapshot exactly once; after that every method returns
// ErrHandleReleased without reaching the native library.
type Handle struct {
	lib      libcontract.Library
	ref      libcontract.Ref
	id       ID
	released bool
}

// ReadStatus parses the status file open on f. The file is not closed and
// may be closed as soon as ReadStatus returns.
func ReadStatus(lib libcontract.Library, id ID, f *os.File, detail libcontract.Detail) (*Handle, error) {
	ref, err := lib.StatusRead(f, detail)
	if err != nil {
		return nil, &Error{
			Code:       ErrCodeStatusRead,
			Message:    "failed to read contract status",
			ContractID: id,
			Err:        err,
		}
	}
	if ref == nil {
		return nil, &Error{
			Code:       ErrCodeStatusRead,
			Message:    "status read returned no handle",
			ContractID: id,
		}
	}
	return &Handle{lib: lib, ref: ref, id: id}, nil
}

// Close frees the native status snapshot. Calling Close more than once is
// a no-op.
func (h *Handle) Close() error {
	if h.released {
		return nil
	}
	h.released = true
	h.lib.StatusFree(h.ref)
	h.ref = nil
	return nil
}

func (h *Handle) live() error {
	if h.released {
		return fmt.Errorf("contract %s: %w", h.id, ErrHandleReleased)
	}
	return nil
}
