package contract

import (
	"fmt"
	"strings"
	"unsafe"
)

// PID is a process id.
type PID int32

// MemberList is the fixed set of member pids read from one status
// snapshot. The zero value is an empty list.
type MemberList struct {
	pids []PID
}

// Members returns the contract's member pids.
//
// The native array belongs to the snapshot, so it is copied into Go memory
// here, once, using the count reported by the library. The returned list
// stays valid after the Handle is closed.
func (h *Handle) Members() (MemberList, error) {
	if err := h.live(); err != nil {
		return MemberList{}, err
	}
	ptr, count, err := h.lib.StatusMembers(h.ref)
	if err != nil {
		return MemberList{}, &Error{
			Code:       ErrCodeMembersQuery,
			Message:    "failed to get contract members",
			ContractID: h.id,
			Err:        err,
		}
	}
	if count == 0 {
		return MemberList{pids: []PID{}}, nil
	}
	if ptr == nil {
		return MemberList{}, &Error{
			Code:       ErrCodeMembersQuery,
			Message:    fmt.Sprintf("member query reported %d pids but no array", count),
			ContractID: h.id,
		}
	}
	view := unsafe.Slice(ptr, count)
	pids := make([]PID, len(view))
	for i, p := range view {
		pids[i] = PID(p)
	}
	return MemberList{pids: pids}, nil
}

// NewMemberList builds a MemberList from pids. The slice is copied.
func NewMemberList(pids ...PID) MemberList {
	out := make([]PID, len(pids))
	copy(out, pids)
	return MemberList{pids: out}
}

// Len returns the number of members.
func (m MemberList) Len() int {
	return len(m.pids)
}

// PIDs returns a copy of the member pids in native order.
func (m MemberList) PIDs() []PID {
	out := make([]PID, len(m.pids))
	copy(out, m.pids)
	return out
}

// String renders the list as "[100, 205]".
func (m MemberList) String() string {
	parts := make([]string, len(m.pids))
	for i, p := range m.pids {
		parts[i] = fmt.Sprintf("%d", p)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
