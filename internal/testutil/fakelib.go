package testutil

import (
	"fmt"
	"io"
	"os"
	"syscall"
	"unsafe"

	"gopkg.in/yaml.v3"

	"github.com/roach88/ctmembers/internal/libcontract"
)

// maxStatusSize bounds how much of a fixture file FakeLibrary reads.
const maxStatusSize = 1 << 20

// StatusFixture is the content of a fake ctfs status file.
type StatusFixture struct {
	// Members are the pids returned by the member query.
	Members []int32 `yaml:"members"`

	// ReadErrno, if nonzero, makes the status read fail with this errno.
	ReadErrno int `yaml:"read_errno,omitempty"`

	// MembersErrno, if nonzero, makes the member query fail with this errno.
	MembersErrno int `yaml:"members_errno,omitempty"`

	// NilArray makes the member query report len(Members) with no array.
	NilArray bool `yaml:"nil_array,omitempty"`
}

type fakeStatus struct {
	fixture StatusFixture
	pids    []int32
	freed   bool
}

// FakeLibrary implements libcontract.Library over YAML status fixtures.
//
// StatusRead decodes the fixture through the descriptor it is given, so a
// fake status file must be opened the same way a real one is. Every call
// is counted for assertions on handle lifetime.
type FakeLibrary struct {
	Reads        int // successful and failed StatusRead calls
	MemberCalls  int // StatusMembers calls that reached a live handle
	Frees        int // StatusFree calls on live handles
	DoubleFrees  int // StatusFree calls on already freed handles
	UseAfterFree int // StatusMembers calls on freed or unknown handles

	handles map[libcontract.Ref]*fakeStatus
}

var _ libcontract.Library = (*FakeLibrary)(nil)

// NewFakeLibrary creates an empty FakeLibrary.
func NewFakeLibrary() *FakeLibrary {
	return &FakeLibrary{handles: make(map[libcontract.Ref]*fakeStatus)}
}

// Created returns how many handles StatusRead has handed out.
func (l *FakeLibrary) Created() int {
	return len(l.handles)
}

// Live returns how many handles have been created but not freed.
func (l *FakeLibrary) Live() int {
	n := 0
	for _, st := range l.handles {
		if !st.freed {
			n++
		}
	}
	return n
}

// Calls returns the total number of native calls made.
func (l *FakeLibrary) Calls() int {
	return l.Reads + l.MemberCalls + l.UseAfterFree + l.Frees + l.DoubleFrees
}

func (l *FakeLibrary) StatusRead(f *os.File, detail libcontract.Detail) (libcontract.Ref, error) {
	l.Reads++
	if detail != libcontract.DetailAll {
		return nil, syscall.EINVAL
	}
	data, err := io.ReadAll(io.NewSectionReader(f, 0, maxStatusSize))
	if err != nil {
		return nil, syscall.EIO
	}
	var fx StatusFixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, syscall.EINVAL
	}
	if fx.ReadErrno != 0 {
		return nil, syscall.Errno(fx.ReadErrno)
	}
	st := &fakeStatus{fixture: fx, pids: append([]int32(nil), fx.Members...)}
	ref := libcontract.Ref(unsafe.Pointer(st))
	l.handles[ref] = st
	return ref, nil
}

func (l *FakeLibrary) StatusMembers(ref libcontract.Ref) (*int32, uint32, error) {
	st, ok := l.handles[ref]
	if !ok || st.freed {
		l.UseAfterFree++
		return nil, 0, syscall.EINVAL
	}
	l.MemberCalls++
	if st.fixture.MembersErrno != 0 {
		return nil, 0, syscall.Errno(st.fixture.MembersErrno)
	}
	if st.fixture.NilArray || len(st.pids) == 0 {
		return nil, uint32(len(st.pids)), nil
	}
	return &st.pids[0], uint32(len(st.pids)), nil
}

func (l *FakeLibrary) StatusFree(ref libcontract.Ref) {
	st, ok := l.handles[ref]
	if !ok || st.freed {
		l.DoubleFrees++
		return
	}
	st.freed = true
	l.Frees++
}

// String summarizes the call counters for test failure messages.
func (l *FakeLibrary) String() string {
	return fmt.Sprintf("reads=%d members=%d frees=%d double_frees=%d use_after_free=%d live=%d",
		l.Reads, l.MemberCalls, l.Frees, l.DoubleFrees, l.UseAfterFree, l.Live())
}
