package contract

import (
	"errors"
	"fmt"
)

// Error is returned by every step of the member pipeline.
//
// Codes:
//   - USAGE: missing or malformed contract id
//   - IO: the status file could not be opened
//   - STATUS_READ: ct_status_read returned nonzero
//   - MEMBERS_QUERY: ct_pr_status_get_members returned nonzero
//
// Err holds the cause (an *fs.PathError or a syscall.Errno) and is reachable
// through errors.Is / errors.As.
type Error struct {
	// Code identifies the failing step.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// ContractID is the contract being inspected, zero if not yet known.
	ContractID ID

	// Err is the underlying cause, if any.
	Err error
}

// ErrorCode categorizes pipeline errors.
type ErrorCode string

const (
	// ErrCodeUsage indicates a missing or invalid contract id argument.
	ErrCodeUsage ErrorCode = "USAGE"

	// ErrCodeIO indicates the status resource could not be opened.
	ErrCodeIO ErrorCode = "IO"

	// ErrCodeStatusRead indicates the native status read failed.
	ErrCodeStatusRead ErrorCode = "STATUS_READ"

	// ErrCodeMembersQuery indicates the native member query failed.
	ErrCodeMembersQuery ErrorCode = "MEMBERS_QUERY"
)

// ErrHandleReleased is returned when a Handle is used after Close.
var ErrHandleReleased = errors.New("contract status handle already released")

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Describe())
}

// Describe returns the error text without the code prefix.
func (e *Error) Describe() string {
	msg := e.Message
	if e.ContractID != 0 {
		msg = fmt.Sprintf("%s (contract=%s)", msg, e.ContractID)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CodeOf returns the ErrorCode carried by err, or "" if err is not an *Error.
func CodeOf(err error) ErrorCode {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// IsUsageError returns true if err is a usage error.
func IsUsageError(err error) bool {
	return CodeOf(err) == ErrCodeUsage
}

// IsIOError returns true if err is a status open failure.
func IsIOError(err error) bool {
	return CodeOf(err) == ErrCodeIO
}

// IsStatusReadError returns true if err is a native status read failure.
func IsStatusReadError(err error) bool {
	return CodeOf(err) == ErrCodeStatusRead
}

// IsMembersQueryError returns true if err is a native member query failure.
func IsMembersQueryError(err error) bool {
	return CodeOf(err) == ErrCodeMembersQuery
}
