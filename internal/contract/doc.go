// Package contract reads the membership of a process contract from the
// contract filesystem.
//
// The pipeline is strictly linear:
//
//	ID -> status descriptor -> status Handle -> MemberList -> release
//
// StatusSource opens <root>/<kind>/<id>/status. ReadStatus hands the open
// descriptor to ct_status_read and returns either a live *Handle or an
// error; there is no half-built handle. The descriptor is closed as soon as
// the read has been attempted. Handle.Members copies the pid array out of
// native memory once, and Handle.Close frees the native snapshot exactly
// once. A released Handle refuses all further use.
//
// Inspector ties the steps together and reports stage transitions:
//
//	Start -> DescriptorOpen -> HandleParsed -> MembersFetched -> HandleFreed -> Done
//
// Any failing step jumps straight to Failed. A handle that was already
// parsed is still freed on that path, without a HandleFreed transition.
// No step is retried.
package contract
