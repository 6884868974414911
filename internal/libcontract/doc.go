// Package libcontract exposes the three libcontract(3LIB) entry points the
// member pipeline needs: ct_status_read, ct_pr_status_get_members and
// ct_status_free.
//
// On illumos and Solaris with cgo enabled, System returns a binding to the
// real library. Everywhere else System returns a Library whose calls fail
// with ENOTSUP, so the rest of the module still builds and tests run
// against a fake.
//
// The interface stays close to the C contract on purpose: a status read
// yields an opaque Ref, the member query yields a raw (pointer, count) pair,
// and nothing here tracks ownership. Lifetime rules are enforced one layer
// up, in package contract.
package libcontract
