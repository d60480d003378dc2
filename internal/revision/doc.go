// Package revision resolves the last-modified and creation dates of files
// tracked in a git repository.
//
// A Resolver is bound to one repository for its lifetime and is reused
// sequentially for every file of a documentation tree. When no repository
// can be located and fallback_to_build_date is enabled, the Resolver runs in
// fallback-only mode and answers every query with the current time.
//
// A Resolver holds no mutable state once New returns, so concurrent queries
// are safe. Each query runs one git process.
package revision
