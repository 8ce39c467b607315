// Package pval provides an immutable, tagged polymorphic value type for
// passing typed data between concurrently executing components, plus a
// binary codec that round-trips any value (opaque-any excepted) through a
// self-describing byte encoding.
//
// Values are shared by reference. With two documented exceptions — Vector
// element slots and the writable element buffer of a UVector — every value
// is read-only after construction, so concurrent readers need no locking.
// Callers that mutate a shared vector must synchronize externally; the
// package never locks vector storage on their behalf.
//
// Symbols are interned: Intern returns the one canonical value per string
// content for the life of the process, so symbols compare with Eq. The
// dictionary is persistent: Add and Delete return new dictionaries and
// never touch their receiver.
package pval
