// Package archive provides the immutable historical snapshots created when an
// order is terminated. An ArchivedOrder and its ArchivedItems copy every field
// needed to answer historical queries without depending on the live records,
// and add the archival metadata: original order id, actor, timestamp, reason.
//
// Archive records are append-only; they are written once, in the same
// transaction that marks the live order cancelled, and never mutated.
package archive
