// Package dnssec validates DNSSEC proofs: a flat, unordered list of RRs and
// RRSIGs forming a chain of trust rooted at the root zone's published KSK.
// It groups RRs into RRsets, canonicalizes them per RFC 4034 §6, and runs a
// fixed-point loop discharging RRSIGs as their signer's DNSKEYs become
// trusted, until every claimed target RRset is authenticated or no further
// progress is possible.
//
// The validator is a pure function of its input: no I/O, no shared mutable
// state, safe to call concurrently from many goroutines on independent
// inputs.
package dnssec
