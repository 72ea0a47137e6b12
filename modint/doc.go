// Package modint implements Montgomery-form modular integers over the
// fixed-width values in package bigint.
//
// A modulus is a type, not a value: Elem256[M] and Elem384[M] are generic
// over a zero-sized marker type M that names one of the four moduli this
// validator ever computes under (the P-256 and P-384 coordinate fields and
// scalar fields). The Go compiler monomorphizes one copy of the arithmetic
// per (width, modulus) instantiation, so there is never a modulus pointer
// or interface dispatch on the multiplication hot path, and a coordinate-
// field element and a scalar-field element are different types that cannot
// be mixed by accident.
//
// The only hand-transcribed constants here are the primes and group orders
// themselves (public, standardized values from FIPS 186-4 / SEC 2). Every
// Montgomery bookkeeping constant an implementation would otherwise have to
// hardcode — R mod P, R² mod P, and the negated inverse of the low limb mod
// 2⁶⁴ — is derived on first use of each modulus (and then cached) by the
// routines in montgomery.go, so there is no hand-computed magic constant that could be
// silently transcribed wrong.
package modint
