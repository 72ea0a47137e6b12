// Package ec implements short-Weierstrass elliptic-curve point arithmetic
// in Jacobian coordinates over the P-256 and P-384 coordinate fields from
// package modint, plus the simultaneous double-and-add scalar
// multiplication ECDSA verification needs.
//
// Point256 and Point384 are generic over the coordinate field marker type
// so a P-256 point and a P-384 point are different types; there is no
// interface-dispatched "generic curve" value on the arithmetic hot path.
// Points never carry an explicit affine inverse: doubling and addition use
// the standard Jacobian dbl-2001-b / add-2007-bl formulas, and ECDSA
// verification compares the R coordinate without ever computing a field
// inversion for it, following the same optimization used independently by
// both the Rust reference implementation this project was modeled on and
// Decred's secp256k1 package.
package ec
