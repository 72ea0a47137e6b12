// Package ecdsa verifies ECDSA signatures over the NIST P-256 and P-384
// curves for DNSSEC algorithms 13 (ECDSAP256SHA256) and 14
// (ECDSAP384SHA384).
//
// Verification follows the classic ten-step procedure but compares the R
// coordinate without ever inverting the resulting point's Z coordinate: it
// checks R*Z^2 == X (mod p), and only if that fails, whether R+N < p and
// (R+N)*Z^2 == X (mod p). This is the same optimization independently
// present in both the Rust implementation this validator's design was
// modeled on and in Decred's secp256k1 Go package, which is read as strong
// corroboration that it is the right production-path check rather than an
// always-exact affine inversion.
package ecdsa
