package dnssec

import (
	"crypto/ed25519"
	"crypto/sha256"
	"crypto/sha512"

	"github.com/dnssecprover/prover/bigint"
	"github.com/dnssecprover/prover/ec"
	"github.com/dnssecprover/prover/ecdsa"
	"github.com/dnssecprover/prover/modint"
	"github.com/dnssecprover/prover/rsakey"
)

// verifySignature dispatches to the per-algorithm verifier. pubKeyRDATA is
// the DNSKEY's public key field (RDATA with the flags/protocol/algorithm
// header stripped); signedData is the RFC 4034 §6.2 canonical signing
// input; signature is the RRSIG's raw signature bytes.
//
// Supported algorithms match spec.md's root trust path: 8 (RSA-SHA256),
// 13 (ECDSA P-256 SHA-256), 14 (ECDSA P-384 SHA-384), 15 (Ed25519). 16
// (Ed448) is named in scope by the spec but has no Go stdlib support and no
// library in this module's dependency set implements it, so it is reported
// as unsupported rather than faked.
func verifySignature(algorithm uint8, pubKeyRDATA, signedData, signature []byte) error {
	switch algorithm {
	case 8:
		pub, err := rsakey.ParsePublicKey(pubKeyRDATA)
		if err != nil {
			return newError(KindInvalid, "RSA public key: "+err.Error())
		}
		if err := rsakey.VerifyRSASHA256(pub, signedData, signature); err != nil {
			return newError(KindInvalid, "RSA signature verification failed")
		}
		return nil

	case 13:
		return verifyECDSA256(pubKeyRDATA, signedData, signature)

	case 14:
		return verifyECDSA384(pubKeyRDATA, signedData, signature)

	case 15:
		if len(pubKeyRDATA) != ed25519.PublicKeySize {
			return newError(KindInvalid, "Ed25519 public key has wrong length")
		}
		if len(signature) != ed25519.SignatureSize {
			return newError(KindInvalid, "Ed25519 signature has wrong length")
		}
		if !ed25519.Verify(ed25519.PublicKey(pubKeyRDATA), signedData, signature) {
			return newError(KindInvalid, "Ed25519 signature verification failed")
		}
		return nil

	case 16:
		return newError(KindUnsupportedAlgorithm, "Ed448 (algorithm 16) is not implemented")

	default:
		return newError(KindUnsupportedAlgorithm, "unsupported DNSKEY/RRSIG algorithm")
	}
}

func verifyECDSA256(pubKeyRDATA, signedData, signature []byte) error {
	if len(pubKeyRDATA) != 64 {
		return newError(KindInvalid, "ECDSA P-256 public key has wrong length")
	}
	if len(signature) != 64 {
		return newError(KindInvalid, "ECDSA P-256 signature has wrong length")
	}
	x, err := bigint.FromBEBytes256(pubKeyRDATA[:32])
	if err != nil {
		return newError(KindInvalid, "ECDSA P-256 public key x coordinate")
	}
	y, err := bigint.FromBEBytes256(pubKeyRDATA[32:])
	if err != nil {
		return newError(KindInvalid, "ECDSA P-256 public key y coordinate")
	}
	xe, err := modint.FromU256[modint.P256Field](x)
	if err != nil {
		return newError(KindInvalid, "ECDSA P-256 public key x out of range")
	}
	ye, err := modint.FromU256[modint.P256Field](y)
	if err != nil {
		return newError(KindInvalid, "ECDSA P-256 public key y out of range")
	}
	pub := ec.FromAffine256[modint.P256Field](xe, ye)
	curve := ec.P256()
	if !ec.OnCurve256(pub, curve.A, curve.B) {
		return newError(KindInvalid, "ECDSA P-256 public key is not on the curve")
	}
	r, err := bigint.FromBEBytes256(signature[:32])
	if err != nil {
		return newError(KindInvalid, "ECDSA P-256 signature r")
	}
	s, err := bigint.FromBEBytes256(signature[32:])
	if err != nil {
		return newError(KindInvalid, "ECDSA P-256 signature s")
	}
	h := sha256.Sum256(signedData)
	if err := ecdsa.VerifyP256(pub, r, s, h[:]); err != nil {
		return newError(KindInvalid, "ECDSA P-256 signature verification failed: "+err.Error())
	}
	return nil
}

func verifyECDSA384(pubKeyRDATA, signedData, signature []byte) error {
	if len(pubKeyRDATA) != 96 {
		return newError(KindInvalid, "ECDSA P-384 public key has wrong length")
	}
	if len(signature) != 96 {
		return newError(KindInvalid, "ECDSA P-384 signature has wrong length")
	}
	x, err := bigint.FromBEBytes384(pubKeyRDATA[:48])
	if err != nil {
		return newError(KindInvalid, "ECDSA P-384 public key x coordinate")
	}
	y, err := bigint.FromBEBytes384(pubKeyRDATA[48:])
	if err != nil {
		return newError(KindInvalid, "ECDSA P-384 public key y coordinate")
	}
	xe, err := modint.FromU384[modint.P384Field](x)
	if err != nil {
		return newError(KindInvalid, "ECDSA P-384 public key x out of range")
	}
	ye, err := modint.FromU384[modint.P384Field](y)
	if err != nil {
		return newError(KindInvalid, "ECDSA P-384 public key y out of range")
	}
	pub := ec.FromAffine384[modint.P384Field](xe, ye)
	curve := ec.P384()
	if !ec.OnCurve384(pub, curve.A, curve.B) {
		return newError(KindInvalid, "ECDSA P-384 public key is not on the curve")
	}
	r, err := bigint.FromBEBytes384(signature[:48])
	if err != nil {
		return newError(KindInvalid, "ECDSA P-384 signature r")
	}
	s, err := bigint.FromBEBytes384(signature[48:])
	if err != nil {
		return newError(KindInvalid, "ECDSA P-384 signature s")
	}
	h := sha512.Sum384(signedData)
	if err := ecdsa.VerifyP384(pub, r, s, h[:]); err != nil {
		return newError(KindInvalid, "ECDSA P-384 signature verification failed: "+err.Error())
	}
	return nil
}
