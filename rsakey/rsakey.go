// Package rsakey parses RFC 3110 RSA public keys from DNSKEY RDATA and
// verifies PKCS#1v1.5 signatures for DNSSEC algorithm 8 (RSASHA256).
//
// DNSSEC's RSA key wire format long predates Go's crypto/rsa, so there is
// no ecosystem library for the RFC 3110 encoding itself; once parsed into
// a *rsa.PublicKey, verification is exactly what stdlib crypto/rsa does,
// matching the one DNS-domain reference implementation in the example pack
// that also falls back to stdlib for this step.
package rsakey

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"errors"
	"math/big"
)

var (
	// ErrTruncated is returned when the RDATA ends before the encoded
	// exponent or modulus is complete.
	ErrTruncated = errors.New("rsakey: truncated RFC 3110 key")
	// ErrExponentTooLarge is returned when the encoded exponent would not
	// fit the int the stdlib RSA API accepts.
	ErrExponentTooLarge = errors.New("rsakey: exponent too large")
	// ErrModulusTooSmall / ErrModulusTooLarge bound accepted key sizes to
	// what DNSSEC deployments actually use, rejecting degenerate keys.
	ErrModulusTooSmall = errors.New("rsakey: modulus smaller than 1024 bits")
	ErrModulusTooLarge = errors.New("rsakey: modulus larger than 4096 bits")
)

// ParsePublicKey decodes an RFC 3110 RSA public key from DNSKEY RDATA: a
// one-byte exponent length, or 0x00 followed by a two-byte big-endian
// length for exponents that don't fit in one byte, then the exponent
// bytes, then the remaining bytes as the modulus.
func ParsePublicKey(rdata []byte) (*rsa.PublicKey, error) {
	if len(rdata) < 1 {
		return nil, ErrTruncated
	}
	var expLen int
	var off int
	if rdata[0] == 0 {
		if len(rdata) < 3 {
			return nil, ErrTruncated
		}
		expLen = int(rdata[1])<<8 | int(rdata[2])
		off = 3
	} else {
		expLen = int(rdata[0])
		off = 1
	}
	if off+expLen > len(rdata) {
		return nil, ErrTruncated
	}
	expBytes := rdata[off : off+expLen]
	off += expLen
	modBytes := rdata[off:]
	if len(modBytes) == 0 {
		return nil, ErrTruncated
	}

	modBits := len(modBytes) * 8
	if modBytes[0] == 0 {
		// Leading zero byte: count actual significant bits below.
		n := new(big.Int).SetBytes(modBytes)
		modBits = n.BitLen()
	}
	if modBits < 1024 {
		return nil, ErrModulusTooSmall
	}
	if modBits > 4096 {
		return nil, ErrModulusTooLarge
	}

	e := new(big.Int).SetBytes(expBytes)
	if !e.IsInt64() || e.Int64() > (1<<31-1) {
		return nil, ErrExponentTooLarge
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(modBytes),
		E: int(e.Int64()),
	}, nil
}

// VerifyRSASHA256 verifies a PKCS#1v1.5/SHA-256 signature (DNSSEC
// algorithm 8) over signedData using pub.
func VerifyRSASHA256(pub *rsa.PublicKey, signedData, signature []byte) error {
	digest := sha256.Sum256(signedData)
	return rsa.VerifyPKCS1v15(pub, crypto.SHA256, digest[:], signature)
}
