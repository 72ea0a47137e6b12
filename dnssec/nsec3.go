package dnssec

import (
	"bytes"
	"crypto/sha1"
	"encoding/base32"
	"errors"

	"github.com/dnssecprover/prover/dnswire"
)

// maxNSEC3Iterations caps the SHA-1 iteration count RFC 5155 lets a zone
// operator choose. The RFC doesn't bound it; current IETF operational
// guidance (and every production resolver) caps it to bound the per-name
// verification cost, since a malicious zone could otherwise force
// unbounded CPU work per proof.
const maxNSEC3Iterations = 150

var errNSEC3TooManyIterations = errors.New("dnssec: NSEC3 iteration count exceeds cap")
var errNSEC3UnsupportedHashAlgorithm = errors.New("dnssec: unsupported NSEC3 hash algorithm")

var base32HexNoPad = base32.HexEncoding.WithPadding(base32.NoPadding)

// nsec3Hash computes the RFC 5155 §5 iterated hash of name: H(...H(H(name‖
// salt)‖salt)...‖salt), applied iterations+1 times.
func nsec3Hash(name dnswire.Name, algorithm uint8, iterations uint16, salt []byte) ([]byte, error) {
	if algorithm != 1 {
		return nil, errNSEC3UnsupportedHashAlgorithm
	}
	if iterations > maxNSEC3Iterations {
		return nil, errNSEC3TooManyIterations
	}
	cur := name.EncodeCanonical()
	for i := 0; i <= int(iterations); i++ {
		sum := sha1.Sum(append(append([]byte{}, cur...), salt...))
		cur = sum[:]
	}
	return cur, nil
}

// nsec3OwnerHash decodes an NSEC3 RR's owner name's first label (base32hex,
// no padding, per RFC 5155 §1) back into the raw hash bytes it encodes.
func nsec3OwnerHash(owner dnswire.Name) ([]byte, error) {
	if len(owner.Labels) == 0 {
		return nil, errors.New("dnssec: NSEC3 owner name has no hash label")
	}
	return base32HexNoPad.DecodeString(string(bytes.ToUpper(owner.Labels[0])))
}

// nsec3Covers reports whether target's hash falls in the open interval
// (ownerHash, nextHash), including the wraparound case at the end of the
// hash ring (RFC 5155 §8.3).
func nsec3Covers(ownerHash, nextHash, targetHash []byte) bool {
	if bytes.Compare(nextHash, ownerHash) <= 0 {
		return bytes.Compare(targetHash, ownerHash) > 0 || bytes.Compare(targetHash, nextHash) < 0
	}
	return bytes.Compare(targetHash, ownerHash) > 0 && bytes.Compare(targetHash, nextHash) < 0
}
