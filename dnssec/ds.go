package dnssec

import (
	"bytes"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"

	"github.com/dnssecprover/prover/dnswire"
)

// dsMatchesDNSKEY reports whether ds endorses the DNSKEY at owner with raw
// RDATA dnskeyRDATA: algorithm and key tag must agree, and the digest of
// (owner ‖ DNSKEY RDATA) under the DS's digest algorithm must equal the
// DS's digest.
func dsMatchesDNSKEY(ds dnswire.DSData, owner dnswire.Name, dnskeyRDATA []byte, dnskeyAlgorithm uint8) bool {
	if ds.Algorithm != dnskeyAlgorithm {
		return false
	}
	if ds.KeyTag != keyTag(dnskeyRDATA, dnskeyAlgorithm) {
		return false
	}
	data := append(append([]byte{}, owner.EncodeCanonical()...), dnskeyRDATA...)
	var digest []byte
	switch ds.DigestType {
	case 1:
		sum := sha1.Sum(data)
		digest = sum[:]
	case 2:
		sum := sha256.Sum256(data)
		digest = sum[:]
	case 4:
		sum := sha512.Sum384(data)
		digest = sum[:]
	default:
		return false
	}
	return bytes.Equal(digest, ds.Digest)
}
