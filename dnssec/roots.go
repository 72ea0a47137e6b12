package dnssec

import (
	"encoding/hex"

	"github.com/dnssecprover/prover/dnswire"
)

// TrustAnchor is a compiled-in identity for a root zone KSK, per RFC 7958 /
// IANA's root-anchors.xml: the combination a DS record would carry if one
// existed for the root itself.
type TrustAnchor struct {
	KeyTag     uint16
	Algorithm  uint8
	DigestType uint8
	Digest     []byte
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// RootTrustAnchors is the hard-coded set of root zone KSKs this validator
// trusts unconditionally. It currently carries IANA's KSK-2017 (key tag
// 20326, RSA/SHA-256, SHA-256 digest), the root zone's signing key as of
// this package's writing.
var RootTrustAnchors = []TrustAnchor{
	{
		KeyTag:     20326,
		Algorithm:  8,
		DigestType: 2,
		Digest:     mustHex("E06D44B80B8F1D39A95C0B0D7C65D08458E880409BBC683457104237C7F8EC8D"),
	},
}

// matchesRootAnchor reports whether a root-zone DNSKEY (raw RDATA) is
// endorsed by one of RootTrustAnchors.
func matchesRootAnchor(dnskeyRDATA []byte, algorithm uint8) bool {
	for _, a := range RootTrustAnchors {
		ds := dnswire.DSData{KeyTag: a.KeyTag, Algorithm: a.Algorithm, DigestType: a.DigestType, Digest: a.Digest}
		if dsMatchesDNSKEY(ds, dnswire.Root, dnskeyRDATA, algorithm) {
			return true
		}
	}
	return false
}
