package dnssec

import (
	"crypto/sha256"
	"testing"

	"github.com/dnssecprover/prover/bigint"
	"github.com/dnssecprover/prover/dnswire"
	"github.com/dnssecprover/prover/ec"
	"github.com/dnssecprover/prover/modint"
	"github.com/stretchr/testify/require"
)

func TestSerialLess(t *testing.T) {
	require.True(t, serialLess(1, 2))
	require.False(t, serialLess(2, 1))
	require.False(t, serialLess(5, 5))
	// Wraparound: 0xFFFFFFFF is "less than" a small value near zero.
	require.True(t, serialLess(0xFFFFFFFF, 10))
}

func TestWithinValidityWindow(t *testing.T) {
	require.True(t, withinValidityWindow(100, 100, 200))
	require.True(t, withinValidityWindow(199, 100, 200))
	require.False(t, withinValidityWindow(200, 100, 200))
	require.False(t, withinValidityWindow(99, 100, 200))
}

func TestKeyTagLegacyAlgorithm1(t *testing.T) {
	rdata := []byte{0x01, 0x01, 0x03, 0x01, 0xAB, 0xCD, 0x03}
	require.Equal(t, uint16(0xCD03), keyTag(rdata, 1))
}

func TestCanonicalRDATALowercasesEmbeddedName(t *testing.T) {
	upper, _, err := dnswire.ParseNameNoCompression(encodeName("TARGET", "EXAMPLE", "COM"), 0)
	require.NoError(t, err)
	rr := dnswire.RR{Type: dnswire.TypeCNAME, RData: dnswire.CNAMEData{Target: upper}}
	require.Equal(t, encodeName("target", "example", "com"), canonicalRDATA(rr))
}

func encodeName(labels ...string) []byte {
	var out []byte
	for _, l := range labels {
		out = append(out, byte(len(l)))
		out = append(out, []byte(l)...)
	}
	return append(out, 0)
}

func TestNSECCoversName(t *testing.T) {
	owner, _, _ := dnswire.ParseNameNoCompression(encodeName("b", "example", "com"), 0)
	next, _, _ := dnswire.ParseNameNoCompression(encodeName("d", "example", "com"), 0)
	inside, _, _ := dnswire.ParseNameNoCompression(encodeName("c", "example", "com"), 0)
	outside, _, _ := dnswire.ParseNameNoCompression(encodeName("e", "example", "com"), 0)

	require.True(t, nsecCoversName(owner, next, inside))
	require.False(t, nsecCoversName(owner, next, outside))
}

func TestNSEC3HashRejectsExcessiveIterations(t *testing.T) {
	name, _, _ := dnswire.ParseNameNoCompression(encodeName("example", "com"), 0)
	_, err := nsec3Hash(name, 1, 151, nil)
	require.Error(t, err)
	_, err = nsec3Hash(name, 1, 150, nil)
	require.NoError(t, err)
}

func encodeDNSKEYRDATA(flags uint16, protocol, algorithm uint8, pubKey []byte) []byte {
	out := []byte{byte(flags >> 8), byte(flags), protocol, algorithm}
	return append(out, pubKey...)
}

// signP256ForTest mirrors the ecdsa package's test-only signer: it exists
// only because no external test-vector fixture is available for this
// synthetic zone.
func signP256ForTest(t *testing.T, d, k bigint.U256, hash []byte) (pub ec.Point256[modint.P256Field], r, s bigint.U256) {
	t.Helper()
	curve := ec.P256()
	n := modint.Prime256[modint.P256Scalar]()
	zero := bigint.U256{}

	pubPoint, err := curve.G.ScalarMulAdd(d, ec.Infinity256[modint.P256Field](), zero, false)
	require.NoError(t, err)

	kPoint, err := curve.G.ScalarMulAdd(k, ec.Infinity256[modint.P256Field](), zero, false)
	require.NoError(t, err)
	require.False(t, kPoint.IsInfinity())

	zInv := kPoint.Z.Inverse()
	xAffine := kPoint.X.Mul(zInv.Square())
	rCanon := xAffine.Canonical()
	if rCanon.Cmp(n) >= 0 {
		rCanon, _ = rCanon.Sub(n)
	}

	zRaw, err := bigint.FromBEBytes256(hash)
	require.NoError(t, err)
	if zRaw.Cmp(n) >= 0 {
		zRaw, _ = zRaw.Sub(n)
	}

	dScalar, err := modint.FromU256[modint.P256Scalar](d)
	require.NoError(t, err)
	kScalar, err := modint.FromU256[modint.P256Scalar](k)
	require.NoError(t, err)
	rScalar, err := modint.FromU256[modint.P256Scalar](rCanon)
	require.NoError(t, err)
	zScalar, err := modint.FromU256[modint.P256Scalar](zRaw)
	require.NoError(t, err)

	kInv := kScalar.Inverse()
	sScalar := kInv.Mul(zScalar.Add(rScalar.Mul(dScalar)))

	return pubPoint, rCanon, sScalar.Canonical()
}

// buildKSK returns a DNSKEY RR and its raw RDATA+private scalar for a
// zone, flagged as a key-signing key (257).
func buildKSK(t *testing.T, owner dnswire.Name, d bigint.U256) (dnswire.RR, []byte) {
	t.Helper()
	zero := bigint.U256{}
	pub, err := ec.P256().G.ScalarMulAdd(d, ec.Infinity256[modint.P256Field](), zero, false)
	require.NoError(t, err)
	xb := pub.X.Mul(pub.Z.Inverse().Square()).Bytes()
	yb := pub.Y.Mul(pub.Z.Inverse().Square().Mul(pub.Z.Inverse())).Bytes()
	pubKey := append(append([]byte{}, xb[:]...), yb[:]...)
	rdata := encodeDNSKEYRDATA(257, 3, 13, pubKey)
	rr := dnswire.RR{
		Name:  owner,
		Type:  dnswire.TypeDNSKEY,
		Class: 1,
		TTL:   3600,
		RData: dnswire.DNSKEYData{Flags: 257, Protocol: 3, Algorithm: 13, PublicKey: pubKey},
		Raw:   rdata,
	}
	return rr, rdata
}

func signRRset(t *testing.T, d bigint.U256, signer dnswire.Name, owner dnswire.Name, typeCovered dnswire.RRType, set []dnswire.RR, inception, expiration uint32, ttl uint32, keyTagVal uint16) dnswire.RR {
	t.Helper()
	sig := dnswire.RRSIGData{
		TypeCovered: typeCovered,
		Algorithm:   13,
		Labels:      uint8(owner.NumLabels()),
		OriginalTTL: ttl,
		Expiration:  expiration,
		Inception:   inception,
		KeyTag:      keyTagVal,
		SignerName:  signer,
	}
	signedData := buildSignedData(sig, owner, sortCanonical(set))
	h := sha256.Sum256(signedData)
	k := bigint.U256{0, 0, 0x1, 0x2}
	k[3] ^= uint64(inception) // vary the nonce a little per call
	_, r, s := signP256ForTest(t, d, k, h[:])
	rb, sb := r.ToBEBytes(), s.ToBEBytes()
	sig.Signature = append(append([]byte{}, rb[:]...), sb[:]...)
	return dnswire.RR{
		Name:  owner,
		Type:  dnswire.TypeRRSIG,
		Class: 1,
		TTL:   ttl,
		RData: sig,
	}
}

func TestVerifyEndToEndSingleZoneChain(t *testing.T) {
	root := dnswire.Root
	childName, _, err := dnswire.ParseNameNoCompression(encodeName("example", "com"), 0)
	require.NoError(t, err)

	rootD := bigint.U256{0, 0, 0, 0xAAAAAAAAAAAAAAAA}
	childD := bigint.U256{0, 0, 0, 0xBBBBBBBBBBBBBBBB}

	rootDNSKEYRR, rootRdata := buildKSK(t, root, rootD)
	childDNSKEYRR, childRdata := buildKSK(t, childName, childD)

	rootTag := keyTag(rootRdata, 13)
	childTag := keyTag(childRdata, 13)

	origRoots := RootTrustAnchors
	defer func() { RootTrustAnchors = origRoots }()
	RootTrustAnchors = []TrustAnchor{{
		KeyTag:     rootTag,
		Algorithm:  13,
		DigestType: 2,
		Digest: func() []byte {
			data := append(append([]byte{}, root.EncodeCanonical()...), rootRdata...)
			sum := sha256.Sum256(data)
			return sum[:]
		}(),
	}}

	now := uint32(1_000_000)
	inception, expiration := now-1000, now+1000

	rootDNSKEYSig := signRRset(t, rootD, root, root, dnswire.TypeDNSKEY, []dnswire.RR{rootDNSKEYRR}, inception, expiration, 3600, rootTag)

	dsDigest := sha256.Sum256(append(append([]byte{}, childName.EncodeCanonical()...), childRdata...))
	dsRR := dnswire.RR{
		Name:  childName,
		Type:  dnswire.TypeDS,
		Class: 1,
		TTL:   3600,
		RData: dnswire.DSData{KeyTag: childTag, Algorithm: 13, DigestType: 2, Digest: dsDigest[:]},
	}
	dsSig := signRRset(t, rootD, root, childName, dnswire.TypeDS, []dnswire.RR{dsRR}, inception, expiration, 3600, rootTag)

	childDNSKEYSig := signRRset(t, childD, childName, childName, dnswire.TypeDNSKEY, []dnswire.RR{childDNSKEYRR}, inception, expiration, 3600, childTag)

	txtRR := dnswire.RR{
		Name:  childName,
		Type:  dnswire.TypeTXT,
		Class: 1,
		TTL:   300,
		RData: dnswire.TXTData{Strings: [][]byte{[]byte("hello")}},
		Raw:   []byte{5, 'h', 'e', 'l', 'l', 'o'},
	}
	txtSig := signRRset(t, childD, childName, childName, dnswire.TypeTXT, []dnswire.RR{txtRR}, inception, expiration, 300, childTag)

	proof := []dnswire.RR{
		rootDNSKEYRR, rootDNSKEYSig,
		dsRR, dsSig,
		childDNSKEYRR, childDNSKEYSig,
		txtRR, txtSig,
	}

	v, err := Verify(proof, now)
	require.NoError(t, err)
	stream := v.Stream()
	require.True(t, serialLessEqual(inception, stream.ValidFrom))
	require.True(t, serialLessEqual(stream.Expires, expiration))

	var foundTXT bool
	for _, rr := range stream.RRs {
		if rr.Type == dnswire.TypeTXT {
			foundTXT = true
		}
	}
	require.True(t, foundTXT, "verified set should include the target TXT record")
}

func TestVerifyFailsWithoutRootDNSKEY(t *testing.T) {
	childName, _, _ := dnswire.ParseNameNoCompression(encodeName("example", "com"), 0)
	childD := bigint.U256{0, 0, 0, 0xBBBBBBBBBBBBBBBB}
	childDNSKEYRR, childRdata := buildKSK(t, childName, childD)
	childTag := keyTag(childRdata, 13)

	now := uint32(1_000_000)
	inception, expiration := now-1000, now+1000
	childDNSKEYSig := signRRset(t, childD, childName, childName, dnswire.TypeDNSKEY, []dnswire.RR{childDNSKEYRR}, inception, expiration, 3600, childTag)

	proof := []dnswire.RR{childDNSKEYRR, childDNSKEYSig}
	_, err := Verify(proof, now)
	require.Error(t, err)
	var dnssecErr Error
	require.ErrorAs(t, err, &dnssecErr)
	require.ErrorIs(t, err, KindUntrustedChain)
}
