package ecdsa

import (
	"testing"

	"github.com/dnssecprover/prover/bigint"
	"github.com/dnssecprover/prover/ec"
	"github.com/dnssecprover/prover/modint"
	"github.com/stretchr/testify/require"
)

func signP384ForTest(t *testing.T, d, k bigint.U384, hash []byte) (pub ec.Point384[modint.P384Field], r, s bigint.U384) {
	t.Helper()
	curve := ec.P384()
	n := modint.Prime384[modint.P384Scalar]()
	zero := bigint.U384{}

	pubPoint, err := curve.G.ScalarMulAdd(d, ec.Infinity384[modint.P384Field](), zero, false)
	require.NoError(t, err)

	kPoint, err := curve.G.ScalarMulAdd(k, ec.Infinity384[modint.P384Field](), zero, false)
	require.NoError(t, err)
	require.False(t, kPoint.IsInfinity())

	zInv := kPoint.Z.Inverse()
	xAffine := kPoint.X.Mul(zInv.Square())
	rCanon := xAffine.Canonical()
	if rCanon.Cmp(n) >= 0 {
		rCanon, _ = rCanon.Sub(n)
	}

	zRaw, err := bigint.FromBEBytes384(hash)
	require.NoError(t, err)
	if zRaw.Cmp(n) >= 0 {
		zRaw, _ = zRaw.Sub(n)
	}

	dScalar, err := modint.FromU384[modint.P384Scalar](d)
	require.NoError(t, err)
	kScalar, err := modint.FromU384[modint.P384Scalar](k)
	require.NoError(t, err)
	rScalar, err := modint.FromU384[modint.P384Scalar](rCanon)
	require.NoError(t, err)
	zScalar, err := modint.FromU384[modint.P384Scalar](zRaw)
	require.NoError(t, err)

	kInv := kScalar.Inverse()
	sScalar := kInv.Mul(zScalar.Add(rScalar.Mul(dScalar)))

	return pubPoint, rCanon, sScalar.Canonical()
}

func fixedHash48(seed byte) []byte {
	h := make([]byte, 48)
	for i := range h {
		h[i] = seed + byte(i)
	}
	return h
}

func TestVerifyP384RoundTrip(t *testing.T) {
	d := bigint.U384{0, 0, 0, 0, 0, 0xdeadbeefcafebabe}
	k := bigint.U384{0, 0, 0, 0, 1, 0x1234567890abcdef}
	hash := fixedHash48(1)

	pub, r, s := signP384ForTest(t, d, k, hash)
	require.NoError(t, VerifyP384(pub, r, s, hash))
}

func TestVerifyP384RejectsTamperedSignature(t *testing.T) {
	d := bigint.U384{0, 0, 0, 0, 0, 0xdeadbeefcafebabe}
	k := bigint.U384{0, 0, 0, 0, 1, 0x1234567890abcdef}
	hash := fixedHash48(1)

	pub, r, s := signP384ForTest(t, d, k, hash)
	s[5] ^= 1
	require.Error(t, VerifyP384(pub, r, s, hash))
}

func TestVerifyP384WrongHashLength(t *testing.T) {
	d := bigint.U384{0, 0, 0, 0, 0, 1}
	k := bigint.U384{0, 0, 0, 0, 0, 2}
	hash := fixedHash48(3)
	pub, r, s := signP384ForTest(t, d, k, hash)
	require.ErrorIs(t, VerifyP384(pub, r, s, hash[:47]), ErrWrongHashLength)
}
