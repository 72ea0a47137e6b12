package ecdsa

import (
	"github.com/dnssecprover/prover/bigint"
	"github.com/dnssecprover/prover/ec"
	"github.com/dnssecprover/prover/modint"
)

// VerifyP256 verifies an ECDSA signature (r, s) over the P-256 curve
// against the given public key point and a 32-byte SHA-256 digest.
func VerifyP256(pub ec.Point256[modint.P256Field], r, s bigint.U256, hash []byte) error {
	if len(hash) != 32 {
		return ErrWrongHashLength
	}
	n := modint.Prime256[modint.P256Scalar]()
	if r.IsZero() || r.Cmp(n) >= 0 || s.IsZero() || s.Cmp(n) >= 0 {
		return ErrSigRangeInvalid
	}

	zRaw, err := bigint.FromBEBytes256(hash)
	if err != nil {
		return err
	}
	if zRaw.Cmp(n) >= 0 {
		zRaw, _ = zRaw.Sub(n)
	}

	rScalar, err := modint.FromU256[modint.P256Scalar](r)
	if err != nil {
		return ErrSigRangeInvalid
	}
	sScalar, err := modint.FromU256[modint.P256Scalar](s)
	if err != nil {
		return ErrSigRangeInvalid
	}
	zScalar, err := modint.FromU256[modint.P256Scalar](zRaw)
	if err != nil {
		return err
	}

	sInv := sScalar.Inverse()
	u1 := zScalar.Mul(sInv)
	u2 := rScalar.Mul(sInv)

	curve := ec.P256()
	v, err := curve.G.ScalarMulAdd(u1.Canonical(), pub, u2.Canonical(), false)
	if err != nil {
		return ErrInvalidSignature
	}
	if v.IsInfinity() {
		return ErrInvalidSignature
	}

	z2 := v.Z.Square()

	rField, err := modint.FromU256[modint.P256Field](r)
	if err != nil {
		return ErrInvalidSignature
	}
	if rField.Mul(z2).Equal(v.X) {
		return nil
	}

	p := modint.Prime256[modint.P256Field]()
	rPlusN, carry := r.Add(n)
	if carry == 0 && rPlusN.Cmp(p) < 0 {
		rPlusNField, err := modint.FromU256[modint.P256Field](rPlusN)
		if err == nil && rPlusNField.Mul(z2).Equal(v.X) {
			return nil
		}
	}

	return ErrInvalidSignature
}
