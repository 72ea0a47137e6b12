package ecdsa

import (
	"github.com/dnssecprover/prover/bigint"
	"github.com/dnssecprover/prover/ec"
	"github.com/dnssecprover/prover/modint"
)

// VerifyP384 verifies an ECDSA signature (r, s) over the P-384 curve
// against the given public key point and a 48-byte SHA-384 digest.
func VerifyP384(pub ec.Point384[modint.P384Field], r, s bigint.U384, hash []byte) error {
	if len(hash) != 48 {
		return ErrWrongHashLength
	}
	n := modint.Prime384[modint.P384Scalar]()
	if r.IsZero() || r.Cmp(n) >= 0 || s.IsZero() || s.Cmp(n) >= 0 {
		return ErrSigRangeInvalid
	}

	zRaw, err := bigint.FromBEBytes384(hash)
	if err != nil {
		return err
	}
	if zRaw.Cmp(n) >= 0 {
		zRaw, _ = zRaw.Sub(n)
	}

	rScalar, err := modint.FromU384[modint.P384Scalar](r)
	if err != nil {
		return ErrSigRangeInvalid
	}
	sScalar, err := modint.FromU384[modint.P384Scalar](s)
	if err != nil {
		return ErrSigRangeInvalid
	}
	zScalar, err := modint.FromU384[modint.P384Scalar](zRaw)
	if err != nil {
		return err
	}

	sInv := sScalar.Inverse()
	u1 := zScalar.Mul(sInv)
	u2 := rScalar.Mul(sInv)

	curve := ec.P384()
	v, err := curve.G.ScalarMulAdd(u1.Canonical(), pub, u2.Canonical(), false)
	if err != nil {
		return ErrInvalidSignature
	}
	if v.IsInfinity() {
		return ErrInvalidSignature
	}

	z2 := v.Z.Square()

	rField, err := modint.FromU384[modint.P384Field](r)
	if err != nil {
		return ErrInvalidSignature
	}
	if rField.Mul(z2).Equal(v.X) {
		return nil
	}

	p := modint.Prime384[modint.P384Field]()
	rPlusN, carry := r.Add(n)
	if carry == 0 && rPlusN.Cmp(p) < 0 {
		rPlusNField, err := modint.FromU384[modint.P384Field](rPlusN)
		if err == nil && rPlusNField.Mul(z2).Equal(v.X) {
			return nil
		}
	}

	return ErrInvalidSignature
}
