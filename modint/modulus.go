package modint

import "github.com/dnssecprover/prover/bigint"

// Modulus256 is implemented by zero-sized marker types naming a 256-bit
// prime modulus. Prime must return the same value on every call.
type Modulus256 interface {
	Prime() bigint.U256
}

// Modulus384 is implemented by zero-sized marker types naming a 384-bit
// prime modulus.
type Modulus384 interface {
	Prime() bigint.U384
}

func hex256(words ...uint64) bigint.U256 {
	var u bigint.U256
	copy(u[:], words)
	return u
}

func hex384(words ...uint64) bigint.U384 {
	var u bigint.U384
	copy(u[:], words)
	return u
}

// P256Field names the NIST P-256 coordinate field, p = 2^256 - 2^224 +
// 2^192 + 2^96 - 1.
type P256Field struct{}

func (P256Field) Prime() bigint.U256 {
	return hex256(
		0xffffffff00000001,
		0x0000000000000000,
		0x00000000ffffffff,
		0xffffffffffffffff,
	)
}

// P256Scalar names the NIST P-256 group order.
type P256Scalar struct{}

func (P256Scalar) Prime() bigint.U256 {
	return hex256(
		0xffffffff00000000,
		0xffffffffffffffff,
		0xbce6faada7179e84,
		0xf3b9cac2fc632551,
	)
}

// P384Field names the NIST P-384 coordinate field, p = 2^384 - 2^128 -
// 2^96 + 2^32 - 1.
type P384Field struct{}

func (P384Field) Prime() bigint.U384 {
	return hex384(
		0xffffffffffffffff,
		0xffffffffffffffff,
		0xffffffffffffffff,
		0xfffffffffffffffe,
		0xffffffff00000000,
		0x00000000ffffffff,
	)
}

// P384Scalar names the NIST P-384 group order.
type P384Scalar struct{}

func (P384Scalar) Prime() bigint.U384 {
	return hex384(
		0xffffffffffffffff,
		0xffffffffffffffff,
		0xffffffffffffffff,
		0xc7634d81f4372ddf,
		0x581a0db248b0a77a,
		0xecec196accc52973,
	)
}
