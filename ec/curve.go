package ec

import (
	"sync"

	"github.com/dnssecprover/prover/bigint"
	"github.com/dnssecprover/prover/modint"
)

// Curve256 bundles the public curve constants for a short-Weierstrass
// curve over a 256-bit coordinate field: A = -3 (mod p, for both NIST
// curves this package supports), B, and the base point G.
type Curve256[CF modint.Modulus256] struct {
	A, B modint.Elem256[CF]
	G    Point256[CF]
}

type Curve384[CF modint.Modulus384] struct {
	A, B modint.Elem384[CF]
	G    Point384[CF]
}

var (
	p256Once sync.Once
	p256     Curve256[modint.P256Field]

	p384Once sync.Once
	p384     Curve384[modint.P384Field]
)

// P256 returns the NIST P-256 curve descriptor, computed once.
func P256() Curve256[modint.P256Field] {
	p256Once.Do(func() {
		p := modint.Prime256[modint.P256Field]()
		three := bigint.U256{0, 0, 0, 3}
		aCanon, _ := p.Sub(three)
		a, err := modint.FromU256[modint.P256Field](aCanon)
		if err != nil {
			panic(err)
		}
		b, err := modint.FromU256[modint.P256Field](bigint.U256{
			0x5ac635d8aa3a93e7, 0xb3ebbd57698886bc, 0x651d06b0cc53b0f6, 0x3bce3c3e27d2604b,
		})
		if err != nil {
			panic(err)
		}
		gx, err := modint.FromU256[modint.P256Field](bigint.U256{
			0x6b17d1f2e12c4247, 0xf8bce6e563a440f2, 0x77037d812deb33a0, 0xf4a13945d898c296,
		})
		if err != nil {
			panic(err)
		}
		gy, err := modint.FromU256[modint.P256Field](bigint.U256{
			0x4fe342e2fe1a7f9b, 0x8ee7eb4a7c0f9e16, 0x2bce33576b315ece, 0xcbb6406837bf51f5,
		})
		if err != nil {
			panic(err)
		}
		p256 = Curve256[modint.P256Field]{A: a, B: b, G: FromAffine256[modint.P256Field](gx, gy)}
	})
	return p256
}

// P384 returns the NIST P-384 curve descriptor, computed once.
func P384() Curve384[modint.P384Field] {
	p384Once.Do(func() {
		p := modint.Prime384[modint.P384Field]()
		three := bigint.U384{0, 0, 0, 0, 0, 3}
		aCanon, _ := p.Sub(three)
		a, err := modint.FromU384[modint.P384Field](aCanon)
		if err != nil {
			panic(err)
		}
		b, err := modint.FromU384[modint.P384Field](bigint.U384{
			0xb3312fa7e23ee7e4, 0x988e056be3f82d19, 0x181d9c6efe814112, 0x0314088f5013875a,
			0xc656398d8a2ed19d, 0x2a85c8edd3ec2aef,
		})
		if err != nil {
			panic(err)
		}
		gx, err := modint.FromU384[modint.P384Field](bigint.U384{
			0xaa87ca22be8b0537, 0x8eb1c71ef320ad74, 0x6e1d3b628ba79b98, 0x59f741e082542a38,
			0x5502f25dbf55296c, 0x3a545e3872760ab7,
		})
		if err != nil {
			panic(err)
		}
		gy, err := modint.FromU384[modint.P384Field](bigint.U384{
			0x3617de4a96262c6f, 0x5d9e98bf9292dc29, 0xf8f41dbd289a147c, 0xe9da3113b5f0b8c0,
			0x0a60b1ce1d7e819d, 0x7a431d7c90ea0e5f,
		})
		if err != nil {
			panic(err)
		}
		p384 = Curve384[modint.P384Field]{A: a, B: b, G: FromAffine384[modint.P384Field](gx, gy)}
	})
	return p384
}
