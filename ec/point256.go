package ec

import (
	"errors"

	"github.com/dnssecprover/prover/bigint"
	"github.com/dnssecprover/prover/modint"
)

// ErrUnexpectedInfinity is returned by ScalarMulAdd when a production
// (non-relaxed) call encounters the point at infinity partway through the
// simultaneous double-and-add loop. A correctly formed ECDSA verification
// essentially never legitimately hits this; treating it as failure matches
// both the Rust reference and the Go teacher this package was modeled on.
var ErrUnexpectedInfinity = errors.New("ec: unexpected point at infinity")

// Point256 is a Jacobian-coordinate point (X, Y, Z) on a short-Weierstrass
// curve over the 256-bit field named by CF. Z == 0 represents the point at
// infinity.
type Point256[CF modint.Modulus256] struct {
	X, Y, Z modint.Elem256[CF]
}

// Infinity256 returns the point at infinity.
func Infinity256[CF modint.Modulus256]() Point256[CF] {
	return Point256[CF]{X: modint.One256[CF](), Y: modint.One256[CF](), Z: modint.Zero256[CF]()}
}

// FromAffine256 builds a Jacobian point from affine coordinates (Z=1).
func FromAffine256[CF modint.Modulus256](x, y modint.Elem256[CF]) Point256[CF] {
	return Point256[CF]{X: x, Y: y, Z: modint.One256[CF]()}
}

func (p Point256[CF]) IsInfinity() bool { return p.Z.IsZero() }

// OnCurve256 reports whether p satisfies Y^2 = X^3 + a*X*Z^4 + b*Z^6, the
// Jacobian-coordinate form of the short-Weierstrass equation, so the check
// never needs an affine inversion.
func OnCurve256[CF modint.Modulus256](p Point256[CF], a, b modint.Elem256[CF]) bool {
	if p.IsInfinity() {
		return true
	}
	lhs := p.Y.Square()
	x3 := p.X.Square().Mul(p.X)
	z2 := p.Z.Square()
	z4 := z2.Square()
	z6 := z4.Mul(z2)
	rhs := x3.Add(a.Mul(p.X).Mul(z4)).Add(b.Mul(z6))
	return lhs.Equal(rhs)
}

// Double returns 2*p via the dbl-2001-b formula, valid for curves with
// a == -3 (true of both P-256 and P-384).
func (p Point256[CF]) Double() Point256[CF] {
	if p.IsInfinity() {
		return p
	}
	delta := p.Z.Square()
	gamma := p.Y.Square()
	beta := p.X.Mul(gamma)
	alpha := p.X.Sub(delta).Mul(p.X.Add(delta)).TimesThree()

	x3 := alpha.Square().Sub(beta.TimesEight())
	z3 := p.Y.Add(p.Z).Square().Sub(gamma).Sub(delta)
	y3 := alpha.Mul(beta.TimesFour().Sub(x3)).Sub(gamma.Square().TimesEight())

	return Point256[CF]{X: x3, Y: y3, Z: z3}
}

// Add returns p+q via the add-2007-bl formula, handling both operands
// being finite and distinct, equal (dispatches to Double), inverses of
// each other (returns infinity), or either being infinity.
func (p Point256[CF]) Add(q Point256[CF]) Point256[CF] {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}

	z1z1 := p.Z.Square()
	z2z2 := q.Z.Square()
	u1 := p.X.Mul(z2z2)
	u2 := q.X.Mul(z1z1)
	s1 := p.Y.Mul(q.Z).Mul(z2z2)
	s2 := q.Y.Mul(p.Z).Mul(z1z1)

	h := u2.Sub(u1)
	r := s2.Sub(s1)

	if h.IsZero() {
		if r.IsZero() {
			return p.Double()
		}
		return Infinity256[CF]()
	}

	i := h.Double().Square()
	j := h.Mul(i)
	r = r.Double()
	v := u1.Mul(i)

	x3 := r.Square().Sub(j).Sub(v.Double())
	y3 := r.Mul(v.Sub(x3)).Sub(s1.Mul(j).Double())
	z3 := p.Z.Add(q.Z).Square().Sub(z1z1).Sub(z2z2).Mul(h)

	return Point256[CF]{X: x3, Y: y3, Z: z3}
}

// ScalarMulAdd computes a*p + b*q using simultaneous double-and-add
// (Shamir's trick), scanning from the highest bit set in either scalar.
// The accumulator is seeded directly from whichever term's bit fires
// first, without an explicit add-to-infinity step. When testRelaxed is
// false (every production call site), encountering the point at infinity
// partway through the loop returns ErrUnexpectedInfinity; testRelaxed is
// set only by tests that intentionally exercise that edge case.
func (p Point256[CF]) ScalarMulAdd(a bigint.U256, q Point256[CF], b bigint.U256, testRelaxed bool) (Point256[CF], error) {
	bitLen := a.BitLen()
	if bl := b.BitLen(); bl > bitLen {
		bitLen = bl
	}
	if bitLen == 0 {
		return Infinity256[CF](), nil
	}

	var acc Point256[CF]
	seeded := false

	for i := bitLen - 1; i >= 0; i-- {
		if seeded {
			acc = acc.Double()
		}
		if a.Bit(i) == 1 {
			if !seeded {
				acc = p
				seeded = true
			} else {
				acc = acc.Add(p)
				if acc.IsInfinity() && !testRelaxed {
					return Point256[CF]{}, ErrUnexpectedInfinity
				}
			}
		}
		if b.Bit(i) == 1 {
			if !seeded {
				acc = q
				seeded = true
			} else {
				acc = acc.Add(q)
				if acc.IsInfinity() && !testRelaxed {
					return Point256[CF]{}, ErrUnexpectedInfinity
				}
			}
		}
	}
	return acc, nil
}
