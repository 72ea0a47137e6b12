package ec

import (
	"github.com/dnssecprover/prover/bigint"
	"github.com/dnssecprover/prover/modint"
)

// Point384 is the P-384-width analogue of Point256; see point256.go for
// the formulas and their grounding, which this file mirrors exactly.
type Point384[CF modint.Modulus384] struct {
	X, Y, Z modint.Elem384[CF]
}

func Infinity384[CF modint.Modulus384]() Point384[CF] {
	return Point384[CF]{X: modint.One384[CF](), Y: modint.One384[CF](), Z: modint.Zero384[CF]()}
}

func FromAffine384[CF modint.Modulus384](x, y modint.Elem384[CF]) Point384[CF] {
	return Point384[CF]{X: x, Y: y, Z: modint.One384[CF]()}
}

func (p Point384[CF]) IsInfinity() bool { return p.Z.IsZero() }

func OnCurve384[CF modint.Modulus384](p Point384[CF], a, b modint.Elem384[CF]) bool {
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

func (p Point384[CF]) Double() Point384[CF] {
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

	return Point384[CF]{X: x3, Y: y3, Z: z3}
}

func (p Point384[CF]) Add(q Point384[CF]) Point384[CF] {
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
		return Infinity384[CF]()
	}

	i := h.Double().Square()
	j := h.Mul(i)
	r = r.Double()
	v := u1.Mul(i)

	x3 := r.Square().Sub(j).Sub(v.Double())
	y3 := r.Mul(v.Sub(x3)).Sub(s1.Mul(j).Double())
	z3 := p.Z.Add(q.Z).Square().Sub(z1z1).Sub(z2z2).Mul(h)

	return Point384[CF]{X: x3, Y: y3, Z: z3}
}

func (p Point384[CF]) ScalarMulAdd(a bigint.U384, q Point384[CF], b bigint.U384, testRelaxed bool) (Point384[CF], error) {
	bitLen := a.BitLen()
	if bl := b.BitLen(); bl > bitLen {
		bitLen = bl
	}
	if bitLen == 0 {
		return Infinity384[CF](), nil
	}

	var acc Point384[CF]
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
					return Point384[CF]{}, ErrUnexpectedInfinity
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
					return Point384[CF]{}, ErrUnexpectedInfinity
				}
			}
		}
	}
	return acc, nil
}
