package modint

import (
	"reflect"

	"github.com/dnssecprover/prover/bigint"
)

// Elem384 is a 384-bit modular integer, stored internally in Montgomery
// form, analogous to Elem256 but for the P-384 field and scalar moduli.
type Elem384[M Modulus384] struct {
	v bigint.U384
}

func setup384[M Modulus384]() *montSetup {
	var m M
	p := m.Prime()
	return setupFor(reflect.TypeOf(m), p[:])
}

func Prime384[M Modulus384]() bigint.U384 {
	var m M
	return m.Prime()
}

func Zero384[M Modulus384]() Elem384[M] {
	return Elem384[M]{}
}

func One384[M Modulus384]() Elem384[M] {
	return FromUint64_384[M](1)
}

func FromUint64_384[M Modulus384](i uint64) Elem384[M] {
	s := setup384[M]()
	aLE := make([]uint64, s.n)
	aLE[0] = i
	rLE := ciosMul(aLE, s.r2, s.p, s.mInv0)
	var out Elem384[M]
	leToBig(out.v[:], rLE)
	return out
}

func FromCanonicalBytes384[M Modulus384](b []byte) (Elem384[M], error) {
	u, err := bigint.FromBEBytes384(b)
	if err != nil {
		return Elem384[M]{}, err
	}
	return FromU384[M](u)
}

func FromU384[M Modulus384](u bigint.U384) (Elem384[M], error) {
	s := setup384[M]()
	aLE := make([]uint64, s.n)
	leFromBig(aLE, u[:])
	if leCmp(aLE, s.p) >= 0 {
		return Elem384[M]{}, errOutOfRange
	}
	rLE := ciosMul(aLE, s.r2, s.p, s.mInv0)
	var out Elem384[M]
	leToBig(out.v[:], rLE)
	return out, nil
}

func (e Elem384[M]) Canonical() bigint.U384 {
	s := setup384[M]()
	aLE := make([]uint64, s.n)
	leFromBig(aLE, e.v[:])
	one := make([]uint64, s.n)
	one[0] = 1
	rLE := ciosMul(aLE, one, s.p, s.mInv0)
	var out bigint.U384
	leToBig(out[:], rLE)
	return out
}

func (e Elem384[M]) Bytes() [48]byte {
	return e.Canonical().ToBEBytes()
}

func (e Elem384[M]) IsZero() bool { return e.v.IsZero() }

func (e Elem384[M]) Equal(o Elem384[M]) bool { return e.v == o.v }

func (e Elem384[M]) Mul(o Elem384[M]) Elem384[M] {
	s := setup384[M]()
	aLE := make([]uint64, s.n)
	bLE := make([]uint64, s.n)
	leFromBig(aLE, e.v[:])
	leFromBig(bLE, o.v[:])
	rLE := ciosMul(aLE, bLE, s.p, s.mInv0)
	var out Elem384[M]
	leToBig(out.v[:], rLE)
	return out
}

func (e Elem384[M]) Square() Elem384[M] { return e.Mul(e) }

func (e Elem384[M]) Add(o Elem384[M]) Elem384[M] {
	p := Prime384[M]()
	sum, carry := e.v.Add(o.v)
	sum = reduceOnce384(sum, carry, p)
	return Elem384[M]{v: sum}
}

func (e Elem384[M]) Sub(o Elem384[M]) Elem384[M] {
	p := Prime384[M]()
	diff, borrow := e.v.Sub(o.v)
	if borrow != 0 {
		diff, _ = diff.Add(p)
	}
	return Elem384[M]{v: diff}
}

func (e Elem384[M]) Neg() Elem384[M] {
	return Zero384[M]().Sub(e)
}

func (e Elem384[M]) Double() Elem384[M] { return e.Add(e) }

func (e Elem384[M]) TimesThree() Elem384[M] { return e.Double().Add(e) }

func (e Elem384[M]) TimesFour() Elem384[M] { return e.Double().Double() }

func (e Elem384[M]) TimesEight() Elem384[M] { return e.Double().Double().Double() }

// Inverse returns e^(p-2) mod p via square-and-multiply, the modular
// inverse by Fermat's little theorem. See Elem256.Inverse for the zero-
// input convention.
func (e Elem384[M]) Inverse() Elem384[M] {
	p := Prime384[M]()
	two := bigint.U384{0, 0, 0, 0, 0, 2}
	exp, _ := p.Sub(two)
	result := One384[M]()
	base := e
	for i := exp.BitLen() - 1; i >= 0; i-- {
		result = result.Square()
		if exp.Bit(i) == 1 {
			result = result.Mul(base)
		}
	}
	return result
}

func reduceOnce384(sum bigint.U384, carry uint64, p bigint.U384) bigint.U384 {
	if carry != 0 {
		sum, _ = sum.Sub(p)
		return sum
	}
	if sum.Cmp(p) >= 0 {
		sum, _ = sum.Sub(p)
	}
	return sum
}
