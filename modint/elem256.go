package modint

import (
	"reflect"

	"github.com/dnssecprover/prover/bigint"
)

// Elem256 is a 256-bit modular integer, stored internally in Montgomery
// form. M names the modulus (P256Field or P256Scalar); a Mul/Add/Sub
// between two Elem256 values instantiated over different M types is a
// compile error, not a runtime one.
type Elem256[M Modulus256] struct {
	v bigint.U256 // Montgomery-form representative: v = value * R mod p
}

func setup256[M Modulus256]() *montSetup {
	var m M
	p := m.Prime()
	return setupFor(reflect.TypeOf(m), p[:])
}

// Prime256 returns the modulus M names, as a plain bigint.U256.
func Prime256[M Modulus256]() bigint.U256 {
	var m M
	return m.Prime()
}

// Zero256 is the additive identity.
func Zero256[M Modulus256]() Elem256[M] {
	return Elem256[M]{}
}

// One256 is the multiplicative identity.
func One256[M Modulus256]() Elem256[M] {
	return FromUint64_256[M](1)
}

// FromUint64_256 converts a small integer into Montgomery form.
func FromUint64_256[M Modulus256](i uint64) Elem256[M] {
	s := setup256[M]()
	aLE := make([]uint64, s.n)
	aLE[0] = i
	rLE := ciosMul(aLE, s.r2, s.p, s.mInv0)
	var out Elem256[M]
	leToBig(out.v[:], rLE)
	return out
}

// FromCanonicalBytes256 parses a big-endian byte string as an element of
// the field/scalar group M names, rejecting values that are not strictly
// less than the modulus.
func FromCanonicalBytes256[M Modulus256](b []byte) (Elem256[M], error) {
	u, err := bigint.FromBEBytes256(b)
	if err != nil {
		return Elem256[M]{}, err
	}
	return FromU256[M](u)
}

// FromU256 converts a canonical (non-Montgomery) value into an element,
// rejecting values not strictly less than the modulus.
func FromU256[M Modulus256](u bigint.U256) (Elem256[M], error) {
	s := setup256[M]()
	aLE := make([]uint64, s.n)
	leFromBig(aLE, u[:])
	if leCmp(aLE, s.p) >= 0 {
		return Elem256[M]{}, errOutOfRange
	}
	rLE := ciosMul(aLE, s.r2, s.p, s.mInv0)
	var out Elem256[M]
	leToBig(out.v[:], rLE)
	return out, nil
}

// Canonical returns the non-Montgomery representative, in [0, p).
func (e Elem256[M]) Canonical() bigint.U256 {
	s := setup256[M]()
	aLE := make([]uint64, s.n)
	leFromBig(aLE, e.v[:])
	one := make([]uint64, s.n)
	one[0] = 1
	rLE := ciosMul(aLE, one, s.p, s.mInv0)
	var out bigint.U256
	leToBig(out[:], rLE)
	return out
}

// Bytes returns the 32-byte big-endian encoding of the canonical value.
func (e Elem256[M]) Bytes() [32]byte {
	return e.Canonical().ToBEBytes()
}

// IsZero reports whether e is the additive identity.
func (e Elem256[M]) IsZero() bool { return e.v.IsZero() }

// Equal compares two elements by their canonical value. Since the map
// value -> value*R mod p is a bijection, comparing the Montgomery-form
// representatives directly is equivalent and needs no conversion.
func (e Elem256[M]) Equal(o Elem256[M]) bool { return e.v == o.v }

func (e Elem256[M]) Mul(o Elem256[M]) Elem256[M] {
	s := setup256[M]()
	aLE := make([]uint64, s.n)
	bLE := make([]uint64, s.n)
	leFromBig(aLE, e.v[:])
	leFromBig(bLE, o.v[:])
	rLE := ciosMul(aLE, bLE, s.p, s.mInv0)
	var out Elem256[M]
	leToBig(out.v[:], rLE)
	return out
}

func (e Elem256[M]) Square() Elem256[M] { return e.Mul(e) }

func (e Elem256[M]) Add(o Elem256[M]) Elem256[M] {
	p := Prime256[M]()
	sum, carry := e.v.Add(o.v)
	sum = reduceOnce256(sum, carry, p)
	return Elem256[M]{v: sum}
}

func (e Elem256[M]) Sub(o Elem256[M]) Elem256[M] {
	p := Prime256[M]()
	diff, borrow := e.v.Sub(o.v)
	if borrow != 0 {
		diff, _ = diff.Add(p)
	}
	return Elem256[M]{v: diff}
}

func (e Elem256[M]) Neg() Elem256[M] {
	return Zero256[M]().Sub(e)
}

func (e Elem256[M]) Double() Elem256[M] { return e.Add(e) }

func (e Elem256[M]) TimesThree() Elem256[M] { return e.Double().Add(e) }

func (e Elem256[M]) TimesFour() Elem256[M] { return e.Double().Double() }

func (e Elem256[M]) TimesEight() Elem256[M] { return e.Double().Double().Double() }

// Inverse returns the modular inverse of e via Fermat's little theorem
// (e^(p-2) mod p), computed by square-and-multiply over the element's own
// field operations. Returns the zero element if e is zero, matching the
// convention elliptic-curve Jacobian-coordinate code relies on (a zero Z
// coordinate signals the point at infinity and never reaches Inverse in a
// correctly guarded call site).
func (e Elem256[M]) Inverse() Elem256[M] {
	p := Prime256[M]()
	two := bigint.U256{0, 0, 0, 2}
	exp, _ := p.Sub(two)
	result := One256[M]()
	base := e
	for i := exp.BitLen() - 1; i >= 0; i-- {
		result = result.Square()
		if exp.Bit(i) == 1 {
			result = result.Mul(base)
		}
	}
	return result
}

func reduceOnce256(sum bigint.U256, carry uint64, p bigint.U256) bigint.U256 {
	if carry != 0 {
		sum, _ = sum.Sub(p)
		return sum
	}
	if sum.Cmp(p) >= 0 {
		sum, _ = sum.Sub(p)
	}
	return sum
}
