package bigint

import "fmt"

// U384 is an unsigned 384-bit integer, stored as six 64-bit limbs with the
// most significant limb first.
type U384 [6]uint64

var ZeroU384 = U384{}
var OneU384 = U384{0, 0, 0, 0, 0, 1}

// FromBEBytes384 decodes a 48-byte big-endian byte string.
func FromBEBytes384(b []byte) (U384, error) {
	if len(b) != 48 {
		return U384{}, fmt.Errorf("%w: want 48 bytes, got %d", ErrWrongLength, len(b))
	}
	var u U384
	for i := 0; i < 6; i++ {
		u[i] = beUint64(b[i*8 : i*8+8])
	}
	return u, nil
}

func (u U384) ToBEBytes() [48]byte {
	var out [48]byte
	for i := 0; i < 6; i++ {
		putBEUint64(out[i*8:i*8+8], u[i])
	}
	return out
}

func (u U384) Limbs() [6]uint64 { return u }

func (u U384) IsZero() bool { return isZeroLimbs(u[:]) }

func (u U384) Cmp(v U384) int { return cmpLimbs(u[:], v[:]) }

func (u U384) LeadingZeros() int { return leadingZerosLimbs(u[:]) }

func (u U384) BitLen() int { return 384 - u.LeadingZeros() }

func (u U384) Bit(i int) uint64 { return bitLimbs(u[:], i) }

func (u U384) Add(v U384) (U384, uint64) {
	var z U384
	c := addLimbs(z[:], u[:], v[:])
	return z, c
}

func (u U384) Sub(v U384) (U384, uint64) {
	var z U384
	b := subLimbs(z[:], u[:], v[:])
	return z, b
}

func (u U384) Double() (U384, uint64) {
	var z U384
	c := shlLimbs(z[:], u[:])
	return z, c
}

func (u U384) Triple() (U384, uint64) {
	d, c1 := u.Double()
	s, c2 := d.Add(u)
	return s, c1 + c2
}

func (u U384) Quadruple() (U384, uint64) {
	d1, c1 := u.Double()
	d2, c2 := d1.Double()
	return d2, 2*c1 + c2
}

func (u U384) EightTimes() (U384, uint64) {
	q, c1 := u.Quadruple()
	d, c2 := q.Double()
	return d, 2*c1 + c2
}

// Mul returns the full 768-bit product of u and v, split as hi||lo with hi
// holding the most significant 384 bits.
func (u U384) Mul(v U384) (hi, lo U384) {
	var wide [12]uint64
	mulLimbs(wide[:], u[:], v[:])
	copy(hi[:], wide[:6])
	copy(lo[:], wide[6:])
	return hi, lo
}
