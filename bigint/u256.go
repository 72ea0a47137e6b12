package bigint

import (
	"errors"
	"fmt"
)

// ErrWrongLength is returned by FromBEBytes when the input is not exactly
// the expected byte length for the target width.
var ErrWrongLength = errors.New("bigint: wrong byte length")

// U256 is an unsigned 256-bit integer, stored as four 64-bit limbs with the
// most significant limb first.
type U256 [4]uint64

// ZeroU256 is the additive identity.
var ZeroU256 = U256{}

// OneU256 is the multiplicative identity.
var OneU256 = U256{0, 0, 0, 1}

// FromBEBytes256 decodes a 32-byte big-endian byte string. It returns
// ErrWrongLength if b is not exactly 32 bytes — callers at a wire boundary
// must reject malformed lengths rather than silently pad or truncate.
func FromBEBytes256(b []byte) (U256, error) {
	if len(b) != 32 {
		return U256{}, fmt.Errorf("%w: want 32 bytes, got %d", ErrWrongLength, len(b))
	}
	var u U256
	for i := 0; i < 4; i++ {
		u[i] = beUint64(b[i*8 : i*8+8])
	}
	return u, nil
}

// ToBEBytes encodes u as a 32-byte big-endian byte string.
func (u U256) ToBEBytes() [32]byte {
	var out [32]byte
	for i := 0; i < 4; i++ {
		putBEUint64(out[i*8:i*8+8], u[i])
	}
	return out
}

func (u U256) Limbs() [4]uint64 { return u }

func (u U256) IsZero() bool { return isZeroLimbs(u[:]) }

// Cmp returns -1, 0, or 1 as u<v, u==v, u>v.
func (u U256) Cmp(v U256) int { return cmpLimbs(u[:], v[:]) }

func (u U256) LeadingZeros() int { return leadingZerosLimbs(u[:]) }

// BitLen returns the number of bits required to represent u, with
// BitLen()==0 for the zero value.
func (u U256) BitLen() int { return 256 - u.LeadingZeros() }

// Bit returns bit i (0 = least significant) of u.
func (u U256) Bit(i int) uint64 { return bitLimbs(u[:], i) }

// Add returns u+v and the carry out of the top limb (0 or 1).
func (u U256) Add(v U256) (U256, uint64) {
	var z U256
	c := addLimbs(z[:], u[:], v[:])
	return z, c
}

// Sub returns u-v and the borrow out of the top limb (1 means u<v).
func (u U256) Sub(v U256) (U256, uint64) {
	var z U256
	b := subLimbs(z[:], u[:], v[:])
	return z, b
}

// Double returns 2*u and the overflow bit.
func (u U256) Double() (U256, uint64) {
	var z U256
	c := shlLimbs(z[:], u[:])
	return z, c
}

// Triple returns 3*u (computed as u + 2*u).
func (u U256) Triple() (U256, uint64) {
	d, c1 := u.Double()
	s, c2 := d.Add(u)
	return s, c1 + c2
}

// Quadruple returns 4*u.
func (u U256) Quadruple() (U256, uint64) {
	d1, c1 := u.Double()
	d2, c2 := d1.Double()
	return d2, 2*c1 + c2
}

// EightTimes returns 8*u.
func (u U256) EightTimes() (U256, uint64) {
	q, c1 := u.Quadruple()
	d, c2 := q.Double()
	return d, 2*c1 + c2
}

// Mul returns the full 512-bit product of u and v, split as hi||lo with hi
// holding the most significant 256 bits.
func (u U256) Mul(v U256) (hi, lo U256) {
	var wide [8]uint64
	mulLimbs(wide[:], u[:], v[:])
	copy(hi[:], wide[:4])
	copy(lo[:], wide[4:])
	return hi, lo
}

func beUint64(b []byte) uint64 {
	return uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 | uint64(b[3])<<32 |
		uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7])
}

func putBEUint64(b []byte, v uint64) {
	b[0] = byte(v >> 56)
	b[1] = byte(v >> 48)
	b[2] = byte(v >> 40)
	b[3] = byte(v >> 32)
	b[4] = byte(v >> 24)
	b[5] = byte(v >> 16)
	b[6] = byte(v >> 8)
	b[7] = byte(v)
}
