package bigint

import "math/bits"

// The helpers in this file operate on most-significant-limb-first slices of
// equal length. le maps a little-endian (least-significant-first) index k
// into the actual slice index, so the carry/borrow-propagation loops below
// can be written in the natural least-to-most-significant direction while
// the public U256/U384 types keep their most-significant-first layout.
func le(x []uint64, k int) uint64 {
	return x[len(x)-1-k]
}

func setLE(x []uint64, k int, v uint64) {
	x[len(x)-1-k] = v
}

// addLimbs computes z = x + y over n-limb operands and returns the carry
// out of the top limb (0 or 1).
func addLimbs(z, x, y []uint64) uint64 {
	n := len(x)
	var carry uint64
	for k := 0; k < n; k++ {
		sum, c := bits.Add64(le(x, k), le(y, k), carry)
		setLE(z, k, sum)
		carry = c
	}
	return carry
}

// subLimbs computes z = x - y over n-limb operands and returns the borrow
// out of the top limb (0 or 1); a borrow of 1 means x < y.
func subLimbs(z, x, y []uint64) uint64 {
	n := len(x)
	var borrow uint64
	for k := 0; k < n; k++ {
		diff, b := bits.Sub64(le(x, k), le(y, k), borrow)
		setLE(z, k, diff)
		borrow = b
	}
	return borrow
}

// cmpLimbs returns -1, 0, or 1 as x<y, x==y, x>y.
func cmpLimbs(x, y []uint64) int {
	for i := 0; i < len(x); i++ {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func isZeroLimbs(x []uint64) bool {
	for _, w := range x {
		if w != 0 {
			return false
		}
	}
	return true
}

func leadingZerosLimbs(x []uint64) int {
	n := 0
	for i := 0; i < len(x); i++ {
		if x[i] == 0 {
			n += 64
			continue
		}
		n += bits.LeadingZeros64(x[i])
		break
	}
	return n
}

// bitLimbs returns bit k (0 = least significant) of x.
func bitLimbs(x []uint64, k int) uint64 {
	limb := le(x, k/64)
	return (limb >> uint(k%64)) & 1
}

// shlLimbs shifts z = x << 1 and returns the bit shifted out of the top.
func shlLimbs(z, x []uint64) uint64 {
	n := len(x)
	var carry uint64
	for k := 0; k < n; k++ {
		w := le(x, k)
		setLE(z, k, (w<<1)|carry)
		carry = w >> 63
	}
	return carry
}

// mulLimbs computes the full 2n-limb product of two n-limb operands x, y
// into out (len(out) == 2*len(x)), all in most-significant-first order.
// Schoolbook column-wise multiply-accumulate, O(n^2) limb multiplies.
func mulLimbs(out, x, y []uint64) {
	n := len(x)
	for i := range out {
		out[i] = 0
	}
	for i := 0; i < n; i++ {
		var carry uint64
		xi := le(x, i)
		for j := 0; j < n; j++ {
			hi, lo := bits.Mul64(xi, le(y, j))
			sum, c1 := bits.Add64(le(out, i+j), lo, 0)
			sum, c2 := bits.Add64(sum, carry, 0)
			setLE(out, i+j, sum)
			carry = hi + c1 + c2
		}
		// Propagate the final carry into out[i+n] and beyond: that slot may
		// already hold a value from a previous i's carry-out.
		for k := i + n; k < len(out); k++ {
			sum, c := bits.Add64(le(out, k), carry, 0)
			setLE(out, k, sum)
			carry = c
		}
	}
}
