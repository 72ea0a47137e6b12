// Package bigint implements fixed-width, constant-structure unsigned integer
// arithmetic over 256-bit and 384-bit limb arrays.
//
// Every type here has a size known at compile time: there is no variable-
// length backing slice and no heap allocation on the arithmetic hot path,
// unlike math/big.Int. This trades generality for the property the modular
// and elliptic-curve packages built on top of it need most: an add, a
// subtract, or a multiply over a 256-bit or 384-bit value takes the same
// number of instructions regardless of the operands' values.
//
// Limbs are stored most-significant-word first, matching the natural
// left-to-right reading order of a big-endian byte string or a hex literal.
package bigint
