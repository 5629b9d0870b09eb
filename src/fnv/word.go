package fnv

import (
	"fmt"
	"math/bits"
)

// Word is the numeric capability set the FNV recurrence needs from a hash
// width: wrapping multiplication, XOR, and zero-extension of a single byte.
// Prime and OffsetBasis pin the published per-width constants; AppendBytes
// serializes a value big-endian for the hash.Hash adapters.
//
// U32, U64 and U128 are the only implementations. FNV is defined for no
// other widths, and no signed interpretation exists.
type Word[W any] interface {
	Mul(W) W
	Xor(W) W
	FromByte(byte) W
	Prime() W
	OffsetBasis() W
	AppendBytes(dst []byte) []byte
}

const (
	offset32 uint32 = 0x811c9dc5
	prime32  uint32 = 0x01000193

	offset64 uint64 = 0xcbf29ce484222325
	prime64  uint64 = 0x100000001b3

	offset128Hi uint64 = 0x6c62272e07bb0142
	offset128Lo uint64 = 0x62b821756295c58d
	prime128Hi  uint64 = 0x0000000001000000
	prime128Lo  uint64 = 0x000000000000013b
)

// U32 is the 32-bit hash width.
type U32 uint32

func (x U32) Mul(y U32) U32 { return x * y }

func (x U32) Xor(y U32) U32 { return x ^ y }

func (U32) FromByte(b byte) U32 { return U32(b) }

func (U32) Prime() U32 { return U32(prime32) }

func (U32) OffsetBasis() U32 { return U32(offset32) }

func (x U32) AppendBytes(dst []byte) []byte {
	return append(dst, byte(x>>24), byte(x>>16), byte(x>>8), byte(x))
}

// U64 is the 64-bit hash width.
type U64 uint64

func (x U64) Mul(y U64) U64 { return x * y }

func (x U64) Xor(y U64) U64 { return x ^ y }

func (U64) FromByte(b byte) U64 { return U64(b) }

func (U64) Prime() U64 { return U64(prime64) }

func (U64) OffsetBasis() U64 { return U64(offset64) }

func (x U64) AppendBytes(dst []byte) []byte {
	return append(dst,
		byte(x>>56), byte(x>>48), byte(x>>40), byte(x>>32),
		byte(x>>24), byte(x>>16), byte(x>>8), byte(x),
	)
}

// U128 is the 128-bit hash width. Go has no native 128-bit integer, so a
// value is held as two 64-bit limbs with Hi carrying the most significant
// bits.
type U128 struct {
	Hi, Lo uint64
}

// Mul is the wrapping product x*y mod 2^128. The Hi*Hi cross term only
// contributes bits at 2^128 and above, so it is dropped entirely; the
// remaining partial products wrap in uint64 arithmetic.
func (x U128) Mul(y U128) U128 {
	hi, lo := bits.Mul64(x.Lo, y.Lo)
	hi += x.Hi*y.Lo + x.Lo*y.Hi

	return U128{Hi: hi, Lo: lo}
}

func (x U128) Xor(y U128) U128 { return U128{Hi: x.Hi ^ y.Hi, Lo: x.Lo ^ y.Lo} }

func (U128) FromByte(b byte) U128 { return U128{Lo: uint64(b)} }

func (U128) Prime() U128 { return U128{Hi: prime128Hi, Lo: prime128Lo} }

func (U128) OffsetBasis() U128 { return U128{Hi: offset128Hi, Lo: offset128Lo} }

func (x U128) AppendBytes(dst []byte) []byte {
	dst = U64(x.Hi).AppendBytes(dst)

	return U64(x.Lo).AppendBytes(dst)
}

// String renders the canonical 32-digit hex form, Hi limb first.
func (x U128) String() string {
	return fmt.Sprintf("%016x%016x", x.Hi, x.Lo)
}
