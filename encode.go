package croc32

import (
	"slices"
	"unsafe"
)

// padLens maps the byte count of a final partial quantum to the number
// of trailing pad characters in its 8 character encoded form.
var padLens = [5]int{0, 6, 4, 3, 1}

// EncodedLength returns the number of bytes required to encode n bytes,
// pad characters included. It returns -1 if the input byte length
// cannot be encoded properly.
//
// If the input is zero, zero will be returned. Remember that
// UnsafeEncode requires the src argument to have a length greater than
// zero.
func EncodedLength(n int) int {
	if n <= 0 {
		if n == 0 {
			return 0
		}
		return -1
	}

	result := encodedLenExpression(n)
	if result <= n {
		return -1
	}

	return result
}

func encodedLenExpression(n int) int {
	return (n/5)*8 + ((n%5+4)/5)*8
}

func encodedLen(n int) int {
	result := encodedLenExpression(n)
	if result <= n {
		panic("croc32: invalid encode source length")
	}

	return result
}

func encode(dst []byte, src []byte) {
	n := len(src)

	si, di := 0, 0
	for range n / 5 {
		// 5 bytes as one 40-bit big-endian quantum, split into
		// eight 5-bit symbol indexes, most significant first.
		acc := uint64(src[si])<<32 |
			uint64(src[si+1])<<24 |
			uint64(src[si+2])<<16 |
			uint64(src[si+3])<<8 |
			uint64(src[si+4])

		dst[di] = encodeTab[acc>>35&31]
		dst[di+1] = encodeTab[acc>>30&31]
		dst[di+2] = encodeTab[acc>>25&31]
		dst[di+3] = encodeTab[acc>>20&31]
		dst[di+4] = encodeTab[acc>>15&31]
		dst[di+5] = encodeTab[acc>>10&31]
		dst[di+6] = encodeTab[acc>>5&31]
		dst[di+7] = encodeTab[acc&31]

		si += 5
		di += 8
	}

	// Tail: zero-fill the final quantum for the bit math, then
	// overwrite the unused symbol positions with pad characters.
	leftover := n % 5
	if leftover == 0 {
		return
	}

	var acc uint64
	for _, b := range src[si:] {
		acc = acc<<8 | uint64(b)
	}
	acc <<= uint(8 * (5 - leftover))

	for shift := 35; shift >= 0; shift -= 5 {
		dst[di] = encodeTab[acc>>uint(shift)&31]
		di++
	}

	for i := di - padLens[leftover]; i < di; i++ {
		dst[i] = padChar
	}
}

// UnsafeEncode fills dst with the encoded form of src.
//
// It should generally only be used when working with pre-validated
// sizes of data like in the case of data types with known byte-lengths.
//
// This function panics if the source is empty or if the destination
// does not have enough space in the slice for the encoded form of src.
//
// Knowing the length of the slice now occupied by the encoded form of
// src is the responsibility of the caller. It can easily be computed by
// the expression ` (n/5)*8 + ((n%5+4)/5)*8 ` where n is the length of
// src.
//
// invariants:
//
// - len(src) > 0
//
// - len(dst) >= encodedLen(len(src))
func UnsafeEncode(dst []byte, src []byte) {
	// guard statements forcing panics rather than letting next call
	// lead to undefined behaviors

	if n := encodedLen(len(src)); len(dst) < n {
		panic("croc32: encode destination too short")
	}

	encode(dst, src)
}

// Encode returns nil if src is empty, otherwise it returns the padded
// encoded form of src.
func Encode(src []byte) []byte {
	n := len(src)
	if n == 0 {
		return nil
	}

	n = encodedLen(n)
	dst := make([]byte, n)

	encode(dst, src)

	return dst
}

// EncodeString returns "" if src is empty, otherwise it returns the
// padded encoded form of src.
func EncodeString(src string) string {
	n := len(src)
	if n == 0 {
		return ""
	}

	n = encodedLen(n)
	dst := make([]byte, n)

	encode(dst, unsafe.Slice(unsafe.StringData(src), len(src)))

	return string(dst)
}

// AppendEncode returns the encoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
func AppendEncode(dst, src []byte) []byte {
	n := len(src)
	if n == 0 {
		return dst
	}

	n = encodedLen(n)
	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	encode(dst[orig:], src)

	return dst
}

// AppendEncodeString returns the encoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
func AppendEncodeString(dst []byte, src string) []byte {
	n := len(src)
	if n == 0 {
		return dst
	}

	n = encodedLen(n)
	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	encode(dst[orig:], unsafe.Slice(unsafe.StringData(src), len(src)))

	return dst
}
