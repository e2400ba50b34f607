// Decoding validates strictly: the input must be a whole number of 8
// character quanta, trailing "=" counts must be ones a padded encoder
// can actually produce, and every non-pad byte must be a Crockford
// symbol. Lowercase letters are accepted by the casefolding entry
// points and rejected by the strict ones; the excluded letters I, L, O
// and U are never accepted.

package croc32

import (
	"errors"
	"unsafe"
)

const (

	// Only these trailing pad character counts are possible for valid
	// padded base32: 0, 1, 3, 4, 6. Others imply bad input.

	validPadchars = uint8((1 << 0) | (1 << 1) | (1 << 3) | (1 << 4) | (1 << 6))
)

var (
	ErrPadding       = errors.New("croc32: incorrect padding")
	ErrInvalidDigit  = errors.New("croc32: non-base32 digit found")
	ErrNonASCIIInput = errors.New("croc32: string input should contain only ASCII characters")
)

func decode(src []byte, tab *[256]byte) ([]byte, error) {
	if len(src)%8 != 0 {
		return nil, ErrPadding
	}

	// Strip trailing pad characters. Their count determines how many
	// bytes of the final quantum are real data.
	m := len(src)
	for m > 0 && src[m-1] == padChar {
		m--
	}
	padchars := len(src) - m
	if padchars > 6 || validPadchars&(uint8(1)<<padchars) == 0 {
		return nil, ErrPadding
	}
	src = src[:m]

	dst := make([]byte, 0, (m+7)/8*5)

	var acc uint64
	for i := 0; i < m; i += 8 {
		quantum := src[i:min(i+8, m)]

		acc = 0
		for _, c := range quantum {
			v := tab[c]
			if v == invalidDigit {
				return nil, ErrInvalidDigit
			}
			acc = acc<<5 | uint64(v)
		}

		dst = append(dst,
			byte(acc>>32), byte(acc>>24), byte(acc>>16), byte(acc>>8), byte(acc))
	}

	if padchars > 0 && len(dst) > 0 {
		// Shift the last accumulator up to where the pad characters
		// would have sat as zero-value symbols, then keep only the
		// real data bytes of the final quantum.
		acc <<= uint(5 * padchars)
		leftover := (43 - 5*padchars) / 8 // 1: 4, 3: 3, 4: 2, 6: 1

		dst = dst[:len(dst)-5]
		for shift := 32; leftover > 0; shift -= 8 {
			dst = append(dst, byte(acc>>uint(shift)))
			leftover--
		}
	}

	return dst, nil
}

// Decode returns the decoded form of src if src is not empty. If src is
// empty nil is returned.
//
// Decoding is case insensitive: lowercase symbols are folded to
// uppercase before lookup. Use DecodeStrict to reject lowercase input.
//
// If src is not properly padded then ErrPadding is returned. If src
// contains a byte outside the alphabet then ErrInvalidDigit is
// returned. No partial result is returned alongside an error.
func Decode(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}

	return decode(src, &foldTab)
}

// DecodeStrict behaves like Decode but does not casefold: lowercase
// symbols fail with ErrInvalidDigit.
func DecodeStrict(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}

	return decode(src, &decodeTab)
}

// DecodeString decodes the ASCII string s with casefolding. A string
// containing non-ASCII bytes fails with ErrNonASCIIInput before any
// other validation.
func DecodeString(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, nil
	}

	if !isASCII(s) {
		return nil, ErrNonASCIIInput
	}

	return decode(unsafe.Slice(unsafe.StringData(s), len(s)), &foldTab)
}

// DecodeStringStrict behaves like DecodeString but does not casefold.
func DecodeStringStrict(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, nil
	}

	if !isASCII(s) {
		return nil, ErrNonASCIIInput
	}

	return decode(unsafe.Slice(unsafe.StringData(s), len(s)), &decodeTab)
}

// AppendDecode returns the decoded form of src appended to dst if src
// is not empty. If src is empty dst is returned as-is.
//
// Decoding is case insensitive, as in Decode. If an error is returned
// dst is returned unchanged.
func AppendDecode(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	decoded, err := decode(src, &foldTab)
	if err != nil {
		return dst, err
	}

	return append(dst, decoded...), nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}

	return true
}
