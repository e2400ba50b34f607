package croc32

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTables(t *testing.T) {
	t.Parallel()

	const (
		chars            = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"
		invalidDecodeVal = byte(invalidDigit)
	)

	is := assert.New(t)

	for i := range 256 {
		c := byte(i)

		strictIdx := int8(strings.IndexByte(chars, c))

		foldIdx := strictIdx
		if c >= 'a' && c <= 'z' {
			foldIdx = int8(strings.IndexByte(chars, c-('a'-'A')))
		}

		if strictIdx == -1 {
			is.Equal(invalidDecodeVal, decodeTab[c])
		} else {
			is.Equal(strictIdx, int8(decodeTab[c]))
			is.Equal(c, encodeTab[strictIdx])
		}

		if foldIdx == -1 {
			is.Equal(invalidDecodeVal, foldTab[c])
		} else {
			is.Equal(foldIdx, int8(foldTab[c]))
		}
	}

	// the excluded letters must not decode in either table
	for _, c := range []byte("ILOUilou") {
		is.Equal(invalidDecodeVal, decodeTab[c])
		is.Equal(invalidDecodeVal, foldTab[c])
	}

	// the pad character is not a digit
	is.Equal(invalidDecodeVal, decodeTab[padChar])
	is.Equal(invalidDecodeVal, foldTab[padChar])
}
