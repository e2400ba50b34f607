// A case insensitive Crockford style base32 implementation with "="
// padding.

package croc32

const (
	invalidDigit = 0xFF
	padChar      = '='
)

//
// encode and decode tables are using the Crockford grammar; decoding is
// strict about case unless the fold table is selected. The excluded
// letters I, L, O and U are invalid in both reverse tables.
//

var encodeTab, decodeTab, foldTab = func() ([32]byte, [256]byte, [256]byte) {
	const (
		chars   = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"
		upToLow = ('a' - 'A')
	)

	var enc [32]byte
	var dec, fold [256]byte

	for i := range dec {
		dec[i] = invalidDigit
		fold[i] = invalidDigit
	}

	for i := range chars {
		i := byte(i)
		v := chars[i]

		enc[i] = v
		dec[v] = i
		fold[v] = i
		if v > '9' {
			fold[v+upToLow] = i
		}
	}

	return enc, dec, fold
}()
