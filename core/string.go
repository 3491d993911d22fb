package core

import (
	"golang.org/x/text/encoding/charmap"
)

// DecodeLiteral resolves the backslash escapes in a raw literal string
// payload (as captured by Tokenize, balanced parens included) and decodes the
// resulting bytes as Latin-1 text.
//
// Supported escapes: \n \r \t \b \f, \( \) \\, and 1-3 octal digits taken
// mod 256. A backslash followed by anything else yields that byte unchanged
// rather than failing; a trailing backslash at the end of the payload is
// dropped. Latin-1 maps every byte to a code point, so decoding itself
// cannot fail.
func DecodeLiteral(raw []byte) string {
	out := make([]byte, 0, len(raw))

	i := 0
	for i < len(raw) {
		c := raw[i]
		if c != '\\' {
			out = append(out, c)
			i++
			continue
		}

		i++
		if i >= len(raw) {
			break
		}

		switch c = raw[i]; c {
		case 'n':
			out = append(out, '\n')
			i++
		case 'r':
			out = append(out, '\r')
			i++
		case 't':
			out = append(out, '\t')
			i++
		case 'b':
			out = append(out, '\b')
			i++
		case 'f':
			out = append(out, '\f')
			i++
		case '(', ')', '\\':
			out = append(out, c)
			i++
		case '0', '1', '2', '3', '4', '5', '6', '7':
			val := 0
			for n := 0; n < 3 && i < len(raw) && isOctalDigit(raw[i]); n++ {
				val = val*8 + int(raw[i]-'0')
				i++
			}
			out = append(out, byte(val&0xFF))
		default:
			// Lenient fallback: keep the escaped byte as-is.
			out = append(out, c)
			i++
		}
	}

	decoded, _ := charmap.ISO8859_1.NewDecoder().Bytes(out)
	return string(decoded)
}

func isOctalDigit(b byte) bool {
	return b >= '0' && b <= '7'
}
