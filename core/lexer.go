package core

import (
	"bytes"
	"regexp"
)

// TokenType classifies a content stream token.
type TokenType int

const (
	TokenNumber   TokenType = iota // 123, -4.5, 6.02e23
	TokenName                      // /F1 (value excludes the slash)
	TokenString                    // (hello) - value is the raw, undecoded payload
	TokenArray                     // [(a) -20 (b)] - value is the raw inner bytes
	TokenOperator                  // Tj, BT, Tm, ...
)

// Token is a single lexical token. For TokenString and TokenArray the Value
// holds raw bytes as they appeared in the stream, escapes and nested
// delimiters included; decoding is left to DecodeLiteral.
type Token struct {
	Type  TokenType
	Value []byte
	Pos   int // byte offset of the token in the input
}

// numberPattern matches the PDF numeric literal grammar: optional sign,
// digits with an optional decimal point, optional exponent.
var numberPattern = regexp.MustCompile(`^[+-]?(?:\d+\.\d*|\d*\.\d+|\d+)(?:[eE][+-]?\d+)?$`)

// Tokenize scans a decompressed content stream buffer and returns its tokens
// in order. The scan never fails: bytes it cannot classify are skipped, and
// constructs running past the end of the buffer yield whatever was consumed.
func Tokenize(data []byte) []Token {
	var tokens []Token

	i := 0
	for i < len(data) {
		c := data[i]

		if isWhitespace(c) {
			i++
			continue
		}

		switch c {
		case '%':
			// Comment to end of line.
			j := bytes.IndexByte(data[i:], '\n')
			if j < 0 {
				return tokens
			}
			i += j + 1

		case '(':
			raw, next := scanBalanced(data, i+1, '(', ')')
			tokens = append(tokens, Token{Type: TokenString, Value: raw, Pos: i})
			i = next

		case '[':
			raw, next := scanBalanced(data, i+1, '[', ']')
			tokens = append(tokens, Token{Type: TokenArray, Value: raw, Pos: i})
			i = next

		case '/':
			j := i + 1
			for j < len(data) && !isWhitespace(data[j]) && !isDelimiter(data[j]) {
				j++
			}
			tokens = append(tokens, Token{Type: TokenName, Value: data[i+1 : j], Pos: i})
			i = j

		default:
			j := i
			for j < len(data) && !isWhitespace(data[j]) && !isDelimiter(data[j]) {
				j++
			}
			if j == i {
				// Stray delimiter with no construct of its own (>, }, a lone
				// closing bracket). Skip it so the scan always advances.
				i++
				continue
			}
			word := data[i:j]
			if numberPattern.Match(word) {
				tokens = append(tokens, Token{Type: TokenNumber, Value: word, Pos: i})
			} else {
				tokens = append(tokens, Token{Type: TokenOperator, Value: word, Pos: i})
			}
			i = j
		}
	}

	return tokens
}

// scanBalanced consumes a delimited construct starting just after its opening
// byte, counting nested open/close pairs. A backslash always consumes the
// following byte verbatim, so escaped delimiters never change the depth.
// Returns the raw inner bytes (outer delimiters excluded) and the index just
// past the closing byte, or len(data) when the construct is unterminated.
func scanBalanced(data []byte, start int, opening, closing byte) ([]byte, int) {
	var buf bytes.Buffer
	depth := 1

	i := start
	for i < len(data) {
		c := data[i]

		if c == '\\' {
			buf.WriteByte(c)
			i++
			if i < len(data) {
				buf.WriteByte(data[i])
				i++
			}
			continue
		}

		switch c {
		case opening:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return buf.Bytes(), i + 1
			}
		}

		buf.WriteByte(c)
		i++
	}

	return buf.Bytes(), i
}

// isWhitespace reports whether b is a PDF whitespace character:
// space, tab, LF, CR, FF, null.
func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == 0
}

// isDelimiter reports whether b is a PDF delimiter character.
func isDelimiter(b byte) bool {
	return b == '(' || b == ')' || b == '<' || b == '>' ||
		b == '[' || b == ']' || b == '{' || b == '}' ||
		b == '/' || b == '%'
}
