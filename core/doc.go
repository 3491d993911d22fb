// Package core implements the lexical layer shared by the extraction
// pipeline: a byte-oriented tokenizer for PDF content streams and a decoder
// for PDF literal strings.
//
// The tokenizer is deliberately shallow. It classifies tokens (numbers,
// names, literal strings, arrays, operators) but leaves string and array
// payloads as raw bytes; decoding happens later, only for the spans the
// interpreter actually shows. Malformed input never produces an error:
// unterminated strings, arrays and comments end the scan cleanly with
// whatever tokens were already produced.
package core
