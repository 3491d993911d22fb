package core

import (
	"bytes"
	"testing"
)

// TestTokenizeOperatorWithNumbers tests the common operand-then-operator shape.
func TestTokenizeOperatorWithNumbers(t *testing.T) {
	tokens := Tokenize([]byte("1 0 0 1 50 700 Tm"))

	if len(tokens) != 7 {
		t.Fatalf("expected 7 tokens, got %d", len(tokens))
	}

	for i := 0; i < 6; i++ {
		if tokens[i].Type != TokenNumber {
			t.Errorf("token %d: expected TokenNumber, got %v", i, tokens[i].Type)
		}
	}

	last := tokens[6]
	if last.Type != TokenOperator {
		t.Fatalf("expected TokenOperator, got %v", last.Type)
	}
	if string(last.Value) != "Tm" {
		t.Errorf("expected operator Tm, got %q", last.Value)
	}
}

// TestTokenizeNumberGrammar checks classification of numeric vs bare tokens.
func TestTokenizeNumberGrammar(t *testing.T) {
	tests := []struct {
		input  string
		number bool
	}{
		{"123", true},
		{"-42", true},
		{"+7", true},
		{"3.14", true},
		{".5", true},
		{"2.", true},
		{"6.02e23", true},
		{"1E-9", true},
		{"Tj", false},
		{"BT", false},
		{"1.2.3", false},
		{"-", false},
	}

	for _, tt := range tests {
		tokens := Tokenize([]byte(tt.input))
		if len(tokens) != 1 {
			t.Fatalf("%q: expected 1 token, got %d", tt.input, len(tokens))
		}

		want := TokenOperator
		if tt.number {
			want = TokenNumber
		}
		if tokens[0].Type != want {
			t.Errorf("%q: expected type %v, got %v", tt.input, want, tokens[0].Type)
		}
	}
}

func TestTokenizeLiteralString(t *testing.T) {
	tokens := Tokenize([]byte("(Hello World) Tj"))

	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	if tokens[0].Type != TokenString {
		t.Fatalf("expected TokenString, got %v", tokens[0].Type)
	}
	if string(tokens[0].Value) != "Hello World" {
		t.Errorf("expected raw payload %q, got %q", "Hello World", tokens[0].Value)
	}
}

// TestTokenizeNestedParens verifies that unescaped nested parentheses are
// kept inside a single string token via depth counting.
func TestTokenizeNestedParens(t *testing.T) {
	tokens := Tokenize([]byte("(a (nested) b)"))

	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d", len(tokens))
	}
	if string(tokens[0].Value) != "a (nested) b" {
		t.Errorf("expected %q, got %q", "a (nested) b", tokens[0].Value)
	}
}

// TestTokenizeEscapedParens verifies that escaped parens do not alter depth:
// the raw payload keeps the backslashes for the decoder to resolve.
func TestTokenizeEscapedParens(t *testing.T) {
	tokens := Tokenize([]byte(`(a\(b\)c) (next)`))

	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	if string(tokens[0].Value) != `a\(b\)c` {
		t.Errorf("expected %q, got %q", `a\(b\)c`, tokens[0].Value)
	}
	if string(tokens[1].Value) != "next" {
		t.Errorf("expected %q, got %q", "next", tokens[1].Value)
	}
}

func TestTokenizeArray(t *testing.T) {
	tokens := Tokenize([]byte("[(He) -20 (llo)] TJ"))

	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	if tokens[0].Type != TokenArray {
		t.Fatalf("expected TokenArray, got %v", tokens[0].Type)
	}
	if string(tokens[0].Value) != "(He) -20 (llo)" {
		t.Errorf("unexpected array payload %q", tokens[0].Value)
	}
	if tokens[1].Type != TokenOperator || string(tokens[1].Value) != "TJ" {
		t.Errorf("expected TJ operator, got %v %q", tokens[1].Type, tokens[1].Value)
	}
}

func TestTokenizeName(t *testing.T) {
	tokens := Tokenize([]byte("/F1 12 Tf"))

	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(tokens))
	}
	if tokens[0].Type != TokenName {
		t.Fatalf("expected TokenName, got %v", tokens[0].Type)
	}
	if string(tokens[0].Value) != "F1" {
		t.Errorf("expected name F1, got %q", tokens[0].Value)
	}
}

func TestTokenizeNameEndsAtDelimiter(t *testing.T) {
	tokens := Tokenize([]byte("/F1(text)"))

	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	if string(tokens[0].Value) != "F1" {
		t.Errorf("expected name F1, got %q", tokens[0].Value)
	}
	if tokens[1].Type != TokenString {
		t.Errorf("expected TokenString after name, got %v", tokens[1].Type)
	}
}

func TestTokenizeComment(t *testing.T) {
	tokens := Tokenize([]byte("% a comment\nBT"))

	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d", len(tokens))
	}
	if string(tokens[0].Value) != "BT" {
		t.Errorf("expected BT, got %q", tokens[0].Value)
	}
}

// TestTokenizeUnterminated makes sure truncated constructs end the scan
// cleanly instead of failing.
func TestTokenizeUnterminated(t *testing.T) {
	tests := []struct {
		name  string
		input string
		count int
	}{
		{"string", "BT (never closed", 2},
		{"array", "ET [(a) 1", 2},
		{"comment", "Tj % trailing", 1},
		{"escape at end", `(abc\`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize([]byte(tt.input))
			if len(tokens) != tt.count {
				t.Fatalf("expected %d tokens, got %d", tt.count, len(tokens))
			}
		})
	}
}

func TestTokenizeStrayDelimiters(t *testing.T) {
	// Hex strings and braces are not part of the content this tokenizer
	// handles; their delimiter bytes must be skipped without stalling.
	tokens := Tokenize([]byte("<48656C> { } BT"))

	var ops [][]byte
	for _, tok := range tokens {
		if tok.Type == TokenOperator {
			ops = append(ops, tok.Value)
		}
	}
	if len(ops) == 0 || !bytes.Equal(ops[len(ops)-1], []byte("BT")) {
		t.Errorf("expected scan to reach BT, got tokens %v", tokens)
	}
}

func TestTokenizeWhitespaceVariants(t *testing.T) {
	tokens := Tokenize([]byte("BT\x00\f\r\n\tET"))

	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	if string(tokens[0].Value) != "BT" || string(tokens[1].Value) != "ET" {
		t.Errorf("unexpected tokens %q %q", tokens[0].Value, tokens[1].Value)
	}
}
