package text

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/finforge/ledgerline/contentstream"
	"github.com/finforge/ledgerline/core"
)

// Fragment is one span of decoded text tagged with the text cursor position
// at the moment it was shown. Coordinates are PDF user-space units, taken
// before any glyph advance. Fragments are immutable once emitted.
type Fragment struct {
	X, Y float64
	Text string
}

// operandKind tags an entry on the interpreter's operand stack.
type operandKind int

const (
	opNumber operandKind = iota
	opName
	opString
	opArray
)

// operand is a tagged stack entry. Numbers carry num; names, strings and
// arrays carry their raw byte payload.
type operand struct {
	kind operandKind
	num  float64
	raw  []byte
}

// Interpreter tracks the 2D text cursor across a token stream and collects
// the fragments shown inside text blocks. A fresh Interpreter is cheap;
// callers create one per content stream.
type Interpreter struct {
	inText bool
	x, y   float64
	stack  []operand

	fragments []Fragment
}

// NewInterpreter returns an interpreter with the cursor at the origin,
// outside any text block.
func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// Run replays the token stream and returns the fragments it produced.
// The cursor is retained across calls, matching the PDF convention that BT
// does not reset the text matrix until the first Tm/Td inside the block.
func (in *Interpreter) Run(tokens []core.Token) []Fragment {
	for _, tok := range tokens {
		if tok.Type == core.TokenOperator {
			in.apply(string(tok.Value))
			continue
		}
		in.push(tok)
	}
	return in.fragments
}

// push places a non-operator token's typed value on the operand stack.
func (in *Interpreter) push(tok core.Token) {
	switch tok.Type {
	case core.TokenNumber:
		// The token already matched the numeric grammar, so parse errors
		// cannot happen here; a zero value is a safe fallback regardless.
		v, _ := strconv.ParseFloat(string(tok.Value), 64)
		in.stack = append(in.stack, operand{kind: opNumber, num: v})
	case core.TokenName:
		in.stack = append(in.stack, operand{kind: opName, raw: tok.Value})
	case core.TokenString:
		in.stack = append(in.stack, operand{kind: opString, raw: tok.Value})
	case core.TokenArray:
		in.stack = append(in.stack, operand{kind: opArray, raw: tok.Value})
	}
}

// apply executes one operator. Every operator consumes (clears) the operand
// stack, including ones this interpreter does not understand.
func (in *Interpreter) apply(op string) {
	defer func() { in.stack = in.stack[:0] }()

	switch op {
	case "BT":
		in.inText = true
		return
	case "ET":
		in.inText = false
		return
	}

	if !in.inText {
		return
	}

	switch op {
	case "Tm":
		// Only the translation components matter for ordering.
		if x, y, ok := in.lastTwoNumbers(6); ok {
			in.x = x
			in.y = y
		}
	case "Td":
		if dx, dy, ok := in.lastTwoNumbers(2); ok {
			in.x += dx
			in.y += dy
		}
	case "Tj":
		if top, ok := in.top(opString); ok {
			in.emit(core.DecodeLiteral(top.raw))
		}
	case "TJ":
		if top, ok := in.top(opArray); ok {
			// Kerning numbers between the strings are ignored: the small x
			// drift they represent is within the layout stage's tolerance.
			for _, span := range literalSpans(top.raw) {
				in.emit(core.DecodeLiteral(span))
			}
		}
	}
}

// lastTwoNumbers returns the values of the two topmost stack entries when
// the stack holds at least want entries and both are numbers.
func (in *Interpreter) lastTwoNumbers(want int) (a, b float64, ok bool) {
	if len(in.stack) < want {
		return 0, 0, false
	}
	s1 := in.stack[len(in.stack)-2]
	s2 := in.stack[len(in.stack)-1]
	if s1.kind != opNumber || s2.kind != opNumber {
		return 0, 0, false
	}
	return s1.num, s2.num, true
}

// top returns the topmost stack entry if it has the wanted kind.
func (in *Interpreter) top(kind operandKind) (operand, bool) {
	if len(in.stack) == 0 {
		return operand{}, false
	}
	t := in.stack[len(in.stack)-1]
	if t.kind != kind {
		return operand{}, false
	}
	return t, true
}

// emit records a fragment at the current cursor. Whitespace-only text is
// dropped.
func (in *Interpreter) emit(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	in.fragments = append(in.fragments, Fragment{X: in.x, Y: in.y, Text: text})
}

// literalSpans extracts the raw payload of every parenthesized literal
// string inside a raw array payload, using the same balance and
// backslash-skip rules as the tokenizer. TJ arrays only ever hold literal
// strings and kerning numbers, so re-tokenizing the payload is sufficient.
func literalSpans(raw []byte) [][]byte {
	var spans [][]byte
	for _, tok := range core.Tokenize(raw) {
		if tok.Type == core.TokenString {
			spans = append(spans, tok.Value)
		}
	}
	return spans
}

// ExtractFragments runs the full low-level pipeline over raw PDF bytes:
// locate and inflate content streams, tokenize each, and interpret the text
// positioning operators. Streams without a BT operator are skipped outright.
// Fragments appear in stream order, then in show order within each stream.
func ExtractFragments(pdf []byte) []Fragment {
	var fragments []Fragment
	for _, data := range contentstream.FindStreams(pdf) {
		if !bytes.Contains(data, []byte("BT")) {
			continue
		}
		fragments = append(fragments, NewInterpreter().Run(core.Tokenize(data))...)
	}
	return fragments
}
