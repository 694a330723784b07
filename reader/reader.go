// Package reader consumes a scanner's lexeme stream and hands out
// semantic tokens: atmosphere is skipped, the parts of a string
// literal are folded back into one token, and every token carries the
// line and column it started at. It builds no syntax trees; that is
// the job of whatever sits on top of it.
package reader

import (
	"fmt"

	"github.com/heronlang/heron/scanner"
)

// Token represents a semantic lexical unit with its source position.
// Text aliases the buffer the Reader was created over.
type Token struct {
	kind scanner.LexemeKind
	text []byte

	line int
	col  int

	terminated bool
}

// Kind returns the classification of the token. A folded string
// literal reports the kind of its opening quote.
func (t Token) Kind() scanner.LexemeKind {
	return t.kind
}

// Text returns the raw bytes of the token. For a folded string
// literal this spans from the opening quote through the closing quote
// (or through end-of-input when the string is unterminated).
func (t Token) Text() []byte {
	return t.text
}

// Pos returns the line (1-based) and byte column (0-based) the token
// starts at.
func (t Token) Pos() (int, int) {
	return t.line, t.col
}

// Is returns true if the token matches the given kind
func (t Token) Is(kind scanner.LexemeKind) bool {
	return t.kind == kind
}

// Terminated reports whether a string token found its closing quote.
// It is true for every non-string token.
func (t Token) Terminated() bool {
	return t.terminated
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d %d])", t.kind, t.text, t.line, t.col)
}

// Reader is a pull cursor over the semantic tokens of a source
// buffer. Like the scanner underneath it, a Reader is not
// restartable.
type Reader struct {
	sc  *scanner.Scanner
	src []byte

	off  int
	line int
	col  int

	peeked *Token
}

// New creates a Reader over src.
func New(src []byte) *Reader {
	return &Reader{
		sc:   scanner.New(src),
		src:  src,
		line: 1,
	}
}

// Next returns the next semantic token, or false when the source is
// exhausted.
func (r *Reader) Next() (Token, bool) {
	if r.peeked != nil {
		tok := *r.peeked
		r.peeked = nil
		return tok, true
	}
	return r.read()
}

// Peek returns the token the next call to Next will return, without
// consuming it.
func (r *Reader) Peek() (Token, bool) {
	if r.peeked == nil {
		tok, ok := r.read()
		if !ok {
			return Token{}, false
		}
		r.peeked = &tok
	}
	return *r.peeked, true
}

// advance applies one lexeme's worth of position bookkeeping.
func (r *Reader) advance(lex scanner.Lexeme) {
	r.off += lex.Len()

	switch lex.Kind() {
	case scanner.KindNewlineLf, scanner.KindNewlineCr, scanner.KindNewlineCrlf:
		r.line++
		r.col = 0
	default:
		r.col += lex.Len()
	}
}

func (r *Reader) read() (Token, bool) {
	for r.sc.Next() {
		lex := r.sc.Lexeme()

		if lex.Kind().Atmosphere() {
			r.advance(lex)
			continue
		}

		line, col := r.line, r.col
		start := r.off
		r.advance(lex)

		if lex.Is(scanner.KindLString) {
			return r.foldString(start, line, col), true
		}

		return Token{
			kind:       lex.Kind(),
			text:       lex.Text(),
			line:       line,
			col:        col,
			terminated: true,
		}, true
	}

	return Token{}, false
}

// foldString merges the lexemes of a string literal's body into one
// token spanning the whole literal. Newlines inside the body still
// count toward the position state.
func (r *Reader) foldString(start, line, col int) Token {
	terminated := false

	for r.sc.Next() {
		lex := r.sc.Lexeme()
		r.advance(lex)

		if lex.Is(scanner.KindRString) {
			terminated = true
			break
		}
	}

	return Token{
		kind:       scanner.KindLString,
		text:       r.src[start:r.off],
		line:       line,
		col:        col,
		terminated: terminated,
	}
}
