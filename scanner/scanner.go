// Package scanner turns raw source text into a stream of classified
// lexemes. Scanning is byte-oriented: every lexeme's text is a
// sub-slice of the source buffer, concatenating all lexemes in order
// reproduces the buffer exactly, and no input can make the scanner
// fail. Malformed spans come back as their own lexeme kinds.
package scanner

type scanMode uint8

const (
	modeRegular scanMode = iota
	modeInString
)

func isNewlineStart(b byte) bool {
	return b == '\r' || b == '\n'
}

func isAtmosphereStart(b byte) bool {
	switch b {
	case ' ', '\t', ';':
		return true
	}
	return isNewlineStart(b)
}

func isDelimiter(b byte) bool {
	switch b {
	case '(', ')', '[', ']', '{', '}', '"':
		return true
	}
	return isAtmosphereStart(b)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Scanner produces the lexemes of a source buffer one at a time. The
// buffer is borrowed for the Scanner's lifetime and must not be
// mutated while scanning. A Scanner is not restartable; create a
// fresh one to rescan.
type Scanner struct {
	src  []byte
	pos  int
	mode scanMode

	lexeme Lexeme
}

// New creates a Scanner over src. An empty buffer is valid and yields
// no lexemes.
func New(src []byte) *Scanner {
	return &Scanner{
		src: src,
	}
}

// Next advances the Scanner to the next lexeme. It returns false once
// the whole buffer has been consumed.
func (s *Scanner) Next() bool {
	if s.pos >= len(s.src) {
		return false
	}

	start := s.pos

	var kind LexemeKind
	var end int

	if s.mode == modeInString {
		kind, end = s.scanInString(start)
	} else {
		kind, end = s.scanRegular(start)
	}

	s.lexeme = Lexeme{
		kind: kind,
		text: s.src[start:end],
	}
	s.pos = end

	return true
}

// Lexeme returns the lexeme the last successful call to Next stopped
// on.
func (s *Scanner) Lexeme() Lexeme {
	return s.lexeme
}

// Remaining returns the unscanned suffix of the source buffer.
func (s *Scanner) Remaining() []byte {
	return s.src[s.pos:]
}

// scanRegular classifies the lexeme starting at src[i] in regular
// mode and returns its kind along with the index one past its last
// byte.
func (s *Scanner) scanRegular(i int) (LexemeKind, int) {
	b := s.src[i]
	i++

	switch b {
	case ' ':
		return KindWhitespace, scanRun(s.src, i, ' ')
	case '\t':
		return KindTab, scanRun(s.src, i, '\t')
	case '\r':
		return scanCr(s.src, i)
	case '\n':
		return KindNewlineLf, i
	case ';':
		return KindComment, scanComment(s.src, i)
	case '(':
		return KindLParen, i
	case ')':
		return KindRParen, i
	case '[':
		return KindLBracket, i
	case ']':
		return KindRBracket, i
	case '{':
		return KindLBrace, i
	case '}':
		return KindRBrace, i
	case '"':
		s.mode = modeInString
		return KindLString, i
	case '+', '-':
		return scanSign(s.src, i)
	case '#':
		return scanNumberSign(s.src, i)
	}

	if isDigit(b) {
		return scanNumber(s.src, i)
	}

	return scanIdentifier(s.src, i)
}

// scanInString classifies the lexeme starting at src[i] inside a
// string literal's body.
func (s *Scanner) scanInString(i int) (LexemeKind, int) {
	switch s.src[i] {
	case '"':
		s.mode = modeRegular
		return KindRString, i + 1
	case '\r':
		return scanCr(s.src, i+1)
	case '\n':
		return KindNewlineLf, i + 1
	}

	return KindStringContent, scanStringContent(s.src, i)
}

// scanRun consumes the run of bytes equal to b starting at src[i].
func scanRun(src []byte, i int, b byte) int {
	for i < len(src) && src[i] == b {
		i++
	}
	return i
}

// scanCr decides between a lone carriage return and a CRLF pair. i
// points just past the '\r'.
func scanCr(src []byte, i int) (LexemeKind, int) {
	if i < len(src) && src[i] == '\n' {
		return KindNewlineCrlf, i + 1
	}
	return KindNewlineCr, i
}

// scanComment consumes everything up to (not including) the next
// newline byte.
func scanComment(src []byte, i int) int {
	for i < len(src) && !isNewlineStart(src[i]) {
		i++
	}
	return i
}

// advanceToDelimiter moves i forward until it sits on a delimiter
// byte or past the end of the buffer.
func advanceToDelimiter(src []byte, i int) int {
	for i < len(src) && !isDelimiter(src[i]) {
		i++
	}
	return i
}

func scanIdentifier(src []byte, i int) (LexemeKind, int) {
	return KindIdentifier, advanceToDelimiter(src, i)
}

// scanNumber consumes a digit run starting at src[i]. A trailing dot
// hands over to scanFloat; any other non-delimiter byte collapses the
// whole span into an identifier.
func scanNumber(src []byte, i int) (LexemeKind, int) {
	for i < len(src) && isDigit(src[i]) {
		i++
	}

	if i >= len(src) || isDelimiter(src[i]) {
		return KindIntLit, i
	}

	if src[i] == '.' {
		return scanFloat(src, i+1)
	}

	return scanIdentifier(src, i)
}

// scanFloat consumes the digits after the decimal point. A
// non-digit, non-delimiter byte collapses the span into an
// identifier; "0." followed by a delimiter is still a float.
func scanFloat(src []byte, i int) (LexemeKind, int) {
	for i < len(src) && isDigit(src[i]) {
		i++
	}

	if i >= len(src) || isDelimiter(src[i]) {
		return KindFloatLit, i
	}

	return scanIdentifier(src, i)
}

// scanSign disambiguates a leading '+' or '-'. i points just past the
// sign: a digit makes it a number, a delimiter or end-of-input makes
// the sign itself an identifier, anything else continues a symbol
// name.
func scanSign(src []byte, i int) (LexemeKind, int) {
	if i >= len(src) || isDelimiter(src[i]) {
		return KindIdentifier, i
	}

	if isDigit(src[i]) {
		return scanNumber(src, i)
	}

	return scanIdentifier(src, i)
}

// scanNumberSign dispatches on the byte after '#': booleans,
// character literals and keywords. Anything else is an invalid span
// running through the next delimiter.
func scanNumberSign(src []byte, i int) (LexemeKind, int) {
	if i >= len(src) {
		return KindInvalidNumberSign, i
	}

	switch src[i] {
	case 't', 'f':
		// Exactly #t or #f followed by a delimiter; #true is not a
		// boolean.
		if i+1 >= len(src) || isDelimiter(src[i+1]) {
			return KindBoolLit, i + 1
		}
		return KindInvalidNumberSign, advanceToDelimiter(src, i+2)
	case '\\':
		return KindCharLit, advanceToDelimiter(src, i+1)
	case ':':
		return KindKeywordLit, advanceToDelimiter(src, i+1)
	}

	return KindInvalidNumberSign, advanceToDelimiter(src, i+1)
}

// scanStringContent consumes a run of string body bytes. A backslash
// protects the byte after it, so an escaped quote neither closes the
// string nor ends the run. Unescaped quotes and newline bytes are
// left for the next scan step.
func scanStringContent(src []byte, i int) int {
	for i < len(src) {
		b := src[i]

		if b == '\\' {
			i += 2
			if i > len(src) {
				i = len(src)
			}
			continue
		}

		if b == '"' || isNewlineStart(b) {
			break
		}

		i++
	}

	return i
}

// Scan drains a fresh Scanner over src and returns all of its
// lexemes.
func Scan(src []byte) []Lexeme {
	lexemes := []Lexeme{}

	sc := New(src)
	for sc.Next() {
		lexemes = append(lexemes, sc.Lexeme())
	}

	return lexemes
}
