package scanner

import (
	"fmt"
)

// LexemeKind represents all the possible classifications of a lexeme
type LexemeKind uint8

// List of lexeme classifications
const (
	KindInvalid LexemeKind = iota

	KindWhitespace  // Run of spaces
	KindTab         // Run of tabs
	KindNewlineLf   // Line feed: "\n"
	KindNewlineCr   // Carriage return: "\r"
	KindNewlineCrlf // Carriage return + line feed: "\r\n"
	KindComment     // ";" through the end of the line

	KindLParen   // Open parenthesis: "("
	KindRParen   // Close parenthesis: ")"
	KindLBracket // Open square bracket: "["
	KindRBracket // Close square bracket: "]"
	KindLBrace   // Open curly bracket: "{"
	KindRBrace   // Close curly bracket: "}"

	KindIdentifier // Symbol name, the universal fallback

	KindIntLit     // Run of ASCII digits, optionally signed
	KindFloatLit   // Digits, a dot, more digits
	KindCharLit    // Character literal: "#\a", "#\space"
	KindBoolLit    // Exactly "#t" or "#f"
	KindKeywordLit // Keyword literal: "#:name", payload may be empty

	KindLString       // Opening double quote
	KindStringContent // Run of bytes inside a string literal
	KindRString       // Closing double quote

	KindInvalidNumberSign // Malformed "#" form
	KindPoison            // Reserved for restricted scanner variants
)

var kindNames = map[LexemeKind]string{
	KindInvalid:     "invalid",
	KindWhitespace:  "whitespace",
	KindTab:         "tab",
	KindNewlineLf:   "newline_lf",
	KindNewlineCr:   "newline_cr",
	KindNewlineCrlf: "newline_crlf",
	KindComment:     "comment",

	KindLParen:   "open_paren",
	KindRParen:   "close_paren",
	KindLBracket: "open_bracket",
	KindRBracket: "close_bracket",
	KindLBrace:   "open_brace",
	KindRBrace:   "close_brace",

	KindIdentifier: "identifier",

	KindIntLit:     "int",
	KindFloatLit:   "float",
	KindCharLit:    "char",
	KindBoolLit:    "bool",
	KindKeywordLit: "keyword",

	KindLString:       "open_string",
	KindStringContent: "string_content",
	KindRString:       "close_string",

	KindInvalidNumberSign: "invalid_number_sign",
	KindPoison:            "poison",
}

func (k LexemeKind) String() string {
	if v, ok := kindNames[k]; ok {
		return v
	}
	return kindNames[KindInvalid]
}

// Atmosphere returns true for kinds that separate meaningful lexemes
// without carrying meaning themselves (whitespace, tabs, newlines and
// comments).
func (k LexemeKind) Atmosphere() bool {
	switch k {
	case KindWhitespace, KindTab, KindNewlineLf, KindNewlineCr, KindNewlineCrlf, KindComment:
		return true
	}
	return false
}

// Malformed returns true for kinds that represent a lexically broken
// span rather than a recognized token.
func (k LexemeKind) Malformed() bool {
	return k == KindInvalidNumberSign || k == KindPoison
}

// Lexeme represents a classified span of source text (lexical unit).
// Text aliases the buffer the Scanner was created over; it is never a
// copy.
type Lexeme struct {
	kind LexemeKind
	text []byte
}

// NewLexeme creates a lexical unit
func NewLexeme(kind LexemeKind, text []byte) Lexeme {
	return Lexeme{
		kind: kind,
		text: text,
	}
}

// Kind returns the classification of the lexical unit
func (l Lexeme) Kind() LexemeKind {
	return l.kind
}

// Text returns the raw bytes of the lexical unit
func (l Lexeme) Text() []byte {
	return l.text
}

// Len returns the number of source bytes the lexical unit covers
func (l Lexeme) Len() int {
	return len(l.text)
}

// Is returns true if the lexeme matches the given kind
func (l Lexeme) Is(kind LexemeKind) bool {
	return l.kind == kind
}

func (l Lexeme) String() string {
	return fmt.Sprintf("(:%v %q)", l.kind, l.text)
}
