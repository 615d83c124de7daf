package scan

import (
	"strings"

	"lexa/internal/log"
)

// Options fix the classification tables for a Lexer. The tables are
// copied at construction and never consulted as shared mutable state.
type Options struct {
	// Keywords are the exact (case-sensitive) words classified as
	// KEYWORD instead of IDENTIFIER.
	Keywords []string
	// OperatorChars are the characters eligible to start an OPERATOR
	// token.
	OperatorChars string
	// TwoCharPrefixes are the operator characters that extend to a
	// two-character operator when immediately followed by '='.
	TwoCharPrefixes string
}

// DefaultOptions returns the reference tables: a small illustrative
// keyword set, C-style operator characters, and `= < > !` as the only
// prefixes that pair with '='.
func DefaultOptions() Options {
	return Options{
		Keywords:        []string{"if", "else", "while", "for", "return", "int", "string", "bool", "class", "void"},
		OperatorChars:   "+-*/%=><!&|",
		TwoCharPrefixes: "=<>!",
	}
}

// Lexer classifies the character stream of a CharSource into Tokens.
// It keeps no state between NextToken calls beyond the source and its
// read-only tables, so the token stream is restartable from any token
// boundary.
type Lexer struct {
	src      *CharSource
	keywords map[string]bool
	operator [128]bool
	twoChar  [128]bool
}

// NewLexer creates a lexer over src with the given tables.
func NewLexer(src *CharSource, opts Options) *Lexer {
	l := &Lexer{
		src:      src,
		keywords: make(map[string]bool, len(opts.Keywords)),
	}
	for _, kw := range opts.Keywords {
		l.keywords[kw] = true
	}
	for i := 0; i < len(opts.OperatorChars); i++ {
		if c := opts.OperatorChars[i]; c < 128 {
			l.operator[c] = true
		}
	}
	for i := 0; i < len(opts.TwoCharPrefixes); i++ {
		if c := opts.TwoCharPrefixes[i]; c < 128 {
			l.twoChar[c] = true
		}
	}
	return l
}

// New creates a lexer over src with DefaultOptions.
func New(src *CharSource) *Lexer {
	return NewLexer(src, DefaultOptions())
}

// NextToken returns the next token from the input. After the input is
// exhausted it returns the EOF token on every call.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	line, col := l.src.Line(), l.src.Col()
	ch := l.src.Current()

	switch {
	case ch == Sentinel:
		return Token{Kind: KindEOF, Lexeme: "EOF", Line: line, Col: col}
	case isLetter(ch):
		return l.lexIdentifier(line, col)
	case isDigit(ch):
		return l.lexNumber(line, col)
	case ch == '"':
		return l.lexString(line, col)
	case ch == '/' && l.src.Peek() == '/':
		return l.lexComment(line, col)
	case ch < 128 && l.operator[ch]:
		return l.lexOperator(line, col)
	default:
		return l.lexSymbol(line, col)
	}
}

// skipWhitespace advances past whitespace characters.
func (l *Lexer) skipWhitespace() {
	for {
		switch l.src.Current() {
		case ' ', '\t', '\n', '\r':
			l.src.Advance()
		default:
			return
		}
	}
}

// lexIdentifier consumes letters, digits and underscores, then decides
// KEYWORD vs IDENTIFIER by exact match against the keyword table.
func (l *Lexer) lexIdentifier(line, col int) Token {
	var b strings.Builder
	for ch := l.src.Current(); isLetter(ch) || isDigit(ch); ch = l.src.Current() {
		b.WriteByte(ch)
		l.src.Advance()
	}
	lexeme := b.String()
	kind := KindIdentifier
	if l.keywords[lexeme] {
		kind = KindKeyword
	}
	return Token{Kind: kind, Lexeme: lexeme, Line: line, Col: col}
}

// lexNumber consumes digits and dots with no validation: multiple dots
// and a trailing dot pass through verbatim. Downstream consumers rely on
// the permissive lexeme for their own validation pass.
func (l *Lexer) lexNumber(line, col int) Token {
	var b strings.Builder
	for ch := l.src.Current(); isDigit(ch) || ch == '.'; ch = l.src.Current() {
		b.WriteByte(ch)
		l.src.Advance()
	}
	return Token{Kind: KindNumber, Lexeme: b.String(), Line: line, Col: col}
}

// lexString consumes a double-quoted literal. Quotes are consumed but
// excluded from the lexeme; no escape processing. Hitting end of input
// before the closing quote yields the text collected so far.
func (l *Lexer) lexString(line, col int) Token {
	l.src.Advance() // opening quote
	var b strings.Builder
	for ch := l.src.Current(); ch != '"' && ch != Sentinel; ch = l.src.Current() {
		b.WriteByte(ch)
		l.src.Advance()
	}
	if l.src.Current() == '"' {
		l.src.Advance() // closing quote
	} else {
		log.Debug(log.CatScan, "unterminated string literal", "line", line, "col", col)
	}
	return Token{Kind: KindString, Lexeme: b.String(), Line: line, Col: col}
}

// lexComment consumes a // line comment. The slashes are excluded from
// the lexeme and the terminating newline is left for the next token.
func (l *Lexer) lexComment(line, col int) Token {
	l.src.Advance()
	l.src.Advance()
	var b strings.Builder
	for ch := l.src.Current(); ch != '\n' && ch != Sentinel; ch = l.src.Current() {
		b.WriteByte(ch)
		l.src.Advance()
	}
	return Token{Kind: KindComment, Lexeme: b.String(), Line: line, Col: col}
}

// lexOperator consumes one operator character, plus a following '=' when
// the first character is a two-char prefix (==, <=, >=, !=). Other
// multi-character forms like && and += lex as separate tokens.
func (l *Lexer) lexOperator(line, col int) Token {
	first := l.src.Current()
	l.src.Advance()
	lexeme := string(first)
	if l.twoChar[first] && l.src.Current() == '=' {
		lexeme += "="
		l.src.Advance()
	}
	return Token{Kind: KindOperator, Lexeme: lexeme, Line: line, Col: col}
}

// lexSymbol consumes one character and maps it to its delimiter kind,
// falling back to UNKNOWN so unrecognized input never aborts the scan.
func (l *Lexer) lexSymbol(line, col int) Token {
	ch := l.src.Current()
	l.src.Advance()

	var kind Kind
	switch ch {
	case '(', ')':
		kind = KindParen
	case '[', ']':
		kind = KindBracket
	case '{', '}':
		kind = KindBrace
	case ';':
		kind = KindSemicolon
	case ',':
		kind = KindComma
	default:
		kind = KindUnknown
	}
	return Token{Kind: kind, Lexeme: string(ch), Line: line, Col: col}
}

// isLetter returns true if c is a letter or underscore.
func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

// isDigit returns true if c is a digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
