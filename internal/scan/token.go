// Package scan implements the streaming lexer: a windowed character
// source over a byte stream and a pull-based tokenizer on top of it.
package scan

// Kind is the lexical category of a token. The set is a stable contract
// for downstream consumers; String() values are part of that contract.
type Kind int

const (
	KindEOF Kind = iota
	KindUnknown

	// Literals
	KindIdentifier
	KindNumber
	KindString
	KindComment

	// Classified words and operators
	KindKeyword
	KindOperator

	// Delimiters
	KindParen
	KindBracket
	KindBrace
	KindSemicolon
	KindComma
)

// String returns the string representation of the token kind.
func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "EOF"
	case KindIdentifier:
		return "IDENTIFIER"
	case KindNumber:
		return "NUMBER"
	case KindString:
		return "STRING_LITERAL"
	case KindComment:
		return "COMMENT"
	case KindKeyword:
		return "KEYWORD"
	case KindOperator:
		return "OPERATOR"
	case KindParen:
		return "PARENTHESIS"
	case KindBracket:
		return "BRACKET"
	case KindBrace:
		return "BRACE"
	case KindSemicolon:
		return "SEMICOLON"
	case KindComma:
		return "COMMA"
	default:
		return "UNKNOWN"
	}
}

// Token is one classified lexeme. Line and Col are 1-based and point at
// the token's first character. Tokens are plain values; once returned
// from the lexer they hold no reference back to it.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
	Col    int
}
