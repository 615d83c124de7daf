package scan

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Highlight applies syntax highlighting to a source string.
// Returns the source with ANSI color codes applied per token kind,
// preserving the whitespace between tokens. Empty strings return empty
// strings; inputs with unterminated constructs are highlighted for
// their valid portions.
func Highlight(input string, opts Options) string {
	if input == "" {
		return ""
	}

	lexer := NewLexer(NewCharSource(strings.NewReader(input), 0), opts)
	starts := lineStarts(input)

	var result strings.Builder
	lastPos := 0

	for {
		tok := lexer.NextToken()
		if tok.Kind == KindEOF {
			break
		}

		// Tokens carry line/col rather than flat offsets; recover the
		// byte offset from the per-line start table.
		tokenPos := starts[tok.Line-1] + tok.Col - 1

		// Preserve whitespace between tokens
		if tokenPos > lastPos {
			result.WriteString(input[lastPos:tokenPos])
		}

		// String lexemes exclude their quotes and comment lexemes
		// exclude the leading slashes, so the styled span is wider than
		// the lexeme. Bounds-check for unterminated constructs at end
		// of input.
		tokenLen := len(tok.Lexeme)
		switch tok.Kind {
		case KindString:
			tokenLen += 2 // quotes
		case KindComment:
			tokenLen += 2 // slashes
		}
		endPos := tokenPos + tokenLen
		if endPos > len(input) {
			endPos = len(input)
		}

		result.WriteString(styleFor(tok.Kind).Render(input[tokenPos:endPos]))
		lastPos = endPos
	}

	// Append any trailing content (whitespace after last token)
	if lastPos < len(input) {
		result.WriteString(input[lastPos:])
	}

	return result.String()
}

// lineStarts returns the byte offset of the first character of each
// line of input.
func lineStarts(input string) []int {
	starts := []int{0}
	for i := 0; i < len(input); i++ {
		if input[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// styleFor returns the appropriate style for a token kind.
func styleFor(k Kind) lipgloss.Style {
	switch k {
	case KindKeyword:
		return KeywordStyle
	case KindOperator:
		return OperatorStyle
	case KindIdentifier:
		return IdentifierStyle
	case KindString:
		return StringStyle
	case KindNumber:
		return NumberStyle
	case KindComment:
		return CommentStyle
	case KindParen, KindBracket, KindBrace, KindSemicolon, KindComma:
		return DelimiterStyle
	default:
		return DefaultStyle
	}
}
