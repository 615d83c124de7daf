package scan

import "github.com/charmbracelet/lipgloss"

// Token highlight styles for colorized token output.
var (
	// KeywordStyle for words in the keyword table
	KeywordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("207")).
			Bold(true)

	// OperatorStyle for operator tokens
	OperatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("217"))

	// IdentifierStyle for identifiers
	IdentifierStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("117"))

	// StringStyle for quoted string literals
	StringStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("150"))

	// NumberStyle for numeric literals
	NumberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("215"))

	// CommentStyle for line comments
	CommentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true)

	// DelimiterStyle for parentheses, brackets, braces, semicolons, commas
	DelimiterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("249")).
			Bold(true)

	// DefaultStyle for unrecognized tokens
	DefaultStyle = lipgloss.NewStyle()
)
