package newick

import "fmt"

// LexErrorKind classifies failures raised while tokenizing Newick text.
type LexErrorKind int

const (
	UnrecognizedCharacter LexErrorKind = iota
	InvalidNumber
	UnterminatedQuote
	UnterminatedComment
)

func (k LexErrorKind) String() string {
	switch k {
	case UnrecognizedCharacter:
		return "unrecognized character"
	case InvalidNumber:
		return "invalid number"
	case UnterminatedQuote:
		return "unterminated quote"
	case UnterminatedComment:
		return "unterminated comment"
	}
	return "unknown lex error"
}

// LexError describes a tokenization failure. Pos is the byte offset of the
// offending text in the input and Line its 1-based line number.
type LexError struct {
	Kind   LexErrorKind
	Pos    int
	Line   int
	Detail string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at line %d (offset %d): %s %q", e.Line, e.Pos, e.Kind, e.Detail)
}

// ParseErrorKind classifies grammar violations raised while parsing a token
// stream.
type ParseErrorKind int

const (
	UnbalancedParens ParseErrorKind = iota
	UnexpectedToken
	MissingSemicolon
	EmptyInput
	DuplicateLabel
)

func (k ParseErrorKind) String() string {
	switch k {
	case UnbalancedParens:
		return "unbalanced parentheses"
	case UnexpectedToken:
		return "unexpected token"
	case MissingSemicolon:
		return "missing semicolon"
	case EmptyInput:
		return "empty input"
	case DuplicateLabel:
		return "duplicate label"
	}
	return "unknown parse error"
}

// ParseError describes a grammar violation. Pos is the byte offset of the
// offending token in the input and Line its 1-based line number.
type ParseError struct {
	Kind   ParseErrorKind
	Pos    int
	Line   int
	Detail string
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("parse error at line %d (offset %d): %s", e.Line, e.Pos, e.Kind)
	}
	return fmt.Sprintf("parse error at line %d (offset %d): %s: %s", e.Line, e.Pos, e.Kind, e.Detail)
}
