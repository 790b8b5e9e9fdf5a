package kaleido

import (
	"fmt"
	"strconv"
)

// TokenKind classifies the lexical unit a token represents.
type TokenKind uint

const (
	// EOF marks the end of the input stream.
	EOF TokenKind = iota
	// DEF is the "def" keyword introducing a function definition.
	DEF
	// EXTERN is the "extern" keyword introducing an external declaration.
	EXTERN
	// IDENTIFIER is a name; the token carries its text.
	IDENTIFIER
	// NUMBER is a numeric literal; the token carries its value.
	NUMBER
	// CHAR is any other single character, carried verbatim. Operators,
	// punctuation, and unrecognized characters all land here.
	CHAR
)

func (tt TokenKind) String() string {
	switch tt {
	case EOF:
		return "EOF"
	case DEF:
		return "DEF"
	case EXTERN:
		return "EXTERN"
	case IDENTIFIER:
		return "IDENTIFIER"
	case NUMBER:
		return "NUMBER"
	case CHAR:
		return "CHAR"
	}
	return ""
}

// Token represents a group of characters classified during the scanning phase,
// with the line it started on. Exactly one payload field is populated,
// depending on the kind: Name for identifiers, Value for numbers, Char for
// single-character tokens.
type Token struct {
	Kind  TokenKind
	Name  string
	Value float64
	Char  rune
	Line  int
}

// NewToken creates a payload-free token, one of EOF, DEF, or EXTERN.
func NewToken(kind TokenKind, line int) Token {
	return Token{Kind: kind, Line: line}
}

// NewIdentifierToken creates an identifier token carrying the given name.
func NewIdentifierToken(name string, line int) Token {
	return Token{Kind: IDENTIFIER, Name: name, Line: line}
}

// NewNumberToken creates a number token carrying the given literal value.
func NewNumberToken(value float64, line int) Token {
	return Token{Kind: NUMBER, Value: value, Line: line}
}

// NewCharToken creates a single-character token carrying the raw character.
func NewCharToken(c rune, line int) Token {
	return Token{Kind: CHAR, Char: c, Line: line}
}

// String renders the token the way it appeared in the source, or the kind's
// name for tokens without a lexeme.
func (t Token) String() string {
	switch t.Kind {
	case IDENTIFIER:
		return t.Name
	case NUMBER:
		return strconv.FormatFloat(t.Value, 'f', -1, 64)
	case CHAR:
		return string(t.Char)
	case DEF:
		return "def"
	case EXTERN:
		return "extern"
	case EOF:
		return "EOF"
	}
	return fmt.Sprintf("<invalid token kind %d>", uint(t.Kind))
}
