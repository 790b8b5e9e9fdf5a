package kaleido

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Tokenizer reads an input stream and classifies it into tokens, one token per
// call to Next. It keeps one character of pushback across calls so that the
// character terminating one token is not lost for classifying the next; this
// state makes a tokenizer forward-only, so use a fresh instance per input
// stream.
type Tokenizer struct {
	source *bufio.Reader
	curr   rune
	eof    bool
	line   int
}

// NewTokenizer creates a tokenizer over the given input stream. The pushback
// character starts out as a space so the first call to Next begins by reading.
func NewTokenizer(source io.Reader) *Tokenizer {
	tokenizer := new(Tokenizer)
	tokenizer.source = bufio.NewReader(source)
	tokenizer.curr = ' '
	tokenizer.line = 1
	return tokenizer
}

// Next scans and returns the next token from the stream. At the end of the
// stream it returns an EOF token and performs no further reads, so calling it
// again is harmless. Read failures are indistinguishable from the end of the
// stream.
func (tokenizer *Tokenizer) Next() Token {
	for !tokenizer.eof && unicode.IsSpace(tokenizer.curr) {
		tokenizer.read()
	}
	line := tokenizer.line

	switch {
	case tokenizer.eof:
		return NewToken(EOF, line)
	case unicode.IsLetter(tokenizer.curr):
		return tokenizer.scanIdentifier(line)
	case unicode.IsDigit(tokenizer.curr) || tokenizer.curr == '.':
		return tokenizer.scanNumber(line)
	case tokenizer.curr == '#':
		// comment until end of line; comments never become tokens
		for !tokenizer.eof && tokenizer.curr != '\n' && tokenizer.curr != '\r' {
			tokenizer.read()
		}
		return tokenizer.Next()
	default:
		c := tokenizer.curr
		tokenizer.read()
		return NewCharToken(c, line)
	}
}

// scanIdentifier consumes a run of alphanumeric characters and classifies it
// as a keyword or an identifier. The first character is a letter and the rest
// are letters or digits; the grammar has no underscore.
func (tokenizer *Tokenizer) scanIdentifier(line int) Token {
	var lexeme strings.Builder
	for !tokenizer.eof && isAlphanumeric(tokenizer.curr) {
		lexeme.WriteRune(tokenizer.curr)
		tokenizer.read()
	}
	switch name := lexeme.String(); name {
	case "def":
		return NewToken(DEF, line)
	case "extern":
		return NewToken(EXTERN, line)
	default:
		return NewIdentifierToken(name, line)
	}
}

// scanNumber consumes a run of digits and '.' characters and converts it with
// strtod semantics: the longest prefix that forms a valid floating-point
// number wins and the rest is ignored, so "1.2.3" becomes 1.2 and a lone "."
// becomes 0. Malformed literals are not rejected.
func (tokenizer *Tokenizer) scanNumber(line int) Token {
	var lexeme strings.Builder
	for !tokenizer.eof && (unicode.IsDigit(tokenizer.curr) || tokenizer.curr == '.') {
		lexeme.WriteRune(tokenizer.curr)
		tokenizer.read()
	}

	s := lexeme.String()
	for len(s) > 0 {
		if value, err := strconv.ParseFloat(s, 64); err == nil {
			return NewNumberToken(value, line)
		}
		s = s[:len(s)-1]
	}
	return NewNumberToken(0, line)
}

// read replaces the pushback character with the next rune from the stream. Any
// read failure latches the end-of-stream state.
func (tokenizer *Tokenizer) read() {
	r, _, err := tokenizer.source.ReadRune()
	if err != nil {
		tokenizer.eof = true
		tokenizer.curr = 0
		return
	}
	if r == '\n' {
		tokenizer.line++
	}
	tokenizer.curr = r
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
