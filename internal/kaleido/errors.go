package kaleido

import "fmt"

// SyntaxError wraps a parse error message with the token where parsing
// stopped. Every parse function reports failure by returning one of these
// instead of a node; callers must check before using the node.
type SyntaxError struct {
	token   Token
	message string
}

// NewSyntaxError creates a new syntax error at the given token.
func NewSyntaxError(token Token, message string) error {
	return &SyntaxError{token, message}
}

func (err *SyntaxError) Error() string {
	if err.token.Kind == EOF {
		return fmt.Sprintf(
			"[line %d] Error at end: %s",
			err.token.Line,
			err.message,
		)
	}
	return fmt.Sprintf(
		"[line %d] Error at '%s': %s",
		err.token.Line,
		err.token.String(),
		err.message,
	)
}

// Message returns the human-readable description without the location prefix.
func (err *SyntaxError) Message() string {
	return err.message
}
