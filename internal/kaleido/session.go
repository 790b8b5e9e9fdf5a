package kaleido

import (
	"fmt"
	"io"
)

const prompt = "> "

// Session drives the parser over one input stream. It dispatches on the
// current token, reports the outcome of each top-level form, and recovers
// from syntax errors by discarding one token and parsing fresh from the next.
// It contains no parsing logic of its own.
type Session struct {
	out      io.Writer
	reporter Reporter
	verbose  bool
}

// NewSession creates a session writing its results to out and its errors to
// the reporter. In verbose mode each successfully parsed form is also printed
// as a syntax tree.
func NewSession(out io.Writer, reporter Reporter, verbose bool) *Session {
	session := new(Session)
	session.out = out
	session.reporter = reporter
	session.verbose = verbose
	return session
}

// Run parses top-level forms from the input stream until its end. In
// interactive mode a prompt is printed before each form. Syntax errors go to
// the reporter and parsing continues with the next form; Run never fails.
//
//	program --> ( definition | external | expression | ";" )* EOF ;
func (session *Session) Run(in io.Reader, interactive bool) {
	if interactive {
		fmt.Fprint(session.out, prompt)
	}
	parser := NewParser(NewTokenizer(in))
	for {
		switch tok := parser.Current(); {
		case tok.Kind == EOF:
			return
		case tok.Kind == CHAR && tok.Char == ';':
			// ignore top-level semicolons
			parser.Advance()
		case tok.Kind == DEF:
			session.handleDefinition(parser)
		case tok.Kind == EXTERN:
			session.handleExtern(parser)
		default:
			session.handleTopLevelExpression(parser)
		}
		if interactive {
			fmt.Fprint(session.out, prompt)
		}
	}
}

func (session *Session) handleDefinition(parser *Parser) {
	fn, err := parser.ParseDefinition()
	if err != nil {
		session.recover(parser, err)
		return
	}
	fmt.Fprintln(session.out, "Parsed a function definition.")
	if session.verbose {
		printer := new(AstPrinter)
		fmt.Fprintln(session.out, printer.PrintFunction(fn))
	}
}

func (session *Session) handleExtern(parser *Parser) {
	proto, err := parser.ParseExtern()
	if err != nil {
		session.recover(parser, err)
		return
	}
	fmt.Fprintln(session.out, "Parsed an extern.")
	if session.verbose {
		printer := new(AstPrinter)
		fmt.Fprintln(session.out, "extern "+printer.PrintPrototype(proto))
	}
}

func (session *Session) handleTopLevelExpression(parser *Parser) {
	fn, err := parser.ParseTopLevelExpr()
	if err != nil {
		session.recover(parser, err)
		return
	}
	fmt.Fprintln(session.out, "Parsed a top-level expr.")
	if session.verbose {
		printer := new(AstPrinter)
		fmt.Fprintln(session.out, printer.PrintFunction(fn))
	}
}

// recover reports the error and skips one token so the next parse starts on a
// fresh token. This is best-effort resynchronization and may cascade further
// errors on badly mangled input.
func (session *Session) recover(parser *Parser, err error) {
	session.reporter.Report(err)
	parser.Advance()
}
