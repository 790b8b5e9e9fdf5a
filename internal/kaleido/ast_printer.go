package kaleido

import (
	"fmt"
	"strconv"
	"strings"
)

// AstPrinter renders syntax trees as compact one-line text, mainly for
// diagnostics and tests. Expressions come out as prefix s-expressions, e.g.
// "(+ 1 (* 2 3))" and "(call foo 1 x)".
type AstPrinter struct{}

func (printer *AstPrinter) Print(expr Expr) string {
	switch expr := expr.(type) {
	case *NumberExpr:
		return strconv.FormatFloat(expr.Value, 'f', -1, 64)
	case *VariableExpr:
		return expr.Name
	case *BinaryExpr:
		return fmt.Sprintf(
			"(%c %s %s)",
			expr.Op,
			printer.Print(expr.Left),
			printer.Print(expr.Right),
		)
	case *CallExpr:
		var sb strings.Builder
		sb.WriteString("(call ")
		sb.WriteString(expr.Callee)
		for _, arg := range expr.Args {
			sb.WriteByte(' ')
			sb.WriteString(printer.Print(arg))
		}
		sb.WriteByte(')')
		return sb.String()
	}
	return fmt.Sprintf("<unknown expr %T>", expr)
}

// PrintPrototype renders a prototype as "name(param param)".
func (printer *AstPrinter) PrintPrototype(proto *Prototype) string {
	return fmt.Sprintf("%s(%s)", proto.Name, strings.Join(proto.Params, " "))
}

// PrintFunction renders a definition as "def name(params) body"; the
// anonymous wrapper around a top-level expression renders as its body alone.
func (printer *AstPrinter) PrintFunction(fn *Function) string {
	if fn.Proto.IsAnonymous() {
		return printer.Print(fn.Body)
	}
	return fmt.Sprintf(
		"def %s %s",
		printer.PrintPrototype(fn.Proto),
		printer.Print(fn.Body),
	)
}
