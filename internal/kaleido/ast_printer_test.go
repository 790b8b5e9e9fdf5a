package kaleido

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintExpr(t *testing.T) {
	testCases := []struct {
		expr Expr
		str  string
	}{
		{NewNumberExpr(3.14), "3.14"},
		{NewNumberExpr(42), "42"},
		{NewVariableExpr("x"), "x"},
		{NewBinaryExpr('+',
			NewNumberExpr(1),
			NewBinaryExpr('*', NewNumberExpr(2), NewNumberExpr(3))),
			"(+ 1 (* 2 3))"},
		{NewCallExpr("foo", nil), "(call foo)"},
		{NewCallExpr("foo", []Expr{NewNumberExpr(1), NewVariableExpr("x")}),
			"(call foo 1 x)"},
	}

	assert := assert.New(t)
	printer := new(AstPrinter)
	for _, tc := range testCases {
		assert.Equal(tc.str, printer.Print(tc.expr))
	}
}

func TestPrintPrototype(t *testing.T) {
	assert := assert.New(t)
	printer := new(AstPrinter)

	assert.Equal("add(x y)", printer.PrintPrototype(NewPrototype("add", []string{"x", "y"})))
	assert.Equal("one()", printer.PrintPrototype(NewPrototype("one", nil)))
}

func TestPrintFunction(t *testing.T) {
	assert := assert.New(t)
	printer := new(AstPrinter)

	fn := NewFunction(
		NewPrototype("add", []string{"x", "y"}),
		NewBinaryExpr('+', NewVariableExpr("x"), NewVariableExpr("y")))
	assert.Equal("def add(x y) (+ x y)", printer.PrintFunction(fn))

	// the anonymous wrapper renders as its body alone
	anon := NewFunction(NewPrototype("", nil), NewNumberExpr(42))
	assert.Equal("42", printer.PrintFunction(anon))
}
