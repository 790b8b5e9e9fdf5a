package kaleido

// binopPrecedence ranks the binary operators of the grammar. The table is
// fixed; note that '-' outranks '+', which makes "1-2+3" group as "(1-2)+3"
// through the equal-or-lower precedence rule rather than through
// left-associativity. That ranking is part of the grammar and must not be
// reordered.
var binopPrecedence = map[rune]int{
	'<': 10,
	'+': 20,
	'-': 30,
	'*': 40,
}

// Parser composes the syntax tree from the token stream using a single token
// of lookahead: the most recently fetched token is held in curr, and every
// parse method leaves curr at the first token it did not consume.
//
// A parse method returns either a node or a *SyntaxError, never both. After
// an error the parser is left wherever parsing stopped; the driver
// resynchronizes by discarding one token with Advance and parsing fresh.
type Parser struct {
	tokenizer *Tokenizer
	curr      Token
}

// NewParser creates a parser over the given tokenizer and primes it by
// fetching the first token.
func NewParser(tokenizer *Tokenizer) *Parser {
	parser := &Parser{tokenizer: tokenizer}
	parser.Advance()
	return parser
}

// Current returns the token the parser is looking at.
func (parser *Parser) Current() Token {
	return parser.curr
}

// Advance discards the current token and fetches the next one.
func (parser *Parser) Advance() {
	parser.curr = parser.tokenizer.Next()
}

// ParseExpression parses a full expression: a primary expression followed by
// any number of binary-operator/primary pairs.
//
//	expression --> primary ( OPERATOR primary )* ;
func (parser *Parser) ParseExpression() (Expr, error) {
	left, err := parser.parsePrimary()
	if err != nil {
		return nil, err
	}
	return parser.parseBinOpRHS(0, left)
}

// ParseDefinition parses a named function definition. The current token must
// be the "def" keyword.
//
//	definition --> "def" prototype expression ;
func (parser *Parser) ParseDefinition() (*Function, error) {
	parser.Advance() // eat "def"
	proto, err := parser.parsePrototype()
	if err != nil {
		return nil, err
	}
	body, err := parser.ParseExpression()
	if err != nil {
		return nil, err
	}
	return NewFunction(proto, body), nil
}

// ParseExtern parses an external declaration: a bare prototype with no body.
// The current token must be the "extern" keyword.
//
//	external --> "extern" prototype ;
func (parser *Parser) ParseExtern() (*Prototype, error) {
	parser.Advance() // eat "extern"
	return parser.parsePrototype()
}

// ParseTopLevelExpr parses a bare expression and wraps it in a function with
// an anonymous prototype, so top-level expressions are represented uniformly
// with named definitions.
func (parser *Parser) ParseTopLevelExpr() (*Function, error) {
	body, err := parser.ParseExpression()
	if err != nil {
		return nil, err
	}
	return NewFunction(NewPrototype("", nil), body), nil
}

// parsePrimary dispatches on the current token kind.
//
//	primary --> NUMBER
//	          | identifierExpr
//	          | "(" expression ")" ;
func (parser *Parser) parsePrimary() (Expr, error) {
	switch parser.curr.Kind {
	case NUMBER:
		expr := NewNumberExpr(parser.curr.Value)
		parser.Advance() // eat the number
		return expr, nil
	case IDENTIFIER:
		return parser.parseIdentifierExpr()
	case CHAR:
		if parser.curr.Char == '(' {
			return parser.parseParenExpr()
		}
	}
	return nil, NewSyntaxError(parser.curr, "Unknown token: expected an expression")
}

// parseIdentifierExpr parses either a bare variable reference or, when the
// name is followed by '(', a function call.
//
//	identifierExpr --> IDENT
//	                 | IDENT "(" ( expression ( "," expression )* )? ")" ;
func (parser *Parser) parseIdentifierExpr() (Expr, error) {
	name := parser.curr.Name
	parser.Advance() // eat the identifier

	if !parser.checkChar('(') {
		return NewVariableExpr(name), nil
	}
	parser.Advance() // eat '('

	var args []Expr
	if !parser.checkChar(')') {
		for {
			arg, err := parser.ParseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if parser.checkChar(')') {
				break
			}
			if !parser.checkChar(',') {
				return nil, NewSyntaxError(parser.curr, "expected ')' or ',' in argument list")
			}
			parser.Advance() // eat ','
		}
	}
	parser.Advance() // eat ')'

	return NewCallExpr(name, args), nil
}

// parseParenExpr parses a parenthesized expression. The parentheses are not
// represented in the tree; they only affect parsing order.
func (parser *Parser) parseParenExpr() (Expr, error) {
	parser.Advance() // eat '('
	expr, err := parser.ParseExpression()
	if err != nil {
		return nil, err
	}
	if !parser.checkChar(')') {
		return nil, NewSyntaxError(parser.curr, "expected ')'")
	}
	parser.Advance() // eat ')'
	return expr, nil
}

// parseBinOpRHS folds binary-operator/primary pairs onto left by precedence
// climbing. It consumes every operator with precedence at least minPrec; an
// operator that binds strictly tighter than the one just consumed first
// absorbs the right operand through a recursive call, while equal precedence
// stays in the loop and folds left-to-right.
func (parser *Parser) parseBinOpRHS(minPrec int, left Expr) (Expr, error) {
	for {
		prec := parser.currPrecedence()
		if prec < minPrec {
			return left, nil
		}

		op := parser.curr.Char
		parser.Advance() // eat the operator

		right, err := parser.parsePrimary()
		if err != nil {
			return nil, err
		}

		// If the pending operator binds tighter than the one just consumed,
		// let it take right as its left operand before we combine.
		if prec < parser.currPrecedence() {
			right, err = parser.parseBinOpRHS(prec+1, right)
			if err != nil {
				return nil, err
			}
		}

		left = NewBinaryExpr(op, left, right)
	}
}

// parsePrototype parses a function's name followed by its parenthesized
// parameter list. Parameter names are separated by whitespace only, and
// duplicates are not rejected.
//
//	prototype --> IDENT "(" IDENT* ")" ;
func (parser *Parser) parsePrototype() (*Prototype, error) {
	if parser.curr.Kind != IDENTIFIER {
		return nil, NewSyntaxError(parser.curr, "expected function name in prototype")
	}
	name := parser.curr.Name
	parser.Advance() // eat the name

	if !parser.checkChar('(') {
		return nil, NewSyntaxError(parser.curr, "expected '(' in prototype")
	}

	var params []string
	for {
		parser.Advance()
		if parser.curr.Kind != IDENTIFIER {
			break
		}
		params = append(params, parser.curr.Name)
	}
	if !parser.checkChar(')') {
		return nil, NewSyntaxError(parser.curr, "expected ')' in prototype")
	}
	parser.Advance() // eat ')'

	return NewPrototype(name, params), nil
}

// currPrecedence returns the binary-operator precedence of the current token,
// or -1 when the current token is not a binary operator of the grammar.
func (parser *Parser) currPrecedence() int {
	if parser.curr.Kind != CHAR {
		return -1
	}
	prec := binopPrecedence[parser.curr.Char]
	if prec <= 0 {
		return -1
	}
	return prec
}

// checkChar reports whether the current token is the given single character.
func (parser *Parser) checkChar(c rune) bool {
	return parser.curr.Kind == CHAR && parser.curr.Char == c
}
