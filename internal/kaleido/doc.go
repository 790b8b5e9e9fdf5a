/*
Grammars

	program    --> ( definition | external | expression | ";" )* EOF ;
	definition --> "def" prototype expression ;
	external   --> "extern" prototype ;
	prototype  --> IDENT "(" IDENT* ")" ;
	expression --> primary ( OPERATOR primary )* ;
	primary    --> NUMBER
	             | IDENT
	             | IDENT "(" ( expression ( "," expression )* )? ")"
	             | "(" expression ")" ;

Binary operators are single characters ranked by a fixed precedence table:
'<' 10, '+' 20, '-' 30, '*' 40. Operator pairs are folded by precedence
climbing; equal precedence folds left-to-right. Prototype parameters are
separated by whitespace only, with no commas.

Lexical rules: identifiers are a letter followed by letters or digits, with no
underscore. Number literals are a greedy run of digits and '.' converted with
strtod semantics, so a malformed literal like "1.2.3" quietly truncates to
1.2. Comments run from '#' to the end of the line. Any other character is
passed through as a single-character token.
*/
package kaleido
