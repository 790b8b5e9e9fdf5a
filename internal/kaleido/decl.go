package kaleido

// Prototype captures a function's name and its parameter names. Duplicate
// parameter names are not rejected at this stage. An extern declaration is
// represented by a bare prototype with no body.
type Prototype struct {
	Name   string
	Params []string
}

func NewPrototype(name string, params []string) *Prototype {
	return &Prototype{name, params}
}

// IsAnonymous reports whether the prototype is the synthetic wrapper around a
// bare top-level expression.
func (proto *Prototype) IsAnonymous() bool {
	return proto.Name == ""
}

// Function pairs a prototype with a body expression. It represents either a
// named "def" definition or the anonymous wrapper around a top-level
// expression.
type Function struct {
	Proto *Prototype
	Body  Expr
}

func NewFunction(proto *Prototype, body Expr) *Function {
	return &Function{proto, body}
}
