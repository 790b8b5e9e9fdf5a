package kaleido

// Expr is implemented by every expression node in the syntax tree. The set of
// implementations is closed; consumers dispatch with a type switch.
type Expr interface {
	exprNode()
}

// NumberExpr is a numeric literal.
type NumberExpr struct {
	Value float64
}

func NewNumberExpr(value float64) *NumberExpr {
	return &NumberExpr{value}
}

func (expr *NumberExpr) exprNode() {}

// VariableExpr is a reference to a name that is not resolved at this stage.
type VariableExpr struct {
	Name string
}

func NewVariableExpr(name string) *VariableExpr {
	return &VariableExpr{name}
}

func (expr *VariableExpr) exprNode() {}

// BinaryExpr applies a single-character binary operator to two operands. Each
// node exclusively owns its operands, so the tree has no sharing and no
// cycles.
type BinaryExpr struct {
	Op    rune
	Left  Expr
	Right Expr
}

func NewBinaryExpr(op rune, left Expr, right Expr) *BinaryExpr {
	return &BinaryExpr{op, left, right}
}

func (expr *BinaryExpr) exprNode() {}

// CallExpr calls a function by name with an ordered list of argument
// expressions.
type CallExpr struct {
	Callee string
	Args   []Expr
}

func NewCallExpr(callee string, args []Expr) *CallExpr {
	return &CallExpr{callee, args}
}

func (expr *CallExpr) exprNode() {}
