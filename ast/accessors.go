package ast

import "github.com/t14raptor/go-ast3/token"

// Named accessors give each variant the vocabulary spec §3 describes it
// with, on top of the generic Child/ChildNodes access node.go provides.
// Each panics with an *InvariantError if called against the wrong Kind,
// the same contract the spec's per-variant getters carry.

// Name returns an Identifier's name.
func (n *Node) Name() string {
	if n.Kind != Identifier {
		panic(wrongKind("Name", n, Identifier))
	}
	return n.name
}

// Rename overwrites an Identifier's name in place (original source:
// NodeIdentifier::rename).
func (n *Node) Rename(name string) {
	if n.Kind != Identifier {
		panic(wrongKind("Rename", n, Identifier))
	}
	n.name = name
}

// Label returns a Label statement's Identifier child (spec §3.1: Label[2] —
// Identifier, statement).
func (n *Node) Label() *Node {
	if n.Kind != Label {
		panic(wrongKind("Label", n, Label))
	}
	return n.Child(0)
}

// UnquotedValue returns a StringLiteral's content. Str always holds the
// literal's value with delimiting quotes already resolved away at
// construction (matching NodeStringLiteral::unquoted_value in the source
// this spec was distilled from); Quoted only controls whether render wraps
// that content back in quote characters.
func (n *Node) UnquotedValue() string {
	if n.Kind != StringLiteral {
		panic(wrongKind("UnquotedValue", n, StringLiteral))
	}
	return n.Str
}

// Expr returns a Parenthetical's wrapped expression, or a
// StatementWithExpression's carried expression (nil for a bare
// return/continue/break).
func (n *Node) Expr() *Node {
	switch n.Kind {
	case Parenthetical, StatementWithExpression:
		return n.Child(0)
	default:
		panic(wrongKind("Expr", n, Parenthetical, StatementWithExpression))
	}
}

// Operand returns a Unary or Postfix node's single operand.
func (n *Node) Operand() *Node {
	switch n.Kind {
	case Unary, Postfix:
		return n.Child(0)
	default:
		panic(wrongKind("Operand", n, Unary, Postfix))
	}
}

// Left returns an Operator's left-hand operand.
func (n *Node) Left() *Node {
	if n.Kind != Operator {
		panic(wrongKind("Left", n, Operator))
	}
	return n.Child(0)
}

// Right returns an Operator's right-hand operand.
func (n *Node) Right() *Node {
	if n.Kind != Operator {
		panic(wrongKind("Right", n, Operator))
	}
	return n.Child(1)
}

// LVal returns an Assignment's left-hand side.
func (n *Node) LVal() *Node {
	if n.Kind != Assignment {
		panic(wrongKind("LVal", n, Assignment))
	}
	return n.Child(0)
}

// RVal returns an Assignment's right-hand side.
func (n *Node) RVal() *Node {
	if n.Kind != Assignment {
		panic(wrongKind("RVal", n, Assignment))
	}
	return n.Child(1)
}

// Test returns a ConditionalExpression's or If's or CaseClause's test
// expression.
func (n *Node) Test() *Node {
	switch n.Kind {
	case ConditionalExpression, If, CaseClause:
		return n.Child(0)
	default:
		panic(wrongKind("Test", n, ConditionalExpression, If, CaseClause))
	}
}

// Consequent returns a ConditionalExpression's true branch.
func (n *Node) Consequent() *Node {
	if n.Kind != ConditionalExpression {
		panic(wrongKind("Consequent", n, ConditionalExpression))
	}
	return n.Child(1)
}

// Alternate returns a ConditionalExpression's false branch.
func (n *Node) Alternate() *Node {
	if n.Kind != ConditionalExpression {
		panic(wrongKind("Alternate", n, ConditionalExpression))
	}
	return n.Child(2)
}

// Callee returns a FunctionCall or FunctionConstructor's callee expression.
func (n *Node) Callee() *Node {
	switch n.Kind {
	case FunctionCall, FunctionConstructor:
		return n.Child(0)
	default:
		panic(wrongKind("Callee", n, FunctionCall, FunctionConstructor))
	}
}

// Args returns a FunctionCall or FunctionConstructor's ArgList.
func (n *Node) Args() *Node {
	switch n.Kind {
	case FunctionCall, FunctionConstructor:
		return n.Child(1)
	default:
		panic(wrongKind("Args", n, FunctionCall, FunctionConstructor))
	}
}

// IsEval reports whether a FunctionCall's callee is literally the
// identifier "eval" (NodeFunctionCall::isEval in the source this spec was
// distilled from).
func (n *Node) IsEval() bool {
	if n.Kind != FunctionCall {
		panic(wrongKind("IsEval", n, FunctionCall))
	}
	callee := n.Callee()
	return callee != nil && callee.Kind == Identifier && callee.name == "eval"
}

// Object returns a StaticMemberExpression or DynamicMemberExpression's base
// object, or a With's object.
func (n *Node) Object() *Node {
	switch n.Kind {
	case StaticMemberExpression, DynamicMemberExpression, With:
		return n.Child(0)
	default:
		panic(wrongKind("Object", n, StaticMemberExpression, DynamicMemberExpression, With))
	}
}

// Property returns a StaticMemberExpression's (an Identifier) or a
// DynamicMemberExpression's (an arbitrary expression) property.
func (n *Node) Property() *Node {
	switch n.Kind {
	case StaticMemberExpression, DynamicMemberExpression:
		return n.Child(1)
	default:
		panic(wrongKind("Property", n, StaticMemberExpression, DynamicMemberExpression))
	}
}

// Properties returns an ObjectLiteral's ObjectLiteralProperty children.
func (n *Node) Properties() []*Node {
	if n.Kind != ObjectLiteral {
		panic(wrongKind("Properties", n, ObjectLiteral))
	}
	return n.children
}

// Key returns an ObjectLiteralProperty's key node.
func (n *Node) Key() *Node {
	if n.Kind != ObjectLiteralProperty {
		panic(wrongKind("Key", n, ObjectLiteralProperty))
	}
	return n.Child(0)
}

// Value returns an ObjectLiteralProperty's value node.
func (n *Node) Value() *Node {
	if n.Kind != ObjectLiteralProperty {
		panic(wrongKind("Value", n, ObjectLiteralProperty))
	}
	return n.Child(1)
}

// Elements returns an ArrayLiteral's elements; a nil entry is an elision.
func (n *Node) Elements() []*Node {
	if n.Kind != ArrayLiteral {
		panic(wrongKind("Elements", n, ArrayLiteral))
	}
	return n.children
}

// Statements returns a Program or StatementList's statement children.
func (n *Node) Statements() []*Node {
	switch n.Kind {
	case Program, StatementList:
		return n.children
	default:
		panic(wrongKind("Statements", n, Program, StatementList))
	}
}

// FuncName returns a FunctionDeclaration or FunctionExpression's name node
// (nil for an anonymous function expression).
func (n *Node) FuncName() *Node {
	switch n.Kind {
	case FunctionDeclaration, FunctionExpression:
		return n.Child(0)
	default:
		panic(wrongKind("FuncName", n, FunctionDeclaration, FunctionExpression))
	}
}

// Params returns a FunctionDeclaration or FunctionExpression's ArgList of
// declared parameter Identifiers.
func (n *Node) Params() *Node {
	switch n.Kind {
	case FunctionDeclaration, FunctionExpression:
		return n.Child(1)
	default:
		panic(wrongKind("Params", n, FunctionDeclaration, FunctionExpression))
	}
}

// Body returns a FunctionDeclaration/FunctionExpression's StatementList
// body, a While/DoWhile/ForLoop/ForIn/With's loop or statement body, or a
// Label's labeled statement. CaseClause and DefaultClause have no body
// slot of their own: their statements are siblings inside the enclosing
// Switch's clause StatementList.
func (n *Node) Body() *Node {
	switch n.Kind {
	case FunctionDeclaration, FunctionExpression:
		return n.Child(2)
	case While, With:
		return n.Child(1)
	case Label:
		return n.Child(1)
	case DoWhile:
		return n.Child(0)
	case ForLoop:
		return n.Child(3)
	case ForIn:
		return n.Child(2)
	default:
		panic(wrongKind("Body", n, FunctionDeclaration, FunctionExpression, While, DoWhile, ForLoop, ForIn, With, Label))
	}
}

// Items returns an ArgList's expression children.
func (n *Node) Items() []*Node {
	if n.Kind != ArgList {
		panic(wrongKind("Items", n, ArgList))
	}
	return n.children
}

// Cond returns an If's, While's, DoWhile's or ForLoop's test expression.
func (n *Node) Cond() *Node {
	switch n.Kind {
	case If:
		return n.Child(0)
	case While:
		return n.Child(0)
	case DoWhile:
		return n.Child(1)
	case ForLoop:
		return n.Child(1)
	default:
		panic(wrongKind("Cond", n, If, While, DoWhile, ForLoop))
	}
}

// Then returns an If's consequent statement.
func (n *Node) Then() *Node {
	if n.Kind != If {
		panic(wrongKind("Then", n, If))
	}
	return n.Child(1)
}

// Else returns an If's alternate statement, nil if there is none.
func (n *Node) Else() *Node {
	if n.Kind != If {
		panic(wrongKind("Else", n, If))
	}
	return n.Child(2)
}

// Init returns a ForLoop's initializer clause, nil if elided.
func (n *Node) Init() *Node {
	if n.Kind != ForLoop {
		panic(wrongKind("Init", n, ForLoop))
	}
	return n.Child(0)
}

// Update returns a ForLoop's update clause, nil if elided.
func (n *Node) Update() *Node {
	if n.Kind != ForLoop {
		panic(wrongKind("Update", n, ForLoop))
	}
	return n.Child(2)
}

// LValTarget returns a ForIn's left-hand binding target.
func (n *Node) LValTarget() *Node {
	if n.Kind != ForIn {
		panic(wrongKind("LValTarget", n, ForIn))
	}
	return n.Child(0)
}

// Block returns a Try's protected block.
func (n *Node) Block() *Node {
	if n.Kind != Try {
		panic(wrongKind("Block", n, Try))
	}
	return n.Child(0)
}

// CatchParam returns a Try's catch binding Identifier, nil if there is no
// catch clause.
func (n *Node) CatchParam() *Node {
	if n.Kind != Try {
		panic(wrongKind("CatchParam", n, Try))
	}
	return n.Child(1)
}

// CatchBlock returns a Try's catch block, nil if there is no catch clause.
func (n *Node) CatchBlock() *Node {
	if n.Kind != Try {
		panic(wrongKind("CatchBlock", n, Try))
	}
	return n.Child(2)
}

// FinallyBlock returns a Try's finally block, nil if there is none.
func (n *Node) FinallyBlock() *Node {
	if n.Kind != Try {
		panic(wrongKind("FinallyBlock", n, Try))
	}
	return n.Child(3)
}

// Discriminant returns a Switch's discriminant expression.
func (n *Node) Discriminant() *Node {
	if n.Kind != Switch {
		panic(wrongKind("Discriminant", n, Switch))
	}
	return n.Child(0)
}

// Clauses returns a Switch's StatementList of CaseClause/DefaultClause
// children.
func (n *Node) Clauses() *Node {
	if n.Kind != Switch {
		panic(wrongKind("Clauses", n, Switch))
	}
	return n.Child(1)
}

// Declarations returns a VarDeclaration's declarator children: each is
// either an Identifier (no initializer) or an Assignment (name = init).
func (n *Node) Declarations() []*Node {
	if n.Kind != VarDeclaration {
		panic(wrongKind("Declarations", n, VarDeclaration))
	}
	return n.children
}

// SetIterator flips the iterator flag that suppresses this VarDeclaration's
// trailing semicolon when it is spliced into a for-loop header
// (NodeVarDeclaration::setIterator in the source this spec was distilled
// from).
func (n *Node) SetIterator(v bool) {
	if n.Kind != VarDeclaration {
		panic(wrongKind("SetIterator", n, VarDeclaration))
	}
	n.Iterator = v
}

// StmtExprKind returns a StatementWithExpression's form: throw, return,
// continue or break.
func (n *Node) StmtExprKind() token.StatementExprKind {
	if n.Kind != StatementWithExpression {
		panic(wrongKind("StmtExprKind", n, StatementWithExpression))
	}
	return n.StmtKind
}
