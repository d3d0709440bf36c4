package ast

import "github.com/t14raptor/go-ast3/token"

// Constructors below each take exactly the child slots their Kind's fixed
// arity specifies (spec §3.1); a *Node parameter that may legally be absent
// accepts nil directly, which becomes that slot's nil entry in children.
// Variable-arity kinds (Program, StatementList, ArgList, ObjectLiteral,
// ArrayLiteral, VarDeclaration) take a []*Node instead and copy it, so later
// mutation of the caller's slice doesn't alias the node's own storage.

func leaf(kind Kind, lineno int) *Node {
	return &Node{Kind: kind, lineno: lineno}
}

func fixed(kind Kind, lineno int, children ...*Node) *Node {
	return &Node{Kind: kind, lineno: lineno, children: children}
}

func variadic(kind Kind, lineno int, children []*Node) *Node {
	cp := make([]*Node, len(children))
	copy(cp, children)
	return &Node{Kind: kind, lineno: lineno, children: cp}
}

// NewNumericLiteral builds a NumericLiteral leaf.
func NewNumericLiteral(value float64, lineno int) *Node {
	n := leaf(NumericLiteral, lineno)
	n.Num = value
	return n
}

// NewStringLiteral builds a StringLiteral leaf. value is the literal's
// content with quoting already resolved: see StringLiteral.UnquotedValue.
func NewStringLiteral(value string, quoted bool, lineno int) *Node {
	n := leaf(StringLiteral, lineno)
	n.Str = value
	n.Quoted = quoted
	return n
}

// NewRegexLiteral builds a RegexLiteral leaf from its body and flags, neither
// of which includes the delimiting slashes.
func NewRegexLiteral(body, flags string, lineno int) *Node {
	n := leaf(RegexLiteral, lineno)
	n.Str = body
	n.Flags = flags
	return n
}

// NewBooleanLiteral builds a BooleanLiteral leaf.
func NewBooleanLiteral(value bool, lineno int) *Node {
	n := leaf(BooleanLiteral, lineno)
	n.Bool = value
	return n
}

// NewNullLiteral builds a NullLiteral leaf.
func NewNullLiteral(lineno int) *Node {
	return leaf(NullLiteral, lineno)
}

// NewThis builds a This leaf.
func NewThis(lineno int) *Node {
	return leaf(This, lineno)
}

// NewEmptyExpression builds an EmptyExpression leaf: an absent expression
// slot that nonetheless needs its own lineno, e.g. the elided test of
// `for (;;)`.
func NewEmptyExpression(lineno int) *Node {
	return leaf(EmptyExpression, lineno)
}

// NewIdentifier builds an Identifier leaf.
func NewIdentifier(name string, lineno int) *Node {
	n := leaf(Identifier, lineno)
	n.name = name
	return n
}

// NewParenthetical wraps expr in an explicit set of parentheses.
func NewParenthetical(expr *Node, lineno int) *Node {
	return fixed(Parenthetical, lineno, expr)
}

// NewUnary builds a prefix unary expression (delete, void, typeof, ++x, --x,
// +x, -x, ~x, !x).
func NewUnary(op token.UnaryOp, operand *Node, lineno int) *Node {
	n := fixed(Unary, lineno, operand)
	n.UnaryOp = op
	return n
}

// NewPostfix builds a postfix increment/decrement expression (x++, x--).
func NewPostfix(op token.PostfixOp, operand *Node, lineno int) *Node {
	n := fixed(Postfix, lineno, operand)
	n.PostfixOp = op
	return n
}

// NewOperator builds a binary operator expression.
func NewOperator(op token.Operator, left, right *Node, lineno int) *Node {
	n := fixed(Operator, lineno, left, right)
	n.Op = op
	return n
}

// NewAssignment builds an assignment expression, lval = rval (or a
// compound-assignment variant per op).
func NewAssignment(op token.AssignOp, lval, rval *Node, lineno int) *Node {
	n := fixed(Assignment, lineno, lval, rval)
	n.AssignOp = op
	return n
}

// NewConditionalExpression builds test ? consequent : alternate.
func NewConditionalExpression(test, consequent, alternate *Node, lineno int) *Node {
	return fixed(ConditionalExpression, lineno, test, consequent, alternate)
}

// NewFunctionCall builds callee(args...). args must be an ArgList node.
func NewFunctionCall(callee, args *Node, lineno int) *Node {
	return fixed(FunctionCall, lineno, callee, args)
}

// NewFunctionConstructor builds `new callee(args...)`. args must be an
// ArgList node.
func NewFunctionConstructor(callee, args *Node, lineno int) *Node {
	return fixed(FunctionConstructor, lineno, callee, args)
}

// NewStaticMemberExpression builds object.property; property must be an
// Identifier.
func NewStaticMemberExpression(object, property *Node, lineno int) *Node {
	return fixed(StaticMemberExpression, lineno, object, property)
}

// NewDynamicMemberExpression builds object[property].
func NewDynamicMemberExpression(object, property *Node, lineno int) *Node {
	return fixed(DynamicMemberExpression, lineno, object, property)
}

// NewObjectLiteral builds {props...}; each element must be an
// ObjectLiteralProperty node.
func NewObjectLiteral(props []*Node, lineno int) *Node {
	return variadic(ObjectLiteral, lineno, props)
}

// NewObjectLiteralProperty builds a single key: value pair of an object
// literal.
func NewObjectLiteralProperty(key, value *Node, lineno int) *Node {
	return fixed(ObjectLiteralProperty, lineno, key, value)
}

// NewArrayLiteral builds [elements...]. A nil element is an elision (a hole
// left by a bare comma).
func NewArrayLiteral(elements []*Node, lineno int) *Node {
	return variadic(ArrayLiteral, lineno, elements)
}

// NewProgram builds the root node of a toplevel script.
func NewProgram(statements []*Node, lineno int) *Node {
	return variadic(Program, lineno, statements)
}

// NewStatementList builds a braced block of statements.
func NewStatementList(statements []*Node, lineno int) *Node {
	return variadic(StatementList, lineno, statements)
}

// NewFunctionDeclaration builds `function name(params) { body }`. params
// must be an ArgList of Identifier nodes, body a StatementList.
func NewFunctionDeclaration(name, params, body *Node, lineno int) *Node {
	return fixed(FunctionDeclaration, lineno, name, params, body)
}

// NewFunctionExpression builds a function expression; name may be nil for
// an anonymous function.
func NewFunctionExpression(name, params, body *Node, lineno int) *Node {
	return fixed(FunctionExpression, lineno, name, params, body)
}

// NewArgList builds a bare comma-separated list used for call arguments or
// declared parameters.
func NewArgList(items []*Node, lineno int) *Node {
	return variadic(ArgList, lineno, items)
}

// NewIf builds if (cond) then [else els]. els may be nil.
func NewIf(cond, then, els *Node, lineno int) *Node {
	return fixed(If, lineno, cond, then, els)
}

// NewWhile builds while (cond) body.
func NewWhile(cond, body *Node, lineno int) *Node {
	return fixed(While, lineno, cond, body)
}

// NewDoWhile builds do body while (cond).
func NewDoWhile(body, cond *Node, lineno int) *Node {
	return fixed(DoWhile, lineno, body, cond)
}

// NewForLoop builds for (init; cond; update) body. init, cond and update may
// each be nil (an elided clause).
func NewForLoop(init, cond, update, body *Node, lineno int) *Node {
	return fixed(ForLoop, lineno, init, cond, update, body)
}

// NewForIn builds for (lval in object) body.
func NewForIn(lval, object, body *Node, lineno int) *Node {
	return fixed(ForIn, lineno, lval, object, body)
}

// NewWith builds with (object) body.
func NewWith(object, body *Node, lineno int) *Node {
	return fixed(With, lineno, object, body)
}

// NewTry builds try block [catch (catchParam) catchBlock] [finally
// finallyBlock]. catchParam, catchBlock and finallyBlock may each be nil,
// though a non-nil catchBlock implies a non-nil catchParam.
func NewTry(block, catchParam, catchBlock, finallyBlock *Node, lineno int) *Node {
	return fixed(Try, lineno, block, catchParam, catchBlock, finallyBlock)
}

// NewSwitch builds switch (discriminant) { clauses }. clauses must be a
// StatementList of CaseClause/DefaultClause nodes.
func NewSwitch(discriminant, clauses *Node, lineno int) *Node {
	return fixed(Switch, lineno, discriminant, clauses)
}

// NewCaseClause builds the `case test:` marker of a switch clause. Its
// statements are not a child of this node: they're siblings of it directly
// inside the enclosing Switch's clause StatementList (spec §3.1's
// CaseClause[1]).
func NewCaseClause(test *Node, lineno int) *Node {
	return fixed(CaseClause, lineno, test)
}

// NewDefaultClause builds the `default:` marker of a switch clause (spec
// §3.1's DefaultClause[0]).
func NewDefaultClause(lineno int) *Node {
	return leaf(DefaultClause, lineno)
}

// NewVarDeclaration builds `var decls...`. Each element is either an
// Identifier (no initializer) or an Assignment whose lval is the declared
// name (`x = expr`).
func NewVarDeclaration(decls []*Node, lineno int) *Node {
	return variadic(VarDeclaration, lineno, decls)
}

// NewStatementWithExpression builds throw/return/continue/break. expr may be
// nil (bare return/continue/break); a continue/break that names a label
// carries that label's Identifier as expr.
func NewStatementWithExpression(kind token.StatementExprKind, expr *Node, lineno int) *Node {
	n := fixed(StatementWithExpression, lineno, expr)
	n.StmtKind = kind
	return n
}

// NewLabel builds `label: body` (spec §3.1: Label[2] — Identifier, statement).
// label must be an Identifier.
func NewLabel(label, body *Node, lineno int) *Node {
	return fixed(Label, lineno, label, body)
}
