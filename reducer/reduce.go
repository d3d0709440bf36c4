// Package reducer implements the bottom-up constant-folding and
// dead-branch-elimination rewrite of spec.md §4.3. Reduce walks a tree
// depth-first, reduces every child first, then applies this node's own
// rule — the same "reduce children, then self" shape as
// Node::reduce/reduceChildren in the source this spec was distilled from,
// expressed here as one type-switch dispatch function per the teacher's
// single-function-dispatch idiom rather than a per-type virtual method.
package reducer

import (
	"slices"

	"github.com/t14raptor/go-ast3/ast"
	"github.com/t14raptor/go-ast3/token"
)

// Reduce returns a rewritten tree with every fold and elimination spec §4.3
// describes applied, bottom-up, in a single pass. Reduce never mutates n in
// place beyond what the shared helpers on *ast.Node already do (child-list
// splicing); nodes that survive unchanged are the original *ast.Node, not a
// copy.
func Reduce(n *ast.Node) *ast.Node {
	if n == nil {
		return nil
	}
	reduceChildren(n)
	return reduceSelf(n)
}

// reduceChildren reduces every child in place, dropping any child that
// reduces to absent from a variable-arity list (spec §4.1's default rule);
// a fixed-arity node keeps its slot but may now hold nil.
func reduceChildren(n *ast.Node) {
	children := n.ChildNodes()
	if n.Kind.IsVariableArity() {
		out := make([]*ast.Node, 0, len(children))
		for _, c := range children {
			if r := Reduce(c); r != nil {
				out = append(out, r)
			}
		}
		n.SetChildren(out)
		return
	}
	for i, c := range children {
		n.ReplaceChild(Reduce(c), i)
	}
}

func reduceSelf(n *ast.Node) *ast.Node {
	switch n.Kind {
	case ast.StatementList, ast.Program:
		return reduceStatementList(n)
	case ast.Operator:
		return reduceOperator(n)
	case ast.ConditionalExpression:
		return reduceConditional(n)
	case ast.Unary:
		return reduceUnary(n)
	case ast.If:
		return reduceIf(n)
	case ast.FunctionCall:
		return reduceFunctionCall(n)
	case ast.ObjectLiteralProperty:
		return reduceObjectLiteralProperty(n)
	case ast.DynamicMemberExpression:
		return reduceDynamicMember(n)
	case ast.Parenthetical:
		return n
	default:
		return n
	}
}

// reduceStatementList drops any child statement that is a constant
// expression with no side effect (spec §4.3 rule 1): a bare literal used as
// a statement contributes nothing to program behavior.
func reduceStatementList(n *ast.Node) *ast.Node {
	out := slices.DeleteFunc(slices.Clone(n.ChildNodes()), isDeadExpressionStatement)
	n.SetChildren(out)
	return n
}

// isDeadExpressionStatement reports whether stmt is a statement that can be
// dropped with no change in behavior: an absent child, or an expression
// whose value is statically known (spec §3 I4's compare(true)/compare(false)
// — literals and parenthesized literals only). Anything else, including a
// bare identifier reference or string literal, is kept: either could throw
// or otherwise matter at runtime, and I4 is deliberately conservative about
// what counts as constant.
func isDeadExpressionStatement(stmt *ast.Node) bool {
	if stmt == nil {
		return true
	}
	return ast.CompareTruthy(stmt) || ast.CompareFalsy(stmt)
}

// reduceOperator folds constant comma, logical-or and logical-and
// expressions (spec §4.3 rule 2): `a, b` to b when a has no side effect to
// preserve, `true || x` to true, `false && x` to false, and their
// mirror-image short circuits on the left operand's constant truthiness.
func reduceOperator(n *ast.Node) *ast.Node {
	left, right := n.Left(), n.Right()
	switch n.Op {
	case token.Comma:
		if isDeadExpressionStatement(left) {
			return right
		}
	case token.LogicalOr:
		if ast.CompareTruthy(left) {
			return left
		}
		if ast.CompareFalsy(left) {
			if ast.CompareFalsy(right) {
				return ast.NewBooleanLiteral(false, n.Lineno())
			}
			return right
		}
	case token.LogicalAnd:
		if ast.CompareFalsy(left) {
			return ast.NewBooleanLiteral(false, n.Lineno())
		}
		if ast.CompareTruthy(left) {
			if ast.CompareFalsy(right) {
				return ast.NewBooleanLiteral(false, n.Lineno())
			}
			return right
		}
	}
	return n
}

// reduceConditional folds `true ? a : b` to a and `false ? a : b` to b
// (spec §4.3 rule 3).
func reduceConditional(n *ast.Node) *ast.Node {
	test := n.Test()
	if ast.CompareTruthy(test) {
		return n.Consequent()
	}
	if ast.CompareFalsy(test) {
		return n.Alternate()
	}
	return n
}

// reduceUnary folds `!true`/`!false` into the opposite boolean literal
// (spec §4.3 rule 4).
func reduceUnary(n *ast.Node) *ast.Node {
	if n.UnaryOp != token.Not {
		return n
	}
	operand := n.Operand()
	if ast.CompareTruthy(operand) {
		return ast.NewBooleanLiteral(false, n.Lineno())
	}
	if ast.CompareFalsy(operand) {
		return ast.NewBooleanLiteral(true, n.Lineno())
	}
	return n
}

// reduceIf implements the rule set of spec §4.3 rule 5 as the six steps
// below, in the same order as the original's NodeIf::reduce:
//  1. a constant-truthy test drops the else branch entirely, keeping only
//     the then branch (returned as it is, e.g. its StatementList, not
//     wrapped in an if);
//  2. a constant-falsy test with no else drops the whole statement;
//  3. a constant-falsy test with an else keeps only the else branch;
//  4. an empty else is dropped outright, regardless of the (non-constant)
//     test;
//  5. with that empty else gone, both branches empty collapses the whole
//     statement to the bare condition expression (kept only for any side
//     effect evaluating it may have);
//  6. an empty then with a (now known non-empty) else inverts to
//     `if(!(test)) else-branch`, wrapping the original test in a
//     Parenthetical before negating it.
func reduceIf(n *ast.Node) *ast.Node {
	test, then, els := n.Test(), n.Then(), n.Else()

	if ast.CompareTruthy(test) {
		if then == nil {
			return nil
		}
		return then
	}
	if ast.CompareFalsy(test) {
		if els == nil {
			return nil
		}
		return els
	}

	if isEmptyStatement(els) {
		els = nil
		n.ReplaceChild(nil, 2)
	}
	if isEmptyStatement(then) && els == nil {
		return test
	}
	if isEmptyStatement(then) && els != nil {
		negated := ast.NewUnary(token.Not, ast.NewParenthetical(test, test.Lineno()), test.Lineno())
		return ast.NewIf(negated, els, nil, n.Lineno())
	}
	return n
}

func isEmptyStatement(n *ast.Node) bool {
	if n == nil {
		return true
	}
	if n.Kind == ast.EmptyExpression {
		return true
	}
	if n.Kind == ast.StatementList {
		return n.Empty()
	}
	return false
}

// reduceFunctionCall implements spec §4.3 rule 6: a call whose callee is
// literally the identifier "bagofholding" is replaced outright with the
// boolean literal false. This is a build-time feature-flag stub convention
// the surrounding build system relies on (spec §9 "bagofholding stub") — not
// a side-effect or scope analysis, and no other callee name is special.
func reduceFunctionCall(n *ast.Node) *ast.Node {
	callee := n.Callee()
	if callee != nil && callee.Kind == ast.Identifier && callee.Name() == "bagofholding" {
		return ast.NewBooleanLiteral(false, n.Lineno())
	}
	return n
}

// reduceObjectLiteralProperty canonicalizes a quoted string key that is
// also a legal identifier name into a bare Identifier key (spec §4.3 rule
// 7): `{"foo": 1}` and `{foo: 1}` are semantically identical property
// definitions, and the identifier form is preferred output.
func reduceObjectLiteralProperty(n *ast.Node) *ast.Node {
	key := n.Key()
	if key != nil && key.Kind == ast.StringLiteral && token.IsIdentifierName(key.UnquotedValue()) {
		ident := ast.NewIdentifier(key.UnquotedValue(), key.Lineno())
		return ast.NewObjectLiteralProperty(ident, n.Value(), n.Lineno())
	}
	return n
}

// reduceDynamicMember canonicalizes `obj["prop"]` into `obj.prop` when the
// subscript is a string literal that is also a legal identifier name (spec
// §4.3 rule 8): the static form is preferred output and is unambiguous
// since the subscript is constant.
func reduceDynamicMember(n *ast.Node) *ast.Node {
	prop := n.Property()
	if prop != nil && prop.Kind == ast.StringLiteral && token.IsIdentifierName(prop.UnquotedValue()) {
		ident := ast.NewIdentifier(prop.UnquotedValue(), prop.Lineno())
		return ast.NewStaticMemberExpression(n.Object(), ident, n.Lineno())
	}
	return n
}
