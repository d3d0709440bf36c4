package ast

// IsValidLVal reports whether n can legally appear on the left of an
// assignment or as a for-in binding target (spec §3 I3): an Identifier, a
// member expression, or a Parenthetical wrapping one of those.
func IsValidLVal(n *Node) bool {
	if n == nil {
		return false
	}
	switch n.Kind {
	case Identifier, StaticMemberExpression, DynamicMemberExpression:
		return true
	case Parenthetical:
		return IsValidLVal(n.Expr())
	default:
		return false
	}
}

// CompareTruthy reports whether n is a constant expression whose runtime
// value is always truthy (spec §3 I4): a nonzero NumericLiteral, a `true`
// BooleanLiteral, or a Parenthetical wrapping one of those. Every other node
// — including ones that happen to be constant but aren't one of these
// literal forms — returns false rather than guessing.
func CompareTruthy(n *Node) bool {
	if n == nil {
		return false
	}
	switch n.Kind {
	case NumericLiteral:
		return n.Num != 0
	case BooleanLiteral:
		return n.Bool
	case Parenthetical:
		return CompareTruthy(n.Expr())
	default:
		return false
	}
}

// CompareFalsy reports whether n is a constant expression whose runtime
// value is always falsy: a zero NumericLiteral, a `false` BooleanLiteral, or
// a Parenthetical wrapping one of those. The mirror of CompareTruthy; a node
// that is neither truthy nor falsy by these rules returns false from both.
func CompareFalsy(n *Node) bool {
	if n == nil {
		return false
	}
	switch n.Kind {
	case NumericLiteral:
		return n.Num == 0
	case BooleanLiteral:
		return !n.Bool
	case Parenthetical:
		return CompareFalsy(n.Expr())
	default:
		return false
	}
}
