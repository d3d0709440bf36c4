package ast

// Equal reports whether a and b are structurally identical: same Kind, same
// payload, same number of children, each pairwise Equal. This is stricter
// than the comparison the source this spec was distilled from implements —
// that version stops comparing as soon as the shorter child list runs out
// and calls the nodes equal regardless of what remains in the longer one, an
// "odd corner" the spec (§9) calls out as worth fixing rather than
// preserving. Here, mismatched lengths are simply unequal.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		return true
	}
	if a.Kind != b.Kind {
		return false
	}
	if !payloadEqual(a, b) {
		return false
	}
	if len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}

func payloadEqual(a, b *Node) bool {
	switch a.Kind {
	case NumericLiteral:
		return a.Num == b.Num
	case StringLiteral:
		return a.Str == b.Str && a.Quoted == b.Quoted
	case RegexLiteral:
		return a.Str == b.Str && a.Flags == b.Flags
	case BooleanLiteral:
		return a.Bool == b.Bool
	case Identifier:
		return a.name == b.name
	case Unary:
		return a.UnaryOp == b.UnaryOp
	case Postfix:
		return a.PostfixOp == b.PostfixOp
	case Operator:
		return a.Op == b.Op
	case Assignment:
		return a.AssignOp == b.AssignOp
	case VarDeclaration:
		return a.Iterator == b.Iterator
	case StatementWithExpression:
		return a.StmtKind == b.StmtKind
	default:
		return true
	}
}
