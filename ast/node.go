package ast

import "github.com/t14raptor/go-ast3/token"

// Node is a single AST node of the variant named by Kind (spec §3). Every
// node carries a source line number, an ordered list of children, and
// whichever payload fields its Kind defines; fields not meaningful for a
// given Kind are simply left at their zero value.
//
// A child slot that is syntactically present but empty is an absent slot,
// modeled the idiomatic Go way: a nil *Node in the children list, not a
// separate sentinel value (spec §9 "Absent child slot").
type Node struct {
	Kind   Kind
	lineno int

	children []*Node

	// Leaf payload. Meaningful subset depends on Kind:
	//   NumericLiteral:  Num
	//   StringLiteral:   Str, Quoted
	//   RegexLiteral:    Str (body), Flags
	//   BooleanLiteral:  Bool
	//   Identifier:      name
	Num    float64
	Str    string
	Quoted bool
	Flags  string
	Bool   bool
	name   string

	// Operator payload. Meaningful subset depends on Kind.
	Op        token.Operator
	AssignOp  token.AssignOp
	UnaryOp   token.UnaryOp
	PostfixOp token.PostfixOp
	StmtKind  token.StatementExprKind

	// VarDeclaration: suppresses the trailing ';' when the declaration is
	// spliced into a for-loop header rather than standing alone.
	Iterator bool
}

// Lineno returns the node's source line number, 0 meaning unknown/synthetic.
func (n *Node) Lineno() int {
	if n == nil {
		return 0
	}
	return n.lineno
}

// SetLineno overwrites the node's line number.
func (n *Node) SetLineno(lineno int) {
	n.lineno = lineno
}

// ChildNodes returns the node's ordered child list. The slice is a direct
// view onto the node's storage: mutating the elements the caller gets back
// changes the tree, but growing or shrinking it should go through
// AppendChild/PrependChild/InsertBefore/RemoveChild/ReplaceChild rather than
// reslicing directly.
func (n *Node) ChildNodes() []*Node {
	return n.children
}

// Empty reports whether the node's child list has no elements (spec §9
// Node::empty()).
func (n *Node) Empty() bool {
	return len(n.children) == 0
}

// Child returns the child at position pos, or nil if that slot is absent or
// out of range.
func (n *Node) Child(pos int) *Node {
	if pos < 0 || pos >= len(n.children) {
		return nil
	}
	return n.children[pos]
}

// AppendChild adds child to the end of the list and returns n for chaining.
func (n *Node) AppendChild(child *Node) *Node {
	n.children = append(n.children, child)
	return n
}

// PrependChild adds child to the front of the list and returns n for chaining.
func (n *Node) PrependChild(child *Node) *Node {
	n.children = append([]*Node{child}, n.children...)
	return n
}

// InsertBefore inserts child immediately before position pos and returns n.
func (n *Node) InsertBefore(child *Node, pos int) *Node {
	n.children = append(n.children[:pos:pos], append([]*Node{child}, n.children[pos:]...)...)
	return n
}

// RemoveChild detaches and returns the child at position pos, transferring
// ownership to the caller.
func (n *Node) RemoveChild(pos int) *Node {
	removed := n.children[pos]
	n.children = append(n.children[:pos], n.children[pos+1:]...)
	return removed
}

// ReplaceChild swaps in child at position pos and returns the node that was
// there, transferring ownership of the detached node to the caller.
func (n *Node) ReplaceChild(child *Node, pos int) *Node {
	old := n.children[pos]
	n.children[pos] = child
	return old
}

// SetChildren wholesale-replaces a variable-arity node's child list. Used by
// the reducer when it rebuilds a StatementList/ArgList/etc. after dropping
// elements, rather than removing them one at a time.
func (n *Node) SetChildren(children []*Node) {
	n.children = children
}
