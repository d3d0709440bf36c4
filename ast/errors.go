package ast

import "fmt"

// StructuralError reports a malformed tree: a child slot holding a Kind the
// grammar does not permit there, or a fixed-arity node with the wrong number
// of children (spec §7).
type StructuralError struct {
	Op      string
	Kind    Kind
	Message string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("ast: %s on %s: %s", e.Op, e.Kind, e.Message)
}

// PayloadError reports a leaf value outside its legal domain: a non-finite
// NumericLiteral, an empty Identifier name, and similar (spec §7).
type PayloadError struct {
	Op      string
	Kind    Kind
	Message string
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("ast: %s on %s: %s", e.Op, e.Kind, e.Message)
}

// InvariantError reports a violation of one of the data-model invariants
// I1–I4 (spec §3): most commonly an accessor called against the wrong Kind.
type InvariantError struct {
	Op      string
	Kind    Kind
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("ast: %s on %s: %s", e.Op, e.Kind, e.Message)
}

// wrongKind builds the InvariantError an accessor panics with when called
// against a Node whose Kind it doesn't support.
func wrongKind(op string, n *Node, want ...Kind) error {
	return &InvariantError{
		Op:      op,
		Kind:    n.Kind,
		Message: fmt.Sprintf("expected one of %v, got %s", want, n.Kind),
	}
}
