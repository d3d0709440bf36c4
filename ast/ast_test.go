package ast

import (
	"testing"

	"github.com/t14raptor/go-ast3/token"
)

func TestChildListMutators(t *testing.T) {
	list := NewStatementList(nil, 1)
	a := NewNumericLiteral(1, 1)
	b := NewNumericLiteral(2, 1)
	c := NewNumericLiteral(3, 1)

	list.AppendChild(a)
	list.AppendChild(c)
	list.InsertBefore(b, 1)

	got := list.Statements()
	if len(got) != 3 || got[0] != a || got[1] != b || got[2] != c {
		t.Fatalf("unexpected children after insert: %v", got)
	}

	removed := list.RemoveChild(1)
	if removed != b {
		t.Fatalf("RemoveChild returned %v, want %v", removed, b)
	}
	if len(list.Statements()) != 2 {
		t.Fatalf("expected 2 children after remove, got %d", len(list.Statements()))
	}

	old := list.ReplaceChild(b, 0)
	if old != a {
		t.Fatalf("ReplaceChild returned %v, want %v", old, a)
	}
	if list.Child(0) != b {
		t.Fatalf("Child(0) = %v, want %v", list.Child(0), b)
	}
}

func TestEmpty(t *testing.T) {
	list := NewStatementList(nil, 1)
	if !list.Empty() {
		t.Error("fresh StatementList should be empty")
	}
	list.AppendChild(NewThis(1))
	if list.Empty() {
		t.Error("StatementList with a child should not be empty")
	}
}

func TestIdentifierRename(t *testing.T) {
	id := NewIdentifier("foo", 1)
	if id.Name() != "foo" {
		t.Fatalf("Name() = %q, want foo", id.Name())
	}
	id.Rename("bar")
	if id.Name() != "bar" {
		t.Fatalf("Name() after rename = %q, want bar", id.Name())
	}
}

func TestIsEval(t *testing.T) {
	call := NewFunctionCall(NewIdentifier("eval", 1), NewArgList(nil, 1), 1)
	if !call.IsEval() {
		t.Error("call to eval should report IsEval true")
	}
	call2 := NewFunctionCall(NewIdentifier("notEval", 1), NewArgList(nil, 1), 1)
	if call2.IsEval() {
		t.Error("call to notEval should report IsEval false")
	}
}

func TestIsValidLVal(t *testing.T) {
	ident := NewIdentifier("x", 1)
	if !IsValidLVal(ident) {
		t.Error("identifier should be a valid lvalue")
	}
	member := NewStaticMemberExpression(NewThis(1), NewIdentifier("x", 1), 1)
	if !IsValidLVal(member) {
		t.Error("member expression should be a valid lvalue")
	}
	wrapped := NewParenthetical(ident, 1)
	if !IsValidLVal(wrapped) {
		t.Error("parenthesized identifier should be a valid lvalue")
	}
	lit := NewNumericLiteral(1, 1)
	if IsValidLVal(lit) {
		t.Error("numeric literal should not be a valid lvalue")
	}
}

func TestCompareTruthyFalsy(t *testing.T) {
	if !CompareTruthy(NewBooleanLiteral(true, 1)) {
		t.Error("true literal should be constant-truthy")
	}
	if !CompareFalsy(NewBooleanLiteral(false, 1)) {
		t.Error("false literal should be constant-falsy")
	}
	if !CompareTruthy(NewNumericLiteral(1, 1)) {
		t.Error("nonzero numeric literal should be constant-truthy")
	}
	if !CompareFalsy(NewNumericLiteral(0, 1)) {
		t.Error("zero numeric literal should be constant-falsy")
	}
	ident := NewIdentifier("x", 1)
	if CompareTruthy(ident) || CompareFalsy(ident) {
		t.Error("identifier should be neither constant-truthy nor constant-falsy")
	}
	wrapped := NewParenthetical(NewBooleanLiteral(true, 1), 1)
	if !CompareTruthy(wrapped) {
		t.Error("parenthesized true literal should be constant-truthy")
	}
}

func TestEqual(t *testing.T) {
	a := NewOperator(token.Plus, NewNumericLiteral(1, 1), NewNumericLiteral(2, 1), 1)
	b := NewOperator(token.Plus, NewNumericLiteral(1, 1), NewNumericLiteral(2, 1), 99)
	if !Equal(a, b) {
		t.Error("structurally identical trees (differing only in lineno) should be Equal")
	}

	c := NewOperator(token.Minus, NewNumericLiteral(1, 1), NewNumericLiteral(2, 1), 1)
	if Equal(a, c) {
		t.Error("trees differing in operator should not be Equal")
	}

	d := NewStatementList([]*Node{NewThis(1)}, 1)
	e := NewStatementList([]*Node{NewThis(1), NewThis(1)}, 1)
	if Equal(d, e) {
		t.Error("trees of different child-list length should not be Equal, unlike the source's odd-corner comparison")
	}
}

func TestClone(t *testing.T) {
	orig := NewIf(
		NewIdentifier("x", 1),
		NewStatementList([]*Node{NewThis(2)}, 2),
		nil,
		1,
	)
	cloned := Clone(orig)
	if !Equal(orig, cloned) {
		t.Fatal("clone should be structurally Equal to the original")
	}
	if cloned == orig || cloned.Then() == orig.Then() {
		t.Fatal("clone should not alias the original's nodes")
	}
	cloned.Then().AppendChild(NewThis(3))
	if len(orig.Then().Statements()) == len(cloned.Then().Statements()) {
		t.Fatal("mutating the clone should not affect the original")
	}
}

func TestVarDeclarationIterator(t *testing.T) {
	decl := NewVarDeclaration([]*Node{NewIdentifier("i", 1)}, 1)
	if decl.Iterator {
		t.Error("fresh VarDeclaration should not be an iterator by default")
	}
	decl.SetIterator(true)
	if !decl.Iterator {
		t.Error("SetIterator(true) should set Iterator")
	}
}

// Label carries its label as a real Identifier child (spec §3.1: Label[2] —
// Identifier, statement), not a bare string field.
func TestLabelAccessors(t *testing.T) {
	body := NewStatementWithExpression(token.Break, NewIdentifier("outer", 1), 1)
	label := NewLabel(NewIdentifier("outer", 1), body, 1)
	if label.Label().Kind != Identifier || label.Label().Name() != "outer" {
		t.Fatalf("Label() = %v, want Identifier \"outer\"", label.Label())
	}
	if label.Body() != body {
		t.Fatalf("Body() = %v, want %v", label.Body(), body)
	}
}
