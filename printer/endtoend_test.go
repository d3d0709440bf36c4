package printer

import (
	"testing"

	"github.com/t14raptor/go-ast3/ast"
	"github.com/t14raptor/go-ast3/reducer"
	"github.com/t14raptor/go-ast3/token"
)

// These exercise spec.md §8's literal end-to-end scenarios S1-S6: reduce a
// hand-built tree, then render it, and check the exact compact text.

func TestEndToEndS1ConstantIfElimination(t *testing.T) {
	callA := ast.NewFunctionCall(ast.NewIdentifier("a", 1), ast.NewArgList(nil, 1), 1)
	callB := ast.NewFunctionCall(ast.NewIdentifier("b", 1), ast.NewArgList(nil, 1), 1)
	root := ast.NewIf(
		ast.NewBooleanLiteral(true, 1),
		ast.NewStatementList([]*ast.Node{callA}, 1),
		ast.NewStatementList([]*ast.Node{callB}, 1),
		1,
	)
	got := reducer.Reduce(root)
	if got.Kind != ast.StatementList {
		t.Fatalf("expected the reduced root to be a StatementList, got %v", got.Kind)
	}
	want := "a();"
	if out := Render(got, None); out != want {
		t.Fatalf("Render(Reduce(if(true){a()}else{b()})) = %q, want %q", out, want)
	}
}

func TestEndToEndS2ShortCircuitOr(t *testing.T) {
	n := ast.NewOperator(token.LogicalOr, ast.NewNumericLiteral(0, 1), ast.NewIdentifier("x", 1), 1)
	got := reducer.Reduce(n)
	want := "x"
	if out := Render(got, None); out != want {
		t.Fatalf("Render(Reduce(0 || x)) = %q, want %q", out, want)
	}
}

func TestEndToEndS3PropertyKeyCanonicalization(t *testing.T) {
	obj := ast.NewObjectLiteral([]*ast.Node{
		ast.NewObjectLiteralProperty(ast.NewStringLiteral("foo", true, 1), ast.NewNumericLiteral(1, 1), 1),
		ast.NewObjectLiteralProperty(ast.NewStringLiteral("2bad", true, 1), ast.NewNumericLiteral(2, 1), 1),
	}, 1)
	got := reducer.Reduce(obj)
	want := `{foo:1,"2bad":2}`
	if out := Render(got, None); out != want {
		t.Fatalf(`Render(Reduce({"foo":1,"2bad":2})) = %q, want %q`, out, want)
	}
}

func TestEndToEndS4BracketToDot(t *testing.T) {
	access := ast.NewDynamicMemberExpression(ast.NewIdentifier("a", 1), ast.NewStringLiteral("b", true, 1), 1)
	got := reducer.Reduce(access)
	want := "a.b"
	if out := Render(got, None); out != want {
		t.Fatalf(`Render(Reduce(a["b"])) = %q, want %q`, out, want)
	}

	reserved := ast.NewDynamicMemberExpression(ast.NewIdentifier("a", 1), ast.NewStringLiteral("class", true, 1), 1)
	got2 := reducer.Reduce(reserved)
	if got2.Kind != ast.DynamicMemberExpression {
		t.Fatalf(`a["class"] should stay a dynamic member (reserved word), got %v`, got2.Kind)
	}
	wantReserved := `a["class"]`
	if out := Render(got2, None); out != wantReserved {
		t.Fatalf(`Render(Reduce(a["class"])) = %q, want %q`, out, wantReserved)
	}
}

func TestEndToEndS5EmptyElseCollapseWithNegation(t *testing.T) {
	work := ast.NewFunctionCall(ast.NewIdentifier("work", 1), ast.NewArgList(nil, 1), 1)
	n := ast.NewIf(
		ast.NewIdentifier("cond", 1),
		ast.NewStatementList(nil, 1),
		ast.NewStatementList([]*ast.Node{work}, 1),
		1,
	)
	got := reducer.Reduce(n)
	// spec.md:134's must formula (must = pretty || then-is-empty ||
	// else-is-present) and the original NodeIf::render it's grounded on both
	// give no braces here: the inverted If's else is cleared and its new
	// then-block holds a single statement, so renderBlock elides the braces.
	// See DESIGN.md's revision notes for the §8 S5 text discrepancy this
	// resolves.
	want := "if(!(cond))work();"
	if out := Render(got, None); out != want {
		t.Fatalf(`Render(Reduce(if(cond){}else{work();})) = %q, want %q`, out, want)
	}
}

func TestEndToEndS6LineCatchup(t *testing.T) {
	root := ast.NewStatementList([]*ast.Node{
		ast.NewIdentifier("a", 1),
		ast.NewIdentifier("b", 4),
	}, 1)
	want := "a;\n\n\nb;"
	if out := Render(root, MaintainLineno); out != want {
		t.Fatalf("Render(tree, MaintainLineno) = %q, want %q", out, want)
	}
}
