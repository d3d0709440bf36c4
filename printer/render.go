package printer

import (
	"github.com/t14raptor/go-ast3/ast"
	"github.com/t14raptor/go-ast3/numfmt"
	"github.com/t14raptor/go-ast3/token"
)

// Render walks n and returns its JavaScript source text under opts. n may be
// a Program (its statements are rendered in sequence), any other
// statement-kind node, or a bare expression.
func Render(n *ast.Node, opts Options) string {
	s := newState(opts)
	switch {
	case n == nil:
	case n.Kind == ast.Program || n.Kind == ast.StatementList:
		for i, stmt := range n.Statements() {
			if i > 0 {
				s.newline()
			}
			renderStatement(s, stmt)
		}
	case isStatementKind(n.Kind):
		renderStatement(s, n)
	default:
		render(s, n)
	}
	return s.out.String()
}

func isStatementKind(k ast.Kind) bool {
	switch k {
	case ast.FunctionDeclaration, ast.If, ast.While, ast.DoWhile,
		ast.ForLoop, ast.ForIn, ast.With, ast.Try, ast.Switch, ast.VarDeclaration,
		ast.StatementWithExpression, ast.Label:
		return true
	default:
		return false
	}
}

// render emits n in expression position. Absent children (nil) render as
// the empty string, matching the source this spec was distilled from: a
// missing for-header clause contributes nothing but the separating ';'
// still comes from the caller.
func render(s *state, n *ast.Node) {
	if n == nil {
		return
	}
	if s.maintainLineno() {
		s.catchUp(n.Lineno())
	}

	switch n.Kind {
	case ast.NumericLiteral:
		s.writeString(numfmt.Format(n.Num))

	case ast.StringLiteral:
		renderStringLiteral(s, n)

	case ast.RegexLiteral:
		s.writeString("/")
		s.writeString(n.Str)
		s.writeString("/")
		s.writeString(n.Flags)

	case ast.BooleanLiteral:
		if n.Bool {
			s.writeString("true")
		} else {
			s.writeString("false")
		}

	case ast.NullLiteral:
		s.writeString("null")

	case ast.This:
		s.writeString("this")

	case ast.EmptyExpression:
		// nothing

	case ast.Identifier:
		s.writeString(n.Name())

	case ast.Parenthetical:
		s.writeString("(")
		render(s, n.Expr())
		s.writeString(")")

	case ast.Unary:
		renderUnary(s, n)

	case ast.Postfix:
		render(s, n.Operand())
		s.writeString(n.PostfixOp.String())

	case ast.Operator:
		renderOperator(s, n)

	case ast.Assignment:
		render(s, n.LVal())
		s.writeString(n.AssignOp.String())
		render(s, n.RVal())

	case ast.ConditionalExpression:
		render(s, n.Test())
		s.writeString("?")
		render(s, n.Consequent())
		s.writeString(":")
		render(s, n.Alternate())

	case ast.FunctionCall:
		render(s, n.Callee())
		s.writeString("(")
		renderArgList(s, n.Args())
		s.writeString(")")

	case ast.FunctionConstructor:
		s.writeString("new ")
		render(s, n.Callee())
		s.writeString("(")
		renderArgList(s, n.Args())
		s.writeString(")")

	case ast.StaticMemberExpression:
		render(s, n.Object())
		s.writeString(".")
		render(s, n.Property())

	case ast.DynamicMemberExpression:
		render(s, n.Object())
		s.writeString("[")
		render(s, n.Property())
		s.writeString("]")

	case ast.ObjectLiteral:
		renderObjectLiteral(s, n)

	case ast.ObjectLiteralProperty:
		render(s, n.Key())
		s.writeString(":")
		render(s, n.Value())

	case ast.ArrayLiteral:
		renderArrayLiteral(s, n)

	case ast.FunctionExpression:
		renderFunction(s, n, "function")

	default:
		panic(&ast.InvariantError{Op: "render", Kind: n.Kind, Message: "not a renderable expression"})
	}
}

// renderStringLiteral writes a StringLiteral's content, quoted with double
// quotes and its special characters escaped unless Quoted is false — the
// unquoted form is used for property keys that print bare (spec §4.3 rule
// 7's inverse: a key that is a valid identifier name need not be quoted).
func renderStringLiteral(s *state, n *ast.Node) {
	if !n.Quoted {
		s.writeString(n.Str)
		return
	}
	s.writeString("\"")
	for _, r := range n.Str {
		switch r {
		case '"':
			s.writeString("\\\"")
		case '\\':
			s.writeString("\\\\")
		case '\n':
			s.writeString("\\n")
		case '\r':
			s.writeString("\\r")
		default:
			s.out.WriteRune(r)
		}
	}
	s.writeString("\"")
}

func renderUnary(s *state, n *ast.Node) {
	s.writeString(n.UnaryOp.String())
	operand := n.Operand()
	if n.UnaryOp.NeedsWordSpace() && (operand == nil || operand.Kind != ast.Parenthetical) {
		s.writeString(" ")
	}
	render(s, operand)
}

func renderOperator(s *state, n *ast.Node) {
	render(s, n.Left())
	switch {
	case n.Op == token.Comma:
		if s.pretty() {
			s.writeString(", ")
		} else {
			s.writeString(",")
		}
	case s.pretty():
		s.writeString(" ")
		s.writeString(n.Op.String())
		s.writeString(" ")
	case n.Op.Alphabetic():
		s.writeString(" ")
		s.writeString(n.Op.String())
		s.writeString(" ")
	default:
		s.writeString(n.Op.String())
	}
	render(s, n.Right())
}

func renderArgList(s *state, args *ast.Node) {
	if args == nil {
		return
	}
	for i, item := range args.Items() {
		if i > 0 {
			s.writeString(",")
		}
		render(s, item)
	}
}

func renderObjectLiteral(s *state, n *ast.Node) {
	s.writeString("{")
	for i, prop := range n.Properties() {
		if i > 0 {
			s.writeString(",")
		}
		render(s, prop)
	}
	s.writeString("}")
}

func renderArrayLiteral(s *state, n *ast.Node) {
	s.writeString("[")
	for i, elem := range n.Elements() {
		if i > 0 {
			s.writeString(",")
		}
		render(s, elem)
	}
	s.writeString("]")
}

func renderFunction(s *state, n *ast.Node, keyword string) {
	s.writeString(keyword)
	if name := n.FuncName(); name != nil {
		s.writeString(" ")
		render(s, name)
	}
	s.writeString("(")
	params := n.Params()
	if params != nil {
		for i, p := range params.Items() {
			if i > 0 {
				s.writeString(",")
			}
			render(s, p)
		}
	}
	s.writeString(")")
	renderBlock(s, n.Body(), true)
}

// renderBlock renders body in a block position (spec §4.2's renderBlock(must,
// state, indent)). body may be a StatementList or a bare statement built
// without one; either is treated as its list of statements (one, for a bare
// statement). When must is false:
//   - in compact mode, a one-statement list renders as that bare statement
//     with no braces;
//   - an empty list renders as a lone ';'.
//
// Pretty mode never takes the single-statement shortcut regardless of must —
// "braces always added around single-statement bodies" is one of its
// defining rules — but an empty list with must false is still a lone ';'.
// Otherwise (must true, or neither elision applies) the block is
// rendered in full: '{', each statement indented one level deeper, '}'.
func renderBlock(s *state, body *ast.Node, must bool) {
	var stmts []*ast.Node
	switch {
	case body == nil:
	case body.Kind == ast.StatementList:
		stmts = body.Statements()
	default:
		stmts = []*ast.Node{body}
	}
	if !must {
		if len(stmts) == 0 {
			s.writeString(";")
			return
		}
		if !s.pretty() && len(stmts) == 1 {
			renderStatement(s, stmts[0])
			return
		}
	}
	s.writeString("{")
	s.indent++
	for _, stmt := range stmts {
		s.newline()
		s.writeIndent()
		renderStatement(s, stmt)
	}
	s.indent--
	s.newline()
	s.writeIndent()
	s.writeString("}")
}

// isEmptyBody reports whether n is an absent or statement-less block
// position, the "then-is-empty" term of If's must formula below.
func isEmptyBody(n *ast.Node) bool {
	if n == nil {
		return true
	}
	return n.Kind == ast.StatementList && n.Empty()
}

// renderStatement renders n as a full statement, including its trailing
// semicolon where the grammar requires one.
func renderStatement(s *state, n *ast.Node) {
	if n == nil {
		s.writeString(";")
		return
	}
	if s.maintainLineno() {
		s.catchUp(n.Lineno())
	}

	switch n.Kind {
	case ast.StatementList:
		renderBlock(s, n, true)

	case ast.EmptyExpression:
		s.writeString(";")

	case ast.FunctionDeclaration:
		renderFunction(s, n, "function")

	case ast.If:
		renderIf(s, n)

	case ast.While:
		s.writeString("while(")
		render(s, n.Cond())
		s.writeString(")")
		renderBlock(s, n.Body(), s.pretty())

	case ast.DoWhile:
		s.writeString("do")
		renderBlock(s, n.Body(), s.pretty())
		s.writeString("while(")
		render(s, n.Cond())
		s.writeString(");")

	case ast.ForLoop:
		s.writeString("for(")
		renderForClause(s, n.Init())
		s.writeString(";")
		render(s, n.Cond())
		s.writeString(";")
		render(s, n.Update())
		s.writeString(")")
		renderBlock(s, n.Body(), s.pretty())

	case ast.ForIn:
		s.writeString("for(")
		renderForClause(s, n.LValTarget())
		s.writeString(" in ")
		render(s, n.Object())
		s.writeString(")")
		renderBlock(s, n.Body(), s.pretty())

	case ast.With:
		s.writeString("with(")
		render(s, n.Object())
		s.writeString(")")
		renderBlock(s, n.Body(), s.pretty())

	case ast.Try:
		renderTry(s, n)

	case ast.Switch:
		renderSwitch(s, n)

	case ast.VarDeclaration:
		renderVarDeclaration(s, n)

	case ast.StatementWithExpression:
		s.writeString(n.StmtKind.String())
		if expr := n.Expr(); expr != nil {
			s.writeString(" ")
			render(s, expr)
		}
		s.writeString(";")

	case ast.Label:
		render(s, n.Label())
		if s.pretty() {
			s.writeString(": ")
		} else {
			s.writeString(":")
		}
		renderStatement(s, n.Body())

	default:
		// Any expression-kind node used in statement position is an
		// expression statement: render it, then close with ';'.
		render(s, n)
		s.writeString(";")
	}
}

// renderForClause renders a for-header clause (init, or a for-in's lvalue),
// which may be a VarDeclaration printed without its own trailing ';'.
func renderForClause(s *state, n *ast.Node) {
	if n == nil {
		return
	}
	if n.Kind == ast.VarDeclaration {
		n.SetIterator(true)
		renderVarDeclaration(s, n)
		return
	}
	render(s, n)
}

// renderIf implements spec.md §4.2's If rule: the then-block always goes
// through renderBlock(must, …) with must = pretty || then-is-empty ||
// else-is-present; an else whose body is itself an If is inlined as
// `else if(…)`, otherwise it goes through renderBlock(false, …) with a space
// prepended if that didn't already start with '{' or ' '.
func renderIf(s *state, n *ast.Node) {
	s.writeString("if(")
	render(s, n.Cond())
	s.writeString(")")
	then, els := n.Then(), n.Else()
	must := s.pretty() || isEmptyBody(then) || els != nil
	renderBlock(s, then, must)
	if els == nil {
		return
	}
	if s.pretty() {
		s.writeString(" else")
	} else {
		s.writeString("else")
	}
	if els.Kind == ast.If {
		s.writeString(" ")
		renderStatement(s, els)
		return
	}
	text := s.renderToString(func(sub *state) { renderBlock(sub, els, false) })
	if text != "" && text[0] != '{' && text[0] != ' ' {
		s.writeString(" ")
	}
	s.writeString(text)
}

func renderTry(s *state, n *ast.Node) {
	s.writeString("try")
	renderBlock(s, n.Block(), true)
	if catchBlock := n.CatchBlock(); catchBlock != nil {
		s.writeString("catch(")
		render(s, n.CatchParam())
		s.writeString(")")
		renderBlock(s, catchBlock, true)
	}
	if fin := n.FinallyBlock(); fin != nil {
		s.writeString("finally")
		renderBlock(s, fin, true)
	}
}

// renderSwitch renders a Switch's flat clause StatementList (spec §3.1:
// CaseClause/DefaultClause carry no body of their own — their statements
// are siblings of the marker, directly inside the Switch's own list). The
// body's indentation is bumped one level deeper than the switch keyword's
// own line so case/default labels land at that level; the statements
// following a label are indented one further, stepped back down at the
// next label (spec.md §4.2's "indentation deliberately incremented by one"
// note) — so the closing brace lands aligned with the case labels, not with
// the switch keyword.
func renderSwitch(s *state, n *ast.Node) {
	s.writeString("switch(")
	render(s, n.Discriminant())
	s.writeString("){")
	s.indent++
	inClause := false
	for _, item := range n.Clauses().Statements() {
		switch item.Kind {
		case ast.CaseClause:
			if inClause {
				s.indent--
			}
			s.newline()
			s.writeIndent()
			s.writeString("case ")
			render(s, item.Test())
			s.writeString(":")
			s.indent++
			inClause = true
		case ast.DefaultClause:
			if inClause {
				s.indent--
			}
			s.newline()
			s.writeIndent()
			s.writeString("default:")
			s.indent++
			inClause = true
		default:
			s.newline()
			s.writeIndent()
			renderStatement(s, item)
		}
	}
	if inClause {
		s.indent--
	}
	s.newline()
	s.writeIndent()
	s.writeString("}")
}

func renderVarDeclaration(s *state, n *ast.Node) {
	s.writeString("var ")
	for i, decl := range n.Declarations() {
		if i > 0 {
			s.writeString(",")
		}
		if decl.Kind == ast.Assignment {
			render(s, decl.LVal())
			s.writeString("=")
			render(s, decl.RVal())
		} else {
			render(s, decl)
		}
	}
	if !n.Iterator {
		s.writeString(";")
	}
}
