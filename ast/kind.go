package ast

// Kind tags the variant a Node represents (spec §3.1). Node is a tagged sum
// over these ~30-odd syntactic categories: one Go type carrying whichever
// payload fields its Kind defines, dispatched by type switch on Kind in the
// printer and reducer packages, rather than thirty separate Go types. This
// keeps the child-list operations (§4.1) uniform across every variant, the
// way childNodes()/appendChild()/etc. are uniform across every Node subclass
// in the source this spec was distilled from.
type Kind uint8

const (
	NumericLiteral Kind = iota
	StringLiteral
	RegexLiteral
	BooleanLiteral
	NullLiteral
	This
	EmptyExpression
	Identifier

	Parenthetical
	Unary
	Postfix
	Operator
	Assignment
	ConditionalExpression
	FunctionCall
	FunctionConstructor
	StaticMemberExpression
	DynamicMemberExpression
	ObjectLiteral
	ObjectLiteralProperty
	ArrayLiteral

	Program
	StatementList
	FunctionDeclaration
	FunctionExpression
	ArgList
	If
	While
	DoWhile
	ForLoop
	ForIn
	With
	Try
	Switch
	CaseClause
	DefaultClause
	VarDeclaration
	StatementWithExpression
	Label
)

var kindNames = [...]string{
	NumericLiteral:           "NumericLiteral",
	StringLiteral:            "StringLiteral",
	RegexLiteral:             "RegexLiteral",
	BooleanLiteral:           "BooleanLiteral",
	NullLiteral:              "NullLiteral",
	This:                     "This",
	EmptyExpression:          "EmptyExpression",
	Identifier:               "Identifier",
	Parenthetical:            "Parenthetical",
	Unary:                    "Unary",
	Postfix:                  "Postfix",
	Operator:                 "Operator",
	Assignment:               "Assignment",
	ConditionalExpression:    "ConditionalExpression",
	FunctionCall:             "FunctionCall",
	FunctionConstructor:      "FunctionConstructor",
	StaticMemberExpression:   "StaticMemberExpression",
	DynamicMemberExpression:  "DynamicMemberExpression",
	ObjectLiteral:            "ObjectLiteral",
	ObjectLiteralProperty:    "ObjectLiteralProperty",
	ArrayLiteral:             "ArrayLiteral",
	Program:                  "Program",
	StatementList:            "StatementList",
	FunctionDeclaration:      "FunctionDeclaration",
	FunctionExpression:       "FunctionExpression",
	ArgList:                  "ArgList",
	If:                       "If",
	While:                    "While",
	DoWhile:                  "DoWhile",
	ForLoop:                  "ForLoop",
	ForIn:                    "ForIn",
	With:                     "With",
	Try:                      "Try",
	Switch:                   "Switch",
	CaseClause:               "CaseClause",
	DefaultClause:            "DefaultClause",
	VarDeclaration:           "VarDeclaration",
	StatementWithExpression:  "StatementWithExpression",
	Label:                    "Label",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// variableArity is the set of kinds whose child list grows and shrinks
// freely. Every other kind has a fixed number of child slots, some of which
// may hold the absent sentinel (nil) but never gain or lose a slot.
var variableArity = map[Kind]bool{
	Program:               true,
	StatementList:         true,
	ArgList:               true,
	ObjectLiteral:         true,
	ArrayLiteral:          true,
	VarDeclaration:        true,
}

// IsVariableArity reports whether k's child list may grow or shrink freely,
// as opposed to a fixed number of slots that may individually hold nil.
func (k Kind) IsVariableArity() bool {
	return variableArity[k]
}
