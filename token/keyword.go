package token

// reservedWords is the ECMA-262 §7.5.1 keyword set plus the future reserved
// words and the literal tokens true/false/null, matching the teacher's
// keywordTable but scoped to the fixed ES3 list in spec §4.4 rather than the
// teacher's ES2020+ table (static, class, super, extends, const and the
// other words of the second group are future reserved words in ES3 and stay
// in this set for that reason, not because they're current ES3 keywords;
// let, async, await and yield are not in the set).
var reservedWords = map[string]struct{}{
	"break": {}, "case": {}, "catch": {}, "continue": {}, "default": {},
	"delete": {}, "do": {}, "else": {}, "finally": {}, "for": {},
	"function": {}, "if": {}, "in": {}, "instanceof": {}, "new": {},
	"return": {}, "switch": {}, "this": {}, "throw": {}, "try": {},
	"typeof": {}, "var": {}, "void": {}, "while": {}, "with": {},

	"abstract": {}, "boolean": {}, "byte": {}, "char": {}, "class": {},
	"const": {}, "debugger": {}, "double": {}, "enum": {}, "export": {},
	"extends": {}, "final": {}, "float": {}, "goto": {}, "implements": {},
	"import": {}, "int": {}, "interface": {}, "long": {}, "native": {},
	"package": {}, "private": {}, "protected": {}, "public": {}, "short": {},
	"static": {}, "super": {}, "synchronized": {}, "throws": {},
	"transient": {}, "volatile": {},

	"true": {}, "false": {}, "null": {},
}

// IsReservedWord reports whether s is one of the ECMA-262 reserved or future
// reserved words, or a boolean/null literal token.
func IsReservedWord(s string) bool {
	_, ok := reservedWords[s]
	return ok
}

// IsIdentifierName reports whether s has the shape of a legal ECMA-3
// identifier: a non-empty run of [A-Za-z_$] followed by [A-Za-z0-9_$], that
// is not a reserved word. Unicode escapes are not recognized (§4.4).
func IsIdentifierName(s string) bool {
	if s == "" || IsReservedWord(s) {
		return false
	}
	if !isIdentifierStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentifierPart(s[i]) {
			return false
		}
	}
	return true
}

func isIdentifierStart(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentifierPart(c byte) bool {
	return isIdentifierStart(c) || (c >= '0' && c <= '9')
}
