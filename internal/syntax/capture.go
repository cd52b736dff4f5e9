package syntax

import (
	"maps"
	"slices"
)

// captures maps tree-sitter style highlight capture names onto the taxonomy.
var captures = map[string]Specifier{
	"boolean":               LiteralBoolean,
	"character":             LiteralString,
	"comment":               Comment,
	"comment.documentation": CommentSemanticallySignificant,
	"conditional":           KeywordConditional,
	"constant":              IdentifierConstant,
	"constant.builtin":      IdentifierConstant,
	"constructor":           DefinitionConstructor,
	"float":                 LiteralNumberFloat,
	"function":              DefinitionFunction,
	"function.builtin":      IdentifierFunction,
	"function.call":         OperatorCallFunction,
	"function.macro":        OperatorCallMacro,
	"function.method":       DefinitionMethod,
	"include":               KeywordImport,
	"keyword":               Keyword,
	"keyword.conditional":   KeywordConditional,
	"keyword.function":      KeywordDefinitionFunction,
	"keyword.import":        KeywordImport,
	"keyword.operator":      KeywordOperator,
	"keyword.repeat":        KeywordControl,
	"keyword.return":        KeywordControl,
	"label":                 Context,
	"method":                DefinitionMethod,
	"method.call":           OperatorCallMethod,
	"number":                LiteralNumber,
	"operator":              Operator,
	"parameter":             IdentifierParameter,
	"property":              IdentifierProperty,
	"punctuation":           Punctuation,
	"punctuation.bracket":   Punctuation,
	"punctuation.delimiter": PunctuationDelimiter,
	"punctuation.special":   Punctuation,
	"repeat":                KeywordControl,
	"string":                LiteralString,
	"string.escape":         LiteralStringEscape,
	"string.regex":          LiteralRegularExpression,
	"string.special":        LiteralString,
	"string.uri":            LiteralStringURI,
	"text.literal":          LiteralString,
	"text.reference":        Context,
	"text.uri":              LiteralStringURI,
	"type":                  IdentifierType,
	"type.builtin":          IdentifierType,
	"variable":              IdentifierVariable,
	"variable.builtin":      IdentifierVariable,
	"variable.parameter":    IdentifierParameter,
}

// ForCapture maps a highlighter capture name to a specifier. Unknown names
// return false; callers conventionally fall back to Text.
func ForCapture(name string) (Specifier, bool) {
	s, ok := captures[name]
	return s, ok
}

// ForCaptureOr is ForCapture with a caller supplied default.
func ForCaptureOr(name string, def Specifier) Specifier {
	if s, ok := captures[name]; ok {
		return s
	}
	return def
}

// Captures returns a copy of the capture table.
func Captures() map[string]Specifier {
	return maps.Clone(captures)
}

// CaptureNames returns the known capture names, sorted.
func CaptureNames() []string {
	return slices.Sorted(maps.Keys(captures))
}
