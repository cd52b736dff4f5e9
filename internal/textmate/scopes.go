package textmate

import "github.com/zjrosen/themepark/internal/syntax"

// scopeCandidates lists, per specifier, the scope names tried in order before
// widening to the parent specifier. Nodes without candidates widen directly.
var scopeCandidates = map[syntax.Specifier][]string{
	syntax.Context: {"entity.name.section", "markup.heading"},

	syntax.Keyword:                      {"keyword", "storage"},
	syntax.KeywordImport:                {"keyword.control.import", "keyword.other.import"},
	syntax.KeywordConditional:           {"keyword.control.conditional"},
	syntax.KeywordControl:               {"keyword.control"},
	syntax.KeywordOperator:              {"keyword.operator"},
	syntax.KeywordDefinition:            {"storage.type", "storage"},
	syntax.KeywordDefinitionFunction:    {"storage.type.function"},
	syntax.KeywordDefinitionConstructor: {"storage.type.constructor"},

	syntax.Literal:                  {"constant"},
	syntax.LiteralString:            {"string"},
	syntax.LiteralStringURI:         {"markup.underline.link", "string.other.link"},
	syntax.LiteralStringEscape:      {"constant.character.escape"},
	syntax.LiteralNumber:            {"constant.numeric"},
	syntax.LiteralNumberFloat:       {"constant.numeric.float"},
	syntax.LiteralNumberInteger:     {"constant.numeric.integer"},
	syntax.LiteralBoolean:           {"constant.language.boolean", "constant.language"},
	syntax.LiteralRegularExpression: {"string.regexp"},

	syntax.Comment:                        {"comment"},
	syntax.CommentLine:                    {"comment.line"},
	syntax.CommentBlock:                   {"comment.block"},
	syntax.CommentSemanticallySignificant: {"comment.block.documentation"},

	syntax.Identifier:          {"variable"},
	syntax.IdentifierVariable:  {"variable.other"},
	syntax.IdentifierConstant:  {"variable.other.constant", "constant.other"},
	syntax.IdentifierFunction:  {"support.function", "entity.name.function"},
	syntax.IdentifierProperty:  {"variable.other.property", "support.type.property-name"},
	syntax.IdentifierParameter: {"variable.parameter"},
	syntax.IdentifierType:      {"entity.name.type", "support.type", "support.class"},

	syntax.Operator:             {"keyword.operator"},
	syntax.OperatorCall:         {"meta.function-call"},
	syntax.OperatorCallFunction: {"support.function"},
	syntax.OperatorCallMethod:   {"meta.method-call"},
	syntax.OperatorCallMacro:    {"entity.name.function.preprocessor"},

	syntax.Punctuation:          {"punctuation"},
	syntax.PunctuationDelimiter: {"punctuation.separator"},

	syntax.Definition:            {"entity.name"},
	syntax.DefinitionFunction:    {"entity.name.function"},
	syntax.DefinitionMethod:      {"entity.name.function.method"},
	syntax.DefinitionMacro:       {"entity.name.function.preprocessor", "meta.preprocessor"},
	syntax.DefinitionConstructor: {"entity.name.function.constructor"},
	syntax.DefinitionProperty:    {"variable.other.member"},
}

// ScopesFor returns the candidate scope names for s, most specific first,
// following its lineage.
func ScopesFor(s syntax.Specifier) []string {
	var out []string
	for _, n := range s.Lineage() {
		out = append(out, scopeCandidates[n]...)
	}
	return out
}
