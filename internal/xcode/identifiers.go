package xcode

import "github.com/zjrosen/themepark/internal/syntax"

// Syntax color identifiers used in DVTSourceTextSyntaxColors.
const (
	IDPlain           = "xcode.syntax.plain"
	IDComment         = "xcode.syntax.comment"
	IDCommentDoc      = "xcode.syntax.comment.doc"
	IDKeyword         = "xcode.syntax.keyword"
	IDString          = "xcode.syntax.string"
	IDCharacter       = "xcode.syntax.character"
	IDURL             = "xcode.syntax.url"
	IDNumber          = "xcode.syntax.number"
	IDRegex           = "xcode.syntax.regex"
	IDPreprocessor    = "xcode.syntax.preprocessor"
	IDMark            = "xcode.syntax.mark"
	IDAttribute       = "xcode.syntax.attribute"
	IDDeclarationType = "xcode.syntax.declaration.type"
	IDDeclaration     = "xcode.syntax.declaration.other"
	IDVariable        = "xcode.syntax.identifier.variable"
	IDConstant        = "xcode.syntax.identifier.constant"
	IDFunction        = "xcode.syntax.identifier.function"
	IDType            = "xcode.syntax.identifier.type"
	IDMacro           = "xcode.syntax.identifier.macro"
)

var identifiers = map[syntax.Specifier]string{
	syntax.Text:    IDPlain,
	syntax.Context: IDMark,

	syntax.Keyword:       IDKeyword,
	syntax.KeywordImport: IDPreprocessor,

	syntax.LiteralString:            IDString,
	syntax.LiteralStringURI:         IDURL,
	syntax.LiteralStringEscape:      IDCharacter,
	syntax.LiteralNumber:            IDNumber,
	syntax.LiteralBoolean:           IDKeyword,
	syntax.LiteralRegularExpression: IDRegex,

	syntax.Comment:                        IDComment,
	syntax.CommentSemanticallySignificant: IDCommentDoc,

	syntax.Identifier:         IDVariable,
	syntax.IdentifierVariable: IDVariable,
	syntax.IdentifierConstant: IDConstant,
	syntax.IdentifierFunction: IDFunction,
	syntax.IdentifierType:     IDType,

	syntax.OperatorCallFunction: IDFunction,
	syntax.OperatorCallMethod:   IDFunction,
	syntax.OperatorCallMacro:    IDMacro,

	syntax.Definition:            IDDeclaration,
	syntax.DefinitionMacro:       IDPreprocessor,
	syntax.DefinitionConstructor: IDDeclarationType,
}

// IdentifiersFor lists the syntax identifiers consulted for s, most specific
// first, ending with the plain text identifier.
func IdentifiersFor(s syntax.Specifier) []string {
	var out []string
	for _, n := range s.Lineage() {
		if id, ok := identifiers[n]; ok {
			out = append(out, id)
		}
	}
	if len(out) == 0 || out[len(out)-1] != IDPlain {
		out = append(out, IDPlain)
	}
	return out
}
