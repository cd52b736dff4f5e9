// Package highlight bridges chroma's token types onto the syntax taxonomy:
// it lexes source for previews and exports any styler as a chroma style.
package highlight

import (
	"github.com/alecthomas/chroma/v2"

	"github.com/zjrosen/themepark/internal/syntax"
)

var tokenSpecifiers = map[chroma.TokenType]syntax.Specifier{
	chroma.Text:            syntax.Text,
	chroma.TextWhitespace:  syntax.Invisible,
	chroma.TextSymbol:      syntax.Text,
	chroma.TextPunctuation: syntax.Punctuation,
	chroma.Error:           syntax.Text,
	chroma.Other:           syntax.Text,

	chroma.Keyword:            syntax.Keyword,
	chroma.KeywordConstant:    syntax.LiteralBoolean,
	chroma.KeywordDeclaration: syntax.KeywordDefinition,
	chroma.KeywordNamespace:   syntax.KeywordImport,
	chroma.KeywordPseudo:      syntax.Keyword,
	chroma.KeywordReserved:    syntax.KeywordControl,
	chroma.KeywordType:        syntax.IdentifierType,

	chroma.Name:                  syntax.Identifier,
	chroma.NameAttribute:         syntax.IdentifierProperty,
	chroma.NameBuiltin:           syntax.IdentifierFunction,
	chroma.NameBuiltinPseudo:     syntax.IdentifierVariable,
	chroma.NameClass:             syntax.IdentifierType,
	chroma.NameConstant:          syntax.IdentifierConstant,
	chroma.NameDecorator:         syntax.OperatorCallMacro,
	chroma.NameEntity:            syntax.IdentifierConstant,
	chroma.NameException:         syntax.IdentifierType,
	chroma.NameFunction:          syntax.DefinitionFunction,
	chroma.NameFunctionMagic:     syntax.DefinitionMethod,
	chroma.NameKeyword:           syntax.Keyword,
	chroma.NameLabel:             syntax.Context,
	chroma.NameNamespace:         syntax.Identifier,
	chroma.NameOperator:          syntax.Operator,
	chroma.NameOther:             syntax.IdentifierVariable,
	chroma.NamePseudo:            syntax.IdentifierVariable,
	chroma.NameProperty:          syntax.IdentifierProperty,
	chroma.NameTag:               syntax.IdentifierType,
	chroma.NameVariable:          syntax.IdentifierVariable,
	chroma.NameVariableAnonymous: syntax.IdentifierVariable,
	chroma.NameVariableClass:     syntax.IdentifierVariable,
	chroma.NameVariableGlobal:    syntax.IdentifierVariable,
	chroma.NameVariableInstance:  syntax.IdentifierProperty,
	chroma.NameVariableMagic:     syntax.IdentifierVariable,

	chroma.Literal:                  syntax.Literal,
	chroma.LiteralDate:              syntax.Literal,
	chroma.LiteralString:            syntax.LiteralString,
	chroma.LiteralStringBoolean:     syntax.LiteralBoolean,
	chroma.LiteralStringEscape:      syntax.LiteralStringEscape,
	chroma.LiteralStringInterpol:    syntax.LiteralStringEscape,
	chroma.LiteralStringRegex:       syntax.LiteralRegularExpression,
	chroma.LiteralNumber:            syntax.LiteralNumber,
	chroma.LiteralNumberBin:         syntax.LiteralNumberInteger,
	chroma.LiteralNumberFloat:       syntax.LiteralNumberFloat,
	chroma.LiteralNumberHex:         syntax.LiteralNumberInteger,
	chroma.LiteralNumberInteger:     syntax.LiteralNumberInteger,
	chroma.LiteralNumberIntegerLong: syntax.LiteralNumberInteger,
	chroma.LiteralNumberOct:         syntax.LiteralNumberOctal,

	chroma.Operator:     syntax.Operator,
	chroma.OperatorWord: syntax.KeywordOperator,

	chroma.Punctuation: syntax.Punctuation,

	chroma.Comment:            syntax.Comment,
	chroma.CommentHashbang:    syntax.CommentSemanticallySignificant,
	chroma.CommentMultiline:   syntax.CommentBlock,
	chroma.CommentSingle:      syntax.CommentLine,
	chroma.CommentSpecial:     syntax.CommentSemanticallySignificant,
	chroma.CommentPreproc:     syntax.KeywordImport,
	chroma.CommentPreprocFile: syntax.LiteralStringURI,

	chroma.Generic: syntax.Text,
}

// ForToken maps a chroma token type to a specifier. Unlisted types widen
// through chroma's sub-category and category before defaulting to Text.
func ForToken(tt chroma.TokenType) syntax.Specifier {
	for _, t := range []chroma.TokenType{tt, tt.SubCategory(), tt.Category()} {
		if s, ok := tokenSpecifiers[t]; ok {
			return s
		}
	}
	return syntax.Text
}

// TokenTypes lists every token type with an explicit mapping.
func TokenTypes() []chroma.TokenType {
	out := make([]chroma.TokenType, 0, len(tokenSpecifiers))
	for tt := range tokenSpecifiers {
		out = append(out, tt)
	}
	return out
}
