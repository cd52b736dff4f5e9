package bbedit

import "github.com/zjrosen/themepark/internal/syntax"

// Language module color identifiers.
const (
	IDCode             = "com.barebones.bblm.code"
	IDComment          = "com.barebones.bblm.comment"
	IDLineComment      = "com.barebones.bblm.line-comment"
	IDBlockComment     = "com.barebones.bblm.block-comment"
	IDKeyword          = "com.barebones.bblm.keyword"
	IDPreprocessor     = "com.barebones.bblm.preprocessor"
	IDString           = "com.barebones.bblm.string"
	IDNumber           = "com.barebones.bblm.number"
	IDIdentifier       = "com.barebones.bblm.identifier"
	IDPredefinedSymbol = "com.barebones.bblm.predefined-symbol"
	IDFunction         = "com.barebones.bblm.function"
	IDURL              = "com.barebones.bblm.url"
)

var identifiers = map[syntax.Specifier]string{
	syntax.Text: IDCode,

	syntax.Comment:      IDComment,
	syntax.CommentLine:  IDLineComment,
	syntax.CommentBlock: IDBlockComment,

	syntax.Keyword:       IDKeyword,
	syntax.KeywordImport: IDPreprocessor,

	syntax.LiteralString:    IDString,
	syntax.LiteralStringURI: IDURL,
	syntax.LiteralNumber:    IDNumber,
	syntax.LiteralBoolean:   IDPredefinedSymbol,

	syntax.Identifier:         IDIdentifier,
	syntax.IdentifierConstant: IDPredefinedSymbol,
	syntax.IdentifierFunction: IDFunction,

	syntax.DefinitionFunction: IDFunction,
	syntax.DefinitionMacro:    IDPreprocessor,
}

// IdentifiersFor lists the identifiers consulted for s, most specific first,
// ending with the code identifier.
func IdentifiersFor(s syntax.Specifier) []string {
	var out []string
	for _, n := range s.Lineage() {
		if id, ok := identifiers[n]; ok {
			out = append(out, id)
		}
	}
	if len(out) == 0 || out[len(out)-1] != IDCode {
		out = append(out, IDCode)
	}
	return out
}
