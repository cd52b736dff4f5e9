// Package syntax defines the closed taxonomy of source-code token categories
// that themes are queried with.
//
// Every node of the taxonomy tree is a Specifier. A category's parent node is
// its "unspecified" form: KeywordOperator is keyword(operator(nil)), Keyword is
// keyword(nil). Resolvers that lack a color for a refined node walk its
// Lineage until they find one.
package syntax

import (
	"fmt"
	"strings"
)

// Specifier identifies one node of the token taxonomy.
type Specifier uint8

// Root categories and their refinements, in tree order.
const (
	Invalid Specifier = iota

	Text
	Invisible
	Context

	Keyword
	KeywordImport
	KeywordConditional
	KeywordControl
	KeywordDelimiter
	KeywordOperator
	KeywordOperatorCall
	KeywordOperatorCallFunction
	KeywordOperatorCallMethod
	KeywordOperatorCallMacro
	KeywordDefinition
	KeywordDefinitionFunction
	KeywordDefinitionMethod
	KeywordDefinitionMacro
	KeywordDefinitionConstructor
	KeywordDefinitionProperty

	Literal
	LiteralString
	LiteralStringURI
	LiteralStringEscape
	LiteralNumber
	LiteralNumberFloat
	LiteralNumberInteger
	LiteralNumberScientific
	LiteralNumberOctal
	LiteralBoolean
	LiteralRegularExpression

	Comment
	CommentLine
	CommentBlock
	CommentSemanticallySignificant

	Identifier
	IdentifierVariable
	IdentifierConstant
	IdentifierFunction
	IdentifierProperty
	IdentifierParameter
	IdentifierType

	Operator
	OperatorCall
	OperatorCallFunction
	OperatorCallMethod
	OperatorCallMacro

	Punctuation
	PunctuationDelimiter

	Definition
	DefinitionFunction
	DefinitionMethod
	DefinitionMacro
	DefinitionConstructor
	DefinitionProperty

	specifierCount
)

type node struct {
	segment string
	parent  Specifier
}

var tree = [specifierCount]node{
	Invalid: {"", Invalid},

	Text:      {"text", Invalid},
	Invisible: {"invisible", Invalid},
	Context:   {"context", Invalid},

	Keyword:                      {"keyword", Invalid},
	KeywordImport:                {"import", Keyword},
	KeywordConditional:           {"conditional", Keyword},
	KeywordControl:               {"control", Keyword},
	KeywordDelimiter:             {"delimiter", Keyword},
	KeywordOperator:              {"operator", Keyword},
	KeywordOperatorCall:          {"call", KeywordOperator},
	KeywordOperatorCallFunction:  {"function", KeywordOperatorCall},
	KeywordOperatorCallMethod:    {"method", KeywordOperatorCall},
	KeywordOperatorCallMacro:     {"macro", KeywordOperatorCall},
	KeywordDefinition:            {"definition", Keyword},
	KeywordDefinitionFunction:    {"function", KeywordDefinition},
	KeywordDefinitionMethod:      {"method", KeywordDefinition},
	KeywordDefinitionMacro:       {"macro", KeywordDefinition},
	KeywordDefinitionConstructor: {"constructor", KeywordDefinition},
	KeywordDefinitionProperty:    {"property", KeywordDefinition},

	Literal:                  {"literal", Invalid},
	LiteralString:            {"string", Literal},
	LiteralStringURI:         {"uri", LiteralString},
	LiteralStringEscape:      {"escape", LiteralString},
	LiteralNumber:            {"number", Literal},
	LiteralNumberFloat:       {"float", LiteralNumber},
	LiteralNumberInteger:     {"integer", LiteralNumber},
	LiteralNumberScientific:  {"scientific", LiteralNumber},
	LiteralNumberOctal:       {"octal", LiteralNumber},
	LiteralBoolean:           {"boolean", Literal},
	LiteralRegularExpression: {"regularExpression", Literal},

	Comment:                        {"comment", Invalid},
	CommentLine:                    {"line", Comment},
	CommentBlock:                   {"block", Comment},
	CommentSemanticallySignificant: {"semanticallySignificant", Comment},

	Identifier:          {"identifier", Invalid},
	IdentifierVariable:  {"variable", Identifier},
	IdentifierConstant:  {"constant", Identifier},
	IdentifierFunction:  {"function", Identifier},
	IdentifierProperty:  {"property", Identifier},
	IdentifierParameter: {"parameter", Identifier},
	IdentifierType:      {"type", Identifier},

	Operator:             {"operator", Invalid},
	OperatorCall:         {"call", Operator},
	OperatorCallFunction: {"function", OperatorCall},
	OperatorCallMethod:   {"method", OperatorCall},
	OperatorCallMacro:    {"macro", OperatorCall},

	Punctuation:          {"punctuation", Invalid},
	PunctuationDelimiter: {"delimiter", Punctuation},

	Definition:            {"definition", Invalid},
	DefinitionFunction:    {"function", Definition},
	DefinitionMethod:      {"method", Definition},
	DefinitionMacro:       {"macro", Definition},
	DefinitionConstructor: {"constructor", Definition},
	DefinitionProperty:    {"property", Definition},
}

var byPath = func() map[string]Specifier {
	m := make(map[string]Specifier, specifierCount)
	for _, s := range All() {
		m[s.String()] = s
	}
	return m
}()

// All returns every valid specifier in tree order.
func All() []Specifier {
	out := make([]Specifier, 0, specifierCount-1)
	for s := Text; s < specifierCount; s++ {
		out = append(out, s)
	}
	return out
}

// Valid reports whether s is a node of the taxonomy.
func (s Specifier) Valid() bool {
	return s > Invalid && s < specifierCount
}

// Parent returns the next wider node, or Invalid for a root category.
func (s Specifier) Parent() Specifier {
	if !s.Valid() {
		return Invalid
	}
	return tree[s].parent
}

// Category returns the root category of s.
func (s Specifier) Category() Specifier {
	for s.Parent() != Invalid {
		s = s.Parent()
	}
	return s
}

// IsRoot reports whether s is an unrefined root category.
func (s Specifier) IsRoot() bool {
	return s.Valid() && tree[s].parent == Invalid
}

// Widen strips one level of specialization. It returns false when s is
// already a root category.
func (s Specifier) Widen() (Specifier, bool) {
	p := s.Parent()
	return p, p != Invalid
}

// Lineage returns s followed by each wider ancestor, ending at its root category.
func (s Specifier) Lineage() []Specifier {
	if !s.Valid() {
		return nil
	}
	out := []Specifier{s}
	for p, ok := s.Widen(); ok; p, ok = p.Widen() {
		out = append(out, p)
	}
	return out
}

// Depth is 1 for root categories and grows by one per refinement.
func (s Specifier) Depth() int {
	return len(s.Lineage())
}

// String returns the dotted path of s, e.g. "operator.call.function".
func (s Specifier) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Specifier(%d)", uint8(s))
	}
	lineage := s.Lineage()
	parts := make([]string, len(lineage))
	for i, n := range lineage {
		parts[len(lineage)-1-i] = tree[n].segment
	}
	return strings.Join(parts, ".")
}

// Parse reads a dotted path produced by String.
func Parse(path string) (Specifier, error) {
	s, ok := byPath[path]
	if !ok {
		return Invalid, fmt.Errorf("unknown syntax specifier %q", path)
	}
	return s, nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Specifier) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid syntax specifier %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Specifier) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
