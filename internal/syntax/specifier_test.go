package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestAll_Count(t *testing.T) {
	all := All()
	require.Len(t, all, 54)

	seen := make(map[string]bool, len(all))
	for _, s := range all {
		require.True(t, s.Valid())
		require.False(t, seen[s.String()], "duplicate path %s", s)
		seen[s.String()] = true
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		spec Specifier
		want string
	}{
		{Text, "text"},
		{Keyword, "keyword"},
		{KeywordOperator, "keyword.operator"},
		{KeywordOperatorCallMacro, "keyword.operator.call.macro"},
		{OperatorCallFunction, "operator.call.function"},
		{LiteralStringURI, "literal.string.uri"},
		{CommentSemanticallySignificant, "comment.semanticallySignificant"},
		{DefinitionConstructor, "definition.constructor"},
		{Invalid, "Specifier(0)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.spec.String())
		})
	}
}

func TestLineage(t *testing.T) {
	require.Equal(t,
		[]Specifier{KeywordOperatorCallFunction, KeywordOperatorCall, KeywordOperator, Keyword},
		KeywordOperatorCallFunction.Lineage())
	require.Equal(t, []Specifier{Comment}, Comment.Lineage())
	require.Nil(t, Invalid.Lineage())
}

func TestWiden(t *testing.T) {
	p, ok := LiteralNumberFloat.Widen()
	require.True(t, ok)
	require.Equal(t, LiteralNumber, p)

	p, ok = LiteralNumber.Widen()
	require.True(t, ok)
	require.Equal(t, Literal, p)

	_, ok = Literal.Widen()
	require.False(t, ok)
}

func TestCategory(t *testing.T) {
	require.Equal(t, Operator, OperatorCallMacro.Category())
	require.Equal(t, Identifier, IdentifierType.Category())
	require.Equal(t, Text, Text.Category())
	require.True(t, Punctuation.IsRoot())
	require.False(t, PunctuationDelimiter.IsRoot())
}

func TestParse_Unknown(t *testing.T) {
	_, err := Parse("keyword.nope")
	require.Error(t, err)
	_, err = Parse("")
	require.Error(t, err)
}

func TestParse_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.SampledFrom(All()).Draw(t, "specifier")

		parsed, err := Parse(s.String())
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		if parsed != s {
			t.Fatalf("got %v, want %v", parsed, s)
		}

		lineage := s.Lineage()
		if lineage[0] != s || !lineage[len(lineage)-1].IsRoot() {
			t.Fatalf("lineage of %v does not run from node to root: %v", s, lineage)
		}
		if s.Depth() != len(lineage) {
			t.Fatalf("depth %d != lineage length %d", s.Depth(), len(lineage))
		}
	})
}

func TestText_Marshal(t *testing.T) {
	b, err := IdentifierParameter.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "identifier.parameter", string(b))

	var s Specifier
	require.NoError(t, s.UnmarshalText(b))
	require.Equal(t, IdentifierParameter, s)

	_, err = Invalid.MarshalText()
	require.Error(t, err)
}
