package highlight

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/zjrosen/themepark/internal/syntax"
)

// Span is a run of source text and the specifier it is styled as.
type Span struct {
	Text      string
	Token     chroma.TokenType
	Specifier syntax.Specifier
}

// Lexer finds a lexer by name, alias or file name. An empty or unknown
// language yields the plaintext fallback.
func Lexer(language string) chroma.Lexer {
	var l chroma.Lexer
	if language != "" {
		l = lexers.Get(language)
	}
	if l == nil {
		l = lexers.Fallback
	}
	return chroma.Coalesce(l)
}

// Tokenize splits source into spans using the lexer for language.
func Tokenize(language, source string) ([]Span, error) {
	lexer := Lexer(language)
	it, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil, fmt.Errorf("tokenising %s: %w", lexer.Config().Name, err)
	}

	tokens := it.Tokens()
	spans := make([]Span, 0, len(tokens))
	for _, tok := range tokens {
		spans = append(spans, Span{
			Text:      tok.Value,
			Token:     tok.Type,
			Specifier: ForToken(tok.Type),
		})
	}
	return spans, nil
}

// Lines splits spans at newlines, keeping each piece's specifier. The
// newlines themselves are dropped.
func Lines(spans []Span) [][]Span {
	lines := [][]Span{nil}
	for _, sp := range spans {
		parts := strings.Split(sp.Text, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part != "" {
				last := len(lines) - 1
				lines[last] = append(lines[last], Span{Text: part, Token: sp.Token, Specifier: sp.Specifier})
			}
		}
	}
	return lines
}

// Sample returns a short program in language for previews. Unknown
// languages get the Go sample.
func Sample(language string) string {
	if s, ok := samples[strings.ToLower(language)]; ok {
		return s
	}
	return samples["go"]
}

var samples = map[string]string{
	"go": `// Package demo shows off a theme.
package demo

import "fmt"

const limit = 42

// Greet says hello n times.
func Greet(name string, n int) error {
	if n > limit {
		return fmt.Errorf("too many: %d", n)
	}
	for i := 0; i < n; i++ {
		fmt.Printf("hello, %s\n", name)
	}
	return nil
}
`,
	"swift": `import Foundation

/// A themed greeting.
struct Greeter {
    let name: String
    var count = 3

    func greet() -> String {
        // repeat the name
        return String(repeating: "hi \(name) ", count: count)
    }
}
`,
	"python": `import re

PATTERN = re.compile(r"\d+\.\d*")

def scale(values, factor=1.5):
    """Scale every value."""
    # skip nothing
    return [v * factor for v in values if v is not None]
`,
}
