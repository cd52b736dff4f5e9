// Package snapshot flattens a Styler into a self-contained table of every
// query's answer, and serializes that table to JSON, YAML or TOML.
//
// Capturing evaluates the whole query space, which is wasteful. Snapshots
// exist so a resolved theme can cross a process or version boundary without
// its original file or decoder, not to make lookups faster.
package snapshot

import (
	"github.com/zjrosen/themepark/internal/log"
	"github.com/zjrosen/themepark/internal/theme"
)

// Snapshot is a captured Styler. It is immutable and itself a Styler.
type Snapshot struct {
	variants theme.VariantSet
	styles   map[theme.Query]theme.Style
}

var _ theme.Styler = (*Snapshot)(nil)

// Capture asks s for every query in theme.AllQueries.
func Capture(s theme.Styler) *Snapshot {
	queries := theme.AllQueries()
	snap := &Snapshot{
		variants: s.SupportedVariants(),
		styles:   make(map[theme.Query]theme.Style, len(queries)),
	}
	for _, q := range queries {
		snap.styles[q] = s.Style(q)
	}
	log.Debug(log.CatSnapshot, "captured snapshot", "queries", len(queries), "variants", snap.variants)
	return snap
}

// Style returns the captured answer for q. Queries missing from the snapshot
// get theme.Fallback.
func (s *Snapshot) Style(q theme.Query) theme.Style {
	if st, ok := s.styles[q]; ok {
		return st
	}
	return theme.Fallback(q.Key)
}

func (s *Snapshot) SupportedVariants() theme.VariantSet {
	return s.variants
}

// Len reports the number of captured queries.
func (s *Snapshot) Len() int {
	return len(s.styles)
}

// Lookup is Style without the fallback.
func (s *Snapshot) Lookup(q theme.Query) (theme.Style, bool) {
	st, ok := s.styles[q]
	return st, ok
}
