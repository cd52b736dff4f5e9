package theme

import "sync/atomic"

type styleFunc func(Query) Style

func (f styleFunc) Style(q Query) Style           { return f(q) }
func (f styleFunc) SupportedVariants() VariantSet { return NewVariantSet(LightVariant) }

// countingStyler records how often each query reaches it.
type countingStyler struct {
	inner Styler
	calls atomic.Int64
	seen  map[Query]int
}

func newCountingStyler(inner Styler) *countingStyler {
	return &countingStyler{inner: inner, seen: make(map[Query]int)}
}

func (c *countingStyler) Style(q Query) Style {
	c.calls.Add(1)
	c.seen[q]++
	return c.inner.Style(q)
}

func (c *countingStyler) SupportedVariants() VariantSet { return c.inner.SupportedVariants() }
