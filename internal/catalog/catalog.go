// Package catalog discovers editor themes on disk and presents them as a
// sorted, keyed list of cached stylers.
package catalog

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/zjrosen/themepark/internal/theme"
)

// BuiltinKey is the key of the built-in constant theme. Discovered themes
// never take it, so a theme named "Default" keeps the key "default".
const BuiltinKey = "builtin"

// Entry is one theme in the catalog.
type Entry struct {
	Key         string
	DisplayName string
	ID          uuid.UUID
	Format      Format
	Paths       []string // empty for builtin, two for a paired Xcode theme
	Styler      theme.Styler
}

// Catalog is an ordered set of entries with unique keys.
type Catalog struct {
	order []Entry
	index map[string]int
}

// All returns the entries in display order.
func (c *Catalog) All() []Entry {
	out := make([]Entry, len(c.order))
	copy(out, c.order)
	return out
}

// Keys returns entry keys in display order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.order))
	for i, e := range c.order {
		keys[i] = e.Key
	}
	return keys
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Get looks up an entry by key.
func (c *Catalog) Get(key string) (Entry, bool) {
	idx, ok := c.index[key]
	if !ok {
		return Entry{}, false
	}
	return c.order[idx], true
}

// Find resolves a user supplied name: an exact key, then a
// case-insensitive display name match, then the slug of the name.
func (c *Catalog) Find(name string) (Entry, error) {
	if e, ok := c.Get(name); ok {
		return e, nil
	}
	for _, e := range c.order {
		if strings.EqualFold(e.DisplayName, name) {
			return e, nil
		}
	}
	if e, ok := c.Get(slugify(name)); ok {
		return e, nil
	}
	return Entry{}, fmt.Errorf("theme %q not found", name)
}

func (c *Catalog) add(e Entry) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	c.index[e.Key] = len(c.order)
	c.order = append(c.order, e)
}

// assemble keeps the builtin entry first and sorts the rest by display name.
func assemble(builtin Entry, found []Entry) *Catalog {
	cat := &Catalog{}
	cat.add(builtin)

	sort.SliceStable(found, func(i, j int) bool {
		left := strings.ToLower(found[i].DisplayName)
		right := strings.ToLower(found[j].DisplayName)
		if left == right {
			return found[i].Key < found[j].Key
		}
		return left < right
	})
	for _, e := range found {
		cat.add(e)
	}
	return cat
}

func ensureUniqueKey(candidate string, used map[string]int) string {
	key := candidate
	if strings.TrimSpace(key) == "" {
		key = "theme"
	}
	counter := used[key]
	if counter == 0 {
		used[key] = 1
		return key
	}
	for {
		suffix := fmt.Sprintf("%s-%d", key, counter)
		if _, exists := used[suffix]; !exists {
			used[key] = counter + 1
			used[suffix] = 1
			return suffix
		}
		counter++
	}
}

func slugify(name string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case r == '-' || r == '_' || r == '(' || r == ')' || unicode.IsSpace(r):
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
