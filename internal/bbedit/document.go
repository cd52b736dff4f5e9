// Package bbedit decodes BBEdit .bbColorScheme property lists and resolves
// theme queries against them.
package bbedit

import (
	"fmt"
	"maps"
	"slices"

	"howett.net/plist"
)

// Extension is the file extension of BBEdit color schemes.
const Extension = ".bbColorScheme"

// Well-known top-level keys. Everything else is a language module color
// identifier such as com.barebones.bblm.comment.
const (
	KeyBackground     = "BackgroundColor"
	KeyInsertionPoint = "InsertionPointColor"
	KeyInvisibles     = "InvisibleOthersColor"
	KeySelection      = "SelectionHighlightColor"
)

// Document is a decoded color scheme: a flat map of key to color string.
type Document struct {
	Background string
	Colors     map[string]string
}

// Decode parses a BBEdit color scheme. Non-string values are skipped.
func Decode(data []byte) (*Document, error) {
	var raw map[string]any
	if _, err := plist.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode bbedit color scheme: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("failed to decode bbedit color scheme: not a dictionary")
	}

	doc := &Document{Colors: make(map[string]string, len(raw))}
	for k, v := range raw {
		s, ok := v.(string)
		if !ok {
			continue
		}
		if k == KeyBackground {
			doc.Background = s
			continue
		}
		doc.Colors[k] = s
	}
	return doc, nil
}

// Encode writes doc as an XML property list.
func Encode(doc *Document) ([]byte, error) {
	flat := maps.Clone(doc.Colors)
	if flat == nil {
		flat = make(map[string]string, 1)
	}
	if doc.Background != "" {
		flat[KeyBackground] = doc.Background
	}
	data, err := plist.MarshalIndent(flat, plist.XMLFormat, "\t")
	if err != nil {
		return nil, fmt.Errorf("failed to encode bbedit color scheme: %w", err)
	}
	return data, nil
}

// Keys lists the color keys other than the background, sorted.
func (d *Document) Keys() []string {
	return slices.Sorted(maps.Keys(d.Colors))
}
