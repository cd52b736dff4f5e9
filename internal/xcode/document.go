// Package xcode decodes Xcode .xccolortheme property lists and resolves
// theme queries against them. Light and dark appearances live in separate
// files; pairing them is left to the catalog.
package xcode

import (
	"fmt"

	"howett.net/plist"
)

// Extension is the file extension of Xcode themes.
const Extension = ".xccolortheme"

// Document is a decoded .xccolortheme file. Colors are four space-separated
// components; fonts are "<name> - <size>" descriptors.
type Document struct {
	Version              int               `plist:"DVTFontAndColorVersion"`
	Background           string            `plist:"DVTSourceTextBackground"`
	InsertionPoint       string            `plist:"DVTSourceTextInsertionPointColor,omitempty"`
	Invisibles           string            `plist:"DVTSourceTextInvisiblesColor,omitempty"`
	CurrentLineHighlight string            `plist:"DVTSourceTextCurrentLineHighlightColor,omitempty"`
	Selection            string            `plist:"DVTSourceTextSelectionColor,omitempty"`
	MarkupTextNormal     string            `plist:"DVTMarkupTextNormalColor,omitempty"`
	SyntaxColors         map[string]string `plist:"DVTSourceTextSyntaxColors"`
	SyntaxFonts          map[string]string `plist:"DVTSourceTextSyntaxFonts,omitempty"`
}

// Decode parses an Xcode theme in any property list encoding.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if _, err := plist.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode xcode theme: %w", err)
	}
	return &doc, nil
}

// Encode writes doc as an XML property list.
func Encode(doc *Document) ([]byte, error) {
	data, err := plist.MarshalIndent(doc, plist.XMLFormat, "\t")
	if err != nil {
		return nil, fmt.Errorf("failed to encode xcode theme: %w", err)
	}
	return data, nil
}
